package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/bluez/tripwise"
)

type checkCmd struct {
	name   string
	day    int
	add    string
	toggle int
	remove int
}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "manage a day's checklist" }
func (*checkCmd) Usage() string {
	return `tw check -n <name> -day <n> [-add <text>] [-toggle <item>] [-remove <item>]

  Manages the day's packing/preparation checklist. Without an action flag the
  checklist is printed. Items are numbered from 1 in display order.

Usage Examples:
$ tw check -n "Rome" -day 1 -add "passport"
$ tw check -n "Rome" -day 1 -toggle 1

`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Trip name (required)")
	f.IntVar(&c.day, "day", 0, "Day number, starting at 1 (required)")
	f.StringVar(&c.add, "add", "", "Add an item with this text")
	f.IntVar(&c.toggle, "toggle", 0, "Toggle the done state of item number n")
	f.IntVar(&c.remove, "remove", 0, "Remove item number n")
}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.day == 0 {
		fmt.Fprintln(os.Stderr, "Error: -n and -day are required.")
		return subcommands.ExitUsageError
	}
	index, err := parseDay(c.day)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	planner, s, err := openPlanner()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeStore(s)

	trip, err := planner.FindTrip(c.name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	day, err := trip.Day(index)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	items := append([]tripwise.ChecklistItem(nil), day.Checklist...)
	changed := false
	if c.add != "" {
		items = append(items, tripwise.NewChecklistItem(c.add))
		changed = true
	}
	if c.toggle > 0 {
		if c.toggle > len(items) {
			fmt.Fprintf(os.Stderr, "Error: no item %d, the checklist has %d item(s).\n", c.toggle, len(items))
			return subcommands.ExitFailure
		}
		items[c.toggle-1].Done = !items[c.toggle-1].Done
		changed = true
	}
	if c.remove > 0 {
		if c.remove > len(items) {
			fmt.Fprintf(os.Stderr, "Error: no item %d, the checklist has %d item(s).\n", c.remove, len(items))
			return subcommands.ExitFailure
		}
		items = append(items[:c.remove-1], items[c.remove:]...)
		changed = true
	}

	if changed {
		if err := planner.ReplaceChecklist(trip.ID, index, items); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	if len(items) == 0 {
		fmt.Printf("Checklist of day %d is empty.\n", c.day)
		return subcommands.ExitSuccess
	}
	for i, item := range items {
		mark := " "
		if item.Done {
			mark = "x"
		}
		fmt.Printf("%2d. [%s] %s\n", i+1, mark, item.Text)
	}
	return subcommands.ExitSuccess
}
