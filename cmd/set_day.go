package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type setDayCmd struct {
	name  string
	day   int
	title string
}

func (*setDayCmd) Name() string     { return "set-day" }
func (*setDayCmd) Synopsis() string { return "set a day's title" }
func (*setDayCmd) Usage() string {
	return `tw set-day -n <name> -day <n> -title <title>

  Sets the display title of one itinerary day. Days are numbered from 1.

Usage Examples:
$ tw set-day -n "Rome" -day 1 -title "Arrival"

`
}

func (c *setDayCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Trip name (required)")
	f.IntVar(&c.day, "day", 0, "Day number, starting at 1 (required)")
	f.StringVar(&c.title, "title", "", "New title (required)")
}

func (c *setDayCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.day == 0 || c.title == "" {
		fmt.Fprintln(os.Stderr, "Error: -n, -day and -title are required.")
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
	if err := planner.UpdateDayTitle(trip.ID, index, c.title); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Day %d of %q is now %q.\n", c.day, trip.Name, c.title)
	return subcommands.ExitSuccess
}
