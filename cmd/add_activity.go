package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/bluez/tripwise"
)

type addActivityCmd struct {
	name     string
	day      int
	at       string
	title    string
	location string
	notes    string
	category string
}

func (*addActivityCmd) Name() string     { return "add-activity" }
func (*addActivityCmd) Synopsis() string { return "add an activity to an itinerary day" }
func (*addActivityCmd) Usage() string {
	return `tw add-activity -n <name> -day <n> -title <title> [-at <HH:MM>] [-loc <location>] [-cat <category>] [-notes <notes>]

  Adds an activity to the day. The itinerary displays activities in
  time-of-day order regardless of insertion order.

  Categories: sightseeing, dining, shopping, entertainment, transportation,
  accommodation, other.

Usage Examples:
$ tw add-activity -n "Rome" -day 1 -at 14:00 -title "Colosseum" -loc "Rome" -cat sightseeing

`
}

func (c *addActivityCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Trip name (required)")
	f.IntVar(&c.day, "day", 0, "Day number, starting at 1 (required)")
	f.StringVar(&c.at, "at", "", "Time of day as HH:MM, defaults to the start of the day")
	f.StringVar(&c.title, "title", "", "Activity title (required)")
	f.StringVar(&c.location, "loc", "", "Location, free text")
	f.StringVar(&c.notes, "notes", "", "Notes, free text")
	f.StringVar(&c.category, "cat", string(tripwise.ActivityOther), "Activity category")
}

func (c *addActivityCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.day == 0 || c.title == "" {
		fmt.Fprintln(os.Stderr, "Error: -n, -day and -title are required.")
		return subcommands.ExitUsageError
	}
	index, err := parseDay(c.day)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	category, err := tripwise.ParseActivityCategory(c.category)
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

	at := day.Date.Time()
	if c.at != "" {
		at, err = parseTimeOfDay(c.at, at)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	a := tripwise.NewActivity(at, c.title, c.location, c.notes, category)
	if err := planner.AddActivity(trip.ID, index, a); err != nil {
		fmt.Fprintf(os.Stderr, "Error adding activity: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Added %q to day %d of %q at %s.\n", c.title, c.day, trip.Name, at.Format("15:04"))
	return subcommands.ExitSuccess
}
