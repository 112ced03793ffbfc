package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/bluez/tripwise"
)

type setTransportCmd struct {
	name string
	day  int
	mode string
	at   string
}

func (*setTransportCmd) Name() string     { return "set-transport" }
func (*setTransportCmd) Synopsis() string { return "set a day's transportation" }
func (*setTransportCmd) Usage() string {
	return `tw set-transport -n <name> -day <n> -mode <mode> [-at <HH:MM>]

  Sets the day's transportation record, replacing any previous one.

Usage Examples:
$ tw set-transport -n "Rome" -day 1 -mode flight -at 09:15

`
}

func (c *setTransportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Trip name (required)")
	f.IntVar(&c.day, "day", 0, "Day number, starting at 1 (required)")
	f.StringVar(&c.mode, "mode", "", "Transportation mode, free text (required)")
	f.StringVar(&c.at, "at", "", "Departure time as HH:MM, defaults to the start of the day")
}

func (c *setTransportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.day == 0 || c.mode == "" {
		fmt.Fprintln(os.Stderr, "Error: -n, -day and -mode are required.")
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

	at := day.Date.Time()
	if c.at != "" {
		at, err = parseTimeOfDay(c.at, at)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	tr := tripwise.Transportation{Mode: c.mode, Time: at}
	if err := planner.UpdateTransportation(trip.ID, index, tr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Day %d of %q: %s at %s.\n", c.day, trip.Name, c.mode, at.Format("15:04"))
	return subcommands.ExitSuccess
}
