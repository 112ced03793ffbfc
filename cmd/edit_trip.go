package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/bluez/tripwise/date"
)

type editTripCmd struct {
	name        string
	rename      string
	destination string
	image       string
	start       string
	end         string
}

func (*editTripCmd) Name() string     { return "edit-trip" }
func (*editTripCmd) Synopsis() string { return "rename a trip or change its dates" }
func (*editTripCmd) Usage() string {
	return `tw edit-trip -n <name> [-rename <new name>] [-dest <destination>] [-image <url>] [-s <start> -e <end>]

  Edits a trip. Changing the dates re-derives the schedule: day content stays
  attached to its position, only dates shift. Shortening the trip drops the
  trailing days and everything on them.

Usage Examples:
$ tw edit-trip -n "Rome" -rename "Rome 2024"
$ tw edit-trip -n "Rome 2024" -s 2024-06-10 -e 2024-06-14

`
}

func (c *editTripCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Trip to edit (required)")
	f.StringVar(&c.rename, "rename", "", "New trip name")
	f.StringVar(&c.destination, "dest", "", "New destination")
	f.StringVar(&c.image, "image", "", "Destination image URL")
	f.StringVar(&c.start, "s", "", "New start date")
	f.StringVar(&c.end, "e", "", "New end date")
}

func (c *editTripCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -n is required.")
		return subcommands.ExitUsageError
	}
	if (c.start == "") != (c.end == "") {
		fmt.Fprintln(os.Stderr, "Error: -s and -e must be given together.")
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

	if c.rename != "" || c.destination != "" {
		if err := planner.RenameTrip(trip.ID, c.rename, c.destination); err != nil {
			fmt.Fprintf(os.Stderr, "Error renaming trip: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	if c.image != "" {
		if err := planner.SetDestinationImage(trip.ID, c.image); err != nil {
			fmt.Fprintf(os.Stderr, "Error setting image: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	if c.start != "" {
		start, err := date.Parse(c.start)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
			return subcommands.ExitUsageError
		}
		end, err := date.Parse(c.end)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
			return subcommands.ExitUsageError
		}
		before := trip.NumberOfDays()
		if err := planner.UpdateTripDates(trip.ID, start, end); err != nil {
			fmt.Fprintf(os.Stderr, "Error updating dates: %v\n", err)
			return subcommands.ExitFailure
		}
		if after := trip.NumberOfDays(); after < before {
			fmt.Printf("Dropped %d trailing day(s) with their activities and expenses.\n", before-after)
		}
	}

	fmt.Printf("Updated trip %q: %s to %s, %d days.\n",
		trip.Name, trip.Start, trip.End, trip.NumberOfDays())
	return subcommands.ExitSuccess
}
