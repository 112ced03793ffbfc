package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/bluez/tripwise"
	"github.com/bluez/tripwise/date"
)

type addTripCmd struct {
	name        string
	destination string
	start       string
	end         string
	currency    string
}

func (*addTripCmd) Name() string     { return "add-trip" }
func (*addTripCmd) Synopsis() string { return "create a new trip with its day-by-day schedule" }
func (*addTripCmd) Usage() string {
	return `tw add-trip -n <name> -s <start> -e <end> [-dest <destination>] [-c <currency>]

  Creates a trip covering the inclusive date range and derives one itinerary
  day per calendar day.

Usage Examples:
$ tw add-trip -n "Rome" -dest "Rome, Italy" -s 2024-06-01 -e 2024-06-03 -c EUR

`
}

func (c *addTripCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Trip name (required)")
	f.StringVar(&c.destination, "dest", "", "Destination, free text")
	f.StringVar(&c.start, "s", "", "Start date (required)")
	f.StringVar(&c.end, "e", "", "End date (required)")
	f.StringVar(&c.currency, "c", tripwise.DefaultCurrency, "Local currency for budgets")
}

func (c *addTripCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.start == "" || c.end == "" {
		fmt.Fprintln(os.Stderr, "Error: -n, -s and -e are required.")
		return subcommands.ExitUsageError
	}
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

	planner, s, err := openPlanner()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeStore(s)

	trip, err := planner.AddTrip(tripwise.TripDraft{
		Name:          c.name,
		Destination:   c.destination,
		Start:         start,
		End:           end,
		LocalCurrency: c.currency,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating trip: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Created trip %q: %d days from %s to %s.\n",
		trip.Name, trip.NumberOfDays(), trip.Start, trip.End)
	return subcommands.ExitSuccess
}
