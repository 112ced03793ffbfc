package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/bluez/tripwise/renderer"
)

type itineraryCmd struct {
	name string
}

func (*itineraryCmd) Name() string     { return "itinerary" }
func (*itineraryCmd) Synopsis() string { return "display a trip's day-by-day itinerary" }
func (*itineraryCmd) Usage() string {
	return `tw itinerary -n <name>

  Displays the full itinerary: each day's title, transportation, activities
  in time-of-day order, checklist and spending.
`
}

func (c *itineraryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Trip to display (required)")
}

func (c *itineraryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -n is required.")
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

	printMarkdown(renderer.ItineraryMarkdown(renderer.NewTripView(trip)))
	return subcommands.ExitSuccess
}
