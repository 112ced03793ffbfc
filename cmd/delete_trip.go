package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteTripCmd struct {
	name string
}

func (*deleteTripCmd) Name() string     { return "delete-trip" }
func (*deleteTripCmd) Synopsis() string { return "delete a trip and everything on it" }
func (*deleteTripCmd) Usage() string {
	return `tw delete-trip -n <name>

  Deletes the trip with all its days, activities and expenses.
`
}

func (c *deleteTripCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Trip to delete (required)")
}

func (c *deleteTripCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if err := planner.DeleteTrip(trip.ID); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting trip: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Deleted trip %q.\n", c.name)
	return subcommands.ExitSuccess
}
