package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/bluez/tripwise/renderer"
)

type tripsCmd struct{}

func (*tripsCmd) Name() string     { return "trips" }
func (*tripsCmd) Synopsis() string { return "list all trips" }
func (*tripsCmd) Usage() string {
	return `tw trips

  Lists every trip, upcoming and past, with dates and total spending.
`
}

func (*tripsCmd) SetFlags(_ *flag.FlagSet) {}

func (c *tripsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	planner, s, err := openPlanner()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeStore(s)

	printMarkdown(renderer.TripsMarkdown(planner.Trips()))
	return subcommands.ExitSuccess
}
