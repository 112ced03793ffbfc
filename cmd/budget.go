package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/bluez/tripwise/renderer"
)

type budgetCmd struct {
	name string
}

func (*budgetCmd) Name() string     { return "budget" }
func (*budgetCmd) Synopsis() string { return "display a trip's budget report" }
func (*budgetCmd) Usage() string {
	return `tw budget -n <name>

  Displays the budget report: trip totals, per-day spending against each
  day's planned total, every expense, and the category breakdown.
`
}

func (c *budgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Trip to display (required)")
}

func (c *budgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.BudgetMarkdown(renderer.NewBudgetView(trip)))
	return subcommands.ExitSuccess
}
