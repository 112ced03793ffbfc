package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/bluez/tripwise"
)

type setBudgetCmd struct {
	name  string
	day   int
	total string
}

func (*setBudgetCmd) Name() string     { return "set-budget" }
func (*setBudgetCmd) Synopsis() string { return "set a day's planned budget total" }
func (*setBudgetCmd) Usage() string {
	return `tw set-budget -n <name> -day <n> -total <amount>

  Sets the day's planned budget total, in the trip's local currency.
  Recorded expenses stay untouched.

Usage Examples:
$ tw set-budget -n "Rome" -day 1 -total 150

`
}

func (c *setBudgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Trip name (required)")
	f.IntVar(&c.day, "day", 0, "Day number, starting at 1 (required)")
	f.StringVar(&c.total, "total", "", "Planned total in the trip's local currency (required)")
}

func (c *setBudgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.day == 0 || c.total == "" {
		fmt.Fprintln(os.Stderr, "Error: -n, -day and -total are required.")
		return subcommands.ExitUsageError
	}
	index, err := parseDay(c.day)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	total, err := parseAmount(c.total)
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

	budget := day.Budget
	budget.Total = total
	if err := planner.UpdateBudget(trip.ID, index, budget); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Day %d of %q budget set to %s.\n",
		c.day, trip.Name, tripwise.M(total, budget.Currency).Round())
	return subcommands.ExitSuccess
}
