package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/google/uuid"
)

type removeExpenseCmd struct {
	name string
	day  int
	id   string
}

func (*removeExpenseCmd) Name() string     { return "remove-expense" }
func (*removeExpenseCmd) Synopsis() string { return "remove an expense from a day's budget" }
func (*removeExpenseCmd) Usage() string {
	return `tw remove-expense -n <name> -day <n> -id <expense id>

  Removes the expense with the given id. Expense ids are printed by
  add-expense and shown in the budget report.
`
}

func (c *removeExpenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Trip name (required)")
	f.IntVar(&c.day, "day", 0, "Day number, starting at 1 (required)")
	f.StringVar(&c.id, "id", "", "Expense id (required)")
}

func (c *removeExpenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.day == 0 || c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -n, -day and -id are required.")
		return subcommands.ExitUsageError
	}
	index, err := parseDay(c.day)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	id, err := uuid.Parse(c.id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid expense id %q.\n", c.id)
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
	if err := planner.RemoveExpense(trip.ID, index, id); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Removed expense %s from day %d of %q.\n", id, c.day, trip.Name)
	return subcommands.ExitSuccess
}
