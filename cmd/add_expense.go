package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/bluez/tripwise"
)

type addExpenseCmd struct {
	name     string
	day      int
	amount   string
	currency string
	category string
	note     string
}

func (*addExpenseCmd) Name() string     { return "add-expense" }
func (*addExpenseCmd) Synopsis() string { return "record an expense on a day's budget" }
func (*addExpenseCmd) Usage() string {
	return `tw add-expense -n <name> -day <n> -amount <amount> [-cur <currency>] [-cat <category>] [-note <note>]

  Records an expense. When the currency differs from the trip's local
  currency the amount is converted at the current exchange rate; both the
  amount as paid and the converted amount are kept. If the rate cannot be
  fetched the expense is not recorded.

  Categories: food, transportation, accommodation, activities, shopping, other.

Usage Examples:
$ tw add-expense -n "Rome" -day 1 -amount 45.50 -cat food -note "dinner"
$ tw add-expense -n "Rome" -day 2 -amount 100 -cur USD -cat shopping

`
}

func (c *addExpenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Trip name (required)")
	f.IntVar(&c.day, "day", 0, "Day number, starting at 1 (required)")
	f.StringVar(&c.amount, "amount", "", "Amount paid (required)")
	f.StringVar(&c.currency, "cur", "", "Currency paid in, defaults to the trip's local currency")
	f.StringVar(&c.category, "cat", string(tripwise.ExpenseOther), "Expense category")
	f.StringVar(&c.note, "note", "", "Note, free text")
}

func (c *addExpenseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.day == 0 || c.amount == "" {
		fmt.Fprintln(os.Stderr, "Error: -n, -day and -amount are required.")
		return subcommands.ExitUsageError
	}
	index, err := parseDay(c.day)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	amount, err := parseAmount(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	category, err := tripwise.ParseExpenseCategory(c.category)
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
	currency := c.currency
	if currency == "" {
		currency = trip.LocalCurrency
	}

	conv, err := newConverter()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	e := tripwise.NewExpense(amount, currency, category, c.note)
	if err := planner.AddExpense(ctx, trip.ID, index, e, conv); err != nil {
		fmt.Fprintf(os.Stderr, "Error recording expense: %v\n", err)
		return subcommands.ExitFailure
	}

	day, _ := trip.Day(index)
	recorded := day.Budget.Expenses[len(day.Budget.Expenses)-1]
	if recorded.ConvertedAmount != nil {
		fmt.Printf("Recorded %s = %s on day %d of %q (id %s).\n",
			tripwise.M(recorded.Amount, recorded.Currency).Round(),
			tripwise.M(*recorded.ConvertedAmount, trip.LocalCurrency),
			c.day, trip.Name, recorded.ID)
	} else {
		fmt.Printf("Recorded %s on day %d of %q (id %s).\n",
			tripwise.M(recorded.Amount, recorded.Currency).Round(), c.day, trip.Name, recorded.ID)
	}
	return subcommands.ExitSuccess
}
