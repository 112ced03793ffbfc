package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/bluez/tripwise"
)

type convertCmd struct {
	amount string
	from   string
	to     string
}

func (*convertCmd) Name() string     { return "convert" }
func (*convertCmd) Synopsis() string { return "convert an amount between currencies" }
func (*convertCmd) Usage() string {
	return `tw convert -amount <amount> -from <currency> -to <currency>

  Converts an amount at the current exchange rate, without recording
  anything.

Usage Examples:
$ tw convert -amount 100 -from USD -to EUR

`
}

func (c *convertCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "amount", "", "Amount to convert (required)")
	f.StringVar(&c.from, "from", "", "Source currency (required)")
	f.StringVar(&c.to, "to", "", "Target currency (required)")
}

func (c *convertCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount == "" || c.from == "" || c.to == "" {
		fmt.Fprintln(os.Stderr, "Error: -amount, -from and -to are required.")
		return subcommands.ExitUsageError
	}
	amount, err := parseAmount(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	from, to := strings.ToUpper(c.from), strings.ToUpper(c.to)

	conv, err := newConverter()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	converted, err := conv.Convert(ctx, amount, from, to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("%s = %s\n",
		tripwise.M(amount, from).Round(), tripwise.M(converted, to).Round())
	return subcommands.ExitSuccess
}
