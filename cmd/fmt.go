package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "rewrites the saved trips into canonical form"
}
func (*fmtCmd) Usage() string {
	return `tw fmt

  Loads every saved trip and writes the whole state back in canonical form:
  stable key order, one trip per line. Useful after editing the trips file by
  hand, and a cheap integrity check of the saved state.
`
}

func (*fmtCmd) SetFlags(_ *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	s, err := openStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeStore(s)

	// Load directly rather than through the planner: a corrupt state must
	// fail here, not silently become an empty list.
	trips, err := s.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: saved trips are not readable: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := s.Save(trips); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving trips: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Formatted %d trip(s).\n", len(trips))
	return subcommands.ExitSuccess
}
