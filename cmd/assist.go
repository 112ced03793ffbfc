package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"google.golang.org/genai"

	"github.com/bluez/tripwise"
	"github.com/bluez/tripwise/agent"
)

type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI assistant" }
func (*assistCmd) Usage() string {
	return `tw assist [initial question]

  Starts an interactive session with the AI travel assistant. It can read
  your trips, itineraries and budgets, and search the web about your
  destinations. Needs a Gemini API key in GEMINI_API_KEY.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	// Reload on every question so the assistant sees the saved state, even
	// when it changes mid-session.
	source := func() ([]*tripwise.Trip, error) {
		planner, s, err := openPlanner()
		if err != nil {
			return nil, err
		}
		defer closeStore(s)
		return planner.Trips(), nil
	}

	concierge := agent.NewConcierge()
	plannerExpert := agent.NewPlannerExpert(source)
	a := agent.New(os.Stdout, os.Stdin, concierge, plannerExpert)

	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
