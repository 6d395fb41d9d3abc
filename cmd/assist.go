package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/budget/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd is the subcommand for the interactive coach session.
type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI coach" }
func (*assistCmd) Usage() string {
	return `bgt assist [initial question]

  Starts an interactive chat with the finance coach. The conversation history
  lives in memory for the duration of the session only. Type 'bye' to exit.
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

	session := agent.NewSession(os.Stdout, os.Stdin)
	if err := session.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Coach session failed:", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
