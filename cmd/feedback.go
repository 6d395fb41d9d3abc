package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/etnz/budget"
	"github.com/etnz/budget/agent"
	"github.com/etnz/budget/renderer"
	"github.com/etnz/budget/yahoo"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// fallbackFeedback is printed whenever the advice generation fails, so that a
// broken or unreachable model never blocks the dashboard.
const fallbackFeedback = "Unable to generate feedback. Please check your Gemini setup."

// feedbackCmd holds the flags for the 'feedback' subcommand.
type feedbackCmd struct {
	date string
}

func (*feedbackCmd) Name() string     { return "feedback" }
func (*feedbackCmd) Synopsis() string { return "generate AI feedback on the week" }
func (*feedbackCmd) Usage() string {
	return `bgt feedback [-d <date>]

  Builds a summary of the weekly spending and investments, and asks the AI
  coach for feedback. Requires Gemini credentials in the environment.
`
}

func (c *feedbackCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "End date for the weekly window (defaults to today)")
}

func (c *feedbackCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	s, err := OpenStore(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	ledger, err := LoadLedger(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	week := ledger.WeekSummary(on)
	if len(week.Expenses) == 0 {
		fmt.Println("Add some expenses to get feedback.")
		return subcommands.ExitSuccess
	}

	results := budget.Valuate(ctx, yahoo.New(), ledger.AllInvestments())
	prompt := renderer.CoachContext(week, results, budget.PortfolioTotals(results))

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		log.Printf("could not create the Gemini client: %v", err)
		fmt.Println(fallbackFeedback)
		return subcommands.ExitSuccess
	}

	reply, err := agent.Feedback(ctx, client, prompt)
	if err != nil {
		log.Printf("could not generate feedback: %v", err)
		fmt.Println(fallbackFeedback)
		return subcommands.ExitSuccess
	}

	printMarkdown(reply)
	return subcommands.ExitSuccess
}
