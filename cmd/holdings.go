package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/budget"
	"github.com/etnz/budget/renderer"
	"github.com/etnz/budget/yahoo"
	"github.com/google/subcommands"
)

// holdingsCmd holds the flags for the 'holdings' subcommand.
type holdingsCmd struct{}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "display investments with live prices" }
func (*holdingsCmd) Usage() string {
	return `bgt holdings

  Displays every investment with its current price, implied quantity, value
  and gain. A symbol whose quote cannot be fetched still appears, with its
  derived fields marked unavailable.
`
}

func (*holdingsCmd) SetFlags(_ *flag.FlagSet) {}

func (c *holdingsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	results := budget.Valuate(ctx, yahoo.New(), ledger.AllInvestments())
	totals := budget.PortfolioTotals(results)

	printMarkdown(renderer.HoldingsMarkdown(results, totals))
	return subcommands.ExitSuccess
}
