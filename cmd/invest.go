package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/budget"
	"github.com/google/subcommands"
)

// investCmd holds the flags for the 'invest' subcommand.
type investCmd struct {
	symbol string
	amount string
	date   string
}

func (*investCmd) Name() string     { return "invest" }
func (*investCmd) Synopsis() string { return "record a stock investment" }
func (*investCmd) Usage() string {
	return `bgt invest -s <symbol> -a <amount> [-d <date>]

  Appends an investment record to the ledger:
  - symbol: stock ticker (e.g. AAPL, TSLA, MSFT), uppercased automatically
  - amount: the amount invested in EUR
  - date: the purchase date, defaults to today
`
}

func (c *investCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Stock ticker symbol (required)")
	f.StringVar(&c.amount, "a", "", "Amount invested in EUR (required)")
	f.StringVar(&c.date, "d", "", "Purchase date (defaults to today)")
}

func (c *investCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" || c.amount == "" {
		fmt.Fprintln(os.Stderr, "Error: -s and -a flags are required.")
		return subcommands.ExitUsageError
	}

	amount, err := parseAmount(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	on, err := parseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	investment := budget.NewInvestment(c.symbol, amount, on)
	if err := investment.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	s, err := OpenStore(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := s.AppendInvestment(investment); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving investment: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Investment in %s added: %s\n", investment.Symbol, investment.Invested)
	return subcommands.ExitSuccess
}
