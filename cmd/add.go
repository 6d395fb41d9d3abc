package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/budget"
	"github.com/google/subcommands"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	date     string
	category string
	amount   string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a weekly expense" }
func (*addCmd) Usage() string {
	return `bgt add -c <category> -a <amount> [-d <date>]

  Appends an expense record to the ledger:
  - category: one of ` + categoryList() + `
  - amount: a non-negative amount in EUR (e.g. "12.50")
  - date: the expense date, defaults to today
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Expense date (defaults to today)")
	f.StringVar(&c.category, "c", "", "Expense category (required)")
	f.StringVar(&c.amount, "a", "", "Expense amount in EUR (required)")
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.category == "" || c.amount == "" {
		fmt.Fprintln(os.Stderr, "Error: -c and -a flags are required.")
		return subcommands.ExitUsageError
	}

	on, err := parseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	category, err := budget.ParseCategory(c.category)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v (want one of %s)\n", err, categoryList())
		return subcommands.ExitUsageError
	}
	amount, err := parseAmount(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	expense := budget.NewExpense(on, category, amount)
	if err := expense.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	s, err := OpenStore(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := s.AppendExpense(expense); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving expense: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Expense added: %s\n", expense)
	return subcommands.ExitSuccess
}

func categoryList() string {
	names := make([]string, 0, len(budget.Categories()))
	for _, c := range budget.Categories() {
		names = append(names, c.String())
	}
	return strings.Join(names, ", ")
}
