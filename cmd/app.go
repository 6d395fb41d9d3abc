// Package cmd implements the CLI application to track a weekly budget and
// simple investments.
package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/budget"
	"github.com/etnz/budget/date"
	"github.com/etnz/budget/store"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// Commands lists the subcommands. A main package registers them all and
// executes the user-selected one.
var Commands = []subcommands.Command{
	&addCmd{},
	&investCmd{},
	&summaryCmd{},
	&holdingsCmd{},
	&feedbackCmd{},
	&assistCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	expensesFile    = flag.String("expenses-file", store.DefaultExpensesFile, "Path to the expenses file (CSV format)")
	investmentsFile = flag.String("investments-file", store.DefaultInvestmentsFile, "Path to the investments file (CSV format)")
	sheetID         = flag.String("sheet", "", "Google Sheets spreadsheet id to use instead of local files")
	weeklyBudget    = flag.String("budget", "", "Weekly budget, in EUR (defaults to 1000)")
	savingsGoal     = flag.String("savings-goal", "", "Weekly savings goal, in EUR (defaults to 300)")
)

// OpenStore opens the record store selected by the global flags: the local
// CSV files by default, or a remote spreadsheet when -sheet is given.
func OpenStore(ctx context.Context) (store.Store, error) {
	if *sheetID != "" {
		return store.NewSheetStore(ctx, *sheetID)
	}
	return store.NewFileStore(*expensesFile, *investmentsFile), nil
}

// LoadLedger loads the full ledger from the store and applies the budget
// configuration flags.
func LoadLedger(s store.Store) (*budget.Ledger, error) {
	ledger := budget.NewLedger()
	if *weeklyBudget != "" {
		m, err := parseAmount(*weeklyBudget)
		if err != nil {
			return nil, fmt.Errorf("invalid -budget: %w", err)
		}
		ledger.Budget = m
	}
	if *savingsGoal != "" {
		m, err := parseAmount(*savingsGoal)
		if err != nil {
			return nil, fmt.Errorf("invalid -savings-goal: %w", err)
		}
		ledger.SavingsGoal = m
	}
	ledger.AppendExpense(s.LoadExpenses()...)
	ledger.AppendInvestment(s.LoadInvestments()...)
	return ledger, nil
}

// parseAmount parses a non-negative decimal amount in the default currency.
func parseAmount(s string) (budget.Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return budget.Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if d.IsNegative() {
		return budget.Money{}, fmt.Errorf("amount %q is negative", s)
	}
	return budget.EUR(d), nil
}

// parseDate parses a date flag, defaulting to today when empty.
func parseDate(s string) (date.Date, error) {
	if s == "" {
		return date.Today(), nil
	}
	return date.Parse(s)
}
