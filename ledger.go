package budget

import (
	"iter"

	"github.com/etnz/budget/date"
	"github.com/shopspring/decimal"
)

// Default session configuration, overridable per ledger.
var (
	DefaultBudget      = EUR(1000)
	DefaultSavingsGoal = EUR(300)
)

// Ledger is the in-memory collection of expense and investment records for the
// current session.
//
// Records keep their insertion order. Append is the only mutation: no record
// is ever edited or removed through the ledger.
type Ledger struct {
	expenses    []Expense
	investments []Investment

	// Budget is the weekly spending envelope; SavingsGoal is the target the
	// weekly savings are displayed against. Neither is enforced.
	Budget      Money
	SavingsGoal Money
}

// NewLedger creates an empty ledger with the default budget configuration.
func NewLedger() *Ledger {
	return &Ledger{
		Budget:      DefaultBudget,
		SavingsGoal: DefaultSavingsGoal,
	}
}

// AppendExpense appends an expense record to the ledger.
func (l *Ledger) AppendExpense(exps ...Expense) { l.expenses = append(l.expenses, exps...) }

// AppendInvestment appends an investment record to the ledger.
func (l *Ledger) AppendInvestment(invs ...Investment) {
	l.investments = append(l.investments, invs...)
}

// Expenses returns an iterator over expense records in insertion order.
func (l *Ledger) Expenses() iter.Seq2[int, Expense] {
	return func(yield func(int, Expense) bool) {
		for i, e := range l.expenses {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Investments returns an iterator over investment records in insertion order.
func (l *Ledger) Investments() iter.Seq2[int, Investment] {
	return func(yield func(int, Investment) bool) {
		for i, v := range l.investments {
			if !yield(i, v) {
				return
			}
		}
	}
}

// AllInvestments returns a copy of the investment records in insertion order.
func (l *Ledger) AllInvestments() []Investment {
	out := make([]Investment, len(l.investments))
	copy(out, l.investments)
	return out
}

// NumExpenses returns the number of expense records.
func (l *Ledger) NumExpenses() int { return len(l.expenses) }

// NumInvestments returns the number of investment records.
func (l *Ledger) NumInvestments() int { return len(l.investments) }

// WeeklyExpenses returns the expenses dated on or after asOf minus windowDays.
//
// The lower bound is inclusive and the comparison has calendar-day
// granularity. Insertion order is preserved in the returned subsequence.
func (l *Ledger) WeeklyExpenses(asOf date.Date, windowDays int) []Expense {
	from := asOf.Add(-windowDays)
	weekly := make([]Expense, 0, len(l.expenses))
	for _, e := range l.expenses {
		if e.Date.Before(from) {
			continue
		}
		weekly = append(weekly, e)
	}
	return weekly
}

// Total sums the amounts of a subsequence of expenses. An empty input yields
// zero in the default currency.
func Total(expenses []Expense) Money {
	total := M(decimal.Zero, DefaultCurrency)
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// ByCategory groups a subsequence of expenses by category and sums each group.
// Categories absent from the input are omitted, not zero-filled.
func ByCategory(expenses []Expense) map[Category]Money {
	totals := make(map[Category]Money)
	for _, e := range expenses {
		totals[e.Category] = totals[e.Category].Add(e.Amount)
	}
	return totals
}

// RemainingBudget returns Budget minus the given spent amount. It may be
// negative; there is no floor.
func (l *Ledger) RemainingBudget(spent Money) Money { return l.Budget.Sub(spent) }

// SavingsProgress returns the amount saved this week (Budget minus spent), to
// be displayed against SavingsGoal. Nothing is enforced.
func (l *Ledger) SavingsProgress(spent Money) Money { return l.Budget.Sub(spent) }
