package budget

import "github.com/etnz/budget/date"

// WeekSummary is the derived weekly view of the ledger, recomputed on every
// render.
type WeekSummary struct {
	AsOf       date.Date
	WindowDays int
	Expenses   []Expense
	Spent      Money
	Remaining  Money
	Savings    Money
	Goal       Money
	ByCategory map[Category]Money
}

// WindowDays is the default weekly window.
const WindowDays = 7

// WeekSummary computes the weekly view as of the given day over the default
// seven-day window.
func (l *Ledger) WeekSummary(asOf date.Date) WeekSummary {
	weekly := l.WeeklyExpenses(asOf, WindowDays)
	spent := Total(weekly)
	return WeekSummary{
		AsOf:       asOf,
		WindowDays: WindowDays,
		Expenses:   weekly,
		Spent:      spent,
		Remaining:  l.RemainingBudget(spent),
		Savings:    l.SavingsProgress(spent),
		Goal:       l.SavingsGoal,
		ByCategory: ByCategory(weekly),
	}
}
