// Package store implements the record store: append-only tabular persistence
// for expense and investment records over an interchangeable medium.
//
// Loading never fails past this boundary: a missing or malformed backing
// resource degrades to an empty dataset with a log line, so one bad file never
// blocks the dashboard from rendering. Appending rewrites the full dataset
// (the media are not true append devices) and reports a recoverable error on
// failure; the entry is then lost, there is no retry queue.
//
// There is no locking of any kind: at most one process instance is assumed,
// and the last writer wins.
package store

import "github.com/etnz/budget"

// Store is the persistence contract shared by all backing media.
type Store interface {
	// LoadExpenses returns all expense records in insertion order, or an
	// empty slice if the resource is missing or unreadable.
	LoadExpenses() []budget.Expense
	// LoadInvestments returns all investment records in insertion order, or
	// an empty slice if the resource is missing or unreadable.
	LoadInvestments() []budget.Investment
	// AppendExpense persists the dataset extended with one expense record.
	AppendExpense(budget.Expense) error
	// AppendInvestment persists the dataset extended with one investment record.
	AppendInvestment(budget.Investment) error
}
