package budget

import (
	"fmt"
	"strings"

	"github.com/etnz/budget/date"
)

// Category classifies an expense. The set is fixed; it is part of the
// compatibility surface of the expenses file.
type Category int

const (
	Food Category = iota
	Rent
	Gym
	Fun
	Other
)

// Categories lists all valid categories in display order.
func Categories() []Category { return []Category{Food, Rent, Gym, Fun, Other} }

func (c Category) String() string {
	switch c {
	case Food:
		return "Food"
	case Rent:
		return "Rent"
	case Gym:
		return "Gym"
	case Fun:
		return "Fun"
	case Other:
		return "Other"
	default:
		return "unknown"
	}
}

// ParseCategory parses a string into a Category. Matching is
// case-insensitive.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if strings.EqualFold(c.String(), s) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown category: %q", s)
}

// Expense is a single dated spending record. Expenses are immutable once
// written: they are appended to the ledger and never edited or deleted.
type Expense struct {
	Date     date.Date
	Category Category
	Amount   Money
}

// NewExpense creates an expense record.
func NewExpense(on date.Date, category Category, amount Money) Expense {
	return Expense{Date: on, Category: category, Amount: amount}
}

// Validate checks the expense for correctness.
func (e Expense) Validate() error {
	if e.Date.IsZero() {
		return fmt.Errorf("expense has no date")
	}
	if e.Amount.IsNegative() {
		return fmt.Errorf("expense amount %s is negative", e.Amount)
	}
	return nil
}

func (e Expense) String() string {
	return fmt.Sprintf("%s %s %s", e.Date, e.Category, e.Amount)
}
