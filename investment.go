package budget

import (
	"fmt"
	"strings"

	"github.com/etnz/budget/date"
)

// Investment is a single record of money put into a listed security.
//
// Only the invested amount is recorded, never a share count: the implied
// quantity is derived at render time from the current unit price. Records are
// immutable once written.
type Investment struct {
	Symbol   string // uppercase ticker, e.g. "AAPL"
	Invested Money
	Added    date.Date // optional, the zero date means unknown
}

// NewInvestment creates an investment record. The symbol is uppercased.
func NewInvestment(symbol string, invested Money, added date.Date) Investment {
	return Investment{
		Symbol:   strings.ToUpper(strings.TrimSpace(symbol)),
		Invested: invested,
		Added:    added,
	}
}

// Validate checks the investment for correctness.
func (v Investment) Validate() error {
	if v.Symbol == "" {
		return fmt.Errorf("investment has no symbol")
	}
	if v.Invested.IsNegative() {
		return fmt.Errorf("invested amount %s is negative", v.Invested)
	}
	return nil
}

func (v Investment) String() string {
	return fmt.Sprintf("%s %s", v.Symbol, v.Invested)
}
