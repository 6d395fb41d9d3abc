package budget

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/etnz/budget/date"
	"github.com/shopspring/decimal"
)

// This file implements the schema-stable CSV codec for the two record kinds.
// Column order and names are part of the compatibility surface:
//
//	date,category,amount
//	symbol,amount_invested,date_added
//
// date_added is written for every new record but the decoder accepts legacy
// two-column investment files that predate it.

var (
	expenseHeader    = []string{"date", "category", "amount"}
	investmentHeader = []string{"symbol", "amount_invested", "date_added"}
)

// DecodeExpenses reads expense records from CSV. A header row is expected and
// skipped; an empty stream yields an empty slice.
func DecodeExpenses(r io.Reader) ([]Expense, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("malformed expenses csv: %w", err)
	}

	expenses := make([]Expense, 0, len(rows))
	for i, row := range rows {
		if i == 0 && row[0] == expenseHeader[0] {
			continue // header row
		}
		if len(row) != 3 {
			return nil, fmt.Errorf("expenses row %d: got %d columns, want 3", i+1, len(row))
		}
		on, err := date.Parse(row[0])
		if err != nil {
			return nil, fmt.Errorf("expenses row %d: %w", i+1, err)
		}
		category, err := ParseCategory(row[1])
		if err != nil {
			return nil, fmt.Errorf("expenses row %d: %w", i+1, err)
		}
		amount, err := decimal.NewFromString(row[2])
		if err != nil {
			return nil, fmt.Errorf("expenses row %d: invalid amount %q: %w", i+1, row[2], err)
		}
		expenses = append(expenses, Expense{Date: on, Category: category, Amount: EUR(amount)})
	}
	return expenses, nil
}

// EncodeExpenses writes the full expense dataset as CSV, header included.
func EncodeExpenses(w io.Writer, expenses []Expense) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(expenseHeader); err != nil {
		return fmt.Errorf("could not write expenses header: %w", err)
	}
	for _, e := range expenses {
		row := []string{e.Date.String(), e.Category.String(), e.Amount.Amount().String()}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("could not write expense %v: %w", e, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// DecodeInvestments reads investment records from CSV. A header row is
// expected and skipped. Rows may have two columns (legacy, no date_added) or
// three.
func DecodeInvestments(r io.Reader) ([]Investment, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1 // legacy files have no date_added column

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("malformed investments csv: %w", err)
	}

	investments := make([]Investment, 0, len(rows))
	for i, row := range rows {
		if i == 0 && row[0] == investmentHeader[0] {
			continue // header row
		}
		if len(row) < 2 || len(row) > 3 {
			return nil, fmt.Errorf("investments row %d: got %d columns, want 2 or 3", i+1, len(row))
		}
		invested, err := decimal.NewFromString(row[1])
		if err != nil {
			return nil, fmt.Errorf("investments row %d: invalid amount %q: %w", i+1, row[1], err)
		}
		var added date.Date
		if len(row) == 3 && row[2] != "" {
			added, err = date.Parse(row[2])
			if err != nil {
				return nil, fmt.Errorf("investments row %d: %w", i+1, err)
			}
		}
		investments = append(investments, NewInvestment(row[0], EUR(invested), added))
	}
	return investments, nil
}

// EncodeInvestments writes the full investment dataset as CSV, header included.
func EncodeInvestments(w io.Writer, investments []Investment) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(investmentHeader); err != nil {
		return fmt.Errorf("could not write investments header: %w", err)
	}
	for _, v := range investments {
		added := ""
		if !v.Added.IsZero() {
			added = v.Added.String()
		}
		row := []string{v.Symbol, v.Invested.Amount().String(), added}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("could not write investment %v: %w", v, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
