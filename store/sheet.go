package store

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log"

	"github.com/etnz/budget"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Ranges of the two tabs in the backing spreadsheet. Tab names are part of
// the compatibility surface, like the CSV headers.
const (
	expensesRange    = "expenses!A:C"
	investmentsRange = "investments!A:C"
)

// SheetStore persists records in a remote Google Sheets spreadsheet, one tab
// per record kind, with the same column schema as the CSV files.
type SheetStore struct {
	spreadsheetID string
	svc           *sheets.Service
}

// NewSheetStore opens a store over the given spreadsheet. Credentials follow
// the usual Google application default chain; opts can override it (e.g.
// option.WithCredentialsFile).
func NewSheetStore(ctx context.Context, spreadsheetID string, opts ...option.ClientOption) (*SheetStore, error) {
	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("could not create sheets service: %w", err)
	}
	return &SheetStore{spreadsheetID: spreadsheetID, svc: svc}, nil
}

// LoadExpenses implements Store. An unreachable or malformed sheet degrades
// to an empty dataset.
func (s *SheetStore) LoadExpenses() []budget.Expense {
	expenses, err := s.readExpenses()
	if err != nil {
		log.Printf("could not load %s from sheet %s, starting empty: %v", expensesRange, s.spreadsheetID, err)
		return nil
	}
	return expenses
}

// LoadInvestments implements Store. An unreachable or malformed sheet
// degrades to an empty dataset.
func (s *SheetStore) LoadInvestments() []budget.Investment {
	investments, err := s.readInvestments()
	if err != nil {
		log.Printf("could not load %s from sheet %s, starting empty: %v", investmentsRange, s.spreadsheetID, err)
		return nil
	}
	return investments
}

// AppendExpense implements Store by rewriting the whole expenses range.
func (s *SheetStore) AppendExpense(e budget.Expense) error {
	expenses, err := s.readExpenses()
	if err != nil {
		return fmt.Errorf("cannot append to unreadable range %s: %w", expensesRange, err)
	}
	expenses = append(expenses, e)

	var buf bytes.Buffer
	if err := budget.EncodeExpenses(&buf, expenses); err != nil {
		return err
	}
	return s.writeRange(expensesRange, &buf)
}

// AppendInvestment implements Store by rewriting the whole investments range.
func (s *SheetStore) AppendInvestment(v budget.Investment) error {
	investments, err := s.readInvestments()
	if err != nil {
		return fmt.Errorf("cannot append to unreadable range %s: %w", investmentsRange, err)
	}
	investments = append(investments, v)

	var buf bytes.Buffer
	if err := budget.EncodeInvestments(&buf, investments); err != nil {
		return err
	}
	return s.writeRange(investmentsRange, &buf)
}

func (s *SheetStore) readExpenses() ([]budget.Expense, error) {
	buf, err := s.readRange(expensesRange)
	if err != nil {
		return nil, err
	}
	return budget.DecodeExpenses(buf)
}

func (s *SheetStore) readInvestments() ([]budget.Investment, error) {
	buf, err := s.readRange(investmentsRange)
	if err != nil {
		return nil, err
	}
	return budget.DecodeInvestments(buf)
}

// readRange fetches a sheet range and renders it as CSV so that both backends
// share the one schema-stable codec.
func (s *SheetStore) readRange(rng string) (*bytes.Buffer, error) {
	values, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, rng).Do()
	if err != nil {
		return nil, fmt.Errorf("could not read range %s: %w", rng, err)
	}

	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	for _, row := range values.Values {
		record := make([]string, len(row))
		for i, cell := range row {
			record[i] = fmt.Sprint(cell)
		}
		if err := cw.Write(record); err != nil {
			return nil, err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, err
	}
	return &buf, nil
}

// writeRange clears the range and uploads the full CSV content back. There is
// no transactionality: concurrent writers are not supported, last one wins.
func (s *SheetStore) writeRange(rng string, content *bytes.Buffer) error {
	cr := csv.NewReader(content)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return err
	}
	values := make([][]interface{}, len(rows))
	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		values[i] = cells
	}

	if _, err := s.svc.Spreadsheets.Values.Clear(s.spreadsheetID, rng, &sheets.ClearValuesRequest{}).Do(); err != nil {
		return fmt.Errorf("could not clear range %s: %w", rng, err)
	}
	vr := &sheets.ValueRange{Values: values}
	if _, err := s.svc.Spreadsheets.Values.Update(s.spreadsheetID, rng, vr).ValueInputOption("RAW").Do(); err != nil {
		return fmt.Errorf("could not update range %s: %w", rng, err)
	}
	return nil
}

var _ Store = (*SheetStore)(nil)
