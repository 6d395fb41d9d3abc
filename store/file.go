package store

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/etnz/budget"
)

// Default file locations, kept identical to the historical layout.
const (
	DefaultExpensesFile    = "data/expenses.csv"
	DefaultInvestmentsFile = "data/investments.csv"
)

// FileStore persists records in two local CSV files.
type FileStore struct {
	ExpensesPath    string
	InvestmentsPath string
}

// NewFileStore returns a FileStore over the given CSV files. Empty paths fall
// back to the default locations.
func NewFileStore(expensesPath, investmentsPath string) *FileStore {
	if expensesPath == "" {
		expensesPath = DefaultExpensesFile
	}
	if investmentsPath == "" {
		investmentsPath = DefaultInvestmentsFile
	}
	return &FileStore{ExpensesPath: expensesPath, InvestmentsPath: investmentsPath}
}

// LoadExpenses implements Store. A missing or malformed file degrades to an
// empty dataset.
func (s *FileStore) LoadExpenses() []budget.Expense {
	expenses, err := s.readExpenses()
	if err != nil {
		log.Printf("could not load %q, starting empty: %v", s.ExpensesPath, err)
		return nil
	}
	return expenses
}

// LoadInvestments implements Store. A missing or malformed file degrades to
// an empty dataset.
func (s *FileStore) LoadInvestments() []budget.Investment {
	investments, err := s.readInvestments()
	if err != nil {
		log.Printf("could not load %q, starting empty: %v", s.InvestmentsPath, err)
		return nil
	}
	return investments
}

// AppendExpense implements Store by rewriting the whole expenses file.
//
// Unlike Load, a malformed existing file is an error here: rewriting on top of
// data we cannot read would silently destroy it.
func (s *FileStore) AppendExpense(e budget.Expense) error {
	expenses, err := s.readExpenses()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot append to unreadable file %q: %w", s.ExpensesPath, err)
	}
	expenses = append(expenses, e)

	var buf bytes.Buffer
	if err := budget.EncodeExpenses(&buf, expenses); err != nil {
		return err
	}
	return writeFileAtomic(s.ExpensesPath, buf.Bytes())
}

// AppendInvestment implements Store by rewriting the whole investments file.
func (s *FileStore) AppendInvestment(v budget.Investment) error {
	investments, err := s.readInvestments()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot append to unreadable file %q: %w", s.InvestmentsPath, err)
	}
	investments = append(investments, v)

	var buf bytes.Buffer
	if err := budget.EncodeInvestments(&buf, investments); err != nil {
		return err
	}
	return writeFileAtomic(s.InvestmentsPath, buf.Bytes())
}

func (s *FileStore) readExpenses() ([]budget.Expense, error) {
	f, err := os.Open(s.ExpensesPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return budget.DecodeExpenses(f)
}

func (s *FileStore) readInvestments() ([]budget.Investment, error) {
	f, err := os.Open(s.InvestmentsPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return budget.DecodeInvestments(f)
}

// writeFileAtomic writes content to a temp file in the target directory and
// renames it into place, so a crash mid-write never truncates the dataset.
func writeFileAtomic(path string, content []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create %q: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

var _ Store = (*FileStore)(nil)
