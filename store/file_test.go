package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/budget"
	"github.com/etnz/budget/date"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	dir := t.TempDir()
	return NewFileStore(
		filepath.Join(dir, "expenses.csv"),
		filepath.Join(dir, "investments.csv"),
	)
}

func TestFileStore_MissingFilesAreEmpty(t *testing.T) {
	s := newTestStore(t)

	if got := s.LoadExpenses(); len(got) != 0 {
		t.Errorf("LoadExpenses on missing file = %v, want empty", got)
	}
	if got := s.LoadInvestments(); len(got) != 0 {
		t.Errorf("LoadInvestments on missing file = %v, want empty", got)
	}
}

func TestFileStore_AppendThenReload(t *testing.T) {
	s := newTestStore(t)

	e1 := budget.NewExpense(date.MustParse("2025-06-08"), budget.Food, budget.EUR(40))
	e2 := budget.NewExpense(date.MustParse("2025-06-09"), budget.Gym, budget.EUR(25.5))

	if err := s.AppendExpense(e1); err != nil {
		t.Fatalf("AppendExpense: %v", err)
	}
	if err := s.AppendExpense(e2); err != nil {
		t.Fatalf("AppendExpense: %v", err)
	}

	got := s.LoadExpenses()
	if len(got) != 2 {
		t.Fatalf("LoadExpenses = %d records, want 2", len(got))
	}
	// The last element equals the appended record, schema-stable.
	last := got[1]
	if last.Date != e2.Date || last.Category != e2.Category || !last.Amount.Equal(e2.Amount) {
		t.Errorf("last record = %v, want %v", last, e2)
	}
}

func TestFileStore_AppendInvestmentThenReload(t *testing.T) {
	s := newTestStore(t)

	v := budget.NewInvestment("aapl", budget.EUR(1000), date.MustParse("2025-05-01"))
	if err := s.AppendInvestment(v); err != nil {
		t.Fatalf("AppendInvestment: %v", err)
	}

	got := s.LoadInvestments()
	if len(got) != 1 {
		t.Fatalf("LoadInvestments = %d records, want 1", len(got))
	}
	if got[0].Symbol != "AAPL" || !got[0].Invested.Equal(v.Invested) || got[0].Added != v.Added {
		t.Errorf("record = %v, want %v", got[0], v)
	}
}

func TestFileStore_MalformedFile(t *testing.T) {
	s := newTestStore(t)
	if err := os.MkdirAll(filepath.Dir(s.ExpensesPath), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(s.ExpensesPath, []byte("date,category,amount\ngarbage,NotACategory,much\n"), 0644); err != nil {
		t.Fatal(err)
	}

	// Load degrades to empty, it never raises past the store boundary.
	if got := s.LoadExpenses(); len(got) != 0 {
		t.Errorf("LoadExpenses on malformed file = %v, want empty", got)
	}

	// Append refuses to clobber data it cannot read.
	e := budget.NewExpense(date.MustParse("2025-06-08"), budget.Food, budget.EUR(40))
	if err := s.AppendExpense(e); err == nil {
		t.Errorf("AppendExpense on malformed file should fail, not overwrite")
	}
}
