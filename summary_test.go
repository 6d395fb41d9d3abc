package budget

import (
	"testing"

	"github.com/etnz/budget/date"
)

func TestLedger_WeekSummary(t *testing.T) {
	asOf := date.MustParse("2025-06-08")
	ledger := NewLedger()
	ledger.AppendExpense(
		NewExpense(date.MustParse("2025-06-02"), Food, EUR(40)),
		NewExpense(date.MustParse("2025-06-05"), Fun, EUR(25)),
		NewExpense(date.MustParse("2025-05-20"), Rent, EUR(800)), // outside the window
	)
	ledger.AppendInvestment(NewInvestment("AAPL", EUR(100), asOf))

	week := ledger.WeekSummary(asOf)

	if week.AsOf != asOf {
		t.Errorf("AsOf = %v, want %v", week.AsOf, asOf)
	}
	if week.WindowDays != WindowDays {
		t.Errorf("WindowDays = %d, want %d", week.WindowDays, WindowDays)
	}
	if len(week.Expenses) != 2 {
		t.Fatalf("got %d expenses in the window, want 2", len(week.Expenses))
	}
	if want := EUR(65); !week.Spent.Equal(want) {
		t.Errorf("Spent = %s, want %s", week.Spent, want)
	}
	if want := EUR(935); !week.Remaining.Equal(want) {
		t.Errorf("Remaining = %s, want %s", week.Remaining, want)
	}
	if want := EUR(935); !week.Savings.Equal(want) {
		t.Errorf("Savings = %s, want %s", week.Savings, want)
	}
	if !week.Goal.Equal(DefaultSavingsGoal) {
		t.Errorf("Goal = %s, want %s", week.Goal, DefaultSavingsGoal)
	}
	if len(week.ByCategory) != 2 {
		t.Errorf("ByCategory has %d entries, want 2", len(week.ByCategory))
	}
	if want := EUR(40); !week.ByCategory[Food].Equal(want) {
		t.Errorf("ByCategory[Food] = %s, want %s", week.ByCategory[Food], want)
	}
}

func TestLedger_WeekSummary_Empty(t *testing.T) {
	ledger := NewLedger()
	week := ledger.WeekSummary(date.MustParse("2025-06-08"))

	if len(week.Expenses) != 0 {
		t.Errorf("got %d expenses, want none", len(week.Expenses))
	}
	if !week.Spent.IsZero() {
		t.Errorf("Spent = %s, want zero", week.Spent)
	}
	if !week.Remaining.Equal(DefaultBudget) {
		t.Errorf("Remaining = %s, want the full budget %s", week.Remaining, DefaultBudget)
	}
	if len(week.ByCategory) != 0 {
		t.Errorf("ByCategory has %d entries, want none", len(week.ByCategory))
	}
}
