package budget

import (
	"testing"

	"github.com/etnz/budget/date"
)

func TestLedger_WeeklyExpenses(t *testing.T) {
	ledger := NewLedger()
	ledger.AppendExpense(
		NewExpense(date.MustParse("2025-06-01"), Rent, EUR(500)),
		NewExpense(date.MustParse("2025-06-08"), Food, EUR(40)),
		NewExpense(date.MustParse("2025-06-09"), Gym, EUR(25)),
		NewExpense(date.MustParse("2025-06-15"), Fun, EUR(60)),
	)

	testCases := []struct {
		name   string
		asOf   string
		window int
		want   int
	}{
		{
			name:   "boundary date is included",
			asOf:   "2025-06-15",
			window: 7,
			want:   3, // 2025-06-08 is exactly asOf-7 and must be kept
		},
		{
			name:   "strictly older record is excluded",
			asOf:   "2025-06-16",
			window: 7,
			want:   2, // 2025-06-08 is now one day too old
		},
		{
			name:   "window with no records",
			asOf:   "2025-07-30",
			window: 7,
			want:   0,
		},
		{
			name:   "wider window keeps everything",
			asOf:   "2025-06-15",
			window: 30,
			want:   4,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ledger.WeeklyExpenses(date.MustParse(tc.asOf), tc.window)
			if len(got) != tc.want {
				t.Errorf("WeeklyExpenses(%s, %d) returned %d records, want %d", tc.asOf, tc.window, len(got), tc.want)
			}
			// Insertion order must be preserved in the subsequence.
			for i := 1; i < len(got); i++ {
				if got[i].Date.Before(got[i-1].Date) {
					t.Errorf("subsequence out of order: %v before %v", got[i], got[i-1])
				}
			}
		})
	}
}

func TestTotal(t *testing.T) {
	if got := Total(nil); !got.IsZero() {
		t.Errorf("Total(nil) = %s, want zero", got)
	}

	expenses := []Expense{
		NewExpense(date.MustParse("2025-06-08"), Food, EUR(40)),
		NewExpense(date.MustParse("2025-06-09"), Food, EUR(10.5)),
		NewExpense(date.MustParse("2025-06-09"), Gym, EUR(25)),
	}
	if got, want := Total(expenses), EUR(75.5); !got.Equal(want) {
		t.Errorf("Total = %s, want %s", got, want)
	}
}

func TestTotal_MonotonicUnderAppend(t *testing.T) {
	ledger := NewLedger()
	prev := Total(ledger.WeeklyExpenses(date.MustParse("2025-06-15"), 7))

	amounts := []float64{0, 12.5, 3, 100}
	for _, a := range amounts {
		ledger.AppendExpense(NewExpense(date.MustParse("2025-06-12"), Other, EUR(a)))
		total := Total(ledger.WeeklyExpenses(date.MustParse("2025-06-15"), 7))
		if total.LessThan(prev) {
			t.Fatalf("total decreased from %s to %s after appending %v", prev, total, a)
		}
		prev = total
	}
}

func TestByCategory(t *testing.T) {
	expenses := []Expense{
		NewExpense(date.MustParse("2025-06-08"), Food, EUR(40)),
		NewExpense(date.MustParse("2025-06-09"), Food, EUR(10)),
		NewExpense(date.MustParse("2025-06-09"), Gym, EUR(25)),
	}

	got := ByCategory(expenses)

	// Keys are exactly the distinct categories present in the input.
	if len(got) != 2 {
		t.Fatalf("ByCategory returned %d categories, want 2: %v", len(got), got)
	}
	if _, ok := got[Rent]; ok {
		t.Errorf("ByCategory zero-filled absent category Rent")
	}
	if want := EUR(50); !got[Food].Equal(want) {
		t.Errorf("Food total = %s, want %s", got[Food], want)
	}
	if want := EUR(25); !got[Gym].Equal(want) {
		t.Errorf("Gym total = %s, want %s", got[Gym], want)
	}

	// The sum over values equals Total on the same input.
	sum := EUR(0)
	for _, m := range got {
		sum = sum.Add(m)
	}
	if total := Total(expenses); !sum.Equal(total) {
		t.Errorf("sum of category totals %s != Total %s", sum, total)
	}
}

func TestLedger_BudgetMath(t *testing.T) {
	ledger := NewLedger()

	if got, want := ledger.RemainingBudget(EUR(250)), EUR(750); !got.Equal(want) {
		t.Errorf("RemainingBudget(250) = %s, want %s", got, want)
	}

	// Overspending goes negative, no floor.
	if got := ledger.RemainingBudget(EUR(1200)); !got.IsNegative() {
		t.Errorf("RemainingBudget(1200) = %s, want a negative value", got)
	}

	if got, want := ledger.SavingsProgress(EUR(600)), EUR(400); !got.Equal(want) {
		t.Errorf("SavingsProgress(600) = %s, want %s", got, want)
	}
}

func TestParseCategory(t *testing.T) {
	for _, c := range Categories() {
		got, err := ParseCategory(c.String())
		if err != nil {
			t.Errorf("ParseCategory(%q): %v", c.String(), err)
		}
		if got != c {
			t.Errorf("ParseCategory(%q) = %v, want %v", c.String(), got, c)
		}
	}
	if got, err := ParseCategory("food"); err != nil || got != Food {
		t.Errorf("ParseCategory(%q) = %v, %v, want Food", "food", got, err)
	}
	if _, err := ParseCategory("Groceries"); err == nil {
		t.Errorf("ParseCategory accepted an unknown category")
	}
}
