// Package renderer turns ledger views and valuations into markdown, and
// builds the deterministic context paragraph handed to the coach.
package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/budget"
)

// SummaryMarkdown renders the weekly summary view.
func SummaryMarkdown(s budget.WeekSummary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Weekly Summary on %s\n\n", s.AsOf)
	fmt.Fprintf(&b, "| | |\n|---|---:|\n")
	fmt.Fprintf(&b, "| Total Spent (This Week) | %s |\n", s.Spent)
	fmt.Fprintf(&b, "| Remaining Budget | %s |\n", s.Remaining)
	fmt.Fprintf(&b, "| Progress to Savings Goal | %s / %s |\n", s.Savings, s.Goal)

	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprintf(w, "\n## By Category\n\n")
		fmt.Fprintf(w, "| Category | Total |\n|---|---:|\n")
		printed := false
		// fixed enum order, absent categories omitted
		for _, c := range budget.Categories() {
			total, ok := s.ByCategory[c]
			if !ok {
				continue
			}
			fmt.Fprintf(w, "| %s | %s |\n", c, total)
			printed = true
		}
		return printed
	})

	return b.String()
}

// HoldingsMarkdown renders the investment tracker view. Entries whose quote
// could not be fetched show explicit unavailable markers instead of being
// dropped.
func HoldingsMarkdown(results []budget.ValuationResult, totals budget.Totals) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Investment Tracker\n\n")
	if len(results) == 0 {
		fmt.Fprintf(&b, "No investments recorded yet.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "| Symbol | Invested | Price | Quantity | Value | Gain | Gain %% |\n")
	fmt.Fprintf(&b, "|---|---:|---:|---:|---:|---:|---:|\n")
	for _, r := range results {
		if !r.Available() {
			fmt.Fprintf(&b, "| %s | %s | n/a | n/a | n/a | n/a | n/a |\n", r.Symbol, r.Invested)
			continue
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			r.Symbol, r.Invested, *r.Price, r.Quantity, r.Value, r.Gain.SignedString(), r.GainPct.SignedString())
	}

	fmt.Fprintf(&b, "\nTotal portfolio value: %s (invested %s, gain %s %s)\n",
		totals.Value, totals.Invested, totals.Gain.SignedString(), totals.GainPct.SignedString())

	return b.String()
}

// CoachContext renders the fixed-order natural-language paragraph that is the
// sole input handed to the advice generation call. The output is
// deterministic for a given input: categories follow the enum order and
// investments keep their insertion order.
func CoachContext(s budget.WeekSummary, results []budget.ValuationResult, totals budget.Totals) string {
	var b strings.Builder

	fmt.Fprintf(&b, "This week, you spent %s and saved %s. ", s.Spent, s.Savings)

	cats := make([]string, 0, len(s.ByCategory))
	for _, c := range budget.Categories() {
		if total, ok := s.ByCategory[c]; ok {
			cats = append(cats, fmt.Sprintf("%s: %s", c, total))
		}
	}
	if len(cats) > 0 {
		fmt.Fprintf(&b, "Your expenses per category: %s. ", strings.Join(cats, ", "))
	}

	invs := make([]string, 0, len(results))
	for _, r := range results {
		invs = append(invs, fmt.Sprintf("%s (%s)", r.Symbol, r.Invested))
	}
	if len(invs) > 0 {
		fmt.Fprintf(&b, "You also invested in: %s. ", strings.Join(invs, ", "))
		fmt.Fprintf(&b, "Total portfolio value: %s. ", totals.Value)
	}

	fmt.Fprintf(&b, "Give helpful weekly feedback including tips or suggestions.")
	return b.String()
}
