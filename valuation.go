package budget

import (
	"context"
	"log"

	"github.com/shopspring/decimal"
)

// Quoter resolves the most recent daily closing price for a ticker symbol.
type Quoter interface {
	Latest(ctx context.Context, symbol string) (decimal.Decimal, error)
}

// ValuationResult holds the derived metrics for one investment at render time.
// It is never persisted.
//
// The invested amount is converted at the current unit price into an implied
// share count; this is an approximation, not a real holdings ledger.
type ValuationResult struct {
	Symbol   string
	Invested Money
	Price    *Money // nil when the quote could not be fetched
	Quantity Quantity
	Value    Money
	Gain     Money
	GainPct  Percent
}

// Available reports whether price-derived fields could be computed.
func (r ValuationResult) Available() bool { return r.Price != nil }

// ComputeMetrics derives the valuation of one investment from a unit price.
//
// A zero invested amount or a zero price yields no derived ratios: the record
// still carries its symbol and invested amount, with zero metrics.
func ComputeMetrics(inv Investment, price decimal.Decimal) ValuationResult {
	r := ValuationResult{Symbol: inv.Symbol, Invested: inv.Invested}
	if price.IsZero() {
		return r
	}
	p := M(price, inv.Invested.Currency())
	r.Price = &p

	if inv.Invested.IsZero() {
		return r
	}
	r.Quantity = inv.Invested.DivPrice(p)
	r.Value = p.Mul(r.Quantity)
	r.Gain = r.Value.Sub(inv.Invested)
	gain, _ := r.Gain.Amount().Div(inv.Invested.Amount()).Float64()
	r.GainPct = Percent(gain * 100)
	return r
}

// Valuate resolves a current price for every investment record, sequentially,
// one call per symbol.
//
// A failed fetch never drops the record: it appears in the result with a nil
// Price and its raw invested amount, and the loop moves on to the next symbol.
func Valuate(ctx context.Context, q Quoter, investments []Investment) []ValuationResult {
	results := make([]ValuationResult, 0, len(investments))
	for _, inv := range investments {
		price, err := q.Latest(ctx, inv.Symbol)
		if err != nil {
			log.Printf("no quote for %s: %v", inv.Symbol, err)
			results = append(results, ValuationResult{Symbol: inv.Symbol, Invested: inv.Invested})
			continue
		}
		results = append(results, ComputeMetrics(inv, price))
	}
	return results
}

// Totals aggregates valuation results over the whole portfolio.
type Totals struct {
	Invested Money
	Value    Money
	Gain     Money
	GainPct  Percent
}

// PortfolioTotals sums valuation results. Entries with an unavailable price
// contribute their invested amount but no value or gain. A zero total
// invested reports a zero GainPct, never a division error.
func PortfolioTotals(results []ValuationResult) Totals {
	t := Totals{
		Invested: M(decimal.Zero, DefaultCurrency),
		Value:    M(decimal.Zero, DefaultCurrency),
		Gain:     M(decimal.Zero, DefaultCurrency),
	}
	for _, r := range results {
		t.Invested = t.Invested.Add(r.Invested)
		if !r.Available() {
			continue
		}
		t.Value = t.Value.Add(r.Value)
		t.Gain = t.Gain.Add(r.Gain)
	}
	if !t.Invested.IsZero() {
		gain, _ := t.Gain.Amount().Div(t.Invested.Amount()).Float64()
		t.GainPct = Percent(gain * 100)
	}
	return t
}
