// Package budget implements a personal weekly budget and investment tracker.
//
// The domain model is an append-only ledger of dated expenses and simple
// investments, loaded wholesale from a record store at the start of a session
// and written back after every append. Derived views (weekly totals, category
// breakdown, live valuations) are recomputed on every render and never
// persisted.
package budget
