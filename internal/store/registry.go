// Package store owns the single in-memory copy of every collection for the
// lifetime of a session. Each mutation rewrites the whole backing file
// synchronously, so memory and disk agree after every call.
package store

import (
	"github.com/rbelkadi/chantrack/internal/domain"
	"github.com/rbelkadi/chantrack/internal/tabular"
)

// Table holds one collection in memory plus the codec and store needed to
// persist it. Update and remove operate on the first record matched by the
// caller's predicate; with duplicate names that is an accepted ambiguity,
// which is why handlers route by synthetic ID instead.
type Table[T any] struct {
	collection tabular.Collection
	store      *tabular.Store
	encode     func(T) tabular.Record
	rows       []T
}

func newTable[T any](st *tabular.Store, c tabular.Collection, decode func(tabular.Record) T, encode func(T) tabular.Record) *Table[T] {
	recs := st.Load(c)
	rows := make([]T, 0, len(recs))
	for _, r := range recs {
		rows = append(rows, decode(r))
	}
	return &Table[T]{collection: c, store: st, encode: encode, rows: rows}
}

// All returns a copy of the rows in stored order.
func (t *Table[T]) All() []T {
	return append([]T(nil), t.rows...)
}

func (t *Table[T]) Len() int {
	return len(t.rows)
}

// FindFirst returns the first row matching the predicate.
func (t *Table[T]) FindFirst(match func(T) bool) (T, bool) {
	for _, row := range t.rows {
		if match(row) {
			return row, true
		}
	}
	var zero T
	return zero, false
}

// Append adds a row and persists the collection.
func (t *Table[T]) Append(row T) error {
	t.rows = append(t.rows, row)
	return t.flush()
}

// UpdateFirst mutates the first matching row in place and persists. No match
// is a no-op and reports false.
func (t *Table[T]) UpdateFirst(match func(T) bool, mutate func(*T)) (bool, error) {
	for i := range t.rows {
		if match(t.rows[i]) {
			mutate(&t.rows[i])
			return true, t.flush()
		}
	}
	return false, nil
}

// RemoveFirst deletes the first matching row and persists. No match is a
// no-op and reports false.
func (t *Table[T]) RemoveFirst(match func(T) bool) (bool, error) {
	for i := range t.rows {
		if match(t.rows[i]) {
			t.rows = append(t.rows[:i], t.rows[i+1:]...)
			return true, t.flush()
		}
	}
	return false, nil
}

// Replace swaps the whole collection and persists it.
func (t *Table[T]) Replace(rows []T) error {
	t.rows = append([]T(nil), rows...)
	return t.flush()
}

func (t *Table[T]) flush() error {
	recs := make([]tabular.Record, len(t.rows))
	for i, row := range t.rows {
		recs[i] = t.encode(row)
	}
	return t.store.Save(t.collection, recs)
}

// Registry bundles every collection for one session. It is built once at
// startup and passed explicitly to services and handlers; there are no
// package-level instances.
type Registry struct {
	Sites     *Table[domain.Site]
	Clients   *Table[domain.Client]
	Invoices  *Table[domain.Invoice]
	Quotes    *Table[domain.Quote]
	Stock     *Table[domain.StockItem]
	Requests  *Table[domain.MaterialRequest]
	Movements *Table[domain.StockMovement]
}

// Open loads every collection from the tabular store into memory.
func Open(st *tabular.Store) *Registry {
	return &Registry{
		Sites:     newTable(st, Sites, domain.SiteFromRecord, domain.Site.Record),
		Clients:   newTable(st, Clients, domain.ClientFromRecord, domain.Client.Record),
		Invoices:  newTable(st, Invoices, domain.InvoiceFromRecord, domain.Invoice.Record),
		Quotes:    newTable(st, Quotes, domain.QuoteFromRecord, domain.Quote.Record),
		Stock:     newTable(st, Stock, domain.StockItemFromRecord, domain.StockItem.Record),
		Requests:  newTable(st, Requests, domain.MaterialRequestFromRecord, domain.MaterialRequest.Record),
		Movements: newTable(st, Movements, domain.StockMovementFromRecord, domain.StockMovement.Record),
	}
}
