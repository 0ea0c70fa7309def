// Package cart holds the catalog, the customer's cart and the running bill.
package cart

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"medeasy/counter/domain"
	"medeasy/counter/internal/ledger"
	"medeasy/counter/internal/purchaselog"
)

// Line is a medicine shown with its 1-based position.
type Line struct {
	Index    int
	Medicine domain.Medicine
}

// Outcome reports what happened to one requested index.
type Outcome struct {
	Index    int
	Medicine domain.Medicine
	// Err is set when the index was skipped.
	Err error
	// LogErr is set when the item was added but the purchase log write failed.
	LogErr error
}

// Engine is not safe for concurrent use; the counter runs one session at a time.
type Engine struct {
	catalog  []domain.Medicine
	items    []*domain.Medicine
	bill     decimal.Decimal
	ledger   *ledger.Ledger
	recorder purchaselog.Recorder
}

// New takes ownership of catalog. Every add is counted in l and written to rec.
func New(catalog []domain.Medicine, l *ledger.Ledger, rec purchaselog.Recorder) *Engine {
	return &Engine{catalog: catalog, ledger: l, recorder: rec}
}

// Catalog lists every medicine with its catalog number.
func (e *Engine) Catalog() []Line {
	lines := make([]Line, len(e.catalog))
	for i, m := range e.catalog {
		lines[i] = Line{Index: i + 1, Medicine: m}
	}
	return lines
}

// Add puts the medicines at the given catalog numbers into the cart. Indices
// outside the catalog are skipped and reported; the rest are still added.
func (e *Engine) Add(ctx context.Context, customer domain.Customer, indices []int) []Outcome {
	outcomes := make([]Outcome, 0, len(indices))
	for _, idx := range indices {
		if idx < 1 || idx > len(e.catalog) {
			outcomes = append(outcomes, Outcome{Index: idx, Err: fmt.Errorf("%w: %d", ErrOutOfRange, idx)})
			continue
		}
		m := &e.catalog[idx-1]
		e.items = append(e.items, m)
		e.bill = e.bill.Add(m.Price)
		e.ledger.Sold(m.Price)

		out := Outcome{Index: idx, Medicine: *m}
		if e.recorder != nil {
			out.LogErr = e.recorder.Record(ctx, domain.NewPurchase(customer, *m))
		}
		outcomes = append(outcomes, out)
	}
	return outcomes
}

// Remove takes items out of the cart by cart position. Each index is checked
// against the cart as it is at that moment, so earlier removals in the same
// batch shift later positions. The purchase log is left as is.
func (e *Engine) Remove(indices []int) []Outcome {
	outcomes := make([]Outcome, 0, len(indices))
	for _, idx := range indices {
		if idx < 1 || idx > len(e.items) {
			outcomes = append(outcomes, Outcome{Index: idx, Err: fmt.Errorf("%w: %d", ErrOutOfRange, idx)})
			continue
		}
		m := e.items[idx-1]
		e.items = append(e.items[:idx-1], e.items[idx:]...)
		e.bill = e.bill.Sub(m.Price)
		e.ledger.Returned(m.Price)
		outcomes = append(outcomes, Outcome{Index: idx, Medicine: *m})
	}
	return outcomes
}

// Items lists the cart with current positions.
func (e *Engine) Items() []Line {
	lines := make([]Line, len(e.items))
	for i, m := range e.items {
		lines[i] = Line{Index: i + 1, Medicine: *m}
	}
	return lines
}

// Total returns the running bill.
func (e *Engine) Total() decimal.Decimal {
	return e.bill
}

// Clear empties the cart after payment. Sales counters are kept.
func (e *Engine) Clear() {
	e.items = nil
	e.bill = decimal.Zero
}
