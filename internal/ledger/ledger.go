// Package ledger keeps the process-lifetime sales counters.
package ledger

import (
	"sync"

	"github.com/shopspring/decimal"
)

// Totals is a point-in-time copy of the counters.
type Totals struct {
	ItemsSold int64           `json:"items_sold"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// Ledger counts every item added to (and taken back out of) any cart since the
// process started. It is never reset, not even by payment.
type Ledger struct {
	mu        sync.Mutex
	itemsSold int64
	revenue   decimal.Decimal
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{}
}

// Sold records one item at price.
func (l *Ledger) Sold(price decimal.Decimal) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.itemsSold++
	l.revenue = l.revenue.Add(price)
}

// Returned reverses one Sold call for price.
func (l *Ledger) Returned(price decimal.Decimal) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.itemsSold--
	l.revenue = l.revenue.Sub(price)
}

func (l *Ledger) TotalItemsSold() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.itemsSold
}

func (l *Ledger) TotalRevenue() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.revenue
}

// Snapshot returns both counters read under one lock.
func (l *Ledger) Snapshot() Totals {
	l.mu.Lock()
	defer l.mu.Unlock()
	return Totals{ItemsSold: l.itemsSold, Revenue: l.revenue}
}
