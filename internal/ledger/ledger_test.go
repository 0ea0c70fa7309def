package ledger

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLedger_SoldAndReturned(t *testing.T) {
	l := New()
	assert.Equal(t, int64(0), l.TotalItemsSold())
	assert.True(t, l.TotalRevenue().IsZero())

	l.Sold(decimal.RequireFromString("10.00"))
	l.Sold(decimal.RequireFromString("25.50"))
	assert.Equal(t, int64(2), l.TotalItemsSold())
	assert.Equal(t, "35.50", l.TotalRevenue().StringFixed(2))

	l.Returned(decimal.RequireFromString("25.50"))
	snap := l.Snapshot()
	assert.Equal(t, int64(1), snap.ItemsSold)
	assert.Equal(t, "10.00", snap.Revenue.StringFixed(2))
}

func TestLedger_ExactAfterManyOperations(t *testing.T) {
	l := New()
	price := decimal.RequireFromString("0.10")
	for i := 0; i < 1000; i++ {
		l.Sold(price)
	}
	for i := 0; i < 1000; i++ {
		l.Returned(price)
	}
	assert.True(t, l.TotalRevenue().IsZero())
	assert.Equal(t, int64(0), l.TotalItemsSold())
}

func TestLedger_ConcurrentReads(t *testing.T) {
	l := New()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				l.Sold(decimal.NewFromInt(1))
				_ = l.Snapshot()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(800), l.TotalItemsSold())
	assert.True(t, l.TotalRevenue().Equal(decimal.NewFromInt(800)))
}
