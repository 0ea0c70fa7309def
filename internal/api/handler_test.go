package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medeasy/counter/domain"
	"medeasy/counter/internal/database"
	"medeasy/counter/internal/ledger"
	"medeasy/counter/internal/migrations"
	"medeasy/counter/internal/purchaselog"
)

type failingReader struct{}

func (failingReader) Count(context.Context) (int64, error) { return 0, errors.New("db down") }
func (failingReader) Recent(context.Context, int) ([]domain.Purchase, error) {
	return nil, errors.New("db down")
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHealth(t *testing.T) {
	rec := get(t, New(ledger.New(), nil, "₹").Router(), "/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestSalesTotals(t *testing.T) {
	l := ledger.New()
	l.Sold(decimal.RequireFromString("10.00"))
	l.Sold(decimal.RequireFromString("25.50"))

	rec := get(t, New(l, nil, "₹").Router(), "/reports/sales")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"items_sold":2,"revenue":"35.50","display":"₹35.50"}`, rec.Body.String())
}

func TestPurchases_NotMountedWithoutMirror(t *testing.T) {
	rec := get(t, New(ledger.New(), nil, "₹").Router(), "/reports/purchases")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPurchases(t *testing.T) {
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, migrations.Run(db))
	store := purchaselog.NewSQLStore(db)
	ctx := context.Background()
	for _, name := range []string{"Paracetamol", "Ibuprofen", "Cetirizine"} {
		require.NoError(t, store.Record(ctx, domain.Purchase{CustomerName: "Asha", CustomerAddress: "12 Lake Rd", MedicineName: name, UnitPrice: decimal.NewFromInt(4)}))
	}
	router := New(ledger.New(), store, "₹").Router()

	rec := get(t, router, "/reports/purchases?limit=2")

	require.Equal(t, http.StatusOK, rec.Code)
	var body purchasesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(3), body.Total)
	require.Len(t, body.Purchases, 2)
	assert.Equal(t, "Cetirizine", body.Purchases[0].MedicineName)
	assert.Equal(t, "Ibuprofen", body.Purchases[1].MedicineName)
}

func TestPurchases_BadLimit(t *testing.T) {
	router := New(ledger.New(), failingReader{}, "₹").Router()

	for _, target := range []string{"/reports/purchases?limit=0", "/reports/purchases?limit=ten"} {
		rec := get(t, router, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestPurchases_StoreError(t *testing.T) {
	rec := get(t, New(ledger.New(), failingReader{}, "₹").Router(), "/reports/purchases")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"unable to count purchases"}`, rec.Body.String())
}
