package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"medeasy/counter/domain"
	"medeasy/counter/internal/ledger"
)

const maxPurchaseLimit = 500

// PurchaseReader reads back the purchase mirror.
type PurchaseReader interface {
	Count(ctx context.Context) (int64, error)
	Recent(ctx context.Context, limit int) ([]domain.Purchase, error)
}

// Handler serves read-only sales reports while the counter is running.
type Handler struct {
	ledger    *ledger.Ledger
	purchases PurchaseReader
	currency  string
}

// New constructs a Handler. purchases may be nil when no mirror is configured.
func New(l *ledger.Ledger, purchases PurchaseReader, currency string) *Handler {
	return &Handler{ledger: l, purchases: purchases, currency: currency}
}

// Router wires up the HTTP API.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", h.health)

	r.Route("/reports", func(r chi.Router) {
		r.Get("/sales", h.salesTotals)
		if h.purchases != nil {
			r.Get("/purchases", h.recentPurchases)
		}
	})

	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type salesResponse struct {
	ItemsSold int64  `json:"items_sold"`
	Revenue   string `json:"revenue"`
	Display   string `json:"display"`
}

func (h *Handler) salesTotals(w http.ResponseWriter, r *http.Request) {
	totals := h.ledger.Snapshot()
	respondJSON(w, http.StatusOK, salesResponse{
		ItemsSold: totals.ItemsSold,
		Revenue:   totals.Revenue.StringFixed(2),
		Display:   domain.FormatMoney(h.currency, totals.Revenue),
	})
}

type purchasesResponse struct {
	Total     int64             `json:"total"`
	Purchases []domain.Purchase `json:"purchases"`
}

func (h *Handler) recentPurchases(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			respondError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, maxPurchaseLimit)
	}

	total, err := h.purchases.Count(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to count purchases")
		return
	}
	purchases, err := h.purchases.Recent(r.Context(), limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to list purchases")
		return
	}
	respondJSON(w, http.StatusOK, purchasesResponse{Total: total, Purchases: purchases})
}

// Helpers
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	_ = encoder.Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
