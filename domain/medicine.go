package domain

import "github.com/shopspring/decimal"

// Medicine is one catalog entry. Catalog position, not name, identifies it.
type Medicine struct {
	Name  string          `db:"name" json:"name"`
	Price decimal.Decimal `db:"price" json:"price"`
}
