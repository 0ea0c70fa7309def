package domain

import "github.com/shopspring/decimal"

// Purchase is one row of the purchase log, written for every item added to a cart.
type Purchase struct {
	ID              int64           `db:"id" json:"id,omitempty"`
	CustomerName    string          `db:"customer_name" json:"customer_name"`
	CustomerAddress string          `db:"customer_address" json:"customer_address"`
	MedicineName    string          `db:"medicine_name" json:"medicine_name"`
	UnitPrice       decimal.Decimal `db:"unit_price" json:"unit_price"`
	CreatedAt       string          `db:"created_at" json:"created_at,omitempty"`
}

// NewPurchase builds the log row for a medicine added by customer.
func NewPurchase(c Customer, m Medicine) Purchase {
	return Purchase{
		CustomerName:    c.Name,
		CustomerAddress: c.Address,
		MedicineName:    m.Name,
		UnitPrice:       m.Price,
	}
}
