package domain

import "github.com/shopspring/decimal"

// DefaultCurrency is the symbol prefixed to every money value shown at the counter.
const DefaultCurrency = "₹"

// FormatMoney renders amount with the currency symbol and two decimals.
func FormatMoney(symbol string, amount decimal.Decimal) string {
	return symbol + amount.StringFixed(2)
}
