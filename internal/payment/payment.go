// Package payment simulates taking payment for the running bill. Nothing is
// charged; the captured details only appear in the confirmation.
package payment

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"medeasy/counter/domain"
)

var ErrInvalidMethod = errors.New("invalid payment option")

type Method int

const (
	Cash Method = iota + 1
	Cheque
	CreditCard
	MobileWallet
)

// Methods in menu order.
var Methods = []Method{Cash, Cheque, CreditCard, MobileWallet}

func (m Method) String() string {
	switch m {
	case Cash:
		return "Cash"
	case Cheque:
		return "Cheque"
	case CreditCard:
		return "Credit Card"
	case MobileWallet:
		return "Mobile Wallet"
	}
	return "Method(" + strconv.Itoa(int(m)) + ")"
}

// Label is the menu text, including whether the method is taken at the counter.
func (m Method) Label() string {
	switch m {
	case Cash, Cheque:
		return m.String() + " (Offline)"
	default:
		return m.String() + " (Online)"
	}
}

// ParseMethod accepts the menu number of a payment method.
func ParseMethod(s string) (Method, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < int(Cash) || n > int(MobileWallet) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMethod, strings.TrimSpace(s))
	}
	return Method(n), nil
}

// Field is a free-text value asked for by a payment method.
type Field struct {
	Key    string
	Prompt string
}

const (
	FieldChequeNumber = "cheque_number"
	FieldCardNumber   = "card_number"
	FieldCardExpiry   = "card_expiry"
	FieldWalletID     = "wallet_id"
)

// Fields lists what must be collected for m, in prompt order.
func (m Method) Fields() []Field {
	switch m {
	case Cheque:
		return []Field{{Key: FieldChequeNumber, Prompt: "Enter Cheque Number: "}}
	case CreditCard:
		return []Field{
			{Key: FieldCardNumber, Prompt: "Enter Credit Card Number: "},
			{Key: FieldCardExpiry, Prompt: "Enter Card Expiry Date (MM/YY): "},
		}
	case MobileWallet:
		return []Field{{Key: FieldWalletID, Prompt: "Enter Mobile Wallet ID: "}}
	}
	return nil
}

// Receipt is a confirmed payment.
type Receipt struct {
	Method  Method
	Amount  decimal.Decimal
	Details map[string]string
}

// Message renders the confirmation line shown to the customer.
func (r Receipt) Message(symbol string) string {
	amount := domain.FormatMoney(symbol, r.Amount)
	switch r.Method {
	case Cash:
		return fmt.Sprintf("Payment of %s received in Cash.", amount)
	case Cheque:
		return fmt.Sprintf("Payment of %s received via Cheque %s.", amount, r.Details[FieldChequeNumber])
	case CreditCard:
		return fmt.Sprintf("Payment of %s received via Credit Card %s (expiry %s).", amount, r.Details[FieldCardNumber], r.Details[FieldCardExpiry])
	case MobileWallet:
		return fmt.Sprintf("Payment of %s received via Mobile Wallet %s.", amount, r.Details[FieldWalletID])
	}
	return fmt.Sprintf("Payment of %s received.", amount)
}
