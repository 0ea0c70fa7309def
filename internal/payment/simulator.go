package payment

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Prompter asks a question and returns the answer line.
type Prompter interface {
	Prompt(question string) (string, error)
}

// Bill is the part of the cart a payment settles.
type Bill interface {
	Total() decimal.Decimal
	Clear()
}

// Simulator walks a customer through choosing a payment method.
type Simulator struct {
	prompter Prompter
}

func NewSimulator(p Prompter) *Simulator {
	return &Simulator{prompter: p}
}

// Pay asks for a method and its details, then clears the bill. An unknown
// method returns ErrInvalidMethod and leaves the bill untouched; so does a
// failed prompt.
func (s *Simulator) Pay(bill Bill) (Receipt, error) {
	answer, err := s.prompter.Prompt(methodMenu())
	if err != nil {
		return Receipt{}, err
	}
	method, err := ParseMethod(answer)
	if err != nil {
		return Receipt{}, err
	}

	details := make(map[string]string)
	for _, f := range method.Fields() {
		v, err := s.prompter.Prompt(f.Prompt)
		if err != nil {
			return Receipt{}, err
		}
		details[f.Key] = v
	}

	receipt := Receipt{Method: method, Amount: bill.Total(), Details: details}
	bill.Clear()
	return receipt, nil
}

func methodMenu() string {
	menu := "\nSelect Payment Method:\n"
	for _, m := range Methods {
		menu += fmt.Sprintf("%d. %s\n", int(m), m.Label())
	}
	return menu + fmt.Sprintf("Choose an option (1-%d): ", len(Methods))
}
