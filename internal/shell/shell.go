// Package shell runs the counter's menu loop over any reader and writer.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"medeasy/counter/domain"
	"medeasy/counter/internal/cart"
	"medeasy/counter/internal/ledger"
	"medeasy/counter/internal/payment"
)

const (
	optCatalog = iota + 1
	optAdd
	optRemove
	optCart
	optBill
	optPay
	optSales
	optExit
)

var menu = []string{
	"View Available Medicines",
	"Add Medicines to Cart",
	"Remove Medicines from Cart",
	"View Purchased Items",
	"View Total Bill",
	"Make Payment",
	"View Total Sales",
	"Exit",
}

// Shell serves one customer per run.
type Shell struct {
	in       *bufio.Scanner
	out      io.Writer
	engine   *cart.Engine
	ledger   *ledger.Ledger
	payments *payment.Simulator
	currency string
	customer domain.Customer
}

// New wires a shell to engine and l. currency prefixes every amount shown.
func New(in io.Reader, out io.Writer, engine *cart.Engine, l *ledger.Ledger, currency string) *Shell {
	s := &Shell{
		in:       bufio.NewScanner(in),
		out:      out,
		engine:   engine,
		ledger:   l,
		currency: currency,
	}
	s.payments = payment.NewSimulator(s)
	return s
}

// Prompt writes question and reads one trimmed line. It returns io.EOF once
// input is exhausted.
func (s *Shell) Prompt(question string) (string, error) {
	fmt.Fprint(s.out, question)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}

// Run greets the customer, captures their details and loops over the menu
// until they choose to exit or input ends.
func (s *Shell) Run(ctx context.Context) error {
	s.println("Welcome to the Medicine Store!")
	customer, err := s.readCustomer()
	if err != nil {
		return ignoreEOF(err)
	}
	s.customer = customer

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		answer, err := s.Prompt(menuText())
		if err != nil {
			return ignoreEOF(err)
		}
		choice, convErr := strconv.Atoi(answer)
		if convErr != nil {
			choice = 0
		}

		switch choice {
		case optCatalog:
			s.showLines("\nAvailable Medicines:", s.engine.Catalog())
		case optAdd:
			err = s.add(ctx)
		case optRemove:
			err = s.remove()
		case optCart:
			s.showLines("\nPurchased Medicines for "+s.customer.Name+":", s.engine.Items())
		case optBill:
			s.printf("Total Bill for %s: %s\n", s.customer.Name, s.money(s.engine.Total()))
		case optPay:
			err = s.pay()
		case optSales:
			totals := s.ledger.Snapshot()
			s.printf("Total Medicines Sold: %d\n", totals.ItemsSold)
			s.printf("Total Sales Amount: %s\n", s.money(totals.Revenue))
		case optExit:
			s.println("Thank you for visiting the Medicine Store!")
			return nil
		default:
			s.println("Invalid choice. Please try again.")
		}
		if err != nil {
			return ignoreEOF(err)
		}
	}
}

func (s *Shell) readCustomer() (domain.Customer, error) {
	name, err := s.Prompt("Enter your name: ")
	if err != nil {
		return domain.Customer{}, err
	}
	var age int
	for {
		raw, err := s.Prompt("Enter your age: ")
		if err != nil {
			return domain.Customer{}, err
		}
		if age, err = strconv.Atoi(raw); err == nil {
			break
		}
		s.println("Invalid age. Please enter a number.")
	}
	address, err := s.Prompt("Enter your address: ")
	if err != nil {
		return domain.Customer{}, err
	}
	return domain.Customer{Name: name, Age: age, Address: address}, nil
}

func (s *Shell) add(ctx context.Context) error {
	line, err := s.Prompt("Enter the numbers of the medicines to add (comma-separated): ")
	if err != nil {
		return err
	}
	for _, o := range s.engine.Add(ctx, s.customer, s.parseIndices(line)) {
		if o.Err != nil {
			s.printf("Invalid choice: %d. Skipping...\n", o.Index)
			continue
		}
		if o.LogErr != nil {
			s.printf("Error saving purchase to file: %v\n", o.LogErr)
		}
		s.printf("Added %s to your cart.\n", o.Medicine.Name)
	}
	return nil
}

func (s *Shell) remove() error {
	line, err := s.Prompt("Enter the numbers of the medicines to remove (comma-separated): ")
	if err != nil {
		return err
	}
	for _, o := range s.engine.Remove(s.parseIndices(line)) {
		if o.Err != nil {
			s.printf("Invalid choice: %d. Skipping...\n", o.Index)
			continue
		}
		s.printf("Removed %s from your cart.\n", o.Medicine.Name)
	}
	return nil
}

func (s *Shell) pay() error {
	receipt, err := s.payments.Pay(s.engine)
	if errors.Is(err, payment.ErrInvalidMethod) {
		s.println("Invalid payment option. Please try again.")
		return nil
	}
	if err != nil {
		return err
	}
	s.println(receipt.Message(s.currency))
	s.printf("Thank you for your purchase, %s!\n", s.customer.Name)
	return nil
}

// parseIndices reports every token that is not an integer and returns the
// rest. Empty tokens are dropped silently.
func (s *Shell) parseIndices(line string) []int {
	var indices []int
	for _, tok := range strings.Split(line, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		n, err := strconv.Atoi(tok)
		if err != nil {
			s.printf("Invalid input: %s\n", tok)
			continue
		}
		indices = append(indices, n)
	}
	return indices
}

func (s *Shell) showLines(header string, lines []cart.Line) {
	s.println(header)
	for _, l := range lines {
		s.printf("%d. Medicine: %s | Price: %s\n", l.Index, l.Medicine.Name, s.money(l.Medicine.Price))
	}
}

func menuText() string {
	var b strings.Builder
	b.WriteString("\n")
	for i, item := range menu {
		fmt.Fprintf(&b, "%d. %s\n", i+1, item)
	}
	b.WriteString("Choose an option: ")
	return b.String()
}

func (s *Shell) money(amount decimal.Decimal) string {
	return domain.FormatMoney(s.currency, amount)
}

func (s *Shell) println(line string) {
	fmt.Fprintln(s.out, line)
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
