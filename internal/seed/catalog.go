// Package seed loads the medicine catalog from its flat file.
package seed

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"medeasy/counter/domain"
)

var (
	ErrMissingPrice  = errors.New("missing price field")
	ErrMissingName   = errors.New("missing medicine name")
	ErrInvalidPrice  = errors.New("invalid price")
	ErrNegativePrice = errors.New("negative price")
)

// RowError describes a catalog line that was skipped.
type RowError struct {
	Line int
	Err  error
}

func (e RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e RowError) Unwrap() error { return e.Err }

// LoadFile reads the catalog at path. An unreadable file returns an error and
// no medicines; the caller decides whether to continue with an empty catalog.
func LoadFile(path string) ([]domain.Medicine, []RowError, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to load medicine catalog %s: %w", path, err)
	}
	defer file.Close()

	medicines, skipped := Load(file)
	return medicines, skipped, nil
}

// Load parses name,price lines in order, skipping lines it cannot use. Each
// line is read on its own, so a stray quote only costs that line.
func Load(r io.Reader) ([]domain.Medicine, []RowError) {
	var (
		medicines []domain.Medicine
		skipped   []RowError
	)
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}

		record, err := readLine(text)
		if err != nil {
			skipped = append(skipped, RowError{Line: line, Err: err})
			continue
		}
		medicine, err := parseRecord(record)
		if err != nil {
			skipped = append(skipped, RowError{Line: line, Err: err})
			continue
		}
		medicines = append(medicines, medicine)
	}
	if err := scanner.Err(); err != nil {
		skipped = append(skipped, RowError{Line: line + 1, Err: err})
	}
	return medicines, skipped
}

// readLine splits one catalog line into fields, honouring quoted names.
func readLine(text string) ([]string, error) {
	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	record, err := reader.Read()
	if err != nil {
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			return nil, parseErr.Err
		}
		return nil, err
	}
	return record, nil
}

func parseRecord(record []string) (domain.Medicine, error) {
	if len(record) < 2 {
		return domain.Medicine{}, ErrMissingPrice
	}
	name := strings.TrimSpace(record[0])
	if name == "" {
		return domain.Medicine{}, ErrMissingName
	}
	raw := strings.TrimSpace(record[1])
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return domain.Medicine{}, fmt.Errorf("%w %q for %s", ErrInvalidPrice, raw, name)
	}
	if price.IsNegative() {
		return domain.Medicine{}, fmt.Errorf("%w %q for %s", ErrNegativePrice, raw, name)
	}
	return domain.Medicine{Name: name, Price: price}, nil
}
