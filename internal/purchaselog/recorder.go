// Package purchaselog persists the append-only record of items added to carts.
package purchaselog

import (
	"context"
	"errors"

	"medeasy/counter/domain"
)

// Recorder appends one purchase row. Rows are never retracted.
type Recorder interface {
	Record(ctx context.Context, p domain.Purchase) error
}

// Multi writes each purchase to every recorder, attempting all of them even
// when one fails.
type Multi []Recorder

func (m Multi) Record(ctx context.Context, p domain.Purchase) error {
	var errs []error
	for _, r := range m {
		if err := r.Record(ctx, p); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
