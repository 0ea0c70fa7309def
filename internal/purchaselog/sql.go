package purchaselog

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"medeasy/counter/domain"
)

// SQLStore mirrors the purchase log into the purchases table.
type SQLStore struct {
	db *sqlx.DB
}

// NewSQLStore expects the schema from migrations.Run to be in place.
func NewSQLStore(db *sqlx.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Record(ctx context.Context, p domain.Purchase) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO purchases (customer_name, customer_address, medicine_name, unit_price) VALUES (?, ?, ?, ?)`,
		p.CustomerName, p.CustomerAddress, p.MedicineName, p.UnitPrice.StringFixed(2))
	if err != nil {
		return fmt.Errorf("unable to insert purchase %s: %w", p.MedicineName, err)
	}
	return nil
}

// Count returns the number of rows recorded so far.
func (s *SQLStore) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM purchases`); err != nil {
		return 0, fmt.Errorf("unable to count purchases: %w", err)
	}
	return n, nil
}

// Recent returns up to limit rows, newest first.
func (s *SQLStore) Recent(ctx context.Context, limit int) ([]domain.Purchase, error) {
	purchases := []domain.Purchase{}
	err := s.db.SelectContext(ctx, &purchases,
		`SELECT id, customer_name, customer_address, medicine_name, unit_price, created_at FROM purchases ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("unable to list purchases: %w", err)
	}
	return purchases, nil
}
