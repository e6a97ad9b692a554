package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/niksmo/kitchen-store/internal/core/domain"
	"github.com/niksmo/kitchen-store/internal/core/port"
)

var _ port.CustomersStorage = (*CustomersRepository)(nil)

type CustomersRepository struct {
	sqldb sqldb
}

func NewCustomersRepository(sqldb sqldb) CustomersRepository {
	return CustomersRepository{sqldb}
}

func (r CustomersRepository) ListCustomers(
	ctx context.Context,
) (cs []domain.CustomerRecord, err error) {
	const op = "CustomersRepository.ListCustomers"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		SELECT
			id, last_name, first_name, middle_name, phone, city, address,
			total_orders, total_spent, created_at, updated_at
		FROM customers
		ORDER BY updated_at DESC;`

	rows, err := r.sqldb.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", "err", err)
		}
	}()

	for rows.Next() {
		var row customerRow
		if err := rows.Scan(row.dest()...); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		cs = append(cs, row.toDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return cs, nil
}
