package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/niksmo/kitchen-store/internal/core/domain"
	"github.com/niksmo/kitchen-store/internal/core/port"
)

var _ port.OrdersStorage = (*OrdersRepository)(nil)

type OrdersRepository struct {
	sqldb sqldb
}

func NewOrdersRepository(sqldb sqldb) OrdersRepository {
	return OrdersRepository{sqldb}
}

// StoreOrder upserts the customer by phone and inserts the order
// in one transaction.
func (r OrdersRepository) StoreOrder(
	ctx context.Context, req domain.OrderRequest,
) (placed domain.PlacedOrder, err error) {
	const op = "OrdersRepository.StoreOrder"

	if err := ctx.Err(); err != nil {
		return domain.PlacedOrder{}, fmt.Errorf("%s: %w", op, err)
	}

	itemsB, err := encodeOrderItems(req.Items)
	if err != nil {
		return domain.PlacedOrder{}, fmt.Errorf("%s: %w", op, err)
	}

	c := req.Customer

	upsertCustomer := `
		INSERT INTO customers (
			last_name, first_name, middle_name, phone, city, address,
			total_orders, total_spent
		)
		VALUES ($1, $2, $3, $4, $5, $6, 1, $7)
		ON CONFLICT (phone) DO UPDATE SET
			last_name = EXCLUDED.last_name,
			first_name = EXCLUDED.first_name,
			middle_name = EXCLUDED.middle_name,
			city = EXCLUDED.city,
			address = EXCLUDED.address,
			total_orders = customers.total_orders + 1,
			total_spent = customers.total_spent + EXCLUDED.total_spent,
			updated_at = CURRENT_TIMESTAMP;`

	insertOrder := `
		INSERT INTO orders (
			last_name, first_name, middle_name, phone, city, address,
			items, total, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at;`

	err = withTx(ctx, r.sqldb, op, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, upsertCustomer,
			c.LastName, c.FirstName, c.MiddleName, c.Phone, c.City, c.Address,
			req.Total,
		)
		if err != nil {
			return fmt.Errorf("%s: failed to upsert customer: %w", op, err)
		}

		err = tx.QueryRowContext(ctx, insertOrder,
			c.LastName, c.FirstName, c.MiddleName, c.Phone, c.City, c.Address,
			string(itemsB), req.Total, string(domain.StatusPending),
		).Scan(&placed.ID, &placed.CreatedAt)
		if err != nil {
			return fmt.Errorf("%s: failed to insert order: %w", op, err)
		}
		return nil
	})
	if err != nil {
		return domain.PlacedOrder{}, err
	}
	return placed, nil
}

func (r OrdersRepository) ListOrders(
	ctx context.Context,
) (orders []domain.Order, err error) {
	const op = "OrdersRepository.ListOrders"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		SELECT
			id, last_name, first_name, middle_name, phone, city, address,
			items, total, status, notes, created_at
		FROM orders
		ORDER BY created_at DESC, id DESC;`

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
		var row orderRow
		if err := rows.Scan(row.dest()...); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		o, err := row.toDomain()
		if err != nil {
			return nil, fmt.Errorf("%s: order %d: %w", op, row.ID, err)
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return orders, nil
}

func (r OrdersRepository) UpdateOrder(ctx context.Context, u domain.OrderUpdate) error {
	const op = "OrdersRepository.UpdateOrder"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	var status, notes sql.NullString
	if u.Status != nil {
		status = sql.NullString{String: string(*u.Status), Valid: true}
	}
	if u.Notes != nil {
		notes = sql.NullString{String: *u.Notes, Valid: true}
	}

	query := `
		UPDATE orders SET
			status = COALESCE($1, status),
			notes = COALESCE($2, notes)
		WHERE id = $3
		RETURNING id;`

	var id int64
	err := r.sqldb.QueryRowContext(ctx, query, status, notes, u.OrderID).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%s: %w", op, domain.ErrOrderNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
