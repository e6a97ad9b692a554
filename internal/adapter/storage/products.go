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

var _ port.ProductsStorage = (*ProductsRepository)(nil)

const productColumns = `
	id, name, price, images, category, material, style, color,
	manufacturer, description,
	dimension_length, dimension_width, dimension_height`

type ProductsRepository struct {
	sqldb sqldb
}

func NewProductsRepository(sqldb sqldb) ProductsRepository {
	return ProductsRepository{sqldb}
}

func (r ProductsRepository) ListProducts(
	ctx context.Context,
) (ps []domain.Product, err error) {
	const op = "ProductsRepository.ListProducts"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `SELECT ` + productColumns + ` FROM products ORDER BY id;`

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
		var row productRow
		if err := rows.Scan(row.dest()...); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		p, err := row.toDomain()
		if err != nil {
			return nil, fmt.Errorf("%s: product %d: %w", op, row.ID, err)
		}
		ps = append(ps, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ps, nil
}

func (r ProductsRepository) ReadProduct(
	ctx context.Context, id int64,
) (domain.Product, error) {
	const op = "ProductsRepository.ReadProduct"

	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1;`

	var row productRow
	err := r.sqldb.QueryRowContext(ctx, query, id).Scan(row.dest()...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Product{}, fmt.Errorf("%s: %w", op, domain.ErrProductNotFound)
		}
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	p, err := row.toDomain()
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func (r ProductsRepository) CreateProduct(
	ctx context.Context, p domain.Product,
) (int64, error) {
	const op = "ProductsRepository.CreateProduct"

	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	row, err := newProductRow(p)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		INSERT INTO products (
			name, price, images, category, material, style, color,
			manufacturer, description,
			dimension_length, dimension_width, dimension_height
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id;`

	var id int64
	err = r.sqldb.QueryRowContext(ctx, query,
		row.Name, row.Price, string(row.Images), row.Category, row.Material,
		row.Style, row.Color, row.Manufacturer, row.Description,
		row.Length, row.Width, row.Height,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

func (r ProductsRepository) UpdateProduct(
	ctx context.Context, p domain.Product,
) error {
	const op = "ProductsRepository.UpdateProduct"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	row, err := newProductRow(p)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `
		UPDATE products SET
			name = $1,
			price = $2,
			images = $3,
			category = $4,
			material = $5,
			style = $6,
			color = $7,
			manufacturer = $8,
			description = $9,
			dimension_length = $10,
			dimension_width = $11,
			dimension_height = $12,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $13;`

	res, err := r.sqldb.ExecContext(ctx, query,
		row.Name, row.Price, string(row.Images), row.Category, row.Material,
		row.Style, row.Color, row.Manufacturer, row.Description,
		row.Length, row.Width, row.Height, row.ID,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return checkAffected(op, res, domain.ErrProductNotFound)
}

func (r ProductsRepository) DeleteProduct(ctx context.Context, id int64) error {
	const op = "ProductsRepository.DeleteProduct"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	res, err := r.sqldb.ExecContext(ctx, `DELETE FROM products WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return checkAffected(op, res, domain.ErrProductNotFound)
}

func (r ProductsRepository) CountProducts(ctx context.Context) (int, error) {
	const op = "ProductsRepository.CountProducts"

	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var n int
	err := r.sqldb.QueryRowContext(ctx, `SELECT count(*) FROM products;`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}

func checkAffected(op string, res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, notFound)
	}
	return nil
}
