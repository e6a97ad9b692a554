package service

import (
	"context"
	"fmt"

	"github.com/niksmo/kitchen-store/internal/core/domain"
)

func (s Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	const op = "Service.ListProducts"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ps, err := s.productsStorage.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ps, nil
}

func (s Service) CreateProduct(ctx context.Context, p domain.Product) (int64, error) {
	const op = "Service.CreateProduct"

	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	id, err := s.productsStorage.CreateProduct(ctx, p)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

func (s Service) UpdateProduct(ctx context.Context, p domain.Product) error {
	const op = "Service.UpdateProduct"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.productsStorage.UpdateProduct(ctx, p); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s Service) DeleteProduct(ctx context.Context, id int64) error {
	const op = "Service.DeleteProduct"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.productsStorage.DeleteProduct(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s Service) FindCustomers(
	ctx context.Context, query string,
) ([]domain.CustomerRecord, error) {
	const op = "Service.FindCustomers"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	cs, err := s.customersStorage.ListCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return domain.MatchCustomers(cs, query), nil
}

func (s Service) Dashboard(ctx context.Context) (domain.DashboardStats, error) {
	const op = "Service.Dashboard"

	if err := ctx.Err(); err != nil {
		return domain.DashboardStats{}, fmt.Errorf("%s: %w", op, err)
	}

	orders, err := s.ordersStorage.ListOrders(ctx)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("%s: %w", op, err)
	}

	nProducts, err := s.productsStorage.CountProducts(ctx)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("%s: %w", op, err)
	}

	return domain.NewDashboardStats(orders, nProducts), nil
}
