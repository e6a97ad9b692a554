package service

import (
	"context"
	"fmt"

	"github.com/niksmo/kitchen-store/internal/core/domain"
)

func (s Service) FilterProducts(
	ctx context.Context, spec domain.FilterSpec,
) ([]domain.Product, error) {
	const op = "Service.FilterProducts"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ps, err := s.productsStorage.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return domain.FilterProducts(ps, spec), nil
}

func (s Service) Facets(ctx context.Context) (domain.Facets, error) {
	const op = "Service.Facets"

	if err := ctx.Err(); err != nil {
		return domain.Facets{}, fmt.Errorf("%s: %w", op, err)
	}

	ps, err := s.productsStorage.ListProducts(ctx)
	if err != nil {
		return domain.Facets{}, fmt.Errorf("%s: %w", op, err)
	}

	return domain.CollectFacets(ps), nil
}
