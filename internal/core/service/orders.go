package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/niksmo/kitchen-store/internal/core/domain"
)

// PlaceOrder stores the order and publishes [domain.OrderPlaced].
//
// A publish failure is logged, the stored order stays accepted.
func (s Service) PlaceOrder(
	ctx context.Context, r domain.OrderRequest,
) (domain.PlacedOrder, error) {
	const op = "Service.PlaceOrder"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return domain.PlacedOrder{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := r.Validate(); err != nil {
		return domain.PlacedOrder{}, fmt.Errorf("%s: %w", op, err)
	}

	placed, err := s.ordersStorage.StoreOrder(ctx, r)
	if err != nil {
		return domain.PlacedOrder{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("order placed",
		"orderID", placed.ID, "nItems", r.ItemCount(), "total", r.Total,
	)

	if s.orderEvents == nil {
		return placed, nil
	}

	err = s.orderEvents.ProduceOrderPlaced(ctx, domain.NewOrderPlaced(placed, r))
	if err != nil {
		log.Error("failed to publish order", "orderID", placed.ID, "err", err)
	}

	return placed, nil
}

func (s Service) ListOrders(ctx context.Context) ([]domain.Order, error) {
	const op = "Service.ListOrders"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	orders, err := s.ordersStorage.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return orders, nil
}

func (s Service) UpdateOrder(ctx context.Context, u domain.OrderUpdate) error {
	const op = "Service.UpdateOrder"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := u.Validate(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.ordersStorage.UpdateOrder(ctx, u); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
