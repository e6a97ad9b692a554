package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/niksmo/kitchen-store/internal/core/domain"
)

func (s Service) CreateCart(ctx context.Context) (string, error) {
	const op = "Service.CreateCart"

	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	cartID := s.newCartID()
	if err := s.cartStore.SaveCart(ctx, cartID, domain.NewCart()); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return cartID, nil
}

func (s Service) ReadCart(ctx context.Context, cartID string) (*domain.Cart, error) {
	const op = "Service.ReadCart"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	cart, err := s.cartStore.LoadCart(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return cart, nil
}

func (s Service) AddToCart(
	ctx context.Context, cartID string, productID int64,
) (*domain.Cart, domain.CartEffect, error) {
	const op = "Service.AddToCart"

	if err := ctx.Err(); err != nil {
		return nil, domain.EffectNone, fmt.Errorf("%s: %w", op, err)
	}

	p, err := s.productsStorage.ReadProduct(ctx, productID)
	if err != nil {
		return nil, domain.EffectNone, fmt.Errorf("%s: %w", op, err)
	}

	cart, effect, err := s.mutateCart(ctx, cartID, func(c *domain.Cart) domain.CartEffect {
		return c.Add(p)
	})
	if err != nil {
		return nil, domain.EffectNone, fmt.Errorf("%s: %w", op, err)
	}
	return cart, effect, nil
}

func (s Service) SetCartQuantity(
	ctx context.Context, cartID string, productID int64, quantity int,
) (*domain.Cart, domain.CartEffect, error) {
	const op = "Service.SetCartQuantity"

	cart, effect, err := s.mutateCart(ctx, cartID, func(c *domain.Cart) domain.CartEffect {
		return c.SetQuantity(productID, quantity)
	})
	if err != nil {
		return nil, domain.EffectNone, fmt.Errorf("%s: %w", op, err)
	}
	return cart, effect, nil
}

func (s Service) RemoveFromCart(
	ctx context.Context, cartID string, productID int64,
) (*domain.Cart, domain.CartEffect, error) {
	const op = "Service.RemoveFromCart"

	cart, effect, err := s.mutateCart(ctx, cartID, func(c *domain.Cart) domain.CartEffect {
		return c.Remove(productID)
	})
	if err != nil {
		return nil, domain.EffectNone, fmt.Errorf("%s: %w", op, err)
	}
	return cart, effect, nil
}

// Checkout places an order from the cart contents and drops the cart.
func (s Service) Checkout(
	ctx context.Context, cartID string, customer domain.Customer,
) (domain.PlacedOrder, error) {
	const op = "Service.Checkout"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return domain.PlacedOrder{}, fmt.Errorf("%s: %w", op, err)
	}

	unlock := s.cartLocks.lock(cartID)
	defer unlock()

	cart, err := s.cartStore.LoadCart(ctx, cartID)
	if err != nil {
		return domain.PlacedOrder{}, fmt.Errorf("%s: %w", op, err)
	}

	placed, err := s.PlaceOrder(ctx, domain.NewOrderRequest(customer, cart))
	if err != nil {
		return domain.PlacedOrder{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.cartStore.DeleteCart(ctx, cartID); err != nil {
		log.Error("failed to delete checked out cart", "cartID", cartID, "err", err)
	}

	return placed, nil
}

// mutateCart applies fn to the stored cart under the session lock.
//
// The cart is saved only when fn reports a visible change.
func (s Service) mutateCart(
	ctx context.Context, cartID string, fn func(*domain.Cart) domain.CartEffect,
) (*domain.Cart, domain.CartEffect, error) {
	const op = "Service.mutateCart"

	if err := ctx.Err(); err != nil {
		return nil, domain.EffectNone, fmt.Errorf("%s: %w", op, err)
	}

	unlock := s.cartLocks.lock(cartID)
	defer unlock()

	cart, err := s.cartStore.LoadCart(ctx, cartID)
	if err != nil {
		return nil, domain.EffectNone, fmt.Errorf("%s: %w", op, err)
	}

	effect := fn(cart)
	if effect == domain.EffectNone {
		return cart, effect, nil
	}

	if err := s.cartStore.SaveCart(ctx, cartID, cart); err != nil {
		return nil, domain.EffectNone, fmt.Errorf("%s: %w", op, err)
	}
	return cart, effect, nil
}
