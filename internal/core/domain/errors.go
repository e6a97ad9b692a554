package domain

import "errors"

var (
	ErrInvalidPriceRange = errors.New("invalid price range")
	ErrEmptyOrder        = errors.New("order has no items")
	ErrInvalidQuantity   = errors.New("invalid item quantity")
	ErrInvalidPrice      = errors.New("invalid item price")
	ErrTotalMismatch     = errors.New("order total does not match items")
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrNoOrderChanges    = errors.New("no fields to update")

	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrCartNotFound    = errors.New("cart not found")
)
