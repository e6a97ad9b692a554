package service

import (
	"github.com/google/uuid"
	"github.com/niksmo/kitchen-store/internal/core/port"
)

var _ port.Catalog = (*Service)(nil)
var _ port.CartKeeper = (*Service)(nil)
var _ port.OrderPlacer = (*Service)(nil)
var _ port.BackOffice = (*Service)(nil)

type Service struct {
	productsStorage  port.ProductsStorage
	ordersStorage    port.OrdersStorage
	customersStorage port.CustomersStorage
	cartStore        port.CartStore
	orderEvents      port.OrderEventsProducer
	cartLocks        *sessionLocks
	newCartID        func() string
}

// New returns the core service.
//
// orderEvents may be nil, then placed orders are not published.
func New(
	productsStorage port.ProductsStorage,
	ordersStorage port.OrdersStorage,
	customersStorage port.CustomersStorage,
	cartStore port.CartStore,
	orderEvents port.OrderEventsProducer,
) Service {
	return Service{
		productsStorage:  productsStorage,
		ordersStorage:    ordersStorage,
		customersStorage: customersStorage,
		cartStore:        cartStore,
		orderEvents:      orderEvents,
		cartLocks:        newSessionLocks(),
		newCartID:        uuid.NewString,
	}
}
