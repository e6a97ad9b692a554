package port

import (
	"context"

	"github.com/niksmo/kitchen-store/internal/core/domain"
)

// Inbound ports.

type Catalog interface {
	FilterProducts(context.Context, domain.FilterSpec) ([]domain.Product, error)
	Facets(context.Context) (domain.Facets, error)
}

type CartKeeper interface {
	CreateCart(context.Context) (string, error)
	ReadCart(ctx context.Context, cartID string) (*domain.Cart, error)
	AddToCart(
		ctx context.Context, cartID string, productID int64,
	) (*domain.Cart, domain.CartEffect, error)
	SetCartQuantity(
		ctx context.Context, cartID string, productID int64, quantity int,
	) (*domain.Cart, domain.CartEffect, error)
	RemoveFromCart(
		ctx context.Context, cartID string, productID int64,
	) (*domain.Cart, domain.CartEffect, error)
	Checkout(
		ctx context.Context, cartID string, customer domain.Customer,
	) (domain.PlacedOrder, error)
}

type OrderPlacer interface {
	PlaceOrder(context.Context, domain.OrderRequest) (domain.PlacedOrder, error)
}

type ProductsManager interface {
	ListProducts(context.Context) ([]domain.Product, error)
	CreateProduct(context.Context, domain.Product) (int64, error)
	UpdateProduct(context.Context, domain.Product) error
	DeleteProduct(ctx context.Context, id int64) error
}

type OrdersManager interface {
	ListOrders(context.Context) ([]domain.Order, error)
	UpdateOrder(context.Context, domain.OrderUpdate) error
}

type CustomersFinder interface {
	FindCustomers(ctx context.Context, query string) ([]domain.CustomerRecord, error)
}

type DashboardProvider interface {
	Dashboard(context.Context) (domain.DashboardStats, error)
}

type BackOffice interface {
	ProductsManager
	OrdersManager
	CustomersFinder
	DashboardProvider
}

// Outbound ports.

type ProductsStorage interface {
	ListProducts(context.Context) ([]domain.Product, error)
	ReadProduct(ctx context.Context, id int64) (domain.Product, error)
	CreateProduct(context.Context, domain.Product) (int64, error)
	UpdateProduct(context.Context, domain.Product) error
	DeleteProduct(ctx context.Context, id int64) error
	CountProducts(context.Context) (int, error)
}

type OrdersStorage interface {
	StoreOrder(context.Context, domain.OrderRequest) (domain.PlacedOrder, error)
	ListOrders(context.Context) ([]domain.Order, error)
	UpdateOrder(context.Context, domain.OrderUpdate) error
}

type CustomersStorage interface {
	ListCustomers(context.Context) ([]domain.CustomerRecord, error)
}

// A CartStore keeps carts by session id.
//
// LoadCart returns [domain.ErrCartNotFound] for unknown ids.
type CartStore interface {
	LoadCart(ctx context.Context, cartID string) (*domain.Cart, error)
	SaveCart(ctx context.Context, cartID string, cart *domain.Cart) error
	DeleteCart(ctx context.Context, cartID string) error
}

type OrderEventsProducer interface {
	ProduceOrderPlaced(context.Context, domain.OrderPlaced) error
}
