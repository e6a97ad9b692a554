package httphandler_test

import (
	"context"

	"github.com/niksmo/kitchen-store/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) FilterProducts(
	ctx context.Context, spec domain.FilterSpec,
) ([]domain.Product, error) {
	args := m.Called(ctx, spec)
	ps, _ := args.Get(0).([]domain.Product)
	return ps, args.Error(1)
}

func (m *MockCatalog) Facets(ctx context.Context) (domain.Facets, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Facets), args.Error(1)
}

type MockCartKeeper struct {
	mock.Mock
}

func (m *MockCartKeeper) CreateCart(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockCartKeeper) ReadCart(
	ctx context.Context, cartID string,
) (*domain.Cart, error) {
	args := m.Called(ctx, cartID)
	c, _ := args.Get(0).(*domain.Cart)
	return c, args.Error(1)
}

func (m *MockCartKeeper) AddToCart(
	ctx context.Context, cartID string, productID int64,
) (*domain.Cart, domain.CartEffect, error) {
	args := m.Called(ctx, cartID, productID)
	c, _ := args.Get(0).(*domain.Cart)
	return c, args.Get(1).(domain.CartEffect), args.Error(2)
}

func (m *MockCartKeeper) SetCartQuantity(
	ctx context.Context, cartID string, productID int64, quantity int,
) (*domain.Cart, domain.CartEffect, error) {
	args := m.Called(ctx, cartID, productID, quantity)
	c, _ := args.Get(0).(*domain.Cart)
	return c, args.Get(1).(domain.CartEffect), args.Error(2)
}

func (m *MockCartKeeper) RemoveFromCart(
	ctx context.Context, cartID string, productID int64,
) (*domain.Cart, domain.CartEffect, error) {
	args := m.Called(ctx, cartID, productID)
	c, _ := args.Get(0).(*domain.Cart)
	return c, args.Get(1).(domain.CartEffect), args.Error(2)
}

func (m *MockCartKeeper) Checkout(
	ctx context.Context, cartID string, customer domain.Customer,
) (domain.PlacedOrder, error) {
	args := m.Called(ctx, cartID, customer)
	return args.Get(0).(domain.PlacedOrder), args.Error(1)
}

type MockOrderPlacer struct {
	mock.Mock
}

func (m *MockOrderPlacer) PlaceOrder(
	ctx context.Context, r domain.OrderRequest,
) (domain.PlacedOrder, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(domain.PlacedOrder), args.Error(1)
}

type MockBackOffice struct {
	mock.Mock
}

func (m *MockBackOffice) ListProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	ps, _ := args.Get(0).([]domain.Product)
	return ps, args.Error(1)
}

func (m *MockBackOffice) CreateProduct(
	ctx context.Context, p domain.Product,
) (int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBackOffice) UpdateProduct(ctx context.Context, p domain.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockBackOffice) DeleteProduct(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockBackOffice) ListOrders(ctx context.Context) ([]domain.Order, error) {
	args := m.Called(ctx)
	os, _ := args.Get(0).([]domain.Order)
	return os, args.Error(1)
}

func (m *MockBackOffice) UpdateOrder(ctx context.Context, u domain.OrderUpdate) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockBackOffice) FindCustomers(
	ctx context.Context, q string,
) ([]domain.CustomerRecord, error) {
	args := m.Called(ctx, q)
	cs, _ := args.Get(0).([]domain.CustomerRecord)
	return cs, args.Error(1)
}

func (m *MockBackOffice) Dashboard(ctx context.Context) (domain.DashboardStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.DashboardStats), args.Error(1)
}

type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) PingContext(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
