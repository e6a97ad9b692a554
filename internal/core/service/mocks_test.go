package service

import (
	"context"
	"sync"

	"github.com/niksmo/kitchen-store/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

type MockProductsStorage struct {
	mock.Mock
}

func (m *MockProductsStorage) ListProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	ps, _ := args.Get(0).([]domain.Product)
	return ps, args.Error(1)
}

func (m *MockProductsStorage) ReadProduct(ctx context.Context, id int64) (domain.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockProductsStorage) CreateProduct(ctx context.Context, p domain.Product) (int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductsStorage) UpdateProduct(ctx context.Context, p domain.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductsStorage) DeleteProduct(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockProductsStorage) CountProducts(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockOrdersStorage struct {
	mock.Mock
}

func (m *MockOrdersStorage) StoreOrder(
	ctx context.Context, r domain.OrderRequest,
) (domain.PlacedOrder, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(domain.PlacedOrder), args.Error(1)
}

func (m *MockOrdersStorage) ListOrders(ctx context.Context) ([]domain.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]domain.Order)
	return orders, args.Error(1)
}

func (m *MockOrdersStorage) UpdateOrder(ctx context.Context, u domain.OrderUpdate) error {
	return m.Called(ctx, u).Error(0)
}

type MockCustomersStorage struct {
	mock.Mock
}

func (m *MockCustomersStorage) ListCustomers(
	ctx context.Context,
) ([]domain.CustomerRecord, error) {
	args := m.Called(ctx)
	cs, _ := args.Get(0).([]domain.CustomerRecord)
	return cs, args.Error(1)
}

type MockOrderEventsProducer struct {
	mock.Mock
}

func (m *MockOrderEventsProducer) ProduceOrderPlaced(
	ctx context.Context, evt domain.OrderPlaced,
) error {
	return m.Called(ctx, evt).Error(0)
}

type fakeCartStore struct {
	mu      sync.Mutex
	carts   map[string][]domain.CartLine
	saves   int
	saveErr error
}

func newFakeCartStore() *fakeCartStore {
	return &fakeCartStore{carts: make(map[string][]domain.CartLine)}
}

func (s *fakeCartStore) LoadCart(_ context.Context, id string) (*domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines, ok := s.carts[id]
	if !ok {
		return nil, domain.ErrCartNotFound
	}
	return domain.RestoreCart(lines), nil
}

func (s *fakeCartStore) SaveCart(_ context.Context, id string, c *domain.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saves++
	s.carts[id] = c.Lines()
	return nil
}

func (s *fakeCartStore) DeleteCart(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, id)
	return nil
}

func (s *fakeCartStore) has(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.carts[id]
	return ok
}
