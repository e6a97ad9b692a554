package service

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/niksmo/kitchen-store/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testDeps struct {
	products  *MockProductsStorage
	orders    *MockOrdersStorage
	customers *MockCustomersStorage
	carts     *fakeCartStore
	events    *MockOrderEventsProducer
}

func newTestService(t *testing.T, withEvents bool) (Service, testDeps) {
	t.Helper()
	d := testDeps{
		products:  new(MockProductsStorage),
		orders:    new(MockOrdersStorage),
		customers: new(MockCustomersStorage),
		carts:     newFakeCartStore(),
		events:    new(MockOrderEventsProducer),
	}

	var s Service
	if withEvents {
		s = New(d.products, d.orders, d.customers, d.carts, d.events)
	} else {
		s = New(d.products, d.orders, d.customers, d.carts, nil)
	}

	var n int
	s.newCartID = func() string {
		n++
		return fmt.Sprintf("cart-%d", n)
	}
	return s, d
}

var (
	testCustomer = domain.Customer{
		LastName: "Иванов", FirstName: "Иван", Phone: "+79990000000",
		City: "Москва", Address: "ул. Ленина, 1",
	}
	kitchen   = domain.Product{ID: 1, Name: "Кухня Лайт", Price: 1000, Material: "МДФ"}
	accessory = domain.Product{ID: 2, Name: "Рейлинг", Price: 500, Material: "Металл"}
)

func TestFilterProducts(t *testing.T) {
	t.Run("Regular", func(t *testing.T) {
		s, d := newTestService(t, false)
		d.products.On("ListProducts", mock.Anything).
			Return([]domain.Product{kitchen, accessory}, nil)

		spec := domain.NewFilterSpec()
		spec.Materials = []string{"Металл"}

		ps, err := s.FilterProducts(t.Context(), spec)
		require.NoError(t, err)
		assert.Equal(t, []domain.Product{accessory}, ps)
	})

	t.Run("InvalidRange", func(t *testing.T) {
		s, d := newTestService(t, false)

		spec := domain.FilterSpec{Price: domain.PriceRange{Min: 10, Max: 1}}
		_, err := s.FilterProducts(t.Context(), spec)
		assert.ErrorIs(t, err, domain.ErrInvalidPriceRange)
		d.products.AssertNotCalled(t, "ListProducts", mock.Anything)
	})

	t.Run("StorageError", func(t *testing.T) {
		s, d := newTestService(t, false)
		storageErr := errors.New("connection reset")
		d.products.On("ListProducts", mock.Anything).Return(nil, storageErr)

		_, err := s.FilterProducts(t.Context(), domain.NewFilterSpec())
		assert.ErrorIs(t, err, storageErr)
	})
}

func TestCartFlow(t *testing.T) {
	t.Run("AddIncrementRemove", func(t *testing.T) {
		s, d := newTestService(t, false)
		d.products.On("ReadProduct", mock.Anything, int64(1)).Return(kitchen, nil)
		d.products.On("ReadProduct", mock.Anything, int64(2)).Return(accessory, nil)

		cartID, err := s.CreateCart(t.Context())
		require.NoError(t, err)
		assert.Equal(t, "cart-1", cartID)

		_, effect, err := s.AddToCart(t.Context(), cartID, 1)
		require.NoError(t, err)
		assert.Equal(t, domain.EffectItemAdded, effect)

		_, effect, err = s.AddToCart(t.Context(), cartID, 1)
		require.NoError(t, err)
		assert.Equal(t, domain.EffectQuantityUpdated, effect)

		cart, _, err := s.AddToCart(t.Context(), cartID, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(2500), cart.Total())
		assert.Equal(t, 3, cart.ItemCount())

		cart, effect, err = s.RemoveFromCart(t.Context(), cartID, 1)
		require.NoError(t, err)
		assert.Equal(t, domain.EffectItemRemoved, effect)
		assert.Equal(t, int64(500), cart.Total())

		stored, err := s.ReadCart(t.Context(), cartID)
		require.NoError(t, err)
		assert.Equal(t, cart.Lines(), stored.Lines())
	})

	t.Run("SetQuantityClampsAndSkipsAbsent", func(t *testing.T) {
		s, d := newTestService(t, false)
		d.products.On("ReadProduct", mock.Anything, int64(1)).Return(kitchen, nil)

		cartID, err := s.CreateCart(t.Context())
		require.NoError(t, err)
		_, _, err = s.AddToCart(t.Context(), cartID, 1)
		require.NoError(t, err)

		cart, effect, err := s.SetCartQuantity(t.Context(), cartID, 1, 0)
		require.NoError(t, err)
		assert.Equal(t, domain.EffectQuantityUpdated, effect)
		assert.Equal(t, 1, cart.Quantity(1))

		saves := d.carts.saves
		_, effect, err = s.SetCartQuantity(t.Context(), cartID, 42, 5)
		require.NoError(t, err)
		assert.Equal(t, domain.EffectNone, effect)
		assert.Equal(t, saves, d.carts.saves)

		_, effect, err = s.RemoveFromCart(t.Context(), cartID, 42)
		require.NoError(t, err)
		assert.Equal(t, domain.EffectNone, effect)
	})

	t.Run("UnknownCart", func(t *testing.T) {
		s, d := newTestService(t, false)
		d.products.On("ReadProduct", mock.Anything, int64(1)).Return(kitchen, nil)

		_, _, err := s.AddToCart(t.Context(), "missing", 1)
		assert.ErrorIs(t, err, domain.ErrCartNotFound)

		_, err = s.ReadCart(t.Context(), "missing")
		assert.ErrorIs(t, err, domain.ErrCartNotFound)
	})

	t.Run("UnknownProduct", func(t *testing.T) {
		s, d := newTestService(t, false)
		d.products.On("ReadProduct", mock.Anything, int64(9)).
			Return(domain.Product{}, domain.ErrProductNotFound)

		cartID, err := s.CreateCart(t.Context())
		require.NoError(t, err)

		_, _, err = s.AddToCart(t.Context(), cartID, 9)
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})

	t.Run("SaveError", func(t *testing.T) {
		s, d := newTestService(t, false)
		d.products.On("ReadProduct", mock.Anything, int64(1)).Return(kitchen, nil)

		cartID, err := s.CreateCart(t.Context())
		require.NoError(t, err)

		saveErr := errors.New("redis down")
		d.carts.saveErr = saveErr
		_, _, err = s.AddToCart(t.Context(), cartID, 1)
		assert.ErrorIs(t, err, saveErr)
	})

	t.Run("ConcurrentAdds", func(t *testing.T) {
		s, d := newTestService(t, false)
		d.products.On("ReadProduct", mock.Anything, int64(1)).Return(kitchen, nil)

		cartID, err := s.CreateCart(t.Context())
		require.NoError(t, err)

		const n = 50
		var wg sync.WaitGroup
		wg.Add(n)
		for range n {
			go func() {
				defer wg.Done()
				_, _, err := s.AddToCart(t.Context(), cartID, 1)
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		cart, err := s.ReadCart(t.Context(), cartID)
		require.NoError(t, err)
		assert.Equal(t, n, cart.Quantity(1))
		assert.Zero(t, s.cartLocks.len())
	})
}

func TestCheckout(t *testing.T) {
	createdAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Regular", func(t *testing.T) {
		s, d := newTestService(t, true)
		d.products.On("ReadProduct", mock.Anything, int64(1)).Return(kitchen, nil)
		d.products.On("ReadProduct", mock.Anything, int64(2)).Return(accessory, nil)

		cartID, err := s.CreateCart(t.Context())
		require.NoError(t, err)
		for _, id := range []int64{1, 1, 2} {
			_, _, err = s.AddToCart(t.Context(), cartID, id)
			require.NoError(t, err)
		}

		expectedReq := domain.OrderRequest{
			Customer: testCustomer,
			Items: []domain.OrderItem{
				{ProductID: 1, Name: kitchen.Name, Price: 1000, Quantity: 2},
				{ProductID: 2, Name: accessory.Name, Price: 500, Quantity: 1},
			},
			Total: 2500,
		}
		placed := domain.PlacedOrder{ID: 17, CreatedAt: createdAt}
		d.orders.On("StoreOrder", mock.Anything, expectedReq).Return(placed, nil)
		d.events.On("ProduceOrderPlaced", mock.Anything, domain.NewOrderPlaced(placed, expectedReq)).
			Return(nil)

		got, err := s.Checkout(t.Context(), cartID, testCustomer)
		require.NoError(t, err)
		assert.Equal(t, placed, got)
		assert.False(t, d.carts.has(cartID))
		d.orders.AssertExpectations(t)
		d.events.AssertExpectations(t)
	})

	t.Run("EmptyCart", func(t *testing.T) {
		s, d := newTestService(t, true)

		cartID, err := s.CreateCart(t.Context())
		require.NoError(t, err)

		_, err = s.Checkout(t.Context(), cartID, testCustomer)
		assert.ErrorIs(t, err, domain.ErrEmptyOrder)
		assert.True(t, d.carts.has(cartID))
		d.orders.AssertNotCalled(t, "StoreOrder", mock.Anything, mock.Anything)
	})

	t.Run("StorageErrorKeepsCart", func(t *testing.T) {
		s, d := newTestService(t, false)
		d.products.On("ReadProduct", mock.Anything, int64(1)).Return(kitchen, nil)

		cartID, err := s.CreateCart(t.Context())
		require.NoError(t, err)
		_, _, err = s.AddToCart(t.Context(), cartID, 1)
		require.NoError(t, err)

		storeErr := errors.New("tx aborted")
		d.orders.On("StoreOrder", mock.Anything, mock.Anything).
			Return(domain.PlacedOrder{}, storeErr)

		_, err = s.Checkout(t.Context(), cartID, testCustomer)
		assert.ErrorIs(t, err, storeErr)
		assert.True(t, d.carts.has(cartID))
	})
}

func TestPlaceOrder(t *testing.T) {
	req := domain.OrderRequest{
		Customer: testCustomer,
		Items:    []domain.OrderItem{{ProductID: 1, Name: "A", Price: 300, Quantity: 2}},
		Total:    600,
	}
	placed := domain.PlacedOrder{ID: 3, CreatedAt: time.Now()}

	t.Run("PublishFailureIsNotFatal", func(t *testing.T) {
		s, d := newTestService(t, true)
		d.orders.On("StoreOrder", mock.Anything, req).Return(placed, nil)
		d.events.On("ProduceOrderPlaced", mock.Anything, mock.Anything).
			Return(errors.New("broker unavailable"))

		got, err := s.PlaceOrder(t.Context(), req)
		require.NoError(t, err)
		assert.Equal(t, placed, got)
	})

	t.Run("WithoutProducer", func(t *testing.T) {
		s, d := newTestService(t, false)
		d.orders.On("StoreOrder", mock.Anything, req).Return(placed, nil)

		_, err := s.PlaceOrder(t.Context(), req)
		require.NoError(t, err)
		d.events.AssertNotCalled(t, "ProduceOrderPlaced", mock.Anything, mock.Anything)
	})

	t.Run("TotalMismatch", func(t *testing.T) {
		s, _ := newTestService(t, false)
		bad := req
		bad.Total = 1

		_, err := s.PlaceOrder(t.Context(), bad)
		assert.ErrorIs(t, err, domain.ErrTotalMismatch)
	})
}

func TestUpdateOrder(t *testing.T) {
	t.Run("NoChanges", func(t *testing.T) {
		s, d := newTestService(t, false)
		err := s.UpdateOrder(t.Context(), domain.OrderUpdate{OrderID: 1})
		assert.ErrorIs(t, err, domain.ErrNoOrderChanges)
		d.orders.AssertNotCalled(t, "UpdateOrder", mock.Anything, mock.Anything)
	})

	t.Run("NotFound", func(t *testing.T) {
		s, d := newTestService(t, false)
		st := domain.StatusConfirmed
		u := domain.OrderUpdate{OrderID: 5, Status: &st}
		d.orders.On("UpdateOrder", mock.Anything, u).Return(domain.ErrOrderNotFound)

		err := s.UpdateOrder(t.Context(), u)
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	})
}

func TestBackOffice(t *testing.T) {
	t.Run("Dashboard", func(t *testing.T) {
		s, d := newTestService(t, false)
		d.orders.On("ListOrders", mock.Anything).Return([]domain.Order{
			{ID: 2, Total: 700, Status: domain.StatusPending},
			{ID: 1, Total: 300, Status: domain.StatusDelivered},
		}, nil)
		d.products.On("CountProducts", mock.Anything).Return(4, nil)

		stats, err := s.Dashboard(t.Context())
		require.NoError(t, err)
		assert.Equal(t, int64(1000), stats.TotalRevenue)
		assert.Equal(t, 2, stats.TotalOrders)
		assert.Equal(t, 4, stats.TotalProducts)
		assert.Equal(t, 1, stats.PendingOrders)
	})

	t.Run("FindCustomers", func(t *testing.T) {
		s, d := newTestService(t, false)
		d.customers.On("ListCustomers", mock.Anything).Return([]domain.CustomerRecord{
			{ID: 1, Customer: testCustomer},
			{ID: 2, Customer: domain.Customer{LastName: "Smith", FirstName: "John", Phone: "+1555"}},
		}, nil)

		cs, err := s.FindCustomers(t.Context(), "иван")
		require.NoError(t, err)
		require.Len(t, cs, 1)
		assert.Equal(t, int64(1), cs[0].ID)
	})

	t.Run("DeleteProductNotFound", func(t *testing.T) {
		s, d := newTestService(t, false)
		d.products.On("DeleteProduct", mock.Anything, int64(8)).Return(domain.ErrProductNotFound)

		err := s.DeleteProduct(t.Context(), 8)
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})
}
