package domain

import (
	"fmt"
	"time"
)

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusConfirmed  OrderStatus = "confirmed"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

var orderStatuses = []OrderStatus{
	StatusPending,
	StatusConfirmed,
	StatusProcessing,
	StatusShipped,
	StatusDelivered,
	StatusCancelled,
}

func OrderStatuses() []OrderStatus {
	res := make([]OrderStatus, len(orderStatuses))
	copy(res, orderStatuses)
	return res
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	for _, st := range orderStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

type (
	Customer struct {
		LastName   string
		FirstName  string
		MiddleName string
		Phone      string
		City       string
		Address    string
	}

	OrderItem struct {
		ProductID int64
		Name      string
		Price     int64
		Quantity  int
	}

	// An OrderRequest is the payload of an order submission.
	OrderRequest struct {
		Customer Customer
		Items    []OrderItem
		Total    int64
	}

	PlacedOrder struct {
		ID        int64
		CreatedAt time.Time
	}

	Order struct {
		ID        int64
		Customer  Customer
		Items     []OrderItem
		Total     int64
		Status    OrderStatus
		Notes     string
		CreatedAt time.Time
	}

	// An OrderUpdate changes status, notes or both. Nil fields are kept.
	OrderUpdate struct {
		OrderID int64
		Status  *OrderStatus
		Notes   *string
	}

	// An OrderPlaced is published after an order is stored.
	OrderPlaced struct {
		OrderID   int64
		Customer  Customer
		Items     []OrderItem
		Total     int64
		CreatedAt time.Time
	}
)

func (c Customer) FullName() string {
	name := c.LastName + " " + c.FirstName
	if c.MiddleName != "" {
		name += " " + c.MiddleName
	}
	return name
}

func (i OrderItem) Subtotal() int64 {
	sub, _ := subtotal(i.Price, i.Quantity)
	return sub
}

// NewOrderRequest takes items and total from the cart.
func NewOrderRequest(customer Customer, cart *Cart) OrderRequest {
	return OrderRequest{
		Customer: customer,
		Items:    cart.OrderItems(),
		Total:    cart.Total(),
	}
}

func (r OrderRequest) Validate() error {
	if len(r.Items) == 0 {
		return ErrEmptyOrder
	}

	var (
		total int64
		ok    bool
	)
	for _, it := range r.Items {
		if it.Quantity < 1 || it.Quantity > MaxQuantity {
			return fmt.Errorf(
				"%w: product %d quantity %d", ErrInvalidQuantity, it.ProductID, it.Quantity,
			)
		}
		if it.Price < 0 {
			return fmt.Errorf("%w: product %d price %d", ErrInvalidPrice, it.ProductID, it.Price)
		}
		if total, ok = addSubtotal(total, it.Price, it.Quantity); !ok {
			return fmt.Errorf("%w: product %d total overflows", ErrInvalidQuantity, it.ProductID)
		}
	}

	if total != r.Total {
		return fmt.Errorf("%w: expected %d, got %d", ErrTotalMismatch, total, r.Total)
	}
	return nil
}

func (r OrderRequest) ItemCount() (n int) {
	for _, it := range r.Items {
		n += it.Quantity
	}
	return n
}

func (u OrderUpdate) Validate() error {
	if u.Status == nil && u.Notes == nil {
		return ErrNoOrderChanges
	}
	if u.Status != nil {
		if _, err := ParseOrderStatus(string(*u.Status)); err != nil {
			return err
		}
	}
	return nil
}

func NewOrderPlaced(placed PlacedOrder, r OrderRequest) OrderPlaced {
	return OrderPlaced{
		OrderID:   placed.ID,
		Customer:  r.Customer,
		Items:     r.Items,
		Total:     r.Total,
		CreatedAt: placed.CreatedAt,
	}
}
