package httphandler

import (
	"encoding/json"
	"time"

	"github.com/niksmo/kitchen-store/internal/core/domain"
)

type (
	Product struct {
		ID           int64       `json:"id"`
		Name         string      `json:"name" validate:"required,max=255"`
		Price        int64       `json:"price" validate:"gte=0"`
		Images       []string    `json:"images"`
		Category     string      `json:"category"`
		Material     string      `json:"material"`
		Color        string      `json:"color"`
		Style        string      `json:"style"`
		Description  string      `json:"description"`
		Manufacturer string      `json:"manufacturer,omitempty"`
		Dimensions   *Dimensions `json:"dimensions,omitempty"`
	}

	Dimensions struct {
		Length int `json:"length" validate:"gte=0"`
		Width  int `json:"width" validate:"gte=0"`
		Height int `json:"height" validate:"gte=0"`
	}
)

// UnmarshalJSON accepts the legacy single "image" field
// when "images" is absent.
func (p *Product) UnmarshalJSON(data []byte) error {
	type plain Product
	aux := struct {
		*plain
		Image string `json:"image"`
	}{plain: (*plain)(p)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if len(p.Images) == 0 && aux.Image != "" {
		p.Images = []string{aux.Image}
	}
	return nil
}

func productFromDomain(p domain.Product) Product {
	v := Product{
		ID:           p.ID,
		Name:         p.Name,
		Price:        p.Price,
		Images:       p.Images,
		Category:     p.Category,
		Material:     p.Material,
		Color:        p.Color,
		Style:        p.Style,
		Description:  p.Description,
		Manufacturer: p.Manufacturer,
	}
	if v.Images == nil {
		v.Images = []string{}
	}
	if d := p.Dimensions; d != nil {
		v.Dimensions = &Dimensions{d.Length, d.Width, d.Height}
	}
	return v
}

func productsFromDomain(ps []domain.Product) []Product {
	vs := make([]Product, len(ps))
	for i, p := range ps {
		vs[i] = productFromDomain(p)
	}
	return vs
}

func (p Product) toDomain() domain.Product {
	v := domain.Product{
		ID:           p.ID,
		Name:         p.Name,
		Price:        p.Price,
		Images:       p.Images,
		Category:     p.Category,
		Material:     p.Material,
		Color:        p.Color,
		Style:        p.Style,
		Description:  p.Description,
		Manufacturer: p.Manufacturer,
	}
	if d := p.Dimensions; d != nil {
		v.Dimensions = &domain.Dimensions{
			Length: d.Length, Width: d.Width, Height: d.Height,
		}
	}
	return v
}

type Facets struct {
	Categories []string `json:"categories"`
	Materials  []string `json:"materials"`
	Colors     []string `json:"colors"`
	Styles     []string `json:"styles"`
	MinPrice   int64    `json:"minPrice"`
	MaxPrice   int64    `json:"maxPrice"`
}

func facetsFromDomain(f domain.Facets) Facets {
	return Facets{
		Categories: nonNil(f.Categories),
		Materials:  nonNil(f.Materials),
		Colors:     nonNil(f.Colors),
		Styles:     nonNil(f.Styles),
		MinPrice:   f.Price.Min,
		MaxPrice:   f.Price.Max,
	}
}

type (
	CartLine struct {
		Product  Product `json:"product"`
		Quantity int     `json:"quantity"`
		Subtotal int64   `json:"subtotal"`
	}

	Cart struct {
		Items     []CartLine `json:"items"`
		Total     int64      `json:"total"`
		ItemCount int        `json:"itemCount"`
	}

	CartMutation struct {
		Notice string `json:"notice"`
		Cart   Cart   `json:"cart"`
	}

	AddToCartRequest struct {
		ProductID int64 `json:"productId" validate:"required,gt=0"`
	}

	SetQuantityRequest struct {
		Quantity int `json:"quantity"`
	}
)

func cartFromDomain(c *domain.Cart) Cart {
	lines := c.Lines()
	v := Cart{
		Items:     make([]CartLine, len(lines)),
		Total:     c.Total(),
		ItemCount: c.ItemCount(),
	}
	for i, l := range lines {
		v.Items[i] = CartLine{
			Product:  productFromDomain(l.Product),
			Quantity: l.Quantity,
			Subtotal: l.Subtotal(),
		}
	}
	return v
}

type (
	Customer struct {
		LastName   string `json:"lastName" validate:"required"`
		FirstName  string `json:"firstName" validate:"required"`
		MiddleName string `json:"middleName,omitempty"`
		Phone      string `json:"phone" validate:"required"`
		City       string `json:"city" validate:"required"`
		Address    string `json:"address" validate:"required"`
	}

	OrderItem struct {
		ID       int64  `json:"id" validate:"required,gt=0"`
		Name     string `json:"name"`
		Price    int64  `json:"price" validate:"gte=0"`
		Quantity int    `json:"quantity" validate:"lte=999"`
	}

	OrderRequest struct {
		Customer Customer    `json:"customer"`
		Items    []OrderItem `json:"items" validate:"dive"`
		Total    int64       `json:"total"`
	}

	CheckoutRequest struct {
		Customer Customer `json:"customer"`
	}

	OrderPlaced struct {
		Success   bool      `json:"success"`
		OrderID   int64     `json:"orderId"`
		CreatedAt time.Time `json:"createdAt"`
	}

	Order struct {
		ID        int64       `json:"id"`
		Customer  Customer    `json:"customer"`
		Items     []OrderItem `json:"items"`
		Total     int64       `json:"total"`
		Status    string      `json:"status"`
		Notes     string      `json:"notes"`
		CreatedAt time.Time   `json:"createdAt"`
	}

	OrderUpdate struct {
		OrderID int64   `json:"orderId" validate:"required,gt=0"`
		Status  *string `json:"status"`
		Notes   *string `json:"notes"`
	}
)

func (c Customer) toDomain() domain.Customer {
	return domain.Customer{
		LastName:   c.LastName,
		FirstName:  c.FirstName,
		MiddleName: c.MiddleName,
		Phone:      c.Phone,
		City:       c.City,
		Address:    c.Address,
	}
}

func customerFromDomain(c domain.Customer) Customer {
	return Customer{
		LastName:   c.LastName,
		FirstName:  c.FirstName,
		MiddleName: c.MiddleName,
		Phone:      c.Phone,
		City:       c.City,
		Address:    c.Address,
	}
}

func (r OrderRequest) toDomain() domain.OrderRequest {
	items := make([]domain.OrderItem, len(r.Items))
	for i, it := range r.Items {
		items[i] = domain.OrderItem{
			ProductID: it.ID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
		}
	}
	return domain.OrderRequest{
		Customer: r.Customer.toDomain(),
		Items:    items,
		Total:    r.Total,
	}
}

func orderItemsFromDomain(items []domain.OrderItem) []OrderItem {
	vs := make([]OrderItem, len(items))
	for i, it := range items {
		vs[i] = OrderItem{
			ID:       it.ProductID,
			Name:     it.Name,
			Price:    it.Price,
			Quantity: it.Quantity,
		}
	}
	return vs
}

func orderFromDomain(o domain.Order) Order {
	return Order{
		ID:        o.ID,
		Customer:  customerFromDomain(o.Customer),
		Items:     orderItemsFromDomain(o.Items),
		Total:     o.Total,
		Status:    string(o.Status),
		Notes:     o.Notes,
		CreatedAt: o.CreatedAt,
	}
}

func ordersFromDomain(orders []domain.Order) []Order {
	vs := make([]Order, len(orders))
	for i, o := range orders {
		vs[i] = orderFromDomain(o)
	}
	return vs
}

// toDomain fails with [domain.ErrInvalidStatus] on unknown status.
func (u OrderUpdate) toDomain() (domain.OrderUpdate, error) {
	v := domain.OrderUpdate{OrderID: u.OrderID, Notes: u.Notes}
	if u.Status != nil {
		st, err := domain.ParseOrderStatus(*u.Status)
		if err != nil {
			return domain.OrderUpdate{}, err
		}
		v.Status = &st
	}
	return v, nil
}

type (
	CustomerRecord struct {
		ID          int64     `json:"id"`
		Customer    Customer  `json:"customer"`
		FullName    string    `json:"fullName"`
		TotalOrders int       `json:"totalOrders"`
		TotalSpent  int64     `json:"totalSpent"`
		CreatedAt   time.Time `json:"createdAt"`
		UpdatedAt   time.Time `json:"updatedAt"`
	}

	Dashboard struct {
		TotalRevenue  int64   `json:"totalRevenue"`
		TotalOrders   int     `json:"totalOrders"`
		TotalProducts int     `json:"totalProducts"`
		PendingOrders int     `json:"pendingOrders"`
		RecentOrders  []Order `json:"recentOrders"`
	}
)

func customersFromDomain(cs []domain.CustomerRecord) []CustomerRecord {
	vs := make([]CustomerRecord, len(cs))
	for i, c := range cs {
		vs[i] = CustomerRecord{
			ID:          c.ID,
			Customer:    customerFromDomain(c.Customer),
			FullName:    c.Customer.FullName(),
			TotalOrders: c.TotalOrders,
			TotalSpent:  c.TotalSpent,
			CreatedAt:   c.CreatedAt,
			UpdatedAt:   c.UpdatedAt,
		}
	}
	return vs
}

func dashboardFromDomain(s domain.DashboardStats) Dashboard {
	return Dashboard{
		TotalRevenue:  s.TotalRevenue,
		TotalOrders:   s.TotalOrders,
		TotalProducts: s.TotalProducts,
		PendingOrders: s.PendingOrders,
		RecentOrders:  ordersFromDomain(s.RecentOrders),
	}
}

func nonNil[T any](vs []T) []T {
	if vs == nil {
		return []T{}
	}
	return vs
}
