package storage

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/niksmo/kitchen-store/internal/core/domain"
)

type productRow struct {
	ID           int64
	Name         string
	Price        int64
	Images       []byte
	Category     string
	Material     string
	Style        string
	Color        string
	Manufacturer sql.NullString
	Description  string
	Length       sql.NullInt64
	Width        sql.NullInt64
	Height       sql.NullInt64
}

func (r *productRow) dest() []any {
	return []any{
		&r.ID, &r.Name, &r.Price, &r.Images, &r.Category, &r.Material,
		&r.Style, &r.Color, &r.Manufacturer, &r.Description,
		&r.Length, &r.Width, &r.Height,
	}
}

func newProductRow(p domain.Product) (productRow, error) {
	images := p.Images
	if images == nil {
		images = []string{}
	}
	imagesB, err := json.Marshal(images)
	if err != nil {
		return productRow{}, err
	}

	r := productRow{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Images:      imagesB,
		Category:    p.Category,
		Material:    p.Material,
		Style:       p.Style,
		Color:       p.Color,
		Description: p.Description,
		Manufacturer: sql.NullString{
			String: p.Manufacturer, Valid: p.Manufacturer != "",
		},
	}
	if d := p.Dimensions; d != nil {
		r.Length = sql.NullInt64{Int64: int64(d.Length), Valid: true}
		r.Width = sql.NullInt64{Int64: int64(d.Width), Valid: true}
		r.Height = sql.NullInt64{Int64: int64(d.Height), Valid: true}
	}
	return r, nil
}

func (r productRow) toDomain() (domain.Product, error) {
	p := domain.Product{
		ID:           r.ID,
		Name:         r.Name,
		Price:        r.Price,
		Category:     r.Category,
		Material:     r.Material,
		Style:        r.Style,
		Color:        r.Color,
		Description:  r.Description,
		Manufacturer: r.Manufacturer.String,
	}

	if len(r.Images) != 0 {
		if err := json.Unmarshal(r.Images, &p.Images); err != nil {
			return domain.Product{}, err
		}
	}

	if r.Length.Valid && r.Width.Valid && r.Height.Valid {
		p.Dimensions = &domain.Dimensions{
			Length: int(r.Length.Int64),
			Width:  int(r.Width.Int64),
			Height: int(r.Height.Int64),
		}
	}
	return p, nil
}

type orderItemRow struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
}

func encodeOrderItems(items []domain.OrderItem) ([]byte, error) {
	rows := make([]orderItemRow, len(items))
	for i, it := range items {
		rows[i] = orderItemRow{
			ID: it.ProductID, Name: it.Name, Price: it.Price, Quantity: it.Quantity,
		}
	}
	return json.Marshal(rows)
}

func decodeOrderItems(data []byte) ([]domain.OrderItem, error) {
	var rows []orderItemRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, err
	}
	items := make([]domain.OrderItem, len(rows))
	for i, r := range rows {
		items[i] = domain.OrderItem{
			ProductID: r.ID, Name: r.Name, Price: r.Price, Quantity: r.Quantity,
		}
	}
	return items, nil
}

type orderRow struct {
	ID         int64
	LastName   string
	FirstName  string
	MiddleName sql.NullString
	Phone      string
	City       string
	Address    string
	Items      []byte
	Total      int64
	Status     string
	Notes      sql.NullString
	CreatedAt  time.Time
}

func (r *orderRow) dest() []any {
	return []any{
		&r.ID, &r.LastName, &r.FirstName, &r.MiddleName, &r.Phone, &r.City,
		&r.Address, &r.Items, &r.Total, &r.Status, &r.Notes, &r.CreatedAt,
	}
}

func (r orderRow) toDomain() (domain.Order, error) {
	items, err := decodeOrderItems(r.Items)
	if err != nil {
		return domain.Order{}, err
	}

	status, err := domain.ParseOrderStatus(r.Status)
	if err != nil {
		return domain.Order{}, err
	}

	return domain.Order{
		ID: r.ID,
		Customer: domain.Customer{
			LastName:   r.LastName,
			FirstName:  r.FirstName,
			MiddleName: r.MiddleName.String,
			Phone:      r.Phone,
			City:       r.City,
			Address:    r.Address,
		},
		Items:     items,
		Total:     r.Total,
		Status:    status,
		Notes:     r.Notes.String,
		CreatedAt: r.CreatedAt,
	}, nil
}

type customerRow struct {
	ID          int64
	LastName    string
	FirstName   string
	MiddleName  sql.NullString
	Phone       string
	City        string
	Address     string
	TotalOrders int
	TotalSpent  int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (r *customerRow) dest() []any {
	return []any{
		&r.ID, &r.LastName, &r.FirstName, &r.MiddleName, &r.Phone, &r.City,
		&r.Address, &r.TotalOrders, &r.TotalSpent, &r.CreatedAt, &r.UpdatedAt,
	}
}

func (r customerRow) toDomain() domain.CustomerRecord {
	return domain.CustomerRecord{
		ID: r.ID,
		Customer: domain.Customer{
			LastName:   r.LastName,
			FirstName:  r.FirstName,
			MiddleName: r.MiddleName.String,
			Phone:      r.Phone,
			City:       r.City,
			Address:    r.Address,
		},
		TotalOrders: r.TotalOrders,
		TotalSpent:  r.TotalSpent,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
