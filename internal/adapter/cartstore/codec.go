package cartstore

import (
	"encoding/json"
	"fmt"

	"github.com/niksmo/kitchen-store/internal/core/domain"
)

type (
	cartLine struct {
		Product  product `json:"product"`
		Quantity int     `json:"quantity"`
	}

	product struct {
		ID           int64       `json:"id"`
		Name         string      `json:"name"`
		Price        int64       `json:"price"`
		Images       []string    `json:"images"`
		Category     string      `json:"category"`
		Material     string      `json:"material"`
		Color        string      `json:"color"`
		Style        string      `json:"style"`
		Description  string      `json:"description"`
		Manufacturer string      `json:"manufacturer,omitempty"`
		Dimensions   *dimensions `json:"dimensions,omitempty"`
	}

	dimensions struct {
		Length int `json:"length"`
		Width  int `json:"width"`
		Height int `json:"height"`
	}
)

func encodeCart(c *domain.Cart) ([]byte, error) {
	const op = "cartstore.encodeCart"

	lines := c.Lines()
	vs := make([]cartLine, len(lines))
	for i, l := range lines {
		vs[i] = cartLine{Product: fromDomainProduct(l.Product), Quantity: l.Quantity}
	}

	b, err := json.Marshal(vs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return b, nil
}

func decodeCart(data []byte) (*domain.Cart, error) {
	const op = "cartstore.decodeCart"

	var vs []cartLine
	if err := json.Unmarshal(data, &vs); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lines := make([]domain.CartLine, len(vs))
	for i, v := range vs {
		lines[i] = domain.CartLine{Product: v.Product.toDomain(), Quantity: v.Quantity}
	}
	return domain.RestoreCart(lines), nil
}

func fromDomainProduct(p domain.Product) (v product) {
	v.ID = p.ID
	v.Name = p.Name
	v.Price = p.Price
	v.Images = p.Images
	v.Category = p.Category
	v.Material = p.Material
	v.Color = p.Color
	v.Style = p.Style
	v.Description = p.Description
	v.Manufacturer = p.Manufacturer
	if p.Dimensions != nil {
		v.Dimensions = &dimensions{
			Length: p.Dimensions.Length,
			Width:  p.Dimensions.Width,
			Height: p.Dimensions.Height,
		}
	}
	return v
}

func (v product) toDomain() (p domain.Product) {
	p.ID = v.ID
	p.Name = v.Name
	p.Price = v.Price
	p.Images = v.Images
	p.Category = v.Category
	p.Material = v.Material
	p.Color = v.Color
	p.Style = v.Style
	p.Description = v.Description
	p.Manufacturer = v.Manufacturer
	if v.Dimensions != nil {
		p.Dimensions = &domain.Dimensions{
			Length: v.Dimensions.Length,
			Width:  v.Dimensions.Width,
			Height: v.Dimensions.Height,
		}
	}
	return p
}
