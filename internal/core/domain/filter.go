package domain

import (
	"fmt"
	"math"
	"slices"
)

// A PriceRange is an inclusive pair of price bounds.
type PriceRange struct {
	Min int64
	Max int64
}

// AnyPrice returns the range [0, +inf).
func AnyPrice() PriceRange {
	return PriceRange{Min: 0, Max: math.MaxInt64}
}

func (r PriceRange) Validate() error {
	if r.Min < 0 || r.Min > r.Max {
		return fmt.Errorf("%w: [%d, %d]", ErrInvalidPriceRange, r.Min, r.Max)
	}
	return nil
}

func (r PriceRange) Contains(price int64) bool {
	return r.Min <= price && price <= r.Max
}

// A FilterSpec is the complete set of active facet selections.
//
// An empty facet selection puts no constraint on that facet.
type FilterSpec struct {
	Price      PriceRange
	Categories []string
	Materials  []string
	Colors     []string
	Styles     []string
}

// NewFilterSpec returns the spec that passes every product.
func NewFilterSpec() FilterSpec {
	return FilterSpec{Price: AnyPrice()}
}

func (s FilterSpec) Validate() error {
	return s.Price.Validate()
}

// Match reports whether p passes every facet of the spec.
func (s FilterSpec) Match(p Product) bool {
	return s.Price.Contains(p.Price) &&
		facetMatch(s.Categories, p.Category) &&
		facetMatch(s.Materials, p.Material) &&
		facetMatch(s.Colors, p.Color) &&
		facetMatch(s.Styles, p.Style)
}

func facetMatch(selected []string, v string) bool {
	return len(selected) == 0 || slices.Contains(selected, v)
}

// FilterProducts returns the products matching spec in input order.
//
// The input slice is not modified.
func FilterProducts(ps []Product, spec FilterSpec) []Product {
	res := make([]Product, 0, len(ps))
	for _, p := range ps {
		if spec.Match(p) {
			res = append(res, p)
		}
	}
	return res
}

// Facets lists the distinct facet values present in a catalog.
type Facets struct {
	Categories []string
	Materials  []string
	Colors     []string
	Styles     []string
	Price      PriceRange
}

func CollectFacets(ps []Product) Facets {
	var f Facets
	if len(ps) == 0 {
		return f
	}

	f.Price = PriceRange{Min: ps[0].Price, Max: ps[0].Price}
	for _, p := range ps {
		f.Categories = append(f.Categories, p.Category)
		f.Materials = append(f.Materials, p.Material)
		f.Colors = append(f.Colors, p.Color)
		f.Styles = append(f.Styles, p.Style)
		f.Price.Min = min(f.Price.Min, p.Price)
		f.Price.Max = max(f.Price.Max, p.Price)
	}

	f.Categories = distinct(f.Categories)
	f.Materials = distinct(f.Materials)
	f.Colors = distinct(f.Colors)
	f.Styles = distinct(f.Styles)
	return f
}

func distinct(vs []string) []string {
	vs = slices.DeleteFunc(vs, func(v string) bool { return v == "" })
	slices.Sort(vs)
	return slices.Compact(vs)
}
