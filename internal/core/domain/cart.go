package domain

import "math"

// MaxQuantity bounds the quantity of a single cart line or order item.
const MaxQuantity = 999

// A CartEffect describes the visible outcome of a cart mutation.
type CartEffect int

const (
	EffectNone CartEffect = iota
	EffectItemAdded
	EffectQuantityUpdated
	EffectItemRemoved
)

func (e CartEffect) String() string {
	switch e {
	case EffectItemAdded:
		return "item added"
	case EffectQuantityUpdated:
		return "quantity updated"
	case EffectItemRemoved:
		return "item removed"
	default:
		return "none"
	}
}

type CartLine struct {
	Product  Product
	Quantity int
}

func (l CartLine) Subtotal() int64 {
	sub, _ := subtotal(l.Product.Price, l.Quantity)
	return sub
}

// A Cart holds at most one line per product id.
//
// Lines keep the order in which their products were first added.
// Quantity of every line is between 1 and MaxQuantity.
// The zero value is an empty cart ready to use.
type Cart struct {
	lines []CartLine
}

func NewCart() *Cart {
	return &Cart{}
}

// RestoreCart rebuilds a cart from stored lines.
//
// Repeated product ids keep the first line, quantities are clamped
// to [1, MaxQuantity].
func RestoreCart(lines []CartLine) *Cart {
	c := NewCart()
	for _, l := range lines {
		if c.index(l.Product.ID) != -1 {
			continue
		}
		l.Quantity = clampQuantity(l.Quantity)
		c.lines = append(c.lines, l)
	}
	return c
}

// Add appends p with quantity 1 or increments its existing line by 1.
//
// A line already at MaxQuantity is left unchanged.
func (c *Cart) Add(p Product) CartEffect {
	if i := c.index(p.ID); i != -1 {
		if c.lines[i].Quantity >= MaxQuantity {
			return EffectNone
		}
		c.lines[i].Quantity++
		return EffectQuantityUpdated
	}
	c.lines = append(c.lines, CartLine{Product: p, Quantity: 1})
	return EffectItemAdded
}

// SetQuantity sets the line quantity clamped to [1, MaxQuantity].
//
// Absent product ids are ignored.
func (c *Cart) SetQuantity(productID int64, quantity int) CartEffect {
	i := c.index(productID)
	if i == -1 {
		return EffectNone
	}
	c.lines[i].Quantity = clampQuantity(quantity)
	return EffectQuantityUpdated
}

// Remove deletes the line of productID if present.
func (c *Cart) Remove(productID int64) CartEffect {
	i := c.index(productID)
	if i == -1 {
		return EffectNone
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	return EffectItemRemoved
}

// Lines returns a copy of the cart lines.
func (c *Cart) Lines() []CartLine {
	res := make([]CartLine, len(c.lines))
	copy(res, c.lines)
	return res
}

func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) Quantity(productID int64) int {
	if i := c.index(productID); i != -1 {
		return c.lines[i].Quantity
	}
	return 0
}

// Total saturates at math.MaxInt64 instead of wrapping.
func (c *Cart) Total() int64 {
	var total int64
	for _, l := range c.lines {
		var ok bool
		if total, ok = addSubtotal(total, l.Product.Price, l.Quantity); !ok {
			return math.MaxInt64
		}
	}
	return total
}

// ItemCount returns the total number of units, not lines.
func (c *Cart) ItemCount() (n int) {
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

func (c *Cart) OrderItems() []OrderItem {
	items := make([]OrderItem, len(c.lines))
	for i, l := range c.lines {
		items[i] = OrderItem{
			ProductID: l.Product.ID,
			Name:      l.Product.Name,
			Price:     l.Product.Price,
			Quantity:  l.Quantity,
		}
	}
	return items
}

func (c *Cart) index(productID int64) int {
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			return i
		}
	}
	return -1
}

func clampQuantity(q int) int {
	return min(MaxQuantity, max(1, q))
}

// subtotal reports false if price is negative or the product overflows.
func subtotal(price int64, quantity int) (int64, bool) {
	q := int64(quantity)
	if price < 0 || q < 0 {
		return 0, false
	}
	if q != 0 && price > math.MaxInt64/q {
		return math.MaxInt64, false
	}
	return price * q, true
}

func addSubtotal(total, price int64, quantity int) (int64, bool) {
	sub, ok := subtotal(price, quantity)
	if !ok || total > math.MaxInt64-sub {
		return math.MaxInt64, false
	}
	return total + sub, true
}
