package model

import "github.com/shopspring/decimal"

// MenuItemSnapshot is the menu item copy referenced by a cart or order line.
type MenuItemSnapshot struct {
	ID    int64
	Name  string
	Price decimal.Decimal
	Veg   bool
}

// CartLine is one menu item with quantity inside the cart.
type CartLine struct {
	ID       int64
	MenuItem MenuItemSnapshot
	Quantity int
	Price    decimal.Decimal
}

// Cart mirrors the server-side cart. TotalAmount is always the server's value.
type Cart struct {
	ID          int64
	Items       []CartLine
	TotalAmount decimal.Decimal
}

// ItemCount sums line quantities. A nil cart holds nothing.
func (c *Cart) ItemCount() int {
	if c == nil {
		return 0
	}
	var n int
	for _, line := range c.Items {
		n += line.Quantity
	}
	return n
}

// Line finds a cart line by its identifier.
func (c *Cart) Line(id int64) (CartLine, bool) {
	if c == nil {
		return CartLine{}, false
	}
	for _, line := range c.Items {
		if line.ID == id {
			return line, true
		}
	}
	return CartLine{}, false
}
