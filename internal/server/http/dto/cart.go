package dto

import "github.com/shopspring/decimal"

// AddToCartRequest adds a menu item to the cart.
type AddToCartRequest struct {
	MenuItemID int64 `json:"menuItemId" binding:"required"`
	Quantity   int   `json:"quantity"`
}

// QuantityRequest sets the quantity of a cart line.
type QuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// MenuItemSnapshotResponse is the menu item copy inside a cart or order line.
type MenuItemSnapshotResponse struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Veg   bool            `json:"isVeg"`
}

// LineResponse is a cart or order line.
type LineResponse struct {
	ID       int64                    `json:"id"`
	MenuItem MenuItemSnapshotResponse `json:"menuItem"`
	Quantity int                      `json:"quantity"`
	Price    decimal.Decimal          `json:"price"`
}

// CartResponse is the cart as last reported by the backend.
type CartResponse struct {
	State       string          `json:"state"`
	ID          int64           `json:"id,omitempty"`
	Items       []LineResponse  `json:"items"`
	ItemCount   int             `json:"itemCount"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// CountResponse carries the cart badge count.
type CountResponse struct {
	Count int `json:"count"`
}
