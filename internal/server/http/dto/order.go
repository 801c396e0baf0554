package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CheckoutRequest places an order from the cart.
type CheckoutRequest struct {
	AddressID     int64  `json:"addressId" binding:"required"`
	PaymentMethod string `json:"paymentMethod"`
}

// StepResponse is one step of the order tracker.
type StepResponse struct {
	Key       string `json:"key"`
	Label     string `json:"label"`
	Icon      string `json:"icon"`
	Completed bool   `json:"completed"`
	Active    bool   `json:"active"`
}

// TrackerResponse is the progress view of an order.
type TrackerResponse struct {
	Label     string         `json:"label"`
	Color     string         `json:"color"`
	Icon      string         `json:"icon"`
	Cancelled bool           `json:"cancelled"`
	Completed int            `json:"completed"`
	Steps     []StepResponse `json:"steps"`
}

// ActionResponse is a status change offered to the viewer.
type ActionResponse struct {
	Target string `json:"target"`
	Label  string `json:"label"`
}

// RestaurantRefResponse is the restaurant summary embedded in an order.
type RestaurantRefResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	CuisineType string `json:"cuisineType,omitempty"`
}

// OrderResponse is an order decorated for the viewer.
type OrderResponse struct {
	ID                    int64                 `json:"id"`
	Restaurant            RestaurantRefResponse `json:"restaurant"`
	Address               AddressResponse       `json:"address"`
	Items                 []LineResponse        `json:"items"`
	TotalAmount           decimal.Decimal       `json:"totalAmount"`
	Status                string                `json:"status"`
	PaymentStatus         string                `json:"paymentStatus,omitempty"`
	PaymentMethod         string                `json:"paymentMethod"`
	CreatedAt             time.Time             `json:"createdAt"`
	EstimatedDeliveryTime *time.Time            `json:"estimatedDeliveryTime,omitempty"`
	DeliveredAt           *time.Time            `json:"deliveredAt,omitempty"`
	Tracker               TrackerResponse       `json:"tracker"`
	NextAction            *ActionResponse       `json:"nextAction,omitempty"`
	CanCancel             bool                  `json:"canCancel"`
	Actions               []ActionResponse      `json:"actions"`
}
