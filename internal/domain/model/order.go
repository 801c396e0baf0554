package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus describes the delivery lifecycle reported by the backend.
type OrderStatus string

const (
	OrderStatusPlaced         OrderStatus = "PLACED"
	OrderStatusConfirmed      OrderStatus = "CONFIRMED"
	OrderStatusPreparing      OrderStatus = "PREPARING"
	OrderStatusOutForDelivery OrderStatus = "OUT_FOR_DELIVERY"
	OrderStatusDelivered      OrderStatus = "DELIVERED"
	OrderStatusCancelled      OrderStatus = "CANCELLED"
)

// OrderStatusSequence is the canonical progression, CANCELLED excluded.
var OrderStatusSequence = []OrderStatus{
	OrderStatusPlaced,
	OrderStatusConfirmed,
	OrderStatusPreparing,
	OrderStatusOutForDelivery,
	OrderStatusDelivered,
}

// ParseOrderStatus normalizes raw status text and validates it.
func ParseOrderStatus(raw string) (OrderStatus, bool) {
	s := OrderStatus(strings.ToUpper(strings.TrimSpace(raw)))
	return s, s.IsValid()
}

func (s OrderStatus) String() string { return string(s) }

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPlaced, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusOutForDelivery, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// Rank returns the position in OrderStatusSequence or -1 for CANCELLED and unknown values.
func (s OrderStatus) Rank() int {
	for i, st := range OrderStatusSequence {
		if st == s {
			return i
		}
	}
	return -1
}

// IsTerminal reports whether no further transition exists.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// PaymentMethod selected at checkout.
type PaymentMethod string

const (
	PaymentMethodCOD  PaymentMethod = "COD"
	PaymentMethodCard PaymentMethod = "CARD"
	PaymentMethodUPI  PaymentMethod = "UPI"
)

// ParsePaymentMethod falls back to cash on delivery for empty input.
func ParsePaymentMethod(raw string) (PaymentMethod, bool) {
	m := PaymentMethod(strings.ToUpper(strings.TrimSpace(raw)))
	switch m {
	case "":
		return PaymentMethodCOD, true
	case PaymentMethodCOD, PaymentMethodCard, PaymentMethodUPI:
		return m, true
	default:
		return "", false
	}
}

// RestaurantRef is the restaurant summary embedded in an order.
type RestaurantRef struct {
	ID          int64
	Name        string
	CuisineType string
}

// OrderLine is one menu item with quantity inside an order.
type OrderLine struct {
	ID       int64
	MenuItem MenuItemSnapshot
	Quantity int
	Price    decimal.Decimal
}

// Order describes a placed order as last reported by the backend.
type Order struct {
	ID                    int64
	Restaurant            RestaurantRef
	Address               Address
	Items                 []OrderLine
	TotalAmount           decimal.Decimal
	Status                OrderStatus
	PaymentStatus         string
	PaymentMethod         PaymentMethod
	CreatedAt             time.Time
	EstimatedDeliveryTime *time.Time
	DeliveredAt           *time.Time
}

// Checkout carries the parameters for placing an order from the current cart.
type Checkout struct {
	AddressID     int64
	PaymentMethod PaymentMethod
}
