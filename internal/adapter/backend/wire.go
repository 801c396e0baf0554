package backend

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/foodfront/internal/domain/model"
)

// localLayouts are the zone-less ISO forms the backend emits.
var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// backendLocation is the zone applied to zone-less backend timestamps.
var backendLocation = time.Local

// localTime decodes a date-time without offset. It accepts an ISO string, the
// [y,m,d,h,mi,s,ns] array form and null.
type localTime struct {
	time.Time
	Valid bool
}

func (t *localTime) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*t = localTime{}
		return nil
	}
	if data[0] == '[' {
		var parts []int
		if err := json.Unmarshal(data, &parts); err != nil {
			return fmt.Errorf("decode time parts: %w", err)
		}
		if len(parts) < 3 {
			return fmt.Errorf("time array too short: %v", parts)
		}
		for len(parts) < 7 {
			parts = append(parts, 0)
		}
		t.Time = time.Date(parts[0], time.Month(parts[1]), parts[2], parts[3], parts[4], parts[5], parts[6], backendLocation)
		t.Valid = true
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode time: %w", err)
	}
	if raw == "" {
		*t = localTime{}
		return nil
	}
	if parsed, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		t.Time, t.Valid = parsed, true
		return nil
	}
	for _, layout := range localLayouts {
		if parsed, err := time.ParseInLocation(layout, raw, backendLocation); err == nil {
			t.Time, t.Valid = parsed, true
			return nil
		}
	}
	return fmt.Errorf("unsupported time format %q", raw)
}

func (t localTime) ptr() *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

type authRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role,omitempty"`
}

type authResponse struct {
	Token    string `json:"token"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	ImageURL string `json:"imageUrl"`
}

func (r authResponse) toModel() *model.AuthResult {
	role, ok := model.ParseRole(r.Role)
	if !ok {
		role = model.RoleCustomer
	}
	return &model.AuthResult{Token: r.Token, Name: r.Name, Email: r.Email, Role: role, ImageURL: r.ImageURL}
}

type menuItemRef struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Veg   bool            `json:"veg"`
}

func (m menuItemRef) toModel() model.MenuItemSnapshot {
	return model.MenuItemSnapshot{ID: m.ID, Name: m.Name, Price: m.Price, Veg: m.Veg}
}

type lineItem struct {
	ID       int64           `json:"id"`
	MenuItem menuItemRef     `json:"menuItem"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

type cartResponse struct {
	ID          int64           `json:"id"`
	Items       []lineItem      `json:"items"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

func (r cartResponse) toModel() *model.Cart {
	cart := &model.Cart{ID: r.ID, TotalAmount: r.TotalAmount, Items: make([]model.CartLine, 0, len(r.Items))}
	for _, it := range r.Items {
		cart.Items = append(cart.Items, model.CartLine{
			ID:       it.ID,
			MenuItem: it.MenuItem.toModel(),
			Quantity: it.Quantity,
			Price:    it.Price,
		})
	}
	return cart
}

type restaurantRef struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	CuisineType string `json:"cuisineType"`
}

type addressPayload struct {
	ID          int64  `json:"id,omitempty"`
	AddressLine string `json:"addressLine"`
	City        string `json:"city"`
	State       string `json:"state"`
	Pincode     string `json:"pincode"`
	IsDefault   bool   `json:"isDefault,omitempty"`
}

func (a addressPayload) toModel() model.Address {
	return model.Address{ID: a.ID, AddressLine: a.AddressLine, City: a.City, State: a.State, Pincode: a.Pincode, IsDefault: a.IsDefault}
}

func addressFromModel(a model.Address) addressPayload {
	return addressPayload{ID: a.ID, AddressLine: a.AddressLine, City: a.City, State: a.State, Pincode: a.Pincode, IsDefault: a.IsDefault}
}

type orderResponse struct {
	ID                    int64           `json:"id"`
	Restaurant            restaurantRef   `json:"restaurant"`
	Address               addressPayload  `json:"address"`
	Items                 []lineItem      `json:"items"`
	TotalAmount           decimal.Decimal `json:"totalAmount"`
	Status                string          `json:"status"`
	PaymentStatus         string          `json:"paymentStatus"`
	PaymentMethod         string          `json:"paymentMethod"`
	CreatedAt             localTime       `json:"createdAt"`
	EstimatedDeliveryTime localTime       `json:"estimatedDeliveryTime"`
	DeliveredAt           localTime       `json:"deliveredAt"`
}

func (r orderResponse) toModel() model.Order {
	status, ok := model.ParseOrderStatus(r.Status)
	if !ok {
		status = model.OrderStatus(r.Status)
	}
	method, ok := model.ParsePaymentMethod(r.PaymentMethod)
	if !ok {
		method = model.PaymentMethod(r.PaymentMethod)
	}
	order := model.Order{
		ID:                    r.ID,
		Restaurant:            model.RestaurantRef{ID: r.Restaurant.ID, Name: r.Restaurant.Name, CuisineType: r.Restaurant.CuisineType},
		Address:               r.Address.toModel(),
		Items:                 make([]model.OrderLine, 0, len(r.Items)),
		TotalAmount:           r.TotalAmount,
		Status:                status,
		PaymentStatus:         r.PaymentStatus,
		PaymentMethod:         method,
		CreatedAt:             r.CreatedAt.Time,
		EstimatedDeliveryTime: r.EstimatedDeliveryTime.ptr(),
		DeliveredAt:           r.DeliveredAt.ptr(),
	}
	for _, it := range r.Items {
		order.Items = append(order.Items, model.OrderLine{
			ID:       it.ID,
			MenuItem: it.MenuItem.toModel(),
			Quantity: it.Quantity,
			Price:    it.Price,
		})
	}
	return order
}

func ordersToModel(in []orderResponse) []model.Order {
	out := make([]model.Order, 0, len(in))
	for _, o := range in {
		out = append(out, o.toModel())
	}
	return out
}

type restaurantPayload struct {
	ID           int64   `json:"id,omitempty"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Address      string  `json:"address"`
	CuisineType  string  `json:"cuisineType"`
	ImageURL     string  `json:"imageUrl,omitempty"`
	AvgRating    float64 `json:"avgRating"`
	DeliveryTime int     `json:"deliveryTime"`
	Active       bool    `json:"active"`
}

func (r restaurantPayload) toModel() model.Restaurant {
	return model.Restaurant{
		ID:           r.ID,
		Name:         r.Name,
		Description:  r.Description,
		Address:      r.Address,
		CuisineType:  r.CuisineType,
		ImageURL:     r.ImageURL,
		AvgRating:    r.AvgRating,
		DeliveryTime: r.DeliveryTime,
		Active:       r.Active,
	}
}

func restaurantFromModel(r model.Restaurant) restaurantPayload {
	return restaurantPayload{
		ID:           r.ID,
		Name:         r.Name,
		Description:  r.Description,
		Address:      r.Address,
		CuisineType:  r.CuisineType,
		ImageURL:     r.ImageURL,
		AvgRating:    r.AvgRating,
		DeliveryTime: r.DeliveryTime,
		Active:       r.Active,
	}
}

type menuItemPayload struct {
	ID          int64           `json:"id,omitempty"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Veg         bool            `json:"veg"`
	Available   bool            `json:"available"`
	ImageURL    string          `json:"imageUrl,omitempty"`
	Category    string          `json:"category,omitempty"`
}

func (m menuItemPayload) toModel() model.MenuItem {
	return model.MenuItem{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Veg:         m.Veg,
		Available:   m.Available,
		ImageURL:    m.ImageURL,
		Category:    m.Category,
	}
}

func menuItemFromModel(m model.MenuItem) menuItemPayload {
	return menuItemPayload{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Veg:         m.Veg,
		Available:   m.Available,
		ImageURL:    m.ImageURL,
		Category:    m.Category,
	}
}

type profilePayload struct {
	ID       int64  `json:"id,omitempty"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
	Role     string `json:"role,omitempty"`
}

func (p profilePayload) toModel() *model.Profile {
	role, ok := model.ParseRole(p.Role)
	if !ok {
		role = model.RoleCustomer
	}
	return &model.Profile{ID: p.ID, Name: p.Name, Email: p.Email, Phone: p.Phone, ImageURL: p.ImageURL, Role: role}
}

type passwordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}
