package dto

import "github.com/shopspring/decimal"

// RestaurantRequest creates a restaurant.
type RestaurantRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Address      string `json:"address"`
	CuisineType  string `json:"cuisineType"`
	ImageURL     string `json:"imageUrl"`
	DeliveryTime int    `json:"deliveryTime"`
}

// RestaurantResponse is a restaurant listing.
type RestaurantResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	Address      string  `json:"address"`
	CuisineType  string  `json:"cuisineType,omitempty"`
	ImageURL     string  `json:"imageUrl,omitempty"`
	AvgRating    float64 `json:"avgRating"`
	DeliveryTime int     `json:"deliveryTime"`
	Active       bool    `json:"isActive"`
}

// MenuItemRequest creates or replaces a menu item.
type MenuItemRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Veg         bool            `json:"isVeg"`
	Available   *bool           `json:"isAvailable"`
	ImageURL    string          `json:"imageUrl"`
	Category    string          `json:"category"`
}

// MenuItemResponse is a dish on a menu.
type MenuItemResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Veg         bool            `json:"isVeg"`
	Available   bool            `json:"isAvailable"`
	ImageURL    string          `json:"imageUrl,omitempty"`
	Category    string          `json:"category,omitempty"`
}

// RestaurantDetailsResponse is a restaurant with its menu.
type RestaurantDetailsResponse struct {
	Restaurant RestaurantResponse `json:"restaurant"`
	Menu       []MenuItemResponse `json:"menu"`
}

// DashboardEntryResponse is one owned restaurant with its menu and orders.
type DashboardEntryResponse struct {
	Restaurant RestaurantResponse `json:"restaurant"`
	Menu       []MenuItemResponse `json:"menu"`
	Orders     []OrderResponse    `json:"orders"`
}

// AdminStatsResponse summarizes the platform.
type AdminStatsResponse struct {
	TotalRestaurants  int `json:"totalRestaurants"`
	ActiveRestaurants int `json:"activeRestaurants"`
	TotalOrders       int `json:"totalOrders"`
}
