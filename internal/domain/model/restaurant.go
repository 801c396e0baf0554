package model

import "github.com/shopspring/decimal"

// Restaurant is a browsable restaurant listing.
type Restaurant struct {
	ID           int64
	Name         string
	Description  string
	Address      string
	CuisineType  string
	ImageURL     string
	AvgRating    float64
	DeliveryTime int
	Active       bool
}

// MenuItem is a dish offered by a restaurant.
type MenuItem struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	Veg         bool
	Available   bool
	ImageURL    string
	Category    string
}
