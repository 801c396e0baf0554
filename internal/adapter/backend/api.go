package backend

import (
	"context"

	"github.com/polkiloo/foodfront/internal/domain/model"
)

// AuthAPI exchanges credentials for a bearer token.
type AuthAPI interface {
	Login(ctx context.Context, creds model.Credentials) (*model.AuthResult, error)
	Register(ctx context.Context, reg model.Registration) (*model.AuthResult, error)
}

// CartAPI reads and mutates the server-side cart of the token owner.
type CartAPI interface {
	GetCart(ctx context.Context) (*model.Cart, error)
	AddToCart(ctx context.Context, menuItemID int64, quantity int) (*model.Cart, error)
	UpdateCartItem(ctx context.Context, lineID int64, quantity int) (*model.Cart, error)
	RemoveCartItem(ctx context.Context, lineID int64) (*model.Cart, error)
	ClearCart(ctx context.Context) error
}

// OrderAPI covers checkout, order listings and status updates.
type OrderAPI interface {
	PlaceOrder(ctx context.Context, checkout model.Checkout) (*model.Order, error)
	MyOrders(ctx context.Context) ([]model.Order, error)
	RestaurantOrders(ctx context.Context, restaurantID int64) ([]model.Order, error)
	AvailableDeliveries(ctx context.Context) ([]model.Order, error)
	AssignedDeliveries(ctx context.Context) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
	UpdateDeliveryStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
}

// CatalogAPI covers restaurants and menus.
type CatalogAPI interface {
	Restaurants(ctx context.Context) ([]model.Restaurant, error)
	SearchRestaurants(ctx context.Context, query string) ([]model.Restaurant, error)
	Restaurant(ctx context.Context, id int64) (*model.Restaurant, error)
	MyRestaurants(ctx context.Context) ([]model.Restaurant, error)
	CreateRestaurant(ctx context.Context, restaurant model.Restaurant) (*model.Restaurant, error)
	Menu(ctx context.Context, restaurantID int64) ([]model.MenuItem, error)
	AddMenuItem(ctx context.Context, restaurantID int64, item model.MenuItem) (*model.MenuItem, error)
	UpdateMenuItem(ctx context.Context, item model.MenuItem) (*model.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id int64) error
}

// AccountAPI covers the profile and saved addresses.
type AccountAPI interface {
	Profile(ctx context.Context) (*model.Profile, error)
	UpdateProfile(ctx context.Context, profile model.Profile) (*model.Profile, error)
	ChangePassword(ctx context.Context, change model.PasswordChange) error
	Addresses(ctx context.Context) ([]model.Address, error)
	AddAddress(ctx context.Context, address model.Address) (*model.Address, error)
	UpdateAddress(ctx context.Context, address model.Address) (*model.Address, error)
	DeleteAddress(ctx context.Context, id int64) error
}

// Client exposes every backend operation.
type Client interface {
	AuthAPI
	CartAPI
	OrderAPI
	CatalogAPI
	AccountAPI
}

var _ Client = (*HTTPClient)(nil)
