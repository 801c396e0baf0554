package handlers

import (
	"context"

	"github.com/polkiloo/foodfront/internal/domain/model"
	"github.com/polkiloo/foodfront/internal/store"
	"github.com/polkiloo/foodfront/internal/usecase"
)

// SessionFacade describes session capabilities required by handlers.
type SessionFacade interface {
	Login(ctx context.Context, creds model.Credentials) (*model.Session, string, error)
	Register(ctx context.Context, reg model.Registration) (*model.Session, string, error)
	Resolve(ctx context.Context, cookie string) (*model.Session, error)
	Logout(ctx context.Context, s *model.Session) error
	CookieTTL() int
	Notifications(ctx context.Context, s *model.Session) []store.Notification
}

// CartFacade exposes the session cart.
type CartFacade interface {
	Cart(ctx context.Context, s *model.Session) (store.CartSnapshot, error)
	CartCount(ctx context.Context, s *model.Session) int
	RefreshCart(ctx context.Context, s *model.Session) (store.CartSnapshot, error)
	AddToCart(ctx context.Context, s *model.Session, menuItemID int64, quantity int) (store.CartSnapshot, error)
	UpdateCartItem(ctx context.Context, s *model.Session, lineID int64, quantity int) (store.CartSnapshot, error)
	RemoveCartItem(ctx context.Context, s *model.Session, lineID int64) (store.CartSnapshot, error)
	ClearCart(ctx context.Context, s *model.Session) (store.CartSnapshot, error)
	Checkout(ctx context.Context, s *model.Session, checkout model.Checkout) (*model.Order, error)
}

// OrderFacade exposes the viewer order board.
type OrderFacade interface {
	Orders(ctx context.Context, s *model.Session, refresh bool) ([]store.OrderView, error)
	AdvanceOrder(ctx context.Context, s *model.Session, orderID int64) (store.OrderView, error)
	CancelOrder(ctx context.Context, s *model.Session, orderID int64) (store.OrderView, error)
}

// CatalogFacade covers browsing, owner and admin operations.
type CatalogFacade interface {
	Restaurants(ctx context.Context, s *model.Session, query string) ([]model.Restaurant, error)
	Restaurant(ctx context.Context, s *model.Session, id int64) (*usecase.RestaurantDetails, error)
	OwnerDashboard(ctx context.Context, s *model.Session) ([]usecase.RestaurantDashboard, error)
	CreateRestaurant(ctx context.Context, s *model.Session, r model.Restaurant) (*model.Restaurant, error)
	AddMenuItem(ctx context.Context, s *model.Session, restaurantID int64, item model.MenuItem) (*model.MenuItem, error)
	UpdateMenuItem(ctx context.Context, s *model.Session, item model.MenuItem) (*model.MenuItem, error)
	DeleteMenuItem(ctx context.Context, s *model.Session, id int64) error
	AdminStats(ctx context.Context, s *model.Session) (usecase.AdminStats, error)
}

// AccountFacade covers the profile and addresses.
type AccountFacade interface {
	Profile(ctx context.Context, s *model.Session) (*model.Profile, error)
	UpdateProfile(ctx context.Context, s *model.Session, p model.Profile) (*model.Profile, error)
	ChangePassword(ctx context.Context, s *model.Session, change model.PasswordChange) error
	Addresses(ctx context.Context, s *model.Session) ([]model.Address, error)
	AddAddress(ctx context.Context, s *model.Session, a model.Address) (*model.Address, error)
	UpdateAddress(ctx context.Context, s *model.Session, a model.Address) (*model.Address, error)
	DeleteAddress(ctx context.Context, s *model.Session, id int64) error
}

// StorefrontFacade aggregates the full set of operations used across handlers.
type StorefrontFacade interface {
	SessionFacade
	CartFacade
	OrderFacade
	CatalogFacade
	AccountFacade
}
