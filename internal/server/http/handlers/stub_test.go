package handlers

import (
	"context"

	"github.com/polkiloo/foodfront/internal/domain/model"
	"github.com/polkiloo/foodfront/internal/store"
	"github.com/polkiloo/foodfront/internal/usecase"
)

// facadeStub answers every call with zero values unless the matching func is set.
type facadeStub struct {
	LoginFn         func(context.Context, model.Credentials) (*model.Session, string, error)
	RegisterFn      func(context.Context, model.Registration) (*model.Session, string, error)
	ResolveFn       func(context.Context, string) (*model.Session, error)
	LogoutFn        func(context.Context, *model.Session) error
	NotificationsFn func(context.Context, *model.Session) []store.Notification

	CartFn     func(context.Context, *model.Session) (store.CartSnapshot, error)
	CountFn    func(context.Context, *model.Session) int
	RefreshFn  func(context.Context, *model.Session) (store.CartSnapshot, error)
	AddFn      func(context.Context, *model.Session, int64, int) (store.CartSnapshot, error)
	UpdateFn   func(context.Context, *model.Session, int64, int) (store.CartSnapshot, error)
	RemoveFn   func(context.Context, *model.Session, int64) (store.CartSnapshot, error)
	ClearFn    func(context.Context, *model.Session) (store.CartSnapshot, error)
	CheckoutFn func(context.Context, *model.Session, model.Checkout) (*model.Order, error)

	OrdersFn  func(context.Context, *model.Session, bool) ([]store.OrderView, error)
	AdvanceFn func(context.Context, *model.Session, int64) (store.OrderView, error)
	CancelFn  func(context.Context, *model.Session, int64) (store.OrderView, error)

	RestaurantsFn      func(context.Context, *model.Session, string) ([]model.Restaurant, error)
	RestaurantFn       func(context.Context, *model.Session, int64) (*usecase.RestaurantDetails, error)
	DashboardFn        func(context.Context, *model.Session) ([]usecase.RestaurantDashboard, error)
	CreateRestaurantFn func(context.Context, *model.Session, model.Restaurant) (*model.Restaurant, error)
	AddMenuItemFn      func(context.Context, *model.Session, int64, model.MenuItem) (*model.MenuItem, error)
	UpdateMenuItemFn   func(context.Context, *model.Session, model.MenuItem) (*model.MenuItem, error)
	DeleteMenuItemFn   func(context.Context, *model.Session, int64) error
	AdminStatsFn       func(context.Context, *model.Session) (usecase.AdminStats, error)

	ProfileFn       func(context.Context, *model.Session) (*model.Profile, error)
	UpdateProfileFn func(context.Context, *model.Session, model.Profile) (*model.Profile, error)
	PasswordFn      func(context.Context, *model.Session, model.PasswordChange) error
	AddressesFn     func(context.Context, *model.Session) ([]model.Address, error)
	AddAddressFn    func(context.Context, *model.Session, model.Address) (*model.Address, error)
	UpdateAddressFn func(context.Context, *model.Session, model.Address) (*model.Address, error)
	DeleteAddressFn func(context.Context, *model.Session, int64) error
}

var _ StorefrontFacade = (*facadeStub)(nil)

func (f *facadeStub) Login(ctx context.Context, creds model.Credentials) (*model.Session, string, error) {
	if f.LoginFn != nil {
		return f.LoginFn(ctx, creds)
	}
	return &model.Session{Email: creds.Email, Role: model.RoleCustomer}, "cookie", nil
}

func (f *facadeStub) Register(ctx context.Context, reg model.Registration) (*model.Session, string, error) {
	if f.RegisterFn != nil {
		return f.RegisterFn(ctx, reg)
	}
	return &model.Session{Email: reg.Email, Name: reg.Name, Role: model.RoleCustomer}, "cookie", nil
}

func (f *facadeStub) Resolve(ctx context.Context, cookie string) (*model.Session, error) {
	if f.ResolveFn != nil {
		return f.ResolveFn(ctx, cookie)
	}
	return &model.Session{Role: model.RoleCustomer}, nil
}

func (f *facadeStub) Logout(ctx context.Context, s *model.Session) error {
	if f.LogoutFn != nil {
		return f.LogoutFn(ctx, s)
	}
	return nil
}

func (f *facadeStub) CookieTTL() int { return 3600 }

func (f *facadeStub) Notifications(ctx context.Context, s *model.Session) []store.Notification {
	if f.NotificationsFn != nil {
		return f.NotificationsFn(ctx, s)
	}
	return nil
}

func (f *facadeStub) Cart(ctx context.Context, s *model.Session) (store.CartSnapshot, error) {
	if f.CartFn != nil {
		return f.CartFn(ctx, s)
	}
	return store.CartSnapshot{State: store.CartEmpty}, nil
}

func (f *facadeStub) CartCount(ctx context.Context, s *model.Session) int {
	if f.CountFn != nil {
		return f.CountFn(ctx, s)
	}
	return 0
}

func (f *facadeStub) RefreshCart(ctx context.Context, s *model.Session) (store.CartSnapshot, error) {
	if f.RefreshFn != nil {
		return f.RefreshFn(ctx, s)
	}
	return store.CartSnapshot{State: store.CartEmpty}, nil
}

func (f *facadeStub) AddToCart(ctx context.Context, s *model.Session, menuItemID int64, quantity int) (store.CartSnapshot, error) {
	if f.AddFn != nil {
		return f.AddFn(ctx, s, menuItemID, quantity)
	}
	return store.CartSnapshot{}, nil
}

func (f *facadeStub) UpdateCartItem(ctx context.Context, s *model.Session, lineID int64, quantity int) (store.CartSnapshot, error) {
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, s, lineID, quantity)
	}
	return store.CartSnapshot{}, nil
}

func (f *facadeStub) RemoveCartItem(ctx context.Context, s *model.Session, lineID int64) (store.CartSnapshot, error) {
	if f.RemoveFn != nil {
		return f.RemoveFn(ctx, s, lineID)
	}
	return store.CartSnapshot{}, nil
}

func (f *facadeStub) ClearCart(ctx context.Context, s *model.Session) (store.CartSnapshot, error) {
	if f.ClearFn != nil {
		return f.ClearFn(ctx, s)
	}
	return store.CartSnapshot{}, nil
}

func (f *facadeStub) Checkout(ctx context.Context, s *model.Session, checkout model.Checkout) (*model.Order, error) {
	if f.CheckoutFn != nil {
		return f.CheckoutFn(ctx, s, checkout)
	}
	return &model.Order{ID: 1, Status: model.OrderStatusPlaced}, nil
}

func (f *facadeStub) Orders(ctx context.Context, s *model.Session, refresh bool) ([]store.OrderView, error) {
	if f.OrdersFn != nil {
		return f.OrdersFn(ctx, s, refresh)
	}
	return nil, nil
}

func (f *facadeStub) AdvanceOrder(ctx context.Context, s *model.Session, orderID int64) (store.OrderView, error) {
	if f.AdvanceFn != nil {
		return f.AdvanceFn(ctx, s, orderID)
	}
	return store.OrderView{}, nil
}

func (f *facadeStub) CancelOrder(ctx context.Context, s *model.Session, orderID int64) (store.OrderView, error) {
	if f.CancelFn != nil {
		return f.CancelFn(ctx, s, orderID)
	}
	return store.OrderView{}, nil
}

func (f *facadeStub) Restaurants(ctx context.Context, s *model.Session, query string) ([]model.Restaurant, error) {
	if f.RestaurantsFn != nil {
		return f.RestaurantsFn(ctx, s, query)
	}
	return nil, nil
}

func (f *facadeStub) Restaurant(ctx context.Context, s *model.Session, id int64) (*usecase.RestaurantDetails, error) {
	if f.RestaurantFn != nil {
		return f.RestaurantFn(ctx, s, id)
	}
	return &usecase.RestaurantDetails{Restaurant: model.Restaurant{ID: id}}, nil
}

func (f *facadeStub) OwnerDashboard(ctx context.Context, s *model.Session) ([]usecase.RestaurantDashboard, error) {
	if f.DashboardFn != nil {
		return f.DashboardFn(ctx, s)
	}
	return nil, nil
}

func (f *facadeStub) CreateRestaurant(ctx context.Context, s *model.Session, r model.Restaurant) (*model.Restaurant, error) {
	if f.CreateRestaurantFn != nil {
		return f.CreateRestaurantFn(ctx, s, r)
	}
	return &r, nil
}

func (f *facadeStub) AddMenuItem(ctx context.Context, s *model.Session, restaurantID int64, item model.MenuItem) (*model.MenuItem, error) {
	if f.AddMenuItemFn != nil {
		return f.AddMenuItemFn(ctx, s, restaurantID, item)
	}
	return &item, nil
}

func (f *facadeStub) UpdateMenuItem(ctx context.Context, s *model.Session, item model.MenuItem) (*model.MenuItem, error) {
	if f.UpdateMenuItemFn != nil {
		return f.UpdateMenuItemFn(ctx, s, item)
	}
	return &item, nil
}

func (f *facadeStub) DeleteMenuItem(ctx context.Context, s *model.Session, id int64) error {
	if f.DeleteMenuItemFn != nil {
		return f.DeleteMenuItemFn(ctx, s, id)
	}
	return nil
}

func (f *facadeStub) AdminStats(ctx context.Context, s *model.Session) (usecase.AdminStats, error) {
	if f.AdminStatsFn != nil {
		return f.AdminStatsFn(ctx, s)
	}
	return usecase.AdminStats{}, nil
}

func (f *facadeStub) Profile(ctx context.Context, s *model.Session) (*model.Profile, error) {
	if f.ProfileFn != nil {
		return f.ProfileFn(ctx, s)
	}
	return &model.Profile{}, nil
}

func (f *facadeStub) UpdateProfile(ctx context.Context, s *model.Session, p model.Profile) (*model.Profile, error) {
	if f.UpdateProfileFn != nil {
		return f.UpdateProfileFn(ctx, s, p)
	}
	return &p, nil
}

func (f *facadeStub) ChangePassword(ctx context.Context, s *model.Session, change model.PasswordChange) error {
	if f.PasswordFn != nil {
		return f.PasswordFn(ctx, s, change)
	}
	return nil
}

func (f *facadeStub) Addresses(ctx context.Context, s *model.Session) ([]model.Address, error) {
	if f.AddressesFn != nil {
		return f.AddressesFn(ctx, s)
	}
	return nil, nil
}

func (f *facadeStub) AddAddress(ctx context.Context, s *model.Session, a model.Address) (*model.Address, error) {
	if f.AddAddressFn != nil {
		return f.AddAddressFn(ctx, s, a)
	}
	return &a, nil
}

func (f *facadeStub) UpdateAddress(ctx context.Context, s *model.Session, a model.Address) (*model.Address, error) {
	if f.UpdateAddressFn != nil {
		return f.UpdateAddressFn(ctx, s, a)
	}
	return &a, nil
}

func (f *facadeStub) DeleteAddress(ctx context.Context, s *model.Session, id int64) error {
	if f.DeleteAddressFn != nil {
		return f.DeleteAddressFn(ctx, s, id)
	}
	return nil
}
