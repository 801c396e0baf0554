package test

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/foodfront/internal/domain/errors"
	"github.com/polkiloo/foodfront/internal/domain/model"
)

// BackendStub implements backend.Client. Cart operations default to an in-memory
// server-side cart; every other operation delegates to its Fn override.
type BackendStub struct {
	mu        sync.Mutex
	calls     map[string]int
	Cart      *model.Cart
	ItemPrice decimal.Decimal

	LoginFn    func(context.Context, model.Credentials) (*model.AuthResult, error)
	RegisterFn func(context.Context, model.Registration) (*model.AuthResult, error)

	GetCartFn        func(context.Context) (*model.Cart, error)
	AddToCartFn      func(context.Context, int64, int) (*model.Cart, error)
	UpdateCartItemFn func(context.Context, int64, int) (*model.Cart, error)
	RemoveCartItemFn func(context.Context, int64) (*model.Cart, error)
	ClearCartFn      func(context.Context) error

	PlaceOrderFn           func(context.Context, model.Checkout) (*model.Order, error)
	MyOrdersFn             func(context.Context) ([]model.Order, error)
	RestaurantOrdersFn     func(context.Context, int64) ([]model.Order, error)
	AvailableDeliveriesFn  func(context.Context) ([]model.Order, error)
	AssignedDeliveriesFn   func(context.Context) ([]model.Order, error)
	UpdateOrderStatusFn    func(context.Context, int64, model.OrderStatus) error
	UpdateDeliveryStatusFn func(context.Context, int64, model.OrderStatus) error

	RestaurantsFn       func(context.Context) ([]model.Restaurant, error)
	SearchRestaurantsFn func(context.Context, string) ([]model.Restaurant, error)
	RestaurantFn        func(context.Context, int64) (*model.Restaurant, error)
	MyRestaurantsFn     func(context.Context) ([]model.Restaurant, error)
	CreateRestaurantFn  func(context.Context, model.Restaurant) (*model.Restaurant, error)
	MenuFn              func(context.Context, int64) ([]model.MenuItem, error)
	AddMenuItemFn       func(context.Context, int64, model.MenuItem) (*model.MenuItem, error)
	UpdateMenuItemFn    func(context.Context, model.MenuItem) (*model.MenuItem, error)
	DeleteMenuItemFn    func(context.Context, int64) error

	ProfileFn        func(context.Context) (*model.Profile, error)
	UpdateProfileFn  func(context.Context, model.Profile) (*model.Profile, error)
	ChangePasswordFn func(context.Context, model.PasswordChange) error
	AddressesFn      func(context.Context) ([]model.Address, error)
	AddAddressFn     func(context.Context, model.Address) (*model.Address, error)
	UpdateAddressFn  func(context.Context, model.Address) (*model.Address, error)
	DeleteAddressFn  func(context.Context, int64) error
}

// Calls returns how many times the named operation was invoked.
func (s *BackendStub) Calls(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[name]
}

// TotalCalls returns the number of recorded invocations of any operation.
func (s *BackendStub) TotalCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int
	for _, c := range s.calls {
		n += c
	}
	return n
}

func (s *BackendStub) record(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.calls == nil {
		s.calls = make(map[string]int)
	}
	s.calls[name]++
}

func (s *BackendStub) Login(ctx context.Context, creds model.Credentials) (*model.AuthResult, error) {
	s.record("Login")
	if s.LoginFn != nil {
		return s.LoginFn(ctx, creds)
	}
	return &model.AuthResult{Token: "token-" + creds.Email, Email: creds.Email, Name: "Test User", Role: model.RoleCustomer}, nil
}

func (s *BackendStub) Register(ctx context.Context, reg model.Registration) (*model.AuthResult, error) {
	s.record("Register")
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, reg)
	}
	role := reg.Role
	if role == "" {
		role = model.RoleCustomer
	}
	return &model.AuthResult{Token: "token-" + reg.Email, Email: reg.Email, Name: reg.Name, Role: role}, nil
}

func (s *BackendStub) GetCart(ctx context.Context) (*model.Cart, error) {
	s.record("GetCart")
	if s.GetCartFn != nil {
		return s.GetCartFn(ctx)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cloneCartLocked(), nil
}

func (s *BackendStub) AddToCart(ctx context.Context, menuItemID int64, quantity int) (*model.Cart, error) {
	s.record("AddToCart")
	if s.AddToCartFn != nil {
		return s.AddToCartFn(ctx, menuItemID, quantity)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.ensureCartLocked()
	price := s.ItemPrice
	if price.IsZero() {
		price = decimal.NewFromInt(100)
	}
	var next int64 = 1
	for _, line := range cart.Items {
		if line.ID >= next {
			next = line.ID + 1
		}
	}
	cart.Items = append(cart.Items, model.CartLine{
		ID:       next,
		MenuItem: model.MenuItemSnapshot{ID: menuItemID, Name: "item", Price: price},
		Quantity: quantity,
	})
	s.repriceLocked()
	return s.cloneCartLocked(), nil
}

func (s *BackendStub) UpdateCartItem(ctx context.Context, lineID int64, quantity int) (*model.Cart, error) {
	s.record("UpdateCartItem")
	if s.UpdateCartItemFn != nil {
		return s.UpdateCartItemFn(ctx, lineID, quantity)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.ensureCartLocked()
	for i := range cart.Items {
		if cart.Items[i].ID == lineID {
			cart.Items[i].Quantity = quantity
			s.repriceLocked()
			return s.cloneCartLocked(), nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *BackendStub) RemoveCartItem(ctx context.Context, lineID int64) (*model.Cart, error) {
	s.record("RemoveCartItem")
	if s.RemoveCartItemFn != nil {
		return s.RemoveCartItemFn(ctx, lineID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.ensureCartLocked()
	kept := cart.Items[:0]
	for _, line := range cart.Items {
		if line.ID != lineID {
			kept = append(kept, line)
		}
	}
	cart.Items = kept
	s.repriceLocked()
	return s.cloneCartLocked(), nil
}

func (s *BackendStub) ClearCart(ctx context.Context) error {
	s.record("ClearCart")
	if s.ClearCartFn != nil {
		return s.ClearCartFn(ctx)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.ensureCartLocked()
	cart.Items = nil
	cart.TotalAmount = decimal.Zero
	return nil
}

func (s *BackendStub) ensureCartLocked() *model.Cart {
	if s.Cart == nil {
		s.Cart = &model.Cart{ID: 1}
	}
	return s.Cart
}

func (s *BackendStub) repriceLocked() {
	total := decimal.Zero
	for i := range s.Cart.Items {
		line := &s.Cart.Items[i]
		line.Price = line.MenuItem.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		total = total.Add(line.Price)
	}
	s.Cart.TotalAmount = total
}

func (s *BackendStub) cloneCartLocked() *model.Cart {
	cart := s.ensureCartLocked()
	out := *cart
	out.Items = append([]model.CartLine(nil), cart.Items...)
	return &out
}

func (s *BackendStub) PlaceOrder(ctx context.Context, checkout model.Checkout) (*model.Order, error) {
	s.record("PlaceOrder")
	if s.PlaceOrderFn != nil {
		return s.PlaceOrderFn(ctx, checkout)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.ensureCartLocked()
	order := &model.Order{ID: 1, Status: model.OrderStatusPlaced, PaymentMethod: checkout.PaymentMethod, TotalAmount: cart.TotalAmount}
	order.Address.ID = checkout.AddressID
	cart.Items = nil
	cart.TotalAmount = decimal.Zero
	return order, nil
}

func (s *BackendStub) MyOrders(ctx context.Context) ([]model.Order, error) {
	s.record("MyOrders")
	if s.MyOrdersFn != nil {
		return s.MyOrdersFn(ctx)
	}
	return nil, nil
}

func (s *BackendStub) RestaurantOrders(ctx context.Context, restaurantID int64) ([]model.Order, error) {
	s.record("RestaurantOrders")
	if s.RestaurantOrdersFn != nil {
		return s.RestaurantOrdersFn(ctx, restaurantID)
	}
	return nil, nil
}

func (s *BackendStub) AvailableDeliveries(ctx context.Context) ([]model.Order, error) {
	s.record("AvailableDeliveries")
	if s.AvailableDeliveriesFn != nil {
		return s.AvailableDeliveriesFn(ctx)
	}
	return nil, nil
}

func (s *BackendStub) AssignedDeliveries(ctx context.Context) ([]model.Order, error) {
	s.record("AssignedDeliveries")
	if s.AssignedDeliveriesFn != nil {
		return s.AssignedDeliveriesFn(ctx)
	}
	return nil, nil
}

func (s *BackendStub) UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	s.record("UpdateOrderStatus")
	if s.UpdateOrderStatusFn != nil {
		return s.UpdateOrderStatusFn(ctx, orderID, status)
	}
	return nil
}

func (s *BackendStub) UpdateDeliveryStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	s.record("UpdateDeliveryStatus")
	if s.UpdateDeliveryStatusFn != nil {
		return s.UpdateDeliveryStatusFn(ctx, orderID, status)
	}
	return nil
}

func (s *BackendStub) Restaurants(ctx context.Context) ([]model.Restaurant, error) {
	s.record("Restaurants")
	if s.RestaurantsFn != nil {
		return s.RestaurantsFn(ctx)
	}
	return nil, nil
}

func (s *BackendStub) SearchRestaurants(ctx context.Context, query string) ([]model.Restaurant, error) {
	s.record("SearchRestaurants")
	if s.SearchRestaurantsFn != nil {
		return s.SearchRestaurantsFn(ctx, query)
	}
	return nil, nil
}

func (s *BackendStub) Restaurant(ctx context.Context, id int64) (*model.Restaurant, error) {
	s.record("Restaurant")
	if s.RestaurantFn != nil {
		return s.RestaurantFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *BackendStub) MyRestaurants(ctx context.Context) ([]model.Restaurant, error) {
	s.record("MyRestaurants")
	if s.MyRestaurantsFn != nil {
		return s.MyRestaurantsFn(ctx)
	}
	return nil, nil
}

func (s *BackendStub) CreateRestaurant(ctx context.Context, restaurant model.Restaurant) (*model.Restaurant, error) {
	s.record("CreateRestaurant")
	if s.CreateRestaurantFn != nil {
		return s.CreateRestaurantFn(ctx, restaurant)
	}
	restaurant.ID = 1
	return &restaurant, nil
}

func (s *BackendStub) Menu(ctx context.Context, restaurantID int64) ([]model.MenuItem, error) {
	s.record("Menu")
	if s.MenuFn != nil {
		return s.MenuFn(ctx, restaurantID)
	}
	return nil, nil
}

func (s *BackendStub) AddMenuItem(ctx context.Context, restaurantID int64, item model.MenuItem) (*model.MenuItem, error) {
	s.record("AddMenuItem")
	if s.AddMenuItemFn != nil {
		return s.AddMenuItemFn(ctx, restaurantID, item)
	}
	item.ID = 1
	return &item, nil
}

func (s *BackendStub) UpdateMenuItem(ctx context.Context, item model.MenuItem) (*model.MenuItem, error) {
	s.record("UpdateMenuItem")
	if s.UpdateMenuItemFn != nil {
		return s.UpdateMenuItemFn(ctx, item)
	}
	return &item, nil
}

func (s *BackendStub) DeleteMenuItem(ctx context.Context, id int64) error {
	s.record("DeleteMenuItem")
	if s.DeleteMenuItemFn != nil {
		return s.DeleteMenuItemFn(ctx, id)
	}
	return nil
}

func (s *BackendStub) Profile(ctx context.Context) (*model.Profile, error) {
	s.record("Profile")
	if s.ProfileFn != nil {
		return s.ProfileFn(ctx)
	}
	return &model.Profile{ID: 1, Name: "Test User", Email: "user@example.com", Role: model.RoleCustomer}, nil
}

func (s *BackendStub) UpdateProfile(ctx context.Context, profile model.Profile) (*model.Profile, error) {
	s.record("UpdateProfile")
	if s.UpdateProfileFn != nil {
		return s.UpdateProfileFn(ctx, profile)
	}
	return &profile, nil
}

func (s *BackendStub) ChangePassword(ctx context.Context, change model.PasswordChange) error {
	s.record("ChangePassword")
	if s.ChangePasswordFn != nil {
		return s.ChangePasswordFn(ctx, change)
	}
	return nil
}

func (s *BackendStub) Addresses(ctx context.Context) ([]model.Address, error) {
	s.record("Addresses")
	if s.AddressesFn != nil {
		return s.AddressesFn(ctx)
	}
	return nil, nil
}

func (s *BackendStub) AddAddress(ctx context.Context, address model.Address) (*model.Address, error) {
	s.record("AddAddress")
	if s.AddAddressFn != nil {
		return s.AddAddressFn(ctx, address)
	}
	address.ID = 1
	return &address, nil
}

func (s *BackendStub) UpdateAddress(ctx context.Context, address model.Address) (*model.Address, error) {
	s.record("UpdateAddress")
	if s.UpdateAddressFn != nil {
		return s.UpdateAddressFn(ctx, address)
	}
	return &address, nil
}

func (s *BackendStub) DeleteAddress(ctx context.Context, id int64) error {
	s.record("DeleteAddress")
	if s.DeleteAddressFn != nil {
		return s.DeleteAddressFn(ctx, id)
	}
	return nil
}
