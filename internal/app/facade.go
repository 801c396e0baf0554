package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/polkiloo/foodfront/internal/adapter/backend"
	domainErrors "github.com/polkiloo/foodfront/internal/domain/errors"
	"github.com/polkiloo/foodfront/internal/domain/model"
	"github.com/polkiloo/foodfront/internal/store"
	"github.com/polkiloo/foodfront/internal/usecase"
)

// StorefrontFacade is the single entry point used by HTTP handlers and the session reaper.
// Every call made on behalf of a session carries that session's bearer token.
type StorefrontFacade struct {
	auth       *usecase.AuthUseCase
	catalog    *usecase.CatalogUseCase
	dashboard  *usecase.DashboardUseCase
	account    *usecase.AccountUseCase
	checkout   *usecase.CheckoutUseCase
	workspaces *Workspaces
	logger     *slog.Logger
}

// NewStorefrontFacade constructs StorefrontFacade.
func NewStorefrontFacade(
	auth *usecase.AuthUseCase,
	catalog *usecase.CatalogUseCase,
	dashboard *usecase.DashboardUseCase,
	account *usecase.AccountUseCase,
	checkout *usecase.CheckoutUseCase,
	workspaces *Workspaces,
	logger *slog.Logger,
) *StorefrontFacade {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &StorefrontFacade{
		auth:       auth,
		catalog:    catalog,
		dashboard:  dashboard,
		account:    account,
		checkout:   checkout,
		workspaces: workspaces,
		logger:     logger,
	}
}

func withSession(ctx context.Context, s *model.Session) context.Context {
	return backend.WithToken(ctx, s.Token)
}

func (f *StorefrontFacade) workspace(ctx context.Context, s *model.Session) (context.Context, *Workspace) {
	ctx = withSession(ctx, s)
	return ctx, f.workspaces.Acquire(ctx, s)
}

// report pushes the outcome of a one-shot action to the session toasts.
func (f *StorefrontFacade) report(ctx context.Context, s *model.Session, err error, success string) error {
	_, ws := f.workspace(ctx, s)
	switch {
	case err != nil:
		ws.Notifications.Push(store.LevelError, store.Describe(err))
	case success != "":
		ws.Notifications.Push(store.LevelSuccess, success)
	}
	return err
}

// --- session ---

func (f *StorefrontFacade) Login(ctx context.Context, creds model.Credentials) (*model.Session, string, error) {
	session, cookie, err := f.auth.Login(ctx, creds)
	if err != nil {
		return nil, "", err
	}
	f.workspace(ctx, session)
	return session, cookie, nil
}

func (f *StorefrontFacade) Register(ctx context.Context, reg model.Registration) (*model.Session, string, error) {
	session, cookie, err := f.auth.Register(ctx, reg)
	if err != nil {
		return nil, "", err
	}
	_ = f.report(ctx, session, nil, "Registration successful!")
	return session, cookie, nil
}

func (f *StorefrontFacade) Resolve(ctx context.Context, cookie string) (*model.Session, error) {
	return f.auth.Resolve(ctx, cookie)
}

// Logout forgets the session first, then empties the cart and retires the workspace.
func (f *StorefrontFacade) Logout(ctx context.Context, s *model.Session) error {
	err := f.auth.Logout(ctx, s.ID)
	f.workspaces.Revoke(ctx, s)
	return err
}

func (f *StorefrontFacade) CookieTTL() int {
	return int(f.auth.CookieTTL().Seconds())
}

// ExpireSessions removes expired sessions from storage.
func (f *StorefrontFacade) ExpireSessions(ctx context.Context, limit int) ([]uuid.UUID, error) {
	return f.auth.Expire(ctx, limit)
}

// CloseWorkspace tears down the in-memory state of a session.
func (f *StorefrontFacade) CloseWorkspace(id uuid.UUID) {
	f.workspaces.Drop(context.Background(), id)
}

// Shutdown drops every workspace.
func (f *StorefrontFacade) Shutdown(ctx context.Context) {
	f.workspaces.CloseAll(ctx)
}

// Notifications drains the toast queue of the session.
func (f *StorefrontFacade) Notifications(ctx context.Context, s *model.Session) []store.Notification {
	_, ws := f.workspace(ctx, s)
	return ws.Notifications.Drain()
}

// --- cart ---

// Cart returns the current cart, loading it when nothing has been fetched yet.
func (f *StorefrontFacade) Cart(ctx context.Context, s *model.Session) (store.CartSnapshot, error) {
	ctx, ws := f.workspace(ctx, s)
	if ws.Cart.State() == store.CartUninitialized {
		if err := ws.Cart.Refresh(ctx); err != nil {
			return ws.Cart.Snapshot(), err
		}
	}
	return ws.Cart.Snapshot(), nil
}

func (f *StorefrontFacade) CartCount(ctx context.Context, s *model.Session) int {
	_, ws := f.workspace(ctx, s)
	return ws.CartBadge()
}

func (f *StorefrontFacade) RefreshCart(ctx context.Context, s *model.Session) (store.CartSnapshot, error) {
	ctx, ws := f.workspace(ctx, s)
	err := ws.Cart.Refresh(ctx)
	return ws.Cart.Snapshot(), err
}

func (f *StorefrontFacade) AddToCart(ctx context.Context, s *model.Session, menuItemID int64, quantity int) (store.CartSnapshot, error) {
	ctx, ws := f.workspace(ctx, s)
	err := ws.Cart.Add(ctx, menuItemID, quantity)
	return ws.Cart.Snapshot(), err
}

func (f *StorefrontFacade) UpdateCartItem(ctx context.Context, s *model.Session, lineID int64, quantity int) (store.CartSnapshot, error) {
	ctx, ws := f.workspace(ctx, s)
	err := ws.Cart.UpdateQuantity(ctx, lineID, quantity)
	return ws.Cart.Snapshot(), err
}

func (f *StorefrontFacade) RemoveCartItem(ctx context.Context, s *model.Session, lineID int64) (store.CartSnapshot, error) {
	ctx, ws := f.workspace(ctx, s)
	err := ws.Cart.Remove(ctx, lineID)
	return ws.Cart.Snapshot(), err
}

func (f *StorefrontFacade) ClearCart(ctx context.Context, s *model.Session) (store.CartSnapshot, error) {
	ctx, ws := f.workspace(ctx, s)
	err := ws.Cart.Clear(ctx)
	return ws.Cart.Snapshot(), err
}

// Checkout places an order from the cart. The backend empties the cart, so it is
// fetched again afterwards.
func (f *StorefrontFacade) Checkout(ctx context.Context, s *model.Session, checkout model.Checkout) (*model.Order, error) {
	snap, err := f.Cart(ctx, s)
	if err != nil {
		return nil, err
	}
	if snap.ItemCount == 0 {
		return nil, f.report(ctx, s, fmt.Errorf("%w: cart is empty", domainErrors.ErrValidation), "")
	}

	ctx, ws := f.workspace(ctx, s)
	order, err := f.checkout.PlaceOrder(ctx, checkout)
	if err != nil {
		return nil, f.report(ctx, s, err, "")
	}
	ws.Notifications.Push(store.LevelSuccess, "Order placed successfully!")
	_ = ws.Cart.Refresh(ctx)
	if loaded, _ := ws.Orders.Loaded(); loaded {
		_ = ws.Orders.Refresh(ctx)
	}
	return order, nil
}

// --- orders ---

// Orders returns the viewer's order board. The board is fetched when it has never been
// loaded or when refresh is set. A failed refresh still returns the last good list.
func (f *StorefrontFacade) Orders(ctx context.Context, s *model.Session, refresh bool) ([]store.OrderView, error) {
	ctx, ws := f.workspace(ctx, s)
	loaded, _ := ws.Orders.Loaded()
	if refresh || !loaded {
		if err := ws.Orders.Refresh(ctx); err != nil && !loaded {
			return nil, err
		}
	}
	return ws.Orders.Views(), nil
}

func (f *StorefrontFacade) AdvanceOrder(ctx context.Context, s *model.Session, orderID int64) (store.OrderView, error) {
	return f.transition(ctx, s, orderID, (*store.OrderBoard).Advance)
}

func (f *StorefrontFacade) CancelOrder(ctx context.Context, s *model.Session, orderID int64) (store.OrderView, error) {
	return f.transition(ctx, s, orderID, (*store.OrderBoard).Cancel)
}

func (f *StorefrontFacade) transition(ctx context.Context, s *model.Session, orderID int64, apply func(*store.OrderBoard, context.Context, int64) error) (store.OrderView, error) {
	ctx, ws := f.workspace(ctx, s)
	if loaded, _ := ws.Orders.Loaded(); !loaded {
		if err := ws.Orders.Refresh(ctx); err != nil {
			return store.OrderView{}, err
		}
	}
	if err := apply(ws.Orders, ctx, orderID); err != nil {
		return store.OrderView{}, err
	}
	view, ok := ws.Orders.View(orderID)
	if !ok {
		return store.OrderView{}, fmt.Errorf("order %d: %w", orderID, domainErrors.ErrNotFound)
	}
	return view, nil
}

// --- catalog ---

// Restaurants is public. The session is optional.
func (f *StorefrontFacade) Restaurants(ctx context.Context, s *model.Session, query string) ([]model.Restaurant, error) {
	if s != nil {
		ctx = withSession(ctx, s)
	}
	return f.catalog.Browse(ctx, query)
}

func (f *StorefrontFacade) Restaurant(ctx context.Context, s *model.Session, id int64) (*usecase.RestaurantDetails, error) {
	if s != nil {
		ctx = withSession(ctx, s)
	}
	return f.catalog.Details(ctx, id)
}

// --- owner ---

func (f *StorefrontFacade) OwnerDashboard(ctx context.Context, s *model.Session) ([]usecase.RestaurantDashboard, error) {
	return f.dashboard.Owner(withSession(ctx, s))
}

func (f *StorefrontFacade) CreateRestaurant(ctx context.Context, s *model.Session, r model.Restaurant) (*model.Restaurant, error) {
	created, err := f.catalog.CreateRestaurant(withSession(ctx, s), r)
	return created, f.report(ctx, s, err, "Restaurant created successfully!")
}

func (f *StorefrontFacade) AddMenuItem(ctx context.Context, s *model.Session, restaurantID int64, item model.MenuItem) (*model.MenuItem, error) {
	created, err := f.catalog.AddMenuItem(withSession(ctx, s), restaurantID, item)
	return created, f.report(ctx, s, err, "Menu item added successfully!")
}

func (f *StorefrontFacade) UpdateMenuItem(ctx context.Context, s *model.Session, item model.MenuItem) (*model.MenuItem, error) {
	updated, err := f.catalog.UpdateMenuItem(withSession(ctx, s), item)
	return updated, f.report(ctx, s, err, "Menu item updated successfully!")
}

func (f *StorefrontFacade) DeleteMenuItem(ctx context.Context, s *model.Session, id int64) error {
	err := f.catalog.DeleteMenuItem(withSession(ctx, s), id)
	return f.report(ctx, s, err, "Menu item deleted successfully!")
}

// --- admin ---

// AdminStats counts restaurants from the live list and orders from the admin board.
func (f *StorefrontFacade) AdminStats(ctx context.Context, s *model.Session) (usecase.AdminStats, error) {
	views, err := f.Orders(ctx, s, false)
	if err != nil {
		return usecase.AdminStats{}, err
	}
	return f.dashboard.Admin(withSession(ctx, s), len(views))
}

// --- account ---

func (f *StorefrontFacade) Profile(ctx context.Context, s *model.Session) (*model.Profile, error) {
	return f.account.Profile(withSession(ctx, s))
}

func (f *StorefrontFacade) UpdateProfile(ctx context.Context, s *model.Session, p model.Profile) (*model.Profile, error) {
	updated, err := f.account.UpdateProfile(withSession(ctx, s), p)
	return updated, f.report(ctx, s, err, "Profile updated successfully!")
}

func (f *StorefrontFacade) ChangePassword(ctx context.Context, s *model.Session, change model.PasswordChange) error {
	err := f.account.ChangePassword(withSession(ctx, s), change)
	return f.report(ctx, s, err, "Password changed successfully!")
}

func (f *StorefrontFacade) Addresses(ctx context.Context, s *model.Session) ([]model.Address, error) {
	return f.account.Addresses(withSession(ctx, s))
}

func (f *StorefrontFacade) AddAddress(ctx context.Context, s *model.Session, a model.Address) (*model.Address, error) {
	created, err := f.account.AddAddress(withSession(ctx, s), a)
	return created, f.report(ctx, s, err, "Address added successfully!")
}

func (f *StorefrontFacade) UpdateAddress(ctx context.Context, s *model.Session, a model.Address) (*model.Address, error) {
	updated, err := f.account.UpdateAddress(withSession(ctx, s), a)
	return updated, f.report(ctx, s, err, "Address updated successfully!")
}

func (f *StorefrontFacade) DeleteAddress(ctx context.Context, s *model.Session, id int64) error {
	err := f.account.DeleteAddress(withSession(ctx, s), id)
	return f.report(ctx, s, err, "Address deleted successfully!")
}
