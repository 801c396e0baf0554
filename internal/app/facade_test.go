package app

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/polkiloo/foodfront/internal/adapter/backend"
	domainErrors "github.com/polkiloo/foodfront/internal/domain/errors"
	"github.com/polkiloo/foodfront/internal/domain/model"
	"github.com/polkiloo/foodfront/internal/store"
	testhelpers "github.com/polkiloo/foodfront/internal/test"
	"github.com/polkiloo/foodfront/internal/usecase"
)

func newTestFacade(t *testing.T, api *testhelpers.BackendStub) (*StorefrontFacade, *testhelpers.SessionRepositoryStub) {
	t.Helper()
	repo := testhelpers.NewSessionRepositoryStub()
	auth := usecase.NewAuthUseCase(api, repo, testhelpers.StrategyStub{}, nil)
	workspaces := NewWorkspaces(api, usecase.NewOrderSourceFactory(api), 10, nil)
	facade := NewStorefrontFacade(
		auth,
		usecase.NewCatalogUseCase(api),
		usecase.NewDashboardUseCase(api),
		usecase.NewAccountUseCase(api),
		usecase.NewCheckoutUseCase(api),
		workspaces,
		nil,
	)
	return facade, repo
}

func loginAs(t *testing.T, f *StorefrontFacade, api *testhelpers.BackendStub, role model.Role) *model.Session {
	t.Helper()
	api.LoginFn = func(_ context.Context, creds model.Credentials) (*model.AuthResult, error) {
		return &model.AuthResult{Token: "token-" + creds.Email, Email: creds.Email, Role: role}, nil
	}
	session, _, err := f.Login(context.Background(), model.Credentials{Email: "user@example.com", Password: "secret"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	return session
}

func messages(ns []store.Notification) []string {
	out := make([]string, 0, len(ns))
	for _, n := range ns {
		out = append(out, string(n.Level)+":"+n.Message)
	}
	return out
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}

func TestFacadeLoginLoadsCartWithToken(t *testing.T) {
	var tokens []string
	var mu sync.Mutex
	api := &testhelpers.BackendStub{
		GetCartFn: func(ctx context.Context) (*model.Cart, error) {
			token, _ := backend.TokenFromContext(ctx)
			mu.Lock()
			tokens = append(tokens, token)
			mu.Unlock()
			return testhelpers.CartWithQuantities(2, 1), nil
		},
	}
	f, _ := newTestFacade(t, api)
	session := loginAs(t, f, api, model.RoleCustomer)

	snap, err := f.Cart(context.Background(), session)
	if err != nil {
		t.Fatalf("cart returned error: %v", err)
	}
	if snap.State != store.CartReady || snap.ItemCount != 3 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if f.CartCount(context.Background(), session) != 3 {
		t.Fatal("unexpected cart count")
	}
	if api.Calls("GetCart") != 1 {
		t.Fatalf("expected the login load to be reused, got %d fetches", api.Calls("GetCart"))
	}
	if len(tokens) != 1 || tokens[0] != "token-user@example.com" {
		t.Fatalf("expected session token on backend call, got %v", tokens)
	}
}

func TestFacadeLogoutDropsWorkspace(t *testing.T) {
	api := &testhelpers.BackendStub{}
	f, repo := newTestFacade(t, api)
	session := loginAs(t, f, api, model.RoleCustomer)

	if err := f.Logout(context.Background(), session); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if _, ok := f.workspaces.Lookup(session.ID); ok {
		t.Fatal("expected workspace to be dropped")
	}
	if repo.Len() != 0 {
		t.Fatal("expected session to be deleted")
	}

	// a request resolved before the logout arrives late
	if _, err := f.AddToCart(context.Background(), session, 7, 1); !errors.Is(err, store.ErrClosed) {
		t.Fatalf("expected closed cart for a logged out session, got %v", err)
	}
	if _, err := f.Orders(context.Background(), session, true); !errors.Is(err, domainErrors.ErrNotAuthenticated) {
		t.Fatalf("expected not authenticated orders, got %v", err)
	}
	if f.workspaces.Len() != 0 || api.Calls("AddToCart") != 0 {
		t.Fatalf("expected no workspace and no backend call, got %d/%d", f.workspaces.Len(), api.Calls("AddToCart"))
	}
}

func TestFacadeCartMutations(t *testing.T) {
	api := &testhelpers.BackendStub{}
	f, _ := newTestFacade(t, api)
	session := loginAs(t, f, api, model.RoleCustomer)
	ctx := context.Background()

	snap, err := f.AddToCart(ctx, session, 7, 2)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if snap.ItemCount != 2 || len(snap.Cart.Items) != 1 {
		t.Fatalf("unexpected snapshot after add %+v", snap)
	}
	lineID := snap.Cart.Items[0].ID

	snap, err = f.UpdateCartItem(ctx, session, lineID, 5)
	if err != nil || snap.ItemCount != 5 {
		t.Fatalf("update failed: %v %+v", err, snap)
	}
	if count := f.CartCount(ctx, session); count != 5 {
		t.Fatalf("expected badge count 5, got %d", count)
	}

	snap, err = f.UpdateCartItem(ctx, session, lineID, 0)
	if err != nil || snap.ItemCount != 0 {
		t.Fatalf("zero quantity should remove the line: %v %+v", err, snap)
	}
	if api.Calls("RemoveCartItem") != 1 {
		t.Fatal("expected remove to be called")
	}

	if _, err := f.AddToCart(ctx, session, 7, 0); !errors.Is(err, domainErrors.ErrInvalidQuantity) {
		t.Fatalf("expected invalid quantity, got %v", err)
	}

	got := messages(f.Notifications(ctx, session))
	if !contains(got, "success:Item added to cart") || !contains(got, "success:Item removed from cart") || !contains(got, "error:Quantity must be at least 1") {
		t.Fatalf("unexpected notifications %v", got)
	}
	if len(f.Notifications(ctx, session)) != 0 {
		t.Fatal("expected notifications to be drained")
	}
}

func TestFacadeCheckout(t *testing.T) {
	api := &testhelpers.BackendStub{}
	f, _ := newTestFacade(t, api)
	session := loginAs(t, f, api, model.RoleCustomer)
	ctx := context.Background()

	if _, err := f.Checkout(ctx, session, model.Checkout{AddressID: 1}); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected empty cart to be rejected, got %v", err)
	}
	if api.Calls("PlaceOrder") != 0 {
		t.Fatal("empty cart must not be submitted")
	}

	if _, err := f.AddToCart(ctx, session, 3, 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	order, err := f.Checkout(ctx, session, model.Checkout{AddressID: 1, PaymentMethod: "upi"})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if order.PaymentMethod != model.PaymentMethodUPI {
		t.Fatalf("unexpected payment method %q", order.PaymentMethod)
	}

	snap, _ := f.Cart(ctx, session)
	if snap.ItemCount != 0 {
		t.Fatalf("expected cart to be refetched empty, got %d", snap.ItemCount)
	}
	if got := messages(f.Notifications(ctx, session)); !contains(got, "success:Order placed successfully!") {
		t.Fatalf("unexpected notifications %v", got)
	}
}

func TestFacadeOwnerAdvancesOrder(t *testing.T) {
	var mu sync.Mutex
	status := model.OrderStatusPreparing
	api := &testhelpers.BackendStub{
		MyRestaurantsFn: func(context.Context) ([]model.Restaurant, error) {
			return []model.Restaurant{{ID: 1}}, nil
		},
		RestaurantOrdersFn: func(context.Context, int64) ([]model.Order, error) {
			mu.Lock()
			defer mu.Unlock()
			return []model.Order{testhelpers.RandomOrder(42, status)}, nil
		},
		UpdateOrderStatusFn: func(_ context.Context, id int64, target model.OrderStatus) error {
			mu.Lock()
			defer mu.Unlock()
			if id != 42 {
				return domainErrors.ErrNotFound
			}
			status = target
			return nil
		},
	}
	f, _ := newTestFacade(t, api)
	session := loginAs(t, f, api, model.RoleRestaurantOwner)
	ctx := context.Background()

	views, err := f.Orders(ctx, session, false)
	if err != nil {
		t.Fatalf("orders failed: %v", err)
	}
	if len(views) != 1 || views[0].NextAction == nil || views[0].NextAction.Target != model.OrderStatusOutForDelivery {
		t.Fatalf("unexpected views %+v", views)
	}

	view, err := f.AdvanceOrder(ctx, session, 42)
	if err != nil {
		t.Fatalf("advance failed: %v", err)
	}
	if view.Order.Status != model.OrderStatusOutForDelivery {
		t.Fatalf("expected refetched status, got %s", view.Order.Status)
	}
	if view.NextAction != nil {
		t.Fatal("owner has no action once the order left the kitchen")
	}

	if _, err := f.AdvanceOrder(ctx, session, 42); !errors.Is(err, domainErrors.ErrTransitionNotAllowed) {
		t.Fatalf("expected transition error, got %v", err)
	}
	if _, err := f.CancelOrder(ctx, session, 99); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestFacadeOrdersKeepLastGoodList(t *testing.T) {
	fail := false
	api := &testhelpers.BackendStub{
		MyOrdersFn: func(context.Context) ([]model.Order, error) {
			if fail {
				return nil, domainErrors.ErrTransport
			}
			return []model.Order{testhelpers.RandomOrder(1, model.OrderStatusPlaced)}, nil
		},
	}
	f, _ := newTestFacade(t, api)
	session := loginAs(t, f, api, model.RoleCustomer)
	ctx := context.Background()

	if _, err := f.Orders(ctx, session, false); err != nil {
		t.Fatalf("orders failed: %v", err)
	}
	fail = true
	views, err := f.Orders(ctx, session, true)
	if err != nil {
		t.Fatalf("loaded board must not fail: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected previous list, got %d", len(views))
	}

	other := loginAs(t, f, api, model.RoleCustomer)
	if _, err := f.Orders(ctx, other, false); !errors.Is(err, domainErrors.ErrTransport) {
		t.Fatalf("expected transport error for an unloaded board, got %v", err)
	}
}

func TestFacadeAdminStats(t *testing.T) {
	api := &testhelpers.BackendStub{
		RestaurantsFn: func(context.Context) ([]model.Restaurant, error) {
			return []model.Restaurant{{ID: 1, Active: true}, {ID: 2}}, nil
		},
		RestaurantOrdersFn: func(_ context.Context, id int64) ([]model.Order, error) {
			return []model.Order{testhelpers.RandomOrder(id, model.OrderStatusPlaced)}, nil
		},
	}
	f, _ := newTestFacade(t, api)
	session := loginAs(t, f, api, model.RoleAdmin)

	stats, err := f.AdminStats(context.Background(), session)
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats != (usecase.AdminStats{Restaurants: 2, ActiveRestaurants: 1, Orders: 2}) {
		t.Fatalf("unexpected stats %+v", stats)
	}
}

func TestFacadeAccountReportsOutcome(t *testing.T) {
	api := &testhelpers.BackendStub{}
	f, _ := newTestFacade(t, api)
	session := loginAs(t, f, api, model.RoleCustomer)
	ctx := context.Background()
	f.Notifications(ctx, session)

	if err := f.ChangePassword(ctx, session, model.PasswordChange{CurrentPassword: "a", NewPassword: "b"}); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err := f.ChangePassword(ctx, session, model.PasswordChange{CurrentPassword: "a", NewPassword: "secret1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := f.Notifications(ctx, session)
	if len(got) != 2 || got[0].Level != store.LevelError || got[1].Message != "Password changed successfully!" {
		t.Fatalf("unexpected notifications %v", messages(got))
	}
}

func TestFacadeRestaurantsArePublic(t *testing.T) {
	api := &testhelpers.BackendStub{
		RestaurantsFn: func(ctx context.Context) ([]model.Restaurant, error) {
			if _, ok := backend.TokenFromContext(ctx); ok {
				t.Error("anonymous browse must not carry a token")
			}
			return []model.Restaurant{testhelpers.RandomRestaurant()}, nil
		},
	}
	f, _ := newTestFacade(t, api)

	got, err := f.Restaurants(context.Background(), nil, "")
	if err != nil || len(got) != 1 {
		t.Fatalf("unexpected result %v %v", got, err)
	}
}

func TestFacadeExpireSessionsAndCloseWorkspace(t *testing.T) {
	api := &testhelpers.BackendStub{}
	f, repo := newTestFacade(t, api)
	session := loginAs(t, f, api, model.RoleCustomer)

	repo.Put(model.Session{ID: uuid.New(), ExpiresAt: time.Now().Add(-time.Minute)})
	ids, err := f.ExpireSessions(context.Background(), 10)
	if err != nil || len(ids) != 1 {
		t.Fatalf("unexpected expire result %v %v", ids, err)
	}

	f.CloseWorkspace(session.ID)
	if f.workspaces.Len() != 0 {
		t.Fatal("expected workspace to be closed")
	}
}
