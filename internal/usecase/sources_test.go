package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/polkiloo/foodfront/internal/domain/model"
	testhelpers "github.com/polkiloo/foodfront/internal/test"
)

func ordersWithIDs(ids ...int64) []model.Order {
	orders := make([]model.Order, 0, len(ids))
	for _, id := range ids {
		orders = append(orders, testhelpers.RandomOrder(id, model.OrderStatusPlaced))
	}
	return orders
}

func orderIDs(orders []model.Order) []int64 {
	ids := make([]int64, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	return ids
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestCustomerOrderSource(t *testing.T) {
	api := &testhelpers.BackendStub{
		MyOrdersFn: func(context.Context) ([]model.Order, error) { return ordersWithIDs(3, 2), nil },
	}
	src := NewOrderSourceFactory(api).For(model.RoleCustomer)

	orders, err := src.Orders(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !equalIDs(orderIDs(orders), []int64{3, 2}) {
		t.Fatalf("unexpected orders %v", orderIDs(orders))
	}
	if err := src.UpdateStatus(context.Background(), 3, model.OrderStatusCancelled); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if api.Calls("UpdateOrderStatus") != 1 || api.Calls("UpdateDeliveryStatus") != 0 {
		t.Fatal("customer updates go through the order endpoint")
	}
}

func TestOwnerOrderSourceFansOut(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	var requested []int64
	api := &testhelpers.BackendStub{
		MyRestaurantsFn: func(context.Context) ([]model.Restaurant, error) {
			return []model.Restaurant{{ID: 1}, {ID: 2}}, nil
		},
		RestaurantOrdersFn: func(_ context.Context, id int64) ([]model.Order, error) {
			mu.Lock()
			requested = append(requested, id)
			mu.Unlock()
			o := testhelpers.RandomOrder(id*10, model.OrderStatusPlaced)
			o.CreatedAt = base.Add(time.Duration(id) * time.Hour)
			return []model.Order{o}, nil
		},
	}
	src := NewOrderSourceFactory(api).For(model.RoleRestaurantOwner)

	orders, err := src.Orders(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !equalIDs(orderIDs(orders), []int64{20, 10}) {
		t.Fatalf("expected newest first, got %v", orderIDs(orders))
	}
	if len(requested) != 2 || api.Calls("Restaurants") != 0 {
		t.Fatalf("owner must only read own restaurants, requested %v", requested)
	}
}

func TestAdminOrderSourceUsesAllRestaurants(t *testing.T) {
	api := &testhelpers.BackendStub{
		RestaurantsFn: func(context.Context) ([]model.Restaurant, error) {
			return []model.Restaurant{{ID: 1}, {ID: 2}, {ID: 3}}, nil
		},
	}
	src := NewOrderSourceFactory(api).For(model.RoleAdmin)
	if _, err := src.Orders(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if api.Calls("RestaurantOrders") != 3 || api.Calls("MyRestaurants") != 0 {
		t.Fatal("admin must read orders of every restaurant")
	}
}

func TestRestaurantOrderSourceErrors(t *testing.T) {
	boom := errors.New("boom")

	api := &testhelpers.BackendStub{
		MyRestaurantsFn: func(context.Context) ([]model.Restaurant, error) { return nil, boom },
	}
	if _, err := NewOrderSourceFactory(api).For(model.RoleRestaurantOwner).Orders(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected restaurant list error, got %v", err)
	}

	api = &testhelpers.BackendStub{
		MyRestaurantsFn: func(context.Context) ([]model.Restaurant, error) {
			return []model.Restaurant{{ID: 1}, {ID: 2}}, nil
		},
		RestaurantOrdersFn: func(_ context.Context, id int64) ([]model.Order, error) {
			if id == 2 {
				return nil, boom
			}
			return ordersWithIDs(1), nil
		},
	}
	if _, err := NewOrderSourceFactory(api).For(model.RoleRestaurantOwner).Orders(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected per-restaurant error, got %v", err)
	}
}

func TestDeliveryOrderSourceMergesAndDedups(t *testing.T) {
	api := &testhelpers.BackendStub{
		AssignedDeliveriesFn:  func(context.Context) ([]model.Order, error) { return ordersWithIDs(5, 4), nil },
		AvailableDeliveriesFn: func(context.Context) ([]model.Order, error) { return ordersWithIDs(4, 7), nil },
	}
	src := NewOrderSourceFactory(api).For(model.RoleDeliveryPartner)

	orders, err := src.Orders(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !equalIDs(orderIDs(orders), []int64{5, 4, 7}) {
		t.Fatalf("unexpected merge %v", orderIDs(orders))
	}

	if err := src.UpdateStatus(context.Background(), 5, model.OrderStatusDelivered); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if api.Calls("UpdateDeliveryStatus") != 1 || api.Calls("UpdateOrderStatus") != 0 {
		t.Fatal("delivery updates go through the delivery endpoint")
	}

	boom := errors.New("boom")
	api.AvailableDeliveriesFn = func(context.Context) ([]model.Order, error) { return nil, boom }
	if _, err := src.Orders(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected error, got %v", err)
	}
}
