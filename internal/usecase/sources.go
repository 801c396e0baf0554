package usecase

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/polkiloo/foodfront/internal/adapter/backend"
	"github.com/polkiloo/foodfront/internal/domain/model"
	"github.com/polkiloo/foodfront/internal/store"
)

// fanOutLimit bounds concurrent per-restaurant requests.
const fanOutLimit = 4

// OrderSourceFactory builds the order source matching a viewer role.
type OrderSourceFactory struct {
	client backend.Client
}

// NewOrderSourceFactory constructs OrderSourceFactory.
func NewOrderSourceFactory(client backend.Client) *OrderSourceFactory {
	return &OrderSourceFactory{client: client}
}

// For returns the source that lists the orders visible to role.
func (f *OrderSourceFactory) For(role model.Role) store.OrderSource {
	switch role {
	case model.RoleRestaurantOwner:
		return &restaurantOrders{client: f.client, restaurants: f.client.MyRestaurants}
	case model.RoleAdmin:
		return &restaurantOrders{client: f.client, restaurants: f.client.Restaurants}
	case model.RoleDeliveryPartner:
		return &deliveryOrders{client: f.client}
	default:
		return &customerOrders{client: f.client}
	}
}

type customerOrders struct {
	client backend.OrderAPI
}

func (s *customerOrders) Orders(ctx context.Context) ([]model.Order, error) {
	return s.client.MyOrders(ctx)
}

func (s *customerOrders) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	return s.client.UpdateOrderStatus(ctx, orderID, status)
}

// restaurantOrders collects the orders of every restaurant returned by restaurants.
type restaurantOrders struct {
	client      backend.OrderAPI
	restaurants func(context.Context) ([]model.Restaurant, error)
}

func (s *restaurantOrders) Orders(ctx context.Context) ([]model.Order, error) {
	restaurants, err := s.restaurants(ctx)
	if err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}

	perRestaurant := make([][]model.Order, len(restaurants))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fanOutLimit)
	for i, r := range restaurants {
		g.Go(func() error {
			orders, err := s.client.RestaurantOrders(gctx, r.ID)
			if err != nil {
				return fmt.Errorf("orders of restaurant %d: %w", r.ID, err)
			}
			perRestaurant[i] = orders
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []model.Order
	for _, orders := range perRestaurant {
		all = append(all, orders...)
	}
	sortNewestFirst(all)
	return all, nil
}

func (s *restaurantOrders) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	return s.client.UpdateOrderStatus(ctx, orderID, status)
}

// deliveryOrders shows assigned deliveries followed by ones still open for pickup.
type deliveryOrders struct {
	client backend.OrderAPI
}

func (s *deliveryOrders) Orders(ctx context.Context) ([]model.Order, error) {
	var assigned, available []model.Order
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		assigned, err = s.client.AssignedDeliveries(gctx)
		if err != nil {
			return fmt.Errorf("assigned deliveries: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		available, err = s.client.AvailableDeliveries(gctx)
		if err != nil {
			return fmt.Errorf("available deliveries: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	seen := make(map[int64]struct{}, len(assigned))
	merged := make([]model.Order, 0, len(assigned)+len(available))
	for _, batch := range [][]model.Order{assigned, available} {
		for _, o := range batch {
			if _, dup := seen[o.ID]; dup {
				continue
			}
			seen[o.ID] = struct{}{}
			merged = append(merged, o)
		}
	}
	return merged, nil
}

func (s *deliveryOrders) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	return s.client.UpdateDeliveryStatus(ctx, orderID, status)
}

func sortNewestFirst(orders []model.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		if orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].ID > orders[j].ID
		}
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}
