package usecase

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/polkiloo/foodfront/internal/adapter/backend"
	"github.com/polkiloo/foodfront/internal/domain/model"
)

// RestaurantDashboard is one owned restaurant with its menu and orders.
type RestaurantDashboard struct {
	Restaurant model.Restaurant
	Menu       []model.MenuItem
	Orders     []model.Order
}

// AdminStats summarizes the platform for administrators.
type AdminStats struct {
	Restaurants       int
	ActiveRestaurants int
	Orders            int
}

// DashboardUseCase aggregates data for the owner and admin dashboards.
type DashboardUseCase struct {
	client backend.Client
}

// NewDashboardUseCase constructs DashboardUseCase.
func NewDashboardUseCase(client backend.Client) *DashboardUseCase {
	return &DashboardUseCase{client: client}
}

// Owner loads every restaurant of the caller together with its menu and orders.
func (u *DashboardUseCase) Owner(ctx context.Context) ([]RestaurantDashboard, error) {
	restaurants, err := u.client.MyRestaurants(ctx)
	if err != nil {
		return nil, fmt.Errorf("list own restaurants: %w", err)
	}

	boards := make([]RestaurantDashboard, len(restaurants))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fanOutLimit)
	for i, r := range restaurants {
		boards[i].Restaurant = r
		g.Go(func() error {
			menu, err := u.client.Menu(gctx, r.ID)
			if err != nil {
				return fmt.Errorf("menu of restaurant %d: %w", r.ID, err)
			}
			boards[i].Menu = menu
			return nil
		})
		g.Go(func() error {
			orders, err := u.client.RestaurantOrders(gctx, r.ID)
			if err != nil {
				return fmt.Errorf("orders of restaurant %d: %w", r.ID, err)
			}
			sortNewestFirst(orders)
			boards[i].Orders = orders
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return boards, nil
}

// Admin counts restaurants from the live list. orderCount comes from the admin order board.
func (u *DashboardUseCase) Admin(ctx context.Context, orderCount int) (AdminStats, error) {
	restaurants, err := u.client.Restaurants(ctx)
	if err != nil {
		return AdminStats{}, fmt.Errorf("list restaurants: %w", err)
	}

	stats := AdminStats{Restaurants: len(restaurants), Orders: orderCount}
	for _, r := range restaurants {
		if r.Active {
			stats.ActiveRestaurants++
		}
	}
	return stats, nil
}
