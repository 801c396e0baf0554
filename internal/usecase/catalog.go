package usecase

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/polkiloo/foodfront/internal/adapter/backend"
	"github.com/polkiloo/foodfront/internal/domain/model"
)

// RestaurantDetails is a restaurant with its menu.
type RestaurantDetails struct {
	Restaurant model.Restaurant
	Menu       []model.MenuItem
}

// CatalogUseCase serves restaurant browsing and owner-side catalog changes.
type CatalogUseCase struct {
	catalog backend.CatalogAPI
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(client backend.Client) *CatalogUseCase {
	return &CatalogUseCase{catalog: client}
}

// Browse lists restaurants, filtered by query when one is given.
func (u *CatalogUseCase) Browse(ctx context.Context, query string) ([]model.Restaurant, error) {
	if query = strings.TrimSpace(query); query != "" {
		return u.catalog.SearchRestaurants(ctx, query)
	}
	return u.catalog.Restaurants(ctx)
}

// Details fetches a restaurant and its menu concurrently.
func (u *CatalogUseCase) Details(ctx context.Context, id int64) (*RestaurantDetails, error) {
	var details RestaurantDetails
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r, err := u.catalog.Restaurant(gctx, id)
		if err != nil {
			return err
		}
		details.Restaurant = *r
		return nil
	})
	g.Go(func() error {
		menu, err := u.catalog.Menu(gctx, id)
		if err != nil {
			return fmt.Errorf("menu of restaurant %d: %w", id, err)
		}
		details.Menu = menu
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &details, nil
}

// CreateRestaurant registers a restaurant owned by the caller.
func (u *CatalogUseCase) CreateRestaurant(ctx context.Context, r model.Restaurant) (*model.Restaurant, error) {
	r, err := normalizeRestaurant(r)
	if err != nil {
		return nil, err
	}
	return u.catalog.CreateRestaurant(ctx, r)
}

// AddMenuItem adds a dish to a restaurant menu.
func (u *CatalogUseCase) AddMenuItem(ctx context.Context, restaurantID int64, item model.MenuItem) (*model.MenuItem, error) {
	item, err := normalizeMenuItem(item)
	if err != nil {
		return nil, err
	}
	return u.catalog.AddMenuItem(ctx, restaurantID, item)
}

// UpdateMenuItem replaces a dish.
func (u *CatalogUseCase) UpdateMenuItem(ctx context.Context, item model.MenuItem) (*model.MenuItem, error) {
	item, err := normalizeMenuItem(item)
	if err != nil {
		return nil, err
	}
	return u.catalog.UpdateMenuItem(ctx, item)
}

// DeleteMenuItem removes a dish.
func (u *CatalogUseCase) DeleteMenuItem(ctx context.Context, id int64) error {
	return u.catalog.DeleteMenuItem(ctx, id)
}
