package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/polkiloo/foodfront/internal/domain/model"
)

func (c *HTTPClient) Restaurants(ctx context.Context) ([]model.Restaurant, error) {
	return c.listRestaurants(ctx, nil, "restaurants")
}

// SearchRestaurants filters by name or cuisine on the backend.
func (c *HTTPClient) SearchRestaurants(ctx context.Context, query string) ([]model.Restaurant, error) {
	q := url.Values{}
	q.Set("query", query)
	return c.listRestaurants(ctx, q, "restaurants", "search")
}

func (c *HTTPClient) Restaurant(ctx context.Context, id int64) (*model.Restaurant, error) {
	var resp restaurantPayload
	if err := c.do(ctx, http.MethodGet, c.endpoint(nil, "restaurants", strconv.FormatInt(id, 10)), nil, &resp); err != nil {
		return nil, err
	}
	r := resp.toModel()
	return &r, nil
}

// MyRestaurants lists restaurants owned by the token holder.
func (c *HTTPClient) MyRestaurants(ctx context.Context) ([]model.Restaurant, error) {
	return c.listRestaurants(ctx, nil, "restaurants", "my")
}

func (c *HTTPClient) CreateRestaurant(ctx context.Context, restaurant model.Restaurant) (*model.Restaurant, error) {
	var resp restaurantPayload
	if err := c.do(ctx, http.MethodPost, c.endpoint(nil, "restaurants"), restaurantFromModel(restaurant), &resp); err != nil {
		return nil, err
	}
	r := resp.toModel()
	return &r, nil
}

func (c *HTTPClient) Menu(ctx context.Context, restaurantID int64) ([]model.MenuItem, error) {
	var resp []menuItemPayload
	if err := c.do(ctx, http.MethodGet, c.endpoint(nil, "restaurants", strconv.FormatInt(restaurantID, 10), "menu"), nil, &resp); err != nil {
		return nil, err
	}
	items := make([]model.MenuItem, 0, len(resp))
	for _, it := range resp {
		items = append(items, it.toModel())
	}
	return items, nil
}

func (c *HTTPClient) AddMenuItem(ctx context.Context, restaurantID int64, item model.MenuItem) (*model.MenuItem, error) {
	var resp menuItemPayload
	endpoint := c.endpoint(nil, "restaurants", strconv.FormatInt(restaurantID, 10), "menu")
	if err := c.do(ctx, http.MethodPost, endpoint, menuItemFromModel(item), &resp); err != nil {
		return nil, err
	}
	m := resp.toModel()
	return &m, nil
}

func (c *HTTPClient) UpdateMenuItem(ctx context.Context, item model.MenuItem) (*model.MenuItem, error) {
	var resp menuItemPayload
	endpoint := c.endpoint(nil, "menu-items", strconv.FormatInt(item.ID, 10))
	if err := c.do(ctx, http.MethodPut, endpoint, menuItemFromModel(item), &resp); err != nil {
		return nil, err
	}
	m := resp.toModel()
	return &m, nil
}

func (c *HTTPClient) DeleteMenuItem(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, c.endpoint(nil, "menu-items", strconv.FormatInt(id, 10)), nil, nil)
}

func (c *HTTPClient) listRestaurants(ctx context.Context, q url.Values, segments ...string) ([]model.Restaurant, error) {
	var resp []restaurantPayload
	if err := c.do(ctx, http.MethodGet, c.endpoint(q, segments...), nil, &resp); err != nil {
		return nil, err
	}
	out := make([]model.Restaurant, 0, len(resp))
	for _, r := range resp {
		out = append(out, r.toModel())
	}
	return out, nil
}
