package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/polkiloo/foodfront/internal/domain/model"
)

func (c *HTTPClient) GetCart(ctx context.Context) (*model.Cart, error) {
	var resp cartResponse
	if err := c.do(ctx, http.MethodGet, c.endpoint(nil, "cart"), nil, &resp); err != nil {
		return nil, err
	}
	return resp.toModel(), nil
}

func (c *HTTPClient) AddToCart(ctx context.Context, menuItemID int64, quantity int) (*model.Cart, error) {
	q := url.Values{}
	q.Set("menuItemId", strconv.FormatInt(menuItemID, 10))
	q.Set("quantity", strconv.Itoa(quantity))

	var resp cartResponse
	if err := c.do(ctx, http.MethodPost, c.endpoint(q, "cart", "add"), nil, &resp); err != nil {
		return nil, err
	}
	return resp.toModel(), nil
}

func (c *HTTPClient) UpdateCartItem(ctx context.Context, lineID int64, quantity int) (*model.Cart, error) {
	q := url.Values{}
	q.Set("quantity", strconv.Itoa(quantity))

	var resp cartResponse
	if err := c.do(ctx, http.MethodPut, c.endpoint(q, "cart", "update", strconv.FormatInt(lineID, 10)), nil, &resp); err != nil {
		return nil, err
	}
	return resp.toModel(), nil
}

func (c *HTTPClient) RemoveCartItem(ctx context.Context, lineID int64) (*model.Cart, error) {
	var resp cartResponse
	if err := c.do(ctx, http.MethodDelete, c.endpoint(nil, "cart", "remove", strconv.FormatInt(lineID, 10)), nil, &resp); err != nil {
		return nil, err
	}
	return resp.toModel(), nil
}

func (c *HTTPClient) ClearCart(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, c.endpoint(nil, "cart", "clear"), nil, nil)
}
