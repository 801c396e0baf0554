package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/polkiloo/foodfront/internal/domain/model"
)

// PlaceOrder turns the current cart into an order. The backend empties the cart.
func (c *HTTPClient) PlaceOrder(ctx context.Context, checkout model.Checkout) (*model.Order, error) {
	method := checkout.PaymentMethod
	if method == "" {
		method = model.PaymentMethodCOD
	}
	q := url.Values{}
	q.Set("addressId", strconv.FormatInt(checkout.AddressID, 10))
	q.Set("paymentMethod", string(method))

	var resp orderResponse
	if err := c.do(ctx, http.MethodPost, c.endpoint(q, "orders"), nil, &resp); err != nil {
		return nil, err
	}
	order := resp.toModel()
	return &order, nil
}

func (c *HTTPClient) MyOrders(ctx context.Context) ([]model.Order, error) {
	return c.listOrders(ctx, "orders", "my")
}

func (c *HTTPClient) RestaurantOrders(ctx context.Context, restaurantID int64) ([]model.Order, error) {
	return c.listOrders(ctx, "orders", "restaurant", strconv.FormatInt(restaurantID, 10))
}

// AvailableDeliveries lists orders waiting for a delivery partner.
func (c *HTTPClient) AvailableDeliveries(ctx context.Context) ([]model.Order, error) {
	return c.listOrders(ctx, "orders", "delivery", "available")
}

// AssignedDeliveries lists orders assigned to the calling delivery partner.
func (c *HTTPClient) AssignedDeliveries(ctx context.Context) ([]model.Order, error) {
	return c.listOrders(ctx, "delivery", "orders")
}

func (c *HTTPClient) UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	return c.putStatus(ctx, status, "orders", strconv.FormatInt(orderID, 10), "status")
}

func (c *HTTPClient) UpdateDeliveryStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	return c.putStatus(ctx, status, "delivery", "orders", strconv.FormatInt(orderID, 10), "status")
}

func (c *HTTPClient) listOrders(ctx context.Context, segments ...string) ([]model.Order, error) {
	var resp []orderResponse
	if err := c.do(ctx, http.MethodGet, c.endpoint(nil, segments...), nil, &resp); err != nil {
		return nil, err
	}
	return ordersToModel(resp), nil
}

func (c *HTTPClient) putStatus(ctx context.Context, status model.OrderStatus, segments ...string) error {
	q := url.Values{}
	q.Set("status", string(status))
	return c.do(ctx, http.MethodPut, c.endpoint(q, segments...), nil, nil)
}
