package backend

import (
	"context"
	"net/http"
	"strconv"

	"github.com/polkiloo/foodfront/internal/domain/model"
)

func (c *HTTPClient) Profile(ctx context.Context) (*model.Profile, error) {
	var resp profilePayload
	if err := c.do(ctx, http.MethodGet, c.endpoint(nil, "users", "profile"), nil, &resp); err != nil {
		return nil, err
	}
	return resp.toModel(), nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, profile model.Profile) (*model.Profile, error) {
	req := profilePayload{Name: profile.Name, Email: profile.Email, Phone: profile.Phone, ImageURL: profile.ImageURL}
	var resp profilePayload
	if err := c.do(ctx, http.MethodPut, c.endpoint(nil, "users", "profile"), req, &resp); err != nil {
		return nil, err
	}
	return resp.toModel(), nil
}

func (c *HTTPClient) ChangePassword(ctx context.Context, change model.PasswordChange) error {
	req := passwordRequest{OldPassword: change.CurrentPassword, NewPassword: change.NewPassword}
	return c.do(ctx, http.MethodPut, c.endpoint(nil, "users", "password"), req, nil)
}

func (c *HTTPClient) Addresses(ctx context.Context) ([]model.Address, error) {
	var resp []addressPayload
	if err := c.do(ctx, http.MethodGet, c.endpoint(nil, "users", "addresses"), nil, &resp); err != nil {
		return nil, err
	}
	out := make([]model.Address, 0, len(resp))
	for _, a := range resp {
		out = append(out, a.toModel())
	}
	return out, nil
}

func (c *HTTPClient) AddAddress(ctx context.Context, address model.Address) (*model.Address, error) {
	var resp addressPayload
	if err := c.do(ctx, http.MethodPost, c.endpoint(nil, "users", "addresses"), addressFromModel(address), &resp); err != nil {
		return nil, err
	}
	a := resp.toModel()
	return &a, nil
}

func (c *HTTPClient) UpdateAddress(ctx context.Context, address model.Address) (*model.Address, error) {
	var resp addressPayload
	endpoint := c.endpoint(nil, "users", "addresses", strconv.FormatInt(address.ID, 10))
	if err := c.do(ctx, http.MethodPut, endpoint, addressFromModel(address), &resp); err != nil {
		return nil, err
	}
	a := resp.toModel()
	return &a, nil
}

func (c *HTTPClient) DeleteAddress(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, c.endpoint(nil, "users", "addresses", strconv.FormatInt(id, 10)), nil, nil)
}
