package backend

import (
	"context"
	"net/http"

	"github.com/polkiloo/foodfront/internal/domain/model"
)

// Login authenticates with email and password.
func (c *HTTPClient) Login(ctx context.Context, creds model.Credentials) (*model.AuthResult, error) {
	var resp authResponse
	req := authRequest{Email: creds.Email, Password: creds.Password}
	if err := c.do(ctx, http.MethodPost, c.endpoint(nil, "auth", "login"), req, &resp); err != nil {
		return nil, err
	}
	return resp.toModel(), nil
}

// Register creates an account and returns its token.
func (c *HTTPClient) Register(ctx context.Context, reg model.Registration) (*model.AuthResult, error) {
	var resp authResponse
	req := registerRequest{Name: reg.Name, Email: reg.Email, Password: reg.Password, Phone: reg.Phone, Role: string(reg.Role)}
	if err := c.do(ctx, http.MethodPost, c.endpoint(nil, "auth", "register"), req, &resp); err != nil {
		return nil, err
	}
	return resp.toModel(), nil
}
