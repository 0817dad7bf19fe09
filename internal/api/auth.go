package api

import (
	"context"

	"github.com/avatar-commerce/avatarcommerce/internal/account"
)

// Login calls POST /login.
func (c *Client) Login(ctx context.Context, creds account.Credentials) (account.AuthResult, error) {
	var out account.AuthResult
	if err := c.t.PostJSON(ctx, "/login", LoginRequest{Email: creds.Email, Password: creds.Password}, &out); err != nil {
		return account.AuthResult{}, err
	}
	return out, nil
}

// Register calls POST /register.
func (c *Client) Register(ctx context.Context, reg account.Registration) (account.User, error) {
	var out RegisterResponse
	req := RegisterRequest{Name: reg.Name, Email: reg.Email, Password: reg.Password, UserType: reg.UserType}
	if err := c.t.PostJSON(ctx, "/register", req, &out); err != nil {
		return account.User{}, err
	}
	return out.User, nil
}
