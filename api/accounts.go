package api

import (
	"context"
	"net/http"

	"github.com/emstack/go-employee-console/token"
)

// LoginRequest carries the credentials posted to /auth/login/. It is
// transient: built for the call and never stored.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginUser is the user object the backend embeds in a successful login
// response alongside the token pair.
type LoginUser struct {
	ID         int64  `json:"id"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	EmployeeID *int64 `json:"employee_id"`
}

type LoginResponse struct {
	Access  string     `json:"access"`
	Refresh string     `json:"refresh"`
	User    *LoginUser `json:"user"`
}

// TokenPair returns the issued tokens as a pair ready for the store.
func (r *LoginResponse) TokenPair() token.Pair {
	return token.Pair{Access: r.Access, Refresh: r.Refresh}
}

func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	var resp LoginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login/", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RegisterRequest creates a new account. Role is one of the backend's
// role choices (ADMIN, MANAGER, EMPLOYEE).
type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	return c.do(ctx, http.MethodPost, "/auth/register/", req, nil)
}

type RefreshResponse struct {
	Access string `json:"access"`
}

// RefreshToken exchanges a refresh token for a new access token. The
// session core never calls this (there is no client-side refresh flow);
// it is exposed for callers that manage their own token lifetime.
func (c *Client) RefreshToken(ctx context.Context, refresh string) (*RefreshResponse, error) {
	body := struct {
		Refresh string `json:"refresh"`
	}{Refresh: refresh}

	var resp RefreshResponse
	if err := c.do(ctx, http.MethodPost, "/auth/token/refresh/", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
