// Package auth implements the client-side authentication service: login
// against the REST backend, local logout, and synchronous session
// restoration from the persisted token pair.
package auth

import (
	"context"
	"net/http"

	"github.com/pkg/errors"

	"github.com/emstack/go-employee-console/api"
	"github.com/emstack/go-employee-console/identity"
	"github.com/emstack/go-employee-console/token"
)

// Credentials are transient: they exist for the duration of one Login
// call and are never persisted.
type Credentials struct {
	Email    string
	Password string
}

// Registration is the payload for self-service account creation.
type Registration struct {
	Email    string
	Username string
	Password string
	Role     identity.Role
}

// Service performs login/logout and derives the current user from the
// stored access token. It never retries and never refreshes tokens.
type Service struct {
	client *api.Client
	tokens token.Store
	decode func(string) (*identity.Identity, error)
}

// ServiceOption modifies a Service instance.
type ServiceOption func(*Service)

// WithDecodeFunc replaces the token decoder (primarily for testing).
func WithDecodeFunc(decode func(string) (*identity.Identity, error)) ServiceOption {
	return func(s *Service) {
		s.decode = decode
	}
}

func NewService(client *api.Client, tokens token.Store, options ...ServiceOption) (*Service, error) {
	if client == nil {
		return nil, errors.New("[NewService] api client is required")
	}
	if tokens == nil {
		return nil, errors.New("[NewService] token store is required")
	}

	s := &Service{
		client: client,
		tokens: tokens,
		decode: token.Decode,
	}
	for _, opt := range options {
		opt(s)
	}
	return s, nil
}

// Login exchanges credentials for a token pair, persists the pair and
// returns the identity the backend reported. Failures carry a Reason:
// rejected credentials, unreachable backend, or an unexpected error
// status. A single attempt only.
func (s *Service) Login(ctx context.Context, creds Credentials) (*identity.Identity, error) {
	resp, err := s.client.Login(ctx, api.LoginRequest{Email: creds.Email, Password: creds.Password})
	if err != nil {
		return nil, classifyLoginError(err)
	}

	if err := s.tokens.Save(resp.TokenPair()); err != nil {
		return nil, errors.Wrap(err, "[Service.Login] persisting token pair")
	}

	if user := resp.User; user != nil {
		id := &identity.Identity{
			ID:         user.ID,
			Email:      user.Email,
			Role:       identity.ParseRole(user.Role),
			EmployeeID: user.EmployeeID,
		}
		return id, nil
	}

	// Older backends omit the user object; fall back to the token claims.
	id, err := s.decode(resp.Access)
	if err != nil {
		return nil, &Error{Reason: ReasonServer, Err: errors.Wrap(err, "undecodable access token")}
	}
	return id, nil
}

// Logout clears the stored token pair. It is a local-only operation: no
// network call is made and a missing pair is not an error.
func (s *Service) Logout() error {
	if err := s.tokens.Clear(); err != nil {
		return errors.Wrap(err, "[Service.Logout] clearing token store")
	}
	return nil
}

// CurrentUser reconstructs the identity from the stored access token.
// It is synchronous and cost-free - this is how a session survives a
// restart. Absent or undecodable tokens yield nil, never an error: a
// broken token is indistinguishable from being signed out.
func (s *Service) CurrentUser() *identity.Identity {
	access := s.tokens.AccessToken()
	if access == "" {
		return nil
	}
	id, err := s.decode(access)
	if err != nil {
		return nil
	}
	return id
}

// Register creates a new account. It does not sign the new user in.
func (s *Service) Register(ctx context.Context, reg Registration) error {
	req := api.RegisterRequest{
		Email:    reg.Email,
		Username: reg.Username,
		Password: reg.Password,
		Role:     string(reg.Role),
	}
	if err := s.client.Register(ctx, req); err != nil {
		return classifyLoginError(err)
	}
	return nil
}

// classifyLoginError maps transport and status failures onto the Reason
// taxonomy. 400/401 mean the backend looked at the credentials and said
// no; everything else with a status is a server fault; no status at all
// means the request never made it.
func classifyLoginError(err error) error {
	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		return &Error{Reason: ReasonNetwork, Err: err}
	}
	switch apiErr.StatusCode {
	case http.StatusBadRequest, http.StatusUnauthorized:
		return &Error{Reason: ReasonInvalidCredentials, Err: err}
	default:
		return &Error{Reason: ReasonServer, Err: err}
	}
}
