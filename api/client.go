// Package api is the HTTP client for the employee-management REST
// backend. It owns transport concerns only: bearer injection, request
// correlation IDs, JSON codecs and the backend's error body shape.
// Authentication policy lives in the auth package.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/emstack/go-employee-console/token"
)

const defaultTimeout = 30 * time.Second

// Error is a non-2xx response from the backend, carrying the status code
// and the "detail" field of the error body when one was present.
type Error struct {
	StatusCode int
	Detail     string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("api: status %d: %s", e.StatusCode, e.Detail)
}

// Client talks to the REST backend. A nil token store means requests go
// out unauthenticated (the login and register calls work that way too:
// the backend ignores any bearer on them).
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     token.Store
	log        zerolog.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the default HTTP client (primarily for tests
// and custom timeouts).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTokenStore attaches the store whose access token is sent as the
// bearer credential on every request.
func WithTokenStore(store token.Store) Option {
	return func(c *Client) {
		c.tokens = store
	}
}

func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

func New(baseURL string, options ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		log:        zerolog.Nop(),
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// do performs one request/response cycle. Transport failures come back
// wrapped; non-2xx statuses come back as *Error. When out is non-nil the
// response body is decoded into it.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "[Client.do] Marshal")
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return errors.Wrap(err, "[Client.do] NewRequestWithContext")
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", uuid.New().String())
	if c.tokens != nil {
		if access := c.tokens.AccessToken(); access != "" {
			req.Header.Set("Authorization", "Bearer "+access)
		}
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("method", method).Str("path", path).Msg("request failed")
		return errors.Wrapf(err, "[Client.do] %s %s", method, path)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(started)).
		Msg("request complete")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{StatusCode: resp.StatusCode, Detail: errorDetail(resp.Body)}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "[Client.do] decode %s %s", method, path)
	}
	return nil
}

// errorDetail pulls the "detail" message out of a DRF-style error body.
// Bodies that are not JSON objects are ignored; the status code alone is
// still meaningful.
func errorDetail(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, 8<<10))
	if err != nil {
		return ""
	}
	var parsed struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(data, &parsed); err != nil {
		return ""
	}
	return parsed.Detail
}
