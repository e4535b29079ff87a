// Package api is the HTTP client for the dashboard backend. Every request
// carries the session's bearer token; a 401 anywhere invalidates the session
// exactly once and surfaces as ErrUnauthorized.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"beethoven.dev/beethoven/pkg/model"
)

// TokenSource supplies the current bearer credential. An empty token sends
// the request unauthenticated (the login call itself, typically).
type TokenSource interface {
	Token() string
}

// Client talks to the backend REST API.
type Client struct {
	base string
	http *http.Client
	ts   TokenSource

	// onUnauthorized runs at most once, on the first 401 seen.
	onUnauthorized func()
	once           sync.Once
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithTokenSource attaches the session credential source.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.ts = ts }
}

// WithUnauthorizedHook registers the single session-invalidation callback.
func WithUnauthorizedHook(fn func()) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

// New creates a client for the given base URL, e.g. "https://ops.example/api".
func New(base string, opts ...Option) *Client {
	c := &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: encode request: %w", err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.ts != nil {
		if token := c.ts.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.once.Do(func() {
			if c.onUnauthorized != nil {
				c.onUnauthorized()
			}
		})
		return ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &StatusError{Status: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("api: decode response: %w", err)
	}
	return nil
}

// Login exchanges the staff password for a bearer token.
func (c *Client) Login(ctx context.Context, password string) (string, error) {
	var out struct {
		Token string `json:"token"`
	}
	in := map[string]string{"password": password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, in, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

// FetchClients lists the clients whose lessons fall in the week starting at
// weekKey (a Monday in YYYY-MM-DD form), for one city. The boundary filter
// lives server-side; the caller trusts it.
func (c *Client) FetchClients(ctx context.Context, city model.City, weekKey string) ([]model.ClientCard, error) {
	q := url.Values{"city": {string(city)}, "week_start": {weekKey}}
	var out []model.ClientCard
	if err := c.do(ctx, http.MethodGet, "/clients", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ClientDetail fetches one client with nested recordings.
func (c *Client) ClientDetail(ctx context.Context, id string) (model.ClientDetail, error) {
	var out model.ClientDetail
	err := c.do(ctx, http.MethodGet, "/clients/"+url.PathEscape(id), nil, nil, &out)
	return out, err
}

// UpdateClient applies a partial edit to one client.
func (c *Client) UpdateClient(ctx context.Context, id string, upd model.ClientUpdate) error {
	return c.do(ctx, http.MethodPut, "/clients/"+url.PathEscape(id), nil, upd, nil)
}

// DeleteClient removes one client.
func (c *Client) DeleteClient(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/clients/"+url.PathEscape(id), nil, nil, nil)
}

// Analytics fetches the server-computed aggregates for a city and date range.
func (c *Client) Analytics(ctx context.Context, city model.City, from, to string) (model.AnalyticsReport, error) {
	q := url.Values{"city": {string(city)}, "date_from": {from}, "date_to": {to}}
	var out model.AnalyticsReport
	err := c.do(ctx, http.MethodGet, "/analytics", q, nil, &out)
	return out, err
}

// Settings lists every settings key-value pair.
func (c *Client) Settings(ctx context.Context) ([]model.Setting, error) {
	var out []model.Setting
	if err := c.do(ctx, http.MethodGet, "/settings", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateSetting writes one settings value.
func (c *Client) UpdateSetting(ctx context.Context, key, value string) error {
	in := map[string]string{"value": value}
	return c.do(ctx, http.MethodPut, "/settings/"+url.PathEscape(key), nil, in, nil)
}
