// Package gateway is the HTTP client for the MIS API. It owns the bearer
// token and translates server rejections into *StatusError values so callers
// can tell a rejection apart from a transport failure.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/vst-mis/vst-mis/internal/dashboard"
	"github.com/vst-mis/vst-mis/internal/dealers"
	"github.com/vst-mis/vst-mis/internal/orders"
)

// StatusError is a non-2xx response from the server. Message carries the
// server's error body when one was sent.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Code, e.Message)
}

// User is the account shape returned by the auth endpoints.
type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Session is an authenticated login result.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Client talks to the MIS API.
type Client struct {
	BaseURL string

	httpClient *http.Client
	token      string
	onSignOut  func()
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithToken seeds an existing bearer token.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// New constructs a Client for the given base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		BaseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Token returns the current bearer token, empty when signed out.
func (c *Client) Token() string { return c.token }

// OnSignOut registers the hook invoked on any 401. The hook runs after the
// token is cleared.
func (c *Client) OnSignOut(fn func()) { c.onSignOut = fn }

// Login authenticates and stores the returned token for later calls.
func (c *Client) Login(ctx context.Context, email, password string) (Session, error) {
	var session Session
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &session); err != nil {
		return Session{}, err
	}
	c.token = session.Token
	return session, nil
}

// Register creates an account and stores the returned token.
func (c *Client) Register(ctx context.Context, email, password, name string) (Session, error) {
	var session Session
	body := map[string]string{"email": email, "password": password, "name": name}
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", body, &session); err != nil {
		return Session{}, err
	}
	c.token = session.Token
	return session, nil
}

// Verify checks the stored token and returns the account behind it.
func (c *Client) Verify(ctx context.Context) (User, error) {
	var resp struct {
		User User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/auth/verify", nil, &resp); err != nil {
		return User{}, err
	}
	return resp.User, nil
}

// FetchAll pulls the complete dashboard bundle.
func (c *Client) FetchAll(ctx context.Context) (dashboard.Bundle, error) {
	var bundle dashboard.Bundle
	err := c.do(ctx, http.MethodGet, "/api/data", nil, &bundle)
	return bundle, err
}

// CreateOrder submits a new order and returns the stored record.
func (c *Client) CreateOrder(ctx context.Context, order orders.Order) (orders.Order, error) {
	var created orders.Order
	err := c.do(ctx, http.MethodPost, "/api/orders", order, &created)
	return created, err
}

// SetOrderStatus moves an order to the given status.
func (c *Client) SetOrderStatus(ctx context.Context, id string, status orders.Status) error {
	body := map[string]string{"status": string(status)}
	path := "/api/orders/" + id + "/status"
	return c.do(ctx, http.MethodPatch, path, body, nil)
}

// AdjustStock applies a delta to an SKU and returns the post-clamp stock.
func (c *Client) AdjustStock(ctx context.Context, sku string, delta int) (int, error) {
	var resp struct {
		SKU   string `json:"sku"`
		Stock int    `json:"stock"`
	}
	body := map[string]int{"adjust": delta}
	path := "/api/inventory/" + sku + "/stock"
	if err := c.do(ctx, http.MethodPatch, path, body, &resp); err != nil {
		return 0, err
	}
	return resp.Stock, nil
}

// CreateDealer registers a new dealer and returns the stored record.
func (c *Client) CreateDealer(ctx context.Context, dealer dealers.Dealer) (dealers.Dealer, error) {
	var created dealers.Dealer
	err := c.do(ctx, http.MethodPost, "/api/dealers", dealer, &created)
	return created, err
}

// NextOrderID asks the server for the next free order id.
func (c *Client) NextOrderID(ctx context.Context) (string, error) {
	var resp struct {
		NextID string `json:"nextId"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/next-order-id", nil, &resp); err != nil {
		return "", err
	}
	return resp.NextID, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.token = ""
		if c.onSignOut != nil {
			c.onSignOut()
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errBody struct {
			Error string `json:"error"`
		}
		message := "Request failed"
		if err := json.NewDecoder(resp.Body).Decode(&errBody); err == nil && errBody.Error != "" {
			message = errBody.Error
		}
		return &StatusError{Code: resp.StatusCode, Message: message}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
