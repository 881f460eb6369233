package atlas

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// ClientConfig carries the settings the admin API client needs. BaseURL is
// required; Token is attached as a bearer credential when present.
type ClientConfig struct {
	BaseURL string
	Token   string
	Logger  *slog.Logger
}

// Client talks to the Atlas admin API. All list endpoints return the full
// collection; filtering, sorting, and pagination happen client side in the
// grid engine.
type Client struct {
	baseURL *url.URL
	token   string
	http    *loggingHTTPClient
}

// NewClient validates the configuration and builds a client.
func NewClient(cfg ClientConfig) (*Client, error) {
	trimmed := strings.TrimSpace(cfg.BaseURL)
	if trimmed == "" {
		return nil, fmt.Errorf("atlas: base URL is required")
	}

	base, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("atlas: invalid base URL %q: %w", trimmed, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("atlas: base URL %q must include scheme and host", trimmed)
	}

	return &Client{
		baseURL: base,
		token:   strings.TrimSpace(cfg.Token),
		http:    newLoggingHTTPClient(cfg.Logger),
	}, nil
}

// ListUsers fetches every user account.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.getJSON(ctx, "/admin/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// ListTransactions fetches every transaction.
func (c *Client) ListTransactions(ctx context.Context) ([]Transaction, error) {
	var transactions []Transaction
	if err := c.getJSON(ctx, "/admin/transactions", &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

// ListCurrencies fetches the exchange-rate table.
func (c *Client) ListCurrencies(ctx context.Context) ([]Currency, error) {
	var currencies []Currency
	if err := c.getJSON(ctx, "/admin/currencies", &currencies); err != nil {
		return nil, err
	}
	return currencies, nil
}

// ListATMs fetches every registered machine.
func (c *Client) ListATMs(ctx context.Context) ([]ATM, error) {
	var atms []ATM
	if err := c.getJSON(ctx, "/admin/atms", &atms); err != nil {
		return nil, err
	}
	return atms, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	endpoint := c.baseURL.JoinPath(path)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("atlas: building request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("atlas: request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("atlas: %s returned %s: %s", path, resp.Status, strings.TrimSpace(string(snippet)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("atlas: decoding response from %s: %w", path, err)
	}
	return nil
}
