// Package planarity provides a typed Go client for the remote
// planarity-testing service.
package planarity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL matches the service's standalone development deployment.
const DefaultBaseURL = "http://localhost:5000"

const analyzePath = "/planarity"

// Client talks to one planarity service instance.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the HTTP client timeout. The default client has none;
// a hung request then blocks until the context or caller gives up.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// New creates a client for the given base URL (e.g. "http://localhost:5000").
// An empty baseURL falls back to DefaultBaseURL.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Analyze submits a graph payload to the analysis endpoint. The body is
// sent exactly as given. The full response body is read and decoded as
// JSON whatever the HTTP status, since the service reports failures
// through the same shape; a non-2xx status alone is not an error here.
// Errors are returned only for transport failures, unreadable bodies, and
// bodies that are not JSON.
func (c *Client) Analyze(ctx context.Context, payload json.RawMessage) (*Analysis, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+analyzePath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	a := &Analysis{StatusCode: resp.StatusCode}
	if err := json.Unmarshal(body, &a.Result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return a, nil
}

// Ping probes the service's root route and returns its status line.
func (c *Client) Ping(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("service returned %s", resp.Status)
	}
	return strings.TrimSpace(string(body)), nil
}

// BaseURL returns the URL the client was built with.
func (c *Client) BaseURL() string { return c.baseURL }
