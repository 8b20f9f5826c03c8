package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client handles API calls to a Stacks node
type Client struct {
	httpClient  *http.Client
	baseURL     string
	accountsURL string
}

// NewClient creates a client against the default mainnet node
func NewClient() *Client {
	return NewClientWithOptions(MainnetStacksAPI, MainnetAccountsAPI, DefaultTimeout)
}

// NewClientWithOptions creates a client with explicit endpoints and timeout
func NewClientWithOptions(baseURL, accountsURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:     baseURL,
		accountsURL: accountsURL,
	}
}

// StatusError reports a non-2xx response from the node.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned HTTP %d", e.URL, e.Code)
}

// getJSON issues a GET and returns the body. Non-2xx statuses come back as a
// *StatusError so callers can tell them apart from transport failures.
func (c *Client) getJSON(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{URL: url, Code: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 2<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return body, nil
}
