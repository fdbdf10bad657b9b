package storage

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

// DefaultTimeout is the per-request timeout when no custom HTTP client is set.
const DefaultTimeout = 30 * time.Second

// Client is the HTTP client for the storage service.
type Client struct {
	baseURL    string
	apiSecret  string
	httpClient *http.Client
}

// Option configures the storage client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets the request timeout on the default HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// New creates a storage client. The apiSecret authenticates this service to
// the storage API via the API-Secret header; it may be empty when the
// deployment protects the service by other means.
func New(baseURL, apiSecret string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("storage base URL is required")
	}

	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		apiSecret: apiSecret,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// do performs a single request. There is no retry loop: transient transport
// failures are surfaced to the caller, whose transport boundary owns retry
// policy.
func (c *Client) do(ctx context.Context, method, path string, body, result interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiSecret != "" {
		req.Header.Set("API-Secret", c.apiSecret)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err, URL: url}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return parseErrorResponse(resp)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	return nil
}

func parseErrorResponse(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var errResp struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}

	apiErr := &APIError{StatusCode: resp.StatusCode}
	if err := json.Unmarshal(body, &errResp); err == nil {
		switch {
		case errResp.Error != "":
			apiErr.Message = errResp.Error
		case errResp.Message != "":
			apiErr.Message = errResp.Message
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(string(body))
	}

	return apiErr
}
