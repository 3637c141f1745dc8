// Package catalog is the HTTP client for the streaming catalog: song
// search and lyrics lookup. Failures here are always recoverable; UI
// call sites degrade to empty results or placeholder text.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	// DefaultBaseURL is the catalog resolver endpoint. Overridable via
	// config for self-hosted resolvers.
	DefaultBaseURL = "https://api.croon.sh"

	// Retry configuration for transient errors
	maxRetries    = 3
	baseRetryWait = 500 * time.Millisecond
)

// Client is a catalog API client.
type Client struct {
	httpClient *http.Client
	baseURL    string

	lyrics *lyricsCache

	verbose bool
	logFunc func(format string, args ...interface{})
}

// New creates a new catalog client. An empty baseURL selects the
// default endpoint.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
		lyrics:     newLyricsCache(),
	}
}

// SetVerbose enables verbose logging.
func (c *Client) SetVerbose(verbose bool, logFunc func(format string, args ...interface{})) {
	c.verbose = verbose
	c.logFunc = logFunc
}

func (c *Client) log(format string, args ...interface{}) {
	if c.verbose && c.logFunc != nil {
		c.logFunc(format, args...)
	}
}

// Get performs a GET request against the catalog API, retrying
// transient failures with exponential backoff.
func (c *Client) Get(ctx context.Context, path string, result interface{}) error {
	fullURL := c.baseURL + path
	c.log("[catalog] GET %s", fullURL)

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			wait := baseRetryWait * time.Duration(1<<(attempt-1)) // exponential backoff
			c.log("[catalog] retry %d/%d after %v (last error: %v)", attempt, maxRetries, wait, lastErr)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("request failed: %w", err)
			c.log("[catalog] network error: %v", err)
			continue // Retry on network error
		}

		respBody, err := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("failed to read response: %w", err)
			continue
		}

		c.log("[catalog] response: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))

		// Retry on 5xx server errors
		if resp.StatusCode >= 500 {
			lastErr = &APIError{Status: resp.StatusCode, Message: string(respBody)}
			continue
		}

		// Don't retry 4xx errors
		if resp.StatusCode >= 400 {
			var apiErr APIError
			if err := json.Unmarshal(respBody, &apiErr); err == nil && apiErr.Message != "" {
				apiErr.Status = resp.StatusCode
				return &apiErr
			}
			return &APIError{Status: resp.StatusCode, Message: string(respBody)}
		}

		if result != nil && len(respBody) > 0 {
			if err := json.Unmarshal(respBody, result); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}
		}
		return nil
	}

	return lastErr
}

// BuildURL builds a path with encoded query parameters.
func BuildURL(path string, params map[string]string) string {
	if len(params) == 0 {
		return path
	}
	values := url.Values{}
	for k, v := range params {
		values.Set(k, v)
	}
	return path + "?" + values.Encode()
}
