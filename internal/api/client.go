// Package api contains the resource fetchers of the admin console: thin,
// typed HTTP clients for the auth, users, and master-data services.
//
// Every fetcher performs exactly one HTTP call per invocation, takes the
// caller's context, and normalizes the decoded body into the console's record
// shapes. Fetchers do not retry and are unaware of concurrent calls; request
// supersession is the caller's concern (see the listview package).
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/reviewdeck/adminctl/internal/common"
	"github.com/reviewdeck/adminctl/internal/logging"
)

// Client holds the base URLs of the three backend services and the shared
// HTTP transport.
type Client struct {
	httpClient *http.Client
	authURL    string
	usersURL   string
	masterURL  string
	log        logging.Logger
}

// Option mutates a Client during construction.
type Option func(*Client)

// WithHTTPClient replaces the underlying transport (used by tests).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// New builds a Client for the given service base URLs.
func New(authURL, usersURL, masterURL string, timeout time.Duration, log logging.Logger, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: timeout},
		authURL:    authURL,
		usersURL:   usersURL,
		masterURL:  masterURL,
		log:        log.With("component", "api"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError is a non-2xx response translated into a human-readable message
// via the fallback chain: body "error" field, body "message" field, HTTP
// status text, generic "Request failed".
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string { return e.Message }

// Unwrap lets callers match 401 responses with errors.Is(err, common.ErrUnauthorized).
func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized {
		return common.ErrUnauthorized
	}
	return nil
}

// do issues one HTTP request and decodes a 2xx JSON body into out (when out
// is non-nil). A non-nil token is attached as a bearer header. The body bytes
// are returned as well so callers needing shape-dependent decoding can pass
// out == nil and decode themselves.
func (c *Client) do(ctx context.Context, method, url, token string, body any, out any) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, "Bearer "+token)
	}
	requestID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "url", url, "request_id", requestID, "err", err)
		return nil, fmt.Errorf("%s %s: %w", method, url, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	c.log.Debug(ctx, "request finished",
		"method", method, "url", url, "status", resp.StatusCode,
		"request_id", requestID, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: errorMessage(data, resp.StatusCode)}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return nil, fmt.Errorf("decode response: %w", err)
		}
	}
	return data, nil
}

// errorMessage extracts a displayable message from an error response body.
func errorMessage(body []byte, statusCode int) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	if text := http.StatusText(statusCode); text != "" {
		return text
	}
	return common.ErrRequestFailed.Error()
}
