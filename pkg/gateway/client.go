// Package gateway is the HTTP client for the remote business REST API. Every
// call carries the caller's bearer token and reports the backend's status
// verbatim; interpreting that status is the error classifier's job.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/ghuser/backoffice/pkg/config"
)

const maxResponseBytes = 10 << 20

// ErrDecode is returned when a 200 response body is not the expected shape.
var ErrDecode = errors.New("gateway: undecodable response")

// Response is one backend reply. Status != 200 is a failure regardless of Data.
type Response[T any] struct {
	Data       T
	Status     int
	StatusText string
}

// Client talks to the backend under BACKEND_URL.
type Client struct {
	baseURL string
	http    *http.Client
}

// New builds a Client whose transport is traced with otelhttp and bounded by
// cfg.BackendTimeout.
func New(cfg *config.Config) (*Client, error) {
	return NewWithHTTPClient(cfg.BackendURL, &http.Client{
		Timeout:   cfg.BackendTimeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	})
}

// NewWithHTTPClient builds a Client on an existing http.Client.
func NewWithHTTPClient(baseURL string, hc *http.Client) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("gateway: invalid base URL %q", baseURL)
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: hc}, nil
}

// Ping reports whether the backend answers at all. Any HTTP status counts as
// reachable; only transport failures are errors.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("gateway: build ping: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("gateway: ping: %w", err)
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
	_ = resp.Body.Close()
	return nil
}

// do sends one request. A non-nil error means no usable response exists
// (transport failure or an undecodable 200 body); otherwise status and text
// describe the reply and out is filled only on 200.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) (int, string, error) {
	var reader io.Reader = http.NoBody
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, "", fmt.Errorf("gateway: encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/"+strings.TrimLeft(path, "/"), reader)
	if err != nil {
		return 0, "", fmt.Errorf("gateway: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, "", fmt.Errorf("gateway: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return 0, "", fmt.Errorf("gateway: read %s %s: %w", method, path, err)
	}

	if resp.StatusCode != http.StatusOK {
		return resp.StatusCode, statusText(resp.StatusCode, raw), nil
	}
	if out != nil && len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return resp.StatusCode, "", fmt.Errorf("%w: %s %s: %w", ErrDecode, method, path, err)
		}
	}
	return resp.StatusCode, http.StatusText(resp.StatusCode), nil
}

// statusText prefers the backend's own message over the generic reason phrase.
func statusText(status int, body []byte) string {
	var e struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(body, &e) == nil {
		if e.Message != "" {
			return e.Message
		}
		if e.Error != "" {
			return e.Error
		}
	}
	if t := http.StatusText(status); t != "" {
		return t
	}
	return fmt.Sprintf("unexpected status %d", status)
}
