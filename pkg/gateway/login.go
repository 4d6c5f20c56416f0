package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const loginPath = "auth/login"

// Credentials are posted to the backend login endpoint.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login exchanges credentials for a bearer token. The backend answers either
// {"token": "..."} or the bare token as text; both are accepted.
func (c *Client) Login(ctx context.Context, creds Credentials) (Response[string], error) {
	b, err := json.Marshal(creds)
	if err != nil {
		return Response[string]{}, fmt.Errorf("gateway: encode credentials: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+loginPath, bytes.NewReader(b))
	if err != nil {
		return Response[string]{}, fmt.Errorf("gateway: build login: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Response[string]{}, fmt.Errorf("gateway: login: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return Response[string]{}, fmt.Errorf("gateway: read login: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return Response[string]{Status: resp.StatusCode, StatusText: statusText(resp.StatusCode, raw)}, nil
	}

	token := parseToken(raw)
	if token == "" {
		return Response[string]{Status: resp.StatusCode}, fmt.Errorf("%w: login returned no token", ErrDecode)
	}
	return Response[string]{Data: token, Status: resp.StatusCode, StatusText: http.StatusText(resp.StatusCode)}, nil
}

func parseToken(raw []byte) string {
	var body struct {
		Token string `json:"token"`
	}
	if json.Unmarshal(raw, &body) == nil {
		return body.Token
	}
	return strings.Trim(strings.TrimSpace(string(raw)), `"`)
}
