package nui

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// Transport is the request/response boundary to the host
type Transport interface {
	// Call posts payload to the named callback and returns the raw JSON
	// response. The success flag inside the response is left to the caller.
	Call(ctx context.Context, name string, payload interface{}) (json.RawMessage, error)
	// Send posts payload without waiting on the outcome. Failures are logged.
	Send(ctx context.Context, name string, payload interface{})
}

// Client talks to the host's NUI callback endpoint over HTTP
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client posting to baseURL/<callback name>
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: http.DefaultClient,
	}
}

// ResourceURL returns the callback base URL the game client exposes for a resource
func ResourceURL(resource string) string {
	return "https://" + resource
}

// Call implements Transport
func (c *Client) Call(ctx context.Context, name string, payload interface{}) (json.RawMessage, error) {
	if payload == nil {
		payload = struct{}{}
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", name, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/"+name, bytes.NewReader(body))
	if err != nil {
		return nil, &TransportError{Name: name, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient().Do(req)
	if err != nil {
		return nil, &TransportError{Name: name, Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, res.Body)
		return nil, &TransportError{Name: name, StatusCode: res.StatusCode, Err: errors.New(res.Status)}
	}

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &TransportError{Name: name, Err: err}
	}
	if !json.Valid(raw) {
		return nil, &TransportError{Name: name, Err: errors.New("response is not valid JSON")}
	}
	return raw, nil
}

// Send implements Transport
func (c *Client) Send(ctx context.Context, name string, payload interface{}) {
	if _, err := c.Call(ctx, name, payload); err != nil {
		zap.S().Warnw("one-way host callback failed",
			"callback", name,
			"error", err)
	}
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}
