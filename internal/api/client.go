// Package api is the HTTP client for the TJ-Track REST API. It owns the
// transport concerns only: URL building, JSON codec, bearer tokens and error
// classification. Navigation and caching decisions belong to the callers.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultBaseURL matches the local development backend.
const DefaultBaseURL = "http://localhost:8080/api/v1.0"

type tokenKey struct{}

// WithToken returns a context carrying the bearer token to attach to
// requests. An empty token means the request goes out unauthenticated.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

func tokenFromContext(ctx context.Context) string {
	if t, ok := ctx.Value(tokenKey{}).(string); ok {
		return t
	}
	return ""
}

// Client talks to the TJ-Track backend.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.SugaredLogger
}

// New creates a client for the given base URL (no trailing slash needed).
func New(baseURL string, log *zap.SugaredLogger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		log:     log,
	}
}

// WithTimeout overrides the per-request timeout and returns the client.
func (c *Client) WithTimeout(d time.Duration) *Client {
	if d > 0 {
		c.http.Timeout = d
	}
	return c
}

// errorBody is the error envelope most endpoints return on failure.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// do performs one round trip. body is JSON-encoded when non-nil, out is
// JSON-decoded on 2xx when non-nil. Failures come back as *Error.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := tokenFromContext(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warnw("api call failed", "method", method, "path", path, "err", err)
		return &Error{Kind: KindNetwork, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	}

	apiErr := &Error{Status: resp.StatusCode}
	var eb errorBody
	if b, rerr := io.ReadAll(io.LimitReader(resp.Body, 1<<16)); rerr == nil && len(b) > 0 {
		if json.Unmarshal(b, &eb) == nil {
			apiErr.Message = eb.Message
			if apiErr.Message == "" {
				apiErr.Message = eb.Error
			}
		} else {
			apiErr.Message = strings.TrimSpace(string(b))
		}
	}
	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		apiErr.Kind = KindUnauthorized
	case resp.StatusCode == http.StatusBadRequest ||
		resp.StatusCode == http.StatusUnprocessableEntity ||
		resp.StatusCode == http.StatusConflict:
		apiErr.Kind = KindValidation
	case resp.StatusCode == http.StatusNotFound:
		apiErr.Kind = KindNotFound
	default:
		apiErr.Kind = KindServer
	}
	c.log.Warnw("api error", "method", method, "path", path, "status", resp.StatusCode, "kind", apiErr.Kind)
	return apiErr
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, query url.Values, body, out any) error {
	return c.do(ctx, http.MethodPost, path, query, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string, body any) error {
	return c.do(ctx, http.MethodDelete, path, nil, body, nil)
}
