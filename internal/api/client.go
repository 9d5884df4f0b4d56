// Package api implements the MoneyWise REST client. A single Client is the
// chokepoint for every outbound call: it injects the bearer token, wraps
// requests in the common response envelope contract, and converts HTTP 401
// into a session-invalidated signal without touching storage or navigation
// itself.
package api

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
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DefaultBaseURL is the production API endpoint, used when no override is
// configured.
const DefaultBaseURL = "https://api.moneywise.app"

// ErrUnauthorized is reported (via errors.Is) for any call that came back
// with HTTP 401. The UnauthorizedHook has already fired by the time the
// caller sees it.
var ErrUnauthorized = errors.New("session invalid")

// TokenSource supplies the current access token. An empty token means the
// request goes out without credentials and the server is left to reject it.
type TokenSource interface {
	Token() string
}

// APIError carries the server-supplied failure detail from an envelope or a
// non-2xx status.
type APIError struct {
	StatusCode int
	Message    string
	Errors     []string
}

func (e *APIError) Error() string {
	if len(e.Errors) > 0 {
		return fmt.Sprintf("api: %s (%s)", e.Message, strings.Join(e.Errors, "; "))
	}
	return fmt.Sprintf("api: %s", e.Message)
}

func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return nil
}

// envelope is the wire shape of every business response.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Errors  []string        `json:"errors,omitempty"`
}

type Client struct {
	baseURL      string
	httpc        *http.Client
	tokens       TokenSource
	unauthorized func()
	log          *logrus.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

// WithLogger attaches a logger for per-call debug records.
func WithLogger(log *logrus.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithUnauthorizedHook registers the single callback invoked whenever any
// call receives HTTP 401. The hook owns session-invalidation policy; the
// client only reports the event.
func WithUnauthorizedHook(fn func()) Option {
	return func(c *Client) { c.unauthorized = fn }
}

func New(baseURL string, tokens TokenSource, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   http.DefaultClient,
		tokens:  tokens,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = logrus.New()
		c.log.SetOutput(io.Discard)
	}

	return c
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	return req, nil
}

// do sends one request and decodes the envelope into out (when non-nil).
// Absent or null data is left untouched in out, so list callers can default
// to an empty slice.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return err
	}

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.log.WithFields(logrus.Fields{
		"method":      method,
		"path":        path,
		"status":      resp.StatusCode,
		"duration_ms": time.Since(start).Milliseconds(),
		"request_id":  req.Header.Get("X-Request-ID"),
	}).Debug("api call")

	if resp.StatusCode == http.StatusUnauthorized {
		c.fireUnauthorized()
		return &APIError{StatusCode: resp.StatusCode, Message: "session invalid"}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: read response: %w", method, path, err)
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		if decodeErr == nil && env.Message != "" {
			apiErr.Message = env.Message
			apiErr.Errors = env.Errors
		}
		return apiErr
	}

	if decodeErr != nil {
		return fmt.Errorf("%s %s: decode envelope: %w", method, path, decodeErr)
	}

	// The envelope can report failure on a 2xx status; data must not be
	// trusted in that case even if present.
	if !env.Success {
		message := env.Message
		if message == "" {
			message = "request failed"
		}
		return &APIError{StatusCode: resp.StatusCode, Message: message, Errors: env.Errors}
	}

	if out != nil && len(env.Data) > 0 && !bytes.Equal(env.Data, []byte("null")) {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("%s %s: decode data: %w", method, path, err)
		}
	}

	return nil
}

// download fetches a binary payload (report exports). The 401 policy is the
// same as for envelope calls; other failures attempt to surface the
// envelope message.
func (c *Client) download(ctx context.Context, path string, query url.Values) ([]byte, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.fireUnauthorized()
		return nil, &APIError{StatusCode: resp.StatusCode, Message: "session invalid"}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("GET %s: read response: %w", path, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var env envelope
		if json.Unmarshal(raw, &env) == nil && env.Message != "" {
			apiErr.Message = env.Message
			apiErr.Errors = env.Errors
		}
		return nil, apiErr
	}

	return raw, nil
}

func (c *Client) fireUnauthorized() {
	if c.unauthorized != nil {
		c.unauthorized()
	}
}
