package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/classconnect/classconnect-go/internal/pkg/apperrors"
	"github.com/classconnect/classconnect-go/internal/pkg/auth"
	"github.com/classconnect/classconnect-go/internal/pkg/logger"
)

// SessionProvider returns the current session, or nil before login. The
// provider indirection lets one Client outlive login/logout cycles.
type SessionProvider func() *auth.Session

// Client issues authenticated JSON and multipart requests against one
// backend service. All failures come back as *apperrors.APIError so call
// sites can show APIError.Error() directly.
type Client struct {
	baseURL         string
	httpClient      *http.Client
	session         SessionProvider
	identityHeaders bool
	logger          zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithSession attaches a session provider; when it returns a non-nil
// session every request carries the bearer token.
func WithSession(provider SessionProvider) Option {
	return func(c *Client) {
		c.session = provider
	}
}

// WithTimeout overrides the default request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithIdentityHeaders also sends x-user-id and x-user-email on every
// request. The course service requires these in addition to the bearer
// token for its upload endpoints.
func WithIdentityHeaders() Option {
	return func(c *Client) {
		c.identityHeaders = true
	}
}

// WithHTTPClient substitutes the underlying http.Client, used by tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a Client for the service rooted at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     logger.With("httpclient"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get issues a GET and decodes the JSON response into out (ignored if nil).
func (c *Client) Get(ctx context.Context, path string, out interface{}) error {
	return c.Do(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.Do(ctx, http.MethodPost, path, body, out)
}

// Put issues a PUT with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out interface{}) error {
	return c.Do(ctx, http.MethodPut, path, body, out)
}

// Patch issues a PATCH with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body, out interface{}) error {
	return c.Do(ctx, http.MethodPatch, path, body, out)
}

// Delete issues a DELETE. Query parameters, when needed (vote removal),
// are part of path.
func (c *Client) Delete(ctx context.Context, path string, out interface{}) error {
	return c.Do(ctx, http.MethodDelete, path, nil, out)
}

// Do performs a JSON request. body is JSON-encoded when non-nil; out is
// filled from the response body when non-nil and the call succeeds.
func (c *Client) Do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

// send finishes a prepared request: auth headers, request ID, dispatch and
// response decoding. Shared by the JSON and multipart paths.
func (c *Client) send(req *http.Request, out interface{}) error {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.New().String())

	if c.session != nil {
		if sess := c.session(); sess != nil {
			req.Header.Set("Authorization", "Bearer "+sess.Token)
			if c.identityHeaders {
				req.Header.Set("x-user-id", sess.UserID)
				req.Header.Set("x-user-email", sess.Email)
			}
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn().Err(err).
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Msg("Request failed without a response")
		if req.Context().Err() == context.DeadlineExceeded {
			return &apperrors.APIError{Err: apperrors.ErrTimeout, Message: apperrors.ErrTimeout.Error()}
		}
		return apperrors.NewUnreachableError(err)
	}
	defer resp.Body.Close()

	c.logger.Debug().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("Request completed")

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.NewUnreachableError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apperrors.FromStatus(resp.StatusCode, extractMessage(payload))
	}

	if out != nil && len(payload) > 0 {
		if err := json.Unmarshal(payload, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// errorBody covers the shapes the backends use for error payloads.
type errorBody struct {
	Message string `json:"message"`
	Detail  string `json:"detail"`
	Error   string `json:"error"`
}

// extractMessage pulls the server-supplied error text out of an error
// response body. Empty return means "use the generic fallback".
func extractMessage(payload []byte) string {
	if len(payload) == 0 {
		return ""
	}
	var body errorBody
	if err := json.Unmarshal(payload, &body); err != nil {
		return ""
	}
	switch {
	case body.Message != "":
		return body.Message
	case body.Detail != "":
		return body.Detail
	case body.Error != "":
		return body.Error
	}
	return ""
}
