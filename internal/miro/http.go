package miro

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/primrose-mcp/primrose-mcp-miro/internal/logging"
)

// DefaultBaseURL is the production Miro REST API v2 root.
const DefaultBaseURL = "https://api.miro.com/v2"

// DefaultTimeout bounds every outbound request. The remote API has no
// long-running endpoints, so a generous single-call timeout is enough.
const DefaultTimeout = 30 * time.Second

// defaultRetryAfter is used when a 429 response carries no parseable
// Retry-After header.
const defaultRetryAfter = 60

// maxErrorBodyBytes caps how much of an error response body is read when
// extracting a message.
const maxErrorBodyBytes = 64 * 1024

// APIMetricsRecorder receives one observation per outbound API round trip.
// The endpoint label is the resource collection the call targeted, never a
// full path, so metric cardinality stays bounded.
type APIMetricsRecorder interface {
	RecordAPIRequest(ctx context.Context, method, endpoint, status string, duration time.Duration)
}

// ClientOption customizes the HTTP client implementation.
type ClientOption func(*httpClient)

// WithBaseURL overrides the API root. Used for tests and on-prem gateways.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *httpClient) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *httpClient) {
		if hc != nil {
			c.hc = hc
		}
	}
}

// WithTimeout overrides the per-request timeout on the underlying transport.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *httpClient) {
		if d > 0 {
			c.hc.Timeout = d
		}
	}
}

// WithLogger sets the structured logger used for request debug logging.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *httpClient) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMetrics sets the recorder that observes every outbound API request.
func WithMetrics(rec APIMetricsRecorder) ClientOption {
	return func(c *httpClient) {
		if rec != nil {
			c.metrics = rec
		}
	}
}

// httpClient implements Client against the Miro REST API.
// One instance carries exactly one bearer token and serves one request's
// tool invocations; it holds no mutable state.
type httpClient struct {
	baseURL string
	token   string
	hc      *http.Client
	logger  *slog.Logger
	metrics APIMetricsRecorder
}

// New creates a Client bound to the given bearer token.
// An empty token is accepted at construction time; every call on such a
// client fails closed with *AuthError before any network I/O.
func New(token string, opts ...ClientOption) Client {
	c := &httpClient{
		baseURL: DefaultBaseURL,
		token:   token,
		hc:      &http.Client{Timeout: DefaultTimeout},
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger.Debug("miro client created",
		logging.Token(token),
		slog.String("base_url", c.baseURL))
	return c
}

// do performs a single HTTP round trip. body (when non-nil) is JSON-encoded;
// out (when non-nil) receives the decoded response body. A 204 or empty body
// leaves out untouched.
func (c *httpClient) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if c.token == "" {
		return &AuthError{Message: "no access token available"}
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		c.recordRequest(ctx, method, path, "error", time.Since(start))
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	duration := time.Since(start)
	c.recordRequest(ctx, method, path, strconv.Itoa(resp.StatusCode), duration)
	c.logger.Debug("miro API call",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", duration))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return normalizeError(resp)
	}

	// 204 and other empty bodies are valid void results.
	if resp.StatusCode == http.StatusNoContent || out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if err == io.EOF {
			return nil
		}
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func (c *httpClient) recordRequest(ctx context.Context, method, path, status string, duration time.Duration) {
	if c.metrics == nil {
		return
	}
	c.metrics.RecordAPIRequest(ctx, method, endpointLabel(path), status, duration)
}

// endpointLabel reduces a request path to the resource collection it targets.
// Path segments alternate collection and identifier ("/boards/{id}/items/{id}"),
// so the label is the last segment at an even depth.
func endpointLabel(path string) string {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	label := segments[0]
	for i := 2; i < len(segments); i += 2 {
		label = segments[i]
	}
	return label
}

// normalizeError maps a non-2xx response to the package error taxonomy.
func normalizeError(resp *http.Response) error {
	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return &RateLimitError{RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"))}
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return &AuthError{Message: fmt.Sprintf("authentication failed (status %d)", resp.StatusCode)}
	default:
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    extractErrorMessage(resp),
		}
	}
}

// parseRetryAfter reads a Retry-After header value in seconds, falling back
// to defaultRetryAfter when absent or unparseable.
func parseRetryAfter(value string) int {
	seconds, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || seconds <= 0 {
		return defaultRetryAfter
	}
	return seconds
}

// extractErrorMessage pulls a human-readable message out of a JSON error
// body, looking for the "message" and "error" fields the remote API uses.
func extractErrorMessage(resp *http.Response) string {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	if err == nil && len(raw) > 0 {
		var body struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		if jsonErr := json.Unmarshal(raw, &body); jsonErr == nil {
			if body.Message != "" {
				return body.Message
			}
			if body.Error != "" {
				return body.Error
			}
		}
	}
	return fmt.Sprintf("API error: %d", resp.StatusCode)
}

// get performs a GET and decodes the response into out.
func (c *httpClient) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// post performs a POST with a JSON body.
func (c *httpClient) post(ctx context.Context, path string, query url.Values, body, out any) error {
	return c.do(ctx, http.MethodPost, path, query, body, out)
}

// patch performs a PATCH with a JSON body.
func (c *httpClient) patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out)
}

// put performs a PUT with a JSON body.
func (c *httpClient) put(ctx context.Context, path string, query url.Values, body, out any) error {
	return c.do(ctx, http.MethodPut, path, query, body, out)
}

// delete performs a DELETE.
func (c *httpClient) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// listPage fetches one page of a list endpoint and fixes up the Size
// invariant for servers that omit it.
func listPage[T any](ctx context.Context, c *httpClient, path string, query url.Values) (*Page[T], error) {
	var page Page[T]
	if err := c.get(ctx, path, query, &page); err != nil {
		return nil, err
	}
	if page.Data == nil {
		page.Data = []T{}
	}
	page.Size = len(page.Data)
	return &page, nil
}

func boardPath(boardID string, parts ...string) string {
	p := "/boards/" + url.PathEscape(boardID)
	for _, part := range parts {
		p += "/" + part
	}
	return p
}
