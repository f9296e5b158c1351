package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jamesprial/jianshu-mcp/internal/config"
)

const (
	defaultTimeout  = 30 * time.Second
	requestIDHeader = "X-Request-Id"
)

// HTTPClient is a concrete implementation of the Client interface that sends
// GraphQL requests as JSON over HTTP POST.
type HTTPClient struct {
	httpClient *http.Client
	graphqlURL string
	headers    map[string]string
	log        *logrus.Entry
}

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithLogger sets the logger used for per-request debug output.
func WithLogger(log *logrus.Entry) Option {
	return func(c *HTTPClient) {
		if log != nil {
			c.log = log
		}
	}
}

// WithHTTPClient replaces the underlying *http.Client. The configured timeout
// is not applied to a replaced client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewHTTPClient constructs an HTTPClient from the provided GraphQLConfig.
// It returns an error if cfg.URL is empty. When cfg.Timeout is zero or
// negative, a default timeout of 30 seconds is used.
func NewHTTPClient(cfg config.GraphQLConfig, opts ...Option) (*HTTPClient, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("graphql: URL is required")
	}

	timeout := time.Duration(cfg.Timeout) * time.Second
	if cfg.Timeout <= 0 {
		timeout = defaultTimeout
	}

	headers := make(map[string]string, len(cfg.Headers))
	for k, v := range cfg.Headers {
		headers[k] = v
	}

	c := &HTTPClient{
		httpClient: &http.Client{Timeout: timeout},
		graphqlURL: normalizeURL(cfg.URL),
		headers:    headers,
		log:        logrus.NewEntry(logrus.StandardLogger()),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// URL returns the normalized GraphQL endpoint.
func (c *HTTPClient) URL() string {
	return c.graphqlURL
}

// normalizeURL trims any trailing slash from rawURL and appends /graphql if
// the path does not already end with that suffix.
func normalizeURL(rawURL string) string {
	u := strings.TrimRight(rawURL, "/")
	if !strings.HasSuffix(u, "/graphql") {
		u += "/graphql"
	}
	return u
}

// graphqlRequest is the JSON body shape for a GraphQL HTTP request.
type graphqlRequest struct {
	Query         string `json:"query"`
	OperationName string `json:"operationName,omitempty"`
	Variables     any    `json:"variables,omitempty"`
}

// Execute sends req to the configured endpoint and returns the decoded
// response. GraphQL errors in the response body are returned inside the
// Response, not as an error.
//
// Execute returns an error if:
//   - req is nil or carries Upload variables
//   - the HTTP request cannot be created or sent
//   - the server responds with a non-2xx status code
//   - the response body cannot be decoded as JSON
func (c *HTTPClient) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, fmt.Errorf("graphql: nil request")
	}
	if req.Uploads {
		return nil, ErrUploadUnsupported
	}

	bodyBytes, err := json.Marshal(graphqlRequest{
		Query:         req.Query,
		OperationName: req.OperationName,
		Variables:     req.Variables,
	})
	if err != nil {
		return nil, fmt.Errorf("graphql: marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.graphqlURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("graphql: create request: %w", err)
	}
	requestID := uuid.NewString()
	for k, v := range c.headers {
		httpReq.Header.Set(k, v)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(requestIDHeader, requestID)

	log := c.log.WithFields(logrus.Fields{
		"operation":  req.OperationName,
		"kind":       string(req.Kind),
		"request_id": requestID,
	})

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		log.WithError(err).Debug("graphql request failed")
		return nil, fmt.Errorf("graphql: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, fmt.Errorf("graphql: authentication failed (HTTP 401)")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("graphql: unexpected HTTP status %d", resp.StatusCode)
	}

	var gqlResp Response
	if err := json.NewDecoder(resp.Body).Decode(&gqlResp); err != nil {
		return nil, fmt.Errorf("graphql: decode response: %w", err)
	}

	log.WithFields(logrus.Fields{
		"duration": time.Since(start),
		"errors":   len(gqlResp.Errors),
	}).Debug("graphql request completed")

	return &gqlResp, nil
}
