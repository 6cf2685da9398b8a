// ABOUTME: Standard HTTP client implementation for upstream icon API calls
// ABOUTME: Issues exactly one request per call with an optional overall timeout

package standard

import (
	"context"
	"io"
	"net/http"
	"time"

	"iconify-proxy-api/core/interfaces"
)

const userAgent = "IconifyProxy/1.0"

// Option configures a StandardHTTPClient
type Option func(*StandardHTTPClient)

// WithTransport sets the round tripper used for outbound requests
func WithTransport(transport http.RoundTripper) Option {
	return func(c *StandardHTTPClient) {
		c.client.Transport = transport
	}
}

// WithUserAgent overrides the User-Agent sent upstream
func WithUserAgent(ua string) Option {
	return func(c *StandardHTTPClient) {
		c.userAgent = ua
	}
}

// StandardHTTPClient implements the HTTPClient interface using standard library
type StandardHTTPClient struct {
	client    *http.Client
	userAgent string
}

// NewStandardHTTPClient creates a new HTTP client with the specified timeout.
// A zero timeout leaves requests bounded only by their context and the transport.
func NewStandardHTTPClient(timeout time.Duration, opts ...Option) *StandardHTTPClient {
	c := &StandardHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get performs an HTTP GET request. It never retries.
func (c *StandardHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
	}, nil
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}
