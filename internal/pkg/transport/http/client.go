// Package http builds the retrying HTTP client the JSON-RPC transport runs on.
// Retries are reported through the application logger; retryablehttp's own
// logger is disabled.
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gabapcia/blockrelay/internal/pkg/logger"

	"github.com/hashicorp/go-retryablehttp"
)

type config struct {
	timeout      time.Duration
	retryWaitMin time.Duration
	retryWaitMax time.Duration
	retryMax     int
	headers      http.Header
}

// Option configures the client.
type Option func(*config)

// logRetry is installed as the RequestLogHook; attempt 0 is the first try and
// is not logged. Only the host is logged, never userinfo or headers.
func logRetry(_ retryablehttp.Logger, req *http.Request, attempt int) {
	if attempt == 0 {
		return
	}

	ctx := req.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger.Warn(ctx, "retrying node request",
		"http.method", req.Method,
		"http.host", req.URL.Host,
		"http.attempt", attempt,
	)
}

// headerTransport sets fixed headers, such as provider API keys, on every request.
type headerTransport struct {
	base    http.RoundTripper
	headers http.Header
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	for key, values := range t.headers {
		req.Header.Del(key)
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	return t.base.RoundTrip(req)
}

// NewClient returns a retryablehttp.Client. Defaults:
//
//   - timeout:      5 seconds per attempt
//   - retryWaitMin: 1 second
//   - retryWaitMax: 5 seconds
//   - retryMax:     2 retries
func NewClient(opts ...Option) *retryablehttp.Client {
	cfg := config{
		timeout:      5 * time.Second,
		retryWaitMin: 1 * time.Second,
		retryWaitMax: 5 * time.Second,
		retryMax:     2,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	client := retryablehttp.NewClient()
	client.Logger = nil
	client.RequestLogHook = logRetry
	client.HTTPClient.Timeout = cfg.timeout
	client.RetryWaitMin = cfg.retryWaitMin
	client.RetryWaitMax = cfg.retryWaitMax
	client.RetryMax = cfg.retryMax

	if len(cfg.headers) > 0 {
		base := client.HTTPClient.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		client.HTTPClient.Transport = &headerTransport{base: base, headers: cfg.headers}
	}

	return client
}

func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

func WithRetryWaitMin(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMin = d
	}
}

func WithRetryWaitMax(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMax = d
	}
}

// WithRetryMax sets how many times a failed request is retried.
func WithRetryMax(n int) Option {
	return func(c *config) {
		c.retryMax = n
	}
}

// WithHeader adds a header sent with every request. Repeated calls with the
// same key accumulate values.
func WithHeader(key, value string) Option {
	return func(c *config) {
		if c.headers == nil {
			c.headers = make(http.Header)
		}
		c.headers.Add(key, value)
	}
}
