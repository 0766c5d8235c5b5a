// Package http is the transport under the TMDB client: resty over an
// oauth2 bearer-token round tripper.
package http

import (
	"context"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/oauth2"
)

const (
	defaultTimeout   = 15 * time.Second
	defaultUserAgent = "reel/1.0"
	maxLoggedBody    = 1000
)

// ClientConfig holds configuration for the HTTP client
type ClientConfig struct {
	Timeout time.Duration
	// MaxRetries is zero by default: catalog calls are single-shot.
	MaxRetries int
	UserAgent  string
	// Token is sent as "Authorization: Bearer <token>" on every request.
	Token  string
	Debug  bool
	Logger *slog.Logger
}

// DefaultClientConfig returns the settings used when none are given.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		Timeout:   defaultTimeout,
		UserAgent: defaultUserAgent,
	}
}

// StatusError is returned when the server answers with a non-2xx status.
type StatusError struct {
	URL        string
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", e.StatusCode, e.URL)
}

// Client issues JSON GET requests.
type Client struct {
	resty   *resty.Client
	retries int
	timeout time.Duration
	logger  *slog.Logger
}

// NewClient builds a client from config, filling in defaults for zero values.
func NewClient(config ClientConfig) *Client {
	if config.Timeout <= 0 {
		config.Timeout = defaultTimeout
	}
	if config.UserAgent == "" {
		config.UserAgent = defaultUserAgent
	}
	config.MaxRetries = max(0, config.MaxRetries)

	// the bearer header lives in the transport and never reaches the logs
	transport := &nethttp.Client{}
	if config.Token != "" {
		transport = oauth2.NewClient(context.Background(), oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: config.Token,
			TokenType:   "Bearer",
		}))
	}

	r := resty.NewWithClient(transport).
		SetTimeout(config.Timeout).
		SetHeader("User-Agent", config.UserAgent).
		SetHeader("Accept", "application/json")

	if config.MaxRetries > 0 {
		r.SetRetryCount(config.MaxRetries).
			SetRetryWaitTime(500 * time.Millisecond).
			SetRetryMaxWaitTime(2 * time.Second).
			AddRetryCondition(retryable)
	}

	c := &Client{
		resty:   r,
		retries: config.MaxRetries,
		timeout: config.Timeout,
		logger:  config.Logger,
	}
	if config.Debug && c.logger != nil {
		r.OnAfterResponse(c.trace)
	}
	return c
}

// retryable retries transport failures, rate limiting and 5xx answers.
func retryable(r *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	code := r.StatusCode()
	return code == nethttp.StatusTooManyRequests || code >= nethttp.StatusInternalServerError
}

// Get fetches url with params as the query string. A non-2xx answer is
// returned as *StatusError together with the response.
func (c *Client) Get(ctx context.Context, url string, params map[string]string) (*resty.Response, error) {
	resp, err := c.resty.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", url, err)
	}
	if !resp.IsSuccess() {
		return resp, &StatusError{URL: url, StatusCode: resp.StatusCode(), Body: resp.Body()}
	}
	return resp, nil
}

// GetTimeout returns the per-request timeout.
func (c *Client) GetTimeout() time.Duration {
	return c.timeout
}

// GetMaxRetries returns how often a failed request is repeated.
func (c *Client) GetMaxRetries() int {
	return c.retries
}

// trace logs each exchange in debug mode.
func (c *Client) trace(_ *resty.Client, r *resty.Response) error {
	body := r.String()
	if len(body) > maxLoggedBody {
		body = body[:maxLoggedBody] + "... (truncated)"
	}
	c.logger.Debug("http exchange",
		"method", r.Request.Method,
		"url", r.Request.URL,
		"query", r.Request.QueryParam.Encode(),
		"status", r.StatusCode(),
		"elapsed", r.Time(),
		"body", body,
	)
	return nil
}
