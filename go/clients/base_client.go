package clients

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

// ErrTransport marks failures that happened before a response was received
// (connection refused, timeout, cancelled context).
var ErrTransport = errors.New("transport error")

// Response is the raw outcome of a request. Non-2xx statuses are not errors at
// this layer; callers assert on StatusCode themselves.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	URL        string
	Duration   time.Duration
}

// ContentType returns the Content-Type header as sent by the server.
func (r *Response) ContentType() string {
	return r.Header.Get("Content-Type")
}

type BaseClient struct {
	baseURL string
	client  *http.Client
	headers map[string]string
	limiter *rate.Limiter
	clock   clockwork.Clock
}

func NewBaseClient(baseURL string) *BaseClient {
	return &BaseClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		headers: make(map[string]string),
		clock:   clockwork.NewRealClock(),
	}
}

func (c *BaseClient) BaseURL() string {
	return c.baseURL
}

func (c *BaseClient) SetHeader(key, value string) {
	c.headers[key] = value
}

func (c *BaseClient) SetTimeout(timeout time.Duration) {
	c.client.Timeout = timeout
}

// SetHTTPClient replaces the underlying transport client, keeping the
// configured timeout when the replacement has none.
func (c *BaseClient) SetHTTPClient(hc *http.Client) {
	if hc.Timeout == 0 {
		hc.Timeout = c.client.Timeout
	}
	c.client = hc
}

// SetRateLimit spaces requests to at most perSecond. Zero or less disables pacing.
func (c *BaseClient) SetRateLimit(perSecond float64) {
	if perSecond <= 0 {
		c.limiter = nil
		return
	}
	c.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
}

// SetClock swaps the clock used to measure request latency.
func (c *BaseClient) SetClock(clock clockwork.Clock) {
	c.clock = clock
}

func (c *BaseClient) Clock() clockwork.Clock {
	return c.clock
}

func (c *BaseClient) buildURL(endpoint string, query url.Values) string {
	u := c.baseURL + "/" + strings.TrimLeft(endpoint, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func (c *BaseClient) MakeRequest(ctx context.Context, method, endpoint string, query url.Values, body io.Reader) (*Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: rate limiter: %w", ErrTransport, err)
		}
	}

	target := c.buildURL(endpoint, query)
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	start := c.clock.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to make request: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response body: %w", ErrTransport, err)
	}
	elapsed := c.clock.Now().Sub(start)

	log.Debug().
		Str("method", method).
		Str("url", target).
		Int("status", resp.StatusCode).
		Int64("duration_ms", elapsed.Milliseconds()).
		Msg("api request")

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       responseBody,
		URL:        target,
		Duration:   elapsed,
	}, nil
}

func (c *BaseClient) Get(ctx context.Context, endpoint string, query url.Values) (*Response, error) {
	return c.MakeRequest(ctx, http.MethodGet, endpoint, query, nil)
}
