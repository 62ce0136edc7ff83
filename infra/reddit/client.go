package reddit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"github.com/CrestNiraj12/redcatch/domain"
)

const (
	// DefaultBaseURL is reddit's public JSON host.
	DefaultBaseURL   = "https://www.reddit.com"
	DefaultUserAgent = "redcatch/dev (terminal reddit viewer)"

	maxBodyBytes   = 8 << 20
	errBodyExcerpt = 200
)

// Client is a thin HTTP wrapper for reddit's public JSON endpoints.
// It handles base URL construction, the User-Agent header, throttling, and
// collapses identical GETs that are in flight at the same time.
type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
	limiter   *rate.Limiter
	group     singleflight.Group
	logger    *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// WithUserAgent sets the User-Agent sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua = strings.TrimSpace(ua); ua != "" {
			c.userAgent = ua
		}
	}
}

// WithRateLimit allows one request per interval with the given burst.
// A non-positive interval disables throttling.
func WithRateLimit(interval time.Duration, burst int) Option {
	return func(c *Client) {
		if interval <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		c.limiter = rate.NewLimiter(rate.Every(interval), max(burst, 1))
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient creates a reddit API client.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: DefaultUserAgent,
		http:      &http.Client{Timeout: 30 * time.Second},
		limiter:   rate.NewLimiter(rate.Every(time.Second), 3),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get performs a GET request and returns the response body.
// Concurrent calls for the same URL share one request, which runs under the
// context of the caller that started it. When that caller goes away the
// flight is forgotten, and callers still waiting on it start their own.
func (c *Client) Get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	for attempt := 0; ; attempt++ {
		ch := c.group.DoChan(target, func() (any, error) {
			return c.do(ctx, path, target)
		})
		select {
		case <-ctx.Done():
			c.group.Forget(target)
			return nil, &domain.RequestError{Method: http.MethodGet, Path: path, Err: ctx.Err()}
		case res := <-ch:
			if res.Err == nil {
				return res.Val.([]byte), nil
			}
			if attempt == 0 && res.Shared && ctx.Err() == nil && errors.Is(res.Err, context.Canceled) {
				// Cancelled on behalf of another caller.
				c.group.Forget(target)
				continue
			}
			return nil, res.Err
		}
	}
}

func (c *Client) do(ctx context.Context, path, target string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &domain.RequestError{Method: http.MethodGet, Path: path, Err: err}
	}

	reqID := uuid.NewString()
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("reddit request failed",
			"request_id", reqID,
			"path", path,
			"duration", time.Since(start),
			"err", err,
		)
		return nil, &domain.RequestError{Method: http.MethodGet, Path: path, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &domain.RequestError{
			Method: http.MethodGet,
			Path:   path,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("reading response: %w", err),
		}
	}

	c.logger.Debug("reddit request",
		"request_id", reqID,
		"path", path,
		"status", resp.StatusCode,
		"bytes", len(data),
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("reddit request rejected",
			"request_id", reqID,
			"path", path,
			"status", resp.StatusCode,
		)
		return nil, &domain.RequestError{
			Method: http.MethodGet,
			Path:   path,
			Status: resp.StatusCode,
			Body:   excerpt(string(data), errBodyExcerpt),
		}
	}

	return data, nil
}

func excerpt(s string, n int) string {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
