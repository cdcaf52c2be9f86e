package httpclient

import (
	"log/slog"
	"net/http"
	"time"
)

// Config holds transport configuration.
type Config struct {
	Timeout time.Duration
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Timeout: 30 * time.Second,
	}
}

// Client wraps http.Client with request logging. Every request is a single
// attempt: failures surface to the caller immediately, with no retry and no
// backoff, so stale results are never served from a half-failed exchange.
type Client struct {
	http   *http.Client
	logger *slog.Logger
}

// New creates a new Client with a default http.Client.
func New(cfg Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		http: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// NewWithHTTPClient creates a Client with a custom http.Client (e.g. for test transports).
func NewWithHTTPClient(httpClient *http.Client, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		http:   httpClient,
		logger: logger,
	}
}

// Do executes an HTTP request once and returns whatever came back.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		if req.Context().Err() != nil {
			return nil, req.Context().Err()
		}
		c.logger.Debug("request failed",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Debug("request completed",
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		slog.Int("status", resp.StatusCode),
		slog.String("duration", time.Since(start).String()),
	)
	return resp, nil
}
