package exa

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/alan-mat/exago/internal/http"
	"github.com/alan-mat/exago/internal/safejson"
	"github.com/google/uuid"
)

const (
	Endpoint   = "https://api.exa.ai"
	SearchPath = "/search"
)

// Client is a thin wrapper around the Exa search API. It holds the api key
// for its lifetime and nothing else mutable; calls are independent,
// synchronous and never retried.
type Client struct {
	client http.Client
	logger *slog.Logger
}

type clientConfig struct {
	endpoint string
	timeout  time.Duration
	logger   *slog.Logger
}

type Option func(*clientConfig)

func WithEndpoint(endpoint string) Option {
	return func(c *clientConfig) {
		c.endpoint = endpoint
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithLogger enables diagnostic snapshots of each request and response on
// the given logger. Logging never changes what a call returns.
func WithLogger(logger *slog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrInvalidConfig{Reason: "api key must not be empty"}
	}

	cfg := clientConfig{
		endpoint: Endpoint,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	copts := []http.ClientOption{http.WithApiKey(apiKey)}
	if cfg.timeout > 0 {
		copts = append(copts, http.WithTimeout(cfg.timeout))
	}

	c := &Client{
		client: http.NewClient(cfg.endpoint, copts...),
		logger: cfg.logger,
	}
	return c, nil
}

// SearchAndContents performs a single search request and returns the decoded
// response body verbatim. A non-200 status yields an ErrStatus carrying the
// status code and raw body; transport failures propagate unmodified.
func (c *Client) SearchAndContents(ctx context.Context, query string, opts SearchOptions) (map[string]any, error) {
	if query == "" {
		return nil, fmt.Errorf("query must not be empty")
	}

	payload := BuildSearchPayload(query, opts)

	id := uuid.NewString()
	c.log("search request", "id", id, "query", query, "payload", safejson.String(payload))

	resp, err := c.client.Request(ctx, http.MethodPost, SearchPath, payload)
	if err != nil {
		c.log("search transport failure", "id", id, "err", err)
		return nil, err
	}

	if resp.StatusCode != 200 {
		serr := ErrStatus{StatusCode: resp.StatusCode, Body: string(resp.Body)}
		c.log("search request rejected", "id", id, "status", resp.StatusCode, "err", serr.Error())
		return nil, serr
	}

	var result map[string]any
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		c.log("search response unreadable", "id", id, "err", err)
		return nil, err
	}

	c.log("search response", "id", id, "status", resp.StatusCode, "body", safejson.String(result))
	return result, nil
}

func (c *Client) log(msg string, args ...any) {
	if c.logger == nil {
		return
	}
	c.logger.Debug(msg, args...)
}
