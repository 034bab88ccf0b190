package http

import (
	"context"
	"io"
)

// IClient is an HTTP client with timeout and retry on transport errors and 5xx answers.
// Implementations are safe for concurrent use.
type IClient interface {
	Get(ctx context.Context, url string, headers map[string]string) ([]byte, int, error)
	Post(ctx context.Context, url string, body interface{}, headers map[string]string) ([]byte, int, error)
	Do(ctx context.Context, req Request) (*Response, error)
}

// NewClient creates a new HTTP client.
func NewClient(cfg ClientConfig) IClient {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Retries < 0 {
		cfg.Retries = 0
	}
	return &clientImpl{
		client: defaultHTTPClient(cfg.Timeout),
		config: cfg,
	}
}

// Request describes a raw request sent through Do.
type Request struct {
	Method    string
	URL       string
	Headers   map[string]string
	Body      io.Reader
	BasicAuth *BasicAuth
}
