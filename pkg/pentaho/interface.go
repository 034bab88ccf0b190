package pentaho

import (
	"context"

	pkgHttp "reporting-srv/pkg/http"
)

// IPentaho renders reports on a remote Pentaho BI server.
// Implementations are safe for concurrent use.
type IPentaho interface {
	GenerateContent(ctx context.Context, req ContentRequest) (*Content, error)
	HealthCheck(ctx context.Context) error
}

// New creates a Pentaho client. client may be nil, a default pkg/http client is used then.
func New(cfg Config, client pkgHttp.IClient) (IPentaho, error) {
	if cfg.URL == "" {
		return nil, ErrURLRequired
	}
	if cfg.SolutionPath == "" {
		cfg.SolutionPath = DefaultSolutionPath
	}
	if client == nil {
		httpCfg := pkgHttp.DefaultConfig()
		if cfg.Timeout > 0 {
			httpCfg.Timeout = cfg.Timeout
		}
		// rendering is not idempotent on every server plugin
		httpCfg.Retries = 0
		client = pkgHttp.NewClient(httpCfg)
	}
	return &implPentaho{cfg: cfg, client: client}, nil
}
