package testutil

import (
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/F2fX4553/sibnav5-pro/internal/docs/httpserver"
	"github.com/F2fX4553/sibnav5-pro/internal/docs/pages"
	"github.com/F2fX4553/sibnav5-pro/internal/docs/router"
	"github.com/F2fX4553/sibnav5-pro/internal/platform/observability"
)

// ServerOption customises the HTTP server configuration for tests.
type ServerOption func(*serverSetup)

type serverSetup struct {
	cfg      httpserver.Config
	registry *pages.Registry
}

// WithBasePath sets a custom base path for the documentation routes.
func WithBasePath(path string) ServerOption {
	return func(s *serverSetup) {
		s.cfg.BasePath = path
	}
}

// WithRegistry serves reg instead of the built-in pages.
func WithRegistry(reg *pages.Registry) ServerOption {
	return func(s *serverSetup) {
		s.registry = reg
	}
}

// WithLogger routes server logs to logger.
func WithLogger(logger *zap.Logger) ServerOption {
	return func(s *serverSetup) {
		s.cfg.Logger = logger
	}
}

// WithMetrics records page views on metrics.
func WithMetrics(metrics *observability.PageMetrics) ServerOption {
	return func(s *serverSetup) {
		s.cfg.Metrics = metrics
	}
}

// WithEnvironment sets the deployment environment label.
func WithEnvironment(env string) ServerOption {
	return func(s *serverSetup) {
		s.cfg.Environment = env
	}
}

// NewServer constructs an httptest server running the documentation HTTP stack with sensible defaults.
func NewServer(t testing.TB, opts ...ServerOption) *httptest.Server {
	t.Helper()

	setup := serverSetup{
		cfg: httpserver.Config{
			Address:     ":0",
			BasePath:    "/",
			SiteTitle:   "Sibna Protocol Docs",
			Lang:        "en",
			Environment: "production",
		},
		registry: pages.Builtin(),
	}
	for _, opt := range opts {
		opt(&setup)
	}
	setup.cfg.Router = router.New(setup.registry, setup.cfg.BasePath)

	srv := httpserver.New(setup.cfg)
	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)
	return ts
}
