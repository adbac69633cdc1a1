package httpserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	custommw "github.com/F2fX4553/sibnav5-pro/internal/docs/httpserver/middleware"
	"github.com/F2fX4553/sibnav5-pro/internal/docs/pages"
	"github.com/F2fX4553/sibnav5-pro/internal/docs/router"
	"github.com/F2fX4553/sibnav5-pro/internal/platform/observability"
	"github.com/F2fX4553/sibnav5-pro/public"
)

const (
	defaultReadTimeout    = 15 * time.Second
	defaultWriteTimeout   = 15 * time.Second
	defaultIdleTimeout    = 60 * time.Second
	defaultRequestTimeout = 30 * time.Second
)

// Config holds runtime options for the documentation HTTP server.
type Config struct {
	Address     string
	BasePath    string
	SiteTitle   string
	Lang        string
	Environment string

	// Router resolves page ids. When nil a router over the built-in pages is used.
	Router  *router.Router
	Logger  *zap.Logger
	Metrics *observability.PageMetrics

	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	RequestTimeout time.Duration
}

// New constructs the HTTP server with middleware stack and embedded assets.
func New(cfg Config) *http.Server {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	basePath := normalizeBasePath(cfg.BasePath)

	docs := cfg.Router
	if docs == nil {
		docs = router.New(pages.Builtin(), basePath)
	}

	mux := chi.NewRouter()
	mux.Use(chimw.RequestID)
	mux.Use(chimw.RealIP)
	mux.Use(observability.InjectLoggerMiddleware(logger))
	mux.Use(observability.TraceMiddleware())
	mux.Use(observability.RequestLoggerMiddleware())
	mux.Use(observability.RecoveryMiddleware(logger))
	mux.Use(chimw.Compress(5))
	mux.Use(chimw.Timeout(durationOr(cfg.RequestTimeout, defaultRequestTimeout)))

	mux.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	prefix := strings.TrimSuffix(basePath, "/")

	staticContent, err := public.StaticFS()
	if err != nil {
		logger.Fatal("embed static", zap.Error(err))
	}
	staticPrefix := prefix + "/public/static/"
	mux.Handle(staticPrefix+"*", http.StripPrefix(staticPrefix, http.FileServer(http.FS(staticContent))))

	handlers := NewHandlers(Dependencies{
		Router:    docs,
		Metrics:   cfg.Metrics,
		BasePath:  basePath,
		SiteTitle: cfg.SiteTitle,
		Lang:      cfg.Lang,
	})
	mountDocsRoutes(mux, prefix, basePath, cfg.Environment, handlers)

	return &http.Server{
		Addr:         cfg.Address,
		Handler:      mux,
		ReadTimeout:  durationOr(cfg.ReadTimeout, defaultReadTimeout),
		WriteTimeout: durationOr(cfg.WriteTimeout, defaultWriteTimeout),
		IdleTimeout:  durationOr(cfg.IdleTimeout, defaultIdleTimeout),
	}
}

func mountDocsRoutes(mux chi.Router, prefix, basePath, environment string, h *Handlers) {
	mux.Group(func(r chi.Router) {
		r.Use(custommw.HTMX())
		r.Use(custommw.RequestInfoMiddleware(basePath, environment))

		r.Get(prefix+"/", h.Index)
		if prefix != "" {
			r.Get(prefix, h.Index)
		}
		r.Get(prefix+"/docs", h.DocsRoot)
		r.Get(prefix+"/docs/{pageID}", h.Page)

		r.NotFound(h.NotFound)
	})
}

// normalizeBasePath returns "/" or a path with leading and trailing slashes.
func normalizeBasePath(path string) string {
	p := strings.TrimSpace(path)
	if p == "" || p == "/" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	p = strings.TrimRight(p, "/")
	if p == "" {
		return "/"
	}
	return p + "/"
}

func durationOr(value, fallback time.Duration) time.Duration {
	if value > 0 {
		return value
	}
	return fallback
}
