package observability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

func TestRequestLoggerRecordsCompletion(t *testing.T) {
	logger, logs := newObservedLogger()

	r := chi.NewRouter()
	r.Use(InjectLoggerMiddleware(logger))
	r.Use(TraceMiddleware())
	r.Use(RequestLoggerMiddleware())
	r.Get("/docs/{pageID}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("missing"))
	})

	req := httptest.NewRequest(http.MethodGet, "/docs/nope", nil)
	req.Header.Set("HX-Request", "true")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)

	completed := logs.FilterMessage("request completed").All()
	require.Len(t, completed, 1)
	entry := completed[0]
	require.Equal(t, zapcore.WarnLevel, entry.Level)

	fields := entry.ContextMap()
	require.Equal(t, int64(http.StatusNotFound), fields["status"])
	require.Equal(t, "/docs/{pageID}", fields["route"])
	require.Equal(t, true, fields["htmx"])
	require.Equal(t, int64(len("missing")), fields["bytes"])
}

func TestRecoveryMiddlewareReturns500(t *testing.T) {
	logger, logs := newObservedLogger()

	handler := RecoveryMiddleware(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	require.Equal(t, 1, logs.FilterMessage("panic recovered").Len())
}

func TestRecoveryMiddlewarePrefersRequestLogger(t *testing.T) {
	requestLogger, logs := newObservedLogger()

	handler := InjectLoggerMiddleware(requestLogger)(RecoveryMiddleware(nil)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/docs/home", nil))

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	require.Equal(t, 1, logs.FilterMessage("panic recovered").Len())

	rr = httptest.NewRecorder()
	RecoveryMiddleware(nil)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestNewLoggerFallsBackToInfo(t *testing.T) {
	logger, err := NewLogger("verbose")
	require.NoError(t, err)
	require.False(t, logger.Core().Enabled(zapcore.DebugLevel))
	require.True(t, logger.Core().Enabled(zapcore.InfoLevel))

	debug, err := NewLogger("DEBUG")
	require.NoError(t, err)
	require.True(t, debug.Core().Enabled(zapcore.DebugLevel))
}

func TestPageMetricsNilSafe(t *testing.T) {
	var m *PageMetrics
	m.RecordView(context.Background(), "home", true, false)

	metrics, err := NewPageMetrics(noop.NewMeterProvider().Meter("test"))
	require.NoError(t, err)
	metrics.RecordView(context.Background(), "home", true, true)
	metrics.RecordView(context.Background(), "\x00nope", false, false)
}

func TestSanitizeHelpers(t *testing.T) {
	require.Equal(t, "/", SanitizeRoute(""))
	require.Equal(t, "/", SanitizeRoute("\r\n"))
	require.Equal(t, "/docs/{pageID}", SanitizeRoute("/docs/{pageID}"))
	require.Equal(t, "GET", SanitizeMethod("G\nET"))
	require.Empty(t, SanitizePageID(string(make([]byte, 200))))
	require.Equal(t, "sdk-python", SanitizePageID("  sdk-python\n"))
	require.Equal(t, strings.Repeat("é", maxPageIDRunes), SanitizePageID(strings.Repeat("é", 100)))
}
