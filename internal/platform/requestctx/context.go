// Package requestctx carries the request logger and trace id through a docs request.
package requestctx

import (
	"context"

	"go.uber.org/zap"
)

type key int

const (
	loggerKey key = iota
	traceIDKey
)

var nop = zap.NewNop()

// WithLogger returns ctx carrying logger. A nil logger is stored as the no-op logger.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	if logger == nil {
		logger = nop
	}
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFrom returns the logger stored on ctx and whether one was stored.
func LoggerFrom(ctx context.Context) (*zap.Logger, bool) {
	logger, ok := ctx.Value(loggerKey).(*zap.Logger)
	return logger, ok && logger != nil
}

// Logger returns the logger stored on ctx, or a no-op logger.
func Logger(ctx context.Context) *zap.Logger {
	if logger, ok := LoggerFrom(ctx); ok {
		return logger
	}
	return nop
}

// WithTraceID records the id of the trace serving the request.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	if traceID == "" {
		return ctx
	}
	return context.WithValue(ctx, traceIDKey, traceID)
}

// TraceID returns the recorded trace id, or "" outside a traced request.
func TraceID(ctx context.Context) string {
	id, _ := ctx.Value(traceIDKey).(string)
	return id
}
