// Package context carries request-scoped values (request id, logger) from the delivery layer to the use cases.
package context

import (
	"context"
	"log/slog"
)

// HeaderXRequestID is the HTTP header carrying the request id.
// The local publisher forwards it so dispatcher logs share the API request id.
const HeaderXRequestID = "X-Request-Id"

type contextKey int

const (
	requestIDKey contextKey = iota
	loggerKey
)

// WithRequest stores the request id and a logger tagged with it.
func WithRequest(ctx context.Context, requestID string, logger *slog.Logger) context.Context {
	ctx = WithRequestID(ctx, requestID)

	return WithLogger(ctx, logger.With(slog.String("request_id", requestID)))
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestIDFromContext returns the request ID of ctx, or "" outside a request.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLogger returns the request-scoped logger of ctx, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(loggerKey).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault returns the request-scoped logger of ctx, or fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogAttrs extends the request-scoped logger of ctx with attrs.
// Handlers use it to tag every use case log line with a session or collection id.
func WithLogAttrs(ctx context.Context, fallback *slog.Logger, attrs ...any) context.Context {
	return WithLogger(ctx, GetLoggerOrDefault(ctx, fallback).With(attrs...))
}
