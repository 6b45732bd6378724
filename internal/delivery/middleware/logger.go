package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"oilshare/config"
	deliverycontext "oilshare/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// RequestLogger writes one line per request when debug is enabled.
// Requests whose path starts with one of skipPaths are never logged.
func RequestLogger(logger *slog.Logger, cfg *config.Config, skipPaths ...string) echo.MiddlewareFunc {
	debug := cfg.Env.Debug

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !debug || hasAnyPrefix(c.Request().URL.Path, skipPaths) {
				return next(c)
			}

			start := time.Now()
			err := next(c)

			// The request-scoped logger already carries request_id.
			ctx := c.Request().Context()
			deliverycontext.GetLoggerOrDefault(ctx, logger).
				LogAttrs(ctx, levelFor(c.Response().Status), "HTTP Request", requestAttrs(c, start, err)...)

			return err
		}
	}
}

func hasAnyPrefix(path string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}

	return false
}

func levelFor(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

func requestAttrs(c echo.Context, start time.Time, err error) []slog.Attr {
	req := c.Request()
	res := c.Response()

	attrs := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.String("route", c.Path()),
		slog.Int("status", res.Status),
		slog.Int64("bytes_out", res.Size),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}
	if req.URL.RawQuery != "" {
		attrs = append(attrs, slog.String("query", req.URL.RawQuery))
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}

	return attrs
}
