package middleware

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"oilshare/config"
	deliverycontext "oilshare/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEcho(buf *bytes.Buffer, debug bool, skip ...string) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(buf, nil))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(RequestID(logger))
	e.Use(RequestLogger(logger, cfg, skip...))

	return e
}

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{name: "client id is kept", header: "client-123", wantSame: true},
		{name: "missing id is generated"},
		{name: "oversized id is replaced", header: strings.Repeat("x", maxRequestIDLength+1)},
		{name: "id with spaces is replaced", header: "client 123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			e := newEcho(&buf, false)

			var seen string
			e.GET("/ping", func(c echo.Context) error {
				seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				require.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

				return c.NoContent(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.Equal(t, seen, got)
			if tt.wantSame {
				assert.Equal(t, tt.header, got)
			} else {
				assert.Len(t, got, 36)
			}
		})
	}
}

func TestLoggerMiddleware(t *testing.T) {
	tests := []struct {
		name      string
		debug     bool
		path      string
		status    int
		wantLog   bool
		wantLevel string
	}{
		{name: "debug logs requests", debug: true, path: "/api/v1/generators", wantLog: true},
		{name: "quiet without debug", debug: false, path: "/api/v1/generators"},
		{name: "skipped prefix", debug: true, path: "/health"},
		{name: "client error is a warning", debug: true, path: "/api/v1/missing", status: http.StatusNotFound, wantLog: true, wantLevel: "WARN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			e := newEcho(&buf, tt.debug, "/health")
			status := tt.status
			if status == 0 {
				status = http.StatusOK
			}
			e.GET(tt.path, func(c echo.Context) error {
				return c.String(status, "ok")
			})

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			req.Header.Set(deliverycontext.HeaderXRequestID, "req-log")
			e.ServeHTTP(httptest.NewRecorder(), req)

			if !tt.wantLog {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), "HTTP Request")
			assert.Contains(t, buf.String(), "request_id=req-log")
			assert.Contains(t, buf.String(), fmt.Sprintf("status=%d", status))
			wantLevel := tt.wantLevel
			if wantLevel == "" {
				wantLevel = "INFO"
			}
			assert.Contains(t, buf.String(), "level="+wantLevel)
		})
	}
}
