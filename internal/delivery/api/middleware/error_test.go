package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"oilshare/internal/delivery/api/response"
	domainerrors "oilshare/internal/domain/errors"
	"oilshare/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPErrorHandler(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails string
		wantLogged  bool
	}{
		{
			name:        "app error keeps details",
			err:         errors.Wrap(domainerrors.ErrSessionNotFound.WithDetails("session abc"), "lookup"),
			wantStatus:  http.StatusNotFound,
			wantCode:    "SESSION_NOT_FOUND",
			wantDetails: "session abc",
		},
		{
			name:       "server side app error hides details",
			err:        errors.Wrap(domainerrors.ErrEventPublishFailed.WithDetails("topic down"), "publish"),
			wantStatus: http.StatusBadGateway,
			wantCode:   "EVENT_PUBLISH_FAILED",
			wantLogged: true,
		},
		{
			name:       "unknown route",
			err:        echo.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   CodeRouteNotFound,
		},
		{
			name:       "body too large",
			err:        echo.ErrStatusRequestEntityTooLarge,
			wantStatus: http.StatusRequestEntityTooLarge,
			wantCode:   CodePayloadTooLarge,
		},
		{
			name:       "other echo error",
			err:        echo.NewHTTPError(http.StatusTeapot, "short and stout"),
			wantStatus: http.StatusTeapot,
			wantCode:   CodeHTTPError,
		},
		{
			name:       "plain error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
			wantLogged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			handler := NewHTTPErrorHandler(slog.New(slog.NewJSONHandler(&logs, nil)))

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/test", nil), rec)

			handler(tt.err, c)

			var envelope response.Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.False(t, envelope.Success)
			require.NotNil(t, envelope.Error)
			assert.Equal(t, tt.wantCode, envelope.Error.Code)
			assert.Equal(t, tt.wantDetails, envelope.Error.Details)
			assert.Equal(t, tt.wantLogged, strings.Contains(logs.String(), "Request failed"))
		})
	}
}

func TestHTTPErrorHandler_LogsStack(t *testing.T) {
	var logs bytes.Buffer
	handler := NewHTTPErrorHandler(slog.New(slog.NewJSONHandler(&logs, nil)))

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/v1/reports/0", nil), httptest.NewRecorder())

	handler(errors.Wrap(errors.New("disk full"), "save report"), c)

	assert.Contains(t, logs.String(), `"stack"`)
	assert.Contains(t, logs.String(), "save report: disk full")
}

func TestHTTPErrorHandler_SkipsCommittedResponse(t *testing.T) {
	handler := NewHTTPErrorHandler(slog.New(slog.DiscardHandler))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.String(http.StatusOK, "done"))

	handler(errors.New("late failure"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "done", rec.Body.String())
}
