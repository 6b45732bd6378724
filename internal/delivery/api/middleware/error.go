package middleware

import (
	"log/slog"
	"net/http"

	"oilshare/internal/delivery/api/response"
	deliverycontext "oilshare/internal/delivery/context"
	domainerrors "oilshare/internal/domain/errors"
	"oilshare/internal/errors"

	"github.com/labstack/echo/v4"
)

// Codes for failures raised by echo itself rather than by a handler.
const (
	CodeRouteNotFound    = "ROUTE_NOT_FOUND"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodePayloadTooLarge  = "PAYLOAD_TOO_LARGE"
	CodeHTTPError        = "HTTP_ERROR"
)

var httpStatusCodes = map[int]string{
	http.StatusNotFound:              CodeRouteNotFound,
	http.StatusMethodNotAllowed:      CodeMethodNotAllowed,
	http.StatusRequestEntityTooLarge: CodePayloadTooLarge,
}

// NewHTTPErrorHandler returns the echo error handler that renders every
// failure as a response envelope.
func NewHTTPErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		log := deliverycontext.GetLoggerOrDefault(c.Request().Context(), logger)

		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			if appErr.HTTPCode() >= http.StatusInternalServerError {
				logFailure(log, c, err)
			}
			_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())

			return
		}

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			_ = response.Error(c, httpErr.Code, httpErrorCode(httpErr.Code), httpErrorMessage(httpErr), "")

			return
		}

		logFailure(log, c, err)
		_ = response.InternalServerError(c, domainerrors.ErrInternalError.ErrorCode(), "Internal server error, please try again later")
	}
}

func httpErrorCode(status int) string {
	if code, ok := httpStatusCodes[status]; ok {
		return code
	}

	return CodeHTTPError
}

func httpErrorMessage(httpErr *echo.HTTPError) string {
	if msg, ok := httpErr.Message.(string); ok && msg != "" {
		return msg
	}
	if text := http.StatusText(httpErr.Code); text != "" {
		return text
	}

	return "An error occurred"
}

func logFailure(log *slog.Logger, c echo.Context, err error) {
	attrs := []any{
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	}
	if stack := errors.Stack(err); stack != "" {
		attrs = append(attrs, slog.String("stack", stack))
	}

	log.Error("Request failed", attrs...)
}
