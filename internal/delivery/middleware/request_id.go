package middleware

import (
	"log/slog"

	deliverycontext "oilshare/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// maxRequestIDLength bounds client supplied request ids before they reach the logs.
const maxRequestIDLength = 128

// RequestID assigns every request an id, keeping a usable client supplied
// X-Request-Id, and stores a logger tagged with it on the request context.
func RequestID(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
			if !usableRequestID(requestID) {
				requestID = uuid.NewString()
			}

			c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)
			c.SetRequest(c.Request().WithContext(deliverycontext.WithRequest(c.Request().Context(), requestID, logger)))

			return next(c)
		}
	}
}

// usableRequestID accepts non-empty printable ASCII ids up to maxRequestIDLength.
func usableRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < '!' || id[i] > '~' {
			return false
		}
	}

	return true
}
