// Package worker is the dispatcher delivery receiving collection requests from Pub/Sub push subscriptions.
package worker

import (
	"log/slog"
	"net/http"

	"oilshare/config"
	"oilshare/internal/delivery"
	"oilshare/internal/delivery/middleware"
	"oilshare/internal/delivery/worker/handler"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewServer creates the dispatcher listener on the dispatcher port
func NewServer(params ServerParams) (delivery.Delivery, error) {
	return delivery.NewHTTPServer(params.Lc, params.Logger, NewEcho(params.Cfg, params.Logger, params.PushHandler), delivery.HTTPServerOptions{
		Name:     "dispatcher",
		Port:     params.Cfg.Dispatcher.Port,
		Timeouts: params.Cfg.HTTP.Timeouts,
	}), nil
}

// NewEcho builds the worker router without binding a listener
func NewEcho(cfg *config.Config, logger *slog.Logger, pushHandler *handler.PushHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(
		echomiddleware.Recover(),
		middleware.RequestID(logger),
		middleware.RequestLogger(logger, cfg, "/health"),
		echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize),
	)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.POST("/push", pushHandler.HandlePush)

	return e
}
