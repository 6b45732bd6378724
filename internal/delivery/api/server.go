package api

import (
	"log/slog"

	"oilshare/config"
	"oilshare/internal/delivery"
	apimiddleware "oilshare/internal/delivery/api/middleware"
	"oilshare/internal/delivery/api/router"
	"oilshare/internal/delivery/api/validator"
	"oilshare/internal/delivery/middleware"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

// NewServer builds the dashboard API listener, served over h2c.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	return delivery.NewHTTPServer(params.Lc, params.Logger, NewEcho(params.Cfg, params.Logger, params.RouterParams), delivery.HTTPServerOptions{
		Name:     "api",
		Port:     params.Cfg.HTTP.Port,
		Timeouts: params.Cfg.HTTP.Timeouts,
		H2C:      true,
	}), nil
}

// NewEcho builds the API router with its middleware chain, without binding a listener.
func NewEcho(cfg *config.Config, logger *slog.Logger, routerParams router.RouterParams) *echo.Echo {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.HTTPErrorHandler = apimiddleware.NewHTTPErrorHandler(logger)
	echoServer.Validator = validator.New()

	// Request ids must exist before the request logger runs
	echoServer.Use(
		echomiddleware.Recover(),
		middleware.RequestID(logger),
		middleware.RequestLogger(logger, cfg, "/health"),
		echomiddleware.CORS(),
		echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize),
	)

	router.NewRouter(routerParams).RegisterRoutes(echoServer)

	return echoServer
}
