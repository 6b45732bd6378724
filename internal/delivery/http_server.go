package delivery

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"oilshare/config"
	"oilshare/internal/domain/lifecycle"
	"oilshare/internal/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// HTTPServerOptions describes one echo listener.
type HTTPServerOptions struct {
	// Name is used in start and stop log lines
	Name     string
	Port     int
	Timeouts config.HTTPTimeouts

	// H2C serves cleartext HTTP/2 next to HTTP/1.1
	H2C bool
}

// HTTPServer serves an echo instance until the fx lifecycle stops.
type HTTPServer struct {
	opts   HTTPServerOptions
	echo   *echo.Echo
	logger *slog.Logger
}

// NewHTTPServer applies the timeouts to e and registers its shutdown on lc.
func NewHTTPServer(lc fx.Lifecycle, logger *slog.Logger, e *echo.Echo, opts HTTPServerOptions) *HTTPServer {
	e.Server.ReadTimeout = opts.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = opts.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = opts.Timeouts.WriteTimeout
	e.Server.IdleTimeout = opts.Timeouts.IdleTimeout

	srv := &HTTPServer{
		opts:   opts,
		echo:   e,
		logger: logger.With(slog.String("server", opts.Name)),
	}

	lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv
}

// Serve blocks until the listener fails or the server is shut down.
func (s *HTTPServer) Serve(_ context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.opts.Port))
	s.logger.Info("Starting HTTP server", slog.String("host_port", hostPort), slog.Bool("h2c", s.opts.H2C))

	var err error
	if s.opts.H2C {
		err = s.echo.StartH2CServer(hostPort, &http2.Server{IdleTimeout: s.opts.Timeouts.IdleTimeout})
	} else {
		err = s.echo.Start(hostPort)
	}
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrapf(err, "%s server", s.opts.Name)
	}

	return nil
}

// Addr returns the bound listener address, or nil before Serve has bound it.
func (s *HTTPServer) Addr() net.Addr {
	return s.echo.ListenerAddr()
}

func (s *HTTPServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")

	return errors.WithStack(s.echo.Shutdown(shutdownCtx))
}
