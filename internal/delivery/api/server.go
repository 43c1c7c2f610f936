package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"backoffice/config"
	"backoffice/internal/delivery"
	apimiddleware "backoffice/internal/delivery/api/middleware"
	"backoffice/internal/delivery/api/router"
	"backoffice/internal/delivery/api/validator"
	"backoffice/internal/delivery/middleware"
	"backoffice/internal/domain/lifecycle"
	"backoffice/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type apiServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

// NewServer builds the echo server of the back-office API.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	echoServer := newEcho(params.Cfg, params.Logger)

	r := router.NewRouter(params.RouterParams)
	r.RegisterRoutes(echoServer)

	srv := &apiServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: echoServer,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// newEcho configures timeouts, the middleware chain, error rendering and validation.
func newEcho(cfg *config.Config, logger *slog.Logger) *echo.Echo {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.HidePort = true
	echoServer.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	echoServer.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	echoServer.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	echoServer.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	// Recover first so panics in later middleware are caught
	echoServer.Use(echomiddleware.Recover())

	// Request ID before the logger so access logs carry it
	echoServer.Use(middleware.NewRequestIDMiddleware(logger).Process)
	echoServer.Use(middleware.NewLoggerMiddleware(logger, cfg).Middleware())

	echoServer.Use(echomiddleware.CORS())
	echoServer.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))

	echoServer.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	echoServer.Validator = validator.New()

	return echoServer
}

func (s *apiServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting API HTTP server", slog.String("host_port", hostPort))
	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down API HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
