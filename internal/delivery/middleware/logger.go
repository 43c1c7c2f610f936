// Package middleware holds the echo middleware shared by every server.
package middleware

import (
	"log/slog"
	"time"

	"backoffice/config"
	deliverycontext "backoffice/internal/delivery/context"

	"github.com/labstack/echo/v4"
	slogecho "github.com/samber/slog-echo"
)

// LoggerMiddleware writes one access log line per request.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Middleware returns the verbose request logger in debug mode and the slog-echo
// access logger otherwise.
func (m *LoggerMiddleware) Middleware() echo.MiddlewareFunc {
	if m.debug {
		return m.Handle
	}

	return slogecho.NewWithConfig(m.logger, slogecho.Config{
		DefaultLevel:     slog.LevelInfo,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
		WithRequestID:    false,
	})
}

// Handle logs every request with its query, caller and error.
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			// Let the error handler write the response so the logged status is the real one.
			c.Error(err)
		}

		m.logRequest(c, start, err)

		return nil
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()

	fields := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", res.Status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
		slog.Int64("bytes_out", res.Size),
	}

	if len(req.URL.RawQuery) > 0 {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}
	if adminID, ok := deliverycontext.GetAdminID(c); ok {
		fields = append(fields, slog.Uint64("admin_id", adminID))
	}
	if roles, ok := deliverycontext.GetRoles(c); ok && len(roles) > 0 {
		fields = append(fields, slog.Any("roles", roles))
	}
	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	logLevel := slog.LevelInfo
	if res.Status >= 400 {
		logLevel = slog.LevelWarn
	}
	if res.Status >= 500 {
		logLevel = slog.LevelError
	}

	// The request-scoped logger already carries request_id.
	logger := deliverycontext.LoggerFrom(req.Context(), m.logger)
	logger.LogAttrs(req.Context(), logLevel, "HTTP Request", fields...)
}
