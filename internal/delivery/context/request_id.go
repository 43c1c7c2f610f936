// Package context carries request-scoped values between echo and the layers below it.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is read from the request and echoed on the response.
const HeaderXRequestID = echo.HeaderXRequestID

// keyRequestID is the echo.Context key holding the request id.
const keyRequestID = "request_id"

type scopeKey struct{}

// scope is what a request hands to the usecase and persistence layers.
type scope struct {
	requestID string
	logger    *slog.Logger
}

// SetRequestID stores the request id on the echo context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(keyRequestID, requestID)
}

// GetRequestID returns the id set by the request id middleware, falling back to the
// response header and finally to a fresh UUID so envelopes always carry one.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(keyRequestID).(string); ok && id != "" {
		return id
	}
	if id := c.Response().Header().Get(HeaderXRequestID); id != "" {
		return id
	}

	return uuid.NewString()
}

// WithRequest attaches the request id and its logger to ctx. A nil logger keeps the
// caller's fallback in LoggerFrom.
func WithRequest(ctx context.Context, requestID string, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, scopeKey{}, scope{requestID: requestID, logger: logger})
}

// RequestIDFrom returns the request id carried by ctx, or "".
func RequestIDFrom(ctx context.Context) string {
	s, _ := ctx.Value(scopeKey{}).(scope)

	return s.requestID
}

// LoggerFrom returns the request-scoped logger, or fallback outside a request.
func LoggerFrom(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if s, ok := ctx.Value(scopeKey{}).(scope); ok && s.logger != nil {
		return s.logger
	}

	return fallback
}

// Detach keeps the request id and logger of ctx but drops its deadline and cancellation,
// for work that outlives the request.
func Detach(ctx context.Context) context.Context {
	s, ok := ctx.Value(scopeKey{}).(scope)
	if !ok {
		return context.Background()
	}

	return context.WithValue(context.Background(), scopeKey{}, s)
}
