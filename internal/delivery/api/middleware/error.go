// Package middleware holds the API specific echo middleware.
package middleware

import (
	"log/slog"
	"net/http"

	"backoffice/internal/delivery/api/response"
	deliverycontext "backoffice/internal/delivery/context"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError is echo's HTTPErrorHandler. Unknown errors become a 500 whose
// error field carries the underlying message.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	if handled := response.HandleAppError(c, err); handled == nil {
		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Code < http.StatusInternalServerError {
			message := http.StatusText(httpErr.Code)
			if msg, ok := httpErr.Message.(string); ok {
				message = msg
			}

			_ = response.Error(c, httpErr.Code, httpErrorCode(httpErr.Code), message, "")

			return
		}

		// Access loggers wrap plain errors in a 500 HTTPError; report the wrapped cause.
		if httpErr.Internal != nil {
			err = httpErr.Internal
		}
	}

	logger := deliverycontext.LoggerFrom(c.Request().Context(), m.logger)
	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.InternalServerError(c, err)
}

func httpErrorCode(status int) string {
	switch status {
	case http.StatusNotFound:
		return domainerrors.ErrNotFound.ErrorCode()
	case http.StatusUnauthorized:
		return domainerrors.ErrUnauthorized.ErrorCode()
	case http.StatusRequestEntityTooLarge:
		return "REQUEST_TOO_LARGE"
	case http.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	default:
		return "HTTP_ERROR"
	}
}
