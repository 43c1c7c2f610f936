// Package response writes the JSON envelope every endpoint answers with.
package response

import (
	"net/http"

	deliverycontext "backoffice/internal/delivery/context"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/errors"
	"backoffice/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Envelope is the body of every response.
type Envelope struct {
	Success    bool                      `json:"success"`
	Message    string                    `json:"message,omitempty"`
	Data       any                       `json:"data,omitempty"`
	Error      string                    `json:"error,omitempty"` // Underlying failure, 5xx and rejected input only.
	Code       string                    `json:"code,omitempty"`  // Machine-readable error code, e.g. "AIRPORT_NOT_FOUND".
	Errors     []domainerrors.FieldError `json:"errors,omitempty"`
	Pagination *usecase.Pagination       `json:"pagination,omitempty"`
	RequestID  string                    `json:"request_id,omitempty"`
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, message string, data any) error {
	return c.JSON(statusCode, Envelope{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: deliverycontext.GetRequestID(c),
	})
}

// Page returns one page of a list with its pagination envelope
func Page[E any](c echo.Context, message string, result *usecase.ListResult[E]) error {
	items := result.Items
	if items == nil {
		items = []*E{}
	}

	return c.JSON(http.StatusOK, Envelope{
		Success:    true,
		Message:    message,
		Data:       items,
		Pagination: &result.Pagination,
		RequestID:  deliverycontext.GetRequestID(c),
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode, message, details string) error {
	// Authentication failures never explain themselves.
	if statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = ""
	}

	return c.JSON(statusCode, Envelope{
		Success:   false,
		Message:   message,
		Error:     details,
		Code:      errorCode,
		RequestID: deliverycontext.GetRequestID(c),
	})
}

// ValidationFailed returns a 400 listing the rejected fields
func ValidationFailed(c echo.Context, validationErr *domainerrors.ValidationError) error {
	return c.JSON(http.StatusBadRequest, Envelope{
		Success:   false,
		Message:   validationErr.Message(),
		Code:      validationErr.ErrorCode(),
		Errors:    validationErr.Fields,
		RequestID: deliverycontext.GetRequestID(c),
	})
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, message string) error {
	return Error(c, http.StatusUnauthorized, domainerrors.ErrUnauthorized.ErrorCode(), message, "")
}

// InternalServerError returns a 500 carrying the underlying message
func InternalServerError(c echo.Context, err error) error {
	return Error(c, http.StatusInternalServerError, domainerrors.ErrInternalError.ErrorCode(), domainerrors.ErrInternalError.Message(), err.Error())
}

// HandleAppError converts domain errors to HTTP responses. Anything else is returned
// with a stack for the centralized error handler.
func HandleAppError(c echo.Context, err error) error {
	var validationErr *domainerrors.ValidationError
	if errors.As(err, &validationErr) {
		return ValidationFailed(c, validationErr)
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
