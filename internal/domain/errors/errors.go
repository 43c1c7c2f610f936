package errors

import (
	"net/http"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy of e carrying details.
// errors.Is still matches the original sentinel.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches copies produced by WithDetails against their sentinel.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.httpCode == other.httpCode && e.errorCode == other.errorCode
}

// Predefined error types
var (
	// Request errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Validation failed",
		"",
	)

	ErrInvalidInput = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"Invalid request input",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		"",
	)

	// Airport errors
	ErrAirportNotFound = NewBaseError(
		http.StatusNotFound,
		"AIRPORT_NOT_FOUND",
		"Airport not found",
		"",
	)

	ErrAirportCodeExists = NewBaseError(
		http.StatusBadRequest,
		"AIRPORT_CODE_EXISTS",
		"Airport code already exists",
		"",
	)

	// Rate errors
	ErrDriverRateNotFound = NewBaseError(
		http.StatusNotFound,
		"DRIVER_RATE_NOT_FOUND",
		"Driver rate not found",
		"",
	)

	ErrLabourRateNotFound = NewBaseError(
		http.StatusNotFound,
		"LABOUR_RATE_NOT_FOUND",
		"Labour rate not found",
		"",
	)

	// Supply errors
	ErrPetrolBulkNotFound = NewBaseError(
		http.StatusNotFound,
		"PETROL_BULK_NOT_FOUND",
		"Petrol bulk not found",
		"",
	)

	ErrVegetableAvailabilityNotFound = NewBaseError(
		http.StatusNotFound,
		"VEGETABLE_AVAILABILITY_NOT_FOUND",
		"Vegetable availability not found",
		"",
	)

	// Notification errors
	ErrNotificationNotFound = NewBaseError(
		http.StatusNotFound,
		"NOTIFICATION_NOT_FOUND",
		"Notification not found",
		"",
	)

	ErrDriverNotificationNotFound = NewBaseError(
		http.StatusNotFound,
		"DRIVER_NOTIFICATION_NOT_FOUND",
		"Driver notification not found",
		"",
	)

	// Pre-order errors
	ErrPreOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"PRE_ORDER_NOT_FOUND",
		"Pre-order not found",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// InternalError carries an unexpected failure up to the HTTP layer.
// Details holds the underlying message, which is returned to the caller verbatim.
type InternalError struct {
	err error
}

// NewInternalError wraps err as a 500.
func NewInternalError(err error) AppError {
	return &InternalError{err: err}
}

func (e *InternalError) Error() string {
	return e.err.Error()
}

func (e *InternalError) Unwrap() error {
	return e.err
}

func (e *InternalError) HTTPCode() int {
	return http.StatusInternalServerError
}

func (e *InternalError) ErrorCode() string {
	return ErrInternalError.ErrorCode()
}

func (e *InternalError) Message() string {
	return ErrInternalError.Message()
}

func (e *InternalError) Details() string {
	return e.err.Error()
}
