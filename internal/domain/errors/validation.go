package errors

import (
	"net/http"
	"strings"
)

// FieldError is a single rejected field of a request.
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// ValidationError is a 400 carrying one entry per rejected field.
type ValidationError struct {
	Fields []FieldError
}

// NewValidationError builds a ValidationError from field errors.
func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidationFailed.Message()
	}

	messages := make([]string, 0, len(e.Fields))
	for _, field := range e.Fields {
		messages = append(messages, field.Message)
	}

	return strings.Join(messages, "; ")
}

// Is lets errors.Is(err, ErrValidationFailed) match.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

func (e *ValidationError) ErrorCode() string {
	return ErrValidationFailed.ErrorCode()
}

func (e *ValidationError) Message() string {
	return ErrValidationFailed.Message()
}

func (e *ValidationError) Details() string {
	return e.Error()
}
