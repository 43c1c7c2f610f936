package postgres

import (
	"strings"

	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/errors"

	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes, matched when the driver error was not translated by GORM.
const (
	sqlStateUniqueViolation  = "23505"
	sqlStateNotNullViolation = "23502"
	sqlStateCheckViolation   = "23514"
)

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, sqlStateUniqueViolation) ||
		strings.Contains(errMsg, "duplicate key")
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, sqlStateNotNullViolation) ||
		strings.Contains(errMsg, "null value")
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	return strings.Contains(err.Error(), sqlStateCheckViolation)
}

// translateWriteError maps a failed INSERT or UPDATE onto the repository contract.
// Constraint violations become repository or validation errors, anything else an internal
// error carrying the driver message.
func translateWriteError(err error, details string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return errors.Wrap(repository.ErrDuplicateKey, details)
	case isNotNullConstraintViolation(err), isCheckConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WithDetails(details + ": " + err.Error())
	default:
		return domainerrors.NewInternalError(errors.Wrap(err, details))
	}
}
