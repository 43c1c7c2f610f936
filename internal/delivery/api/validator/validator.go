// Package validator adapts go-playground/validator to echo and to the domain ValidationError.
package validator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/errors"

	"github.com/go-playground/validator/v10"
)

// Custom tags for opaque JSON payloads. An absent or null payload passes both.
const (
	tagJSONArray  = "jsonarray"
	tagJSONObject = "jsonobject"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New returns a validator that names fields by their json tag.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}

		return name
	})

	// Registration only fails for an empty tag or a nil func.
	_ = validate.RegisterValidation(tagJSONArray, jsonKind('['))
	_ = validate.RegisterValidation(tagJSONObject, jsonKind('{'))

	return &CustomValidator{validate: validate}
}

// Validate returns a *domainerrors.ValidationError listing every rejected field.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errors.Wrap(err, "validate request")
	}

	fields := make([]domainerrors.FieldError, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields = append(fields, domainerrors.FieldError{
			Field:   fieldErr.Field(),
			Tag:     fieldErr.Tag(),
			Message: message(fieldErr),
		})
	}

	return domainerrors.NewValidationError(fields...)
}

// jsonKind accepts a raw JSON value whose top level starts with open, and absent values.
func jsonKind(open byte) validator.Func {
	return func(fl validator.FieldLevel) bool {
		field := fl.Field()
		if field.Kind() != reflect.Slice || field.Type().Elem().Kind() != reflect.Uint8 {
			return false
		}

		raw := bytes.TrimSpace(field.Bytes())
		if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
			return true
		}

		return raw[0] == open && json.Valid(raw)
	}
}

func message(fieldErr validator.FieldError) string {
	field := fieldErr.Field()

	switch fieldErr.Tag() {
	case "required":
		return field + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, strings.Join(strings.Fields(fieldErr.Param()), ", "))
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fieldErr.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fieldErr.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", field, fieldErr.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", field, fieldErr.Param())
	case "alphanum":
		return field + " must contain only letters and digits"
	case tagJSONArray:
		return field + " must be a JSON array"
	case tagJSONObject:
		return field + " must be a JSON object"
	default:
		return fmt.Sprintf("%s failed on the %s rule", field, fieldErr.Tag())
	}
}
