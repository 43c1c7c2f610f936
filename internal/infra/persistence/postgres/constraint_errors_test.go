package postgres

import (
	"fmt"
	"net/http"
	"testing"

	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTranslateWriteError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		assert func(t *testing.T, err error)
	}{
		{
			name: "gorm duplicated key",
			err:  gorm.ErrDuplicatedKey,
			assert: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, repository.ErrDuplicateKey)
			},
		},
		{
			name: "raw unique violation",
			err:  fmt.Errorf(`ERROR: duplicate key value violates unique constraint "idx_airports_code" (SQLSTATE 23505)`),
			assert: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, repository.ErrDuplicateKey)
			},
		},
		{
			name: "not null violation",
			err:  fmt.Errorf(`ERROR: null value in column "title" violates not-null constraint (SQLSTATE 23502)`),
			assert: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			},
		},
		{
			name: "check violation",
			err:  gorm.ErrCheckConstraintViolated,
			assert: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			},
		},
		{
			name: "anything else",
			err:  errors.New("pq: connection reset by peer"),
			assert: func(t *testing.T, err error) {
				var appErr domainerrors.AppError
				require.True(t, errors.As(err, &appErr))
				assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode())
				assert.Equal(t, "INTERNAL_ERROR", appErr.ErrorCode())
				assert.Equal(t, "failed to write: pq: connection reset by peer", appErr.Details())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.assert(t, translateWriteError(tt.err, "failed to write"))
		})
	}
}

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "box", want: "box"},
		{in: "100%", want: `100\%`},
		{in: "a_b", want: `a\_b`},
		{in: `c:\tmp`, want: `c:\\tmp`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeLike(tt.in))
		})
	}
}
