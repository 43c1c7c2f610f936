package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"backoffice/internal/delivery/api/response"
	deliverycontext "backoffice/internal/delivery/context"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/service"
	"backoffice/internal/errors"
	mockService "backoffice/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.Envelope {
	t.Helper()

	var body response.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantError  string
	}{
		{
			name:       "app error keeps its status",
			err:        errors.WithStack(domainerrors.ErrAirportNotFound),
			wantStatus: http.StatusNotFound,
			wantCode:   "AIRPORT_NOT_FOUND",
		},
		{
			name:       "unknown error carries the message",
			err:        errors.New("connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
			wantError:  "connection refused",
		},
		{
			name:       "wrapped by the access logger",
			err:        echo.NewHTTPError(http.StatusInternalServerError).SetInternal(errors.New("deadlock detected")),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
			wantError:  "deadlock detected",
		},
		{
			name:       "echo route miss",
			err:        echo.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{
			name:       "body too large",
			err:        echo.ErrStatusRequestEntityTooLarge,
			wantStatus: http.StatusRequestEntityTooLarge,
			wantCode:   "REQUEST_TOO_LARGE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			NewErrorMiddleware(slog.New(slog.DiscardHandler)).HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeEnvelope(t, rec)
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantError, body.Error)
		})
	}
}

func TestErrorMiddleware_SkipsCommittedResponse(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.NoContent(http.StatusNoContent))

	NewErrorMiddleware(slog.New(slog.DiscardHandler)).HandleHTTPError(errors.New("late"), c)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		setup      func(tokenSvc *mockService.MockTokenService)
		wantStatus int
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer token",
			header:     "Basic abc",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "invalid token",
			header: "Bearer broken",
			setup: func(tokenSvc *mockService.MockTokenService) {
				tokenSvc.EXPECT().ValidateToken("broken").Return(nil, errors.New("token is expired"))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setup: func(tokenSvc *mockService.MockTokenService) {
				tokenSvc.EXPECT().ValidateToken("good").Return(&service.Claims{AdminID: 7, Roles: []string{"admin"}}, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockService.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokenSvc)
			}

			e := echo.New()
			e.GET("/", func(c echo.Context) error {
				adminID, ok := deliverycontext.GetAdminID(c)
				require.True(t, ok)
				assert.Equal(t, uint64(7), adminID)

				return c.NoContent(http.StatusOK)
			}, NewAuthMiddleware(tokenSvc).Authenticate)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				body := decodeEnvelope(t, rec)
				assert.False(t, body.Success)
				assert.Equal(t, "UNAUTHORIZED", body.Code)
				assert.Empty(t, body.Error)
			}
		})
	}
}
