package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"backoffice/config"
	"backoffice/internal/delivery/api/response"
	deliverycontext "backoffice/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1K"
	cfg.ApplyDefaults()

	e := newEcho(cfg, slog.New(slog.DiscardHandler))
	e.POST("/echo", func(c echo.Context) error {
		return response.Success(c, http.StatusOK, "ok", nil)
	})
	e.GET("/panic", func(echo.Context) error {
		panic("boom")
	})

	return e
}

func TestNewEcho_Pipeline(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		wantStatus int
		wantCode   string
	}{
		{name: "small body passes", method: http.MethodPost, target: "/echo", body: `{}`, wantStatus: http.StatusOK},
		{name: "oversized body", method: http.MethodPost, target: "/echo", body: strings.Repeat("x", 2048), wantStatus: http.StatusRequestEntityTooLarge, wantCode: "REQUEST_TOO_LARGE"},
		{name: "panic is recovered", method: http.MethodGet, target: "/panic", wantStatus: http.StatusInternalServerError, wantCode: "INTERNAL_ERROR"},
		{name: "unknown route", method: http.MethodGet, target: "/missing", wantStatus: http.StatusNotFound, wantCode: "NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho(t)

			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			requestID := rec.Header().Get(deliverycontext.HeaderXRequestID)
			require.NotEmpty(t, requestID)

			var body response.Envelope
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, requestID, body.RequestID)
		})
	}
}
