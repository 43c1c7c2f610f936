package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"backoffice/config"
	deliverycontext "backoffice/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		reuse    bool
	}{
		{name: "reuses client id", incoming: "client-id-1", reuse: true},
		{name: "generates when missing", incoming: ""},
		{name: "replaces id with spaces", incoming: "bad id"},
		{name: "replaces oversized id", incoming: strings.Repeat("a", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.Use(NewRequestIDMiddleware(slog.New(slog.DiscardHandler)).Process)

			var seenEcho, seenCtx string
			e.GET("/", func(c echo.Context) error {
				seenEcho = deliverycontext.GetRequestID(c)
				seenCtx = deliverycontext.RequestIDFrom(c.Request().Context())
				assert.NotNil(t, deliverycontext.LoggerFrom(c.Request().Context(), nil))

				return c.NoContent(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			header := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.NotEmpty(t, header)
			assert.Equal(t, header, seenEcho)
			assert.Equal(t, header, seenCtx)
			if tt.reuse {
				assert.Equal(t, tt.incoming, header)
			} else {
				assert.NotEqual(t, tt.incoming, header)
			}
		})
	}
}

func TestLoggerMiddleware_DebugLogsRealStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	cfg := &config.Config{}
	cfg.Env.Debug = true

	e := echo.New()
	e.Use(NewLoggerMiddleware(logger, cfg).Middleware())
	e.GET("/missing", func(echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "gone")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing?x=1", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "HTTP Request", record["msg"])
	assert.Equal(t, "WARN", record["level"])
	assert.EqualValues(t, http.StatusNotFound, record["status"])
	assert.Equal(t, "x=1", record["query"])
}

func TestLoggerMiddleware_DebugLogsCaller(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	cfg := &config.Config{}
	cfg.Env.Debug = true

	e := echo.New()
	e.Use(NewLoggerMiddleware(logger, cfg).Middleware())
	e.GET("/driverRate", func(c echo.Context) error {
		deliverycontext.SetCaller(c, 9, []string{"admin", "dispatcher"})

		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/driverRate", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "INFO", record["level"])
	assert.EqualValues(t, 9, record["admin_id"])
	assert.Equal(t, []any{"admin", "dispatcher"}, record["roles"])
}
