package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEchoContext() echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestGetRequestID(t *testing.T) {
	t.Run("generates a uuid when unset", func(t *testing.T) {
		_, err := uuid.Parse(GetRequestID(newEchoContext()))
		assert.NoError(t, err)
	})

	t.Run("prefers the stored id", func(t *testing.T) {
		c := newEchoContext()
		c.Response().Header().Set(HeaderXRequestID, "from-header")
		SetRequestID(c, "req-1")
		assert.Equal(t, "req-1", GetRequestID(c))
	})

	t.Run("falls back to the response header", func(t *testing.T) {
		c := newEchoContext()
		c.Response().Header().Set(HeaderXRequestID, "from-header")
		assert.Equal(t, "from-header", GetRequestID(c))
	})
}

func TestRequestScope(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := fallback.With(slog.String("request_id", "req-1"))

	ctx := context.Background()
	assert.Empty(t, RequestIDFrom(ctx))
	assert.Same(t, fallback, LoggerFrom(ctx, fallback))

	ctx = WithRequest(ctx, "req-1", scoped)
	assert.Equal(t, "req-1", RequestIDFrom(ctx))
	assert.Same(t, scoped, LoggerFrom(ctx, fallback))

	noLogger := WithRequest(context.Background(), "req-2", nil)
	assert.Equal(t, "req-2", RequestIDFrom(noLogger))
	assert.Same(t, fallback, LoggerFrom(noLogger, fallback))
}

func TestDetach(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	parent, cancel := context.WithTimeout(WithRequest(context.Background(), "req-9", logger), time.Minute)
	cancel()
	require.Error(t, parent.Err())

	detached := Detach(parent)
	assert.NoError(t, detached.Err())
	_, hasDeadline := detached.Deadline()
	assert.False(t, hasDeadline)
	assert.Equal(t, "req-9", RequestIDFrom(detached))
	assert.Same(t, logger, LoggerFrom(detached, nil))

	assert.Empty(t, RequestIDFrom(Detach(context.Background())))
}

func TestCaller(t *testing.T) {
	c := newEchoContext()

	_, ok := GetAdminID(c)
	assert.False(t, ok)

	SetCaller(c, 12, []string{"admin"})

	adminID, ok := GetAdminID(c)
	assert.True(t, ok)
	assert.Equal(t, uint64(12), adminID)

	roles, ok := GetRoles(c)
	assert.True(t, ok)
	assert.Equal(t, []string{"admin"}, roles)
}
