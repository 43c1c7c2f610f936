package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"backoffice/config"
	"backoffice/internal/domain/constants"
	"backoffice/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEvent() *service.DriverNotificationEvent {
	ref := "ORD-1"

	return &service.DriverNotificationEvent{
		RequestID:      "req-1",
		EventType:      constants.EventTypeDriverNotification,
		NotificationID: 15,
		DriverID:       7,
		Type:           "order_assigned",
		Title:          "New order assigned",
		ReferenceID:    &ref,
		CreatedAt:      time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestNewDriverNotificationMessage(t *testing.T) {
	msg, err := newDriverNotificationMessage(newTestEvent())
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"event_type":      constants.EventTypeDriverNotification,
		"notification_id": "15",
		"driver_id":       "7",
		"request_id":      "req-1",
	}, msg.attributes)

	var decoded service.DriverNotificationEvent
	require.NoError(t, json.Unmarshal(msg.data, &decoded))
	assert.Equal(t, uint64(7), decoded.DriverID)
	assert.Equal(t, "ORD-1", *decoded.ReferenceID)

	_, err = newDriverNotificationMessage(nil)
	assert.Error(t, err)
}

func TestLocalHTTPPublisher_PublishDriverNotification(t *testing.T) {
	var received PubSubPushMessage
	var requestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	require.NoError(t, publisher.PublishDriverNotification(context.Background(), newTestEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, "15", received.Message.MessageID)
	assert.Equal(t, "7", received.Message.Attributes["driver_id"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var event service.DriverNotificationEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, "New order assigned", event.Title)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	err := publisher.PublishDriverNotification(context.Background(), newTestEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestNewPublisher(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *config.PubSubConfig
		wantNoop bool
		wantErr  bool
	}{
		{name: "not configured", cfg: nil, wantNoop: true},
		{name: "empty provider", cfg: &config.PubSubConfig{}, wantNoop: true},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: true},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "t"}, wantErr: true},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}, wantErr: true},
		{name: "unknown provider", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := newPublisher(context.Background(), tt.cfg, newDiscardLogger())
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, publisher)

				return
			}

			require.NoError(t, err)
			if tt.wantNoop {
				assert.IsType(t, &noopPublisher{}, publisher)
				assert.NoError(t, publisher.PublishDriverNotification(context.Background(), newTestEvent()))
			}
		})
	}

	t.Run("local", func(t *testing.T) {
		publisher, err := newPublisher(context.Background(), &config.PubSubConfig{
			Provider:      constants.PubSubProviderLocal,
			LocalEndpoint: "http://localhost:9999/push",
		}, newDiscardLogger())
		require.NoError(t, err)
		assert.IsType(t, &localHTTPPublisher{}, publisher)
	})
}
