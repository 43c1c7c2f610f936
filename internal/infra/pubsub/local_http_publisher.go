package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"backoffice/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	localSubscription = "projects/local/subscriptions/driver-notification-sub"
	localHTTPTimeout  = 30 * time.Second
)

// localHTTPPublisher mimics a Pub/Sub push subscription by POSTing the push envelope
// to a local endpoint. Used during development in place of the google provider.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// PubSubPushMessage is the body Google Pub/Sub sends to push endpoints.
type PubSubPushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: localHTTPTimeout},
		logger:     logger,
	}
}

// PublishDriverNotification sends the event wrapped in a push envelope.
func (p *localHTTPPublisher) PublishDriverNotification(ctx context.Context, event *service.DriverNotificationEvent) error {
	msg, err := newDriverNotificationMessage(event)
	if err != nil {
		return err
	}

	pushMsg := PubSubPushMessage{Subscription: localSubscription}
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(msg.data)
	pushMsg.Message.Attributes = msg.attributes
	pushMsg.Message.MessageID = strconv.FormatUint(event.NotificationID, 10)
	pushMsg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	body, err := json.Marshal(pushMsg)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("push endpoint returned non-success status: %d", resp.StatusCode)
	}

	p.logger.Debug("[LocalPubSub] Event published",
		slog.String("endpoint", p.endpoint),
		slog.Uint64("notification_id", event.NotificationID),
		slog.Uint64("driver_id", event.DriverID),
	)

	return nil
}

// Close releases resources (no-op for HTTP client)
func (p *localHTTPPublisher) Close() error {
	return nil
}
