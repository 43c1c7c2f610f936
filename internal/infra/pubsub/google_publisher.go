package pubsub

import (
	"context"
	"fmt"
	"log/slog"

	"backoffice/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubPublisher implements EventPublisher using Google Cloud Pub/Sub
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher connects to the project and fails fast when the topic is missing.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicPath}); err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	logger.Info("Google Pub/Sub publisher initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &googlePubSubPublisher{
		client:    client,
		publisher: client.Publisher(topicID),
		logger:    logger,
	}, nil
}

// PublishDriverNotification publishes the event and waits for the server acknowledgement.
func (p *googlePubSubPublisher) PublishDriverNotification(ctx context.Context, event *service.DriverNotificationEvent) error {
	msg, err := newDriverNotificationMessage(event)
	if err != nil {
		return err
	}

	result := p.publisher.Publish(ctx, &pubsub.Message{
		Data:       msg.data,
		Attributes: msg.attributes,
	})

	serverID, err := result.Get(ctx)
	if err != nil {
		return errors.Wrapf(err, "publish driver notification %d", event.NotificationID)
	}

	p.logger.Debug("[GooglePubSub] Event published",
		slog.Uint64("notification_id", event.NotificationID),
		slog.Uint64("driver_id", event.DriverID),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close flushes pending messages and releases the client.
func (p *googlePubSubPublisher) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}
