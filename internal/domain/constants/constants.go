package constants

// Pub/Sub provider names accepted by pubsub.provider
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Event types published on the notification topic
const (
	EventTypeDriverNotification = "driver_notification.created"
)
