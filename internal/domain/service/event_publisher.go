package service

import (
	"context"
	"time"
)

// DriverNotificationEvent announces a stored driver notification so a push service can deliver it.
type DriverNotificationEvent struct {
	RequestID      string    `json:"request_id,omitempty"` // For distributed tracing
	EventType      string    `json:"event_type"`
	NotificationID uint64    `json:"notification_id"`
	DriverID       uint64    `json:"driver_id"`
	Type           string    `json:"type"`
	Title          string    `json:"title"`
	Message        string    `json:"message,omitempty"`
	ReferenceID    *string   `json:"reference_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishDriverNotification publishes a driver notification event for async delivery
	PublishDriverNotification(ctx context.Context, event *DriverNotificationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
