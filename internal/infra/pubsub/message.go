package pubsub

import (
	"encoding/json"
	"strconv"

	"backoffice/internal/domain/service"

	"github.com/pkg/errors"
)

// eventMessage is the payload and attributes shared by every publisher.
type eventMessage struct {
	data       []byte
	attributes map[string]string
}

// newDriverNotificationMessage serializes the event and derives the attributes subscribers filter on.
func newDriverNotificationMessage(event *service.DriverNotificationEvent) (*eventMessage, error) {
	if event == nil {
		return nil, errors.New("driver notification event is nil")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	attributes := map[string]string{
		"event_type":      event.EventType,
		"notification_id": strconv.FormatUint(event.NotificationID, 10),
		"driver_id":       strconv.FormatUint(event.DriverID, 10),
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return &eventMessage{data: data, attributes: attributes}, nil
}
