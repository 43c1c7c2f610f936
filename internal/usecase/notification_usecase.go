package usecase

import (
	"context"

	"backoffice/internal/domain/entity"
)

// NotificationUsecase is the read/unread lifecycle shared by admin and driver notifications.
// Every method is scoped by owner; a notification of another owner is reported as not found.
type NotificationUsecase[N any] interface {
	// Get returns one notification of the owner.
	Get(ctx context.Context, id, ownerID uint64) (*N, error)

	// MarkRead is idempotent: an already read notification is returned unchanged.
	MarkRead(ctx context.Context, id, ownerID uint64) (*N, error)

	// MarkAllRead returns the number of notifications that changed, zero included.
	MarkAllRead(ctx context.Context, ownerID uint64) (int64, error)

	// Delete removes one notification of the owner.
	Delete(ctx context.Context, id, ownerID uint64) error

	// Clear removes every notification of the owner and returns how many were removed.
	Clear(ctx context.Context, ownerID uint64) (int64, error)
}

// CreateAdminNotificationInput represents the input for creating an admin notification
type CreateAdminNotificationInput struct {
	Type        string  `json:"type" validate:"required,max=64"`
	Title       string  `json:"title" validate:"required,max=255"`
	Message     string  `json:"message" validate:"max=2000"`
	ReferenceID *uint64 `json:"reference_id,omitempty"`
}

// AdminNotificationUsecase manages the notifications of back-office admins
type AdminNotificationUsecase interface {
	NotificationUsecase[entity.AdminNotification]

	Create(ctx context.Context, adminID uint64, input *CreateAdminNotificationInput) (*entity.AdminNotification, error)

	// List returns every notification of the admin, newest first.
	List(ctx context.Context, adminID uint64) ([]*entity.AdminNotification, error)
}

// DriverNotificationInput describes a notification for one driver. An empty Type
// defaults to entity.DefaultDriverNotificationType.
type DriverNotificationInput struct {
	DriverID    uint64
	Type        string
	Title       string
	Message     string
	ReferenceID *string
}

// DriverNotificationList is the capped driver listing with the unread count of that page.
type DriverNotificationList struct {
	Notifications []*entity.DriverNotification `json:"notifications"`
	UnreadCount   int                          `json:"unreadCount"`
}

// DriverNotificationUsecase manages the notifications of drivers
type DriverNotificationUsecase interface {
	NotificationUsecase[entity.DriverNotification]

	// Create stores the notification synchronously. Used by the notifier workers.
	Create(ctx context.Context, input *DriverNotificationInput) (*entity.DriverNotification, error)

	// List returns the newest notifications of the driver, capped by configuration.
	List(ctx context.Context, driverID uint64) (*DriverNotificationList, error)
}

// DriverNotifier creates driver notifications in the background. Notify never blocks on
// storage and never reports failures; they are logged.
type DriverNotifier interface {
	Notify(ctx context.Context, input *DriverNotificationInput)
}
