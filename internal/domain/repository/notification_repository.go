package repository

import (
	"context"

	"backoffice/internal/domain/entity"
)

// NotificationRepository persists one notification variant. Every method other than
// Create filters on the owner column, so a record of another owner is never visible.
type NotificationRepository[N any] interface {
	// Create inserts the notification and fills in its id and timestamps.
	Create(ctx context.Context, notification *N) error

	// FindByIDAndOwner returns ErrRecordNotFound when (id, owner) does not exist.
	FindByIDAndOwner(ctx context.Context, id, ownerID uint64) (*N, error)

	// FindByOwner lists newest first. A limit <= 0 returns every record.
	FindByOwner(ctx context.Context, ownerID uint64, limit int) ([]*N, error)

	// MarkRead sets is_read on one notification. ErrRecordNotFound when (id, owner) does not exist.
	MarkRead(ctx context.Context, id, ownerID uint64) error

	// MarkAllRead sets is_read on every unread notification and returns how many changed.
	MarkAllRead(ctx context.Context, ownerID uint64) (int64, error)

	// DeleteByIDAndOwner returns ErrRecordNotFound when nothing was deleted.
	DeleteByIDAndOwner(ctx context.Context, id, ownerID uint64) error

	// DeleteAllByOwner returns the number of deleted rows, zero included.
	DeleteAllByOwner(ctx context.Context, ownerID uint64) (int64, error)
}

type (
	AdminNotificationRepository  = NotificationRepository[entity.AdminNotification]
	DriverNotificationRepository = NotificationRepository[entity.DriverNotification]
)
