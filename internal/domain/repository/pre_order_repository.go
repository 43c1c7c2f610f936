package repository

import (
	"context"

	"backoffice/internal/domain/entity"
)

// PreOrderRepository persists pre-orders addressed by their external order id.
type PreOrderRepository interface {
	// Create inserts a new pre-order. ErrDuplicateKey when the order id already exists.
	Create(ctx context.Context, preOrder *entity.PreOrder) error

	// FindByOrderID returns ErrRecordNotFound when the order id does not exist.
	FindByOrderID(ctx context.Context, orderID string) (*entity.PreOrder, error)

	// FindByOrderIDForUpdate locks the row until the surrounding transaction ends.
	// Only meaningful on a repository obtained from a RepositoryFactory.
	FindByOrderIDForUpdate(ctx context.Context, orderID string) (*entity.PreOrder, error)

	// UpdatePayload overwrites collection type, product assignments, delivery routes and summary data.
	UpdatePayload(ctx context.Context, preOrder *entity.PreOrder) error

	// UpdateStatus returns ErrRecordNotFound when the order id does not exist.
	UpdateStatus(ctx context.Context, orderID, status string) error

	// List returns pre-orders newest first, filtered by status when status is not empty.
	List(ctx context.Context, status string) ([]*entity.PreOrder, error)

	// DeleteByOrderID returns ErrRecordNotFound when nothing was deleted.
	DeleteByOrderID(ctx context.Context, orderID string) error
}
