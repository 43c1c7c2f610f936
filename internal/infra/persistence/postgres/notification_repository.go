package postgres

import (
	"context"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"
	"backoffice/internal/errors"
	"backoffice/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// notificationStore implements repository.NotificationRepository for one variant.
// ownerColumn is part of every WHERE clause after Create.
type notificationStore[N any, M any] struct {
	db          *gorm.DB
	ownerColumn string
	toDomain    func(*M) *N
	fromDomain  func(*N) *M
}

// NewAdminNotificationRepository stores admin notifications in 'notifications', owned by admin_id.
func NewAdminNotificationRepository(db *gorm.DB) repository.AdminNotificationRepository {
	return &notificationStore[entity.AdminNotification, model.AdminNotificationModel]{
		db:          db,
		ownerColumn: "admin_id",
		toDomain:    toAdminNotificationDomain,
		fromDomain:  fromAdminNotificationDomain,
	}
}

// NewDriverNotificationRepository stores driver notifications in 'driver_notifications', owned by driver_id.
func NewDriverNotificationRepository(db *gorm.DB) repository.DriverNotificationRepository {
	return &notificationStore[entity.DriverNotification, model.DriverNotificationModel]{
		db:          db,
		ownerColumn: "driver_id",
		toDomain:    toDriverNotificationDomain,
		fromDomain:  fromDriverNotificationDomain,
	}
}

// Create persists a new notification.
func (repo *notificationStore[N, M]) Create(ctx context.Context, notification *N) error {
	notificationM := repo.fromDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		return translateWriteError(err, "failed to create notification")
	}

	*notification = *repo.toDomain(notificationM)

	return nil
}

// FindByIDAndOwner retrieves a notification of one owner.
func (repo *notificationStore[N, M]) FindByIDAndOwner(ctx context.Context, id, ownerID uint64) (*N, error) {
	var notificationM M

	if err := repo.owned(ctx, ownerID).
		Where("id = ?", id).
		First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification by ID")
	}

	return repo.toDomain(&notificationM), nil
}

// FindByOwner lists the owner's notifications, newest first.
func (repo *notificationStore[N, M]) FindByOwner(ctx context.Context, ownerID uint64, limit int) ([]*N, error) {
	var notificationModels []*M

	query := repo.owned(ctx, ownerID).Order(newestFirst)
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notifications by owner")
	}

	notifications := make([]*N, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, repo.toDomain(notificationM))
	}

	return notifications, nil
}

// MarkRead flags one notification as read.
func (repo *notificationStore[N, M]) MarkRead(ctx context.Context, id, ownerID uint64) error {
	result := repo.owned(ctx, ownerID).
		Model(new(M)).
		Where("id = ?", id).
		Update("is_read", true)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark notification read")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRecordNotFound
	}

	return nil
}

// MarkAllRead flags every unread notification of the owner as read.
func (repo *notificationStore[N, M]) MarkAllRead(ctx context.Context, ownerID uint64) (int64, error) {
	result := repo.owned(ctx, ownerID).
		Model(new(M)).
		Where("is_read = ?", false).
		Update("is_read", true)

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to mark all notifications read")
	}

	return result.RowsAffected, nil
}

// DeleteByIDAndOwner removes one notification of the owner.
func (repo *notificationStore[N, M]) DeleteByIDAndOwner(ctx context.Context, id, ownerID uint64) error {
	result := repo.owned(ctx, ownerID).
		Where("id = ?", id).
		Delete(new(M))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete notification")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRecordNotFound
	}

	return nil
}

// DeleteAllByOwner removes every notification of the owner.
func (repo *notificationStore[N, M]) DeleteAllByOwner(ctx context.Context, ownerID uint64) (int64, error) {
	result := repo.owned(ctx, ownerID).Delete(new(M))
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete notifications")
	}

	return result.RowsAffected, nil
}

func (repo *notificationStore[N, M]) owned(ctx context.Context, ownerID uint64) *gorm.DB {
	return repo.db.WithContext(ctx).Where(repo.ownerColumn+" = ?", ownerID)
}

// --- Mapper Functions ---

func toAdminNotificationDomain(data *model.AdminNotificationModel) *entity.AdminNotification {
	return &entity.AdminNotification{
		NotificationBase: entity.NotificationBase{
			ID:        data.ID,
			Type:      data.Type,
			Title:     data.Title,
			Message:   data.Message,
			IsRead:    data.IsRead,
			CreatedAt: data.CreatedAt,
			UpdatedAt: data.UpdatedAt,
		},
		AdminID:     data.AdminID,
		ReferenceID: data.ReferenceID,
	}
}

func fromAdminNotificationDomain(data *entity.AdminNotification) *model.AdminNotificationModel {
	return &model.AdminNotificationModel{
		ID:          data.ID,
		AdminID:     data.AdminID,
		Type:        data.Type,
		Title:       data.Title,
		Message:     data.Message,
		ReferenceID: data.ReferenceID,
		IsRead:      data.IsRead,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toDriverNotificationDomain(data *model.DriverNotificationModel) *entity.DriverNotification {
	return &entity.DriverNotification{
		NotificationBase: entity.NotificationBase{
			ID:        data.ID,
			Type:      data.Type,
			Title:     data.Title,
			Message:   data.Message,
			IsRead:    data.IsRead,
			CreatedAt: data.CreatedAt,
			UpdatedAt: data.UpdatedAt,
		},
		DriverID:    data.DriverID,
		ReferenceID: data.ReferenceID,
	}
}

func fromDriverNotificationDomain(data *entity.DriverNotification) *model.DriverNotificationModel {
	return &model.DriverNotificationModel{
		ID:          data.ID,
		DriverID:    data.DriverID,
		Type:        data.Type,
		Title:       data.Title,
		Message:     data.Message,
		ReferenceID: data.ReferenceID,
		IsRead:      data.IsRead,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
