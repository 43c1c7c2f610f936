package impl

import (
	"context"
	"log/slog"
	"strings"

	"backoffice/config"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/errors"
	"backoffice/internal/usecase"
)

// notificationService implements the owner-scoped read/unread lifecycle for one variant.
type notificationService[N any, PN entity.NotificationPtr[N]] struct {
	repo     repository.NotificationRepository[N]
	notFound *domainerrors.BaseError
}

func (s *notificationService[N, PN]) Get(ctx context.Context, id, ownerID uint64) (*N, error) {
	notification, err := s.repo.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, errors.WithStack(s.notFound)
		}

		return nil, errors.Wrap(err, "failed to get notification")
	}

	return notification, nil
}

// MarkRead only writes when the notification is still unread.
func (s *notificationService[N, PN]) MarkRead(ctx context.Context, id, ownerID uint64) (*N, error) {
	notification, err := s.Get(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	base := PN(notification).Base()
	if base.IsRead {
		return notification, nil
	}

	if err := s.repo.MarkRead(ctx, id, ownerID); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, errors.WithStack(s.notFound)
		}

		return nil, errors.Wrap(err, "failed to mark notification as read")
	}
	base.IsRead = true

	return notification, nil
}

func (s *notificationService[N, PN]) MarkAllRead(ctx context.Context, ownerID uint64) (int64, error) {
	updated, err := s.repo.MarkAllRead(ctx, ownerID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to mark all notifications as read")
	}

	return updated, nil
}

func (s *notificationService[N, PN]) Delete(ctx context.Context, id, ownerID uint64) error {
	if err := s.repo.DeleteByIDAndOwner(ctx, id, ownerID); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return errors.WithStack(s.notFound)
		}

		return errors.Wrap(err, "failed to delete notification")
	}

	return nil
}

func (s *notificationService[N, PN]) Clear(ctx context.Context, ownerID uint64) (int64, error) {
	deleted, err := s.repo.DeleteAllByOwner(ctx, ownerID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete notifications")
	}

	return deleted, nil
}

type adminNotificationService struct {
	*notificationService[entity.AdminNotification, *entity.AdminNotification]
}

// NewAdminNotificationService creates a new admin notification service instance
func NewAdminNotificationService(repo repository.AdminNotificationRepository) usecase.AdminNotificationUsecase {
	return &adminNotificationService{
		notificationService: &notificationService[entity.AdminNotification, *entity.AdminNotification]{
			repo:     repo,
			notFound: domainerrors.ErrNotificationNotFound,
		},
	}
}

func (s *adminNotificationService) Create(ctx context.Context, adminID uint64, input *usecase.CreateAdminNotificationInput) (*entity.AdminNotification, error) {
	notification := &entity.AdminNotification{
		NotificationBase: entity.NotificationBase{
			Type:    strings.TrimSpace(input.Type),
			Title:   strings.TrimSpace(input.Title),
			Message: input.Message,
		},
		AdminID:     adminID,
		ReferenceID: input.ReferenceID,
	}

	if err := s.repo.Create(ctx, notification); err != nil {
		return nil, errors.Wrap(err, "failed to create notification")
	}

	return notification, nil
}

func (s *adminNotificationService) List(ctx context.Context, adminID uint64) ([]*entity.AdminNotification, error) {
	notifications, err := s.repo.FindByOwner(ctx, adminID, 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return notifications, nil
}

type driverNotificationService struct {
	*notificationService[entity.DriverNotification, *entity.DriverNotification]
	listLimit int
	logger    *slog.Logger
}

// NewDriverNotificationService creates a new driver notification service instance
func NewDriverNotificationService(
	repo repository.DriverNotificationRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.DriverNotificationUsecase {
	return &driverNotificationService{
		notificationService: &notificationService[entity.DriverNotification, *entity.DriverNotification]{
			repo:     repo,
			notFound: domainerrors.ErrDriverNotificationNotFound,
		},
		listLimit: cfg.Notification.DriverListLimit,
		logger:    logger,
	}
}

// Create stores a driver notification without validating it; the type defaults to order_assigned.
func (s *driverNotificationService) Create(ctx context.Context, input *usecase.DriverNotificationInput) (*entity.DriverNotification, error) {
	notification := &entity.DriverNotification{
		NotificationBase: entity.NotificationBase{
			Type:    stringOr(input.Type, entity.DefaultDriverNotificationType),
			Title:   input.Title,
			Message: input.Message,
		},
		DriverID:    input.DriverID,
		ReferenceID: input.ReferenceID,
	}

	if err := s.repo.Create(ctx, notification); err != nil {
		return nil, errors.Wrapf(err, "failed to create notification for driver %d", input.DriverID)
	}

	return notification, nil
}

// List returns the newest notifications of the driver. UnreadCount covers the returned page only.
func (s *driverNotificationService) List(ctx context.Context, driverID uint64) (*usecase.DriverNotificationList, error) {
	notifications, err := s.repo.FindByOwner(ctx, driverID, s.listLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list driver notifications")
	}

	unread := 0
	for _, notification := range notifications {
		if !notification.IsRead {
			unread++
		}
	}

	s.logger.DebugContext(ctx, "listed driver notifications",
		slog.Uint64("driver_id", driverID),
		slog.Int("count", len(notifications)),
		slog.Int("unread", unread),
	)

	return &usecase.DriverNotificationList{
		Notifications: notifications,
		UnreadCount:   unread,
	}, nil
}
