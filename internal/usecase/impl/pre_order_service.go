package impl

import (
	"context"
	"log/slog"
	"strings"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/errors"
	"backoffice/internal/usecase"
)

const (
	emptyJSONArray  = "[]"
	emptyJSONObject = "{}"

	orderAssignedTitle = "New order assigned"
)

type preOrderService struct {
	preOrderRepo repository.PreOrderRepository
	txManager    repository.TransactionManager
	notifier     usecase.DriverNotifier
	logger       *slog.Logger
}

// NewPreOrderService creates a new pre-order service instance
func NewPreOrderService(
	preOrderRepo repository.PreOrderRepository,
	txManager repository.TransactionManager,
	notifier usecase.DriverNotifier,
	logger *slog.Logger,
) usecase.PreOrderUsecase {
	return &preOrderService{
		preOrderRepo: preOrderRepo,
		txManager:    txManager,
		notifier:     notifier,
		logger:       logger,
	}
}

// upsertOutcome is what one upsert transaction did.
type upsertOutcome struct {
	preOrder        *entity.PreOrder
	created         bool
	previousDrivers []uint64 // Drivers of the routes that were overwritten.
}

// Upsert creates or updates the pre-order of input.OrderID inside one transaction holding
// the row lock. An insert that loses the race on the unique order id is retried once and
// then takes the update branch.
func (s *preOrderService) Upsert(ctx context.Context, input *usecase.UpsertPreOrderInput) (*usecase.UpsertPreOrderResult, error) {
	candidate := &entity.PreOrder{
		OrderID:            strings.TrimSpace(input.OrderID),
		CollectionType:     stringOr(input.CollectionType, entity.CollectionTypeBox),
		ProductAssignments: jsonOr(input.ProductAssignments, emptyJSONArray),
		DeliveryRoutes:     jsonOr(input.DeliveryRoutes, emptyJSONArray),
		SummaryData:        jsonOr(input.SummaryData, emptyJSONObject),
	}

	outcome, err := s.upsertOnce(ctx, candidate)
	if errors.Is(err, repository.ErrDuplicateKey) {
		s.logger.InfoContext(ctx, "pre-order created concurrently, retrying as update",
			slog.String("order_id", candidate.OrderID),
		)
		outcome, err = s.upsertOnce(ctx, candidate)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to upsert pre-order")
	}

	s.notifyAssignedDrivers(ctx, outcome)

	return &usecase.UpsertPreOrderResult{
		PreOrder: outcome.preOrder,
		Created:  outcome.created,
	}, nil
}

func (s *preOrderService) upsertOnce(ctx context.Context, candidate *entity.PreOrder) (*upsertOutcome, error) {
	var outcome *upsertOutcome

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		repo := factory.NewPreOrderRepository()

		existing, err := repo.FindByOrderIDForUpdate(ctx, candidate.OrderID)
		if err != nil && !errors.Is(err, repository.ErrRecordNotFound) {
			return err
		}

		if existing == nil {
			preOrder := *candidate
			preOrder.Status = entity.PreOrderStatusPending
			if err := repo.Create(ctx, &preOrder); err != nil {
				return err
			}
			outcome = &upsertOutcome{preOrder: &preOrder, created: true}

			return nil
		}

		previousDrivers := routeDriverIDs(existing.DeliveryRoutes)

		existing.CollectionType = candidate.CollectionType
		existing.ProductAssignments = candidate.ProductAssignments
		existing.DeliveryRoutes = candidate.DeliveryRoutes
		existing.SummaryData = candidate.SummaryData
		if err := repo.UpdatePayload(ctx, existing); err != nil {
			return err
		}

		// Re-read so updated_at reflects the write.
		updated, err := repo.FindByOrderID(ctx, existing.OrderID)
		if err != nil {
			return err
		}
		outcome = &upsertOutcome{preOrder: updated, previousDrivers: previousDrivers}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return outcome, nil
}

// notifyAssignedDrivers notifies every driver of the new routes that was not already
// assigned before the upsert.
func (s *preOrderService) notifyAssignedDrivers(ctx context.Context, outcome *upsertOutcome) {
	previous := make(map[uint64]struct{}, len(outcome.previousDrivers))
	for _, id := range outcome.previousDrivers {
		previous[id] = struct{}{}
	}

	orderID := outcome.preOrder.OrderID
	for _, driverID := range routeDriverIDs(outcome.preOrder.DeliveryRoutes) {
		if _, ok := previous[driverID]; ok {
			continue
		}

		reference := orderID
		s.notifier.Notify(ctx, &usecase.DriverNotificationInput{
			DriverID:    driverID,
			Type:        entity.DefaultDriverNotificationType,
			Title:       orderAssignedTitle,
			Message:     "You have been assigned to order " + orderID,
			ReferenceID: &reference,
		})
	}
}

// UpdateStatus moves the pre-order to any status and returns the stored record.
func (s *preOrderService) UpdateStatus(ctx context.Context, orderID string, input *usecase.UpdatePreOrderStatusInput) (*entity.PreOrder, error) {
	if err := s.preOrderRepo.UpdateStatus(ctx, orderID, input.Status); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, errors.WithStack(domainerrors.ErrPreOrderNotFound)
		}

		return nil, errors.Wrap(err, "failed to update pre-order status")
	}

	return s.Get(ctx, orderID)
}

func (s *preOrderService) Get(ctx context.Context, orderID string) (*entity.PreOrder, error) {
	preOrder, err := s.preOrderRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, errors.WithStack(domainerrors.ErrPreOrderNotFound)
		}

		return nil, errors.Wrap(err, "failed to get pre-order")
	}

	return preOrder, nil
}

// List rejects a status filter outside the status enum.
func (s *preOrderService) List(ctx context.Context, status string) ([]*entity.PreOrder, error) {
	switch status {
	case "", entity.PreOrderStatusPending, entity.PreOrderStatusCompleted, entity.PreOrderStatusCancelled:
	default:
		return nil, errors.WithStack(domainerrors.ErrInvalidInput.WithDetails("unknown pre-order status: " + status))
	}

	preOrders, err := s.preOrderRepo.List(ctx, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pre-orders")
	}

	return preOrders, nil
}

func (s *preOrderService) Delete(ctx context.Context, orderID string) error {
	if err := s.preOrderRepo.DeleteByOrderID(ctx, orderID); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return errors.WithStack(domainerrors.ErrPreOrderNotFound)
		}

		return errors.Wrap(err, "failed to delete pre-order")
	}

	return nil
}
