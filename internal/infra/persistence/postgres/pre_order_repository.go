package postgres

import (
	"context"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"
	"backoffice/internal/errors"
	"backoffice/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// preOrderRepository implements the repository.PreOrderRepository interface.
type preOrderRepository struct {
	db *gorm.DB
}

// NewPreOrderRepository is the constructor for preOrderRepository.
func NewPreOrderRepository(db *gorm.DB) repository.PreOrderRepository {
	return &preOrderRepository{
		db: db,
	}
}

// Create persists a new pre-order.
func (repo *preOrderRepository) Create(ctx context.Context, preOrder *entity.PreOrder) error {
	preOrderM := fromPreOrderDomain(preOrder)

	if err := repo.db.WithContext(ctx).Create(preOrderM).Error; err != nil {
		return translateWriteError(err, "failed to create pre-order")
	}

	*preOrder = *toPreOrderDomain(preOrderM)

	return nil
}

// FindByOrderID retrieves a pre-order by its external order id.
func (repo *preOrderRepository) FindByOrderID(ctx context.Context, orderID string) (*entity.PreOrder, error) {
	return repo.findByOrderID(repo.db.WithContext(ctx), orderID)
}

// FindByOrderIDForUpdate reads from the primary and takes a row lock (SELECT ... FOR UPDATE).
func (repo *preOrderRepository) FindByOrderIDForUpdate(ctx context.Context, orderID string) (*entity.PreOrder, error) {
	return repo.findByOrderID(
		repo.db.WithContext(ctx).Clauses(dbresolver.Write, clause.Locking{Strength: clause.LockingStrengthUpdate}),
		orderID,
	)
}

func (repo *preOrderRepository) findByOrderID(db *gorm.DB, orderID string) (*entity.PreOrder, error) {
	var preOrderM model.PreOrderModel

	if err := db.Where("order_id = ?", orderID).First(&preOrderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to find pre-order by order ID")
	}

	return toPreOrderDomain(&preOrderM), nil
}

// UpdatePayload overwrites the four mutable fields; status and created_at are untouched.
func (repo *preOrderRepository) UpdatePayload(ctx context.Context, preOrder *entity.PreOrder) error {
	preOrderM := fromPreOrderDomain(preOrder)

	result := repo.db.WithContext(ctx).
		Model(&model.PreOrderModel{}).
		Where("order_id = ?", preOrder.OrderID).
		Updates(map[string]any{
			"collection_type":     preOrderM.CollectionType,
			"product_assignments": preOrderM.ProductAssignments,
			"delivery_routes":     preOrderM.DeliveryRoutes,
			"summary_data":        preOrderM.SummaryData,
		})

	if result.Error != nil {
		return translateWriteError(result.Error, "failed to update pre-order")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRecordNotFound
	}

	return nil
}

// UpdateStatus sets the status of a pre-order.
func (repo *preOrderRepository) UpdateStatus(ctx context.Context, orderID, status string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PreOrderModel{}).
		Where("order_id = ?", orderID).
		Update("status", status)

	if result.Error != nil {
		return translateWriteError(result.Error, "failed to update pre-order status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRecordNotFound
	}

	return nil
}

// List retrieves pre-orders newest first, optionally filtered by status.
func (repo *preOrderRepository) List(ctx context.Context, status string) ([]*entity.PreOrder, error) {
	var preOrderModels []*model.PreOrderModel

	query := repo.db.WithContext(ctx).Order(newestFirst)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Find(&preOrderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list pre-orders")
	}

	preOrders := make([]*entity.PreOrder, 0, len(preOrderModels))
	for _, preOrderM := range preOrderModels {
		preOrders = append(preOrders, toPreOrderDomain(preOrderM))
	}

	return preOrders, nil
}

// DeleteByOrderID removes a pre-order.
func (repo *preOrderRepository) DeleteByOrderID(ctx context.Context, orderID string) error {
	result := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Delete(&model.PreOrderModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete pre-order")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRecordNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toPreOrderDomain(data *model.PreOrderModel) *entity.PreOrder {
	return &entity.PreOrder{
		ID:                 data.ID,
		OrderID:            data.OrderID,
		CollectionType:     data.CollectionType,
		ProductAssignments: toRawJSON(data.ProductAssignments),
		DeliveryRoutes:     toRawJSON(data.DeliveryRoutes),
		SummaryData:        toRawJSON(data.SummaryData),
		Status:             data.Status,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

func fromPreOrderDomain(data *entity.PreOrder) *model.PreOrderModel {
	return &model.PreOrderModel{
		ID:                 data.ID,
		OrderID:            data.OrderID,
		CollectionType:     data.CollectionType,
		ProductAssignments: fromRawJSON(data.ProductAssignments),
		DeliveryRoutes:     fromRawJSON(data.DeliveryRoutes),
		SummaryData:        fromRawJSON(data.SummaryData),
		Status:             data.Status,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
