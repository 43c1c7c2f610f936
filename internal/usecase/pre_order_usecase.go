package usecase

import (
	"context"
	"encoding/json"

	"backoffice/internal/domain/entity"
)

// UpsertPreOrderInput represents the input of the pre-order upsert.
// Absent payloads are stored as an empty array or object.
type UpsertPreOrderInput struct {
	OrderID            string          `json:"order_id" validate:"required,max=128"`
	CollectionType     string          `json:"collection_type" validate:"omitempty,oneof=Box Bag"`
	ProductAssignments json.RawMessage `json:"product_assignments,omitempty" validate:"jsonarray"`
	DeliveryRoutes     json.RawMessage `json:"delivery_routes,omitempty" validate:"jsonarray"`
	SummaryData        json.RawMessage `json:"summary_data,omitempty" validate:"jsonobject"`
}

// UpdatePreOrderStatusInput represents a status transition
type UpdatePreOrderStatusInput struct {
	Status string `json:"status" validate:"required,oneof=pending completed cancelled"`
}

// UpsertPreOrderResult reports which branch of the upsert ran.
type UpsertPreOrderResult struct {
	PreOrder *entity.PreOrder
	Created  bool
}

// PreOrderUsecase defines the pre-order use cases
type PreOrderUsecase interface {
	// Upsert creates the pre-order or overwrites the payload of the existing one.
	Upsert(ctx context.Context, input *UpsertPreOrderInput) (*UpsertPreOrderResult, error)

	// UpdateStatus moves the pre-order to any status.
	UpdateStatus(ctx context.Context, orderID string, input *UpdatePreOrderStatusInput) (*entity.PreOrder, error)

	Get(ctx context.Context, orderID string) (*entity.PreOrder, error)

	// List returns pre-orders newest first, filtered by status when not empty.
	List(ctx context.Context, status string) ([]*entity.PreOrder, error)

	Delete(ctx context.Context, orderID string) error
}
