package entity

import (
	"encoding/json"
	"time"
)

// Collection types of a pre-order.
const (
	CollectionTypeBox = "Box"
	CollectionTypeBag = "Bag"
)

// Pre-order statuses. Any status may move to any other.
const (
	PreOrderStatusPending   = "pending"
	PreOrderStatusCompleted = "completed"
	PreOrderStatusCancelled = "cancelled"
)

// PreOrder is a fulfilment snapshot of an external order, addressed by OrderID.
type PreOrder struct {
	ID                 uint64          `json:"id"`
	OrderID            string          `json:"order_id"`            // External business key, unique.
	CollectionType     string          `json:"collection_type"`     // Box or Bag.
	ProductAssignments json.RawMessage `json:"product_assignments"` // JSON array.
	DeliveryRoutes     json.RawMessage `json:"delivery_routes"`     // JSON array, elements may carry driver_id.
	SummaryData        json.RawMessage `json:"summary_data"`        // JSON object.
	Status             string          `json:"status"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}
