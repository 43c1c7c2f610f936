package model

import (
	"time"

	"gorm.io/datatypes"
)

// PreOrderModel is the GORM-specific struct for the 'pre_orders' table.
// The unique index on order_id backs the upsert.
type PreOrderModel struct {
	ID                 uint64         `gorm:"primaryKey;autoIncrement"`
	OrderID            string         `gorm:"type:varchar(128);not null;uniqueIndex:idx_pre_orders_order_id"`
	CollectionType     string         `gorm:"type:varchar(8);not null;default:Box"`
	ProductAssignments datatypes.JSON `gorm:"type:jsonb;not null"`
	DeliveryRoutes     datatypes.JSON `gorm:"type:jsonb;not null"`
	SummaryData        datatypes.JSON `gorm:"type:jsonb;not null"`
	Status             string         `gorm:"type:varchar(16);not null;default:pending;index"`
	CreatedAt          time.Time      `gorm:"index"`
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (PreOrderModel) TableName() string {
	return "pre_orders"
}
