package model

import "time"

// AdminNotificationModel is the GORM-specific struct for the 'notifications' table.
type AdminNotificationModel struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	AdminID     uint64    `gorm:"not null;index:idx_notifications_admin_created,priority:1"`
	Type        string    `gorm:"type:varchar(64);not null"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Message     string    `gorm:"type:text"`
	ReferenceID *uint64   `gorm:"index"`
	IsRead      bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time `gorm:"index:idx_notifications_admin_created,priority:2,sort:desc"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdminNotificationModel) TableName() string {
	return "notifications"
}

// DriverNotificationModel is the GORM-specific struct for the 'driver_notifications' table.
type DriverNotificationModel struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	DriverID    uint64    `gorm:"not null;index:idx_driver_notifications_driver_created,priority:1"`
	Type        string    `gorm:"type:varchar(64);not null;default:order_assigned"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Message     string    `gorm:"type:text"`
	ReferenceID *string   `gorm:"type:varchar(128);index"`
	IsRead      bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time `gorm:"index:idx_driver_notifications_driver_created,priority:2,sort:desc"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (DriverNotificationModel) TableName() string {
	return "driver_notifications"
}
