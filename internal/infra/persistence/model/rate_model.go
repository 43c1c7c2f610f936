package model

import "time"

// DriverRateModel is the GORM-specific struct for the 'driver_rates' table.
type DriverRateModel struct {
	ID           uint64  `gorm:"primaryKey;autoIncrement"`
	DeliveryType string  `gorm:"type:varchar(255);not null"`
	Amount       float64 `gorm:"type:numeric(12,2);not null"`
	Status       string  `gorm:"type:varchar(16);not null;default:Active"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (DriverRateModel) TableName() string {
	return "driver_rates"
}

// LabourRateModel is the GORM-specific struct for the 'labour_rates' table.
type LabourRateModel struct {
	ID         uint64  `gorm:"primaryKey;autoIncrement"`
	LabourType string  `gorm:"type:varchar(255);not null"`
	Amount     float64 `gorm:"type:numeric(12,2);not null"`
	Status     string  `gorm:"type:varchar(16);not null;default:Active"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (LabourRateModel) TableName() string {
	return "labour_rates"
}
