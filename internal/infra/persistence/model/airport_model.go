package model

import "time"

// AirportModel is the GORM-specific struct for the 'airports' table.
type AirportModel struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(255);not null;index"`
	Code      string `gorm:"type:varchar(16);not null;uniqueIndex:idx_airports_code"`
	City      string `gorm:"type:varchar(255);not null"`
	Country   string `gorm:"type:varchar(255);not null"`
	Status    string `gorm:"type:varchar(16);not null;default:Active"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AirportModel) TableName() string {
	return "airports"
}
