package model

import (
	"time"

	"gorm.io/datatypes"
)

// PetrolBulkModel is the GORM-specific struct for the 'petrol_bulks' table.
type PetrolBulkModel struct {
	ID            uint64  `gorm:"primaryKey;autoIncrement"`
	Name          string  `gorm:"type:varchar(255);not null"`
	Location      string  `gorm:"type:varchar(255);not null"`
	ContactNumber string  `gorm:"type:varchar(32);not null"`
	Capacity      float64 `gorm:"type:numeric(14,2);not null;default:0"`
	Status        string  `gorm:"type:varchar(16);not null;default:Active"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (PetrolBulkModel) TableName() string {
	return "petrol_bulks"
}

// VegetableAvailabilityModel is the GORM-specific struct for the 'vegetable_availabilities' table.
type VegetableAvailabilityModel struct {
	ID               uint64         `gorm:"primaryKey;autoIncrement"`
	VegetableName    string         `gorm:"type:varchar(255);not null"`
	Quantity         float64        `gorm:"type:numeric(14,3);not null;default:0"`
	Unit             string         `gorm:"type:varchar(32);not null"`
	Status           string         `gorm:"type:varchar(16);not null;default:Available"`
	VegetableHistory datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (VegetableAvailabilityModel) TableName() string {
	return "vegetable_availabilities"
}
