// Package model holds the GORM table definitions.
package model

// All lists every table, in migration order. Shared by AutoMigrate and cmd/gen.
func All() []any {
	return []any{
		&AirportModel{},
		&DriverRateModel{},
		&LabourRateModel{},
		&PetrolBulkModel{},
		&VegetableAvailabilityModel{},
		&AdminNotificationModel{},
		&DriverNotificationModel{},
		&PreOrderModel{},
	}
}
