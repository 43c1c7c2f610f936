package entity

import "time"

// DriverRate is the amount paid to a driver for one delivery type.
type DriverRate struct {
	ID           uint64    `json:"id"`
	DeliveryType string    `json:"deliveryType"` // e.g. "BOX ORDER".
	Amount       float64   `json:"amount"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// LabourRate is the amount paid for one kind of labour.
type LabourRate struct {
	ID         uint64    `json:"id"`
	LabourType string    `json:"labourType"`
	Amount     float64   `json:"amount"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
