package entity

import "time"

// Airport is a pickup or drop-off airport served by the operation.
type Airport struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"` // IATA style code, stored upper-case and unique.
	City      string    `json:"city"`
	Country   string    `json:"country"`
	Status    string    `json:"status"` // Active or Inactive.
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
