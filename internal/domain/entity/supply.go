package entity

import (
	"encoding/json"
	"time"
)

// PetrolBulk is a bulk fuel depot vehicles are refuelled from.
type PetrolBulk struct {
	ID            uint64    `json:"id"`
	Name          string    `json:"name"`
	Location      string    `json:"location"`
	ContactNumber string    `json:"contactNumber"`
	Capacity      float64   `json:"capacity"` // Litres.
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// VegetableAvailability records how much of a vegetable can currently be supplied.
type VegetableAvailability struct {
	ID               uint64          `json:"id"`
	VegetableName    string          `json:"vegetableName"`
	Quantity         float64         `json:"quantity"`
	Unit             string          `json:"unit"`
	Status           string          `json:"status"`                      // Available or Unavailable.
	VegetableHistory json.RawMessage `json:"vegetable_history,omitempty"` // JSON array, opaque to the service.
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}
