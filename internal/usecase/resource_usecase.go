package usecase

import (
	"context"
	"encoding/json"

	"backoffice/internal/domain/entity"
)

// ResourceUsecase is the lifecycle shared by every plain record. C is the create input,
// P the partial update input.
type ResourceUsecase[E, C, P any] interface {
	Create(ctx context.Context, input *C) (*E, error)
	Get(ctx context.Context, id uint64) (*E, error)
	List(ctx context.Context, params ListParams) (*ListResult[E], error)
	Update(ctx context.Context, id uint64, input *P) (*E, error)
	Delete(ctx context.Context, id uint64) error
}

// CreateAirportInput represents the input for creating an airport
type CreateAirportInput struct {
	Name    string `json:"name" validate:"required,max=255"`
	Code    string `json:"code" validate:"required,alphanum,min=2,max=10"`
	City    string `json:"city" validate:"required,max=255"`
	Country string `json:"country" validate:"required,max=255"`
	Status  string `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

// UpdateAirportInput represents a partial airport update
type UpdateAirportInput struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Code    *string `json:"code,omitempty" validate:"omitempty,alphanum,min=2,max=10"`
	City    *string `json:"city,omitempty" validate:"omitempty,min=1,max=255"`
	Country *string `json:"country,omitempty" validate:"omitempty,min=1,max=255"`
	Status  *string `json:"status,omitempty" validate:"omitempty,oneof=Active Inactive"`
}

// AirportUsecase adds the multi-column search to the airport lifecycle
type AirportUsecase interface {
	ResourceUsecase[entity.Airport, CreateAirportInput, UpdateAirportInput]

	// Search matches query against name, code and city.
	Search(ctx context.Context, params ListParams) (*ListResult[entity.Airport], error)
}

// CreateDriverRateInput represents the input for creating a driver rate
type CreateDriverRateInput struct {
	DeliveryType string  `json:"deliveryType" validate:"required,max=255"`
	Amount       float64 `json:"amount" validate:"required,gt=0"`
	Status       string  `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

// UpdateDriverRateInput represents a partial driver rate update
type UpdateDriverRateInput struct {
	DeliveryType *string  `json:"deliveryType,omitempty" validate:"omitempty,min=1,max=255"`
	Amount       *float64 `json:"amount,omitempty" validate:"omitempty,gt=0"`
	Status       *string  `json:"status,omitempty" validate:"omitempty,oneof=Active Inactive"`
}

// CreateLabourRateInput represents the input for creating a labour rate
type CreateLabourRateInput struct {
	LabourType string  `json:"labourType" validate:"required,max=255"`
	Amount     float64 `json:"amount" validate:"required,gt=0"`
	Status     string  `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

// UpdateLabourRateInput represents a partial labour rate update
type UpdateLabourRateInput struct {
	LabourType *string  `json:"labourType,omitempty" validate:"omitempty,min=1,max=255"`
	Amount     *float64 `json:"amount,omitempty" validate:"omitempty,gt=0"`
	Status     *string  `json:"status,omitempty" validate:"omitempty,oneof=Active Inactive"`
}

// CreatePetrolBulkInput represents the input for registering a petrol depot
type CreatePetrolBulkInput struct {
	Name          string  `json:"name" validate:"required,max=255"`
	Location      string  `json:"location" validate:"required,max=255"`
	ContactNumber string  `json:"contactNumber" validate:"required,max=32"`
	Capacity      float64 `json:"capacity" validate:"gte=0"`
	Status        string  `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

// UpdatePetrolBulkInput represents a partial petrol depot update
type UpdatePetrolBulkInput struct {
	Name          *string  `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Location      *string  `json:"location,omitempty" validate:"omitempty,min=1,max=255"`
	ContactNumber *string  `json:"contactNumber,omitempty" validate:"omitempty,min=1,max=32"`
	Capacity      *float64 `json:"capacity,omitempty" validate:"omitempty,gte=0"`
	Status        *string  `json:"status,omitempty" validate:"omitempty,oneof=Active Inactive"`
}

// CreateVegetableAvailabilityInput represents the input for creating a vegetable availability record
type CreateVegetableAvailabilityInput struct {
	VegetableName    string          `json:"vegetableName" validate:"required,max=255"`
	Quantity         float64         `json:"quantity" validate:"gte=0"`
	Unit             string          `json:"unit" validate:"required,max=32"`
	Status           string          `json:"status" validate:"omitempty,oneof=Available Unavailable"`
	VegetableHistory json.RawMessage `json:"vegetable_history,omitempty" validate:"jsonarray"`
}

// UpdateVegetableAvailabilityInput represents a partial vegetable availability update.
// A present vegetable_history replaces the stored one.
type UpdateVegetableAvailabilityInput struct {
	VegetableName    *string         `json:"vegetableName,omitempty" validate:"omitempty,min=1,max=255"`
	Quantity         *float64        `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	Unit             *string         `json:"unit,omitempty" validate:"omitempty,min=1,max=32"`
	Status           *string         `json:"status,omitempty" validate:"omitempty,oneof=Available Unavailable"`
	VegetableHistory json.RawMessage `json:"vegetable_history,omitempty" validate:"jsonarray"`
}

type (
	DriverRateUsecase            = ResourceUsecase[entity.DriverRate, CreateDriverRateInput, UpdateDriverRateInput]
	LabourRateUsecase            = ResourceUsecase[entity.LabourRate, CreateLabourRateInput, UpdateLabourRateInput]
	PetrolBulkUsecase            = ResourceUsecase[entity.PetrolBulk, CreatePetrolBulkInput, UpdatePetrolBulkInput]
	VegetableAvailabilityUsecase = ResourceUsecase[entity.VegetableAvailability, CreateVegetableAvailabilityInput, UpdateVegetableAvailabilityInput]
)
