// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"backoffice/internal/domain/entity"
)

// Persistence errors shared by every repository. Use cases translate them into AppErrors.
var (
	// ErrRecordNotFound is returned when no row matches the lookup key (and owner, where scoped).
	ErrRecordNotFound = errors.New("record not found")
	// ErrDuplicateKey is returned when a write violates a unique index.
	ErrDuplicateKey = errors.New("duplicate key")
)

// ListQuery is an already normalised page request.
type ListQuery struct {
	Offset int
	Limit  int
	Search string // Case-insensitive substring, empty for no filter.
}

// ResourceRepository is the persistence contract of a plain record keyed by a numeric id.
type ResourceRepository[E any] interface {
	// Create inserts the record and fills in its generated id and timestamps.
	Create(ctx context.Context, record *E) error

	// FindByID returns ErrRecordNotFound when the id does not exist.
	FindByID(ctx context.Context, id uint64) (*E, error)

	// List returns one page, newest first, and the total number of matching rows.
	List(ctx context.Context, query ListQuery) ([]*E, int64, error)

	// Update overwrites every column but created_at. ErrRecordNotFound when no row matched.
	Update(ctx context.Context, record *E) error

	// Delete removes the row. ErrRecordNotFound when no row matched.
	Delete(ctx context.Context, id uint64) error
}

// AirportRepository adds code lookups and the multi-column search.
type AirportRepository interface {
	ResourceRepository[entity.Airport]

	// FindByCode reads from the primary so the result can guard a write.
	FindByCode(ctx context.Context, code string) (*entity.Airport, error)

	// Search matches the term against name, code and city.
	Search(ctx context.Context, query ListQuery) ([]*entity.Airport, int64, error)
}

type (
	DriverRateRepository            = ResourceRepository[entity.DriverRate]
	LabourRateRepository            = ResourceRepository[entity.LabourRate]
	PetrolBulkRepository            = ResourceRepository[entity.PetrolBulk]
	VegetableAvailabilityRepository = ResourceRepository[entity.VegetableAvailability]
)
