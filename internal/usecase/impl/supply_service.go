package impl

import (
	"strings"

	"backoffice/config"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/usecase"
)

// NewPetrolBulkService creates the petrol depot lifecycle
func NewPetrolBulkService(repo repository.PetrolBulkRepository, cfg *config.Config) usecase.PetrolBulkUsecase {
	return newResourceService(repo, resourceDescriptor[entity.PetrolBulk, usecase.CreatePetrolBulkInput, usecase.UpdatePetrolBulkInput]{
		name:     "petrol bulk",
		notFound: domainerrors.ErrPetrolBulkNotFound,
		build: func(input *usecase.CreatePetrolBulkInput) *entity.PetrolBulk {
			return &entity.PetrolBulk{
				Name:          strings.TrimSpace(input.Name),
				Location:      strings.TrimSpace(input.Location),
				ContactNumber: strings.TrimSpace(input.ContactNumber),
				Capacity:      input.Capacity,
				Status:        stringOr(input.Status, entity.StatusActive),
			}
		},
		apply: func(depot *entity.PetrolBulk, input *usecase.UpdatePetrolBulkInput) {
			assign(&depot.Name, input.Name)
			assign(&depot.Location, input.Location)
			assign(&depot.ContactNumber, input.ContactNumber)
			assign(&depot.Capacity, input.Capacity)
			assign(&depot.Status, input.Status)
		},
	}, cfg)
}

// NewVegetableAvailabilityService creates the vegetable availability lifecycle.
// vegetable_history reaches this layer already checked to be a JSON array.
func NewVegetableAvailabilityService(repo repository.VegetableAvailabilityRepository, cfg *config.Config) usecase.VegetableAvailabilityUsecase {
	return newResourceService(repo, resourceDescriptor[entity.VegetableAvailability, usecase.CreateVegetableAvailabilityInput, usecase.UpdateVegetableAvailabilityInput]{
		name:     "vegetable availability",
		notFound: domainerrors.ErrVegetableAvailabilityNotFound,
		build: func(input *usecase.CreateVegetableAvailabilityInput) *entity.VegetableAvailability {
			return &entity.VegetableAvailability{
				VegetableName:    strings.TrimSpace(input.VegetableName),
				Quantity:         input.Quantity,
				Unit:             strings.TrimSpace(input.Unit),
				Status:           stringOr(input.Status, entity.AvailabilityAvailable),
				VegetableHistory: presentJSON(input.VegetableHistory),
			}
		},
		apply: func(record *entity.VegetableAvailability, input *usecase.UpdateVegetableAvailabilityInput) {
			assign(&record.VegetableName, input.VegetableName)
			assign(&record.Quantity, input.Quantity)
			assign(&record.Unit, input.Unit)
			assign(&record.Status, input.Status)
			if history := presentJSON(input.VegetableHistory); history != nil {
				record.VegetableHistory = history
			}
		},
	}, cfg)
}
