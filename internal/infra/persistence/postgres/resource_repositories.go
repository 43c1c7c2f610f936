package postgres

import (
	"encoding/json"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"
	"backoffice/internal/infra/persistence/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// NewDriverRateRepository searches on delivery_type.
func NewDriverRateRepository(db *gorm.DB) repository.DriverRateRepository {
	return &crudRepository[entity.DriverRate, model.DriverRateModel]{
		db:            db,
		name:          "driver rate",
		searchColumns: []string{"delivery_type"},
		toDomain:      toDriverRateDomain,
		fromDomain:    fromDriverRateDomain,
	}
}

// NewLabourRateRepository searches on labour_type.
func NewLabourRateRepository(db *gorm.DB) repository.LabourRateRepository {
	return &crudRepository[entity.LabourRate, model.LabourRateModel]{
		db:            db,
		name:          "labour rate",
		searchColumns: []string{"labour_type"},
		toDomain:      toLabourRateDomain,
		fromDomain:    fromLabourRateDomain,
	}
}

// NewPetrolBulkRepository searches on name.
func NewPetrolBulkRepository(db *gorm.DB) repository.PetrolBulkRepository {
	return &crudRepository[entity.PetrolBulk, model.PetrolBulkModel]{
		db:            db,
		name:          "petrol bulk",
		searchColumns: []string{"name"},
		toDomain:      toPetrolBulkDomain,
		fromDomain:    fromPetrolBulkDomain,
	}
}

// NewVegetableAvailabilityRepository searches on vegetable_name.
func NewVegetableAvailabilityRepository(db *gorm.DB) repository.VegetableAvailabilityRepository {
	return &crudRepository[entity.VegetableAvailability, model.VegetableAvailabilityModel]{
		db:            db,
		name:          "vegetable availability",
		searchColumns: []string{"vegetable_name"},
		toDomain:      toVegetableAvailabilityDomain,
		fromDomain:    fromVegetableAvailabilityDomain,
	}
}

// --- Mapper Functions ---

func toDriverRateDomain(data *model.DriverRateModel) *entity.DriverRate {
	return &entity.DriverRate{
		ID:           data.ID,
		DeliveryType: data.DeliveryType,
		Amount:       data.Amount,
		Status:       data.Status,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromDriverRateDomain(data *entity.DriverRate) *model.DriverRateModel {
	return &model.DriverRateModel{
		ID:           data.ID,
		DeliveryType: data.DeliveryType,
		Amount:       data.Amount,
		Status:       data.Status,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func toLabourRateDomain(data *model.LabourRateModel) *entity.LabourRate {
	return &entity.LabourRate{
		ID:         data.ID,
		LabourType: data.LabourType,
		Amount:     data.Amount,
		Status:     data.Status,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromLabourRateDomain(data *entity.LabourRate) *model.LabourRateModel {
	return &model.LabourRateModel{
		ID:         data.ID,
		LabourType: data.LabourType,
		Amount:     data.Amount,
		Status:     data.Status,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func toPetrolBulkDomain(data *model.PetrolBulkModel) *entity.PetrolBulk {
	return &entity.PetrolBulk{
		ID:            data.ID,
		Name:          data.Name,
		Location:      data.Location,
		ContactNumber: data.ContactNumber,
		Capacity:      data.Capacity,
		Status:        data.Status,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromPetrolBulkDomain(data *entity.PetrolBulk) *model.PetrolBulkModel {
	return &model.PetrolBulkModel{
		ID:            data.ID,
		Name:          data.Name,
		Location:      data.Location,
		ContactNumber: data.ContactNumber,
		Capacity:      data.Capacity,
		Status:        data.Status,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func toVegetableAvailabilityDomain(data *model.VegetableAvailabilityModel) *entity.VegetableAvailability {
	return &entity.VegetableAvailability{
		ID:               data.ID,
		VegetableName:    data.VegetableName,
		Quantity:         data.Quantity,
		Unit:             data.Unit,
		Status:           data.Status,
		VegetableHistory: toRawJSON(data.VegetableHistory),
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func fromVegetableAvailabilityDomain(data *entity.VegetableAvailability) *model.VegetableAvailabilityModel {
	return &model.VegetableAvailabilityModel{
		ID:               data.ID,
		VegetableName:    data.VegetableName,
		Quantity:         data.Quantity,
		Unit:             data.Unit,
		Status:           data.Status,
		VegetableHistory: fromRawJSON(data.VegetableHistory),
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

// toRawJSON keeps NULL columns as an absent field instead of the literal null.
func toRawJSON(data datatypes.JSON) json.RawMessage {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	return json.RawMessage(data)
}

func fromRawJSON(data json.RawMessage) datatypes.JSON {
	if len(data) == 0 {
		return nil
	}

	return datatypes.JSON(data)
}
