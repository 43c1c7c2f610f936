package postgres

import (
	"context"
	"strings"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"
	"backoffice/internal/errors"
	"backoffice/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

var airportSearchColumns = []string{"name", "code", "city"}

// airportRepository implements the repository.AirportRepository interface.
type airportRepository struct {
	*crudRepository[entity.Airport, model.AirportModel]
}

// NewAirportRepository is the constructor for airportRepository. Listing searches on name.
func NewAirportRepository(db *gorm.DB) repository.AirportRepository {
	return &airportRepository{
		crudRepository: &crudRepository[entity.Airport, model.AirportModel]{
			db:            db,
			name:          "airport",
			searchColumns: []string{"name"},
			toDomain:      toAirportDomain,
			fromDomain:    fromAirportDomain,
		},
	}
}

// FindByCode looks the code up on the primary so a following insert sees the latest state.
func (repo *airportRepository) FindByCode(ctx context.Context, code string) (*entity.Airport, error) {
	var airportM model.AirportModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("code = ?", strings.ToUpper(strings.TrimSpace(code))).
		First(&airportM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to find airport by code")
	}

	return toAirportDomain(&airportM), nil
}

// Search matches the term against name, code and city.
func (repo *airportRepository) Search(ctx context.Context, query repository.ListQuery) ([]*entity.Airport, int64, error) {
	return repo.list(ctx, query, airportSearchColumns)
}

// --- Mapper Functions ---

func toAirportDomain(data *model.AirportModel) *entity.Airport {
	return &entity.Airport{
		ID:        data.ID,
		Name:      data.Name,
		Code:      data.Code,
		City:      data.City,
		Country:   data.Country,
		Status:    data.Status,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromAirportDomain(data *entity.Airport) *model.AirportModel {
	return &model.AirportModel{
		ID:        data.ID,
		Name:      data.Name,
		Code:      data.Code,
		City:      data.City,
		Country:   data.Country,
		Status:    data.Status,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
