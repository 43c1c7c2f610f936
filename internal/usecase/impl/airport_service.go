package impl

import (
	"context"
	"strings"

	"backoffice/config"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/errors"
	"backoffice/internal/usecase"
)

type airportService struct {
	*resourceService[entity.Airport, usecase.CreateAirportInput, usecase.UpdateAirportInput]
	airportRepo repository.AirportRepository
}

// NewAirportService creates a new airport service instance
func NewAirportService(airportRepo repository.AirportRepository, cfg *config.Config) usecase.AirportUsecase {
	s := &airportService{airportRepo: airportRepo}

	s.resourceService = newResourceService[entity.Airport](airportRepo, resourceDescriptor[entity.Airport, usecase.CreateAirportInput, usecase.UpdateAirportInput]{
		name:     "airport",
		notFound: domainerrors.ErrAirportNotFound,
		conflict: domainerrors.ErrAirportCodeExists,
		build: func(input *usecase.CreateAirportInput) *entity.Airport {
			return &entity.Airport{
				Name:    strings.TrimSpace(input.Name),
				Code:    normalizeAirportCode(input.Code),
				City:    strings.TrimSpace(input.City),
				Country: strings.TrimSpace(input.Country),
				Status:  stringOr(input.Status, entity.StatusActive),
			}
		},
		apply: func(airport *entity.Airport, input *usecase.UpdateAirportInput) {
			assign(&airport.Name, input.Name)
			assign(&airport.City, input.City)
			assign(&airport.Country, input.Country)
			assign(&airport.Status, input.Status)
			if input.Code != nil {
				airport.Code = normalizeAirportCode(*input.Code)
			}
		},
		beforeWrite: s.ensureCodeAvailable,
	}, cfg)

	return s
}

// Search matches the query against name, code and city.
func (s *airportService) Search(ctx context.Context, params usecase.ListParams) (*usecase.ListResult[entity.Airport], error) {
	return s.page(params, func(query repository.ListQuery) ([]*entity.Airport, int64, error) {
		return s.airportRepo.Search(ctx, query)
	})
}

// ensureCodeAvailable rejects a code held by another airport. The unique index on
// code still catches concurrent writers; the repository reports those as ErrDuplicateKey.
func (s *airportService) ensureCodeAvailable(ctx context.Context, id uint64, airport *entity.Airport) error {
	existing, err := s.airportRepo.FindByCode(ctx, airport.Code)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to check airport code")
	}

	if existing.ID != id {
		return errors.WithStack(domainerrors.ErrAirportCodeExists)
	}

	return nil
}

func normalizeAirportCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
