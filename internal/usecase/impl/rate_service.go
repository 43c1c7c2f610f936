package impl

import (
	"strings"

	"backoffice/config"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/usecase"
)

// NewDriverRateService creates the driver rate lifecycle
func NewDriverRateService(repo repository.DriverRateRepository, cfg *config.Config) usecase.DriverRateUsecase {
	return newResourceService(repo, resourceDescriptor[entity.DriverRate, usecase.CreateDriverRateInput, usecase.UpdateDriverRateInput]{
		name:     "driver rate",
		notFound: domainerrors.ErrDriverRateNotFound,
		build: func(input *usecase.CreateDriverRateInput) *entity.DriverRate {
			return &entity.DriverRate{
				DeliveryType: strings.TrimSpace(input.DeliveryType),
				Amount:       input.Amount,
				Status:       stringOr(input.Status, entity.StatusActive),
			}
		},
		apply: func(rate *entity.DriverRate, input *usecase.UpdateDriverRateInput) {
			assign(&rate.DeliveryType, input.DeliveryType)
			assign(&rate.Amount, input.Amount)
			assign(&rate.Status, input.Status)
		},
	}, cfg)
}

// NewLabourRateService creates the labour rate lifecycle
func NewLabourRateService(repo repository.LabourRateRepository, cfg *config.Config) usecase.LabourRateUsecase {
	return newResourceService(repo, resourceDescriptor[entity.LabourRate, usecase.CreateLabourRateInput, usecase.UpdateLabourRateInput]{
		name:     "labour rate",
		notFound: domainerrors.ErrLabourRateNotFound,
		build: func(input *usecase.CreateLabourRateInput) *entity.LabourRate {
			return &entity.LabourRate{
				LabourType: strings.TrimSpace(input.LabourType),
				Amount:     input.Amount,
				Status:     stringOr(input.Status, entity.StatusActive),
			}
		},
		apply: func(rate *entity.LabourRate, input *usecase.UpdateLabourRateInput) {
			assign(&rate.LabourType, input.LabourType)
			assign(&rate.Amount, input.Amount)
			assign(&rate.Status, input.Status)
		},
	}, cfg)
}
