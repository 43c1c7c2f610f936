package impl

import (
	"context"
	"testing"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	mockRepo "backoffice/internal/mocks/repository"
	"backoffice/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// airportServiceFixtures holds all test dependencies for airport service tests.
type airportServiceFixtures struct {
	service usecase.AirportUsecase
	repo    *mockRepo.MockAirportRepository
}

func createTestAirportService(t *testing.T) airportServiceFixtures {
	repo := mockRepo.NewMockAirportRepository(t)

	return airportServiceFixtures{
		service: NewAirportService(repo, newTestConfig()),
		repo:    repo,
	}
}

func newCreateAirportInput() *usecase.CreateAirportInput {
	return &usecase.CreateAirportInput{
		Name:    "Bandaranaike International",
		Code:    "cmb",
		City:    "Katunayake",
		Country: "Sri Lanka",
	}
}

func TestAirportService_Create_Success(t *testing.T) {
	fx := createTestAirportService(t)
	ctx := context.Background()

	fx.repo.EXPECT().FindByCode(ctx, "CMB").Return(nil, repository.ErrRecordNotFound)
	fx.repo.EXPECT().
		Create(ctx, mock.MatchedBy(func(airport *entity.Airport) bool {
			return airport.Code == "CMB" && airport.Status == entity.StatusActive
		})).
		Return(nil)

	airport, err := fx.service.Create(ctx, newCreateAirportInput())
	require.NoError(t, err)
	assert.Equal(t, "CMB", airport.Code)
	assert.Equal(t, entity.StatusActive, airport.Status)
}

func TestAirportService_Create_DuplicateCode(t *testing.T) {
	fx := createTestAirportService(t)
	ctx := context.Background()

	fx.repo.EXPECT().FindByCode(ctx, "CMB").Return(&entity.Airport{ID: 1, Code: "CMB"}, nil)

	airport, err := fx.service.Create(ctx, newCreateAirportInput())
	assert.Nil(t, airport)
	require.ErrorIs(t, err, domainerrors.ErrAirportCodeExists)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode())
	assert.Equal(t, "Airport code already exists", appErr.Message())
}

func TestAirportService_Create_LostRaceOnUniqueIndex(t *testing.T) {
	fx := createTestAirportService(t)
	ctx := context.Background()

	fx.repo.EXPECT().FindByCode(ctx, "CMB").Return(nil, repository.ErrRecordNotFound)
	fx.repo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateKey)

	_, err := fx.service.Create(ctx, newCreateAirportInput())
	assert.ErrorIs(t, err, domainerrors.ErrAirportCodeExists)
}

func TestAirportService_Update_SameCodeAllowed(t *testing.T) {
	fx := createTestAirportService(t)
	ctx := context.Background()

	stored := &entity.Airport{ID: 5, Name: "Old", Code: "CMB", Status: entity.StatusActive}
	name := "New"
	code := "cmb"

	fx.repo.EXPECT().FindByID(ctx, uint64(5)).Return(stored, nil)
	fx.repo.EXPECT().FindByCode(ctx, "CMB").Return(&entity.Airport{ID: 5, Code: "CMB"}, nil)
	fx.repo.EXPECT().Update(ctx, mock.Anything).Return(nil)

	airport, err := fx.service.Update(ctx, 5, &usecase.UpdateAirportInput{Name: &name, Code: &code})
	require.NoError(t, err)
	assert.Equal(t, "New", airport.Name)
	assert.Equal(t, "CMB", airport.Code)
}

func TestAirportService_Update_CodeTakenByAnother(t *testing.T) {
	fx := createTestAirportService(t)
	ctx := context.Background()

	code := "DXB"
	fx.repo.EXPECT().FindByID(ctx, uint64(5)).Return(&entity.Airport{ID: 5, Code: "CMB"}, nil)
	fx.repo.EXPECT().FindByCode(ctx, "DXB").Return(&entity.Airport{ID: 8, Code: "DXB"}, nil)

	_, err := fx.service.Update(ctx, 5, &usecase.UpdateAirportInput{Code: &code})
	assert.ErrorIs(t, err, domainerrors.ErrAirportCodeExists)
}

func TestAirportService_Search(t *testing.T) {
	fx := createTestAirportService(t)
	ctx := context.Background()

	fx.repo.EXPECT().
		Search(ctx, repository.ListQuery{Offset: 0, Limit: 10, Search: "colombo"}).
		Return([]*entity.Airport{{ID: 1, Code: "CMB"}}, int64(1), nil)

	result, err := fx.service.Search(ctx, usecase.ListParams{Search: "colombo"})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, 1, result.Pagination.TotalPages)
}

func TestAirportService_Delete_NotFound(t *testing.T) {
	fx := createTestAirportService(t)
	ctx := context.Background()

	fx.repo.EXPECT().Delete(ctx, uint64(3)).Return(repository.ErrRecordNotFound)

	assert.ErrorIs(t, fx.service.Delete(ctx, 3), domainerrors.ErrAirportNotFound)
}
