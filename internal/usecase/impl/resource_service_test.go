package impl

import (
	"context"
	"testing"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	mockRepo "backoffice/internal/mocks/repository"
	"backoffice/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// driverRateServiceFixtures holds all test dependencies for driver rate service tests.
type driverRateServiceFixtures struct {
	service usecase.DriverRateUsecase
	repo    *mockRepo.MockResourceRepository[entity.DriverRate]
}

func createTestDriverRateService(t *testing.T) driverRateServiceFixtures {
	repo := mockRepo.NewMockResourceRepository[entity.DriverRate](t)

	return driverRateServiceFixtures{
		service: NewDriverRateService(repo, newTestConfig()),
		repo:    repo,
	}
}

func TestDriverRateService_Create_DefaultsStatus(t *testing.T) {
	fx := createTestDriverRateService(t)
	ctx := context.Background()

	fx.repo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.DriverRate")).
		RunAndReturn(func(_ context.Context, rate *entity.DriverRate) error {
			rate.ID = 1

			return nil
		})

	rate, err := fx.service.Create(ctx, &usecase.CreateDriverRateInput{
		DeliveryType: "  BOX ORDER ",
		Amount:       12.5,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), rate.ID)
	assert.Equal(t, "BOX ORDER", rate.DeliveryType)
	assert.Equal(t, 12.5, rate.Amount)
	assert.Equal(t, entity.StatusActive, rate.Status)
}

func TestDriverRateService_Create_RepositoryError(t *testing.T) {
	fx := createTestDriverRateService(t)
	ctx := context.Background()

	fx.repo.EXPECT().
		Create(ctx, mock.Anything).
		Return(errors.New("connection reset"))

	rate, err := fx.service.Create(ctx, &usecase.CreateDriverRateInput{DeliveryType: "BAG", Amount: 1})
	require.Error(t, err)
	assert.Nil(t, rate)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestDriverRateService_Get_NotFound(t *testing.T) {
	fx := createTestDriverRateService(t)
	ctx := context.Background()

	fx.repo.EXPECT().FindByID(ctx, uint64(9)).Return(nil, repository.ErrRecordNotFound)

	rate, err := fx.service.Get(ctx, 9)
	assert.Nil(t, rate)
	assert.ErrorIs(t, err, domainerrors.ErrDriverRateNotFound)
}

func TestDriverRateService_Update_AppliesPatch(t *testing.T) {
	fx := createTestDriverRateService(t)
	ctx := context.Background()

	stored := &entity.DriverRate{ID: 3, DeliveryType: "BOX ORDER", Amount: 10, Status: entity.StatusActive}
	amount := 15.0
	status := entity.StatusInactive

	fx.repo.EXPECT().FindByID(ctx, uint64(3)).Return(stored, nil)
	fx.repo.EXPECT().
		Update(ctx, mock.MatchedBy(func(rate *entity.DriverRate) bool {
			return rate.ID == 3 && rate.DeliveryType == "BOX ORDER" && rate.Amount == 15 && rate.Status == entity.StatusInactive
		})).
		Return(nil)

	rate, err := fx.service.Update(ctx, 3, &usecase.UpdateDriverRateInput{Amount: &amount, Status: &status})
	require.NoError(t, err)
	assert.Equal(t, 15.0, rate.Amount)
}

func TestDriverRateService_Update_DeletedConcurrently(t *testing.T) {
	fx := createTestDriverRateService(t)
	ctx := context.Background()

	fx.repo.EXPECT().FindByID(ctx, uint64(3)).Return(&entity.DriverRate{ID: 3}, nil)
	fx.repo.EXPECT().Update(ctx, mock.Anything).Return(repository.ErrRecordNotFound)

	_, err := fx.service.Update(ctx, 3, &usecase.UpdateDriverRateInput{})
	assert.ErrorIs(t, err, domainerrors.ErrDriverRateNotFound)
}

func TestDriverRateService_Delete(t *testing.T) {
	fx := createTestDriverRateService(t)
	ctx := context.Background()

	fx.repo.EXPECT().Delete(ctx, uint64(1)).Return(nil).Once()
	fx.repo.EXPECT().Delete(ctx, uint64(2)).Return(repository.ErrRecordNotFound).Once()

	require.NoError(t, fx.service.Delete(ctx, 1))
	assert.ErrorIs(t, fx.service.Delete(ctx, 2), domainerrors.ErrDriverRateNotFound)
}

func TestDriverRateService_List_Pagination(t *testing.T) {
	fx := createTestDriverRateService(t)
	ctx := context.Background()

	page := []*entity.DriverRate{{ID: 7}, {ID: 6}, {ID: 5}, {ID: 4}, {ID: 3}}
	fx.repo.EXPECT().
		List(ctx, repository.ListQuery{Offset: 5, Limit: 5, Search: "box"}).
		Return(page, int64(12), nil)

	result, err := fx.service.List(ctx, usecase.ListParams{Page: 2, Limit: 5, Search: "box"})
	require.NoError(t, err)
	assert.Len(t, result.Items, 5)
	assert.Equal(t, usecase.Pagination{
		CurrentPage:  2,
		TotalPages:   3,
		TotalItems:   12,
		ItemsPerPage: 5,
	}, result.Pagination)
}

func TestNormalizePage(t *testing.T) {
	cfg := newTestConfig().Pagination

	tests := []struct {
		name      string
		params    usecase.ListParams
		wantQuery repository.ListQuery
		wantPage  int
	}{
		{name: "defaults", params: usecase.ListParams{}, wantQuery: repository.ListQuery{Offset: 0, Limit: 10}, wantPage: 1},
		{name: "negative page", params: usecase.ListParams{Page: -3, Limit: 20}, wantQuery: repository.ListQuery{Offset: 0, Limit: 20}, wantPage: 1},
		{name: "limit capped", params: usecase.ListParams{Page: 3, Limit: 1000}, wantQuery: repository.ListQuery{Offset: 200, Limit: 100}, wantPage: 3},
		{name: "search kept", params: usecase.ListParams{Page: 1, Limit: 5, Search: "x"}, wantQuery: repository.ListQuery{Offset: 0, Limit: 5, Search: "x"}, wantPage: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, page := normalizePage(tt.params, cfg)
			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, tt.wantPage, page)
		})
	}
}

func TestNewPagination(t *testing.T) {
	assert.Equal(t, 0, newPagination(1, 10, 0).TotalPages)
	assert.Equal(t, 1, newPagination(1, 10, 10).TotalPages)
	assert.Equal(t, 2, newPagination(1, 10, 11).TotalPages)
}

func TestLabourRateService_Create_KeepsExplicitStatus(t *testing.T) {
	repo := mockRepo.NewMockResourceRepository[entity.LabourRate](t)
	service := NewLabourRateService(repo, newTestConfig())
	ctx := context.Background()

	repo.EXPECT().Create(ctx, mock.Anything).Return(nil)

	rate, err := service.Create(ctx, &usecase.CreateLabourRateInput{
		LabourType: "Loading",
		Amount:     8,
		Status:     entity.StatusInactive,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusInactive, rate.Status)
}

func TestPetrolBulkService_Create(t *testing.T) {
	repo := mockRepo.NewMockResourceRepository[entity.PetrolBulk](t)
	service := NewPetrolBulkService(repo, newTestConfig())
	ctx := context.Background()

	repo.EXPECT().Create(ctx, mock.Anything).Return(nil)

	depot, err := service.Create(ctx, &usecase.CreatePetrolBulkInput{
		Name:          "North depot",
		Location:      "Colombo",
		ContactNumber: "0771234567",
		Capacity:      5000,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusActive, depot.Status)
	assert.Equal(t, 5000.0, depot.Capacity)
}

func TestPetrolBulkService_Get_NotFound(t *testing.T) {
	repo := mockRepo.NewMockResourceRepository[entity.PetrolBulk](t)
	service := NewPetrolBulkService(repo, newTestConfig())
	ctx := context.Background()

	repo.EXPECT().FindByID(ctx, uint64(4)).Return(nil, repository.ErrRecordNotFound)

	_, err := service.Get(ctx, 4)
	assert.ErrorIs(t, err, domainerrors.ErrPetrolBulkNotFound)
}

func TestVegetableAvailabilityService_History(t *testing.T) {
	repo := mockRepo.NewMockResourceRepository[entity.VegetableAvailability](t)
	service := NewVegetableAvailabilityService(repo, newTestConfig())
	ctx := context.Background()

	repo.EXPECT().Create(ctx, mock.Anything).Return(nil)

	record, err := service.Create(ctx, &usecase.CreateVegetableAvailabilityInput{
		VegetableName:    "Carrot",
		Quantity:         40,
		Unit:             "kg",
		VegetableHistory: []byte(` [{"quantity":10}] `),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.AvailabilityAvailable, record.Status)
	assert.JSONEq(t, `[{"quantity":10}]`, string(record.VegetableHistory))

	stored := &entity.VegetableAvailability{ID: 2, VegetableName: "Leek", VegetableHistory: []byte(`[1]`)}
	repo.EXPECT().FindByID(ctx, uint64(2)).Return(stored, nil)
	repo.EXPECT().Update(ctx, mock.Anything).Return(nil)

	quantity := 0.0
	updated, err := service.Update(ctx, 2, &usecase.UpdateVegetableAvailabilityInput{
		Quantity:         &quantity,
		VegetableHistory: []byte(`null`),
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, updated.Quantity)
	assert.JSONEq(t, `[1]`, string(updated.VegetableHistory))
}
