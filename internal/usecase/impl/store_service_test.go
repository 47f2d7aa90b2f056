package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"autolot/config"
	"autolot/internal/domain/entity"
	domainerrors "autolot/internal/domain/errors"
	"autolot/internal/domain/repository"
	"autolot/internal/mocks"
	"autolot/internal/usecase"
)

func newStoreServiceForTest(storeRepo *mocks.MockStoreRepository, unitRepo *mocks.MockUnitRepository, vehicleRepo *mocks.MockVehicleRepository) usecase.StoreUsecase {
	return NewStoreService(StoreServiceParams{
		TxManager: &mocks.StubTransactionManager{Factory: &mocks.StubRepositoryFactory{
			StoreRepo:   storeRepo,
			UnitRepo:    unitRepo,
			VehicleRepo: vehicleRepo,
		}},
		StoreRepo: storeRepo,
		Config:    &config.Config{},
		Logger:    discardLogger(),
	})
}

func TestDeleteStore(t *testing.T) {
	ctx := context.Background()

	t.Run("cascades to units and their vehicles", func(t *testing.T) {
		storeRepo := new(mocks.MockStoreRepository)
		unitRepo := new(mocks.MockUnitRepository)
		vehicleRepo := new(mocks.MockVehicleRepository)

		storeRepo.On("Get", mock.Anything, int64(2)).Return(&entity.Store{
			ID: 2,
			Units: []*entity.Unit{
				{ID: 10, VehicleID: 100},
				{ID: 11, VehicleID: 101},
			},
		}, nil)
		unitRepo.On("Delete", mock.Anything, int64(10)).Return(nil)
		unitRepo.On("Delete", mock.Anything, int64(11)).Return(nil)
		vehicleRepo.On("Delete", mock.Anything, int64(100)).Return(nil)
		vehicleRepo.On("Delete", mock.Anything, int64(101)).Return(nil)
		storeRepo.On("Delete", mock.Anything, int64(2)).Return(nil)

		err := newStoreServiceForTest(storeRepo, unitRepo, vehicleRepo).DeleteStore(ctx, 2)

		require.NoError(t, err)
		storeRepo.AssertExpectations(t)
		unitRepo.AssertExpectations(t)
		vehicleRepo.AssertExpectations(t)
	})

	t.Run("missing store is a no-op", func(t *testing.T) {
		storeRepo := new(mocks.MockStoreRepository)
		unitRepo := new(mocks.MockUnitRepository)
		vehicleRepo := new(mocks.MockVehicleRepository)

		storeRepo.On("Get", mock.Anything, int64(5)).Return(nil, nil)

		err := newStoreServiceForTest(storeRepo, unitRepo, vehicleRepo).DeleteStore(ctx, 5)

		require.NoError(t, err)
		storeRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestGetStoreMissing(t *testing.T) {
	storeRepo := new(mocks.MockStoreRepository)
	storeRepo.On("Get", mock.Anything, int64(5)).Return(nil, nil)

	_, err := newStoreServiceForTest(storeRepo, nil, nil).GetStore(context.Background(), 5)

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestListStoresAppliesDefaultLimit(t *testing.T) {
	storeRepo := new(mocks.MockStoreRepository)
	storeRepo.On("List", mock.Anything, mock.MatchedBy(func(opts repository.ListOptions) bool {
		return opts.Limit == 100 && opts.Skip == 20
	})).Return([]*entity.Store{}, nil)

	_, err := newStoreServiceForTest(storeRepo, nil, nil).ListStores(context.Background(), usecase.ListInput{Skip: 20})

	require.NoError(t, err)
	storeRepo.AssertExpectations(t)
}
