package impl

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"autolot/config"
	"autolot/internal/domain/entity"
	domainerrors "autolot/internal/domain/errors"
	"autolot/internal/mocks"
	"autolot/internal/usecase"
)

func newUnitServiceForTest(unitRepo *mocks.MockUnitRepository, vehicleRepo *mocks.MockVehicleRepository) usecase.UnitUsecase {
	return NewUnitService(UnitServiceParams{
		TxManager: &mocks.StubTransactionManager{Factory: &mocks.StubRepositoryFactory{
			UnitRepo:    unitRepo,
			VehicleRepo: vehicleRepo,
		}},
		UnitRepo: unitRepo,
		Config:   &config.Config{},
		Logger:   discardLogger(),
	})
}

func TestCreateUnit(t *testing.T) {
	ctx := context.Background()

	listDate := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	expireDate := listDate.AddDate(0, 0, 30)

	t.Run("creates vehicle and unit atomically", func(t *testing.T) {
		unitRepo := new(mocks.MockUnitRepository)
		vehicleRepo := new(mocks.MockVehicleRepository)

		vehicleRepo.On("Add", mock.Anything, mock.MatchedBy(func(v *entity.Vehicle) bool {
			return v.VIN == "1FTEW1EP5MFA00001"
		})).Return(&entity.Vehicle{ID: 7, VIN: "1FTEW1EP5MFA00001"}, nil)
		unitRepo.On("Add", mock.Anything, mock.MatchedBy(func(u *entity.Unit) bool {
			return u.VehicleID == 7 && u.StockNumber == "ST-100"
		})).Return(&entity.Unit{ID: 3, VehicleID: 7, StockNumber: "ST-100"}, nil)

		created, err := newUnitServiceForTest(unitRepo, vehicleRepo).CreateUnit(ctx, &usecase.CreateUnitInput{
			Vehicle: usecase.VehicleInput{VIN: "1FTEW1EP5MFA00001"},
			Unit: usecase.UnitFields{
				StockNumber: "ST-100",
				ListDate:    &listDate,
				ExpireDate:  &expireDate,
			},
		})

		require.NoError(t, err)
		assert.Equal(t, int64(3), created.ID)
		vehicleRepo.AssertExpectations(t)
		unitRepo.AssertExpectations(t)
	})

	t.Run("expire date on or before list date is rejected", func(t *testing.T) {
		unitRepo := new(mocks.MockUnitRepository)
		vehicleRepo := new(mocks.MockVehicleRepository)

		_, err := newUnitServiceForTest(unitRepo, vehicleRepo).CreateUnit(ctx, &usecase.CreateUnitInput{
			Unit: usecase.UnitFields{
				ListDate:   &listDate,
				ExpireDate: &listDate,
			},
		})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		vehicleRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})

	t.Run("absent dates skip the check", func(t *testing.T) {
		unitRepo := new(mocks.MockUnitRepository)
		vehicleRepo := new(mocks.MockVehicleRepository)

		vehicleRepo.On("Add", mock.Anything, mock.Anything).Return(&entity.Vehicle{ID: 1}, nil)
		unitRepo.On("Add", mock.Anything, mock.Anything).Return(&entity.Unit{ID: 1, VehicleID: 1}, nil)

		_, err := newUnitServiceForTest(unitRepo, vehicleRepo).CreateUnit(ctx, &usecase.CreateUnitInput{
			Unit: usecase.UnitFields{ExpireDate: &expireDate},
		})

		assert.NoError(t, err)
	})
}

func TestDeleteUnit(t *testing.T) {
	ctx := context.Background()

	t.Run("removes unit and its vehicle", func(t *testing.T) {
		unitRepo := new(mocks.MockUnitRepository)
		vehicleRepo := new(mocks.MockVehicleRepository)

		unitRepo.On("Get", mock.Anything, int64(3)).Return(&entity.Unit{ID: 3, VehicleID: 7}, nil)
		unitRepo.On("Delete", mock.Anything, int64(3)).Return(nil)
		vehicleRepo.On("Delete", mock.Anything, int64(7)).Return(nil)

		err := newUnitServiceForTest(unitRepo, vehicleRepo).DeleteUnit(ctx, 3)

		require.NoError(t, err)
		unitRepo.AssertExpectations(t)
		vehicleRepo.AssertExpectations(t)
	})

	t.Run("missing unit is a no-op", func(t *testing.T) {
		unitRepo := new(mocks.MockUnitRepository)
		vehicleRepo := new(mocks.MockVehicleRepository)

		unitRepo.On("Get", mock.Anything, int64(44)).Return(nil, nil)

		err := newUnitServiceForTest(unitRepo, vehicleRepo).DeleteUnit(ctx, 44)

		require.NoError(t, err)
		unitRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		vehicleRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestExpireUnit(t *testing.T) {
	ctx := context.Background()

	t.Run("forces expire date to now", func(t *testing.T) {
		unitRepo := new(mocks.MockUnitRepository)

		unitRepo.On("Get", mock.Anything, int64(3)).Return(&entity.Unit{ID: 3, VehicleID: 7}, nil)
		unitRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *entity.Unit) bool {
			return u.ExpireDate != nil && time.Since(*u.ExpireDate) < time.Minute
		}), int64(3)).Return(&entity.Unit{ID: 3}, nil)

		_, err := newUnitServiceForTest(unitRepo, new(mocks.MockVehicleRepository)).ExpireUnit(ctx, 3)

		require.NoError(t, err)
		unitRepo.AssertExpectations(t)
	})

	t.Run("missing unit yields not found", func(t *testing.T) {
		unitRepo := new(mocks.MockUnitRepository)
		unitRepo.On("Get", mock.Anything, int64(8)).Return(nil, nil)

		_, err := newUnitServiceForTest(unitRepo, new(mocks.MockVehicleRepository)).ExpireUnit(ctx, 8)

		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	})
}

func TestUpdateUnitKeepsVehicleReference(t *testing.T) {
	unitRepo := new(mocks.MockUnitRepository)

	unitRepo.On("Get", mock.Anything, int64(3)).Return(&entity.Unit{ID: 3, VehicleID: 7}, nil)
	unitRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *entity.Unit) bool {
		return u.VehicleID == 7 && u.StockNumber == "ST-200"
	}), int64(3)).Return(&entity.Unit{ID: 3, VehicleID: 7, StockNumber: "ST-200"}, nil)

	updated, err := newUnitServiceForTest(unitRepo, new(mocks.MockVehicleRepository)).UpdateUnit(
		context.Background(), 3, &usecase.UpdateUnitInput{
			Unit: usecase.UnitFields{StockNumber: "ST-200"},
		})

	require.NoError(t, err)
	assert.Equal(t, int64(7), updated.VehicleID)
}
