package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.uber.org/fx"

	"autolot/config"
	deliverycontext "autolot/internal/delivery/context"
	"autolot/internal/domain/entity"
	domainerrors "autolot/internal/domain/errors"
	"autolot/internal/domain/repository"
	"autolot/internal/errors"
	"autolot/internal/usecase"
)

// unitService implements the UnitUsecase interface.
type unitService struct {
	txManager        repository.TransactionManager
	unitRepo         repository.UnitRepository
	defaultListLimit int
	logger           *slog.Logger
	now              func() time.Time
}

// UnitServiceParams holds dependencies for unitService, injected by Fx.
type UnitServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UnitRepo  repository.UnitRepository
	Config    *config.Config
	Logger    *slog.Logger
}

// NewUnitService is the constructor for unitService.
func NewUnitService(params UnitServiceParams) usecase.UnitUsecase {
	return &unitService{
		txManager:        params.TxManager,
		unitRepo:         params.UnitRepo,
		defaultListLimit: params.Config.DefaultListLimit(),
		logger:           params.Logger,
		now:              time.Now,
	}
}

func (srv *unitService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateUnit persists the catalog record and the unit atomically. The expire
// date, when both dates are present, must fall strictly after the list date.
func (srv *unitService) CreateUnit(ctx context.Context, input *usecase.CreateUnitInput) (*entity.Unit, error) {
	if err := validateUnitDates(&input.Unit); err != nil {
		return nil, err
	}

	var created *entity.Unit
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		vehicle, err := repoFactory.Vehicles().Add(ctx, vehicleFromInput(&input.Vehicle))
		if err != nil {
			return errors.Wrap(err, "failed to create vehicle for unit")
		}

		unit := unitFromFields(&input.Unit)
		unit.VehicleID = vehicle.ID

		created, err = repoFactory.Units().Add(ctx, unit)
		if err != nil {
			return errors.Wrap(err, "failed to create unit")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Unit creation failed", slog.String("vin", input.Vehicle.VIN), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute unit creation transaction")
	}

	srv.log(ctx).Info("Unit created", slog.Int64("unitID", created.ID), slog.Int64("vehicleID", created.VehicleID))

	return created, nil
}

// GetUnit fetches a unit by id, or ErrNotFound.
func (srv *unitService) GetUnit(ctx context.Context, id int64) (*entity.Unit, error) {
	unit, err := srv.unitRepo.Get(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get unit")
	}
	if unit == nil {
		return nil, domainerrors.ErrNotFound.WrapMessage(fmt.Sprintf("unit id %d", id))
	}

	return unit, nil
}

// UpdateUnit replaces the unit's fields. The vehicle reference is preserved;
// catalog changes go through the vehicle operations.
func (srv *unitService) UpdateUnit(ctx context.Context, id int64, input *usecase.UpdateUnitInput) (*entity.Unit, error) {
	var updated *entity.Unit
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		units := repoFactory.Units()

		unit, err := units.Get(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to load unit for update")
		}
		if unit == nil {
			return domainerrors.ErrNotFound.WrapMessage(fmt.Sprintf("unit id %d", id))
		}

		replacement := unitFromFields(&input.Unit)
		replacement.VehicleID = unit.VehicleID
		replacement.IsExpired = input.IsExpired

		updated, err = units.Update(ctx, replacement, id)
		if err != nil {
			return errors.Wrap(err, "failed to update unit")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute unit update transaction")
	}

	return updated, nil
}

// DeleteUnit removes the unit and its vehicle atomically. Deleting a missing
// id is a no-op.
func (srv *unitService) DeleteUnit(ctx context.Context, id int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		units := repoFactory.Units()

		unit, err := units.Get(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to load unit for deletion")
		}
		if unit == nil {
			return nil
		}

		if err := units.Delete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete unit")
		}

		return repoFactory.Vehicles().Delete(ctx, unit.VehicleID)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete unit", slog.Int64("unitID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute unit deletion transaction")
	}

	srv.log(ctx).Info("Unit deleted", slog.Int64("unitID", id))

	return nil
}

// ListUnits returns units matching the list constraints.
func (srv *unitService) ListUnits(ctx context.Context, input usecase.ListInput) ([]*entity.Unit, error) {
	units, err := srv.unitRepo.List(ctx, input.ToOptions(srv.defaultListLimit))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list units")
	}

	return units, nil
}

// ExpireUnit forces the unit's expire date to now, making it eligible for
// the next sweep pass.
func (srv *unitService) ExpireUnit(ctx context.Context, id int64) (*entity.Unit, error) {
	var updated *entity.Unit
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		units := repoFactory.Units()

		unit, err := units.Get(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to load unit for expiration")
		}
		if unit == nil {
			return domainerrors.ErrNotFound.WrapMessage(fmt.Sprintf("unit id %d", id))
		}

		now := srv.now()
		unit.ExpireDate = &now

		updated, err = units.Update(ctx, unit, id)
		if err != nil {
			return errors.Wrap(err, "failed to persist unit expiration")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute unit expiration transaction")
	}

	srv.log(ctx).Info("Unit expire date forced", slog.Int64("unitID", id))

	return updated, nil
}

// validateUnitDates enforces that a listed unit cannot expire before it is
// listed. Either date may be absent.
func validateUnitDates(fields *usecase.UnitFields) error {
	if fields.ExpireDate != nil && fields.ListDate != nil && !fields.ExpireDate.After(*fields.ListDate) {
		return domainerrors.ErrValidationFailed.WrapMessage("expire date must be after list date")
	}

	return nil
}

func unitFromFields(fields *usecase.UnitFields) *entity.Unit {
	return &entity.Unit{
		StockNumber:            fields.StockNumber,
		PurchaseDate:           fields.PurchaseDate,
		ListDate:               fields.ListDate,
		SoldDate:               fields.SoldDate,
		ExpireDate:             fields.ExpireDate,
		PurchasePrice:          fields.PurchasePrice,
		BuyNowPrice:            fields.BuyNowPrice,
		VehicleAge:             fields.VehicleAge,
		TransportationFee:      fields.TransportationFee,
		TransportationDistance: fields.TransportationDistance,
		TransportCompany:       fields.TransportCompany,
		VehicleCost:            fields.VehicleCost,
		MaxOfferValue:          fields.MaxOfferValue,
		MaxOfferClock:          fields.MaxOfferClock,
		CDKDealNumber:          fields.CDKDealNumber,
		RetailWholesale:        fields.RetailWholesale,
		RetailFrontGross:       fields.RetailFrontGross,
		RetailBackGross:        fields.RetailBackGross,
		WholesaleGross:         fields.WholesaleGross,
		TotalRetailGross:       fields.TotalRetailGross,
		ZipCodeLoc:             fields.ZipCodeLoc,
		DeliveryStatus:         fields.DeliveryStatus,
		BuyFee:                 fields.BuyFee,
		SoldStatus:             fields.SoldStatus,
		Purchased:              fields.Purchased,
		StoreID:                fields.StoreID,
		AddedBy:                fields.AddedBy,
		PurchasedBy:            fields.PurchasedBy,
	}
}
