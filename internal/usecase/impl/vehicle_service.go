package impl

import (
	"context"
	"fmt"
	"log/slog"

	"go.uber.org/fx"

	"autolot/config"
	deliverycontext "autolot/internal/delivery/context"
	"autolot/internal/domain/entity"
	domainerrors "autolot/internal/domain/errors"
	"autolot/internal/domain/repository"
	"autolot/internal/errors"
	"autolot/internal/usecase"
)

// vehicleService implements the VehicleUsecase interface.
type vehicleService struct {
	vehicleRepo      repository.VehicleRepository
	defaultListLimit int
	logger           *slog.Logger
}

// VehicleServiceParams holds dependencies for vehicleService, injected by Fx.
type VehicleServiceParams struct {
	fx.In

	VehicleRepo repository.VehicleRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewVehicleService is the constructor for vehicleService.
func NewVehicleService(params VehicleServiceParams) usecase.VehicleUsecase {
	return &vehicleService{
		vehicleRepo:      params.VehicleRepo,
		defaultListLimit: params.Config.DefaultListLimit(),
		logger:           params.Logger,
	}
}

func (srv *vehicleService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateVehicle persists a new catalog record. A duplicate VIN surfaces as
// ErrConflict through constraint translation.
func (srv *vehicleService) CreateVehicle(ctx context.Context, input *usecase.VehicleInput) (*entity.Vehicle, error) {
	created, err := srv.vehicleRepo.Add(ctx, vehicleFromInput(input))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create vehicle")
	}

	srv.log(ctx).Info("Vehicle created", slog.Int64("vehicleID", created.ID), slog.String("vin", created.VIN))

	return created, nil
}

// GetVehicle fetches a vehicle by id, or ErrNotFound.
func (srv *vehicleService) GetVehicle(ctx context.Context, id int64) (*entity.Vehicle, error) {
	vehicle, err := srv.vehicleRepo.Get(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get vehicle")
	}
	if vehicle == nil {
		return nil, domainerrors.ErrNotFound.WrapMessage(fmt.Sprintf("vehicle id %d", id))
	}

	return vehicle, nil
}

// UpdateVehicle replaces the vehicle's fields with the provided values.
func (srv *vehicleService) UpdateVehicle(ctx context.Context, id int64, input *usecase.VehicleInput) (*entity.Vehicle, error) {
	updated, err := srv.vehicleRepo.Update(ctx, vehicleFromInput(input), id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update vehicle")
	}

	return updated, nil
}

// DeleteVehicle removes the catalog record.
func (srv *vehicleService) DeleteVehicle(ctx context.Context, id int64) error {
	if err := srv.vehicleRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete vehicle")
	}

	return nil
}

// ListVehicles returns vehicles matching the list constraints.
func (srv *vehicleService) ListVehicles(ctx context.Context, input usecase.ListInput) ([]*entity.Vehicle, error) {
	vehicles, err := srv.vehicleRepo.List(ctx, input.ToOptions(srv.defaultListLimit))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vehicles")
	}

	return vehicles, nil
}

func vehicleFromInput(input *usecase.VehicleInput) *entity.Vehicle {
	return &entity.Vehicle{
		Year:               input.Year,
		Make:               input.Make,
		Model:              input.Model,
		Trim:               input.Trim,
		VIN:                input.VIN,
		Mileage:            input.Mileage,
		Color:              input.Color,
		Drivetrain:         input.Drivetrain,
		Transmission:       input.Transmission,
		TransmissionType:   input.TransmissionType,
		TransmissionSpeeds: input.TransmissionSpeeds,
		HighwayMileage:     input.HighwayMileage,
		CityMileage:        input.CityMileage,
		EngineCylinders:    input.EngineCylinders,
		Category:           input.Category,
		MSRP:               input.MSRP,
	}
}
