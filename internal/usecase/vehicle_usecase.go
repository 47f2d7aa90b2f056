package usecase

import (
	"context"

	"autolot/internal/domain/entity"
)

// VehicleInput defines the catalog data for creating or replacing a vehicle.
type VehicleInput struct {
	Year               int
	Make               string
	Model              string
	Trim               string
	VIN                string
	Mileage            int
	Color              string
	Drivetrain         string
	Transmission       string
	TransmissionType   string
	TransmissionSpeeds int
	HighwayMileage     int
	CityMileage        int
	EngineCylinders    int
	Category           string
	MSRP               int
}

// VehicleUsecase defines the business operations on the vehicle catalog.
type VehicleUsecase interface {
	// CreateVehicle persists a new catalog record. A duplicate VIN yields
	// ErrConflict.
	CreateVehicle(ctx context.Context, input *VehicleInput) (*entity.Vehicle, error)

	// GetVehicle fetches a vehicle by id, or ErrNotFound.
	GetVehicle(ctx context.Context, id int64) (*entity.Vehicle, error)

	// UpdateVehicle replaces the vehicle's fields with the provided values.
	UpdateVehicle(ctx context.Context, id int64, input *VehicleInput) (*entity.Vehicle, error)

	// DeleteVehicle removes the catalog record.
	DeleteVehicle(ctx context.Context, id int64) error

	// ListVehicles returns vehicles matching the list constraints.
	ListVehicles(ctx context.Context, input ListInput) ([]*entity.Vehicle, error)
}
