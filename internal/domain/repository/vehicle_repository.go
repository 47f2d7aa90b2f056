package repository

import "autolot/internal/domain/entity"

// VehicleRepository defines the standard operations for vehicle persistence.
type VehicleRepository interface {
	Repository[entity.Vehicle]
}
