package postgres

import (
	"gorm.io/gorm"

	"autolot/internal/domain/entity"
	"autolot/internal/domain/repository"
	"autolot/internal/infra/persistence/model"
)

type vehicleRepository struct {
	*gormRepository[entity.Vehicle, model.VehicleModel]
}

// NewVehicleRepository creates a GORM-backed vehicle repository.
func NewVehicleRepository(db *gorm.DB) repository.VehicleRepository {
	return &vehicleRepository{
		gormRepository: newGormRepository(db, repoConfig[entity.Vehicle, model.VehicleModel]{
			table:   "vehicles",
			columns: vehicleColumns,
			relations: map[string]relationJoin{
				"unit": {
					table:   "units",
					joinSQL: "JOIN units ON units.vehicle_id = vehicles.id",
					columns: unitColumns,
				},
			},
			preloads: []string{"Units"},
			toModel:  toVehicleModel,
			toEntity: toVehicleEntity,
			modelID:  func(m *model.VehicleModel) int64 { return m.ID },
		}),
	}
}
