package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"autolot/internal/domain/entity"
	domainerrors "autolot/internal/domain/errors"
	"autolot/internal/domain/repository"
	"autolot/internal/infra/persistence/model"
)

type unitRepository struct {
	*gormRepository[entity.Unit, model.UnitModel]
}

// NewUnitRepository creates a GORM-backed unit repository.
func NewUnitRepository(db *gorm.DB) repository.UnitRepository {
	return &unitRepository{
		gormRepository: newGormRepository(db, repoConfig[entity.Unit, model.UnitModel]{
			table:   "units",
			columns: unitColumns,
			relations: map[string]relationJoin{
				"vehicle": {
					table:   "vehicles",
					joinSQL: "JOIN vehicles ON vehicles.id = units.vehicle_id",
					columns: vehicleColumns,
				},
				"store": {
					table:   "stores",
					joinSQL: "JOIN stores ON stores.id = units.store_id",
					columns: storeColumns,
				},
				"user": {
					table:   "users",
					joinSQL: "JOIN users ON users.id = units.added_by",
					columns: userColumns,
				},
			},
			preloads: []string{"Vehicle", "Store"},
			toModel:  toUnitModel,
			toEntity: toUnitEntity,
			modelID:  func(m *model.UnitModel) int64 { return m.ID },
		}),
	}
}

// ExpireOverdue flips is_expired on every unit whose expire_date has passed,
// skipping units already expired or already purchased. The single UPDATE
// keeps the sweep atomic per pass.
func (r *unitRepository) ExpireOverdue(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.UnitModel{}).
		Where("expire_date <= ? AND is_expired = ? AND purchased = ?", now, false, false).
		Update("is_expired", true)
	if result.Error != nil {
		return 0, domainerrors.NewPersistenceError(result.Error, "expire overdue units")
	}

	return result.RowsAffected, nil
}
