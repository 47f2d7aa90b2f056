package postgres

import (
	"gorm.io/gorm"

	"autolot/internal/domain/entity"
	"autolot/internal/domain/repository"
	"autolot/internal/infra/persistence/model"
)

type storeRepository struct {
	*gormRepository[entity.Store, model.StoreModel]
}

// NewStoreRepository creates a GORM-backed store repository.
func NewStoreRepository(db *gorm.DB) repository.StoreRepository {
	return &storeRepository{
		gormRepository: newGormRepository(db, repoConfig[entity.Store, model.StoreModel]{
			table:   "stores",
			columns: storeColumns,
			relations: map[string]relationJoin{
				"user": {
					table:   "users",
					joinSQL: "JOIN users ON users.store_id = stores.id",
					columns: userColumns,
				},
				"unit": {
					table:   "units",
					joinSQL: "JOIN units ON units.store_id = stores.id",
					columns: unitColumns,
				},
			},
			preloads: []string{"Users", "Units"},
			toModel:  toStoreModel,
			toEntity: toStoreEntity,
			modelID:  func(m *model.StoreModel) int64 { return m.ID },
		}),
	}
}
