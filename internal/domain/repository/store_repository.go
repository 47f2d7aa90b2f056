package repository

import "autolot/internal/domain/entity"

// StoreRepository defines the standard operations for store persistence.
type StoreRepository interface {
	Repository[entity.Store]
}
