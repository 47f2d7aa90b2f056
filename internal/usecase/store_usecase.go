package usecase

import (
	"context"

	"autolot/internal/domain/entity"
)

// StoreInput defines the data for creating or replacing a store.
type StoreInput struct {
	Name          string
	StreetAddress string
	City          string
	State         string
	ZipCode       int
	Phone         string
	AdminClerk    string
	IsPrimaryHub  bool
	QBCustomerID  int64
}

// StoreUsecase defines the business operations on stores.
type StoreUsecase interface {
	// CreateStore persists a new store.
	CreateStore(ctx context.Context, input *StoreInput) (*entity.Store, error)

	// GetStore fetches a store by id, or ErrNotFound.
	GetStore(ctx context.Context, id int64) (*entity.Store, error)

	// UpdateStore replaces the store's fields with the provided values.
	UpdateStore(ctx context.Context, id int64, input *StoreInput) (*entity.Store, error)

	// DeleteStore removes the store along with its units and their vehicles
	// in one transaction. Assigned users keep their accounts; the database
	// clears their store reference.
	DeleteStore(ctx context.Context, id int64) error

	// ListStores returns stores matching the list constraints.
	ListStores(ctx context.Context, input ListInput) ([]*entity.Store, error)
}
