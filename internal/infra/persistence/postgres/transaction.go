package postgres

import (
	"context"

	"gorm.io/gorm"

	domainerrors "autolot/internal/domain/errors"
	"autolot/internal/domain/repository"
)

// gormTransactionManager implements the domain's TransactionManager on GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// NewTransactionManager creates the transaction manager over the shared
// database handle.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn inside a single transaction: rollback on error or panic,
// commit otherwise. Every repository handed to fn shares the transaction's
// connection.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return domainerrors.ErrTransactionFailed.WrapMessage("begin")
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&gormRepositoryFactory{tx: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return domainerrors.ErrTransactionFailed.WrapMessage(
				"rollback failed: " + rbErr.Error() + " (after: " + err.Error() + ")")
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return domainerrors.ErrTransactionFailed.WrapMessage("commit: " + err.Error())
	}

	return nil
}

// gormRepositoryFactory hands out repositories bound to one transaction.
// A transaction handle in GORM is itself a *gorm.DB, so the plain
// constructors work unchanged. Repositories are built lazily and cached so
// repeated accessor calls within one scope return the same instance.
type gormRepositoryFactory struct {
	tx *gorm.DB

	stores   repository.StoreRepository
	users    repository.UserRepository
	vehicles repository.VehicleRepository
	units    repository.UnitRepository
}

// Stores returns the store repository bound to the current transaction.
func (f *gormRepositoryFactory) Stores() repository.StoreRepository {
	if f.stores == nil {
		f.stores = NewStoreRepository(f.tx)
	}

	return f.stores
}

// Users returns the user repository bound to the current transaction.
func (f *gormRepositoryFactory) Users() repository.UserRepository {
	if f.users == nil {
		f.users = NewUserRepository(f.tx)
	}

	return f.users
}

// Vehicles returns the vehicle repository bound to the current transaction.
func (f *gormRepositoryFactory) Vehicles() repository.VehicleRepository {
	if f.vehicles == nil {
		f.vehicles = NewVehicleRepository(f.tx)
	}

	return f.vehicles
}

// Units returns the unit repository bound to the current transaction.
func (f *gormRepositoryFactory) Units() repository.UnitRepository {
	if f.units == nil {
		f.units = NewUnitRepository(f.tx)
	}

	return f.units
}
