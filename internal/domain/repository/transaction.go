package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a
// specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a single database transaction.
	// If the function returns an error, the transaction is rolled back.
	// Otherwise, it's committed. All repository operations within the
	// function use the same database connection, which is released when
	// Execute returns regardless of outcome. Scopes do not nest.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to one transaction.
// Repositories are constructed lazily, on first access.
type RepositoryFactory interface {
	// Stores returns a StoreRepository bound to the current transaction.
	Stores() StoreRepository

	// Users returns a UserRepository bound to the current transaction.
	Users() UserRepository

	// Vehicles returns a VehicleRepository bound to the current transaction.
	Vehicles() VehicleRepository

	// Units returns a UnitRepository bound to the current transaction.
	Units() UnitRepository
}
