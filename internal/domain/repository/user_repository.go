package repository

import (
	"context"

	"autolot/internal/domain/entity"
)

// UserRepository defines the standard operations for user persistence plus
// the lookups the authentication flow needs.
type UserRepository interface {
	Repository[entity.User]

	// FindByEmail retrieves a single user by email, or (nil, nil) when absent.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByUsername retrieves a single user by username, or (nil, nil) when absent.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
}
