package usecase

import (
	"context"

	"autolot/internal/domain/entity"
)

// RegisterUserInput defines the data required to register a new user.
// Password is plaintext here and only here; it is hashed before any write.
type RegisterUserInput struct {
	FirstName   string
	LastName    string
	Email       string
	Username    string
	Password    string
	PhoneNumber string
	TwilioOptIn bool
	IsBuyer     bool
	StoreID     *int64
}

// UpdateUserInput defines the data for replacing a user's profile fields.
// Credentials and status flags are managed by their own operations.
type UpdateUserInput struct {
	FirstName   string
	LastName    string
	Email       string
	Username    string
	PhoneNumber string
	TwilioOptIn bool
	IsBuyer     bool
	StoreID     *int64
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// UserFlag names a boolean account status toggled by flag operations.
type UserFlag string

// Account status flags.
const (
	FlagActive    UserFlag = "is_active"
	FlagConfirmed UserFlag = "confirmed"
	FlagBlocked   UserFlag = "is_blocked"
)

// UserUsecase defines the business operations on user accounts.
type UserUsecase interface {
	// Register creates a new account with a hashed credential. Duplicate
	// email or username yields ErrConflict.
	Register(ctx context.Context, input *RegisterUserInput) (*entity.User, error)

	// Login verifies the credential and issues a token pair. Unknown
	// username and wrong password are indistinguishable to the caller.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// GetUser fetches a user by id, or ErrNotFound.
	GetUser(ctx context.Context, id int64) (*entity.User, error)

	// UpdateUser replaces the user's profile fields.
	UpdateUser(ctx context.Context, id int64, input *UpdateUserInput) (*entity.User, error)

	// DeleteUser removes the account. Deleting a missing id is a no-op.
	DeleteUser(ctx context.Context, id int64) error

	// ListUsers returns users matching the list constraints.
	ListUsers(ctx context.Context, input ListInput) ([]*entity.User, error)

	// SetUserFlag sets one account status flag and returns the updated user.
	SetUserFlag(ctx context.Context, id int64, flag UserFlag, value bool) (*entity.User, error)
}
