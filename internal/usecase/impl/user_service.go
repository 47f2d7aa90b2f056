package impl

import (
	"context"
	"fmt"
	"log/slog"

	"go.uber.org/fx"

	"autolot/config"
	deliverycontext "autolot/internal/delivery/context"
	"autolot/internal/domain/entity"
	domainerrors "autolot/internal/domain/errors"
	"autolot/internal/domain/repository"
	"autolot/internal/domain/service"
	"autolot/internal/errors"
	"autolot/internal/usecase"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	defaultListLimit int
	logger           *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		defaultListLimit: params.Config.DefaultListLimit(),
		logger:           params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account. The duplicate check and the insert run in
// one transaction; the unique indexes still back the check up, surfacing a
// concurrent duplicate as ErrConflict through constraint translation.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterUserInput) (*entity.User, error) {
	srv.log(ctx).Info("Starting registration", slog.String("username", input.Username))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("registration")
	}

	var registered *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		users := repoFactory.Users()

		existing, err := users.FindByEmail(ctx, input.Email)
		if err != nil {
			return errors.Wrap(err, "failed to check email uniqueness")
		}
		if existing != nil {
			return domainerrors.ErrConflict.WrapMessage("email already registered")
		}

		existing, err = users.FindByUsername(ctx, input.Username)
		if err != nil {
			return errors.Wrap(err, "failed to check username uniqueness")
		}
		if existing != nil {
			return domainerrors.ErrConflict.WrapMessage("username already taken")
		}

		newUser := &entity.User{
			FirstName:      input.FirstName,
			LastName:       input.LastName,
			Email:          input.Email,
			Username:       input.Username,
			HashedPassword: hashedPassword,
			PhoneNumber:    input.PhoneNumber,
			TwilioOptIn:    input.TwilioOptIn,
			IsBuyer:        input.IsBuyer,
			StoreID:        input.StoreID,
			IsActive:       true,
		}

		registered, err = users.Add(ctx, newUser)
		if err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.log(ctx).Info("User registered", slog.Int64("userID", registered.ID))

	return registered, nil
}

// Login verifies the credential and issues a token pair. An unknown username
// and a wrong password produce the same error.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user for login")
	}
	if user == nil || !srv.hasher.Check(input.Password, user.HashedPassword) {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login")
	}

	if user.IsBlocked {
		return nil, domainerrors.ErrForbidden.WrapMessage("account is blocked")
	}
	if !user.IsActive {
		return nil, domainerrors.ErrInactiveUser.WrapMessage("login")
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, userRoles(user))
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	srv.log(ctx).Debug("User logged in", slog.Int64("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// GetUser fetches a user by id, or ErrNotFound.
func (srv *userService) GetUser(ctx context.Context, id int64) (*entity.User, error) {
	user, err := srv.userRepo.Get(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user")
	}
	if user == nil {
		return nil, domainerrors.ErrNotFound.WrapMessage(fmt.Sprintf("user id %d", id))
	}

	return user, nil
}

// UpdateUser replaces the user's profile fields, keeping credentials and
// status flags untouched.
func (srv *userService) UpdateUser(ctx context.Context, id int64, input *usecase.UpdateUserInput) (*entity.User, error) {
	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		users := repoFactory.Users()

		user, err := users.Get(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to load user for update")
		}
		if user == nil {
			return domainerrors.ErrNotFound.WrapMessage(fmt.Sprintf("user id %d", id))
		}

		user.FirstName = input.FirstName
		user.LastName = input.LastName
		user.Email = input.Email
		user.Username = input.Username
		user.PhoneNumber = input.PhoneNumber
		user.TwilioOptIn = input.TwilioOptIn
		user.IsBuyer = input.IsBuyer
		user.StoreID = input.StoreID

		updated, err = users.Update(ctx, user, id)
		if err != nil {
			return errors.Wrap(err, "failed to update user")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute user update transaction")
	}

	return updated, nil
}

// DeleteUser removes the account. Deleting a missing id is a no-op.
func (srv *userService) DeleteUser(ctx context.Context, id int64) error {
	if err := srv.userRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete user")
	}

	srv.log(ctx).Info("User deleted", slog.Int64("userID", id))

	return nil
}

// ListUsers returns users matching the list constraints.
func (srv *userService) ListUsers(ctx context.Context, input usecase.ListInput) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx, input.ToOptions(srv.defaultListLimit))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// SetUserFlag sets one account status flag and returns the updated user.
func (srv *userService) SetUserFlag(ctx context.Context, id int64, flag usecase.UserFlag, value bool) (*entity.User, error) {
	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		users := repoFactory.Users()

		user, err := users.Get(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to load user for flag change")
		}
		if user == nil {
			return domainerrors.ErrNotFound.WrapMessage(fmt.Sprintf("user id %d", id))
		}

		switch flag {
		case usecase.FlagActive:
			user.IsActive = value
		case usecase.FlagConfirmed:
			user.Confirmed = value
		case usecase.FlagBlocked:
			user.IsBlocked = value
		default:
			return domainerrors.ErrValidationFailed.WrapMessage("unknown account flag " + string(flag))
		}

		updated, err = users.Update(ctx, user, id)
		if err != nil {
			return errors.Wrap(err, "failed to persist flag change")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Flag change failed", slog.Int64("userID", id), slog.String("flag", string(flag)), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute flag change transaction")
	}

	srv.log(ctx).Info("User flag changed", slog.Int64("userID", id), slog.String("flag", string(flag)), slog.Bool("value", value))

	return updated, nil
}

// userRoles derives the token role claims from the account's flags.
func userRoles(user *entity.User) []string {
	var roles []string
	if user.IsAdmin {
		roles = append(roles, "admin")
	}
	if user.IsSuperuser {
		roles = append(roles, "superuser")
	}
	if user.IsBuyer {
		roles = append(roles, "buyer")
	}

	return roles
}
