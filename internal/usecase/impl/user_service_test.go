package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"autolot/config"
	"autolot/internal/domain/entity"
	domainerrors "autolot/internal/domain/errors"
	"autolot/internal/mocks"
	"autolot/internal/usecase"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newUserServiceForTest(userRepo *mocks.MockUserRepository, hasher *mocks.MockPasswordHasher, tokens *mocks.MockTokenService) usecase.UserUsecase {
	return NewUserService(UserServiceParams{
		TxManager:    &mocks.StubTransactionManager{Factory: &mocks.StubRepositoryFactory{UserRepo: userRepo}},
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokens,
		Config:       &config.Config{},
		Logger:       discardLogger(),
	})
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	input := &usecase.RegisterUserInput{
		FirstName: "Dana",
		LastName:  "Reeves",
		Email:     "dana@example.com",
		Username:  "dreeves",
		Password:  "hunter22",
	}

	t.Run("hashes credential and persists user", func(t *testing.T) {
		userRepo := new(mocks.MockUserRepository)
		hasher := new(mocks.MockPasswordHasher)

		hasher.On("Hash", "hunter22").Return("$hashed$", nil)
		userRepo.On("FindByEmail", mock.Anything, "dana@example.com").Return(nil, nil)
		userRepo.On("FindByUsername", mock.Anything, "dreeves").Return(nil, nil)
		userRepo.On("Add", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.HashedPassword == "$hashed$" && u.Password == "" && u.IsActive
		})).Return(&entity.User{ID: 1, Username: "dreeves"}, nil)

		created, err := newUserServiceForTest(userRepo, hasher, nil).Register(ctx, input)

		require.NoError(t, err)
		assert.Equal(t, int64(1), created.ID)
		userRepo.AssertExpectations(t)
		hasher.AssertExpectations(t)
	})

	t.Run("duplicate email yields conflict", func(t *testing.T) {
		userRepo := new(mocks.MockUserRepository)
		hasher := new(mocks.MockPasswordHasher)

		hasher.On("Hash", "hunter22").Return("$hashed$", nil)
		userRepo.On("FindByEmail", mock.Anything, "dana@example.com").Return(&entity.User{ID: 9}, nil)

		_, err := newUserServiceForTest(userRepo, hasher, nil).Register(ctx, input)

		assert.ErrorIs(t, err, domainerrors.ErrConflict)
		userRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})

	t.Run("duplicate username yields conflict", func(t *testing.T) {
		userRepo := new(mocks.MockUserRepository)
		hasher := new(mocks.MockPasswordHasher)

		hasher.On("Hash", "hunter22").Return("$hashed$", nil)
		userRepo.On("FindByEmail", mock.Anything, "dana@example.com").Return(nil, nil)
		userRepo.On("FindByUsername", mock.Anything, "dreeves").Return(&entity.User{ID: 9}, nil)

		_, err := newUserServiceForTest(userRepo, hasher, nil).Register(ctx, input)

		assert.ErrorIs(t, err, domainerrors.ErrConflict)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	activeUser := func() *entity.User {
		return &entity.User{
			ID:             4,
			Username:       "dreeves",
			HashedPassword: "$hashed$",
			IsActive:       true,
			IsAdmin:        true,
		}
	}

	t.Run("issues tokens for valid credential", func(t *testing.T) {
		userRepo := new(mocks.MockUserRepository)
		hasher := new(mocks.MockPasswordHasher)
		tokens := new(mocks.MockTokenService)

		userRepo.On("FindByUsername", mock.Anything, "dreeves").Return(activeUser(), nil)
		hasher.On("Check", "hunter22", "$hashed$").Return(true)
		tokens.On("GenerateTokens", int64(4), []string{"admin"}).Return("access", "refresh", nil)

		out, err := newUserServiceForTest(userRepo, hasher, tokens).Login(ctx, &usecase.LoginInput{
			Username: "dreeves",
			Password: "hunter22",
		})

		require.NoError(t, err)
		assert.Equal(t, "access", out.AccessToken)
		assert.Equal(t, "refresh", out.RefreshToken)
		assert.Equal(t, int64(4), out.User.ID)
	})

	t.Run("unknown username and wrong password are indistinguishable", func(t *testing.T) {
		userRepo := new(mocks.MockUserRepository)
		hasher := new(mocks.MockPasswordHasher)

		userRepo.On("FindByUsername", mock.Anything, "ghost").Return(nil, nil)

		srv := newUserServiceForTest(userRepo, hasher, nil)
		_, unknownErr := srv.Login(ctx, &usecase.LoginInput{Username: "ghost", Password: "x"})
		assert.ErrorIs(t, unknownErr, domainerrors.ErrInvalidCredentials)

		userRepo.On("FindByUsername", mock.Anything, "dreeves").Return(activeUser(), nil)
		hasher.On("Check", "wrong", "$hashed$").Return(false)

		_, wrongErr := srv.Login(ctx, &usecase.LoginInput{Username: "dreeves", Password: "wrong"})
		assert.ErrorIs(t, wrongErr, domainerrors.ErrInvalidCredentials)
	})

	t.Run("inactive account is rejected", func(t *testing.T) {
		userRepo := new(mocks.MockUserRepository)
		hasher := new(mocks.MockPasswordHasher)

		user := activeUser()
		user.IsActive = false
		userRepo.On("FindByUsername", mock.Anything, "dreeves").Return(user, nil)
		hasher.On("Check", "hunter22", "$hashed$").Return(true)

		_, err := newUserServiceForTest(userRepo, hasher, nil).Login(ctx, &usecase.LoginInput{
			Username: "dreeves",
			Password: "hunter22",
		})

		assert.ErrorIs(t, err, domainerrors.ErrInactiveUser)
	})

	t.Run("blocked account is rejected", func(t *testing.T) {
		userRepo := new(mocks.MockUserRepository)
		hasher := new(mocks.MockPasswordHasher)

		user := activeUser()
		user.IsBlocked = true
		userRepo.On("FindByUsername", mock.Anything, "dreeves").Return(user, nil)
		hasher.On("Check", "hunter22", "$hashed$").Return(true)

		_, err := newUserServiceForTest(userRepo, hasher, nil).Login(ctx, &usecase.LoginInput{
			Username: "dreeves",
			Password: "hunter22",
		})

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}

func TestSetUserFlag(t *testing.T) {
	ctx := context.Background()

	t.Run("sets the addressed flag", func(t *testing.T) {
		userRepo := new(mocks.MockUserRepository)

		userRepo.On("Get", mock.Anything, int64(4)).Return(&entity.User{ID: 4}, nil)
		userRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.Confirmed
		}), int64(4)).Return(&entity.User{ID: 4, Confirmed: true}, nil)

		updated, err := newUserServiceForTest(userRepo, nil, nil).SetUserFlag(ctx, 4, usecase.FlagConfirmed, true)

		require.NoError(t, err)
		assert.True(t, updated.Confirmed)
	})

	t.Run("missing user yields not found", func(t *testing.T) {
		userRepo := new(mocks.MockUserRepository)
		userRepo.On("Get", mock.Anything, int64(99)).Return(nil, nil)

		_, err := newUserServiceForTest(userRepo, nil, nil).SetUserFlag(ctx, 99, usecase.FlagActive, true)

		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	})

	t.Run("unknown flag is rejected", func(t *testing.T) {
		userRepo := new(mocks.MockUserRepository)
		userRepo.On("Get", mock.Anything, int64(4)).Return(&entity.User{ID: 4}, nil)

		_, err := newUserServiceForTest(userRepo, nil, nil).SetUserFlag(ctx, 4, usecase.UserFlag("is_admin"), true)

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestGetUserMissing(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)
	userRepo.On("Get", mock.Anything, int64(12)).Return(nil, nil)

	_, err := newUserServiceForTest(userRepo, nil, nil).GetUser(context.Background(), 12)

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
