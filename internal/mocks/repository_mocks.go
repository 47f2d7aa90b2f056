// Package mocks provides hand-rolled testify mocks and stubs for the domain
// interfaces used in usecase tests.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"autolot/internal/domain/entity"
	"autolot/internal/domain/repository"
)

// StubTransactionManager executes the callback immediately against a fixed
// factory, standing in for a real transaction scope.
type StubTransactionManager struct {
	Factory repository.RepositoryFactory
	Err     error
}

// Execute runs fn against the configured factory, or fails with Err.
func (s *StubTransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	if s.Err != nil {
		return s.Err
	}

	return fn(s.Factory)
}

// StubRepositoryFactory hands out the repositories it was built with.
type StubRepositoryFactory struct {
	StoreRepo   repository.StoreRepository
	UserRepo    repository.UserRepository
	VehicleRepo repository.VehicleRepository
	UnitRepo    repository.UnitRepository
}

func (f *StubRepositoryFactory) Stores() repository.StoreRepository     { return f.StoreRepo }
func (f *StubRepositoryFactory) Users() repository.UserRepository       { return f.UserRepo }
func (f *StubRepositoryFactory) Vehicles() repository.VehicleRepository { return f.VehicleRepo }
func (f *StubRepositoryFactory) Units() repository.UnitRepository       { return f.UnitRepo }

// MockStoreRepository mocks repository.StoreRepository.
type MockStoreRepository struct {
	mock.Mock
}

func (m *MockStoreRepository) Add(ctx context.Context, ent *entity.Store) (*entity.Store, error) {
	args := m.Called(ctx, ent)

	return storeOrNil(args.Get(0)), args.Error(1)
}

func (m *MockStoreRepository) Get(ctx context.Context, id int64) (*entity.Store, error) {
	args := m.Called(ctx, id)

	return storeOrNil(args.Get(0)), args.Error(1)
}

func (m *MockStoreRepository) Update(ctx context.Context, ent *entity.Store, id int64) (*entity.Store, error) {
	args := m.Called(ctx, ent, id)

	return storeOrNil(args.Get(0)), args.Error(1)
}

func (m *MockStoreRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockStoreRepository) List(ctx context.Context, opts repository.ListOptions) ([]*entity.Store, error) {
	args := m.Called(ctx, opts)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Store), args.Error(1)
	}

	return nil, args.Error(1)
}

// MockUserRepository mocks repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Add(ctx context.Context, ent *entity.User) (*entity.User, error) {
	args := m.Called(ctx, ent)

	return userOrNil(args.Get(0)), args.Error(1)
}

func (m *MockUserRepository) Get(ctx context.Context, id int64) (*entity.User, error) {
	args := m.Called(ctx, id)

	return userOrNil(args.Get(0)), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, ent *entity.User, id int64) (*entity.User, error) {
	args := m.Called(ctx, ent, id)

	return userOrNil(args.Get(0)), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, opts repository.ListOptions) ([]*entity.User, error) {
	args := m.Called(ctx, opts)
	if v := args.Get(0); v != nil {
		return v.([]*entity.User), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)

	return userOrNil(args.Get(0)), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)

	return userOrNil(args.Get(0)), args.Error(1)
}

// MockVehicleRepository mocks repository.VehicleRepository.
type MockVehicleRepository struct {
	mock.Mock
}

func (m *MockVehicleRepository) Add(ctx context.Context, ent *entity.Vehicle) (*entity.Vehicle, error) {
	args := m.Called(ctx, ent)

	return vehicleOrNil(args.Get(0)), args.Error(1)
}

func (m *MockVehicleRepository) Get(ctx context.Context, id int64) (*entity.Vehicle, error) {
	args := m.Called(ctx, id)

	return vehicleOrNil(args.Get(0)), args.Error(1)
}

func (m *MockVehicleRepository) Update(ctx context.Context, ent *entity.Vehicle, id int64) (*entity.Vehicle, error) {
	args := m.Called(ctx, ent, id)

	return vehicleOrNil(args.Get(0)), args.Error(1)
}

func (m *MockVehicleRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockVehicleRepository) List(ctx context.Context, opts repository.ListOptions) ([]*entity.Vehicle, error) {
	args := m.Called(ctx, opts)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Vehicle), args.Error(1)
	}

	return nil, args.Error(1)
}

// MockUnitRepository mocks repository.UnitRepository.
type MockUnitRepository struct {
	mock.Mock
}

func (m *MockUnitRepository) Add(ctx context.Context, ent *entity.Unit) (*entity.Unit, error) {
	args := m.Called(ctx, ent)

	return unitOrNil(args.Get(0)), args.Error(1)
}

func (m *MockUnitRepository) Get(ctx context.Context, id int64) (*entity.Unit, error) {
	args := m.Called(ctx, id)

	return unitOrNil(args.Get(0)), args.Error(1)
}

func (m *MockUnitRepository) Update(ctx context.Context, ent *entity.Unit, id int64) (*entity.Unit, error) {
	args := m.Called(ctx, ent, id)

	return unitOrNil(args.Get(0)), args.Error(1)
}

func (m *MockUnitRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUnitRepository) List(ctx context.Context, opts repository.ListOptions) ([]*entity.Unit, error) {
	args := m.Called(ctx, opts)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Unit), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUnitRepository) ExpireOverdue(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)

	return args.Get(0).(int64), args.Error(1)
}

func storeOrNil(v any) *entity.Store {
	if v == nil {
		return nil
	}

	return v.(*entity.Store)
}

func userOrNil(v any) *entity.User {
	if v == nil {
		return nil
	}

	return v.(*entity.User)
}

func vehicleOrNil(v any) *entity.Vehicle {
	if v == nil {
		return nil
	}

	return v.(*entity.Vehicle)
}

func unitOrNil(v any) *entity.Unit {
	if v == nil {
		return nil
	}

	return v.(*entity.Unit)
}
