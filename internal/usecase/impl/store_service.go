// Package impl contains the implementation of the application's business logic.
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
	"autolot/internal/errors"
	"autolot/internal/usecase"
)

// storeService implements the StoreUsecase interface.
type storeService struct {
	txManager        repository.TransactionManager
	storeRepo        repository.StoreRepository
	defaultListLimit int
	logger           *slog.Logger
}

// StoreServiceParams holds dependencies for storeService, injected by Fx.
type StoreServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	StoreRepo repository.StoreRepository
	Config    *config.Config
	Logger    *slog.Logger
}

// NewStoreService is the constructor for storeService.
func NewStoreService(params StoreServiceParams) usecase.StoreUsecase {
	return &storeService{
		txManager:        params.TxManager,
		storeRepo:        params.StoreRepo,
		defaultListLimit: params.Config.DefaultListLimit(),
		logger:           params.Logger,
	}
}

func (srv *storeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateStore persists a new store.
func (srv *storeService) CreateStore(ctx context.Context, input *usecase.StoreInput) (*entity.Store, error) {
	created, err := srv.storeRepo.Add(ctx, storeFromInput(input))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create store")
	}

	srv.log(ctx).Info("Store created", slog.Int64("storeID", created.ID))

	return created, nil
}

// GetStore fetches a store by id, or ErrNotFound.
func (srv *storeService) GetStore(ctx context.Context, id int64) (*entity.Store, error) {
	store, err := srv.storeRepo.Get(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get store")
	}
	if store == nil {
		return nil, domainerrors.ErrNotFound.WrapMessage(fmt.Sprintf("store id %d", id))
	}

	return store, nil
}

// UpdateStore replaces the store's fields with the provided values.
func (srv *storeService) UpdateStore(ctx context.Context, id int64, input *usecase.StoreInput) (*entity.Store, error) {
	updated, err := srv.storeRepo.Update(ctx, storeFromInput(input), id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update store")
	}

	return updated, nil
}

// DeleteStore removes the store along with its units and their vehicles in
// one transaction. Users assigned to the store keep their accounts; the
// database clears their store reference.
func (srv *storeService) DeleteStore(ctx context.Context, id int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		stores := repoFactory.Stores()

		store, err := stores.Get(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to load store for deletion")
		}
		if store == nil {
			// Idempotent: nothing to remove.
			return nil
		}

		units := repoFactory.Units()
		vehicles := repoFactory.Vehicles()
		for _, unit := range store.Units {
			if err := units.Delete(ctx, unit.ID); err != nil {
				return errors.Wrap(err, "failed to delete store unit")
			}
			if err := vehicles.Delete(ctx, unit.VehicleID); err != nil {
				return errors.Wrap(err, "failed to delete unit vehicle")
			}
		}

		return stores.Delete(ctx, id)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete store", slog.Int64("storeID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute store deletion transaction")
	}

	srv.log(ctx).Info("Store deleted", slog.Int64("storeID", id))

	return nil
}

// ListStores returns stores matching the list constraints.
func (srv *storeService) ListStores(ctx context.Context, input usecase.ListInput) ([]*entity.Store, error) {
	stores, err := srv.storeRepo.List(ctx, input.ToOptions(srv.defaultListLimit))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	return stores, nil
}

func storeFromInput(input *usecase.StoreInput) *entity.Store {
	return &entity.Store{
		Name:          input.Name,
		StreetAddress: input.StreetAddress,
		City:          input.City,
		State:         input.State,
		ZipCode:       input.ZipCode,
		Phone:         input.Phone,
		AdminClerk:    input.AdminClerk,
		IsPrimaryHub:  input.IsPrimaryHub,
		QBCustomerID:  input.QBCustomerID,
	}
}
