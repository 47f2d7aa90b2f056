package impl

import (
	"context"
	"log/slog"
	"time"

	"go.uber.org/fx"

	deliverycontext "autolot/internal/delivery/context"
	"autolot/internal/domain/repository"
	"autolot/internal/errors"
	"autolot/internal/infra/metrics"
	"autolot/internal/usecase"
)

// sweepService implements the SweepUsecase interface.
type sweepService struct {
	txManager repository.TransactionManager
	metrics   *metrics.Metrics
	logger    *slog.Logger
	now       func() time.Time
}

// SweepServiceParams holds dependencies for sweepService, injected by Fx.
type SweepServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Metrics   *metrics.Metrics
	Logger    *slog.Logger
}

// NewSweepService is the constructor for sweepService.
func NewSweepService(params SweepServiceParams) usecase.SweepUsecase {
	return &sweepService{
		txManager: params.TxManager,
		metrics:   params.Metrics,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *sweepService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RunPass marks every overdue, unpurchased unit expired in one transaction
// and reports whether any row changed.
func (srv *sweepService) RunPass(ctx context.Context) (bool, error) {
	var expired int64

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		count, err := repoFactory.Units().ExpireOverdue(ctx, srv.now())
		if err != nil {
			return errors.Wrap(err, "failed to expire overdue units")
		}
		expired = count

		return nil
	})
	if err != nil {
		srv.metrics.SweepFailures.Inc()
		srv.log(ctx).Error("Sweep pass failed", slog.Any("error", err))

		return false, errors.Wrap(err, "failed to execute sweep transaction")
	}

	srv.metrics.SweepPasses.Inc()
	srv.metrics.UnitsExpired.Add(float64(expired))

	if expired > 0 {
		srv.log(ctx).Info("Sweep pass expired units", slog.Int64("count", expired))
	} else {
		srv.log(ctx).Debug("Sweep pass found nothing to expire")
	}

	return expired > 0, nil
}
