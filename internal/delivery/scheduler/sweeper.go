// Package scheduler runs periodic background jobs as a delivery.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"go.uber.org/fx"

	"autolot/config"
	"autolot/internal/delivery"
	"autolot/internal/usecase"
)

// Params holds the sweeper dependencies, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	Sweep  usecase.SweepUsecase
}

type sweeper struct {
	interval time.Duration
	logger   *slog.Logger
	sweep    usecase.SweepUsecase

	cancel context.CancelFunc
}

// NewSweeper builds the expiration sweeper delivery. It marks overdue units
// expired on a fixed interval until the application shuts down.
func NewSweeper(params Params) (delivery.Delivery, error) {
	s := &sweeper{
		interval: params.Config.SweepInterval(),
		logger:   params.Logger,
		sweep:    params.Sweep,
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			if s.cancel != nil {
				s.cancel()
			}

			return nil
		},
	})

	return s, nil
}

// Serve blocks running sweep passes until the context is cancelled. A failed
// pass is logged and the next tick retries.
func (s *sweeper) Serve(ctx context.Context) error {
	ctx, s.cancel = context.WithCancel(ctx)

	s.logger.Info("Starting expiration sweeper", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Stopping expiration sweeper")

			return nil
		case <-ticker.C:
			if _, err := s.sweep.RunPass(ctx); err != nil {
				s.logger.Error("Expiration sweep pass failed", slog.Any("error", err))
			}
		}
	}
}
