package impl

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domainerrors "autolot/internal/domain/errors"
	"autolot/internal/infra/metrics"
	"autolot/internal/mocks"
)

func newSweepServiceForTest(unitRepo *mocks.MockUnitRepository, m *metrics.Metrics) *sweepService {
	return NewSweepService(SweepServiceParams{
		TxManager: &mocks.StubTransactionManager{Factory: &mocks.StubRepositoryFactory{UnitRepo: unitRepo}},
		Metrics:   m,
		Logger:    discardLogger(),
	}).(*sweepService)
}

func TestRunPass(t *testing.T) {
	ctx := context.Background()

	t.Run("reports changed rows and counts them", func(t *testing.T) {
		unitRepo := new(mocks.MockUnitRepository)
		m := metrics.New()

		unitRepo.On("ExpireOverdue", mock.Anything, mock.Anything).Return(int64(3), nil)

		changed, err := newSweepServiceForTest(unitRepo, m).RunPass(ctx)

		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, float64(1), testutil.ToFloat64(m.SweepPasses))
		assert.Equal(t, float64(3), testutil.ToFloat64(m.UnitsExpired))
		assert.Equal(t, float64(0), testutil.ToFloat64(m.SweepFailures))
	})

	t.Run("reports no change when nothing was overdue", func(t *testing.T) {
		unitRepo := new(mocks.MockUnitRepository)
		m := metrics.New()

		unitRepo.On("ExpireOverdue", mock.Anything, mock.Anything).Return(int64(0), nil)

		changed, err := newSweepServiceForTest(unitRepo, m).RunPass(ctx)

		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, float64(1), testutil.ToFloat64(m.SweepPasses))
		assert.Equal(t, float64(0), testutil.ToFloat64(m.UnitsExpired))
	})

	t.Run("counts failed passes", func(t *testing.T) {
		unitRepo := new(mocks.MockUnitRepository)
		m := metrics.New()

		unitRepo.On("ExpireOverdue", mock.Anything, mock.Anything).
			Return(int64(0), domainerrors.NewPersistenceError(assert.AnError, "expire overdue units"))

		changed, err := newSweepServiceForTest(unitRepo, m).RunPass(ctx)

		require.Error(t, err)
		assert.False(t, changed)
		assert.Equal(t, float64(1), testutil.ToFloat64(m.SweepFailures))
		assert.Equal(t, float64(0), testutil.ToFloat64(m.SweepPasses))
	})
}
