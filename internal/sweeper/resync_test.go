package sweeper

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kaysanshaikh/HealthLedger/internal/domain"
	"github.com/Kaysanshaikh/HealthLedger/internal/logger"
	"github.com/Kaysanshaikh/HealthLedger/internal/mocks"
	"github.com/Kaysanshaikh/HealthLedger/internal/store/schema"
	syncengine "github.com/Kaysanshaikh/HealthLedger/internal/sync"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	m.Run()
}

type testDeps struct {
	store      *mocks.MockStore
	reconciler *mocks.MockReconciler
	clock      *mocks.MockClock
}

func newTestSweeper(t *testing.T, cfg *ResyncSweeperConfig) (*resyncSweeper, *testDeps) {
	t.Helper()

	ctrl := gomock.NewController(t)
	deps := &testDeps{
		store:      mocks.NewMockStore(ctrl),
		reconciler: mocks.NewMockReconciler(ctrl),
		clock:      mocks.NewMockClock(ctrl),
	}

	s := NewResyncSweeper(cfg, deps.store, deps.reconciler, deps.clock).(*resyncSweeper)
	return s, deps
}

func cachedUser(role string, numericID uint64, wallet string) schema.User {
	return schema.User{
		WalletAddress: wallet,
		Role:          role,
		NumericID:     numericID,
		IsActive:      true,
	}
}

func profileResult(role domain.Role, numericID uint64, stale bool) *syncengine.ProfileResult {
	return &syncengine.ProfileResult{
		Profile: &domain.Profile{
			Kind: role,
			Identity: domain.Identity{
				Role:      role,
				NumericID: numericID,
			},
		},
		Stale: stale,
	}
}

func TestRunSweepCycle(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	// Never fires; cycles under test are interrupted before the sleep matters
	neverFires := make(chan time.Time)

	t.Run("reconciles every cached identity across pages", func(t *testing.T) {
		s, deps := newTestSweeper(t, &ResyncSweeperConfig{
			BatchSize:      2,
			WorkerPoolSize: 2,
			QueueSize:      8,
		})
		s.pool = pond.NewPool(2, pond.WithQueueSize(8), pond.WithContext(ctx))

		deps.clock.EXPECT().Now().Return(now).AnyTimes()
		deps.clock.EXPECT().Since(now).Return(time.Second).AnyTimes()

		deps.store.EXPECT().CountUsers(ctx).Return(int64(3), nil)
		deps.store.EXPECT().ListUsers(ctx, 0, 2).Return([]schema.User{
			cachedUser("patient", 7, "0xaaa0000000000000000000000000000000000001"),
			cachedUser("doctor", 3, "0xaaa0000000000000000000000000000000000002"),
		}, nil)
		deps.store.EXPECT().ListUsers(ctx, 2, 2).Return([]schema.User{
			cachedUser("diagnostic", 9, "0xaaa0000000000000000000000000000000000003"),
		}, nil)

		deps.reconciler.EXPECT().
			ReconcileProfile(ctx, domain.RolePatient, uint64(7)).
			Return(profileResult(domain.RolePatient, 7, false), nil)
		deps.reconciler.EXPECT().
			ReconcileProfile(ctx, domain.RoleDoctor, uint64(3)).
			Return(profileResult(domain.RoleDoctor, 3, true), nil)
		deps.reconciler.EXPECT().
			ReconcileProfile(ctx, domain.RoleDiagnostic, uint64(9)).
			Return(nil, errors.New("boom"))

		// Interrupt the post-cycle sleep via the stop channel
		deps.clock.EXPECT().After(SWEEP_CYCLE_INTERVAL).Return(neverFires)
		close(s.stopChan)

		err := s.runSweepCycle(ctx)
		require.NoError(t, err)
	})

	t.Run("empty cache sleeps without paging", func(t *testing.T) {
		s, deps := newTestSweeper(t, &ResyncSweeperConfig{
			BatchSize:      10,
			WorkerPoolSize: 1,
			QueueSize:      8,
		})
		s.pool = pond.NewPool(1, pond.WithQueueSize(8), pond.WithContext(ctx))

		deps.clock.EXPECT().Now().Return(now).AnyTimes()
		deps.store.EXPECT().CountUsers(ctx).Return(int64(0), nil)
		deps.clock.EXPECT().After(SWEEP_CYCLE_INTERVAL).Return(neverFires)
		close(s.stopChan)

		err := s.runSweepCycle(ctx)
		require.NoError(t, err)
	})

	t.Run("count failure surfaces", func(t *testing.T) {
		s, deps := newTestSweeper(t, &ResyncSweeperConfig{
			BatchSize:      10,
			WorkerPoolSize: 1,
			QueueSize:      8,
		})
		s.pool = pond.NewPool(1, pond.WithQueueSize(8), pond.WithContext(ctx))

		deps.clock.EXPECT().Now().Return(now).AnyTimes()
		deps.store.EXPECT().CountUsers(ctx).Return(int64(0), errors.New("db down"))

		err := s.runSweepCycle(ctx)
		assert.Error(t, err)
	})
}

func TestStartStop(t *testing.T) {
	s, deps := newTestSweeper(t, &ResyncSweeperConfig{
		BatchSize:      10,
		WorkerPoolSize: 1,
		QueueSize:      8,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	now := time.Now()
	neverFires := make(chan time.Time)
	countCalled := make(chan struct{})

	deps.clock.EXPECT().Now().Return(now).AnyTimes()
	deps.clock.EXPECT().Since(now).Return(time.Second).AnyTimes()
	deps.clock.EXPECT().After(SWEEP_CYCLE_INTERVAL).Return(neverFires).AnyTimes()
	deps.store.EXPECT().CountUsers(gomock.Any()).DoAndReturn(func(context.Context) (int64, error) {
		select {
		case <-countCalled:
		default:
			close(countCalled)
		}
		return 0, nil
	}).AnyTimes()

	done := make(chan error, 1)
	go func() {
		done <- s.Start(ctx)
	}()

	// Wait until the first cycle reaches the store, then stop
	select {
	case <-countCalled:
	case <-time.After(5 * time.Second):
		t.Fatal("sweeper never started a cycle")
	}

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer stopCancel()
	require.NoError(t, s.Stop(stopCtx))

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("sweeper did not exit after stop")
	}

	assert.Equal(t, "cache-resync-sweeper", s.Name())

	// Second stop is a no-op
	require.NoError(t, s.Stop(context.Background()))
}
