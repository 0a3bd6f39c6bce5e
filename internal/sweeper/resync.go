package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/Kaysanshaikh/HealthLedger/internal/adapter"
	"github.com/Kaysanshaikh/HealthLedger/internal/domain"
	"github.com/Kaysanshaikh/HealthLedger/internal/logger"
	"github.com/Kaysanshaikh/HealthLedger/internal/store"
	"github.com/Kaysanshaikh/HealthLedger/internal/store/schema"
	syncengine "github.com/Kaysanshaikh/HealthLedger/internal/sync"
)

const (
	SWEEP_CYCLE_INTERVAL = 15 * time.Minute // Time to sleep between sweep cycles
)

// ResyncSweeperConfig holds configuration for the cache resync sweeper
type ResyncSweeperConfig struct {
	BatchSize      int // Identities to page per database query
	WorkerPoolSize int // Concurrent reconciles
	QueueSize      int // Worker pool queue bound
}

// resyncSweeper walks every cached identity and reconciles it against the
// ledger. Identities the ledger cannot serve are skipped and picked up again
// on the next cycle.
type resyncSweeper struct {
	config     *ResyncSweeperConfig
	store      store.Store
	reconciler syncengine.Reconciler
	pool       pond.Pool
	clock      adapter.Clock
	running    atomic.Bool
	stopChan   chan struct{}
	stoppedCh  chan struct{}
}

// NewResyncSweeper creates a new cache resync sweeper
func NewResyncSweeper(
	config *ResyncSweeperConfig,
	st store.Store,
	reconciler syncengine.Reconciler,
	clock adapter.Clock,
) Sweeper {
	return &resyncSweeper{
		config:     config,
		store:      st,
		reconciler: reconciler,
		clock:      clock,
		stopChan:   make(chan struct{}),
		stoppedCh:  make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *resyncSweeper) Name() string {
	return "cache-resync-sweeper"
}

// Start begins the sweeper's main loop
func (s *resyncSweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh) // Signal that we've stopped
	}()

	logger.InfoCtx(ctx, "Starting cache resync sweeper",
		zap.Int("batch_size", s.config.BatchSize),
		zap.Int("worker_pool_size", s.config.WorkerPoolSize),
	)

	// Create worker pool
	s.pool = pond.NewPool(
		s.config.WorkerPoolSize,
		pond.WithQueueSize(s.config.QueueSize),
		pond.WithContext(ctx),
	)

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Cache resync sweeper stopping due to context cancellation", zap.Error(ctx.Err()))
			s.cleanup()
			return nil
		case <-s.stopChan:
			logger.InfoCtx(ctx, "Cache resync sweeper stop requested")
			s.cleanup()
			return nil
		default:
			if err := s.runSweepCycle(ctx); err != nil {
				if !errors.Is(err, context.Canceled) {
					logger.ErrorCtx(ctx, err)
				}
			}
		}
	}
}

// cleanup stops the worker pool and waits for tasks to complete
func (s *resyncSweeper) cleanup() {
	if s.pool != nil {
		s.pool.StopAndWait()
	}
}

// Stop gracefully stops the sweeper with timeout support
func (s *resyncSweeper) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	logger.InfoCtx(ctx, "Stopping cache resync sweeper")

	// Signal stop to the main loop
	close(s.stopChan)

	// Wait for main loop to exit, but respect context cancellation
	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Cache resync sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Cache resync sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}

// runSweepCycle reconciles every cached identity once
func (s *resyncSweeper) runSweepCycle(ctx context.Context) error {
	startTime := s.clock.Now()
	logger.InfoCtx(ctx, "Starting resync cycle")

	total, err := s.store.CountUsers(ctx)
	if err != nil {
		return fmt.Errorf("failed to count cached identities: %w", err)
	}

	if total == 0 {
		logger.InfoCtx(ctx, "No cached identities to resync")
		if !s.sleep(ctx, SWEEP_CYCLE_INTERVAL) {
			return ctx.Err()
		}
		return nil
	}

	// Cycle stats
	var syncedCount, staleCount, failedCount atomic.Int32

	offset := 0
	for {
		users, err := s.listUsersWithRetry(ctx, offset, s.config.BatchSize)
		if err != nil {
			return fmt.Errorf("failed to page cached identities: %w", err)
		}
		if len(users) == 0 {
			break
		}

		for _, user := range users {
			role := domain.Role(user.Role)
			numericID := user.NumericID
			s.pool.Submit(func() {
				result, err := s.reconciler.ReconcileProfile(ctx, role, numericID)
				switch {
				case err != nil:
					failedCount.Add(1)
					logger.WarnCtx(ctx, "Resync failed for identity",
						zap.String("role", string(role)),
						zap.Uint64("numeric_id", numericID),
						zap.Error(err),
					)
				case result.Stale:
					// Ledger unavailable; the cached copy stands until next cycle
					staleCount.Add(1)
				default:
					syncedCount.Add(1)
				}
			})
		}

		if len(users) < s.config.BatchSize {
			break
		}
		offset += s.config.BatchSize
	}

	// Wait for all reconciles to complete
	s.pool.StopAndWait()

	// Recreate pool for next cycle
	s.pool = pond.NewPool(
		s.config.WorkerPoolSize,
		pond.WithQueueSize(s.config.QueueSize),
		pond.WithContext(ctx),
	)

	duration := s.clock.Since(startTime)
	logger.InfoCtx(ctx, "Resync cycle completed",
		zap.Duration("duration", duration),
		zap.Int64("total", total),
		zap.Int32("synced", syncedCount.Load()),
		zap.Int32("stale_skipped", staleCount.Load()),
		zap.Int32("failed", failedCount.Load()),
	)

	if !s.sleep(ctx, SWEEP_CYCLE_INTERVAL) {
		return ctx.Err()
	}

	return nil
}

// listUsersWithRetry pages identities with exponential backoff on database errors
func (s *resyncSweeper) listUsersWithRetry(ctx context.Context, offset, limit int) ([]schema.User, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 5 * time.Second
	b.MaxInterval = time.Minute
	b.MaxElapsedTime = 10 * time.Minute

	backoffWithContext := backoff.WithContext(b, ctx)

	var users []schema.User
	operation := func() error {
		rows, err := s.store.ListUsers(ctx, offset, limit)
		if err != nil {
			return err
		}
		users = rows
		return nil
	}

	notifyOnError := func(err error, duration time.Duration) {
		logger.WarnCtx(ctx, "Identity page failed, retrying",
			zap.Error(err),
			zap.Int("offset", offset),
			zap.Duration("next_retry_in", duration),
		)
	}

	if err := backoff.RetryNotify(operation, backoffWithContext, notifyOnError); err != nil {
		return nil, err
	}
	return users, nil
}

// sleep sleeps for the given duration but can be interrupted by context
// cancellation or a stop request. Returns true if sleep completed normally.
func (s *resyncSweeper) sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-s.clock.After(duration):
		return true
	case <-ctx.Done():
		return false
	case <-s.stopChan:
		return false
	}
}
