package sweeper

import (
	"context"
)

// Sweeper is a long-running background maintenance loop. The cache resync
// sweeper walks every cached identity and re-reconciles it against the ledger
// on a fixed interval.
//
//go:generate mockgen -source=sweeper.go -destination=../mocks/sweeper.go -package=mocks -mock_names=Sweeper=MockSweeper
type Sweeper interface {
	// Start runs the sweep loop. Blocks until the context is canceled or
	// Stop is called.
	Start(ctx context.Context) error

	// Stop stops the loop, waiting for the in-progress cycle to drain
	Stop(ctx context.Context) error

	// Name identifies the sweeper in logs
	Name() string
}
