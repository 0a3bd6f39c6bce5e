// Package messaging defines the event publishing surface. Events announce
// cache changes to downstream consumers; the API degrades to a no-op
// publisher when no broker is configured.
package messaging

import (
	"context"

	"github.com/Kaysanshaikh/HealthLedger/internal/domain"
)

// Publisher defines the interface for publishing events to the message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishEvent publishes a cache lifecycle event
	PublishEvent(ctx context.Context, event *domain.Event) error
	// Close closes the connection
	Close()
	// CloseChan returns a channel that is closed when the publisher is closed
	CloseChan() <-chan struct{}
}

// NoopPublisher discards all events. Used when no broker URL is configured.
type NoopPublisher struct {
	closed chan struct{}
}

// NewNoopPublisher creates a publisher that discards everything
func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{closed: make(chan struct{})}
}

func (p *NoopPublisher) PublishEvent(ctx context.Context, event *domain.Event) error {
	return nil
}

func (p *NoopPublisher) Close() {
	select {
	case <-p.closed:
	default:
		close(p.closed)
	}
}

func (p *NoopPublisher) CloseChan() <-chan struct{} {
	return p.closed
}
