package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventType identifies a cache lifecycle event
type EventType string

const (
	EventProfileSynced EventType = "profile_synced"
	EventRecordIndexed EventType = "record_indexed"
	EventAccessGranted EventType = "access_granted"
	EventAccessRevoked EventType = "access_revoked"
)

// Event is published whenever the cache materializes a change. Consumers use
// these to drive notifications and downstream projections; the cache never
// depends on them for correctness.
type Event struct {
	ID            string    `json:"id"`
	Type          EventType `json:"type"`
	WalletAddress string    `json:"wallet_address,omitempty"`
	Role          Role      `json:"role,omitempty"`
	NumericID     uint64    `json:"numeric_id,omitempty"`
	RecordID      uint64    `json:"record_id,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// NewEvent creates an event with a fresh ID and timestamp
func NewEvent(eventType EventType) *Event {
	return &Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
	}
}
