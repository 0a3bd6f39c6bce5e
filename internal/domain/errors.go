package domain

import "errors"

var (
	// ErrNotFound is returned when an entity is absent on both the ledger and the cache
	ErrNotFound = errors.New("not found")

	// ErrUnavailable is returned when an upstream dependency is unreachable.
	// It is recoverable: callers fall back to the cache where a safe fallback exists.
	ErrUnavailable = errors.New("upstream unavailable")

	// ErrInvalidSignature is returned when a signed login challenge does not
	// recover to the claimed wallet address
	ErrInvalidSignature = errors.New("invalid signature")

	// ErrRoleNotGranted is returned when the ledger definitively reports that a
	// wallet does not hold the claimed on-chain role
	ErrRoleNotGranted = errors.New("role not granted")

	// ErrUnauthorized is returned for any credential failure. Expired and
	// malformed credentials are deliberately indistinguishable.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrPayloadRejected is returned when an upload violates the size or file
	// kind policy. The check runs before any network call.
	ErrPayloadRejected = errors.New("payload rejected")

	// ErrConflict is returned on an attempted duplicate active grant or
	// duplicate identity. Idempotent upserts resolve it internally; it is not
	// surfaced to API callers.
	ErrConflict = errors.New("conflict")
)
