// Package records serves the searchable record index and gates payload
// retrieval. The index only ever holds pointers and metadata; clinical
// payloads live in the content store, addressed by CID.
package records

import (
	"context"
	"fmt"

	"github.com/Kaysanshaikh/HealthLedger/internal/access"
	"github.com/Kaysanshaikh/HealthLedger/internal/contentstore"
	"github.com/Kaysanshaikh/HealthLedger/internal/domain"
	syncengine "github.com/Kaysanshaikh/HealthLedger/internal/sync"
	"github.com/Kaysanshaikh/HealthLedger/internal/store"
	"github.com/Kaysanshaikh/HealthLedger/internal/store/schema"
)

// Requester identifies the authenticated caller of a record operation
type Requester struct {
	Wallet    string
	Role      domain.Role
	NumericID uint64
}

// Service exposes record indexing, search, and payload retrieval.
//
//go:generate mockgen -source=service.go -destination=../mocks/records_service.go -package=mocks -mock_names=Service=MockRecordsService
type Service interface {
	// Index pulls a record pointer from the ledger into the index. Indexing
	// an already indexed record is a no-op returning the existing entry.
	Index(ctx context.Context, requester Requester, recordID uint64) (*schema.RecordIndexEntry, error)

	// Search matches the caller's reachable records against the query. The
	// scope is derived server-side from the caller's role and grants; every
	// search is written to the audit trail.
	Search(ctx context.Context, requester Requester, query string, limit int) ([]schema.RecordIndexEntry, error)

	// ListByPatient returns a patient's records, authorization-gated
	ListByPatient(ctx context.Context, requester Requester, patientWallet string, limit int) ([]schema.RecordIndexEntry, error)

	// FetchContent retrieves the payload behind a record. Every fetch is
	// written to the audit trail. There is no stale fallback for payloads.
	FetchContent(ctx context.Context, requester Requester, recordID uint64) ([]byte, *schema.RecordIndexEntry, error)

	// Upload validates and pins a payload, returning its CID for the caller
	// to register on the ledger
	Upload(ctx context.Context, requester Requester, fileName string, payload []byte) (*contentstore.PutResult, error)

	// AccessTrail returns the audit trail for a record
	AccessTrail(ctx context.Context, recordID uint64, limit int) ([]schema.AccessLog, error)
}

type service struct {
	store      store.Store
	reconciler syncengine.Reconciler
	content    contentstore.Client
	access     access.Engine
}

// NewService creates a records service
func NewService(cacheStore store.Store, reconciler syncengine.Reconciler, content contentstore.Client, accessEngine access.Engine) Service {
	return &service{
		store:      cacheStore,
		reconciler: reconciler,
		content:    content,
		access:     accessEngine,
	}
}

func (s *service) Index(ctx context.Context, requester Requester, recordID uint64) (*schema.RecordIndexEntry, error) {
	return s.reconciler.ReconcileRecord(ctx, recordID)
}

func (s *service) Search(ctx context.Context, requester Requester, query string, limit int) ([]schema.RecordIndexEntry, error) {
	scope, err := s.searchScope(ctx, requester)
	if err != nil {
		return nil, err
	}

	entries, err := s.store.SearchRecords(ctx, query, scope, limit)
	if err != nil {
		return nil, err
	}

	if err := s.store.AppendAccessLog(ctx, &schema.AccessLog{
		AccessorWallet: requester.Wallet,
		AccessorRole:   string(requester.Role),
		Action:         "search",
		Origin:         "api",
	}); err != nil {
		return nil, fmt.Errorf("failed to record search audit entry: %w", err)
	}

	return entries, nil
}

// searchScope derives the wallets whose records the caller may see. The
// scope is never taken from the request.
func (s *service) searchScope(ctx context.Context, requester Requester) ([]string, error) {
	switch requester.Role {
	case domain.RolePatient, domain.RoleDiagnostic:
		return []string{domain.NormalizeAddress(requester.Wallet)}, nil
	case domain.RoleDoctor:
		patients, err := s.access.ListPatientsFor(ctx, requester.Wallet, requester.NumericID)
		if err != nil {
			return nil, err
		}
		scope := make([]string, 0, len(patients)+1)
		scope = append(scope, domain.NormalizeAddress(requester.Wallet))
		for _, p := range patients {
			scope = append(scope, p.WalletAddress)
		}
		return scope, nil
	default:
		return nil, fmt.Errorf("invalid role: %s", requester.Role)
	}
}

func (s *service) ListByPatient(ctx context.Context, requester Requester, patientWallet string, limit int) ([]schema.RecordIndexEntry, error) {
	authorized, err := s.access.IsAuthorized(ctx, requester.Wallet, requester.Role, patientWallet)
	if err != nil {
		return nil, err
	}
	if !authorized {
		return nil, domain.ErrUnauthorized
	}

	return s.store.ListRecordsByPatient(ctx, patientWallet, limit)
}

func (s *service) FetchContent(ctx context.Context, requester Requester, recordID uint64) ([]byte, *schema.RecordIndexEntry, error) {
	entry, err := s.reconciler.ReconcileRecord(ctx, recordID)
	if err != nil {
		return nil, nil, err
	}

	if err := s.authorizeRecord(ctx, requester, entry); err != nil {
		return nil, nil, err
	}

	payload, err := s.content.Get(ctx, entry.CID)
	if err != nil {
		return nil, nil, err
	}

	if err := s.store.AppendAccessLog(ctx, &schema.AccessLog{
		RecordID:       entry.RecordID,
		AccessorWallet: requester.Wallet,
		AccessorRole:   string(requester.Role),
		Action:         "view",
		Origin:         "api",
	}); err != nil {
		return nil, nil, fmt.Errorf("failed to record view audit entry: %w", err)
	}

	return payload, entry, nil
}

// authorizeRecord applies the per-record rules. A diagnostic center reaches
// only records it created; everyone else goes through the grant check.
func (s *service) authorizeRecord(ctx context.Context, requester Requester, entry *schema.RecordIndexEntry) error {
	if requester.Role == domain.RoleDiagnostic {
		if domain.SameAddress(requester.Wallet, entry.CreatorWallet) {
			return nil
		}
		return domain.ErrUnauthorized
	}

	authorized, err := s.access.IsAuthorized(ctx, requester.Wallet, requester.Role, entry.PatientWallet)
	if err != nil {
		return err
	}
	if !authorized {
		return domain.ErrUnauthorized
	}
	return nil
}

func (s *service) Upload(ctx context.Context, requester Requester, fileName string, payload []byte) (*contentstore.PutResult, error) {
	result, err := s.content.Put(ctx, fileName, payload)
	if err != nil {
		return nil, err
	}

	if err := s.store.AppendAccessLog(ctx, &schema.AccessLog{
		AccessorWallet: requester.Wallet,
		AccessorRole:   string(requester.Role),
		Action:         "upload",
		Origin:         "api",
	}); err != nil {
		return nil, fmt.Errorf("failed to record upload audit entry: %w", err)
	}

	return result, nil
}

func (s *service) AccessTrail(ctx context.Context, recordID uint64, limit int) ([]schema.AccessLog, error) {
	return s.store.ListAccessLogsByRecord(ctx, recordID, limit)
}
