// Package access enforces who may see a patient's records. Grants are
// patient-initiated, append-only, and live entirely in the cache; the ledger
// holds no grant state.
package access

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Kaysanshaikh/HealthLedger/internal/domain"
	"github.com/Kaysanshaikh/HealthLedger/internal/logger"
	"github.com/Kaysanshaikh/HealthLedger/internal/messaging"
	"github.com/Kaysanshaikh/HealthLedger/internal/store"
	"github.com/Kaysanshaikh/HealthLedger/internal/store/schema"
)

// Engine decides and records access to patient data.
//
//go:generate mockgen -source=engine.go -destination=../mocks/access_engine.go -package=mocks -mock_names=Engine=MockAccessEngine
type Engine interface {
	// Grant gives the doctor access to the patient's records. Granting twice
	// while active is a no-op returning the existing grant.
	Grant(ctx context.Context, patientWallet, doctorWallet string) (*schema.AccessGrant, error)

	// Revoke withdraws a doctor's access. Revoking a non-active grant is a no-op.
	Revoke(ctx context.Context, patientWallet, doctorWallet string) (*schema.AccessGrant, error)

	// IsAuthorized reports whether the requester may read the patient's
	// records. Patients are always authorized for themselves.
	IsAuthorized(ctx context.Context, requesterWallet string, requesterRole domain.Role, patientWallet string) (bool, error)

	// ListPatientsFor returns the patients who hold an active grant for the doctor
	ListPatientsFor(ctx context.Context, doctorWallet string, doctorNumericID uint64) ([]domain.PatientSummary, error)

	// GrantHistory returns the full grant trail for a (doctor, patient) pair
	GrantHistory(ctx context.Context, doctorWallet, patientWallet string) ([]schema.AccessGrant, error)
}

type engine struct {
	store     store.Store
	publisher messaging.Publisher
}

// NewEngine creates an access control engine
func NewEngine(cacheStore store.Store, publisher messaging.Publisher) Engine {
	return &engine{
		store:     cacheStore,
		publisher: publisher,
	}
}

func (e *engine) Grant(ctx context.Context, patientWallet, doctorWallet string) (*schema.AccessGrant, error) {
	if domain.SameAddress(patientWallet, doctorWallet) {
		return nil, fmt.Errorf("cannot grant access to self: %w", domain.ErrConflict)
	}

	grant, created, err := e.store.CreateAccessGrant(ctx, doctorWallet, patientWallet)
	if err != nil {
		return nil, err
	}

	if created {
		e.announce(ctx, domain.EventAccessGranted, grant)

		if err := e.store.CreateNotification(ctx, &schema.Notification{
			RecipientWallet: grant.DoctorWallet,
			Title:           "Access granted",
			Message:         fmt.Sprintf("Patient %s granted you access to their records", grant.PatientWallet),
			Type:            "access_granted",
		}); err != nil {
			logger.WarnCtx(ctx, "failed to create grant notification", zap.Error(err))
		}
	}

	return grant, nil
}

func (e *engine) Revoke(ctx context.Context, patientWallet, doctorWallet string) (*schema.AccessGrant, error) {
	grant, err := e.store.RevokeAccessGrant(ctx, doctorWallet, patientWallet)
	if err != nil {
		return nil, err
	}
	if grant == nil {
		return nil, nil
	}

	e.announce(ctx, domain.EventAccessRevoked, grant)

	if err := e.store.CreateNotification(ctx, &schema.Notification{
		RecipientWallet: grant.DoctorWallet,
		Title:           "Access revoked",
		Message:         fmt.Sprintf("Patient %s revoked your access to their records", grant.PatientWallet),
		Type:            "access_revoked",
	}); err != nil {
		logger.WarnCtx(ctx, "failed to create revoke notification", zap.Error(err))
	}

	return grant, nil
}

func (e *engine) IsAuthorized(ctx context.Context, requesterWallet string, requesterRole domain.Role, patientWallet string) (bool, error) {
	// A patient always sees their own records
	if domain.SameAddress(requesterWallet, patientWallet) {
		return true, nil
	}

	switch requesterRole {
	case domain.RoleDoctor:
		grant, err := e.store.GetActiveAccessGrant(ctx, requesterWallet, patientWallet)
		if err != nil {
			return false, err
		}
		return grant != nil, nil
	case domain.RoleDiagnostic:
		// Diagnostic centers only reach records they created; that check
		// happens at the record layer where the creator is known
		return false, nil
	default:
		return false, nil
	}
}

func (e *engine) ListPatientsFor(ctx context.Context, doctorWallet string, doctorNumericID uint64) ([]domain.PatientSummary, error) {
	return e.store.ListPatientsForDoctor(ctx, doctorWallet, doctorNumericID)
}

func (e *engine) GrantHistory(ctx context.Context, doctorWallet, patientWallet string) ([]schema.AccessGrant, error) {
	return e.store.ListGrantHistory(ctx, doctorWallet, patientWallet)
}

func (e *engine) announce(ctx context.Context, eventType domain.EventType, grant *schema.AccessGrant) {
	event := domain.NewEvent(eventType)
	event.WalletAddress = grant.PatientWallet
	if err := e.publisher.PublishEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "failed to publish access event",
			zap.String("type", string(eventType)),
			zap.Error(err))
	}
}
