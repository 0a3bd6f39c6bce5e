// Package sync reconciles the relational cache against the ledger. The ledger
// is always authoritative; reconciliation is idempotent and safe to run
// concurrently for the same key.
package sync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gowebpki/jcs"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/datatypes"

	"github.com/Kaysanshaikh/HealthLedger/internal/domain"
	"github.com/Kaysanshaikh/HealthLedger/internal/ledger"
	"github.com/Kaysanshaikh/HealthLedger/internal/logger"
	"github.com/Kaysanshaikh/HealthLedger/internal/messaging"
	"github.com/Kaysanshaikh/HealthLedger/internal/store"
	"github.com/Kaysanshaikh/HealthLedger/internal/store/schema"
)

// ProfileResult is a reconciled profile. Stale is true when the ledger was
// unreachable and the profile was served from the cache alone; callers making
// authorization decisions must reject stale results.
type ProfileResult struct {
	Profile *domain.Profile
	Stale   bool
}

// Reconciler materializes ledger state into the cache.
//
//go:generate mockgen -source=reconciler.go -destination=../mocks/reconciler.go -package=mocks -mock_names=Reconciler=MockReconciler
type Reconciler interface {
	// ReconcileProfile syncs one identity and its role profile from the
	// ledger. Concurrent calls for the same (role, numericID) are coalesced
	// into a single ledger read.
	ReconcileProfile(ctx context.Context, role domain.Role, numericID uint64) (*ProfileResult, error)

	// ReconcileRecord syncs one record pointer into the index. Records are
	// immutable, so an already indexed record is returned unchanged.
	ReconcileRecord(ctx context.Context, recordID uint64) (*schema.RecordIndexEntry, error)
}

type reconciler struct {
	ledger    ledger.Client
	store     store.Store
	publisher messaging.Publisher
	group     singleflight.Group
}

// NewReconciler creates a reconciler over the given ledger and cache
func NewReconciler(ledgerClient ledger.Client, cacheStore store.Store, publisher messaging.Publisher) Reconciler {
	return &reconciler{
		ledger:    ledgerClient,
		store:     cacheStore,
		publisher: publisher,
	}
}

func (r *reconciler) ReconcileProfile(ctx context.Context, role domain.Role, numericID uint64) (*ProfileResult, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	// Coalesced calls observe the context of the call that won the race
	key := fmt.Sprintf("%s:%d", role, numericID)
	v, err, _ := r.group.Do(key, func() (interface{}, error) {
		return r.reconcileProfile(ctx, role, numericID)
	})
	if err != nil {
		return nil, err
	}
	return v.(*ProfileResult), nil
}

func (r *reconciler) reconcileProfile(ctx context.Context, role domain.Role, numericID uint64) (*ProfileResult, error) {
	var (
		result *ProfileResult
		err    error
	)

	switch role {
	case domain.RolePatient:
		result, err = r.reconcilePatient(ctx, numericID)
	case domain.RoleDoctor:
		result, err = r.reconcileDoctor(ctx, numericID)
	case domain.RoleDiagnostic:
		result, err = r.reconcileDiagnostic(ctx, numericID)
	default:
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	if err != nil {
		return nil, err
	}

	if !result.Stale {
		event := domain.NewEvent(domain.EventProfileSynced)
		event.WalletAddress = result.Profile.Identity.WalletAddress
		event.Role = role
		event.NumericID = numericID
		if err := r.publisher.PublishEvent(ctx, event); err != nil {
			logger.WarnCtx(ctx, "failed to publish profile event",
				zap.String("role", string(role)),
				zap.Uint64("numeric_id", numericID),
				zap.Error(err))
		}
	}

	return result, nil
}

func (r *reconciler) reconcilePatient(ctx context.Context, numericID uint64) (*ProfileResult, error) {
	lp, err := r.ledger.GetPatient(ctx, numericID)
	if err != nil {
		if errors.Is(err, domain.ErrUnavailable) {
			return r.cachedProfile(ctx, domain.RolePatient, numericID, err)
		}
		return nil, err
	}

	user, err := r.ensureIdentity(ctx, lp.WalletAddress, lp.Email, domain.RolePatient, numericID)
	if err != nil {
		return nil, err
	}

	if err := r.store.UpsertPatientLedgerFields(ctx, &schema.PatientProfile{
		NumericID:     numericID,
		WalletAddress: lp.WalletAddress,
		FullName:      lp.Name,
		DateOfBirth:   domain.FormatDOB(lp.DOB),
		Gender:        lp.Gender,
		BloodGroup:    lp.BloodGroup,
		HomeAddress:   lp.HomeAddress,
	}); err != nil {
		return nil, err
	}

	cached, err := r.store.GetPatientProfile(ctx, numericID)
	if err != nil {
		return nil, err
	}

	return &ProfileResult{Profile: patientProfile(user, cached)}, nil
}

func (r *reconciler) reconcileDoctor(ctx context.Context, numericID uint64) (*ProfileResult, error) {
	ld, err := r.ledger.GetDoctor(ctx, numericID)
	if err != nil {
		if errors.Is(err, domain.ErrUnavailable) {
			return r.cachedProfile(ctx, domain.RoleDoctor, numericID, err)
		}
		return nil, err
	}

	user, err := r.ensureIdentity(ctx, ld.WalletAddress, ld.Email, domain.RoleDoctor, numericID)
	if err != nil {
		return nil, err
	}

	if err := r.store.UpsertDoctorLedgerFields(ctx, &schema.DoctorProfile{
		NumericID:      numericID,
		WalletAddress:  ld.WalletAddress,
		FullName:       ld.Name,
		Specialization: ld.Specialization,
		Hospital:       ld.Hospital,
	}); err != nil {
		return nil, err
	}

	cached, err := r.store.GetDoctorProfile(ctx, numericID)
	if err != nil {
		return nil, err
	}

	return &ProfileResult{Profile: doctorProfile(user, cached)}, nil
}

func (r *reconciler) reconcileDiagnostic(ctx context.Context, numericID uint64) (*ProfileResult, error) {
	ld, err := r.ledger.GetDiagnostic(ctx, numericID)
	if err != nil {
		if errors.Is(err, domain.ErrUnavailable) {
			return r.cachedProfile(ctx, domain.RoleDiagnostic, numericID, err)
		}
		return nil, err
	}

	user, err := r.ensureIdentity(ctx, ld.WalletAddress, ld.Email, domain.RoleDiagnostic, numericID)
	if err != nil {
		return nil, err
	}

	if err := r.store.UpsertDiagnosticLedgerFields(ctx, &schema.DiagnosticProfile{
		NumericID:     numericID,
		WalletAddress: ld.WalletAddress,
		CenterName:    ld.CenterName,
		Location:      ld.Location,
	}); err != nil {
		return nil, err
	}

	cached, err := r.store.GetDiagnosticProfile(ctx, numericID)
	if err != nil {
		return nil, err
	}

	return &ProfileResult{Profile: diagnosticProfile(user, cached)}, nil
}

// cachedProfile serves a profile from the cache alone after the ledger turned
// out to be unreachable. The original ledger error is returned when the cache
// cannot serve either.
func (r *reconciler) cachedProfile(ctx context.Context, role domain.Role, numericID uint64, ledgerErr error) (*ProfileResult, error) {
	user, err := r.store.GetUserByRoleNumericID(ctx, role, numericID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ledgerErr
	}

	logger.WarnCtx(ctx, "ledger unavailable, serving cached profile",
		zap.String("role", string(role)),
		zap.Uint64("numeric_id", numericID),
		zap.Error(ledgerErr))

	var profile *domain.Profile
	switch role {
	case domain.RolePatient:
		cached, err := r.store.GetPatientProfile(ctx, numericID)
		if err != nil {
			return nil, err
		}
		profile = patientProfile(user, cached)
	case domain.RoleDoctor:
		cached, err := r.store.GetDoctorProfile(ctx, numericID)
		if err != nil {
			return nil, err
		}
		profile = doctorProfile(user, cached)
	case domain.RoleDiagnostic:
		cached, err := r.store.GetDiagnosticProfile(ctx, numericID)
		if err != nil {
			return nil, err
		}
		profile = diagnosticProfile(user, cached)
	}

	return &ProfileResult{Profile: profile, Stale: true}, nil
}

// ensureIdentity upserts the identity row for a ledger-registered wallet
func (r *reconciler) ensureIdentity(ctx context.Context, wallet, email string, role domain.Role, numericID uint64) (*schema.User, error) {
	user, err := r.store.CreateUser(ctx, &schema.User{
		WalletAddress: wallet,
		Email:         email,
		Role:          string(role),
		NumericID:     numericID,
		IsActive:      true,
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *reconciler) ReconcileRecord(ctx context.Context, recordID uint64) (*schema.RecordIndexEntry, error) {
	key := fmt.Sprintf("record:%d", recordID)
	v, err, _ := r.group.Do(key, func() (interface{}, error) {
		return r.reconcileRecord(ctx, recordID)
	})
	if err != nil {
		return nil, err
	}
	return v.(*schema.RecordIndexEntry), nil
}

func (r *reconciler) reconcileRecord(ctx context.Context, recordID uint64) (*schema.RecordIndexEntry, error) {
	// Records never change once written, so a hit in the index is final
	existing, err := r.store.GetRecordIndexEntry(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	lr, err := r.ledger.GetRecord(ctx, recordID)
	if err != nil {
		return nil, err
	}

	entry := &schema.RecordIndexEntry{
		RecordID:       lr.RecordID,
		PatientWallet:  lr.PatientWallet,
		CreatorWallet:  lr.CreatorWallet,
		CID:            lr.CID,
		RecordType:     recordType(lr.Meta),
		Metadata:       canonicalMetadata(lr.Meta),
		SearchableText: SearchableText(lr.Meta),
		CreatedAt:      time.Unix(lr.CreatedAt, 0).UTC(),
	}

	if patient, err := r.store.GetUserByWallet(ctx, lr.PatientWallet); err != nil {
		return nil, err
	} else if patient != nil {
		entry.PatientNumericID = &patient.NumericID
	}

	inserted, err := r.store.InsertRecordIndexEntry(ctx, entry)
	if err != nil {
		return nil, err
	}

	if inserted {
		r.announceRecord(ctx, entry)
	}

	return entry, nil
}

// announceRecord publishes the indexed event and notifies the record owner
func (r *reconciler) announceRecord(ctx context.Context, entry *schema.RecordIndexEntry) {
	event := domain.NewEvent(domain.EventRecordIndexed)
	event.WalletAddress = entry.PatientWallet
	event.RecordID = entry.RecordID
	if err := r.publisher.PublishEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "failed to publish record event",
			zap.Uint64("record_id", entry.RecordID),
			zap.Error(err))
	}

	recordID := entry.RecordID
	if err := r.store.CreateNotification(ctx, &schema.Notification{
		RecipientWallet: entry.PatientWallet,
		Title:           "New medical record",
		Message:         fmt.Sprintf("Record #%d was added to your history", entry.RecordID),
		Type:            "record_indexed",
		RelatedRecordID: &recordID,
	}); err != nil {
		logger.WarnCtx(ctx, "failed to create record notification",
			zap.Uint64("record_id", entry.RecordID),
			zap.Error(err))
	}
}

// SearchableText derives the deterministic search projection from record
// metadata. Canonicalization keeps the projection byte-stable for equal
// metadata regardless of key order in the source document.
func SearchableText(meta string) string {
	meta = strings.TrimSpace(meta)
	if meta == "" {
		return ""
	}

	canonical, err := jcs.Transform([]byte(meta))
	if err != nil {
		// Not JSON; index the raw string as-is
		return strings.ToLower(meta)
	}
	return strings.ToLower(string(canonical))
}

// canonicalMetadata stores the canonicalized metadata document, or nothing
// when the ledger payload is not valid JSON
func canonicalMetadata(meta string) datatypes.JSON {
	canonical, err := jcs.Transform([]byte(strings.TrimSpace(meta)))
	if err != nil {
		return nil
	}
	return datatypes.JSON(canonical)
}

// recordType pulls the declared type out of the metadata document
func recordType(meta string) string {
	var doc struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal([]byte(meta), &doc); err == nil && doc.Type != "" {
		return doc.Type
	}
	return "general"
}

func patientProfile(user *schema.User, cached *schema.PatientProfile) *domain.Profile {
	profile := &domain.Profile{
		Kind:     domain.RolePatient,
		Identity: identity(user),
	}
	if cached != nil {
		profile.Patient = &domain.PatientProfile{
			NumericID:             cached.NumericID,
			WalletAddress:         cached.WalletAddress,
			FullName:              cached.FullName,
			DateOfBirth:           cached.DateOfBirth,
			Gender:                cached.Gender,
			BloodGroup:            cached.BloodGroup,
			HomeAddress:           cached.HomeAddress,
			PhoneNumber:           cached.PhoneNumber,
			EmergencyContactName:  cached.EmergencyContactName,
			EmergencyContactPhone: cached.EmergencyContactPhone,
			Allergies:             cached.Allergies,
			ChronicConditions:     cached.ChronicConditions,
		}
	}
	return profile
}

func doctorProfile(user *schema.User, cached *schema.DoctorProfile) *domain.Profile {
	profile := &domain.Profile{
		Kind:     domain.RoleDoctor,
		Identity: identity(user),
	}
	if cached != nil {
		profile.Doctor = &domain.DoctorProfile{
			NumericID:         cached.NumericID,
			WalletAddress:     cached.WalletAddress,
			FullName:          cached.FullName,
			Specialization:    cached.Specialization,
			Hospital:          cached.Hospital,
			LicenseNumber:     cached.LicenseNumber,
			PhoneNumber:       cached.PhoneNumber,
			YearsOfExperience: cached.YearsOfExperience,
		}
	}
	return profile
}

func diagnosticProfile(user *schema.User, cached *schema.DiagnosticProfile) *domain.Profile {
	profile := &domain.Profile{
		Kind:     domain.RoleDiagnostic,
		Identity: identity(user),
	}
	if cached != nil {
		profile.Diagnostic = &domain.DiagnosticProfile{
			NumericID:       cached.NumericID,
			WalletAddress:   cached.WalletAddress,
			CenterName:      cached.CenterName,
			Location:        cached.Location,
			PhoneNumber:     cached.PhoneNumber,
			ServicesOffered: cached.ServicesOffered,
			Accreditation:   cached.Accreditation,
		}
	}
	return profile
}

func identity(user *schema.User) domain.Identity {
	return domain.Identity{
		ID:            user.ID,
		WalletAddress: user.WalletAddress,
		Email:         user.Email,
		Role:          domain.Role(user.Role),
		NumericID:     user.NumericID,
		IsActive:      user.IsActive,
		CreatedAt:     user.CreatedAt,
	}
}
