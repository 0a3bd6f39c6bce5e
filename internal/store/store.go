package store

import (
	"context"

	"github.com/Kaysanshaikh/HealthLedger/internal/domain"
	"github.com/Kaysanshaikh/HealthLedger/internal/store/schema"
)

// PatientSupplementaryUpdate carries the cache-authoritative patient fields a
// patient may edit. Nil pointers mean "leave unchanged".
type PatientSupplementaryUpdate struct {
	PhoneNumber           *string
	HomeAddress           *string
	EmergencyContactName  *string
	EmergencyContactPhone *string
	Allergies             *string
	ChronicConditions     *string
}

// Store defines the interface for cache database operations. The cache is
// never authoritative for identity or role; it is always reconstructible from
// the ledger plus the content store.
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// GetUserByWallet retrieves an identity by wallet address (case-insensitive).
	// Returns nil, nil when absent.
	GetUserByWallet(ctx context.Context, wallet string) (*schema.User, error)
	// GetUserByRoleNumericID retrieves an identity by its role-scoped numeric identifier
	GetUserByRoleNumericID(ctx context.Context, role domain.Role, numericID uint64) (*schema.User, error)
	// GetUserByEmail retrieves an identity by email
	GetUserByEmail(ctx context.Context, email string) (*schema.User, error)
	// CreateUser inserts an identity; a concurrent insert of the same wallet is
	// absorbed and the existing row returned
	CreateUser(ctx context.Context, user *schema.User) (*schema.User, error)
	// ListUsers pages through all identities for batch resync
	ListUsers(ctx context.Context, offset, limit int) ([]schema.User, error)
	// CountUsers returns the total number of cached identities
	CountUsers(ctx context.Context) (int64, error)

	// GetPatientProfile retrieves a patient profile by numeric identifier
	GetPatientProfile(ctx context.Context, numericID uint64) (*schema.PatientProfile, error)
	// GetDoctorProfile retrieves a doctor profile by numeric identifier
	GetDoctorProfile(ctx context.Context, numericID uint64) (*schema.DoctorProfile, error)
	// GetDiagnosticProfile retrieves a diagnostic profile by numeric identifier
	GetDiagnosticProfile(ctx context.Context, numericID uint64) (*schema.DiagnosticProfile, error)
	// UpsertPatientLedgerFields creates the profile or overwrites only its
	// ledger-sourced columns, leaving cache-authoritative columns untouched
	UpsertPatientLedgerFields(ctx context.Context, p *schema.PatientProfile) error
	// UpsertDoctorLedgerFields creates the profile or overwrites only its
	// ledger-sourced columns
	UpsertDoctorLedgerFields(ctx context.Context, d *schema.DoctorProfile) error
	// UpsertDiagnosticLedgerFields creates the profile or overwrites only its
	// ledger-sourced columns
	UpsertDiagnosticLedgerFields(ctx context.Context, d *schema.DiagnosticProfile) error
	// UpdatePatientSupplementaryFields updates only cache-authoritative patient
	// columns. Returns nil, nil when the profile does not exist.
	UpdatePatientSupplementaryFields(ctx context.Context, numericID uint64, update PatientSupplementaryUpdate) (*schema.PatientProfile, error)

	// CreateAccessGrant atomically ensures an active grant for (doctor, patient).
	// The boolean reports whether a new row was created; an already-active grant
	// is returned as-is.
	CreateAccessGrant(ctx context.Context, doctorWallet, patientWallet string) (*schema.AccessGrant, bool, error)
	// RevokeAccessGrant deactivates the active grant for (doctor, patient) and
	// stamps revoked_at. Returns nil, nil when no active grant exists.
	RevokeAccessGrant(ctx context.Context, doctorWallet, patientWallet string) (*schema.AccessGrant, error)
	// GetActiveAccessGrant returns the single active grant for (doctor, patient),
	// nil when none
	GetActiveAccessGrant(ctx context.Context, doctorWallet, patientWallet string) (*schema.AccessGrant, error)
	// ListGrantHistory returns all grant rows for (doctor, patient), newest first
	ListGrantHistory(ctx context.Context, doctorWallet, patientWallet string) ([]schema.AccessGrant, error)
	// ListPatientsForDoctor returns summaries of patients with an active grant
	// naming the doctor. The doctor is resolved strictly within the doctor role
	// namespace by numeric identifier AND wallet.
	ListPatientsForDoctor(ctx context.Context, doctorWallet string, doctorNumericID uint64) ([]domain.PatientSummary, error)

	// GetRecordIndexEntry retrieves an index entry by ledger record ID
	GetRecordIndexEntry(ctx context.Context, recordID uint64) (*schema.RecordIndexEntry, error)
	// InsertRecordIndexEntry inserts an index entry, doing nothing when the
	// record is already indexed. The boolean reports whether a row was inserted.
	InsertRecordIndexEntry(ctx context.Context, entry *schema.RecordIndexEntry) (bool, error)
	// SearchRecords matches the searchable projection. When scopeWallets is
	// non-nil, results are restricted to records whose patient or creator wallet
	// is in the set (server-side scoping, never left to the client).
	SearchRecords(ctx context.Context, query string, scopeWallets []string, limit int) ([]schema.RecordIndexEntry, error)
	// ListRecordsByPatient returns index entries for a patient wallet, newest first
	ListRecordsByPatient(ctx context.Context, patientWallet string, limit int) ([]schema.RecordIndexEntry, error)
	// ListRecordsByCreator returns index entries registered by a creator wallet
	ListRecordsByCreator(ctx context.Context, creatorWallet string, limit int) ([]schema.RecordIndexEntry, error)

	// AppendAccessLog appends an audit row; the store assigns a ULID key when unset
	AppendAccessLog(ctx context.Context, entry *schema.AccessLog) error
	// ListAccessLogsByRecord returns the audit trail for a record, newest first
	ListAccessLogsByRecord(ctx context.Context, recordID uint64, limit int) ([]schema.AccessLog, error)

	// CreateNotification inserts a notification row
	CreateNotification(ctx context.Context, n *schema.Notification) error
	// ListNotifications returns notifications for a recipient, newest first
	ListNotifications(ctx context.Context, recipientWallet string, unreadOnly bool, limit int) ([]schema.Notification, error)
	// MarkNotificationRead transitions is_read to true. The write is scoped to
	// the recipient; returns nil, nil when no notification with that id belongs
	// to the wallet.
	MarkNotificationRead(ctx context.Context, id uint64, recipientWallet string) (*schema.Notification, error)
}
