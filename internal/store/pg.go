package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Kaysanshaikh/HealthLedger/internal/domain"
	"github.com/Kaysanshaikh/HealthLedger/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// Migrate creates or updates all cache tables
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&schema.User{},
		&schema.PatientProfile{},
		&schema.DoctorProfile{},
		&schema.DiagnosticProfile{},
		&schema.AccessGrant{},
		&schema.RecordIndexEntry{},
		&schema.AccessLog{},
		&schema.Notification{},
	)
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to safe defaults.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// GetUserByWallet retrieves an identity by wallet address
func (s *pgStore) GetUserByWallet(ctx context.Context, wallet string) (*schema.User, error) {
	var user schema.User
	err := s.db.WithContext(ctx).Where("wallet_address = ?", domain.NormalizeAddress(wallet)).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by wallet: %w", err)
	}
	return &user, nil
}

// GetUserByRoleNumericID retrieves an identity by its role-scoped numeric identifier
func (s *pgStore) GetUserByRoleNumericID(ctx context.Context, role domain.Role, numericID uint64) (*schema.User, error) {
	var user schema.User
	err := s.db.WithContext(ctx).
		Where("role = ? AND numeric_id = ?", string(role), numericID).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by role and numeric id: %w", err)
	}
	return &user, nil
}

// GetUserByEmail retrieves an identity by email
func (s *pgStore) GetUserByEmail(ctx context.Context, email string) (*schema.User, error) {
	var user schema.User
	err := s.db.WithContext(ctx).Where("email = ?", strings.TrimSpace(email)).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

// CreateUser inserts an identity, absorbing concurrent inserts of the same wallet
func (s *pgStore) CreateUser(ctx context.Context, user *schema.User) (*schema.User, error) {
	user.WalletAddress = domain.NormalizeAddress(user.WalletAddress)

	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "wallet_address"}},
		DoNothing: true,
	}).Clauses(clause.Returning{Columns: []clause.Column{}}).
		Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// ID == 0 means the identity already existed, fetch it
	if user.ID == 0 {
		existing, err := s.GetUserByWallet(ctx, user.WalletAddress)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, fmt.Errorf("failed to create user %s: %w", user.WalletAddress, domain.ErrConflict)
		}
		return existing, nil
	}

	return user, nil
}

// ListUsers pages through all identities for batch resync
func (s *pgStore) ListUsers(ctx context.Context, offset, limit int) ([]schema.User, error) {
	var users []schema.User
	err := s.db.WithContext(ctx).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// CountUsers returns the total number of cached identities
func (s *pgStore) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&schema.User{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

// GetPatientProfile retrieves a patient profile by numeric identifier
func (s *pgStore) GetPatientProfile(ctx context.Context, numericID uint64) (*schema.PatientProfile, error) {
	var profile schema.PatientProfile
	err := s.db.WithContext(ctx).Where("numeric_id = ?", numericID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get patient profile: %w", err)
	}
	return &profile, nil
}

// GetDoctorProfile retrieves a doctor profile by numeric identifier
func (s *pgStore) GetDoctorProfile(ctx context.Context, numericID uint64) (*schema.DoctorProfile, error) {
	var profile schema.DoctorProfile
	err := s.db.WithContext(ctx).Where("numeric_id = ?", numericID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get doctor profile: %w", err)
	}
	return &profile, nil
}

// GetDiagnosticProfile retrieves a diagnostic profile by numeric identifier
func (s *pgStore) GetDiagnosticProfile(ctx context.Context, numericID uint64) (*schema.DiagnosticProfile, error) {
	var profile schema.DiagnosticProfile
	err := s.db.WithContext(ctx).Where("numeric_id = ?", numericID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get diagnostic profile: %w", err)
	}
	return &profile, nil
}

// UpsertPatientLedgerFields creates the profile or overwrites only its
// ledger-sourced columns. Cache-authoritative columns are excluded from the
// conflict assignment so concurrent syncs can never clobber them.
func (s *pgStore) UpsertPatientLedgerFields(ctx context.Context, p *schema.PatientProfile) error {
	p.WalletAddress = domain.NormalizeAddress(p.WalletAddress)

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "numeric_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"wallet_address", "full_name", "date_of_birth", "gender", "blood_group", "home_address", "updated_at",
		}),
	}).Create(p).Error
	if err != nil {
		return fmt.Errorf("failed to upsert patient profile: %w", err)
	}
	return nil
}

// UpsertDoctorLedgerFields creates the profile or overwrites only its
// ledger-sourced columns
func (s *pgStore) UpsertDoctorLedgerFields(ctx context.Context, d *schema.DoctorProfile) error {
	d.WalletAddress = domain.NormalizeAddress(d.WalletAddress)

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "numeric_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"wallet_address", "full_name", "specialization", "hospital", "updated_at",
		}),
	}).Create(d).Error
	if err != nil {
		return fmt.Errorf("failed to upsert doctor profile: %w", err)
	}
	return nil
}

// UpsertDiagnosticLedgerFields creates the profile or overwrites only its
// ledger-sourced columns
func (s *pgStore) UpsertDiagnosticLedgerFields(ctx context.Context, d *schema.DiagnosticProfile) error {
	d.WalletAddress = domain.NormalizeAddress(d.WalletAddress)

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "numeric_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"wallet_address", "center_name", "location", "updated_at",
		}),
	}).Create(d).Error
	if err != nil {
		return fmt.Errorf("failed to upsert diagnostic profile: %w", err)
	}
	return nil
}

// UpdatePatientSupplementaryFields updates only cache-authoritative patient columns
func (s *pgStore) UpdatePatientSupplementaryFields(ctx context.Context, numericID uint64, update PatientSupplementaryUpdate) (*schema.PatientProfile, error) {
	updates := map[string]interface{}{}
	if update.PhoneNumber != nil {
		updates["phone_number"] = *update.PhoneNumber
	}
	if update.HomeAddress != nil {
		updates["home_address"] = *update.HomeAddress
	}
	if update.EmergencyContactName != nil {
		updates["emergency_contact_name"] = *update.EmergencyContactName
	}
	if update.EmergencyContactPhone != nil {
		updates["emergency_contact_phone"] = *update.EmergencyContactPhone
	}
	if update.Allergies != nil {
		updates["allergies"] = *update.Allergies
	}
	if update.ChronicConditions != nil {
		updates["chronic_conditions"] = *update.ChronicConditions
	}

	if len(updates) > 0 {
		updates["updated_at"] = time.Now()
		result := s.db.WithContext(ctx).
			Model(&schema.PatientProfile{}).
			Where("numeric_id = ?", numericID).
			Updates(updates)
		if result.Error != nil {
			return nil, fmt.Errorf("failed to update patient profile: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil, nil
		}
	}

	return s.GetPatientProfile(ctx, numericID)
}

// CreateAccessGrant atomically ensures an active grant for (doctor, patient).
// The insert targets the partial unique index on active rows, so two
// concurrent grants can never produce two simultaneously active rows.
func (s *pgStore) CreateAccessGrant(ctx context.Context, doctorWallet, patientWallet string) (*schema.AccessGrant, bool, error) {
	grant := schema.AccessGrant{
		DoctorWallet:  domain.NormalizeAddress(doctorWallet),
		PatientWallet: domain.NormalizeAddress(patientWallet),
		IsActive:      true,
		GrantedAt:     time.Now(),
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:     []clause.Column{{Name: "doctor_wallet"}, {Name: "patient_wallet"}},
		TargetWhere: clause.Where{Exprs: []clause.Expression{clause.Expr{SQL: "is_active"}}},
		DoNothing:   true,
	}).Clauses(clause.Returning{Columns: []clause.Column{}}).
		Create(&grant).Error
	if err != nil {
		return nil, false, fmt.Errorf("failed to create access grant: %w", err)
	}

	// ID == 0 means an active grant already existed, return it unchanged
	if grant.ID == 0 {
		existing, err := s.GetActiveAccessGrant(ctx, doctorWallet, patientWallet)
		if err != nil {
			return nil, false, err
		}
		if existing == nil {
			return nil, false, fmt.Errorf("failed to create access grant: %w", domain.ErrConflict)
		}
		return existing, false, nil
	}

	return &grant, true, nil
}

// RevokeAccessGrant deactivates the active grant for (doctor, patient)
func (s *pgStore) RevokeAccessGrant(ctx context.Context, doctorWallet, patientWallet string) (*schema.AccessGrant, error) {
	var revoked *schema.AccessGrant

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var grant schema.AccessGrant
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("doctor_wallet = ? AND patient_wallet = ? AND is_active", domain.NormalizeAddress(doctorWallet), domain.NormalizeAddress(patientWallet)).
			First(&grant).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Revoking a non-active or nonexistent grant is a no-op
				return nil
			}
			return fmt.Errorf("failed to find active grant: %w", err)
		}

		now := time.Now()
		grant.IsActive = false
		grant.RevokedAt = &now
		if err := tx.Model(&schema.AccessGrant{}).
			Where("id = ?", grant.ID).
			Updates(map[string]interface{}{"is_active": false, "revoked_at": now}).Error; err != nil {
			return fmt.Errorf("failed to revoke grant: %w", err)
		}

		revoked = &grant
		return nil
	})
	if err != nil {
		return nil, err
	}

	return revoked, nil
}

// GetActiveAccessGrant returns the single active grant for (doctor, patient)
func (s *pgStore) GetActiveAccessGrant(ctx context.Context, doctorWallet, patientWallet string) (*schema.AccessGrant, error) {
	var grant schema.AccessGrant
	err := s.db.WithContext(ctx).
		Where("doctor_wallet = ? AND patient_wallet = ? AND is_active", domain.NormalizeAddress(doctorWallet), domain.NormalizeAddress(patientWallet)).
		First(&grant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active grant: %w", err)
	}
	return &grant, nil
}

// ListGrantHistory returns all grant rows for (doctor, patient), newest first
func (s *pgStore) ListGrantHistory(ctx context.Context, doctorWallet, patientWallet string) ([]schema.AccessGrant, error) {
	var grants []schema.AccessGrant
	err := s.db.WithContext(ctx).
		Where("doctor_wallet = ? AND patient_wallet = ?", domain.NormalizeAddress(doctorWallet), domain.NormalizeAddress(patientWallet)).
		Order("granted_at DESC").
		Find(&grants).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list grant history: %w", err)
	}
	return grants, nil
}

// ListPatientsForDoctor returns summaries of patients with an active grant
// naming the doctor. The doctor identity is resolved within the doctor role
// namespace first: a patient sharing the same numeric identifier value must
// never be conflated with the doctor.
func (s *pgStore) ListPatientsForDoctor(ctx context.Context, doctorWallet string, doctorNumericID uint64) ([]domain.PatientSummary, error) {
	doctor, err := s.GetUserByRoleNumericID(ctx, domain.RoleDoctor, doctorNumericID)
	if err != nil {
		return nil, err
	}
	if doctor == nil || !domain.SameAddress(doctor.WalletAddress, doctorWallet) {
		return []domain.PatientSummary{}, nil
	}

	type row struct {
		NumericID     uint64
		WalletAddress string
		Email         string
		FullName      string
		Gender        string
		BloodGroup    string
		GrantedAt     time.Time
	}

	var rows []row
	err = s.db.WithContext(ctx).
		Table("access_grants AS ag").
		Select("u.numeric_id, u.wallet_address, u.email, pp.full_name, pp.gender, pp.blood_group, ag.granted_at").
		Joins("JOIN users u ON u.wallet_address = ag.patient_wallet AND u.role = ?", string(domain.RolePatient)).
		Joins("LEFT JOIN patient_profiles pp ON pp.numeric_id = u.numeric_id").
		Where("ag.doctor_wallet = ? AND ag.is_active", doctor.WalletAddress).
		Order("ag.granted_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list patients for doctor: %w", err)
	}

	summaries := make([]domain.PatientSummary, 0, len(rows))
	for _, r := range rows {
		summaries = append(summaries, domain.PatientSummary{
			NumericID:     r.NumericID,
			WalletAddress: r.WalletAddress,
			Email:         r.Email,
			FullName:      r.FullName,
			Gender:        r.Gender,
			BloodGroup:    r.BloodGroup,
			GrantedAt:     r.GrantedAt,
		})
	}
	return summaries, nil
}

// GetRecordIndexEntry retrieves an index entry by ledger record ID
func (s *pgStore) GetRecordIndexEntry(ctx context.Context, recordID uint64) (*schema.RecordIndexEntry, error) {
	var entry schema.RecordIndexEntry
	err := s.db.WithContext(ctx).Where("record_id = ?", recordID).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get record index entry: %w", err)
	}
	return &entry, nil
}

// InsertRecordIndexEntry inserts an index entry, doing nothing when the
// record is already indexed (records are immutable once created)
func (s *pgStore) InsertRecordIndexEntry(ctx context.Context, entry *schema.RecordIndexEntry) (bool, error) {
	entry.PatientWallet = domain.NormalizeAddress(entry.PatientWallet)
	entry.CreatorWallet = domain.NormalizeAddress(entry.CreatorWallet)

	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "record_id"}},
		DoNothing: true,
	}).Create(entry)
	if result.Error != nil {
		return false, fmt.Errorf("failed to insert record index entry: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

// SearchRecords matches the searchable projection with token AND semantics
func (s *pgStore) SearchRecords(ctx context.Context, query string, scopeWallets []string, limit int) ([]schema.RecordIndexEntry, error) {
	if limit <= 0 {
		limit = 50
	}

	q := s.db.WithContext(ctx).Model(&schema.RecordIndexEntry{})
	for _, token := range strings.Fields(strings.ToLower(query)) {
		q = q.Where("searchable_text LIKE ?", "%"+token+"%")
	}
	if scopeWallets != nil {
		normalized := make([]string, 0, len(scopeWallets))
		for _, w := range scopeWallets {
			normalized = append(normalized, domain.NormalizeAddress(w))
		}
		q = q.Where("patient_wallet IN ? OR creator_wallet IN ?", normalized, normalized)
	}

	var entries []schema.RecordIndexEntry
	if err := q.Order("created_at DESC").Limit(limit).Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to search records: %w", err)
	}
	return entries, nil
}

// ListRecordsByPatient returns index entries for a patient wallet, newest first
func (s *pgStore) ListRecordsByPatient(ctx context.Context, patientWallet string, limit int) ([]schema.RecordIndexEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	var entries []schema.RecordIndexEntry
	err := s.db.WithContext(ctx).
		Where("patient_wallet = ?", domain.NormalizeAddress(patientWallet)).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list records by patient: %w", err)
	}
	return entries, nil
}

// ListRecordsByCreator returns index entries registered by a creator wallet
func (s *pgStore) ListRecordsByCreator(ctx context.Context, creatorWallet string, limit int) ([]schema.RecordIndexEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	var entries []schema.RecordIndexEntry
	err := s.db.WithContext(ctx).
		Where("creator_wallet = ?", domain.NormalizeAddress(creatorWallet)).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list records by creator: %w", err)
	}
	return entries, nil
}

// AppendAccessLog appends an audit row; the store assigns a ULID key when unset
func (s *pgStore) AppendAccessLog(ctx context.Context, entry *schema.AccessLog) error {
	if entry.ID == "" {
		entry.ID = ulid.Make().String()
	}
	entry.AccessorWallet = domain.NormalizeAddress(entry.AccessorWallet)

	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to append access log: %w", err)
	}
	return nil
}

// ListAccessLogsByRecord returns the audit trail for a record, newest first
func (s *pgStore) ListAccessLogsByRecord(ctx context.Context, recordID uint64, limit int) ([]schema.AccessLog, error) {
	if limit <= 0 {
		limit = 100
	}
	var logs []schema.AccessLog
	err := s.db.WithContext(ctx).
		Where("record_id = ?", recordID).
		Order("id DESC").
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list access logs: %w", err)
	}
	return logs, nil
}

// CreateNotification inserts a notification row
func (s *pgStore) CreateNotification(ctx context.Context, n *schema.Notification) error {
	n.RecipientWallet = domain.NormalizeAddress(n.RecipientWallet)
	if err := s.db.WithContext(ctx).Create(n).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// ListNotifications returns notifications for a recipient, newest first
func (s *pgStore) ListNotifications(ctx context.Context, recipientWallet string, unreadOnly bool, limit int) ([]schema.Notification, error) {
	if limit <= 0 {
		limit = 50
	}
	q := s.db.WithContext(ctx).
		Where("recipient_wallet = ?", domain.NormalizeAddress(recipientWallet))
	if unreadOnly {
		q = q.Where("is_read = false")
	}

	var notifications []schema.Notification
	if err := q.Order("created_at DESC").Limit(limit).Find(&notifications).Error; err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

// MarkNotificationRead transitions is_read to true for the recipient's own row
func (s *pgStore) MarkNotificationRead(ctx context.Context, id uint64, recipientWallet string) (*schema.Notification, error) {
	recipient := domain.NormalizeAddress(recipientWallet)
	result := s.db.WithContext(ctx).
		Model(&schema.Notification{}).
		Where("id = ? AND recipient_wallet = ?", id, recipient).
		Update("is_read", true)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to mark notification read: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	var n schema.Notification
	if err := s.db.WithContext(ctx).Where("id = ? AND recipient_wallet = ?", id, recipient).First(&n).Error; err != nil {
		return nil, fmt.Errorf("failed to reload notification: %w", err)
	}
	return &n, nil
}
