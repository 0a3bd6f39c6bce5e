package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/Kaysanshaikh/HealthLedger/internal/domain"
	"github.com/Kaysanshaikh/HealthLedger/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

func buildTestUser(role domain.Role, numericID uint64, wallet string) *schema.User {
	return &schema.User{
		WalletAddress: wallet,
		Email:         fmt.Sprintf("%s%d@example.com", role, numericID),
		Role:          string(role),
		NumericID:     numericID,
		IsActive:      true,
	}
}

func buildTestPatientProfile(numericID uint64, wallet, name string) *schema.PatientProfile {
	return &schema.PatientProfile{
		NumericID:     numericID,
		WalletAddress: wallet,
		FullName:      name,
		DateOfBirth:   "1990-05-14",
		Gender:        "female",
		BloodGroup:    "O+",
		HomeAddress:   "12 Harbor Lane",
	}
}

func buildTestRecordEntry(recordID uint64, patientWallet, creatorWallet, searchable string) *schema.RecordIndexEntry {
	return &schema.RecordIndexEntry{
		RecordID:       recordID,
		PatientWallet:  patientWallet,
		CreatorWallet:  creatorWallet,
		CID:            fmt.Sprintf("bafkrei%d", recordID),
		RecordType:     "general",
		Metadata:       datatypes.JSON([]byte(`{"title":"test record"}`)),
		SearchableText: searchable,
		CreatedAt:      time.Now().UTC().Truncate(time.Second),
	}
}

// =============================================================================
// Users
// =============================================================================

func testUsers(t *testing.T, s Store) {
	ctx := context.Background()

	t.Run("create and fetch by wallet normalizes case", func(t *testing.T) {
		created, err := s.CreateUser(ctx, buildTestUser(domain.RolePatient, 1, "0xAbCd000000000000000000000000000000000001"))
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, "0xabcd000000000000000000000000000000000001", created.WalletAddress)

		found, err := s.GetUserByWallet(ctx, "0xABCD000000000000000000000000000000000001")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, created.ID, found.ID)
	})

	t.Run("duplicate wallet returns existing row", func(t *testing.T) {
		first, err := s.CreateUser(ctx, buildTestUser(domain.RolePatient, 2, "0x0000000000000000000000000000000000000002"))
		require.NoError(t, err)

		second, err := s.CreateUser(ctx, buildTestUser(domain.RolePatient, 2, "0x0000000000000000000000000000000000000002"))
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)

		count, err := s.CountUsers(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("numeric identifiers are scoped per role", func(t *testing.T) {
		_, err := s.CreateUser(ctx, buildTestUser(domain.RolePatient, 7, "0x0000000000000000000000000000000000000007"))
		require.NoError(t, err)
		_, err = s.CreateUser(ctx, buildTestUser(domain.RoleDoctor, 7, "0x0000000000000000000000000000000000000017"))
		require.NoError(t, err)

		patient, err := s.GetUserByRoleNumericID(ctx, domain.RolePatient, 7)
		require.NoError(t, err)
		require.NotNil(t, patient)
		assert.Equal(t, "0x0000000000000000000000000000000000000007", patient.WalletAddress)

		doctor, err := s.GetUserByRoleNumericID(ctx, domain.RoleDoctor, 7)
		require.NoError(t, err)
		require.NotNil(t, doctor)
		assert.Equal(t, "0x0000000000000000000000000000000000000017", doctor.WalletAddress)

		missing, err := s.GetUserByRoleNumericID(ctx, domain.RoleDiagnostic, 7)
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("fetch by email", func(t *testing.T) {
		found, err := s.GetUserByEmail(ctx, "patient7@example.com")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, uint64(7), found.NumericID)

		missing, err := s.GetUserByEmail(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("list pages in id order", func(t *testing.T) {
		page, err := s.ListUsers(ctx, 0, 2)
		require.NoError(t, err)
		require.Len(t, page, 2)
		assert.Less(t, page[0].ID, page[1].ID)

		rest, err := s.ListUsers(ctx, 2, 100)
		require.NoError(t, err)

		count, err := s.CountUsers(ctx)
		require.NoError(t, err)
		assert.Equal(t, count, int64(len(page)+len(rest)))
	})
}

// =============================================================================
// Profiles
// =============================================================================

func testPatientProfiles(t *testing.T, s Store) {
	ctx := context.Background()

	wallet := "0x0000000000000000000000000000000000000101"

	t.Run("upsert then re-upsert preserves supplementary fields", func(t *testing.T) {
		require.NoError(t, s.UpsertPatientLedgerFields(ctx, buildTestPatientProfile(101, wallet, "Asha Verma")))

		phone := "+91-555-0101"
		allergies := "penicillin"
		updated, err := s.UpdatePatientSupplementaryFields(ctx, 101, PatientSupplementaryUpdate{
			PhoneNumber: &phone,
			Allergies:   &allergies,
		})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, phone, updated.PhoneNumber)
		assert.Equal(t, allergies, updated.Allergies)

		// A fresh sync overwrites ledger columns but not patient-edited ones
		refreshed := buildTestPatientProfile(101, wallet, "Asha P. Verma")
		refreshed.BloodGroup = "A+"
		require.NoError(t, s.UpsertPatientLedgerFields(ctx, refreshed))

		after, err := s.GetPatientProfile(ctx, 101)
		require.NoError(t, err)
		require.NotNil(t, after)
		assert.Equal(t, "Asha P. Verma", after.FullName)
		assert.Equal(t, "A+", after.BloodGroup)
		assert.Equal(t, phone, after.PhoneNumber)
		assert.Equal(t, allergies, after.Allergies)
	})

	t.Run("partial supplementary update leaves other fields unchanged", func(t *testing.T) {
		contact := "Ravi Verma"
		updated, err := s.UpdatePatientSupplementaryFields(ctx, 101, PatientSupplementaryUpdate{
			EmergencyContactName: &contact,
		})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, contact, updated.EmergencyContactName)
		assert.Equal(t, "+91-555-0101", updated.PhoneNumber)
	})

	t.Run("supplementary update for missing profile returns nil", func(t *testing.T) {
		phone := "+91-555-0999"
		updated, err := s.UpdatePatientSupplementaryFields(ctx, 999, PatientSupplementaryUpdate{PhoneNumber: &phone})
		require.NoError(t, err)
		assert.Nil(t, updated)
	})

	t.Run("get missing profile returns nil", func(t *testing.T) {
		profile, err := s.GetPatientProfile(ctx, 888)
		require.NoError(t, err)
		assert.Nil(t, profile)
	})
}

func testDoctorAndDiagnosticProfiles(t *testing.T, s Store) {
	ctx := context.Background()

	t.Run("doctor upsert updates ledger fields", func(t *testing.T) {
		require.NoError(t, s.UpsertDoctorLedgerFields(ctx, &schema.DoctorProfile{
			NumericID:      201,
			WalletAddress:  "0x0000000000000000000000000000000000000201",
			FullName:       "Dr. Meera Nair",
			Specialization: "cardiology",
			Hospital:       "City General",
		}))
		require.NoError(t, s.UpsertDoctorLedgerFields(ctx, &schema.DoctorProfile{
			NumericID:      201,
			WalletAddress:  "0x0000000000000000000000000000000000000201",
			FullName:       "Dr. Meera Nair",
			Specialization: "cardiology",
			Hospital:       "Riverside Heart Institute",
		}))

		profile, err := s.GetDoctorProfile(ctx, 201)
		require.NoError(t, err)
		require.NotNil(t, profile)
		assert.Equal(t, "Riverside Heart Institute", profile.Hospital)
	})

	t.Run("diagnostic upsert updates ledger fields", func(t *testing.T) {
		require.NoError(t, s.UpsertDiagnosticLedgerFields(ctx, &schema.DiagnosticProfile{
			NumericID:     301,
			WalletAddress: "0x0000000000000000000000000000000000000301",
			CenterName:    "Apex Diagnostics",
			Location:      "Pune",
		}))

		profile, err := s.GetDiagnosticProfile(ctx, 301)
		require.NoError(t, err)
		require.NotNil(t, profile)
		assert.Equal(t, "Apex Diagnostics", profile.CenterName)
	})
}

// =============================================================================
// Access Grants
// =============================================================================

func testAccessGrants(t *testing.T, s Store) {
	ctx := context.Background()

	doctor := "0x0000000000000000000000000000000000000d0c"
	patient := "0x0000000000000000000000000000000000000abc"

	t.Run("grant is idempotent while active", func(t *testing.T) {
		first, created, err := s.CreateAccessGrant(ctx, doctor, patient)
		require.NoError(t, err)
		require.NotNil(t, first)
		assert.True(t, created)
		assert.True(t, first.IsActive)
		assert.Nil(t, first.RevokedAt)

		second, created, err := s.CreateAccessGrant(ctx, doctor, patient)
		require.NoError(t, err)
		require.NotNil(t, second)
		assert.False(t, created)
		assert.Equal(t, first.ID, second.ID)
	})

	t.Run("revoke deactivates and re-grant appends a new row", func(t *testing.T) {
		revoked, err := s.RevokeAccessGrant(ctx, doctor, patient)
		require.NoError(t, err)
		require.NotNil(t, revoked)
		assert.False(t, revoked.IsActive)
		require.NotNil(t, revoked.RevokedAt)

		active, err := s.GetActiveAccessGrant(ctx, doctor, patient)
		require.NoError(t, err)
		assert.Nil(t, active)

		regrant, created, err := s.CreateAccessGrant(ctx, doctor, patient)
		require.NoError(t, err)
		assert.True(t, created)
		assert.NotEqual(t, revoked.ID, regrant.ID)

		history, err := s.ListGrantHistory(ctx, doctor, patient)
		require.NoError(t, err)
		assert.Len(t, history, 2)
	})

	t.Run("revoking without an active grant is a no-op", func(t *testing.T) {
		revoked, err := s.RevokeAccessGrant(ctx, doctor, "0x0000000000000000000000000000000000000fff")
		require.NoError(t, err)
		assert.Nil(t, revoked)
	})

	t.Run("grant lookups are case insensitive", func(t *testing.T) {
		active, err := s.GetActiveAccessGrant(ctx, "0x0000000000000000000000000000000000000D0C", "0x0000000000000000000000000000000000000ABC")
		require.NoError(t, err)
		require.NotNil(t, active)
	})
}

func testListPatientsForDoctor(t *testing.T, s Store) {
	ctx := context.Background()

	doctorWallet := "0x00000000000000000000000000000000000000dd"
	patientWallet1 := "0x00000000000000000000000000000000000000a1"
	patientWallet2 := "0x00000000000000000000000000000000000000a2"

	_, err := s.CreateUser(ctx, buildTestUser(domain.RoleDoctor, 5, doctorWallet))
	require.NoError(t, err)
	_, err = s.CreateUser(ctx, buildTestUser(domain.RolePatient, 1, patientWallet1))
	require.NoError(t, err)
	_, err = s.CreateUser(ctx, buildTestUser(domain.RolePatient, 2, patientWallet2))
	require.NoError(t, err)
	// Patient sharing the doctor's numeric identifier in its own namespace
	_, err = s.CreateUser(ctx, buildTestUser(domain.RolePatient, 5, "0x00000000000000000000000000000000000000a5"))
	require.NoError(t, err)

	require.NoError(t, s.UpsertPatientLedgerFields(ctx, buildTestPatientProfile(1, patientWallet1, "First Patient")))
	require.NoError(t, s.UpsertPatientLedgerFields(ctx, buildTestPatientProfile(2, patientWallet2, "Second Patient")))

	_, _, err = s.CreateAccessGrant(ctx, doctorWallet, patientWallet1)
	require.NoError(t, err)
	_, _, err = s.CreateAccessGrant(ctx, doctorWallet, patientWallet2)
	require.NoError(t, err)

	t.Run("lists only actively granted patients", func(t *testing.T) {
		summaries, err := s.ListPatientsForDoctor(ctx, doctorWallet, 5)
		require.NoError(t, err)
		require.Len(t, summaries, 2)

		names := []string{summaries[0].FullName, summaries[1].FullName}
		assert.Contains(t, names, "First Patient")
		assert.Contains(t, names, "Second Patient")
	})

	t.Run("revoked patient disappears from listing", func(t *testing.T) {
		_, err := s.RevokeAccessGrant(ctx, doctorWallet, patientWallet2)
		require.NoError(t, err)

		summaries, err := s.ListPatientsForDoctor(ctx, doctorWallet, 5)
		require.NoError(t, err)
		require.Len(t, summaries, 1)
		assert.Equal(t, "First Patient", summaries[0].FullName)
	})

	t.Run("wallet and numeric identifier must belong to the same doctor", func(t *testing.T) {
		summaries, err := s.ListPatientsForDoctor(ctx, "0x00000000000000000000000000000000000000a5", 5)
		require.NoError(t, err)
		assert.Empty(t, summaries)
	})

	t.Run("unknown doctor gets an empty list", func(t *testing.T) {
		summaries, err := s.ListPatientsForDoctor(ctx, doctorWallet, 99)
		require.NoError(t, err)
		assert.Empty(t, summaries)
	})
}

// =============================================================================
// Record Index
// =============================================================================

func testRecordIndex(t *testing.T, s Store) {
	ctx := context.Background()

	patientA := "0x00000000000000000000000000000000000000b1"
	patientB := "0x00000000000000000000000000000000000000b2"
	creator := "0x00000000000000000000000000000000000000c1"

	t.Run("insert is idempotent per record id", func(t *testing.T) {
		inserted, err := s.InsertRecordIndexEntry(ctx, buildTestRecordEntry(10, patientA, creator, "blood panel hemoglobin"))
		require.NoError(t, err)
		assert.True(t, inserted)

		again, err := s.InsertRecordIndexEntry(ctx, buildTestRecordEntry(10, patientA, creator, "blood panel hemoglobin"))
		require.NoError(t, err)
		assert.False(t, again)

		entry, err := s.GetRecordIndexEntry(ctx, 10)
		require.NoError(t, err)
		require.NotNil(t, entry)
		assert.Equal(t, "bafkrei10", entry.CID)
	})

	t.Run("search scopes to the given wallets", func(t *testing.T) {
		_, err := s.InsertRecordIndexEntry(ctx, buildTestRecordEntry(11, patientB, creator, "blood sugar fasting"))
		require.NoError(t, err)
		_, err = s.InsertRecordIndexEntry(ctx, buildTestRecordEntry(12, patientA, creator, "x-ray chest"))
		require.NoError(t, err)

		scoped, err := s.SearchRecords(ctx, "blood", []string{patientA}, 0)
		require.NoError(t, err)
		require.Len(t, scoped, 1)
		assert.Equal(t, uint64(10), scoped[0].RecordID)

		unscoped, err := s.SearchRecords(ctx, "blood", nil, 0)
		require.NoError(t, err)
		assert.Len(t, unscoped, 2)
	})

	t.Run("multi token query uses AND semantics", func(t *testing.T) {
		entries, err := s.SearchRecords(ctx, "blood fasting", nil, 0)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, uint64(11), entries[0].RecordID)

		none, err := s.SearchRecords(ctx, "blood chest", nil, 0)
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("empty scope list matches nothing", func(t *testing.T) {
		entries, err := s.SearchRecords(ctx, "blood", []string{}, 0)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("list by patient and creator", func(t *testing.T) {
		byPatient, err := s.ListRecordsByPatient(ctx, patientA, 0)
		require.NoError(t, err)
		assert.Len(t, byPatient, 2)

		byCreator, err := s.ListRecordsByCreator(ctx, creator, 0)
		require.NoError(t, err)
		assert.Len(t, byCreator, 3)
	})

	t.Run("missing record returns nil", func(t *testing.T) {
		entry, err := s.GetRecordIndexEntry(ctx, 404)
		require.NoError(t, err)
		assert.Nil(t, entry)
	})
}

// =============================================================================
// Access Logs
// =============================================================================

func testAccessLogs(t *testing.T, s Store) {
	ctx := context.Background()

	accessor := "0x00000000000000000000000000000000000000e1"

	t.Run("append assigns a sortable key", func(t *testing.T) {
		first := &schema.AccessLog{
			RecordID:       50,
			AccessorWallet: accessor,
			AccessorRole:   "doctor",
			Action:         "view",
			Origin:         "api",
		}
		require.NoError(t, s.AppendAccessLog(ctx, first))
		require.Len(t, first.ID, 26)

		second := &schema.AccessLog{
			RecordID:       50,
			AccessorWallet: accessor,
			AccessorRole:   "doctor",
			Action:         "view",
			Origin:         "api",
		}
		require.NoError(t, s.AppendAccessLog(ctx, second))
		assert.NotEqual(t, first.ID, second.ID)

		logs, err := s.ListAccessLogsByRecord(ctx, 50, 0)
		require.NoError(t, err)
		require.Len(t, logs, 2)
		// ULID keys sort newest first under id DESC
		assert.Equal(t, second.ID, logs[0].ID)
	})

	t.Run("logs are scoped per record", func(t *testing.T) {
		logs, err := s.ListAccessLogsByRecord(ctx, 51, 0)
		require.NoError(t, err)
		assert.Empty(t, logs)
	})
}

// =============================================================================
// Notifications
// =============================================================================

func testNotifications(t *testing.T, s Store) {
	ctx := context.Background()

	recipient := "0x00000000000000000000000000000000000000f1"

	t.Run("create and list", func(t *testing.T) {
		require.NoError(t, s.CreateNotification(ctx, &schema.Notification{
			RecipientWallet: recipient,
			Title:           "Access granted",
			Message:         "Dr. Nair can now view your records",
			Type:            "access_granted",
		}))
		recordID := uint64(12)
		require.NoError(t, s.CreateNotification(ctx, &schema.Notification{
			RecipientWallet: recipient,
			Title:           "New record",
			Message:         "A new record was added",
			Type:            "record_indexed",
			RelatedRecordID: &recordID,
		}))

		all, err := s.ListNotifications(ctx, recipient, false, 0)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("mark read and filter unread", func(t *testing.T) {
		all, err := s.ListNotifications(ctx, recipient, false, 0)
		require.NoError(t, err)
		require.Len(t, all, 2)

		marked, err := s.MarkNotificationRead(ctx, all[0].ID, recipient)
		require.NoError(t, err)
		require.NotNil(t, marked)
		assert.True(t, marked.IsRead)

		unread, err := s.ListNotifications(ctx, recipient, true, 0)
		require.NoError(t, err)
		require.Len(t, unread, 1)
		assert.Equal(t, all[1].ID, unread[0].ID)
	})

	t.Run("another wallet cannot mark the notification read", func(t *testing.T) {
		unread, err := s.ListNotifications(ctx, recipient, true, 0)
		require.NoError(t, err)
		require.Len(t, unread, 1)

		marked, err := s.MarkNotificationRead(ctx, unread[0].ID, "0x00000000000000000000000000000000000000f2")
		require.NoError(t, err)
		assert.Nil(t, marked)

		stillUnread, err := s.ListNotifications(ctx, recipient, true, 0)
		require.NoError(t, err)
		require.Len(t, stillUnread, 1)
		assert.Equal(t, unread[0].ID, stillUnread[0].ID)
	})

	t.Run("marking a missing notification returns nil", func(t *testing.T) {
		marked, err := s.MarkNotificationRead(ctx, 99999, recipient)
		require.NoError(t, err)
		assert.Nil(t, marked)
	})
}

// RunStoreTests runs all store tests against the given implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"Users", testUsers},
		{"PatientProfiles", testPatientProfiles},
		{"DoctorAndDiagnosticProfiles", testDoctorAndDiagnosticProfiles},
		{"AccessGrants", testAccessGrants},
		{"ListPatientsForDoctor", testListPatientsForDoctor},
		{"RecordIndex", testRecordIndex},
		{"AccessLogs", testAccessLogs},
		{"Notifications", testNotifications},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, s)
		})
	}
}
