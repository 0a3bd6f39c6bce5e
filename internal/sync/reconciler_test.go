package sync_test

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kaysanshaikh/HealthLedger/internal/domain"
	"github.com/Kaysanshaikh/HealthLedger/internal/logger"
	"github.com/Kaysanshaikh/HealthLedger/internal/mocks"
	"github.com/Kaysanshaikh/HealthLedger/internal/store/schema"
	syncengine "github.com/Kaysanshaikh/HealthLedger/internal/sync"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

const (
	patientWallet = "0x1111111111111111111111111111111111111111"
	doctorWallet  = "0x2222222222222222222222222222222222222222"
)

type testDeps struct {
	ledger    *mocks.MockLedgerClient
	store     *mocks.MockStore
	publisher *mocks.MockPublisher
}

func newTestReconciler(ctrl *gomock.Controller) (syncengine.Reconciler, testDeps) {
	deps := testDeps{
		ledger:    mocks.NewMockLedgerClient(ctrl),
		store:     mocks.NewMockStore(ctrl),
		publisher: mocks.NewMockPublisher(ctrl),
	}
	return syncengine.NewReconciler(deps.ledger, deps.store, deps.publisher), deps
}

func ledgerPatient() *domain.LedgerPatient {
	return &domain.LedgerPatient{
		WalletAddress: patientWallet,
		Name:          "Asha Verma",
		Email:         "asha@example.com",
		DOB:           642556800, // 1990-05-13 UTC
		Gender:        "female",
		BloodGroup:    "O+",
		HomeAddress:   "12 Harbor Lane",
	}
}

func TestReconcilePatientProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("fresh ledger read upserts identity and ledger fields", func(t *testing.T) {
		r, deps := newTestReconciler(ctrl)

		deps.ledger.EXPECT().
			GetPatient(gomock.Any(), uint64(100001)).
			Return(ledgerPatient(), nil)

		deps.store.EXPECT().
			CreateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user *schema.User) (*schema.User, error) {
				assert.Equal(t, patientWallet, user.WalletAddress)
				assert.Equal(t, "patient", user.Role)
				assert.Equal(t, uint64(100001), user.NumericID)
				user.ID = 1
				return user, nil
			})

		deps.store.EXPECT().
			UpsertPatientLedgerFields(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *schema.PatientProfile) error {
				// The unix-seconds DOB must land as a normalized calendar date
				assert.Equal(t, domain.FormatDOB(642556800), p.DateOfBirth)
				assert.Equal(t, "Asha Verma", p.FullName)
				return nil
			})

		deps.store.EXPECT().
			GetPatientProfile(gomock.Any(), uint64(100001)).
			Return(&schema.PatientProfile{
				NumericID:     100001,
				WalletAddress: patientWallet,
				FullName:      "Asha Verma",
				DateOfBirth:   domain.FormatDOB(642556800),
				PhoneNumber:   "+91-555-0101", // supplementary field survives sync
			}, nil)

		deps.publisher.EXPECT().
			PublishEvent(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, event *domain.Event) error {
				assert.Equal(t, domain.EventProfileSynced, event.Type)
				assert.Equal(t, patientWallet, event.WalletAddress)
				return nil
			})

		result, err := r.ReconcileProfile(context.Background(), domain.RolePatient, 100001)
		require.NoError(t, err)
		assert.False(t, result.Stale)
		require.NotNil(t, result.Profile.Patient)
		assert.Equal(t, "Asha Verma", result.Profile.Patient.FullName)
		assert.Equal(t, "+91-555-0101", result.Profile.Patient.PhoneNumber)
		assert.Equal(t, domain.RolePatient, result.Profile.Kind)
	})

	t.Run("ledger unavailable falls back to cache as stale", func(t *testing.T) {
		r, deps := newTestReconciler(ctrl)

		deps.ledger.EXPECT().
			GetPatient(gomock.Any(), uint64(100001)).
			Return(nil, domain.ErrUnavailable)

		deps.store.EXPECT().
			GetUserByRoleNumericID(gomock.Any(), domain.RolePatient, uint64(100001)).
			Return(&schema.User{ID: 1, WalletAddress: patientWallet, Role: "patient", NumericID: 100001}, nil)

		deps.store.EXPECT().
			GetPatientProfile(gomock.Any(), uint64(100001)).
			Return(&schema.PatientProfile{NumericID: 100001, FullName: "Asha Verma"}, nil)

		result, err := r.ReconcileProfile(context.Background(), domain.RolePatient, 100001)
		require.NoError(t, err)
		assert.True(t, result.Stale)
		assert.Equal(t, "Asha Verma", result.Profile.Patient.FullName)
	})

	t.Run("ledger unavailable without cache surfaces unavailable", func(t *testing.T) {
		r, deps := newTestReconciler(ctrl)

		deps.ledger.EXPECT().
			GetPatient(gomock.Any(), uint64(999999)).
			Return(nil, domain.ErrUnavailable)

		deps.store.EXPECT().
			GetUserByRoleNumericID(gomock.Any(), domain.RolePatient, uint64(999999)).
			Return(nil, nil)

		_, err := r.ReconcileProfile(context.Background(), domain.RolePatient, 999999)
		assert.ErrorIs(t, err, domain.ErrUnavailable)
	})

	t.Run("not registered propagates not found", func(t *testing.T) {
		r, deps := newTestReconciler(ctrl)

		deps.ledger.EXPECT().
			GetPatient(gomock.Any(), uint64(999999)).
			Return(nil, domain.ErrNotFound)

		_, err := r.ReconcileProfile(context.Background(), domain.RolePatient, 999999)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("failed cache upsert is surfaced", func(t *testing.T) {
		r, deps := newTestReconciler(ctrl)

		deps.ledger.EXPECT().
			GetPatient(gomock.Any(), uint64(100001)).
			Return(ledgerPatient(), nil)
		deps.store.EXPECT().
			CreateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user *schema.User) (*schema.User, error) {
				user.ID = 1
				return user, nil
			})
		deps.store.EXPECT().
			UpsertPatientLedgerFields(gomock.Any(), gomock.Any()).
			Return(errors.New("connection reset"))

		_, err := r.ReconcileProfile(context.Background(), domain.RolePatient, 100001)
		assert.Error(t, err)
	})

	t.Run("invalid role is rejected", func(t *testing.T) {
		r, _ := newTestReconciler(ctrl)

		_, err := r.ReconcileProfile(context.Background(), domain.Role("admin"), 1)
		assert.Error(t, err)
	})
}

func TestReconcileDoctorProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r, deps := newTestReconciler(ctrl)

	deps.ledger.EXPECT().
		GetDoctor(gomock.Any(), uint64(200001)).
		Return(&domain.LedgerDoctor{
			WalletAddress:  doctorWallet,
			Name:           "Dr. Meera Nair",
			Email:          "meera@example.com",
			Specialization: "cardiology",
			Hospital:       "City General",
		}, nil)
	deps.store.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *schema.User) (*schema.User, error) {
			assert.Equal(t, "doctor", user.Role)
			user.ID = 2
			return user, nil
		})
	deps.store.EXPECT().
		UpsertDoctorLedgerFields(gomock.Any(), gomock.Any()).
		Return(nil)
	deps.store.EXPECT().
		GetDoctorProfile(gomock.Any(), uint64(200001)).
		Return(&schema.DoctorProfile{
			NumericID:      200001,
			FullName:       "Dr. Meera Nair",
			Specialization: "cardiology",
			LicenseNumber:  "MH-2041", // cache-authoritative
		}, nil)
	deps.publisher.EXPECT().
		PublishEvent(gomock.Any(), gomock.Any()).
		Return(nil)

	result, err := r.ReconcileProfile(context.Background(), domain.RoleDoctor, 200001)
	require.NoError(t, err)
	require.NotNil(t, result.Profile.Doctor)
	assert.Equal(t, "cardiology", result.Profile.Doctor.Specialization)
	assert.Equal(t, "MH-2041", result.Profile.Doctor.LicenseNumber)
}

func TestReconcileProfileCoalescing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r, deps := newTestReconciler(ctrl)

	// A single slow ledger read must serve every concurrent caller
	deps.ledger.EXPECT().
		GetPatient(gomock.Any(), uint64(100001)).
		DoAndReturn(func(ctx context.Context, numericID uint64) (*domain.LedgerPatient, error) {
			time.Sleep(100 * time.Millisecond)
			return ledgerPatient(), nil
		}).
		Times(1)
	deps.store.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *schema.User) (*schema.User, error) {
			user.ID = 1
			return user, nil
		}).
		Times(1)
	deps.store.EXPECT().
		UpsertPatientLedgerFields(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)
	deps.store.EXPECT().
		GetPatientProfile(gomock.Any(), uint64(100001)).
		Return(&schema.PatientProfile{NumericID: 100001, FullName: "Asha Verma"}, nil).
		Times(1)
	deps.publisher.EXPECT().
		PublishEvent(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := r.ReconcileProfile(context.Background(), domain.RolePatient, 100001)
			assert.NoError(t, err)
			assert.Equal(t, "Asha Verma", result.Profile.Patient.FullName)
		}()
	}
	wg.Wait()
}

func TestReconcileRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("already indexed record is returned without a ledger read", func(t *testing.T) {
		r, deps := newTestReconciler(ctrl)

		deps.store.EXPECT().
			GetRecordIndexEntry(gomock.Any(), uint64(42)).
			Return(&schema.RecordIndexEntry{RecordID: 42, CID: "bafkreicid"}, nil)

		entry, err := r.ReconcileRecord(context.Background(), 42)
		require.NoError(t, err)
		assert.Equal(t, "bafkreicid", entry.CID)
	})

	t.Run("new record is indexed, announced, and owner notified", func(t *testing.T) {
		r, deps := newTestReconciler(ctrl)

		deps.store.EXPECT().
			GetRecordIndexEntry(gomock.Any(), uint64(42)).
			Return(nil, nil)
		deps.ledger.EXPECT().
			GetRecord(gomock.Any(), uint64(42)).
			Return(&domain.LedgerRecord{
				RecordID:      42,
				PatientWallet: patientWallet,
				CreatorWallet: doctorWallet,
				CID:           "bafkreicid",
				Meta:          `{"title":"Blood Panel","type":"lab_report"}`,
				CreatedAt:     1700000000,
			}, nil)
		deps.store.EXPECT().
			GetUserByWallet(gomock.Any(), patientWallet).
			Return(&schema.User{ID: 1, NumericID: 100001, Role: "patient"}, nil)
		deps.store.EXPECT().
			InsertRecordIndexEntry(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entry *schema.RecordIndexEntry) (bool, error) {
				assert.Equal(t, "lab_report", entry.RecordType)
				assert.Contains(t, entry.SearchableText, "blood panel")
				assert.Equal(t, time.Unix(1700000000, 0).UTC(), entry.CreatedAt)
				require.NotNil(t, entry.PatientNumericID)
				assert.Equal(t, uint64(100001), *entry.PatientNumericID)
				return true, nil
			})
		deps.publisher.EXPECT().
			PublishEvent(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, event *domain.Event) error {
				assert.Equal(t, domain.EventRecordIndexed, event.Type)
				assert.Equal(t, uint64(42), event.RecordID)
				return nil
			})
		deps.store.EXPECT().
			CreateNotification(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, n *schema.Notification) error {
				assert.Equal(t, patientWallet, n.RecipientWallet)
				assert.Equal(t, "record_indexed", n.Type)
				return nil
			})

		entry, err := r.ReconcileRecord(context.Background(), 42)
		require.NoError(t, err)
		assert.Equal(t, uint64(42), entry.RecordID)
	})

	t.Run("ledger failure surfaces without touching the index", func(t *testing.T) {
		r, deps := newTestReconciler(ctrl)

		deps.store.EXPECT().
			GetRecordIndexEntry(gomock.Any(), uint64(42)).
			Return(nil, nil)
		deps.ledger.EXPECT().
			GetRecord(gomock.Any(), uint64(42)).
			Return(nil, domain.ErrUnavailable)

		_, err := r.ReconcileRecord(context.Background(), 42)
		assert.ErrorIs(t, err, domain.ErrUnavailable)
	})
}

func TestSearchableText(t *testing.T) {
	tests := []struct {
		name     string
		meta     string
		expected string
	}{
		{
			name:     "key order does not matter",
			meta:     `{"title":"Blood Panel","type":"lab_report"}`,
			expected: `{"title":"blood panel","type":"lab_report"}`,
		},
		{
			name:     "reordered keys canonicalize identically",
			meta:     `{"type":"lab_report","title":"Blood Panel"}`,
			expected: `{"title":"blood panel","type":"lab_report"}`,
		},
		{
			name:     "non JSON metadata indexes raw",
			meta:     "Free Text Note",
			expected: "free text note",
		},
		{
			name:     "empty metadata",
			meta:     "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, syncengine.SearchableText(tt.meta))
		})
	}
}
