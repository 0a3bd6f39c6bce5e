package access_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kaysanshaikh/HealthLedger/internal/access"
	"github.com/Kaysanshaikh/HealthLedger/internal/domain"
	"github.com/Kaysanshaikh/HealthLedger/internal/logger"
	"github.com/Kaysanshaikh/HealthLedger/internal/mocks"
	"github.com/Kaysanshaikh/HealthLedger/internal/store/schema"
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
	otherWallet   = "0x3333333333333333333333333333333333333333"
)

func newTestEngine(ctrl *gomock.Controller) (access.Engine, *mocks.MockStore, *mocks.MockPublisher) {
	cacheStore := mocks.NewMockStore(ctrl)
	publisher := mocks.NewMockPublisher(ctrl)
	return access.NewEngine(cacheStore, publisher), cacheStore, publisher
}

func TestGrant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("new grant notifies the doctor and publishes an event", func(t *testing.T) {
		engine, cacheStore, publisher := newTestEngine(ctrl)

		grant := &schema.AccessGrant{
			ID:            1,
			DoctorWallet:  doctorWallet,
			PatientWallet: patientWallet,
			IsActive:      true,
			GrantedAt:     time.Now(),
		}
		cacheStore.EXPECT().
			CreateAccessGrant(gomock.Any(), doctorWallet, patientWallet).
			Return(grant, true, nil)
		publisher.EXPECT().
			PublishEvent(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, event *domain.Event) error {
				assert.Equal(t, domain.EventAccessGranted, event.Type)
				assert.Equal(t, patientWallet, event.WalletAddress)
				return nil
			})
		cacheStore.EXPECT().
			CreateNotification(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, n *schema.Notification) error {
				assert.Equal(t, doctorWallet, n.RecipientWallet)
				assert.Equal(t, "access_granted", n.Type)
				return nil
			})

		got, err := engine.Grant(context.Background(), patientWallet, doctorWallet)
		require.NoError(t, err)
		assert.Equal(t, grant, got)
	})

	t.Run("re-grant while active stays silent", func(t *testing.T) {
		engine, cacheStore, _ := newTestEngine(ctrl)

		grant := &schema.AccessGrant{ID: 1, DoctorWallet: doctorWallet, PatientWallet: patientWallet, IsActive: true}
		cacheStore.EXPECT().
			CreateAccessGrant(gomock.Any(), doctorWallet, patientWallet).
			Return(grant, false, nil)

		got, err := engine.Grant(context.Background(), patientWallet, doctorWallet)
		require.NoError(t, err)
		assert.Equal(t, grant, got)
	})

	t.Run("self grant is rejected", func(t *testing.T) {
		engine, _, _ := newTestEngine(ctrl)

		_, err := engine.Grant(context.Background(), patientWallet, patientWallet)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})
}

func TestRevoke(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("revoke notifies the doctor and publishes an event", func(t *testing.T) {
		engine, cacheStore, publisher := newTestEngine(ctrl)

		now := time.Now()
		revoked := &schema.AccessGrant{
			ID:            1,
			DoctorWallet:  doctorWallet,
			PatientWallet: patientWallet,
			IsActive:      false,
			RevokedAt:     &now,
		}
		cacheStore.EXPECT().
			RevokeAccessGrant(gomock.Any(), doctorWallet, patientWallet).
			Return(revoked, nil)
		publisher.EXPECT().
			PublishEvent(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, event *domain.Event) error {
				assert.Equal(t, domain.EventAccessRevoked, event.Type)
				return nil
			})
		cacheStore.EXPECT().
			CreateNotification(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, n *schema.Notification) error {
				assert.Equal(t, "access_revoked", n.Type)
				return nil
			})

		got, err := engine.Revoke(context.Background(), patientWallet, doctorWallet)
		require.NoError(t, err)
		assert.Equal(t, revoked, got)
	})

	t.Run("revoking without an active grant is a silent no-op", func(t *testing.T) {
		engine, cacheStore, _ := newTestEngine(ctrl)

		cacheStore.EXPECT().
			RevokeAccessGrant(gomock.Any(), doctorWallet, patientWallet).
			Return(nil, nil)

		got, err := engine.Revoke(context.Background(), patientWallet, doctorWallet)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestIsAuthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("patient reads self regardless of case", func(t *testing.T) {
		engine, _, _ := newTestEngine(ctrl)

		ok, err := engine.IsAuthorized(context.Background(), "0x1111111111111111111111111111111111111111", domain.RolePatient, "0x1111111111111111111111111111111111111111")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = engine.IsAuthorized(context.Background(), "0X1111111111111111111111111111111111111111", domain.RolePatient, patientWallet)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("patient cannot read another patient", func(t *testing.T) {
		engine, _, _ := newTestEngine(ctrl)

		ok, err := engine.IsAuthorized(context.Background(), otherWallet, domain.RolePatient, patientWallet)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("doctor with an active grant is authorized", func(t *testing.T) {
		engine, cacheStore, _ := newTestEngine(ctrl)

		cacheStore.EXPECT().
			GetActiveAccessGrant(gomock.Any(), doctorWallet, patientWallet).
			Return(&schema.AccessGrant{ID: 1, IsActive: true}, nil)

		ok, err := engine.IsAuthorized(context.Background(), doctorWallet, domain.RoleDoctor, patientWallet)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("doctor without a grant is refused", func(t *testing.T) {
		engine, cacheStore, _ := newTestEngine(ctrl)

		cacheStore.EXPECT().
			GetActiveAccessGrant(gomock.Any(), doctorWallet, patientWallet).
			Return(nil, nil)

		ok, err := engine.IsAuthorized(context.Background(), doctorWallet, domain.RoleDoctor, patientWallet)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("diagnostic is refused at the patient scope", func(t *testing.T) {
		engine, _, _ := newTestEngine(ctrl)

		ok, err := engine.IsAuthorized(context.Background(), otherWallet, domain.RoleDiagnostic, patientWallet)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
