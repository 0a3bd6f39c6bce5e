package records_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kaysanshaikh/HealthLedger/internal/contentstore"
	"github.com/Kaysanshaikh/HealthLedger/internal/domain"
	"github.com/Kaysanshaikh/HealthLedger/internal/mocks"
	"github.com/Kaysanshaikh/HealthLedger/internal/records"
	"github.com/Kaysanshaikh/HealthLedger/internal/store/schema"
)

const (
	patientWallet = "0x1111111111111111111111111111111111111111"
	doctorWallet  = "0x2222222222222222222222222222222222222222"
	labWallet     = "0x3333333333333333333333333333333333333333"
)

type testDeps struct {
	store      *mocks.MockStore
	reconciler *mocks.MockReconciler
	content    *mocks.MockContentStoreClient
	access     *mocks.MockAccessEngine
}

func newTestService(ctrl *gomock.Controller) (records.Service, testDeps) {
	deps := testDeps{
		store:      mocks.NewMockStore(ctrl),
		reconciler: mocks.NewMockReconciler(ctrl),
		content:    mocks.NewMockContentStoreClient(ctrl),
		access:     mocks.NewMockAccessEngine(ctrl),
	}
	return records.NewService(deps.store, deps.reconciler, deps.content, deps.access), deps
}

func patientRequester() records.Requester {
	return records.Requester{Wallet: patientWallet, Role: domain.RolePatient, NumericID: 100001}
}

func doctorRequester() records.Requester {
	return records.Requester{Wallet: doctorWallet, Role: domain.RoleDoctor, NumericID: 200001}
}

func labRequester() records.Requester {
	return records.Requester{Wallet: labWallet, Role: domain.RoleDiagnostic, NumericID: 300001}
}

func indexedRecord() *schema.RecordIndexEntry {
	return &schema.RecordIndexEntry{
		RecordID:      42,
		PatientWallet: patientWallet,
		CreatorWallet: labWallet,
		CID:           "bafkreicid",
	}
}

func TestSearch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("patient scope is their own wallet", func(t *testing.T) {
		svc, deps := newTestService(ctrl)

		deps.store.EXPECT().
			SearchRecords(gomock.Any(), "blood", []string{patientWallet}, 20).
			Return([]schema.RecordIndexEntry{*indexedRecord()}, nil)
		deps.store.EXPECT().
			AppendAccessLog(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entry *schema.AccessLog) error {
				assert.Equal(t, "search", entry.Action)
				assert.Equal(t, patientWallet, entry.AccessorWallet)
				assert.Zero(t, entry.RecordID)
				return nil
			})

		entries, err := svc.Search(context.Background(), patientRequester(), "blood", 20)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("doctor scope covers their granted patients", func(t *testing.T) {
		svc, deps := newTestService(ctrl)

		deps.access.EXPECT().
			ListPatientsFor(gomock.Any(), doctorWallet, uint64(200001)).
			Return([]domain.PatientSummary{{WalletAddress: patientWallet}}, nil)
		deps.store.EXPECT().
			SearchRecords(gomock.Any(), "blood", []string{doctorWallet, patientWallet}, 0).
			Return(nil, nil)
		deps.store.EXPECT().
			AppendAccessLog(gomock.Any(), gomock.Any()).
			Return(nil)

		_, err := svc.Search(context.Background(), doctorRequester(), "blood", 0)
		require.NoError(t, err)
	})

	t.Run("failed audit write fails the search", func(t *testing.T) {
		svc, deps := newTestService(ctrl)

		deps.store.EXPECT().
			SearchRecords(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil)
		deps.store.EXPECT().
			AppendAccessLog(gomock.Any(), gomock.Any()).
			Return(assert.AnError)

		_, err := svc.Search(context.Background(), patientRequester(), "blood", 0)
		assert.Error(t, err)
	})
}

func TestListByPatient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("authorized requester lists records", func(t *testing.T) {
		svc, deps := newTestService(ctrl)

		deps.access.EXPECT().
			IsAuthorized(gomock.Any(), doctorWallet, domain.RoleDoctor, patientWallet).
			Return(true, nil)
		deps.store.EXPECT().
			ListRecordsByPatient(gomock.Any(), patientWallet, 10).
			Return([]schema.RecordIndexEntry{*indexedRecord()}, nil)

		entries, err := svc.ListByPatient(context.Background(), doctorRequester(), patientWallet, 10)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("unauthorized requester is refused", func(t *testing.T) {
		svc, deps := newTestService(ctrl)

		deps.access.EXPECT().
			IsAuthorized(gomock.Any(), doctorWallet, domain.RoleDoctor, patientWallet).
			Return(false, nil)

		_, err := svc.ListByPatient(context.Background(), doctorRequester(), patientWallet, 10)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}

func TestFetchContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("patient fetches own record and leaves a view trail", func(t *testing.T) {
		svc, deps := newTestService(ctrl)

		deps.reconciler.EXPECT().
			ReconcileRecord(gomock.Any(), uint64(42)).
			Return(indexedRecord(), nil)
		deps.access.EXPECT().
			IsAuthorized(gomock.Any(), patientWallet, domain.RolePatient, patientWallet).
			Return(true, nil)
		deps.content.EXPECT().
			Get(gomock.Any(), "bafkreicid").
			Return([]byte("payload"), nil)
		deps.store.EXPECT().
			AppendAccessLog(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entry *schema.AccessLog) error {
				assert.Equal(t, "view", entry.Action)
				assert.Equal(t, uint64(42), entry.RecordID)
				return nil
			})

		payload, entry, err := svc.FetchContent(context.Background(), patientRequester(), 42)
		require.NoError(t, err)
		assert.Equal(t, []byte("payload"), payload)
		assert.Equal(t, uint64(42), entry.RecordID)
	})

	t.Run("diagnostic fetches only records it created", func(t *testing.T) {
		svc, deps := newTestService(ctrl)

		deps.reconciler.EXPECT().
			ReconcileRecord(gomock.Any(), uint64(42)).
			Return(indexedRecord(), nil)
		deps.content.EXPECT().
			Get(gomock.Any(), "bafkreicid").
			Return([]byte("payload"), nil)
		deps.store.EXPECT().
			AppendAccessLog(gomock.Any(), gomock.Any()).
			Return(nil)

		_, _, err := svc.FetchContent(context.Background(), labRequester(), 42)
		require.NoError(t, err)
	})

	t.Run("diagnostic is refused for foreign records", func(t *testing.T) {
		svc, deps := newTestService(ctrl)

		foreign := indexedRecord()
		foreign.CreatorWallet = doctorWallet
		deps.reconciler.EXPECT().
			ReconcileRecord(gomock.Any(), uint64(42)).
			Return(foreign, nil)

		_, _, err := svc.FetchContent(context.Background(), labRequester(), 42)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("doctor without a grant is refused", func(t *testing.T) {
		svc, deps := newTestService(ctrl)

		deps.reconciler.EXPECT().
			ReconcileRecord(gomock.Any(), uint64(42)).
			Return(indexedRecord(), nil)
		deps.access.EXPECT().
			IsAuthorized(gomock.Any(), doctorWallet, domain.RoleDoctor, patientWallet).
			Return(false, nil)

		_, _, err := svc.FetchContent(context.Background(), doctorRequester(), 42)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("content store failure propagates without an audit row", func(t *testing.T) {
		svc, deps := newTestService(ctrl)

		deps.reconciler.EXPECT().
			ReconcileRecord(gomock.Any(), uint64(42)).
			Return(indexedRecord(), nil)
		deps.access.EXPECT().
			IsAuthorized(gomock.Any(), patientWallet, domain.RolePatient, patientWallet).
			Return(true, nil)
		deps.content.EXPECT().
			Get(gomock.Any(), "bafkreicid").
			Return(nil, domain.ErrUnavailable)

		_, _, err := svc.FetchContent(context.Background(), patientRequester(), 42)
		assert.ErrorIs(t, err, domain.ErrUnavailable)
	})
}

func TestUpload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("pins and leaves an upload trail", func(t *testing.T) {
		svc, deps := newTestService(ctrl)

		deps.content.EXPECT().
			Put(gomock.Any(), "report.pdf", []byte("%PDF-")).
			Return(&contentstore.PutResult{CID: "bafkreinew"}, nil)
		deps.store.EXPECT().
			AppendAccessLog(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entry *schema.AccessLog) error {
				assert.Equal(t, "upload", entry.Action)
				assert.Equal(t, labWallet, entry.AccessorWallet)
				return nil
			})

		result, err := svc.Upload(context.Background(), labRequester(), "report.pdf", []byte("%PDF-"))
		require.NoError(t, err)
		assert.Equal(t, "bafkreinew", result.CID)
	})

	t.Run("rejected payload skips the audit trail", func(t *testing.T) {
		svc, deps := newTestService(ctrl)

		deps.content.EXPECT().
			Put(gomock.Any(), "script.exe", gomock.Any()).
			Return(nil, domain.ErrPayloadRejected)

		_, err := svc.Upload(context.Background(), labRequester(), "script.exe", []byte("MZ"))
		assert.ErrorIs(t, err, domain.ErrPayloadRejected)
	})
}
