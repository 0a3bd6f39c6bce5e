package jetstream

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	natsjs "github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kaysanshaikh/HealthLedger/internal/adapter"
	"github.com/Kaysanshaikh/HealthLedger/internal/domain"
	"github.com/Kaysanshaikh/HealthLedger/internal/logger"
	"github.com/Kaysanshaikh/HealthLedger/internal/mocks"
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

func newConnectedPublisher(t *testing.T, ctrl *gomock.Controller, js adapter.JetStream) (*mocks.MockNatsConn, *publisher) {
	natsJS := mocks.NewMockNatsJetStream(ctrl)
	nc := mocks.NewMockNatsConn(ctrl)
	natsJS.EXPECT().
		Connect("nats://localhost:4222", gomock.Any()).
		Return(nc, js, nil)

	p, err := NewPublisher(Config{
		URL:        "nats://localhost:4222",
		StreamName: "HEALTHLEDGER_EVENTS",
	}, natsJS, adapter.NewJSON())
	require.NoError(t, err)

	return nc, p.(*publisher)
}

func TestPublishEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("publishes to a typed subject", func(t *testing.T) {
		js := mocks.NewMockJetStream(ctrl)
		js.EXPECT().
			Publish(gomock.Any(), "events.healthledger.access_granted", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, data []byte, _ ...natsjs.PublishOpt) (*natsjs.PubAck, error) {
				var event domain.Event
				require.NoError(t, json.Unmarshal(data, &event))
				assert.Equal(t, domain.EventAccessGranted, event.Type)
				assert.NotEmpty(t, event.ID)
				return &natsjs.PubAck{}, nil
			})

		_, p := newConnectedPublisher(t, ctrl, js)

		event := domain.NewEvent(domain.EventAccessGranted)
		event.WalletAddress = "0x0000000000000000000000000000000000000abc"
		assert.NoError(t, p.PublishEvent(context.Background(), event))
	})

	t.Run("propagates publish failures", func(t *testing.T) {
		js := mocks.NewMockJetStream(ctrl)
		js.EXPECT().
			Publish(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("stream not found"))

		_, p := newConnectedPublisher(t, ctrl, js)
		assert.Error(t, p.PublishEvent(context.Background(), domain.NewEvent(domain.EventProfileSynced)))
	})
}

func TestClose(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	nc, p := newConnectedPublisher(t, ctrl, mocks.NewMockJetStream(ctrl))
	nc.EXPECT().Close()

	select {
	case <-p.CloseChan():
		t.Fatal("close channel closed before Close")
	default:
	}

	p.Close()
	p.Close() // idempotent

	select {
	case <-p.CloseChan():
	default:
		t.Fatal("close channel not closed after Close")
	}
}
