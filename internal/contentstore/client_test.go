package contentstore_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kaysanshaikh/HealthLedger/internal/contentstore"
	"github.com/Kaysanshaikh/HealthLedger/internal/domain"
	"github.com/Kaysanshaikh/HealthLedger/internal/mocks"
)

var (
	pdfPayload = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n<< >>\n%%EOF")
	pngPayload = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D, 0x49, 0x48, 0x44, 0x52}
)

func newTestClient(httpClient *mocks.MockHTTPClient) contentstore.Client {
	return contentstore.NewClient(httpClient, contentstore.Config{
		APIKey:    "key",
		APISecret: "secret",
		Gateways:  []string{"https://gw1.example.com/ipfs/", "https://gw2.example.com/ipfs/"},
	})
}

func TestPut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("pins a valid pdf", func(t *testing.T) {
		httpClient := mocks.NewMockHTTPClient(ctrl)
		httpClient.EXPECT().
			PostMultipart(gomock.Any(), "https://api.pinata.cloud/pinning/pinFileToIPFS",
				gomock.Any(), "file", "report.pdf", pdfPayload, gomock.Any()).
			Return([]byte(`{"IpfsHash":"bafkreigh2akiscaildc","PinSize":58,"Timestamp":"2024-01-01T00:00:00Z"}`), nil)

		result, err := newTestClient(httpClient).Put(context.Background(), "report.pdf", pdfPayload)
		require.NoError(t, err)
		assert.Equal(t, "bafkreigh2akiscaildc", result.CID)
		assert.Equal(t, int64(58), result.Size)
		assert.Equal(t, "https://gw1.example.com/ipfs/bafkreigh2akiscaildc", result.URL)
	})

	t.Run("rejects oversized payload before any network call", func(t *testing.T) {
		httpClient := mocks.NewMockHTTPClient(ctrl)

		big := make([]byte, contentstore.DefaultMaxUploadSize+1)
		copy(big, pdfPayload)
		_, err := newTestClient(httpClient).Put(context.Background(), "report.pdf", big)
		assert.ErrorIs(t, err, domain.ErrPayloadRejected)
	})

	t.Run("rejects disallowed extension", func(t *testing.T) {
		httpClient := mocks.NewMockHTTPClient(ctrl)

		_, err := newTestClient(httpClient).Put(context.Background(), "script.exe", pdfPayload)
		assert.ErrorIs(t, err, domain.ErrPayloadRejected)
	})

	t.Run("rejects content that does not match its extension", func(t *testing.T) {
		httpClient := mocks.NewMockHTTPClient(ctrl)

		_, err := newTestClient(httpClient).Put(context.Background(), "photo.png", pdfPayload)
		assert.ErrorIs(t, err, domain.ErrPayloadRejected)
	})

	t.Run("rejects empty payload", func(t *testing.T) {
		httpClient := mocks.NewMockHTTPClient(ctrl)

		_, err := newTestClient(httpClient).Put(context.Background(), "report.pdf", nil)
		assert.ErrorIs(t, err, domain.ErrPayloadRejected)
	})

	t.Run("accepts png content", func(t *testing.T) {
		httpClient := mocks.NewMockHTTPClient(ctrl)
		httpClient.EXPECT().
			PostMultipart(gomock.Any(), gomock.Any(), gomock.Any(), "file", "scan.png", pngPayload, gomock.Any()).
			Return([]byte(`{"IpfsHash":"bafkreipngpngpng","PinSize":16}`), nil)

		result, err := newTestClient(httpClient).Put(context.Background(), "scan.png", pngPayload)
		require.NoError(t, err)
		assert.Equal(t, "bafkreipngpngpng", result.CID)
	})

	t.Run("upstream failure maps to unavailable", func(t *testing.T) {
		httpClient := mocks.NewMockHTTPClient(ctrl)
		httpClient.EXPECT().
			PostMultipart(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("503 service unavailable"))

		_, err := newTestClient(httpClient).Put(context.Background(), "report.pdf", pdfPayload)
		assert.ErrorIs(t, err, domain.ErrUnavailable)
	})
}

func TestPutJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	httpClient.EXPECT().
		Post(gomock.Any(), "https://api.pinata.cloud/pinning/pinJSONToIPFS", "application/json", gomock.Any(), gomock.Any()).
		Return([]byte(`{"IpfsHash":"bafkreijsonjson"}`), nil)

	result, err := newTestClient(httpClient).PutJSON(context.Background(), "record-meta.json", map[string]string{"title": "blood panel"})
	require.NoError(t, err)
	assert.Equal(t, "bafkreijsonjson", result.CID)
}

func TestGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("returns content from first healthy gateway", func(t *testing.T) {
		httpClient := mocks.NewMockHTTPClient(ctrl)
		httpClient.EXPECT().
			GetBytes(gomock.Any(), "https://gw1.example.com/ipfs/bafkreicid", nil).
			Return(pdfPayload, nil)

		data, err := newTestClient(httpClient).Get(context.Background(), "bafkreicid")
		require.NoError(t, err)
		assert.Equal(t, pdfPayload, data)
	})

	t.Run("falls back to the next gateway in order", func(t *testing.T) {
		httpClient := mocks.NewMockHTTPClient(ctrl)
		gomock.InOrder(
			httpClient.EXPECT().
				GetBytes(gomock.Any(), "https://gw1.example.com/ipfs/bafkreicid", nil).
				Return(nil, errors.New("504 gateway timeout")),
			httpClient.EXPECT().
				GetBytes(gomock.Any(), "https://gw2.example.com/ipfs/bafkreicid", nil).
				Return(pdfPayload, nil),
		)

		data, err := newTestClient(httpClient).Get(context.Background(), "bafkreicid")
		require.NoError(t, err)
		assert.Equal(t, pdfPayload, data)
	})

	t.Run("unavailable when every gateway fails", func(t *testing.T) {
		httpClient := mocks.NewMockHTTPClient(ctrl)
		httpClient.EXPECT().
			GetBytes(gomock.Any(), gomock.Any(), nil).
			Return(nil, errors.New("unreachable")).
			Times(2)

		_, err := newTestClient(httpClient).Get(context.Background(), "bafkreicid")
		assert.ErrorIs(t, err, domain.ErrUnavailable)
	})
}

func TestGatewayURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c := newTestClient(mocks.NewMockHTTPClient(ctrl))
	assert.Equal(t, "https://gw1.example.com/ipfs/bafkreicid", c.GatewayURL("bafkreicid"))
}
