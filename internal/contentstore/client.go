// Package contentstore pins record payloads to IPFS through the pinning
// service and retrieves them through public gateways. CIDs stored on the
// ledger always point at content pinned here.
package contentstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"github.com/Kaysanshaikh/HealthLedger/internal/adapter"
	"github.com/Kaysanshaikh/HealthLedger/internal/domain"
	"github.com/Kaysanshaikh/HealthLedger/internal/logger"
)

// DefaultMaxUploadSize caps record payloads at 1 MiB
const DefaultMaxUploadSize = 1 << 20

// DefaultAllowedExtensions lists the payload types accepted for upload
var DefaultAllowedExtensions = []string{".pdf", ".doc", ".docx", ".jpg", ".jpeg", ".png"}

// DefaultGateways are tried in order when fetching pinned content
var DefaultGateways = []string{
	"https://gateway.pinata.cloud/ipfs/",
	"https://ipfs.io/ipfs/",
	"https://cloudflare-ipfs.com/ipfs/",
	"https://dweb.link/ipfs/",
}

// extensionMIMEs maps allowed extensions to the MIME types their sniffed
// content must match
var extensionMIMEs = map[string][]string{
	".pdf":  {"application/pdf"},
	".doc":  {"application/msword", "application/x-ole-storage"},
	".docx": {"application/vnd.openxmlformats-officedocument.wordprocessingml.document", "application/zip"},
	".jpg":  {"image/jpeg"},
	".jpeg": {"image/jpeg"},
	".png":  {"image/png"},
}

// PutResult describes a successfully pinned payload
type PutResult struct {
	CID       string
	Size      int64
	Timestamp string
	URL       string
}

// Client pins payloads and fetches pinned content.
//
//go:generate mockgen -source=client.go -destination=../mocks/contentstore_client.go -package=mocks -mock_names=Client=MockContentStoreClient
type Client interface {
	// Put validates and pins a file payload. Returns domain.ErrPayloadRejected
	// when the payload fails validation before any network call is made.
	Put(ctx context.Context, fileName string, payload []byte) (*PutResult, error)

	// PutJSON pins a JSON document
	PutJSON(ctx context.Context, name string, document interface{}) (*PutResult, error)

	// Get fetches pinned content, trying each configured gateway in order.
	// Returns domain.ErrUnavailable when every gateway fails.
	Get(ctx context.Context, cid string) ([]byte, error)

	// GatewayURL returns the public URL for a CID on the primary gateway
	GatewayURL(cid string) string
}

// Config holds client construction parameters
type Config struct {
	APIURL            string
	APIKey            string
	APISecret         string
	Gateways          []string
	MaxUploadSize     int64
	AllowedExtensions []string
}

type client struct {
	http              adapter.HTTPClient
	apiURL            string
	apiKey            string
	apiSecret         string
	gateways          []string
	maxUploadSize     int64
	allowedExtensions map[string]bool
}

// NewClient creates a content store client
func NewClient(httpClient adapter.HTTPClient, cfg Config) Client {
	if cfg.APIURL == "" {
		cfg.APIURL = "https://api.pinata.cloud"
	}
	if len(cfg.Gateways) == 0 {
		cfg.Gateways = DefaultGateways
	}
	if cfg.MaxUploadSize <= 0 {
		cfg.MaxUploadSize = DefaultMaxUploadSize
	}
	if len(cfg.AllowedExtensions) == 0 {
		cfg.AllowedExtensions = DefaultAllowedExtensions
	}

	allowed := make(map[string]bool, len(cfg.AllowedExtensions))
	for _, ext := range cfg.AllowedExtensions {
		allowed[strings.ToLower(ext)] = true
	}

	return &client{
		http:              httpClient,
		apiURL:            strings.TrimRight(cfg.APIURL, "/"),
		apiKey:            cfg.APIKey,
		apiSecret:         cfg.APISecret,
		gateways:          cfg.Gateways,
		maxUploadSize:     cfg.MaxUploadSize,
		allowedExtensions: allowed,
	}
}

type pinResponse struct {
	IpfsHash  string `json:"IpfsHash"`
	PinSize   int64  `json:"PinSize"`
	Timestamp string `json:"Timestamp"`
}

func (c *client) Put(ctx context.Context, fileName string, payload []byte) (*PutResult, error) {
	if err := c.validate(fileName, payload); err != nil {
		return nil, err
	}

	metadata, err := json.Marshal(map[string]interface{}{
		"name": fileName,
		"keyvalues": map[string]string{
			"uploadedAt": time.Now().UTC().Format(time.RFC3339),
			"fileType":   strings.ToLower(filepath.Ext(fileName)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal pin metadata: %w", err)
	}

	respBody, err := c.http.PostMultipart(ctx,
		c.apiURL+"/pinning/pinFileToIPFS",
		c.authHeaders(),
		"file", fileName, payload,
		map[string]string{
			"pinataMetadata": string(metadata),
			"pinataOptions":  `{"cidVersion":1}`,
		})
	if err != nil {
		return nil, fmt.Errorf("failed to pin file: %v: %w", err, domain.ErrUnavailable)
	}

	return c.parsePinResponse(respBody)
}

func (c *client) PutJSON(ctx context.Context, name string, document interface{}) (*PutResult, error) {
	body, err := json.Marshal(map[string]interface{}{
		"pinataContent": document,
		"pinataMetadata": map[string]interface{}{
			"name":      name,
			"keyvalues": map[string]string{"type": "json"},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON payload: %w", err)
	}

	respBody, err := c.http.Post(ctx,
		c.apiURL+"/pinning/pinJSONToIPFS",
		"application/json",
		c.authHeaders(),
		bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to pin JSON: %v: %w", err, domain.ErrUnavailable)
	}

	return c.parsePinResponse(respBody)
}

func (c *client) Get(ctx context.Context, cid string) ([]byte, error) {
	for _, gateway := range c.gateways {
		data, err := c.http.GetBytes(ctx, gateway+cid, nil)
		if err == nil {
			return data, nil
		}
		logger.WarnCtx(ctx, "gateway fetch failed",
			zap.String("gateway", gateway),
			zap.String("cid", cid),
			zap.Error(err))
	}
	return nil, fmt.Errorf("all gateways failed for cid %s: %w", cid, domain.ErrUnavailable)
}

func (c *client) GatewayURL(cid string) string {
	return c.gateways[0] + cid
}

// validate enforces the upload constraints before any network call. Sniffed
// content must agree with the claimed extension.
func (c *client) validate(fileName string, payload []byte) error {
	if len(payload) == 0 {
		return fmt.Errorf("empty payload: %w", domain.ErrPayloadRejected)
	}
	if int64(len(payload)) > c.maxUploadSize {
		return fmt.Errorf("payload size %d exceeds limit %d: %w", len(payload), c.maxUploadSize, domain.ErrPayloadRejected)
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	if !c.allowedExtensions[ext] {
		return fmt.Errorf("file type %q not allowed: %w", ext, domain.ErrPayloadRejected)
	}

	if expected, ok := extensionMIMEs[ext]; ok {
		detected := mimetype.Detect(payload)
		matched := false
		for _, want := range expected {
			if detected.Is(want) {
				matched = true
				break
			}
		}
		if !matched {
			return fmt.Errorf("content type %s does not match extension %q: %w", detected.String(), ext, domain.ErrPayloadRejected)
		}
	}

	return nil
}

func (c *client) authHeaders() map[string]string {
	return map[string]string{
		"pinata_api_key":        c.apiKey,
		"pinata_secret_api_key": c.apiSecret,
	}
}

func (c *client) parsePinResponse(respBody []byte) (*PutResult, error) {
	var resp pinResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode pin response: %w", err)
	}
	if resp.IpfsHash == "" {
		return nil, fmt.Errorf("pin response missing CID")
	}

	return &PutResult{
		CID:       resp.IpfsHash,
		Size:      resp.PinSize,
		Timestamp: resp.Timestamp,
		URL:       c.GatewayURL(resp.IpfsHash),
	}, nil
}
