// Package auth authenticates wallets and issues session tokens. Possession
// of the wallet key is the only credential; there are no passwords.
package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/Kaysanshaikh/HealthLedger/internal/adapter"
	"github.com/Kaysanshaikh/HealthLedger/internal/domain"
	"github.com/Kaysanshaikh/HealthLedger/internal/ledger"
	"github.com/Kaysanshaikh/HealthLedger/internal/logger"
	syncengine "github.com/Kaysanshaikh/HealthLedger/internal/sync"
)

// AdminSubject is the JWT subject carried by operator tokens
const AdminSubject = "admin"

// Claims are the session claims bound into every issued token
type Claims struct {
	Wallet    string `json:"wallet,omitempty"`
	Role      string `json:"role,omitempty"`
	NumericID uint64 `json:"numeric_id,omitempty"`
	jwt.RegisteredClaims
}

// LoginInput carries a wallet login attempt. The signature is a
// personal-sign over Message produced by the claimed wallet.
type LoginInput struct {
	Wallet    string
	Role      domain.Role
	NumericID uint64
	Message   string
	Signature string
}

// Session is an authenticated wallet session
type Session struct {
	Token     string
	ExpiresAt time.Time
	Profile   *domain.Profile
	Stale     bool
}

// Config holds gate construction parameters
type Config struct {
	JWTSecret     string
	TokenTTL      time.Duration
	AdminAPIKey   string
	AdminSecret   string
	AdminTokenTTL time.Duration
}

// Gate authenticates wallets and validates session tokens.
//
//go:generate mockgen -source=gate.go -destination=../mocks/auth_gate.go -package=mocks -mock_names=Gate=MockGate
type Gate interface {
	// Login verifies the wallet signature, confirms the registration, and
	// issues a session token. For doctors the on-chain role is checked; when
	// the ledger is unreachable the check degrades to the cached role.
	Login(ctx context.Context, in LoginInput) (*Session, error)

	// AdminToken exchanges the operator credential pair for a short-lived
	// token with subject "admin"
	AdminToken(ctx context.Context, apiKey, apiSecret string) (string, error)

	// Verify validates a session token and returns its claims. Expired and
	// malformed tokens are indistinguishable: both yield ErrUnauthorized.
	Verify(tokenString string) (*Claims, error)
}

type gate struct {
	cfg        Config
	reconciler syncengine.Reconciler
	ledger     ledger.Client
	clock      adapter.Clock
}

// NewGate creates an auth gate
func NewGate(cfg Config, reconciler syncengine.Reconciler, ledgerClient ledger.Client, clock adapter.Clock) (Gate, error) {
	if cfg.JWTSecret == "" {
		return nil, errors.New("jwt secret is required")
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 24 * time.Hour
	}
	if cfg.AdminTokenTTL <= 0 {
		cfg.AdminTokenTTL = time.Hour
	}

	return &gate{
		cfg:        cfg,
		reconciler: reconciler,
		ledger:     ledgerClient,
		clock:      clock,
	}, nil
}

func (g *gate) Login(ctx context.Context, in LoginInput) (*Session, error) {
	if !in.Role.Valid() {
		return nil, fmt.Errorf("invalid role: %s", in.Role)
	}

	// Signature first: nothing else is trusted until the wallet is proven
	recovered, err := recoverSigner(in.Message, in.Signature)
	if err != nil {
		return nil, err
	}
	if !domain.SameAddress(recovered.Hex(), in.Wallet) {
		return nil, domain.ErrInvalidSignature
	}

	result, err := g.reconciler.ReconcileProfile(ctx, in.Role, in.NumericID)
	if err != nil {
		return nil, err
	}

	// The login wallet must be the registered wallet for the identifier
	if !domain.SameAddress(result.Profile.Identity.WalletAddress, in.Wallet) {
		return nil, domain.ErrUnauthorized
	}

	if in.Role == domain.RoleDoctor {
		if err := g.checkDoctorRole(ctx, in.Wallet, result.Stale); err != nil {
			return nil, err
		}
	}

	token, expiresAt, err := g.issueToken(result.Profile)
	if err != nil {
		return nil, err
	}

	return &Session{
		Token:     token,
		ExpiresAt: expiresAt,
		Profile:   result.Profile,
		Stale:     result.Stale,
	}, nil
}

// checkDoctorRole confirms the doctor role on the ledger. A definitive false
// is a hard refusal; an unreachable ledger degrades to the cached role, which
// the reconcile already confirmed when it found the doctor profile.
func (g *gate) checkDoctorRole(ctx context.Context, wallet string, stale bool) error {
	if stale {
		logger.WarnCtx(ctx, "ledger unavailable, accepting cached doctor role",
			zap.String("wallet", domain.NormalizeAddress(wallet)))
		return nil
	}

	granted, err := g.ledger.HasRole(ctx, wallet, domain.RoleDoctor)
	if err != nil {
		if errors.Is(err, domain.ErrUnavailable) {
			logger.WarnCtx(ctx, "ledger unavailable during role check, accepting cached doctor role",
				zap.String("wallet", domain.NormalizeAddress(wallet)))
			return nil
		}
		return err
	}
	if !granted {
		return domain.ErrRoleNotGranted
	}
	return nil
}

func (g *gate) AdminToken(ctx context.Context, apiKey, apiSecret string) (string, error) {
	if g.cfg.AdminAPIKey == "" || g.cfg.AdminSecret == "" {
		return "", domain.ErrUnauthorized
	}

	keyMatch := subtle.ConstantTimeCompare([]byte(apiKey), []byte(g.cfg.AdminAPIKey))
	secretMatch := subtle.ConstantTimeCompare([]byte(apiSecret), []byte(g.cfg.AdminSecret))
	if keyMatch&secretMatch != 1 {
		return "", domain.ErrUnauthorized
	}

	now := g.clock.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   AdminSubject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(g.cfg.AdminTokenTTL)),
		},
	})

	signed, err := token.SignedString([]byte(g.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign admin token: %w", err)
	}
	return signed, nil
}

func (g *gate) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(g.cfg.JWTSecret), nil
	}, jwt.WithTimeFunc(g.clock.Now))
	if err != nil || !token.Valid {
		return nil, domain.ErrUnauthorized
	}
	return claims, nil
}

func (g *gate) issueToken(profile *domain.Profile) (string, time.Time, error) {
	now := g.clock.Now()
	expiresAt := now.Add(g.cfg.TokenTTL)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Wallet:    profile.Identity.WalletAddress,
		Role:      string(profile.Kind),
		NumericID: profile.Identity.NumericID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   profile.Identity.WalletAddress,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})

	signed, err := token.SignedString([]byte(g.cfg.JWTSecret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// recoverSigner recovers the wallet that personal-signed the message.
// Both 0/1 and 27/28 recovery identifiers are accepted.
func recoverSigner(message, signature string) (common.Address, error) {
	sig, err := hexutil.Decode(signature)
	if err != nil || len(sig) != crypto.SignatureLength {
		return common.Address{}, domain.ErrInvalidSignature
	}

	normalized := make([]byte, crypto.SignatureLength)
	copy(normalized, sig)
	if normalized[crypto.RecoveryIDOffset] >= 27 {
		normalized[crypto.RecoveryIDOffset] -= 27
	}

	pub, err := crypto.SigToPub(accounts.TextHash([]byte(message)), normalized)
	if err != nil {
		return common.Address{}, domain.ErrInvalidSignature
	}
	return crypto.PubkeyToAddress(*pub), nil
}
