// Package ledger reads registrations, roles, and record pointers from the
// HealthLedger contract. The contract is the source of truth; everything
// returned here is authoritative over the relational cache.
package ledger

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/Kaysanshaikh/HealthLedger/internal/adapter"
	"github.com/Kaysanshaikh/HealthLedger/internal/domain"
)

// contractABI covers the read surface of the HealthLedger contract
const contractABI = `[
	{"constant":true,"inputs":[{"name":"hhNumber","type":"uint256"}],"name":"getPatient","outputs":[{"name":"walletAddress","type":"address"},{"name":"name","type":"string"},{"name":"email","type":"string"},{"name":"dob","type":"uint256"},{"name":"gender","type":"string"},{"name":"bloodGroup","type":"string"},{"name":"homeAddress","type":"string"}],"stateMutability":"view","type":"function"},
	{"constant":true,"inputs":[{"name":"hhNumber","type":"uint256"}],"name":"getDoctor","outputs":[{"name":"walletAddress","type":"address"},{"name":"name","type":"string"},{"name":"email","type":"string"},{"name":"specialization","type":"string"},{"name":"hospital","type":"string"}],"stateMutability":"view","type":"function"},
	{"constant":true,"inputs":[{"name":"hhNumber","type":"uint256"}],"name":"getDiagnostic","outputs":[{"name":"walletAddress","type":"address"},{"name":"centerName","type":"string"},{"name":"email","type":"string"},{"name":"location","type":"string"}],"stateMutability":"view","type":"function"},
	{"constant":true,"inputs":[{"name":"recordId","type":"uint256"}],"name":"getRecord","outputs":[{"name":"recordId","type":"uint256"},{"name":"patient","type":"address"},{"name":"creator","type":"address"},{"name":"cid","type":"string"},{"name":"meta","type":"string"},{"name":"createdAt","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"constant":true,"inputs":[{"name":"account","type":"address"},{"name":"role","type":"string"}],"name":"hasRole","outputs":[{"name":"","type":"bool"}],"stateMutability":"view","type":"function"}
]`

// Client reads profiles, records, and role registrations from the ledger.
//
//go:generate mockgen -source=client.go -destination=../mocks/ledger_client.go -package=mocks -mock_names=Client=MockLedgerClient
type Client interface {
	// GetPatient returns the patient registered under the numeric identifier.
	// Returns domain.ErrNotFound when no registration exists.
	GetPatient(ctx context.Context, numericID uint64) (*domain.LedgerPatient, error)

	// GetDoctor returns the doctor registered under the numeric identifier
	GetDoctor(ctx context.Context, numericID uint64) (*domain.LedgerDoctor, error)

	// GetDiagnostic returns the diagnostic center registered under the numeric identifier
	GetDiagnostic(ctx context.Context, numericID uint64) (*domain.LedgerDiagnostic, error)

	// GetRecord returns the record pointer stored under the record ID
	GetRecord(ctx context.Context, recordID uint64) (*domain.LedgerRecord, error)

	// HasRole reports whether the address holds the given role on the ledger
	HasRole(ctx context.Context, address string, role domain.Role) (bool, error)

	// Close releases the underlying RPC connection
	Close()
}

type client struct {
	eth         adapter.EthClient
	contract    common.Address
	abi         abi.ABI
	callTimeout time.Duration
}

// NewClient creates a ledger client bound to the given contract
func NewClient(eth adapter.EthClient, contractAddress string, callTimeout time.Duration) (Client, error) {
	if !common.IsHexAddress(contractAddress) {
		return nil, fmt.Errorf("invalid contract address: %s", contractAddress)
	}

	parsed, err := abi.JSON(strings.NewReader(contractABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse contract ABI: %w", err)
	}

	if callTimeout <= 0 {
		callTimeout = 10 * time.Second
	}

	return &client{
		eth:         eth,
		contract:    common.HexToAddress(contractAddress),
		abi:         parsed,
		callTimeout: callTimeout,
	}, nil
}

// Dial connects to the RPC endpoint and returns a ledger client over it
func Dial(ctx context.Context, dialer adapter.EthClientDialer, rpcURL, contractAddress string, callTimeout time.Duration) (Client, error) {
	eth, err := dialer.Dial(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to dial ledger RPC: %w", err)
	}
	return NewClient(eth, contractAddress, callTimeout)
}

func (c *client) GetPatient(ctx context.Context, numericID uint64) (*domain.LedgerPatient, error) {
	values, err := c.call(ctx, "getPatient", new(big.Int).SetUint64(numericID))
	if err != nil {
		return nil, err
	}

	wallet, ok := values[0].(common.Address)
	if !ok {
		return nil, fmt.Errorf("unexpected getPatient output: %T", values[0])
	}
	// The contract returns a zeroed struct for unknown identifiers
	if wallet == (common.Address{}) {
		return nil, domain.ErrNotFound
	}

	dob, ok := values[3].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("unexpected getPatient dob output: %T", values[3])
	}

	return &domain.LedgerPatient{
		WalletAddress: domain.NormalizeAddress(wallet.Hex()),
		Name:          values[1].(string),
		Email:         values[2].(string),
		DOB:           dob.Int64(),
		Gender:        values[4].(string),
		BloodGroup:    values[5].(string),
		HomeAddress:   values[6].(string),
	}, nil
}

func (c *client) GetDoctor(ctx context.Context, numericID uint64) (*domain.LedgerDoctor, error) {
	values, err := c.call(ctx, "getDoctor", new(big.Int).SetUint64(numericID))
	if err != nil {
		return nil, err
	}

	wallet, ok := values[0].(common.Address)
	if !ok {
		return nil, fmt.Errorf("unexpected getDoctor output: %T", values[0])
	}
	if wallet == (common.Address{}) {
		return nil, domain.ErrNotFound
	}

	return &domain.LedgerDoctor{
		WalletAddress:  domain.NormalizeAddress(wallet.Hex()),
		Name:           values[1].(string),
		Email:          values[2].(string),
		Specialization: values[3].(string),
		Hospital:       values[4].(string),
	}, nil
}

func (c *client) GetDiagnostic(ctx context.Context, numericID uint64) (*domain.LedgerDiagnostic, error) {
	values, err := c.call(ctx, "getDiagnostic", new(big.Int).SetUint64(numericID))
	if err != nil {
		return nil, err
	}

	wallet, ok := values[0].(common.Address)
	if !ok {
		return nil, fmt.Errorf("unexpected getDiagnostic output: %T", values[0])
	}
	if wallet == (common.Address{}) {
		return nil, domain.ErrNotFound
	}

	return &domain.LedgerDiagnostic{
		WalletAddress: domain.NormalizeAddress(wallet.Hex()),
		CenterName:    values[1].(string),
		Email:         values[2].(string),
		Location:      values[3].(string),
	}, nil
}

func (c *client) GetRecord(ctx context.Context, recordID uint64) (*domain.LedgerRecord, error) {
	values, err := c.call(ctx, "getRecord", new(big.Int).SetUint64(recordID))
	if err != nil {
		return nil, err
	}

	patient, ok := values[1].(common.Address)
	if !ok {
		return nil, fmt.Errorf("unexpected getRecord output: %T", values[1])
	}
	if patient == (common.Address{}) {
		return nil, domain.ErrNotFound
	}

	id, ok := values[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("unexpected getRecord id output: %T", values[0])
	}
	createdAt, ok := values[5].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("unexpected getRecord createdAt output: %T", values[5])
	}

	return &domain.LedgerRecord{
		RecordID:      id.Uint64(),
		PatientWallet: domain.NormalizeAddress(patient.Hex()),
		CreatorWallet: domain.NormalizeAddress(values[2].(common.Address).Hex()),
		CID:           values[3].(string),
		Meta:          values[4].(string),
		CreatedAt:     createdAt.Int64(),
	}, nil
}

func (c *client) HasRole(ctx context.Context, address string, role domain.Role) (bool, error) {
	if !common.IsHexAddress(address) {
		return false, fmt.Errorf("invalid address: %s", address)
	}

	values, err := c.call(ctx, "hasRole", common.HexToAddress(address), string(role))
	if err != nil {
		return false, err
	}

	granted, ok := values[0].(bool)
	if !ok {
		return false, fmt.Errorf("unexpected hasRole output: %T", values[0])
	}
	return granted, nil
}

func (c *client) Close() {
	c.eth.Close()
}

// call packs the method call, executes it against the contract, and unpacks
// the raw return values
func (c *client) call(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	data, err := c.abi.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s call: %w", method, err)
	}

	callCtx, cancel := context.WithTimeout(ctx, c.callTimeout)
	defer cancel()

	result, err := c.eth.CallContract(callCtx, ethereum.CallMsg{
		To:   &c.contract,
		Data: data,
	}, nil)
	if err != nil {
		return nil, classifyCallError(method, err)
	}

	values, err := c.abi.Unpack(method, result)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack %s result: %w", method, err)
	}
	return values, nil
}

// classifyCallError maps RPC failures onto the domain error taxonomy. A
// revert means the contract rejected the lookup; anything else means the
// ledger endpoint could not serve the call at all.
func classifyCallError(method string, err error) error {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "execution reverted") || strings.Contains(msg, "revert") {
		return domain.ErrNotFound
	}
	return fmt.Errorf("%s: %v: %w", method, err, domain.ErrUnavailable)
}
