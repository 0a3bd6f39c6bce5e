package dto

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Kaysanshaikh/HealthLedger/internal/domain"
)

// LoginRequest is a wallet login attempt. The signature is a personal-sign
// over Message produced by the claimed wallet.
type LoginRequest struct {
	WalletAddress string `json:"wallet_address" binding:"required"`
	Role          string `json:"role" binding:"required"`
	NumericID     uint64 `json:"numeric_id" binding:"required"`
	Message       string `json:"message" binding:"required"`
	Signature     string `json:"signature" binding:"required"`
}

// Validate checks the login request fields
func (r *LoginRequest) Validate() error {
	if !domain.Role(r.Role).Valid() {
		return fmt.Errorf("unknown role: %s", r.Role)
	}
	if err := validateWallet(r.WalletAddress); err != nil {
		return err
	}
	if !strings.HasPrefix(r.Signature, "0x") {
		return errors.New("signature must be 0x-prefixed hex")
	}
	return nil
}

// AdminTokenRequest exchanges the operator credential pair for a token
type AdminTokenRequest struct {
	APIKey    string `json:"api_key" binding:"required"`
	APISecret string `json:"api_secret" binding:"required"`
}

// ForgotNumberRequest looks up a numeric identifier by registration email
type ForgotNumberRequest struct {
	Email string `json:"email" binding:"required"`
}

// Validate checks the lookup request fields
func (r *ForgotNumberRequest) Validate() error {
	if !strings.Contains(r.Email, "@") {
		return errors.New("invalid email address")
	}
	return nil
}

// UpdatePatientProfileRequest carries the cache-only supplementary fields a
// patient may edit. Nil fields are left unchanged.
type UpdatePatientProfileRequest struct {
	PhoneNumber           *string `json:"phone_number"`
	HomeAddress           *string `json:"home_address"`
	EmergencyContactName  *string `json:"emergency_contact_name"`
	EmergencyContactPhone *string `json:"emergency_contact_phone"`
	Allergies             *string `json:"allergies"`
	ChronicConditions     *string `json:"chronic_conditions"`
}

// Validate requires at least one field to update
func (r *UpdatePatientProfileRequest) Validate() error {
	if r.PhoneNumber == nil && r.HomeAddress == nil &&
		r.EmergencyContactName == nil && r.EmergencyContactPhone == nil &&
		r.Allergies == nil && r.ChronicConditions == nil {
		return errors.New("no fields to update")
	}
	return nil
}

// GrantRequest names the doctor a patient grants or revokes access for
type GrantRequest struct {
	DoctorWallet string `json:"doctor_wallet" binding:"required"`
}

// Validate checks the grant request fields
func (r *GrantRequest) Validate() error {
	return validateWallet(r.DoctorWallet)
}

// IndexRecordRequest asks for a ledger record to be mirrored into the cache
type IndexRecordRequest struct {
	RecordID uint64 `json:"record_id" binding:"required"`
}

func validateWallet(wallet string) error {
	if !strings.HasPrefix(wallet, "0x") || len(wallet) != 42 {
		return fmt.Errorf("invalid wallet address: %s", wallet)
	}
	return nil
}
