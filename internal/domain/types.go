package domain

import (
	"fmt"
	"strings"
	"time"
)

// Role identifies the namespace a numeric identifier belongs to. A numeric
// identifier is unique only within its role namespace.
type Role string

const (
	// RolePatient represents a patient identity
	RolePatient Role = "patient"
	// RoleDoctor represents a caregiver identity
	RoleDoctor Role = "doctor"
	// RoleDiagnostic represents a diagnostic center identity
	RoleDiagnostic Role = "diagnostic"
)

// ParseRole normalizes and validates a role string
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RolePatient:
		return RolePatient, nil
	case RoleDoctor:
		return RoleDoctor, nil
	case RoleDiagnostic:
		return RoleDiagnostic, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// Valid reports whether the role is one of the three known namespaces
func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

// NormalizeAddress lower-cases a wallet address. Wallet identity is
// case-insensitive everywhere in the system.
func NormalizeAddress(addr string) string {
	return strings.ToLower(strings.TrimSpace(addr))
}

// SameAddress compares two wallet addresses case-insensitively
func SameAddress(a, b string) bool {
	return NormalizeAddress(a) == NormalizeAddress(b)
}

// dobLayout is the calendar date encoding used by the cache. The ledger
// encodes dates of birth as Unix seconds.
const dobLayout = "2006-01-02"

// FormatDOB converts a ledger-encoded Unix-seconds date of birth to the
// cache's calendar date string. The conversion is UTC and deterministic.
func FormatDOB(unixSeconds int64) string {
	return time.Unix(unixSeconds, 0).UTC().Format(dobLayout)
}

// ParseDOB converts a calendar date string back to Unix seconds at midnight
// UTC. FormatDOB(ParseDOB(s)) == s for any date after 1970-01-01.
func ParseDOB(date string) (int64, error) {
	t, err := time.ParseInLocation(dobLayout, date, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid date of birth %q: %w", date, err)
	}
	return t.Unix(), nil
}

// Identity is the cache row binding a wallet address to a role and a numeric
// identifier. Role and numeric identifier are immutable after creation.
type Identity struct {
	ID            uint64
	WalletAddress string
	Email         string
	Role          Role
	NumericID     uint64
	IsActive      bool
	CreatedAt     time.Time
}

// PatientProfile holds patient attributes. Name, date of birth, gender, blood
// group and home address are ledger-sourced; the remaining fields are
// cache-authoritative and never written by sync.
type PatientProfile struct {
	NumericID             uint64
	WalletAddress         string
	FullName              string
	DateOfBirth           string
	Gender                string
	BloodGroup            string
	HomeAddress           string
	PhoneNumber           string
	EmergencyContactName  string
	EmergencyContactPhone string
	Allergies             string
	ChronicConditions     string
}

// DoctorProfile holds caregiver attributes. License number, phone and years
// of experience are cache-authoritative.
type DoctorProfile struct {
	NumericID         uint64
	WalletAddress     string
	FullName          string
	Specialization    string
	Hospital          string
	LicenseNumber     string
	PhoneNumber       string
	YearsOfExperience int
}

// DiagnosticProfile holds diagnostic center attributes. Phone, services and
// accreditation are cache-authoritative.
type DiagnosticProfile struct {
	NumericID       uint64
	WalletAddress   string
	CenterName      string
	Location        string
	PhoneNumber     string
	ServicesOffered string
	Accreditation   string
}

// Profile is a tagged variant over the three role-specific profile kinds.
// Exactly one payload pointer is non-nil, matching Kind.
type Profile struct {
	Kind       Role
	Identity   Identity
	Patient    *PatientProfile
	Doctor     *DoctorProfile
	Diagnostic *DiagnosticProfile
}

// NumericID returns the role-scoped numeric identifier of the profile
func (p *Profile) NumericID() uint64 {
	return p.Identity.NumericID
}

// PatientSummary is the row returned to a doctor listing the patients who
// granted them access. It never carries clinical payload.
type PatientSummary struct {
	NumericID     uint64
	WalletAddress string
	Email         string
	FullName      string
	Gender        string
	BloodGroup    string
	GrantedAt     time.Time
}

// LedgerPatient is a patient as read from the contract
type LedgerPatient struct {
	WalletAddress string
	Name          string
	Email         string
	DOB           int64 // Unix seconds
	Gender        string
	BloodGroup    string
	HomeAddress   string
}

// LedgerDoctor is a doctor as read from the contract
type LedgerDoctor struct {
	WalletAddress  string
	Name           string
	Email          string
	Specialization string
	Hospital       string
}

// LedgerDiagnostic is a diagnostic center as read from the contract
type LedgerDiagnostic struct {
	WalletAddress string
	CenterName    string
	Email         string
	Location      string
}

// LedgerRecord is a medical record pointer as read from the contract. The
// clinical payload itself lives in the content store, addressed by CID.
type LedgerRecord struct {
	RecordID      uint64
	PatientWallet string
	CreatorWallet string
	CID           string
	Meta          string // JSON document of structured metadata
	CreatedAt     int64  // Unix seconds
}
