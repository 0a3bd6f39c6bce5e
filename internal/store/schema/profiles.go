package schema

import "time"

// PatientProfile represents the patient_profiles table. FullName, DateOfBirth,
// Gender, BloodGroup and HomeAddress are ledger-sourced and overwritten on
// every sync; the remaining columns are cache-authoritative and must never be
// touched by the sync write path.
type PatientProfile struct {
	// NumericID is the patient's identifier within the patient namespace
	NumericID uint64 `gorm:"column:numeric_id;primaryKey"`
	// WalletAddress is the lower-cased owning wallet
	WalletAddress string `gorm:"column:wallet_address;not null;index;type:text"`
	// FullName is ledger-sourced
	FullName string `gorm:"column:full_name;type:text"`
	// DateOfBirth is the normalized calendar date (YYYY-MM-DD) decoded from the
	// ledger's Unix-seconds encoding
	DateOfBirth string `gorm:"column:date_of_birth;type:text"`
	// Gender is ledger-sourced
	Gender string `gorm:"column:gender;type:text"`
	// BloodGroup is ledger-sourced
	BloodGroup string `gorm:"column:blood_group;type:text"`
	// HomeAddress is ledger-sourced
	HomeAddress string `gorm:"column:home_address;type:text"`
	// PhoneNumber is cache-authoritative
	PhoneNumber string `gorm:"column:phone_number;type:text"`
	// EmergencyContactName is cache-authoritative
	EmergencyContactName string `gorm:"column:emergency_contact_name;type:text"`
	// EmergencyContactPhone is cache-authoritative
	EmergencyContactPhone string `gorm:"column:emergency_contact_phone;type:text"`
	// Allergies is cache-authoritative
	Allergies string `gorm:"column:allergies;type:text"`
	// ChronicConditions is cache-authoritative
	ChronicConditions string `gorm:"column:chronic_conditions;type:text"`
	// CreatedAt is when the profile was first cached
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is bumped on every write
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the PatientProfile model
func (PatientProfile) TableName() string {
	return "patient_profiles"
}

// DoctorProfile represents the doctor_profiles table. FullName,
// Specialization and Hospital are ledger-sourced; the rest is
// cache-authoritative.
type DoctorProfile struct {
	NumericID     uint64 `gorm:"column:numeric_id;primaryKey"`
	WalletAddress string `gorm:"column:wallet_address;not null;index;type:text"`
	FullName      string `gorm:"column:full_name;type:text"`
	// Specialization is ledger-sourced
	Specialization string `gorm:"column:specialization;type:text"`
	// Hospital is ledger-sourced
	Hospital string `gorm:"column:hospital;type:text"`
	// LicenseNumber is cache-authoritative
	LicenseNumber string `gorm:"column:license_number;type:text"`
	// PhoneNumber is cache-authoritative
	PhoneNumber string `gorm:"column:phone_number;type:text"`
	// YearsOfExperience is cache-authoritative
	YearsOfExperience int       `gorm:"column:years_of_experience"`
	CreatedAt         time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt         time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the DoctorProfile model
func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}

// DiagnosticProfile represents the diagnostic_profiles table. CenterName and
// Location are ledger-sourced; the rest is cache-authoritative.
type DiagnosticProfile struct {
	NumericID     uint64 `gorm:"column:numeric_id;primaryKey"`
	WalletAddress string `gorm:"column:wallet_address;not null;index;type:text"`
	CenterName    string `gorm:"column:center_name;type:text"`
	// Location is ledger-sourced
	Location string `gorm:"column:location;type:text"`
	// PhoneNumber is cache-authoritative
	PhoneNumber string `gorm:"column:phone_number;type:text"`
	// ServicesOffered is cache-authoritative
	ServicesOffered string `gorm:"column:services_offered;type:text"`
	// Accreditation is cache-authoritative
	Accreditation string    `gorm:"column:accreditation;type:text"`
	CreatedAt     time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt     time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the DiagnosticProfile model
func (DiagnosticProfile) TableName() string {
	return "diagnostic_profiles"
}
