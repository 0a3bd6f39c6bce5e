package schema

import "time"

// AccessGrant represents the access_grants table - patient-initiated,
// revocable consent for a doctor to view that patient's records. Rows are
// never deleted: revocation clears is_active and stamps revoked_at, keeping
// the grant history auditable. The partial unique index enforces at most one
// active row per (doctor, patient) pair.
type AccessGrant struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// DoctorWallet is the lower-cased wallet of the doctor receiving access
	DoctorWallet string `gorm:"column:doctor_wallet;not null;type:text;index:idx_access_grants_doctor;uniqueIndex:udx_access_grants_active,priority:1,where:is_active"`
	// PatientWallet is the lower-cased wallet of the consenting patient
	PatientWallet string `gorm:"column:patient_wallet;not null;type:text;index:idx_access_grants_patient;uniqueIndex:udx_access_grants_active,priority:2,where:is_active"`
	// IsActive is false once the grant is revoked; an inactive grant never
	// satisfies an authorization check
	IsActive bool `gorm:"column:is_active;not null;default:true"`
	// GrantedAt is when the patient issued this consent
	GrantedAt time.Time `gorm:"column:granted_at;not null;default:now();type:timestamptz"`
	// RevokedAt is stamped on revocation, nil while active
	RevokedAt *time.Time `gorm:"column:revoked_at;type:timestamptz"`
}

// TableName specifies the table name for the AccessGrant model
func (AccessGrant) TableName() string {
	return "access_grants"
}
