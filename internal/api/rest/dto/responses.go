package dto

import (
	"encoding/json"
	"time"

	"github.com/Kaysanshaikh/HealthLedger/internal/contentstore"
	"github.com/Kaysanshaikh/HealthLedger/internal/domain"
	"github.com/Kaysanshaikh/HealthLedger/internal/store/schema"
)

// PatientProfileResponse is the patient payload of a profile response
type PatientProfileResponse struct {
	FullName              string `json:"full_name"`
	DateOfBirth           string `json:"date_of_birth"`
	Gender                string `json:"gender"`
	BloodGroup            string `json:"blood_group"`
	HomeAddress           string `json:"home_address"`
	PhoneNumber           string `json:"phone_number,omitempty"`
	EmergencyContactName  string `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string `json:"emergency_contact_phone,omitempty"`
	Allergies             string `json:"allergies,omitempty"`
	ChronicConditions     string `json:"chronic_conditions,omitempty"`
}

// DoctorProfileResponse is the doctor payload of a profile response
type DoctorProfileResponse struct {
	FullName          string `json:"full_name"`
	Specialization    string `json:"specialization"`
	Hospital          string `json:"hospital"`
	LicenseNumber     string `json:"license_number,omitempty"`
	PhoneNumber       string `json:"phone_number,omitempty"`
	YearsOfExperience int    `json:"years_of_experience,omitempty"`
}

// DiagnosticProfileResponse is the diagnostic center payload of a profile response
type DiagnosticProfileResponse struct {
	CenterName      string `json:"center_name"`
	Location        string `json:"location"`
	PhoneNumber     string `json:"phone_number,omitempty"`
	ServicesOffered string `json:"services_offered,omitempty"`
	Accreditation   string `json:"accreditation,omitempty"`
}

// ProfileResponse is a role-tagged profile. Exactly one payload is set.
// Cached is true when the ledger was unreachable and the cached copy was
// served instead.
type ProfileResponse struct {
	Role          string                     `json:"role"`
	NumericID     uint64                     `json:"numeric_id"`
	WalletAddress string                     `json:"wallet_address"`
	Email         string                     `json:"email,omitempty"`
	Cached        bool                       `json:"cached,omitempty"`
	Patient       *PatientProfileResponse    `json:"patient,omitempty"`
	Doctor        *DoctorProfileResponse     `json:"doctor,omitempty"`
	Diagnostic    *DiagnosticProfileResponse `json:"diagnostic,omitempty"`
}

// FromProfile maps a domain profile to its response shape
func FromProfile(p *domain.Profile, cached bool) ProfileResponse {
	resp := ProfileResponse{
		Role:          string(p.Kind),
		NumericID:     p.Identity.NumericID,
		WalletAddress: p.Identity.WalletAddress,
		Email:         p.Identity.Email,
		Cached:        cached,
	}

	switch {
	case p.Patient != nil:
		resp.Patient = &PatientProfileResponse{
			FullName:              p.Patient.FullName,
			DateOfBirth:           p.Patient.DateOfBirth,
			Gender:                p.Patient.Gender,
			BloodGroup:            p.Patient.BloodGroup,
			HomeAddress:           p.Patient.HomeAddress,
			PhoneNumber:           p.Patient.PhoneNumber,
			EmergencyContactName:  p.Patient.EmergencyContactName,
			EmergencyContactPhone: p.Patient.EmergencyContactPhone,
			Allergies:             p.Patient.Allergies,
			ChronicConditions:     p.Patient.ChronicConditions,
		}
	case p.Doctor != nil:
		resp.Doctor = &DoctorProfileResponse{
			FullName:          p.Doctor.FullName,
			Specialization:    p.Doctor.Specialization,
			Hospital:          p.Doctor.Hospital,
			LicenseNumber:     p.Doctor.LicenseNumber,
			PhoneNumber:       p.Doctor.PhoneNumber,
			YearsOfExperience: p.Doctor.YearsOfExperience,
		}
	case p.Diagnostic != nil:
		resp.Diagnostic = &DiagnosticProfileResponse{
			CenterName:      p.Diagnostic.CenterName,
			Location:        p.Diagnostic.Location,
			PhoneNumber:     p.Diagnostic.PhoneNumber,
			ServicesOffered: p.Diagnostic.ServicesOffered,
			Accreditation:   p.Diagnostic.Accreditation,
		}
	}

	return resp
}

// LoginResponse is a successful wallet login
type LoginResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	Profile   ProfileResponse `json:"profile"`
}

// AdminTokenResponse is a successful operator credential exchange
type AdminTokenResponse struct {
	Token string `json:"token"`
}

// RegistrationCheckResponse reports whether a wallet or numeric identifier
// is registered
type RegistrationCheckResponse struct {
	Registered    bool   `json:"registered"`
	Role          string `json:"role,omitempty"`
	NumericID     uint64 `json:"numeric_id,omitempty"`
	WalletAddress string `json:"wallet_address,omitempty"`
}

// ForgotNumberResponse returns the numeric identifier bound to an email
type ForgotNumberResponse struct {
	Role      string `json:"role"`
	NumericID uint64 `json:"numeric_id"`
}

// GrantResponse is one consent row
type GrantResponse struct {
	ID            uint64     `json:"id"`
	DoctorWallet  string     `json:"doctor_wallet"`
	PatientWallet string     `json:"patient_wallet"`
	IsActive      bool       `json:"is_active"`
	GrantedAt     time.Time  `json:"granted_at"`
	RevokedAt     *time.Time `json:"revoked_at,omitempty"`
}

// FromAccessGrant maps a grant row to its response shape
func FromAccessGrant(g *schema.AccessGrant) GrantResponse {
	return GrantResponse{
		ID:            g.ID,
		DoctorWallet:  g.DoctorWallet,
		PatientWallet: g.PatientWallet,
		IsActive:      g.IsActive,
		GrantedAt:     g.GrantedAt,
		RevokedAt:     g.RevokedAt,
	}
}

// PatientSummaryResponse is one row of a doctor's patient list
type PatientSummaryResponse struct {
	NumericID     uint64 `json:"numeric_id"`
	WalletAddress string `json:"wallet_address"`
	Email         string `json:"email,omitempty"`
	FullName      string `json:"full_name,omitempty"`
}

// PatientListResponse is a doctor's patient list
type PatientListResponse struct {
	Patients []PatientSummaryResponse `json:"patients"`
}

// FromPatientSummaries maps patient summaries to their response shape
func FromPatientSummaries(summaries []domain.PatientSummary) PatientListResponse {
	resp := PatientListResponse{
		Patients: make([]PatientSummaryResponse, 0, len(summaries)),
	}
	for _, s := range summaries {
		resp.Patients = append(resp.Patients, PatientSummaryResponse{
			NumericID:     s.NumericID,
			WalletAddress: s.WalletAddress,
			Email:         s.Email,
			FullName:      s.FullName,
		})
	}
	return resp
}

// RecordResponse is one searchable record index entry
type RecordResponse struct {
	RecordID         uint64          `json:"record_id"`
	PatientWallet    string          `json:"patient_wallet"`
	PatientNumericID *uint64         `json:"patient_numeric_id,omitempty"`
	CreatorWallet    string          `json:"creator_wallet"`
	CID              string          `json:"cid"`
	RecordType       string          `json:"record_type"`
	Metadata         json.RawMessage `json:"metadata,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	IndexedAt        time.Time       `json:"indexed_at"`
}

// FromRecordIndexEntry maps an index entry to its response shape
func FromRecordIndexEntry(e *schema.RecordIndexEntry) RecordResponse {
	return RecordResponse{
		RecordID:         e.RecordID,
		PatientWallet:    e.PatientWallet,
		PatientNumericID: e.PatientNumericID,
		CreatorWallet:    e.CreatorWallet,
		CID:              e.CID,
		RecordType:       e.RecordType,
		Metadata:         json.RawMessage(e.Metadata),
		CreatedAt:        e.CreatedAt,
		IndexedAt:        e.IndexedAt,
	}
}

// RecordListResponse is a list of record index entries
type RecordListResponse struct {
	Records []RecordResponse `json:"records"`
}

// FromRecordIndexEntries maps index entries to their response shape
func FromRecordIndexEntries(entries []schema.RecordIndexEntry) RecordListResponse {
	resp := RecordListResponse{
		Records: make([]RecordResponse, 0, len(entries)),
	}
	for i := range entries {
		resp.Records = append(resp.Records, FromRecordIndexEntry(&entries[i]))
	}
	return resp
}

// UploadResponse reports a pinned payload
type UploadResponse struct {
	CID       string `json:"cid"`
	Size      int64  `json:"size"`
	Timestamp string `json:"timestamp,omitempty"`
	URL       string `json:"url"`
}

// FromPutResult maps a pin result to its response shape
func FromPutResult(r *contentstore.PutResult) UploadResponse {
	return UploadResponse{
		CID:       r.CID,
		Size:      r.Size,
		Timestamp: r.Timestamp,
		URL:       r.URL,
	}
}

// AccessLogResponse is one audit trail row
type AccessLogResponse struct {
	ID             string    `json:"id"`
	RecordID       uint64    `json:"record_id,omitempty"`
	AccessorWallet string    `json:"accessor_wallet"`
	AccessorRole   string    `json:"accessor_role,omitempty"`
	Action         string    `json:"action"`
	Origin         string    `json:"origin,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// AccessLogListResponse is a record's audit trail
type AccessLogListResponse struct {
	Logs []AccessLogResponse `json:"logs"`
}

// FromAccessLogs maps audit rows to their response shape
func FromAccessLogs(logs []schema.AccessLog) AccessLogListResponse {
	resp := AccessLogListResponse{
		Logs: make([]AccessLogResponse, 0, len(logs)),
	}
	for _, l := range logs {
		resp.Logs = append(resp.Logs, AccessLogResponse{
			ID:             l.ID,
			RecordID:       l.RecordID,
			AccessorWallet: l.AccessorWallet,
			AccessorRole:   l.AccessorRole,
			Action:         l.Action,
			Origin:         l.Origin,
			CreatedAt:      l.CreatedAt,
		})
	}
	return resp
}

// NotificationResponse is one notification row
type NotificationResponse struct {
	ID              uint64    `json:"id"`
	Title           string    `json:"title"`
	Message         string    `json:"message,omitempty"`
	Type            string    `json:"type"`
	RelatedRecordID *uint64   `json:"related_record_id,omitempty"`
	IsRead          bool      `json:"is_read"`
	CreatedAt       time.Time `json:"created_at"`
}

// NotificationListResponse is a recipient's notification list
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
}

// FromNotifications maps notification rows to their response shape
func FromNotifications(rows []schema.Notification) NotificationListResponse {
	resp := NotificationListResponse{
		Notifications: make([]NotificationResponse, 0, len(rows)),
	}
	for _, n := range rows {
		resp.Notifications = append(resp.Notifications, FromNotification(&n))
	}
	return resp
}

// FromNotification maps one notification row to its response shape
func FromNotification(n *schema.Notification) NotificationResponse {
	return NotificationResponse{
		ID:              n.ID,
		Title:           n.Title,
		Message:         n.Message,
		Type:            n.Type,
		RelatedRecordID: n.RelatedRecordID,
		IsRead:          n.IsRead,
		CreatedAt:       n.CreatedAt,
	}
}
