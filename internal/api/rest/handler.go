package rest

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Kaysanshaikh/HealthLedger/internal/access"
	"github.com/Kaysanshaikh/HealthLedger/internal/api/middleware"
	"github.com/Kaysanshaikh/HealthLedger/internal/api/rest/dto"
	"github.com/Kaysanshaikh/HealthLedger/internal/auth"
	"github.com/Kaysanshaikh/HealthLedger/internal/domain"
	"github.com/Kaysanshaikh/HealthLedger/internal/logger"
	"github.com/Kaysanshaikh/HealthLedger/internal/records"
	"github.com/Kaysanshaikh/HealthLedger/internal/store"
	"github.com/Kaysanshaikh/HealthLedger/internal/store/schema"
	syncengine "github.com/Kaysanshaikh/HealthLedger/internal/sync"
)

const defaultListLimit = 50

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// Login authenticates a wallet signature and issues a session token
	// POST /api/v1/auth/login
	Login(c *gin.Context)

	// AdminToken exchanges the operator credential pair for an admin token
	// POST /api/v1/auth/admin/token
	AdminToken(c *gin.Context)

	// GetProfile retrieves a profile by role and numeric identifier
	// GET /api/v1/profiles/:role/:number
	GetProfile(c *gin.Context)

	// CheckRegistration reports whether a wallet or (role, number) pair is registered
	// GET /api/v1/profiles/check-registration?wallet=<address>&role=<role>&number=<number>
	CheckRegistration(c *gin.Context)

	// ForgotNumber looks up the numeric identifier bound to a registration email
	// POST /api/v1/profiles/forgot-number
	ForgotNumber(c *gin.Context)

	// UpdatePatientProfile updates the cache-only supplementary patient fields
	// PATCH /api/v1/profiles/patient/:number
	UpdatePatientProfile(c *gin.Context)

	// CreateGrant records patient consent for a doctor
	// POST /api/v1/access/grants
	CreateGrant(c *gin.Context)

	// RevokeGrant withdraws patient consent for a doctor
	// DELETE /api/v1/access/grants
	RevokeGrant(c *gin.Context)

	// ListPatients returns the patients who granted the calling doctor access
	// GET /api/v1/access/patients
	ListPatients(c *gin.Context)

	// SearchRecords matches the caller's reachable records against a query
	// GET /api/v1/records/search?q=<query>&limit=<limit>
	SearchRecords(c *gin.Context)

	// ListPatientRecords returns a patient's record index entries
	// GET /api/v1/records/patient/:wallet?limit=<limit>
	ListPatientRecords(c *gin.Context)

	// IndexRecord mirrors a ledger record into the searchable cache
	// POST /api/v1/records/index
	IndexRecord(c *gin.Context)

	// GetRecordContent streams the payload behind a record
	// GET /api/v1/records/:id/content
	GetRecordContent(c *gin.Context)

	// UploadRecordContent validates and pins a payload, returning its CID
	// POST /api/v1/records/content
	UploadRecordContent(c *gin.Context)

	// ListRecordAccessLogs returns the audit trail for a record (admin only)
	// GET /api/v1/records/:id/access-logs?limit=<limit>
	ListRecordAccessLogs(c *gin.Context)

	// ListNotifications returns the caller's notifications
	// GET /api/v1/notifications?unread=<bool>&limit=<limit>
	ListNotifications(c *gin.Context)

	// MarkNotificationRead transitions a notification to read
	// PUT /api/v1/notifications/:id/read
	MarkNotificationRead(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	gate       auth.Gate
	reconciler syncengine.Reconciler
	records    records.Service
	access     access.Engine
	cache      store.Store
}

// NewHandler creates a new REST API handler
func NewHandler(gate auth.Gate, reconciler syncengine.Reconciler, recordsSvc records.Service, accessEngine access.Engine, cache store.Store) Handler {
	return &handler{
		gate:       gate,
		reconciler: reconciler,
		records:    recordsSvc,
		access:     accessEngine,
		cache:      cache,
	}
}

// Login authenticates a wallet signature and issues a session token
func (h *handler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	session, err := h.gate.Login(c.Request.Context(), auth.LoginInput{
		Wallet:    req.WalletAddress,
		Role:      domain.Role(req.Role),
		NumericID: req.NumericID,
		Message:   req.Message,
		Signature: req.Signature,
	})
	if err != nil {
		respondDomainError(c, err, "Login failed")
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		Profile:   dto.FromProfile(session.Profile, session.Stale),
	})
}

// AdminToken exchanges the operator credential pair for an admin token
func (h *handler) AdminToken(c *gin.Context) {
	var req dto.AdminTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	token, err := h.gate.AdminToken(c.Request.Context(), req.APIKey, req.APISecret)
	if err != nil {
		respondDomainError(c, err, "Invalid credentials")
		return
	}

	c.JSON(http.StatusOK, dto.AdminTokenResponse{Token: token})
}

// GetProfile retrieves a profile by role and numeric identifier. Patient
// profiles are visible only to the patient, a doctor holding an active
// grant, or an admin. Doctor and diagnostic profiles are visible to any
// authenticated caller.
func (h *handler) GetProfile(c *gin.Context) {
	role := domain.Role(c.Param("role"))
	if !role.Valid() {
		respondBadRequest(c, fmt.Sprintf("Unknown role: %s", c.Param("role")))
		return
	}

	numericID, err := parseUint64Param(c, "number")
	if err != nil {
		respondBadRequest(c, "Invalid numeric identifier")
		return
	}

	result, err := h.reconciler.ReconcileProfile(c.Request.Context(), role, numericID)
	if err != nil {
		respondDomainError(c, err, "Failed to get profile")
		return
	}

	if role == domain.RolePatient {
		allowed, err := h.callerMayViewPatient(c, result.Profile.Identity.WalletAddress)
		if err != nil {
			respondInternalError(c, err, "Failed to check authorization")
			return
		}
		if !allowed {
			respondDomainError(c, domain.ErrUnauthorized, "Not authorized for this profile")
			return
		}
	}

	c.JSON(http.StatusOK, dto.FromProfile(result.Profile, result.Stale))
}

// CheckRegistration reports whether a wallet or (role, number) pair is registered
func (h *handler) CheckRegistration(c *gin.Context) {
	wallet := c.Query("wallet")
	roleParam := c.Query("role")
	numberParam := c.Query("number")

	var (
		user *schema.User
		err  error
	)

	switch {
	case wallet != "":
		user, err = h.cache.GetUserByWallet(c.Request.Context(), wallet)
	case roleParam != "" && numberParam != "":
		role := domain.Role(roleParam)
		if !role.Valid() {
			respondBadRequest(c, fmt.Sprintf("Unknown role: %s", roleParam))
			return
		}
		var numericID uint64
		numericID, err = strconv.ParseUint(numberParam, 10, 64)
		if err != nil {
			respondBadRequest(c, "Invalid numeric identifier")
			return
		}
		user, err = h.cache.GetUserByRoleNumericID(c.Request.Context(), role, numericID)
	default:
		respondBadRequest(c, "Either wallet or role and number are required")
		return
	}

	if err != nil {
		respondInternalError(c, err, "Failed to check registration")
		return
	}

	if user == nil {
		c.JSON(http.StatusOK, dto.RegistrationCheckResponse{Registered: false})
		return
	}

	c.JSON(http.StatusOK, dto.RegistrationCheckResponse{
		Registered:    true,
		Role:          string(user.Role),
		NumericID:     user.NumericID,
		WalletAddress: user.WalletAddress,
	})
}

// ForgotNumber looks up the numeric identifier bound to a registration email
func (h *handler) ForgotNumber(c *gin.Context) {
	var req dto.ForgotNumberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	user, err := h.cache.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		respondInternalError(c, err, "Failed to look up email")
		return
	}
	if user == nil {
		respondNotFound(c, "No registration for this email")
		return
	}

	c.JSON(http.StatusOK, dto.ForgotNumberResponse{
		Role:      string(user.Role),
		NumericID: user.NumericID,
	})
}

// UpdatePatientProfile updates the cache-only supplementary patient fields
func (h *handler) UpdatePatientProfile(c *gin.Context) {
	claims, ok := middleware.SessionClaims(c)
	if !ok {
		respondDomainError(c, domain.ErrUnauthorized, "Session required")
		return
	}

	numericID, err := parseUint64Param(c, "number")
	if err != nil {
		respondBadRequest(c, "Invalid numeric identifier")
		return
	}

	// Only the patient edits their own supplementary fields
	if claims.Subject != auth.AdminSubject &&
		(domain.Role(claims.Role) != domain.RolePatient || claims.NumericID != numericID) {
		respondDomainError(c, domain.ErrUnauthorized, "Not authorized for this profile")
		return
	}

	var req dto.UpdatePatientProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	profile, err := h.cache.UpdatePatientSupplementaryFields(c.Request.Context(), numericID, store.PatientSupplementaryUpdate{
		PhoneNumber:           req.PhoneNumber,
		HomeAddress:           req.HomeAddress,
		EmergencyContactName:  req.EmergencyContactName,
		EmergencyContactPhone: req.EmergencyContactPhone,
		Allergies:             req.Allergies,
		ChronicConditions:     req.ChronicConditions,
	})
	if err != nil {
		respondInternalError(c, err, "Failed to update profile")
		return
	}
	if profile == nil {
		respondNotFound(c, "Patient profile not found")
		return
	}

	notification := &schema.Notification{
		RecipientWallet: domain.NormalizeAddress(profile.WalletAddress),
		Title:           "Profile updated",
		Message:         "Your supplementary profile details were updated.",
		Type:            "profile_update",
	}
	if err := h.cache.CreateNotification(c.Request.Context(), notification); err != nil {
		logger.WarnCtx(c.Request.Context(), "failed to create profile update notification",
			zap.Uint64("numeric_id", numericID), zap.Error(err))
	}

	result, err := h.reconciler.ReconcileProfile(c.Request.Context(), domain.RolePatient, numericID)
	if err != nil {
		respondDomainError(c, err, "Failed to load updated profile")
		return
	}

	c.JSON(http.StatusOK, dto.FromProfile(result.Profile, result.Stale))
}

// CreateGrant records patient consent for a doctor
func (h *handler) CreateGrant(c *gin.Context) {
	claims, ok := requireRole(c, domain.RolePatient)
	if !ok {
		return
	}

	var req dto.GrantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	grant, err := h.access.Grant(c.Request.Context(), claims.Wallet, req.DoctorWallet)
	if err != nil {
		respondDomainError(c, err, "Failed to grant access")
		return
	}

	c.JSON(http.StatusCreated, dto.FromAccessGrant(grant))
}

// RevokeGrant withdraws patient consent for a doctor
func (h *handler) RevokeGrant(c *gin.Context) {
	claims, ok := requireRole(c, domain.RolePatient)
	if !ok {
		return
	}

	var req dto.GrantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	grant, err := h.access.Revoke(c.Request.Context(), claims.Wallet, req.DoctorWallet)
	if err != nil {
		respondDomainError(c, err, "Failed to revoke access")
		return
	}
	if grant == nil {
		respondNotFound(c, "No active grant for this doctor")
		return
	}

	c.JSON(http.StatusOK, dto.FromAccessGrant(grant))
}

// ListPatients returns the patients who granted the calling doctor access
func (h *handler) ListPatients(c *gin.Context) {
	claims, ok := requireRole(c, domain.RoleDoctor)
	if !ok {
		return
	}

	summaries, err := h.access.ListPatientsFor(c.Request.Context(), claims.Wallet, claims.NumericID)
	if err != nil {
		respondDomainError(c, err, "Failed to list patients")
		return
	}

	c.JSON(http.StatusOK, dto.FromPatientSummaries(summaries))
}

// SearchRecords matches the caller's reachable records against a query
func (h *handler) SearchRecords(c *gin.Context) {
	requester, ok := requesterFromSession(c)
	if !ok {
		return
	}

	query := c.Query("q")
	if query == "" {
		respondBadRequest(c, "Query parameter q is required")
		return
	}

	entries, err := h.records.Search(c.Request.Context(), requester, query, parseLimitQuery(c))
	if err != nil {
		respondDomainError(c, err, "Search failed")
		return
	}

	c.JSON(http.StatusOK, dto.FromRecordIndexEntries(entries))
}

// ListPatientRecords returns a patient's record index entries
func (h *handler) ListPatientRecords(c *gin.Context) {
	requester, ok := requesterFromSession(c)
	if !ok {
		return
	}

	patientWallet := c.Param("wallet")
	entries, err := h.records.ListByPatient(c.Request.Context(), requester, patientWallet, parseLimitQuery(c))
	if err != nil {
		respondDomainError(c, err, "Failed to list records")
		return
	}

	c.JSON(http.StatusOK, dto.FromRecordIndexEntries(entries))
}

// IndexRecord mirrors a ledger record into the searchable cache
func (h *handler) IndexRecord(c *gin.Context) {
	requester, ok := requesterFromSession(c)
	if !ok {
		return
	}

	var req dto.IndexRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	entry, err := h.records.Index(c.Request.Context(), requester, req.RecordID)
	if err != nil {
		respondDomainError(c, err, "Failed to index record")
		return
	}

	resp := dto.FromRecordIndexEntry(entry)
	c.JSON(http.StatusOK, resp)
}

// GetRecordContent streams the payload behind a record
func (h *handler) GetRecordContent(c *gin.Context) {
	requester, ok := requesterFromSession(c)
	if !ok {
		return
	}

	recordID, err := parseUint64Param(c, "id")
	if err != nil {
		respondBadRequest(c, "Invalid record identifier")
		return
	}

	payload, entry, err := h.records.FetchContent(c.Request.Context(), requester, recordID)
	if err != nil {
		respondDomainError(c, err, "Failed to fetch record content")
		return
	}

	c.Header("X-Record-CID", entry.CID)
	c.Data(http.StatusOK, http.DetectContentType(payload), payload)
}

// UploadRecordContent validates and pins a payload, returning its CID
func (h *handler) UploadRecordContent(c *gin.Context) {
	requester, ok := requesterFromSession(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondValidationError(c, "Multipart field file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondInternalError(c, err, "Failed to read upload")
		return
	}
	defer file.Close()

	payload, err := io.ReadAll(file)
	if err != nil {
		respondInternalError(c, err, "Failed to read upload")
		return
	}

	result, err := h.records.Upload(c.Request.Context(), requester, fileHeader.Filename, payload)
	if err != nil {
		respondDomainError(c, err, "Upload rejected")
		return
	}

	c.JSON(http.StatusCreated, dto.FromPutResult(result))
}

// ListRecordAccessLogs returns the audit trail for a record (admin only)
func (h *handler) ListRecordAccessLogs(c *gin.Context) {
	recordID, err := parseUint64Param(c, "id")
	if err != nil {
		respondBadRequest(c, "Invalid record identifier")
		return
	}

	logs, err := h.records.AccessTrail(c.Request.Context(), recordID, parseLimitQuery(c))
	if err != nil {
		respondDomainError(c, err, "Failed to list access logs")
		return
	}

	c.JSON(http.StatusOK, dto.FromAccessLogs(logs))
}

// ListNotifications returns the caller's notifications
func (h *handler) ListNotifications(c *gin.Context) {
	claims, ok := requireWalletSession(c)
	if !ok {
		return
	}

	unreadOnly := c.Query("unread") == "true"
	rows, err := h.cache.ListNotifications(c.Request.Context(), claims.Wallet, unreadOnly, parseLimitQuery(c))
	if err != nil {
		respondInternalError(c, err, "Failed to list notifications")
		return
	}

	c.JSON(http.StatusOK, dto.FromNotifications(rows))
}

// MarkNotificationRead transitions a notification to read
func (h *handler) MarkNotificationRead(c *gin.Context) {
	claims, ok := requireWalletSession(c)
	if !ok {
		return
	}

	id, err := parseUint64Param(c, "id")
	if err != nil {
		respondBadRequest(c, "Invalid notification identifier")
		return
	}

	row, err := h.cache.MarkNotificationRead(c.Request.Context(), id, claims.Wallet)
	if err != nil {
		respondInternalError(c, err, "Failed to mark notification read")
		return
	}
	if row == nil {
		respondNotFound(c, "Notification not found")
		return
	}

	c.JSON(http.StatusOK, dto.FromNotification(row))
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"service": "healthledger-api",
	})
}

// callerMayViewPatient reports whether the session may read a patient profile
func (h *handler) callerMayViewPatient(c *gin.Context, patientWallet string) (bool, error) {
	claims, ok := middleware.SessionClaims(c)
	if !ok {
		return false, nil
	}
	if claims.Subject == auth.AdminSubject {
		return true, nil
	}
	return h.access.IsAuthorized(c.Request.Context(), claims.Wallet, domain.Role(claims.Role), patientWallet)
}

// requesterFromSession builds a records requester from the session claims.
// Admin tokens carry no wallet and cannot act as record requesters.
func requesterFromSession(c *gin.Context) (records.Requester, bool) {
	claims, ok := requireWalletSession(c)
	if !ok {
		return records.Requester{}, false
	}
	return records.Requester{
		Wallet:    claims.Wallet,
		Role:      domain.Role(claims.Role),
		NumericID: claims.NumericID,
	}, true
}

// requireWalletSession returns the session claims of a wallet-bound session
func requireWalletSession(c *gin.Context) (*auth.Claims, bool) {
	claims, ok := middleware.SessionClaims(c)
	if !ok || claims.Wallet == "" {
		respondDomainError(c, domain.ErrUnauthorized, "Wallet session required")
		return nil, false
	}
	return claims, true
}

// requireRole returns the session claims when the session holds the role
func requireRole(c *gin.Context, role domain.Role) (*auth.Claims, bool) {
	claims, ok := requireWalletSession(c)
	if !ok {
		return nil, false
	}
	if domain.Role(claims.Role) != role {
		respondDomainError(c, domain.ErrUnauthorized, fmt.Sprintf("Requires %s role", role))
		return nil, false
	}
	return claims, true
}

func parseUint64Param(c *gin.Context, name string) (uint64, error) {
	return strconv.ParseUint(c.Param(name), 10, 64)
}

func parseLimitQuery(c *gin.Context) int {
	raw := c.Query("limit")
	if raw == "" {
		return defaultListLimit
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return defaultListLimit
	}
	return limit
}
