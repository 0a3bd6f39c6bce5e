package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/Kaysanshaikh/HealthLedger/internal/api/middleware"
	"github.com/Kaysanshaikh/HealthLedger/internal/auth"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, gate auth.Gate) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Authentication endpoints (public)
		v1.POST("/auth/login", handler.Login)
		v1.POST("/auth/admin/token", handler.AdminToken)

		// Pre-login registration lookups (public)
		v1.GET("/profiles/check-registration", handler.CheckRegistration)
		v1.POST("/profiles/forgot-number", handler.ForgotNumber)

		// Everything below requires a session token
		authed := v1.Group("", middleware.Auth(gate))

		// Profile endpoints
		authed.GET("/profiles/:role/:number", handler.GetProfile)
		authed.PATCH("/profiles/patient/:number", handler.UpdatePatientProfile)

		// Consent endpoints
		authed.POST("/access/grants", handler.CreateGrant)
		authed.DELETE("/access/grants", handler.RevokeGrant)
		authed.GET("/access/patients", handler.ListPatients)

		// Record endpoints
		authed.GET("/records/search", handler.SearchRecords)
		authed.GET("/records/patient/:wallet", handler.ListPatientRecords)
		authed.POST("/records/index", handler.IndexRecord)
		authed.GET("/records/:id/content", handler.GetRecordContent)
		authed.POST("/records/content", handler.UploadRecordContent)

		// Audit trail (admin token only)
		authed.GET("/records/:id/access-logs", middleware.RequireAdmin(), handler.ListRecordAccessLogs)

		// Notification endpoints
		authed.GET("/notifications", handler.ListNotifications)
		authed.PUT("/notifications/:id/read", handler.MarkNotificationRead)
	}
}
