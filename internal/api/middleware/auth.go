package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/Kaysanshaikh/HealthLedger/internal/api/shared/errors"
	"github.com/Kaysanshaikh/HealthLedger/internal/auth"
	"github.com/Kaysanshaikh/HealthLedger/internal/logger"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	AUTH_SUBJECT_KEY   contextKey = "auth_subject"
	SESSION_CLAIMS_KEY contextKey = "session_claims"
)

// AuthResult holds the result of authentication
type AuthResult struct {
	Success     bool
	Claims      *auth.Claims
	AuthSubject string
	Error       error
}

// Authenticate validates the Authorization header and returns the
// authentication result. This is a reusable function that can be called from
// middleware or anywhere else a bearer token needs checking.
func Authenticate(authHeader string, gate auth.Gate) AuthResult {
	result := AuthResult{
		Success: false,
	}

	if authHeader == "" {
		result.Error = errors.New("missing Authorization header")
		return result
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		result.Error = errors.New("invalid Authorization header format")
		return result
	}

	claims, err := gate.Verify(parts[1])
	if err != nil {
		result.Error = err
		return result
	}

	result.Success = true
	result.Claims = claims
	if claims.Subject != "" {
		result.AuthSubject = claims.Subject
	}

	return result
}

// Auth returns a gin middleware validating session tokens issued by the gate
func Auth(gate auth.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		result := Authenticate(authHeader, gate)

		if !result.Success {
			logger.Warn("Authentication failed",
				zap.Error(result.Error),
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			apiErr := apierrors.NewUnauthorizedError("Authentication failed")
			c.AbortWithStatusJSON(http.StatusUnauthorized, apiErr)
			return
		}

		// Store authentication info in context
		c.Set(SESSION_CLAIMS_KEY, result.Claims)
		if result.AuthSubject != "" {
			c.Set(AUTH_SUBJECT_KEY, result.AuthSubject)
		}

		logger.Debug("Authentication successful",
			zap.String("path", c.Request.URL.Path),
			zap.String("client_ip", c.ClientIP()),
			zap.String("subject", result.AuthSubject),
		)

		c.Next()
	}
}

// RequireAdmin returns a gin middleware allowing only operator tokens.
// It must run after Auth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := SessionClaims(c)
		if !ok || claims.Subject != auth.AdminSubject {
			apiErr := apierrors.NewForbiddenError("Admin token required")
			c.AbortWithStatusJSON(http.StatusForbidden, apiErr)
			return
		}
		c.Next()
	}
}

// SessionClaims returns the verified session claims stored by Auth
func SessionClaims(c *gin.Context) (*auth.Claims, bool) {
	value, exists := c.Get(SESSION_CLAIMS_KEY)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*auth.Claims)
	return claims, ok
}
