package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/Kaysanshaikh/HealthLedger/internal/api/shared/errors"
	"github.com/Kaysanshaikh/HealthLedger/internal/domain"
	"github.com/Kaysanshaikh/HealthLedger/internal/logger"
)

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, apierrors.NewBadRequestError(message, details...))
}

// respondNotFound responds with a not found error
func respondNotFound(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusNotFound, apierrors.NewNotFoundError(message, details...))
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusUnprocessableEntity, apierrors.NewValidationError(message))
}

// respondInternalError responds with an internal server error and logs it
func respondInternalError(c *gin.Context, err error, message string) {
	logger.ErrorCtx(c.Request.Context(), err, zap.String("path", c.Request.URL.Path))
	c.JSON(http.StatusInternalServerError, apierrors.NewInternalError(message))
}

// respondDomainError maps domain sentinel errors to HTTP responses. Anything
// unrecognized is treated as internal.
func respondDomainError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, apierrors.NewNotFoundError(message))
	case errors.Is(err, domain.ErrInvalidSignature):
		c.JSON(http.StatusUnauthorized, apierrors.NewUnauthorizedError("Signature verification failed"))
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, apierrors.NewUnauthorizedError(message))
	case errors.Is(err, domain.ErrRoleNotGranted):
		c.JSON(http.StatusForbidden, apierrors.NewForbiddenError("Role not granted on the ledger"))
	case errors.Is(err, domain.ErrPayloadRejected):
		c.JSON(http.StatusBadRequest, apierrors.NewPayloadRejectedError(message, err.Error()))
	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, apierrors.NewConflictError(message))
	case errors.Is(err, domain.ErrUnavailable):
		logger.WarnCtx(c.Request.Context(), "upstream unavailable",
			zap.String("path", c.Request.URL.Path), zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, apierrors.NewUnavailableError("Ledger or content store unavailable"))
	default:
		respondInternalError(c, err, message)
	}
}
