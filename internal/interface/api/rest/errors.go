package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "user-account-api/internal/domain/user"
)

// forbidden must be checked before the not-found and credential errors:
// a failed re-authentication wraps them.
var forbidden = []error{
	domain.ErrReauthFailed,
	domain.ErrBlocked,
	domain.ErrAccessDenied,
	domain.ErrAdminSelfBlock,
	domain.ErrCredentialsMismatch,
}

func respondError(c *gin.Context, logger *zap.Logger, op string, err error) {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		badRequest(c, vErr.Fields)
		return
	}

	for _, target := range forbidden {
		if errors.Is(err, target) {
			c.JSON(http.StatusForbidden, gin.H{"error": target.Error()})
			return
		}
	}

	switch {
	case errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		logger.Error(op+" error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func badRequest(c *gin.Context, details any) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "invalid request body",
		"details": details,
	})
}

func invalidJSON(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
}
