package handlers

import (
	"net/http"

	apperrors "contest-backend/internal/errors"
	"contest-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// respondError maps the service error taxonomy to HTTP statuses. Anything outside the
// taxonomy becomes a generic 500 with the detail logged, never echoed to the caller.
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsConflict(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		logger.New().WithError(err).WithField("path", c.Request.URL.Path).Error("unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
