package handlers

import (
	"errors"
	"net/http"

	"prohub/internal/middleware"
	"prohub/internal/models"
	"prohub/internal/services"
	"prohub/internal/utils"

	"github.com/gin-gonic/gin"
)

// CurrentUser returns the session user loaded by middleware. Handlers
// behind AuthRequired may assume it is present.
func CurrentUser(c *gin.Context) *models.User {
	return c.MustGet(middleware.CheckUserKey).(*models.User)
}

// AbortWithError maps service error kinds to HTTP responses so the
// moderator UI can show the specific failure, not a generic one.
func AbortWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrDowngrade), errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		utils.LogError(err, "Unhandled error in "+c.FullPath())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
