package handlers

import (
	"net/http"
	"time"

	"prohub/internal/models"
	"prohub/internal/services"
	"prohub/internal/utils"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct{}

func NewAdminHandler() *AdminHandler {
	return &AdminHandler{}
}

func (h *AdminHandler) ListWarningTypes(c *gin.Context) {
	types, err := services.ListWarningTypes()
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"warning_types": types})
}

type warningTypeRequest struct {
	Name          string `json:"name" binding:"required"`
	Points        int    `json:"points" binding:"required"`
	ExpiresInDays *int   `json:"expires_in_days"`
	Description   string `json:"description"`
}

func (h *AdminHandler) CreateWarningType(c *gin.Context) {
	var req warningTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	wtype := models.WarningType{
		Name:          req.Name,
		Points:        req.Points,
		ExpiresInDays: req.ExpiresInDays,
		Description:   req.Description,
	}
	if err := services.CreateWarningType(&wtype); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, wtype)
}

func (h *AdminHandler) UpdateWarningType(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))

	var req warningTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	wtype, err := services.UpdateWarningType(id, &models.WarningType{
		Name:          req.Name,
		Points:        req.Points,
		ExpiresInDays: req.ExpiresInDays,
		Description:   req.Description,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, wtype)
}

// SweepExpirations triggers the expiry sweep on demand, in addition to
// the background schedule.
func (h *AdminHandler) SweepExpirations(c *gin.Context) {
	count, err := services.SweepExpirations(time.Now())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"expired": count})
}
