package symposium

import (
	"net/http"
	"time"

	"symposium-api/database"
	"symposium-api/models"
	"symposium-api/utils/response"

	"github.com/gin-gonic/gin"
)

// Constants for error messages
const (
	ErrInvalidPayload   = "Invalid request payload."
	ErrInvalidSymposium = "Invalid symposium name."
	ErrFailedStatus     = "Failed to fetch symposium status."
	ErrFailedToggle     = "Failed to update symposium status."
)

// ToggleRequest names the symposium track to start or stop
type ToggleRequest struct {
	SymposiumName string `json:"symposiumName" binding:"required"`
}

func respondWithError(c *gin.Context, status int, message string) {
	response.Error(c, status, message)
}

// StartSymposium opens registrations for a symposium track
// @Summary Start a symposium (organizer only)
// @Tags Symposium
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body ToggleRequest true "Symposium to start"
// @Success 200 {object} map[string]interface{}
// @Failure 400,500 {object} map[string]string
// @Router /symposium/start [post]
func StartSymposium(c *gin.Context) {
	name, ok := bindSymposium(c)
	if !ok {
		return
	}

	err := database.DB.Model(&models.SymposiumStatus{}).
		Where("symposium_name = ?", name).
		Updates(map[string]interface{}{
			"is_open":    true,
			"start_date": time.Now().Format("2006-01-02"),
		}).Error
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedToggle)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"title":   "Symposium Started",
		"message": name + " is now open for registrations.",
	})
}

// StopSymposium closes registrations for a symposium track
// @Summary Stop a symposium (organizer only)
// @Tags Symposium
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body ToggleRequest true "Symposium to stop"
// @Success 200 {object} map[string]interface{}
// @Failure 400,500 {object} map[string]string
// @Router /symposium/stop [post]
func StopSymposium(c *gin.Context) {
	name, ok := bindSymposium(c)
	if !ok {
		return
	}

	err := database.DB.Model(&models.SymposiumStatus{}).
		Where("symposium_name = ?", name).
		Update("is_open", false).Error
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedToggle)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"title":   "Symposium Stopped",
		"message": name + " registrations are now closed.",
	})
}

// GetStatus lists the open/closed state of every symposium track
// @Summary Get symposium status
// @Tags Symposium
// @Produce json
// @Success 200 {array} models.SymposiumStatus
// @Failure 500 {object} map[string]string
// @Router /symposium/status [get]
func GetStatus(c *gin.Context) {
	var statuses []models.SymposiumStatus
	if err := database.DB.Find(&statuses).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedStatus)
		return
	}
	c.JSON(http.StatusOK, statuses)
}

func bindSymposium(c *gin.Context) (string, bool) {
	var req ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidPayload)
		return "", false
	}
	if !models.ValidSymposium(req.SymposiumName) {
		respondWithError(c, http.StatusBadRequest, ErrInvalidSymposium)
		return "", false
	}
	return req.SymposiumName, true
}
