package symposium

import (
	"errors"
	"net/http"

	"symposium-api/database"
	"symposium-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TimerRequest sets the landing page countdown target
type TimerRequest struct {
	EndTime string `json:"end_time" binding:"required"`
}

// SetTimer replaces the active registration countdown
// @Summary Set the registration timer (organizer only)
// @Description Deactivates any previous timer and inserts the new one in a single transaction, so at most one timer is ever active
// @Tags Symposium
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body TimerRequest true "Countdown end time"
// @Success 201 {object} models.RegistrationTimer
// @Failure 400,500 {object} map[string]string
// @Router /timer [post]
func SetTimer(c *gin.Context) {
	var req TimerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidPayload)
		return
	}

	timer := models.RegistrationTimer{EndTime: req.EndTime, IsActive: true}
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.RegistrationTimer{}).
			Where("is_active = ?", true).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Create(&timer).Error
	})
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, "Failed to set timer.")
		return
	}

	c.JSON(http.StatusCreated, timer)
}

// GetTimer returns the active registration countdown
// @Summary Get the registration timer
// @Tags Symposium
// @Produce json
// @Success 200 {object} models.RegistrationTimer
// @Failure 404,500 {object} map[string]string
// @Router /timer [get]
func GetTimer(c *gin.Context) {
	var timer models.RegistrationTimer
	err := database.DB.Where("is_active = ?", true).
		Order("id DESC").
		First(&timer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(c, http.StatusNotFound, "No active timer.")
			return
		}
		respondWithError(c, http.StatusInternalServerError, "Failed to fetch timer.")
		return
	}

	c.JSON(http.StatusOK, timer)
}

// ClearTimer deactivates the registration countdown
// @Summary Clear the registration timer (organizer only)
// @Tags Symposium
// @Produce json
// @Security Bearer
// @Success 200 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /timer [delete]
func ClearTimer(c *gin.Context) {
	err := database.DB.Model(&models.RegistrationTimer{}).
		Where("is_active = ?", true).
		Update("is_active", false).Error
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, "Failed to clear timer.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Timer cleared."})
}
