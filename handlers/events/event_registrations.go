package events

import (
	"errors"
	"net/http"
	"strconv"

	"symposium-api/database"
	"symposium-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetEventRegistrationRows lists the paid registrations of one event
// @Summary List an event's paid registrations (organizer only)
// @Description Full per-event admin view with transaction details and round states
// @Tags Events
// @Produce json
// @Security Bearer
// @Param id path int true "Event ID"
// @Success 200 {array} registrationRow
// @Failure 400,500 {object} map[string]string
// @Router /events/{id}/registrations [get]
func GetEventRegistrationRows(c *gin.Context) {
	eventID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidEventID)
		return
	}

	var rows []registrationRow
	err = database.DB.Model(&models.Registration{}).
		Where("event_id = ?", eventID).
		Order("id").
		Scan(&rows).Error
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedFetch)
		return
	}

	if rows == nil {
		rows = []registrationRow{}
	}
	c.JSON(http.StatusOK, rows)
}

// SearchEventRegistration finds one participant's registration in an event
// @Summary Look up a registration by email (organizer only)
// @Tags Events
// @Produce json
// @Security Bearer
// @Param id path int true "Event ID"
// @Param email query string true "Participant email"
// @Success 200 {object} registrationRow
// @Failure 400,404,500 {object} map[string]string
// @Router /events/{id}/registrations/search [get]
func SearchEventRegistration(c *gin.Context) {
	eventID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidEventID)
		return
	}
	email := c.Query("email")
	if email == "" {
		respondWithError(c, http.StatusBadRequest, "email query parameter is required.")
		return
	}

	var registration models.Registration
	err = database.DB.First(&registration, "event_id = ? AND user_email = ?", eventID, email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(c, http.StatusNotFound, ErrRegistrationMissing)
			return
		}
		respondWithError(c, http.StatusInternalServerError, ErrFailedFetch)
		return
	}

	c.JSON(http.StatusOK, registration)
}
