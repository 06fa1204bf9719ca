package verification

import (
	"errors"
	"net/http"
	"strconv"

	"symposium-api/database"
	"symposium-api/models"
	"symposium-api/realtime"
	"symposium-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SetVerification records an admin decision on a (user, event) registration
// @Summary Verify or unverify a registration (organizer only)
// @Description Upserts the verification row: first decision creates it (201), later decisions update it in place (200). Exactly one row ever exists per (user, event) pair.
// @Tags Verification
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body VerificationRequest true "Verification decision"
// @Success 200,201 {object} map[string]interface{}
// @Failure 400,404,500 {object} map[string]string
// @Router /verification [post]
func SetVerification(c *gin.Context) {
	var req VerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidPayload)
		return
	}

	if err := database.DB.First(&models.User{}, "id = ?", req.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(c, http.StatusNotFound, ErrUserNotFound)
			return
		}
		respondWithError(c, http.StatusInternalServerError, ErrFailedVerify)
		return
	}
	if !services.EventExists(database.DB, req.EventID) {
		respondWithError(c, http.StatusNotFound, ErrEventNotFound)
		return
	}

	// Conflict-free upsert keyed on the (user_id, event_id) unique index;
	// concurrent decisions collapse into one row
	row := models.VerifiedRegistration{
		UserID:   req.UserID,
		EventID:  req.EventID,
		Verified: *req.Verified,
	}
	var existing int64
	database.DB.Model(&models.VerifiedRegistration{}).
		Where("user_id = ? AND event_id = ?", req.UserID, req.EventID).
		Count(&existing)

	err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "event_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"verified"}),
	}).Create(&row).Error
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedVerify)
		return
	}

	realtime.BroadcastUpdate(realtime.RegistrationUpdate{
		EventID:    req.EventID,
		UpdateType: realtime.UpdateVerified,
		Payload:    gin.H{"userId": req.UserID, "verified": *req.Verified},
	})

	status := http.StatusCreated
	message := "Verification recorded."
	if existing > 0 {
		status = http.StatusOK
		message = "Verification updated."
	}
	c.JSON(status, gin.H{"message": message, "verified": *req.Verified})
}

// GetUserVerifications lists the verification rows of one user
// @Summary List a user's verification rows (organizer only)
// @Tags Verification
// @Produce json
// @Security Bearer
// @Param userId path int true "User ID"
// @Success 200 {array} models.VerifiedRegistration
// @Failure 400,500 {object} map[string]string
// @Router /verification/user/{userId} [get]
func GetUserVerifications(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidUserID)
		return
	}

	var rows []models.VerifiedRegistration
	if err := database.DB.Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedFetch)
		return
	}

	c.JSON(http.StatusOK, rows)
}
