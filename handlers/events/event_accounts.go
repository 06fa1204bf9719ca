package events

import (
	"errors"
	"net/http"
	"strconv"

	"symposium-api/database"
	"symposium-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AssignEventAccount links a payment account to an event
// @Summary Assign a payment account to an event (organizer only)
// @Tags Events
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Event ID"
// @Param request body AssignAccountRequest true "Account to assign"
// @Success 201 {object} map[string]string
// @Failure 400,404,409,500 {object} map[string]string
// @Router /events/{id}/accounts [post]
func AssignEventAccount(c *gin.Context) {
	eventID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidEventID)
		return
	}
	var req AssignAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidPayload)
		return
	}

	if err := database.DB.First(&models.Account{}, "id = ?", req.AccountID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(c, http.StatusNotFound, ErrAccountNotFound)
			return
		}
		respondWithError(c, http.StatusInternalServerError, ErrFailedUpdate)
		return
	}

	link := models.EventAccount{EventID: uint(eventID), AccountID: req.AccountID}
	result := database.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&link)
	if result.Error != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedUpdate)
		return
	}
	if result.RowsAffected == 0 {
		respondWithError(c, http.StatusConflict, ErrAccountAssigned)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Account assigned to event."})
}

// GetEventAccounts lists the payment accounts of an event
// @Summary List an event's payment accounts
// @Description Public so registrants can see where to pay. QR PDFs are served separately.
// @Tags Events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {array} models.Account
// @Failure 400,500 {object} map[string]string
// @Router /events/{id}/accounts [get]
func GetEventAccounts(c *gin.Context) {
	eventID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidEventID)
		return
	}

	var accounts []models.Account
	err = database.DB.Raw(`
		SELECT a.id, a.account_name, a.bank_name, a.account_number, a.ifsc_code, a.created_at
		FROM accounts a
		JOIN event_accounts ea ON ea.account_id = a.id
		WHERE ea.event_id = ?`, eventID).Scan(&accounts).Error
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedFetch)
		return
	}

	if accounts == nil {
		accounts = []models.Account{}
	}
	c.JSON(http.StatusOK, accounts)
}

// RemoveEventAccount unlinks a payment account from an event
// @Summary Remove a payment account from an event (organizer only)
// @Tags Events
// @Produce json
// @Security Bearer
// @Param id path int true "Event ID"
// @Param accountId path int true "Account ID"
// @Success 200 {object} map[string]string
// @Failure 400,404,500 {object} map[string]string
// @Router /events/{id}/accounts/{accountId} [delete]
func RemoveEventAccount(c *gin.Context) {
	eventID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidEventID)
		return
	}
	accountID, err := strconv.ParseUint(c.Param("accountId"), 10, 64)
	if err != nil {
		respondWithError(c, http.StatusBadRequest, "Invalid account ID.")
		return
	}

	result := database.DB.Where("event_id = ? AND account_id = ?", eventID, accountID).
		Delete(&models.EventAccount{})
	if result.Error != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedUpdate)
		return
	}
	if result.RowsAffected == 0 {
		respondWithError(c, http.StatusNotFound, "Account is not assigned to this event.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account removed from event."})
}
