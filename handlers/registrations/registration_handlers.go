package registrations

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"symposium-api/config"
	"symposium-api/database"
	"symposium-api/realtime"
	"symposium-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreatePaidRegistration registers a user for one or more paid events
// @Summary Submit a paid registration
// @Description Register a user for one or more events with a shared transaction proof. Each event stores its own listed fee.
// @Tags Registrations
// @Accept multipart/form-data
// @Produce json
// @Param userId formData int true "User ID"
// @Param eventIds formData string true "JSON array of event IDs"
// @Param transactionId formData string true "Transaction ID"
// @Param transactionUsername formData string true "Transaction username"
// @Param transactionTime formData string true "Transaction time"
// @Param transactionDate formData string true "Transaction date"
// @Param transactionAmount formData number true "Total amount paid"
// @Param mobileNumber formData string true "Mobile number"
// @Param transactionScreenshot formData file true "Payment screenshot"
// @Success 201 {object} map[string]string
// @Failure 400,404,409,500 {object} map[string]string
// @Router /registrations [post]
func CreatePaidRegistration(c *gin.Context) {
	// Step 1: Parse and validate the multipart form fields
	userID, err := strconv.ParseUint(c.PostForm("userId"), 10, 64)
	if err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidUserID)
		return
	}

	var eventIDs []uint
	if err := json.Unmarshal([]byte(c.PostForm("eventIds")), &eventIDs); err != nil || len(eventIDs) == 0 {
		respondWithError(c, http.StatusBadRequest, ErrInvalidEventIDs)
		return
	}

	proof := services.PaymentProof{
		TransactionID:       c.PostForm("transactionId"),
		TransactionUsername: c.PostForm("transactionUsername"),
		TransactionTime:     c.PostForm("transactionTime"),
		TransactionDate:     c.PostForm("transactionDate"),
		MobileNumber:        c.PostForm("mobileNumber"),
	}
	if proof.TransactionID == "" || proof.TransactionUsername == "" || proof.TransactionTime == "" ||
		proof.TransactionDate == "" || proof.MobileNumber == "" || c.PostForm("transactionAmount") == "" {
		respondWithError(c, http.StatusBadRequest, ErrMissingFields)
		return
	}

	// Step 2: Load the screenshot attachment
	file, err := c.FormFile("transactionScreenshot")
	if err != nil {
		respondWithError(c, http.StatusBadRequest, ErrScreenshotRequired)
		return
	}
	if file.Size > config.DefaultUploadLimits.ScreenshotMaxBytes {
		respondWithError(c, http.StatusBadRequest, ErrScreenshotTooLarge)
		return
	}
	opened, err := file.Open()
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedToRegister)
		return
	}
	defer opened.Close()
	proof.Screenshot, err = io.ReadAll(opened)
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedToRegister)
		return
	}

	// Step 3: Insert every row inside one transaction so a failure
	// partway leaves nothing committed
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		return services.RegisterPaidEvents(tx, uint(userID), eventIDs, proof)
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTransactionIDUsed):
			respondWithError(c, http.StatusConflict, ErrTransactionUsed)
		case errors.Is(err, services.ErrAlreadyRegistered):
			respondWithError(c, http.StatusConflict, err.Error())
		case errors.Is(err, services.ErrUserNotFound), errors.Is(err, services.ErrEventNotFound):
			respondWithError(c, http.StatusNotFound, err.Error())
		default:
			respondWithError(c, http.StatusInternalServerError, ErrFailedToRegister)
		}
		return
	}

	// Step 4: Push live updates for admin dashboards
	for _, eventID := range eventIDs {
		realtime.BroadcastUpdate(realtime.RegistrationUpdate{
			EventID:    eventID,
			UpdateType: realtime.UpdateRegistered,
			Payload:    gin.H{"userId": userID, "transactionId": proof.TransactionID},
		})
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Registration successful for all events."})
}

// CreateSimpleRegistration registers a user for a free event
// @Summary Submit a free registration
// @Description Register a user for a free event with no payment proof
// @Tags Registrations
// @Accept json
// @Produce json
// @Param request body SimpleRegistrationRequest true "Simple registration"
// @Success 201 {object} map[string]string
// @Failure 400,409,500 {object} map[string]string
// @Router /registrations/simple [post]
func CreateSimpleRegistration(c *gin.Context) {
	var req SimpleRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, ErrMissingSimpleFields)
		return
	}

	if err := services.RegisterFreeEvent(database.DB, req.UserEmail, req.EventID); err != nil {
		if errors.Is(err, services.ErrAlreadyRegistered) {
			respondWithError(c, http.StatusConflict, "Already registered for this event.")
			return
		}
		respondWithError(c, http.StatusInternalServerError, ErrFailedToRegister)
		return
	}

	realtime.BroadcastUpdate(realtime.RegistrationUpdate{
		EventID:    req.EventID,
		UpdateType: realtime.UpdateRegistered,
		Payload:    gin.H{"userEmail": req.UserEmail},
	})

	c.JSON(http.StatusCreated, gin.H{"message": "Registration successful."})
}

// CheckTransactionID reports whether a transaction id is still available
// @Summary Check transaction ID availability
// @Description Used by the client before submission to pre-empt the conflict path
// @Tags Registrations
// @Produce json
// @Param transactionId path string true "Transaction ID"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]string
// @Router /registrations/check-transaction/{transactionId} [get]
func CheckTransactionID(c *gin.Context) {
	transactionID := c.Param("transactionId")

	used, err := services.TransactionIDUsed(database.DB, transactionID)
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedCheckTxn)
		return
	}

	if used {
		c.JSON(http.StatusOK, gin.H{"exists": true, "message": "Transaction ID already used."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"exists": false, "message": "Transaction ID is available."})
}
