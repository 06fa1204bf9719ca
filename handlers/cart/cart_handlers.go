package cart

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"symposium-api/config"
	"symposium-api/database"
	"symposium-api/models"
	"symposium-api/realtime"
	"symposium-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AddToCart puts an event in a user's cart
// @Summary Add an event to the cart
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body AddToCartRequest true "Cart entry"
// @Success 201 {object} map[string]string
// @Failure 400,404,409,500 {object} map[string]string
// @Router /cart [post]
func AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidPayload)
		return
	}
	if !models.ValidSymposium(req.SymposiumName) {
		respondWithError(c, http.StatusBadRequest, ErrInvalidSymposium)
		return
	}
	if !services.EventExists(database.DB, req.EventID) {
		respondWithError(c, http.StatusNotFound, ErrEventNotFound)
		return
	}

	item := models.CartItem{
		UserID:        req.UserID,
		EventID:       req.EventID,
		SymposiumName: req.SymposiumName,
	}
	result := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "event_id"}, {Name: "symposium_name"}},
		DoNothing: true,
	}).Create(&item)
	if result.Error != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedAdd)
		return
	}
	if result.RowsAffected == 0 {
		respondWithError(c, http.StatusConflict, ErrAlreadyInCart)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Event added to cart."})
}

// GetCart lists a user's cart with live event details
// @Summary Get a user's cart
// @Description Each entry is joined with its event's current name, category and fee so stale cart data never reaches checkout
// @Tags Cart
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {array} cartRow
// @Failure 400,500 {object} map[string]string
// @Router /cart/{userId} [get]
func GetCart(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidUserID)
		return
	}

	var rows []cartRow
	err = database.DB.Raw(`
		SELECT ct.cart_id, ct.event_id, ct.symposium_name,
		       e.event_name, e.event_category, e.registration_fees
		FROM cart ct
		JOIN enigma_events e ON e.id = ct.event_id AND ct.symposium_name = 'Enigma'
		WHERE ct.user_id = ?
		UNION
		SELECT ct.cart_id, ct.event_id, ct.symposium_name,
		       e.event_name, e.event_category, e.registration_fees
		FROM cart ct
		JOIN carte_blanche_events e ON e.id = ct.event_id AND ct.symposium_name = 'Carteblanche'
		WHERE ct.user_id = ?`, userID, userID).Scan(&rows).Error
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedFetch)
		return
	}

	if rows == nil {
		rows = []cartRow{}
	}
	c.JSON(http.StatusOK, rows)
}

// RemoveFromCart drops one event from a user's cart
// @Summary Remove an event from the cart
// @Description Scoped to the owning user: another user's id cannot touch the row
// @Tags Cart
// @Produce json
// @Param userId path int true "User ID"
// @Param eventId path int true "Event ID"
// @Success 200 {object} map[string]string
// @Failure 400,404,500 {object} map[string]string
// @Router /cart/{userId}/{eventId} [delete]
func RemoveFromCart(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidUserID)
		return
	}
	eventID, err := strconv.ParseUint(c.Param("eventId"), 10, 64)
	if err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidEventID)
		return
	}

	result := database.DB.Where("user_id = ? AND event_id = ?", userID, eventID).
		Delete(&models.CartItem{})
	if result.Error != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedRemove)
		return
	}
	if result.RowsAffected == 0 {
		respondWithError(c, http.StatusNotFound, ErrNotInCart)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event removed from cart."})
}

// Checkout converts a user's cart into registrations
// @Summary Check out the cart
// @Description Free events become simple registrations, paid events one combined paid submission backed by the supplied proof. Everything runs in one transaction; the cart is cleared only on full success.
// @Tags Cart
// @Accept multipart/form-data
// @Produce json
// @Param userId path int true "User ID"
// @Param transactionId formData string false "Transaction ID (required when the cart holds paid events)"
// @Param transactionUsername formData string false "Transaction username"
// @Param transactionTime formData string false "Transaction time"
// @Param transactionDate formData string false "Transaction date"
// @Param mobileNumber formData string false "Mobile number"
// @Param transactionScreenshot formData file false "Payment screenshot"
// @Success 201 {object} map[string]interface{}
// @Failure 400,404,409,500 {object} map[string]string
// @Router /cart/{userId}/checkout [post]
func Checkout(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidUserID)
		return
	}

	var items []models.CartItem
	if err := database.DB.Where("user_id = ?", userID).Find(&items).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedCheckout)
		return
	}
	if len(items) == 0 {
		respondWithError(c, http.StatusBadRequest, ErrCartEmpty)
		return
	}

	// Partition on the event's current fee, not anything stored in the cart
	var freeIDs, paidIDs []uint
	for _, item := range items {
		event, err := services.FindEventAcrossSymposia(database.DB, item.EventID)
		if err != nil {
			respondWithError(c, http.StatusNotFound, ErrEventNotFound)
			return
		}
		if event.RegistrationFees == 0 {
			freeIDs = append(freeIDs, item.EventID)
		} else {
			paidIDs = append(paidIDs, item.EventID)
		}
	}

	var proof services.PaymentProof
	if len(paidIDs) > 0 {
		proof = services.PaymentProof{
			TransactionID:       c.PostForm("transactionId"),
			TransactionUsername: c.PostForm("transactionUsername"),
			TransactionTime:     c.PostForm("transactionTime"),
			TransactionDate:     c.PostForm("transactionDate"),
			MobileNumber:        c.PostForm("mobileNumber"),
		}
		file, err := c.FormFile("transactionScreenshot")
		if err != nil || proof.TransactionID == "" || proof.TransactionUsername == "" {
			respondWithError(c, http.StatusBadRequest, ErrProofRequired)
			return
		}
		if file.Size > config.DefaultUploadLimits.ScreenshotMaxBytes {
			respondWithError(c, http.StatusBadRequest, "Transaction screenshot must not exceed 5MB.")
			return
		}
		opened, err := file.Open()
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, ErrFailedCheckout)
			return
		}
		defer opened.Close()
		if proof.Screenshot, err = io.ReadAll(opened); err != nil {
			respondWithError(c, http.StatusInternalServerError, ErrFailedCheckout)
			return
		}
	}

	email, err := services.UserEmailByID(database.DB, uint(userID))
	if err != nil {
		respondWithError(c, http.StatusNotFound, "User not found.")
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if len(paidIDs) > 0 {
			if err := services.RegisterPaidEvents(tx, uint(userID), paidIDs, proof); err != nil {
				return err
			}
		}
		for _, eventID := range freeIDs {
			if err := services.RegisterFreeEvent(tx, email, eventID); err != nil {
				return err
			}
		}
		return tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTransactionIDUsed), errors.Is(err, services.ErrAlreadyRegistered):
			respondWithError(c, http.StatusConflict, err.Error())
		case errors.Is(err, services.ErrUserNotFound), errors.Is(err, services.ErrEventNotFound):
			respondWithError(c, http.StatusNotFound, err.Error())
		default:
			respondWithError(c, http.StatusInternalServerError, ErrFailedCheckout)
		}
		return
	}

	for _, eventID := range append(freeIDs, paidIDs...) {
		realtime.BroadcastUpdate(realtime.RegistrationUpdate{
			EventID:    eventID,
			UpdateType: realtime.UpdateRegistered,
			Payload:    gin.H{"userId": userID},
		})
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Checkout complete.",
		"paidEvents": len(paidIDs),
		"freeEvents": len(freeIDs),
	})
}
