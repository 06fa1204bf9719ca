package cart

import (
	"github.com/gin-gonic/gin"

	"symposium-api/utils/response"
)

// Constants for error messages
const (
	ErrInvalidPayload   = "Invalid request payload."
	ErrInvalidUserID    = "Invalid user ID."
	ErrInvalidEventID   = "Invalid event ID."
	ErrInvalidSymposium = "Invalid symposium name."
	ErrEventNotFound    = "Event not found."
	ErrAlreadyInCart    = "Event is already in the cart."
	ErrNotInCart        = "Event is not in this user's cart."
	ErrCartEmpty        = "Cart is empty."
	ErrProofRequired    = "Payment proof is required for paid events."
	ErrFailedAdd        = "Failed to add to cart."
	ErrFailedFetch      = "Failed to fetch cart."
	ErrFailedRemove     = "Failed to remove from cart."
	ErrFailedCheckout   = "Failed to check out cart."
)

// AddToCartRequest puts one event in a user's cart
type AddToCartRequest struct {
	UserID        uint   `json:"userId" binding:"required"`
	EventID       uint   `json:"eventId" binding:"required"`
	SymposiumName string `json:"symposiumName" binding:"required"`
}

// cartRow is one cart entry joined with its event's live details
type cartRow struct {
	CartID           uint    `json:"cartId"`
	EventID          uint    `json:"eventId"`
	SymposiumName    string  `json:"symposiumName"`
	EventName        string  `json:"eventName"`
	EventCategory    string  `json:"eventCategory"`
	RegistrationFees float64 `json:"registrationFees"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, status int, message string) {
	response.Error(c, status, message)
}
