package registrations

import (
	"symposium-api/models"
	"symposium-api/utils/response"

	"github.com/gin-gonic/gin"
)

// Constants for error messages
const (
	ErrMissingFields        = "Missing required fields for registration."
	ErrMissingSimpleFields  = "Missing required fields for simple registration."
	ErrInvalidUserID        = "Invalid user ID."
	ErrInvalidEventIDs      = "eventIds must be a non-empty JSON array of event IDs."
	ErrScreenshotRequired   = "Transaction screenshot is required."
	ErrScreenshotTooLarge   = "Transaction screenshot must not exceed 5MB."
	ErrTransactionUsed      = "Transaction ID already used for another registration."
	ErrUserNotFound         = "User not found."
	ErrFailedToRegister     = "Failed to register."
	ErrFailedFetchAll       = "Failed to fetch all registrations."
	ErrFailedFetchEventRegs = "Failed to fetch event registrations."
	ErrFailedFetchUserRegs  = "Failed to fetch user registrations."
	ErrFailedFetchByEmail   = "Failed to fetch registered events."
	ErrFailedFetchVerified  = "Failed to fetch verified registered events."
	ErrFailedCheckTxn       = "Failed to check transaction ID."
)

// SimpleRegistrationRequest model for free event registration
type SimpleRegistrationRequest struct {
	UserEmail string `json:"userEmail" binding:"required,email"`
	EventID   uint   `json:"eventId" binding:"required"`
}

// AdminRegistrationRow is one row of the admin listing across all events
type AdminRegistrationRow struct {
	ID                  uint               `json:"id"`
	Symposium           string             `json:"symposium"`
	EventID             uint               `json:"eventId"`
	UserName            string             `json:"userName"`
	UserEmail           string             `json:"userEmail"`
	MobileNumber        string             `json:"mobileNumber"`
	TransactionID       string             `json:"transactionId"`
	TransactionUsername string             `json:"transactionUsername"`
	TransactionTime     string             `json:"transactionTime"`
	TransactionDate     string             `json:"transactionDate"`
	TransactionAmount   float64            `json:"transactionAmount"`
	Round1              models.RoundStatus `json:"round1"`
	Round2              models.RoundStatus `json:"round2"`
	Round3              models.RoundStatus `json:"round3"`
	UserID              *uint              `json:"userId"`
	Verified            *bool              `json:"verified"`
}

// VerifiedRegistrationRow is one verified registration of an event,
// merged across the paid and free registration tables. Payment fields
// are nil for free registrations.
type VerifiedRegistrationRow struct {
	UserName            string   `json:"userName"`
	Email               string   `json:"email"`
	College             string   `json:"college"`
	TransactionID       *string  `json:"transactionId"`
	TransactionUsername *string  `json:"transactionUsername"`
	TransactionTime     *string  `json:"transactionTime"`
	TransactionDate     *string  `json:"transactionDate"`
	TransactionAmount   *float64 `json:"transactionAmount"`
}

// userRegistrationRow is the flat union row of a user's paid and free registrations
type userRegistrationRow struct {
	ID        uint               `json:"id"`
	EventID   uint               `json:"eventId"`
	UserEmail string             `json:"userEmail"`
	Round1    models.RoundStatus `json:"round1"`
	Round2    models.RoundStatus `json:"round2"`
	Round3    models.RoundStatus `json:"round3"`
	Symposium string             `json:"symposium"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, status int, message string) {
	response.Error(c, status, message)
}
