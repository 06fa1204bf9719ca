package verification

import (
	"github.com/gin-gonic/gin"

	"symposium-api/utils/response"
)

// Constants for error messages
const (
	ErrInvalidPayload = "Invalid request payload."
	ErrInvalidUserID  = "Invalid user ID."
	ErrUserNotFound   = "User not found."
	ErrEventNotFound  = "Event not found."
	ErrFailedVerify   = "Failed to update verification."
	ErrFailedFetch    = "Failed to fetch verifications."
)

// VerificationRequest sets the verified flag of one (user, event) pair
type VerificationRequest struct {
	UserID   uint  `json:"userId" binding:"required"`
	EventID  uint  `json:"eventId" binding:"required"`
	Verified *bool `json:"verified" binding:"required"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, status int, message string) {
	response.Error(c, status, message)
}
