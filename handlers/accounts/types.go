package accounts

import (
	"github.com/gin-gonic/gin"

	"symposium-api/utils/response"
)

// Constants for error messages
const (
	ErrInvalidAccountID = "Invalid account ID."
	ErrMissingFields    = "Account name, bank name, account number and IFSC code are required."
	ErrPdfTooLarge      = "QR code PDF must not exceed 1MB."
	ErrAccountNotFound  = "Account not found."
	ErrNoQrPdf          = "Account has no QR code PDF."
	ErrFailedCreate     = "Failed to create account."
	ErrFailedFetch      = "Failed to fetch accounts."
	ErrFailedUpdate     = "Failed to update account."
	ErrFailedDelete     = "Failed to delete account."
)

// accountView is the listing projection without the PDF blob
type accountView struct {
	ID            uint   `json:"id"`
	AccountName   string `json:"accountName"`
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	IfscCode      string `json:"ifscCode"`
	HasQrPdf      bool   `json:"hasQrPdf"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, status int, message string) {
	response.Error(c, status, message)
}
