package auth

import (
	"github.com/gin-gonic/gin"

	"symposium-api/utils/response"
)

// Constants for error messages
const (
	ErrInvalidPayload   = "Invalid request payload."
	ErrEmailTaken       = "An account with this email already exists."
	ErrEmailNotFound    = "No account found with this email."
	ErrWrongPassword    = "Incorrect password."
	ErrInvalidOTP       = "Invalid or expired OTP."
	ErrPasswordMismatch = "Passwords do not match."
	ErrFailedSignup     = "Failed to create account."
	ErrFailedLogin      = "Failed to log in."
	ErrFailedOTP        = "Failed to send OTP."
	ErrFailedReset      = "Failed to reset password."
)

// SignupRequest creates a student account
type SignupRequest struct {
	FullName      string `json:"fullName" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required,min=6"`
	Dob           string `json:"dob"`
	Mobile        string `json:"mobile"`
	College       string `json:"college"`
	Department    string `json:"department"`
	YearOfPassing int    `json:"yearOfPassing"`
	State         string `json:"state"`
	District      string `json:"district"`
}

// LoginRequest authenticates either principal type
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// OTPRequest asks for a password reset code
type OTPRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// VerifyOTPRequest checks a password reset code
type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	Otp   string `json:"otp" binding:"required"`
}

// ResetPasswordRequest sets a new password after OTP verification
type ResetPasswordRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Otp             string `json:"otp" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, status int, message string) {
	response.Error(c, status, message)
}
