package auth

import (
	"errors"
	"net/http"

	"symposium-api/database"
	"symposium-api/models"
	"symposium-api/services"
	"symposium-api/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// otpMailer delivers reset codes. Swapped out in tests.
type otpMailer interface {
	SendOTPEmail(to, otp string) error
}

var newOtpMailer = func() otpMailer { return services.NewEmailService() }

// SendOTP issues a password reset code
// @Summary Send a password reset OTP
// @Description Generates a six-digit code, persists it with its issue time and emails it. A new request replaces any earlier code for the same email.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body OTPRequest true "Account email"
// @Success 200 {object} map[string]string
// @Failure 400,404,500 {object} map[string]string
// @Router /auth/send-otp [post]
func SendOTP(c *gin.Context) {
	var req OTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidPayload)
		return
	}

	if err := database.DB.First(&models.User{}, "email = ?", req.Email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(c, http.StatusNotFound, ErrEmailNotFound)
			return
		}
		respondWithError(c, http.StatusInternalServerError, ErrFailedOTP)
		return
	}

	code, err := utils.GenerateOTP()
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedOTP)
		return
	}

	otp := models.PasswordOtp{Email: req.Email, Code: code}
	err = database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"code", "created_at"}),
	}).Create(&otp).Error
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedOTP)
		return
	}

	if err := newOtpMailer().SendOTPEmail(req.Email, code); err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedOTP)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OTP sent to your email."})
}

// VerifyOTP checks a reset code without consuming it
// @Summary Verify a password reset OTP
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body VerifyOTPRequest true "Email and code"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /auth/verify-otp [post]
func VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidPayload)
		return
	}

	if !otpMatches(req.Email, req.Otp) {
		respondWithError(c, http.StatusBadRequest, ErrInvalidOTP)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OTP verified."})
}

// ResetPassword sets a new password after OTP verification
// @Summary Reset password
// @Description Verifies the OTP a final time, rehashes the password and consumes the code
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body ResetPasswordRequest true "Email, code and new password"
// @Success 200 {object} map[string]string
// @Failure 400,500 {object} map[string]string
// @Router /auth/reset-password [post]
func ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidPayload)
		return
	}
	if req.NewPassword != req.ConfirmPassword {
		respondWithError(c, http.StatusBadRequest, ErrPasswordMismatch)
		return
	}

	if !otpMatches(req.Email, req.Otp) {
		respondWithError(c, http.StatusBadRequest, ErrInvalidOTP)
		return
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedReset)
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).
			Where("email = ?", req.Email).
			Update("password", hashed).Error; err != nil {
			return err
		}
		return tx.Where("email = ?", req.Email).Delete(&models.PasswordOtp{}).Error
	})
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedReset)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset successfully."})
}

// otpMatches reports whether the stored code for email matches and is
// still inside its validity window
func otpMatches(email, code string) bool {
	var otp models.PasswordOtp
	if err := database.DB.First(&otp, "email = ?", email).Error; err != nil {
		return false
	}
	return otp.Code == code && !otp.Expired()
}
