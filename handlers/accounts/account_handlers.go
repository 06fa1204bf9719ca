package accounts

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"symposium-api/config"
	"symposium-api/database"
	"symposium-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateAccount creates a payment account
// @Summary Create a payment account (organizer only)
// @Tags Accounts
// @Accept multipart/form-data
// @Produce json
// @Security Bearer
// @Param accountName formData string true "Account holder name"
// @Param bankName formData string true "Bank name"
// @Param accountNumber formData string true "Account number"
// @Param ifscCode formData string true "IFSC code"
// @Param qrCodePdf formData file false "QR code PDF"
// @Success 201 {object} map[string]interface{}
// @Failure 400,500 {object} map[string]string
// @Router /admin/accounts [post]
func CreateAccount(c *gin.Context) {
	account := models.Account{
		AccountName:   c.PostForm("accountName"),
		BankName:      c.PostForm("bankName"),
		AccountNumber: c.PostForm("accountNumber"),
		IfscCode:      c.PostForm("ifscCode"),
	}
	if account.AccountName == "" || account.BankName == "" ||
		account.AccountNumber == "" || account.IfscCode == "" {
		respondWithError(c, http.StatusBadRequest, ErrMissingFields)
		return
	}

	if blob, ok := readQrPdf(c); !ok {
		return
	} else {
		account.QrCodePdf = blob
	}

	if err := database.DB.Create(&account).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedCreate)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Account created.", "accountId": account.ID})
}

// GetAccounts lists all payment accounts without their PDF blobs
// @Summary List payment accounts (organizer only)
// @Tags Accounts
// @Produce json
// @Security Bearer
// @Success 200 {array} accountView
// @Failure 500 {object} map[string]string
// @Router /admin/accounts [get]
func GetAccounts(c *gin.Context) {
	var accounts []models.Account
	if err := database.DB.Find(&accounts).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedFetch)
		return
	}

	views := make([]accountView, 0, len(accounts))
	for _, a := range accounts {
		views = append(views, accountView{
			ID:            a.ID,
			AccountName:   a.AccountName,
			BankName:      a.BankName,
			AccountNumber: a.AccountNumber,
			IfscCode:      a.IfscCode,
			HasQrPdf:      len(a.QrCodePdf) > 0,
		})
	}

	c.JSON(http.StatusOK, views)
}

// UpdateAccount updates a payment account's details and optionally its QR PDF
// @Summary Update a payment account (organizer only)
// @Tags Accounts
// @Accept multipart/form-data
// @Produce json
// @Security Bearer
// @Param id path int true "Account ID"
// @Param accountName formData string true "Account holder name"
// @Param bankName formData string true "Bank name"
// @Param accountNumber formData string true "Account number"
// @Param ifscCode formData string true "IFSC code"
// @Param qrCodePdf formData file false "QR code PDF"
// @Success 200 {object} map[string]string
// @Failure 400,404,500 {object} map[string]string
// @Router /admin/accounts/{id} [put]
func UpdateAccount(c *gin.Context) {
	accountID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidAccountID)
		return
	}

	updates := map[string]interface{}{
		"account_name":   c.PostForm("accountName"),
		"bank_name":      c.PostForm("bankName"),
		"account_number": c.PostForm("accountNumber"),
		"ifsc_code":      c.PostForm("ifscCode"),
	}
	for _, v := range updates {
		if v == "" {
			respondWithError(c, http.StatusBadRequest, ErrMissingFields)
			return
		}
	}

	if blob, ok := readQrPdf(c); !ok {
		return
	} else if blob != nil {
		updates["qr_code_pdf"] = blob
	}

	result := database.DB.Model(&models.Account{}).Where("id = ?", accountID).Updates(updates)
	if result.Error != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedUpdate)
		return
	}
	if result.RowsAffected == 0 {
		respondWithError(c, http.StatusNotFound, ErrAccountNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account updated."})
}

// DeleteAccount removes a payment account and its event links
// @Summary Delete a payment account (organizer only)
// @Tags Accounts
// @Produce json
// @Security Bearer
// @Param id path int true "Account ID"
// @Success 200 {object} map[string]string
// @Failure 400,404,500 {object} map[string]string
// @Router /admin/accounts/{id} [delete]
func DeleteAccount(c *gin.Context) {
	accountID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidAccountID)
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("account_id = ?", accountID).Delete(&models.EventAccount{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Account{}, accountID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondWithError(c, http.StatusNotFound, ErrAccountNotFound)
		return
	}
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedDelete)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account deleted."})
}

// GetAccountQR serves the QR code PDF of a payment account
// @Summary Download an account's QR code PDF
// @Tags Accounts
// @Produce application/pdf
// @Param id path int true "Account ID"
// @Success 200 {file} binary
// @Failure 400,404 {object} map[string]string
// @Router /accounts/{id}/qr [get]
func GetAccountQR(c *gin.Context) {
	accountID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidAccountID)
		return
	}

	var account models.Account
	if err := database.DB.First(&account, "id = ?", accountID).Error; err != nil {
		respondWithError(c, http.StatusNotFound, ErrAccountNotFound)
		return
	}
	if len(account.QrCodePdf) == 0 {
		respondWithError(c, http.StatusNotFound, ErrNoQrPdf)
		return
	}

	c.Header("Content-Disposition", `inline; filename="payment-qr.pdf"`)
	c.Data(http.StatusOK, "application/pdf", account.QrCodePdf)
}

// readQrPdf pulls the optional qrCodePdf upload, enforcing the size cap.
// Returns (nil, true) when no file was sent.
func readQrPdf(c *gin.Context) ([]byte, bool) {
	file, err := c.FormFile("qrCodePdf")
	if err != nil {
		return nil, true
	}
	if file.Size > config.DefaultUploadLimits.PdfMaxBytes {
		respondWithError(c, http.StatusBadRequest, ErrPdfTooLarge)
		return nil, false
	}
	opened, err := file.Open()
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedCreate)
		return nil, false
	}
	defer opened.Close()
	blob, err := io.ReadAll(opened)
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedCreate)
		return nil, false
	}
	return blob, true
}
