package experiences

import (
	"io"
	"net/http"
	"strconv"

	"symposium-api/config"
	"symposium-api/database"
	"symposium-api/models"
	"symposium-api/utils/response"

	"github.com/gin-gonic/gin"
)

// Constants for error messages
const (
	ErrInvalidID      = "Invalid experience ID."
	ErrMissingFields  = "Name, email, type, year of passing and company are required."
	ErrPdfRequired    = "Experience PDF is required."
	ErrPdfTooLarge    = "Experience PDF must not exceed 1MB."
	ErrInvalidStatus  = "Status must be approved or rejected."
	ErrNotFound       = "Experience not found."
	ErrFailedSubmit   = "Failed to submit experience."
	ErrFailedFetch    = "Failed to fetch experiences."
	ErrFailedUpdate   = "Failed to update experience."
	ErrFailedDelete   = "Failed to delete experience."
)

// experienceView is the listing projection without the PDF blob
type experienceView struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Type          string `json:"type"`
	YearOfPassing int    `json:"year_of_passing"`
	Company       string `json:"company"`
	LinkedinURL   string `json:"linkedin_url"`
	Status        string `json:"status"`
}

func respondWithError(c *gin.Context, status int, message string) {
	response.Error(c, status, message)
}

// SubmitExperience accepts a placement experience write-up
// @Summary Submit a placement experience
// @Description Stores the write-up as a pending PDF for admin review
// @Tags Experiences
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Submitter name"
// @Param email formData string true "Submitter email"
// @Param type formData string true "placement or internship"
// @Param yearOfPassing formData int true "Year of passing"
// @Param company formData string true "Company"
// @Param linkedinUrl formData string false "LinkedIn profile URL"
// @Param pdfFile formData file true "Experience PDF"
// @Success 201 {object} map[string]interface{}
// @Failure 400,500 {object} map[string]string
// @Router /experiences [post]
func SubmitExperience(c *gin.Context) {
	year, _ := strconv.Atoi(c.PostForm("yearOfPassing"))
	experience := models.Experience{
		Name:          c.PostForm("name"),
		Email:         c.PostForm("email"),
		Type:          c.PostForm("type"),
		YearOfPassing: year,
		Company:       c.PostForm("company"),
		LinkedinURL:   c.PostForm("linkedinUrl"),
		Status:        models.ExperiencePending,
	}
	if experience.Name == "" || experience.Email == "" || experience.Type == "" ||
		experience.Company == "" || year == 0 {
		respondWithError(c, http.StatusBadRequest, ErrMissingFields)
		return
	}

	file, err := c.FormFile("pdfFile")
	if err != nil {
		respondWithError(c, http.StatusBadRequest, ErrPdfRequired)
		return
	}
	if file.Size > config.DefaultUploadLimits.PdfMaxBytes {
		respondWithError(c, http.StatusBadRequest, ErrPdfTooLarge)
		return
	}
	opened, err := file.Open()
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedSubmit)
		return
	}
	defer opened.Close()
	if experience.PdfFile, err = io.ReadAll(opened); err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedSubmit)
		return
	}

	if err := database.DB.Create(&experience).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedSubmit)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Experience submitted for review.", "experienceId": experience.ID})
}

// GetApprovedExperiences lists the approved experiences without blobs
// @Summary List approved experiences
// @Tags Experiences
// @Produce json
// @Success 200 {array} experienceView
// @Failure 500 {object} map[string]string
// @Router /experiences [get]
func GetApprovedExperiences(c *gin.Context) {
	listByStatus(c, models.ExperienceApproved)
}

// GetPendingExperiences lists experiences awaiting review
// @Summary List pending experiences (organizer only)
// @Tags Experiences
// @Produce json
// @Security Bearer
// @Success 200 {array} experienceView
// @Failure 500 {object} map[string]string
// @Router /experiences/pending [get]
func GetPendingExperiences(c *gin.Context) {
	listByStatus(c, models.ExperiencePending)
}

// GetExperiencePdf serves the PDF of an approved experience
// @Summary Download an experience PDF
// @Tags Experiences
// @Produce application/pdf
// @Param id path int true "Experience ID"
// @Success 200 {file} binary
// @Failure 400,404 {object} map[string]string
// @Router /experiences/pdf/{id} [get]
func GetExperiencePdf(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidID)
		return
	}

	var experience models.Experience
	if err := database.DB.First(&experience, "id = ?", id).Error; err != nil {
		respondWithError(c, http.StatusNotFound, ErrNotFound)
		return
	}
	if experience.Status != models.ExperienceApproved {
		respondWithError(c, http.StatusNotFound, ErrNotFound)
		return
	}

	c.Header("Content-Disposition", `inline; filename="experience.pdf"`)
	c.Data(http.StatusOK, "application/pdf", experience.PdfFile)
}

// UpdateExperienceStatus approves or rejects a pending experience
// @Summary Approve or reject an experience (organizer only)
// @Tags Experiences
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Experience ID"
// @Param request body map[string]string true "New status"
// @Success 200 {object} map[string]string
// @Failure 400,404,500 {object} map[string]string
// @Router /experiences/{id}/status [put]
func UpdateExperienceStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidID)
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil ||
		(req.Status != models.ExperienceApproved && req.Status != models.ExperienceRejected) {
		respondWithError(c, http.StatusBadRequest, ErrInvalidStatus)
		return
	}

	result := database.DB.Model(&models.Experience{}).Where("id = ?", id).Update("status", req.Status)
	if result.Error != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedUpdate)
		return
	}
	if result.RowsAffected == 0 {
		respondWithError(c, http.StatusNotFound, ErrNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Experience " + req.Status + "."})
}

// DeleteExperience removes an experience
// @Summary Delete an experience (organizer only)
// @Tags Experiences
// @Produce json
// @Security Bearer
// @Param id path int true "Experience ID"
// @Success 200 {object} map[string]string
// @Failure 400,404,500 {object} map[string]string
// @Router /experiences/{id} [delete]
func DeleteExperience(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidID)
		return
	}

	result := database.DB.Delete(&models.Experience{}, id)
	if result.Error != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedDelete)
		return
	}
	if result.RowsAffected == 0 {
		respondWithError(c, http.StatusNotFound, ErrNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Experience deleted."})
}

func listByStatus(c *gin.Context, status string) {
	var views []experienceView
	err := database.DB.Model(&models.Experience{}).
		Where("status = ?", status).
		Order("id DESC").
		Scan(&views).Error
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedFetch)
		return
	}
	if views == nil {
		views = []experienceView{}
	}
	c.JSON(http.StatusOK, views)
}
