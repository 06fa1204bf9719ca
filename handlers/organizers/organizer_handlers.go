package organizers

import (
	"net/http"

	"symposium-api/database"
	"symposium-api/models"
	"symposium-api/utils"
	"symposium-api/utils/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

// Constants for error messages
const (
	ErrInvalidPayload = "Invalid request payload."
	ErrEmailTaken     = "An organizer with this email already exists."
	ErrFailedCreate   = "Failed to create organizer."
	ErrFailedFetch    = "Failed to fetch organizers."
)

// CreateOrganizerRequest is the payload for adding an organizer
type CreateOrganizerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Mobile   string `json:"mobile" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

func respondWithError(c *gin.Context, status int, message string) {
	response.Error(c, status, message)
}

// CreateOrganizer adds an organizer account
// @Summary Create an organizer (organizer only)
// @Tags Organizers
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body CreateOrganizerRequest true "New organizer"
// @Success 201 {object} map[string]interface{}
// @Failure 400,409,500 {object} map[string]string
// @Router /organizers [post]
func CreateOrganizer(c *gin.Context) {
	var req CreateOrganizerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidPayload)
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedCreate)
		return
	}

	organizer := models.Organizer{
		Name:     req.Name,
		Email:    req.Email,
		Mobile:   req.Mobile,
		Password: hashed,
	}
	result := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(&organizer)
	if result.Error != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedCreate)
		return
	}
	if result.RowsAffected == 0 {
		respondWithError(c, http.StatusConflict, ErrEmailTaken)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Organizer created.", "organizerId": organizer.ID})
}

// GetOrganizers lists all organizer accounts
// @Summary List organizers (organizer only)
// @Tags Organizers
// @Produce json
// @Security Bearer
// @Success 200 {array} models.Organizer
// @Failure 500 {object} map[string]string
// @Router /organizers [get]
func GetOrganizers(c *gin.Context) {
	var organizers []models.Organizer
	if err := database.DB.Find(&organizers).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedFetch)
		return
	}
	c.JSON(http.StatusOK, organizers)
}
