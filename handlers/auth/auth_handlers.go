package auth

import (
	"errors"
	"net/http"
	"time"

	"symposium-api/database"
	"symposium-api/middleware"
	"symposium-api/models"
	"symposium-api/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const tokenTTL = 24 * time.Hour

// Signup creates a student account
// @Summary Sign up
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body SignupRequest true "New account"
// @Success 201 {object} map[string]interface{}
// @Failure 400,409,500 {object} map[string]string
// @Router /auth/signup [post]
func Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidPayload)
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedSignup)
		return
	}

	user := models.User{
		FullName:      req.FullName,
		Email:         req.Email,
		Password:      hashed,
		Dob:           req.Dob,
		Mobile:        req.Mobile,
		College:       req.College,
		Department:    req.Department,
		YearOfPassing: req.YearOfPassing,
		State:         req.State,
		District:      req.District,
	}
	result := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(&user)
	if result.Error != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedSignup)
		return
	}
	if result.RowsAffected == 0 {
		respondWithError(c, http.StatusConflict, ErrEmailTaken)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Account created successfully.", "userId": user.ID})
}

// Login authenticates an organizer or a student
// @Summary Log in
// @Description Tries the organizer table first, then students. Issues a JWT in the response body and as an HTTP-only cookie.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400,401,404,500 {object} map[string]string
// @Router /auth/login [post]
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidPayload)
		return
	}

	// Organizers take precedence so an organizer email never falls
	// through to a student session
	var organizer models.Organizer
	err := database.DB.First(&organizer, "email = ?", req.Email).Error
	if err == nil {
		if !utils.CheckPasswordHash(req.Password, organizer.Password) {
			respondWithError(c, http.StatusUnauthorized, ErrWrongPassword)
			return
		}
		issueToken(c, organizer.ID, middleware.RoleOrganizer, gin.H{
			"id":    organizer.ID,
			"name":  organizer.Name,
			"email": organizer.Email,
		})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		respondWithError(c, http.StatusInternalServerError, ErrFailedLogin)
		return
	}

	var user models.User
	err = database.DB.First(&user, "email = ?", req.Email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondWithError(c, http.StatusNotFound, ErrEmailNotFound)
		return
	}
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedLogin)
		return
	}
	if !utils.CheckPasswordHash(req.Password, user.Password) {
		respondWithError(c, http.StatusUnauthorized, ErrWrongPassword)
		return
	}

	issueToken(c, user.ID, middleware.RoleStudent, gin.H{
		"id":       user.ID,
		"fullName": user.FullName,
		"email":    user.Email,
		"college":  user.College,
	})
}

// Logout clears the auth cookie
// @Summary Log out
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /auth/logout [post]
func Logout(c *gin.Context) {
	c.SetCookie("auth_token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out."})
}

func issueToken(c *gin.Context, id uint, role string, principal gin.H) {
	token, err := middleware.GenerateToken(id, role, tokenTTL)
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedLogin)
		return
	}

	c.SetCookie("auth_token", token, int(tokenTTL.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful.",
		"token":   token,
		"role":    role,
		"user":    principal,
	})
}
