package events

import (
	"io"
	"net/http"
	"strconv"

	"symposium-api/config"
	"symposium-api/database"
	"symposium-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UploadEventPoster stores the poster image of an event
// @Summary Upload an event poster (organizer only)
// @Tags Events
// @Accept multipart/form-data
// @Produce json
// @Security Bearer
// @Param id path int true "Event ID"
// @Param symposium query string true "Symposium name"
// @Param poster formData file true "Poster image"
// @Success 200 {object} map[string]string
// @Failure 400,404,500 {object} map[string]string
// @Router /events/{id}/poster [post]
func UploadEventPoster(c *gin.Context) {
	eventID, symposium, ok := eventRef(c)
	if !ok {
		return
	}

	file, err := c.FormFile("poster")
	if err != nil {
		respondWithError(c, http.StatusBadRequest, ErrPosterRequired)
		return
	}
	if file.Size > config.DefaultUploadLimits.PosterMaxBytes {
		respondWithError(c, http.StatusBadRequest, ErrPosterTooLarge)
		return
	}
	opened, err := file.Open()
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedUpdate)
		return
	}
	defer opened.Close()
	blob, err := io.ReadAll(opened)
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedUpdate)
		return
	}

	if !setPoster(c, symposium, eventID, blob) {
		return
	}

	invalidateEventsCache()
	c.JSON(http.StatusOK, gin.H{"message": "Poster uploaded successfully."})
}

// GetEventPoster serves the raw poster image of an event
// @Summary Get an event poster
// @Tags Events
// @Produce image/jpeg
// @Param id path int true "Event ID"
// @Param symposium query string true "Symposium name"
// @Success 200 {file} binary
// @Failure 400,404 {object} map[string]string
// @Router /events/{id}/poster [get]
func GetEventPoster(c *gin.Context) {
	eventID, symposium, ok := eventRef(c)
	if !ok {
		return
	}

	blob, ok := loadPoster(c, symposium, eventID)
	if !ok {
		return
	}
	if len(blob) == 0 {
		respondWithError(c, http.StatusNotFound, "Event has no poster.")
		return
	}

	c.Data(http.StatusOK, http.DetectContentType(blob), blob)
}

// DeleteEventPoster clears the poster of an event
// @Summary Delete an event poster (organizer only)
// @Tags Events
// @Produce json
// @Security Bearer
// @Param id path int true "Event ID"
// @Param symposium query string true "Symposium name"
// @Success 200 {object} map[string]string
// @Failure 400,404,500 {object} map[string]string
// @Router /events/{id}/poster [delete]
func DeleteEventPoster(c *gin.Context) {
	eventID, symposium, ok := eventRef(c)
	if !ok {
		return
	}

	if !setPoster(c, symposium, eventID, nil) {
		return
	}

	invalidateEventsCache()
	c.JSON(http.StatusOK, gin.H{"message": "Poster removed successfully."})
}

// eventRef parses the event id path param and symposium query param
func eventRef(c *gin.Context) (uint, string, bool) {
	eventID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidEventID)
		return 0, "", false
	}
	symposium := c.Query("symposium")
	if !models.ValidSymposium(symposium) {
		respondWithError(c, http.StatusBadRequest, ErrInvalidSymposium)
		return 0, "", false
	}
	return uint(eventID), symposium, true
}

func setPoster(c *gin.Context, symposium string, eventID uint, blob []byte) bool {
	var result *gorm.DB
	if symposium == models.SymposiumEnigma {
		result = database.DB.Model(&models.EnigmaEvent{}).Where("id = ?", eventID).Update("poster_image", blob)
	} else {
		result = database.DB.Model(&models.CarteBlancheEvent{}).Where("id = ?", eventID).Update("poster_image", blob)
	}
	if result.Error != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedUpdate)
		return false
	}
	if result.RowsAffected == 0 {
		respondWithError(c, http.StatusNotFound, ErrEventNotFound)
		return false
	}
	return true
}

func loadPoster(c *gin.Context, symposium string, eventID uint) ([]byte, bool) {
	var blob []byte
	var err error
	if symposium == models.SymposiumEnigma {
		var event models.EnigmaEvent
		err = database.DB.Select("poster_image").First(&event, "id = ?", eventID).Error
		blob = event.PosterImage
	} else {
		var event models.CarteBlancheEvent
		err = database.DB.Select("poster_image").First(&event, "id = ?", eventID).Error
		blob = event.PosterImage
	}
	if err != nil {
		respondWithError(c, http.StatusNotFound, ErrEventNotFound)
		return nil, false
	}
	return blob, true
}
