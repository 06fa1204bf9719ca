package events

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"symposium-api/database"
	"symposium-api/metrics"
	"symposium-api/models"
	"symposium-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	eventsCacheKey = "events:all"
	eventsCacheTTL = 2 * time.Minute
)

// CreateEvent creates an event with its rounds
// @Summary Create an event (organizer only)
// @Description Creates the event row and its rounds in the symposium-specific tables, atomically
// @Tags Events
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body EventRequest true "Event with rounds"
// @Success 201 {object} map[string]interface{}
// @Failure 400,500 {object} map[string]string
// @Router /events [post]
func CreateEvent(c *gin.Context) {
	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidPayload)
		return
	}
	if !models.ValidSymposium(req.SymposiumName) {
		respondWithError(c, http.StatusBadRequest, ErrInvalidSymposium)
		return
	}

	core := models.EventCore{
		EventName:               req.EventName,
		EventCategory:           req.EventCategory,
		EventDescription:        req.EventDescription,
		NumberOfRounds:          req.NumberOfRounds,
		TeamOrIndividual:        req.TeamOrIndividual,
		Location:                req.Location,
		RegistrationFees:        req.RegistrationFees,
		CoordinatorName:         req.CoordinatorName,
		CoordinatorContactNo:    req.CoordinatorContactNo,
		CoordinatorMail:         req.CoordinatorMail,
		LastDateForRegistration: req.LastDateForRegistration,
	}

	var eventID uint
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		switch req.SymposiumName {
		case models.SymposiumEnigma:
			event := models.EnigmaEvent{EventCore: core}
			for _, r := range req.Rounds {
				event.Rounds = append(event.Rounds, models.EnigmaRound{RoundCore: models.RoundCore{
					RoundNumber: r.RoundNumber, RoundDetails: r.RoundDetails, RoundDateTime: r.RoundDateTime,
				}})
			}
			if err := tx.Create(&event).Error; err != nil {
				return err
			}
			eventID = event.ID
		case models.SymposiumCarteblanche:
			event := models.CarteBlancheEvent{EventCore: core}
			for _, r := range req.Rounds {
				event.Rounds = append(event.Rounds, models.CarteBlancheRound{RoundCore: models.RoundCore{
					RoundNumber: r.RoundNumber, RoundDetails: r.RoundDetails, RoundDateTime: r.RoundDateTime,
				}})
			}
			if err := tx.Create(&event).Error; err != nil {
				return err
			}
			eventID = event.ID
		}
		return nil
	})
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedCreate)
		return
	}

	invalidateEventsCache()
	c.JSON(http.StatusCreated, gin.H{"message": "Event created successfully.", "eventId": eventID})
}

// GetAllEvents lists every event of both symposia
// @Summary List all events
// @Description Merged listing across both symposium tables with rounds embedded and posters inlined as base64 data URIs. Served from cache when warm.
// @Tags Events
// @Produce json
// @Success 200 {array} EventView
// @Failure 500 {object} map[string]string
// @Router /events [get]
func GetAllEvents(c *gin.Context) {
	ctx := context.Background()

	// Cache-aside: any Redis failure is treated as a miss
	if database.REDIS != nil {
		if cached, err := database.REDIS.Get(ctx, eventsCacheKey).Result(); err == nil {
			metrics.CacheHits.Inc()
			c.Data(http.StatusOK, "application/json", []byte(cached))
			return
		}
		metrics.CacheMisses.Inc()
	}

	var enigma []models.EnigmaEvent
	if err := database.DB.Preload("Rounds").Find(&enigma).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedFetch)
		return
	}
	var carte []models.CarteBlancheEvent
	if err := database.DB.Preload("Rounds").Find(&carte).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedFetch)
		return
	}

	views := make([]EventView, 0, len(enigma)+len(carte))
	for _, e := range enigma {
		view := EventView{EventCore: e.EventCore, SymposiumName: models.SymposiumEnigma, PosterImage: posterDataURI(e.PosterImage)}
		for _, r := range e.Rounds {
			view.Rounds = append(view.Rounds, r.RoundCore)
		}
		views = append(views, view)
	}
	for _, e := range carte {
		view := EventView{EventCore: e.EventCore, SymposiumName: models.SymposiumCarteblanche, PosterImage: posterDataURI(e.PosterImage)}
		for _, r := range e.Rounds {
			view.Rounds = append(view.Rounds, r.RoundCore)
		}
		views = append(views, view)
	}

	if database.REDIS != nil {
		if payload, err := json.Marshal(views); err == nil {
			database.REDIS.Set(ctx, eventsCacheKey, payload, eventsCacheTTL)
		}
	}

	c.JSON(http.StatusOK, views)
}

// GetEvent fetches one event with its rounds
// @Summary Get an event
// @Tags Events
// @Produce json
// @Param id path int true "Event ID"
// @Param symposium query string true "Symposium name"
// @Success 200 {object} services.EventWithRounds
// @Failure 400,404 {object} map[string]string
// @Router /events/{id} [get]
func GetEvent(c *gin.Context) {
	eventID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidEventID)
		return
	}
	symposium := c.Query("symposium")
	if !models.ValidSymposium(symposium) {
		respondWithError(c, http.StatusBadRequest, ErrInvalidSymposium)
		return
	}

	event, err := services.LoadEventWithRounds(database.DB, symposium, uint(eventID))
	if err != nil {
		respondWithError(c, http.StatusNotFound, ErrEventNotFound)
		return
	}

	c.JSON(http.StatusOK, event)
}

// UpdateEvent updates an event and replaces its rounds
// @Summary Update an event (organizer only)
// @Description Updates the event columns and replaces every round, atomically
// @Tags Events
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Event ID"
// @Param request body EventRequest true "Event with rounds"
// @Success 200 {object} map[string]string
// @Failure 400,404,500 {object} map[string]string
// @Router /events/{id} [put]
func UpdateEvent(c *gin.Context) {
	eventID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidEventID)
		return
	}
	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidPayload)
		return
	}
	if !models.ValidSymposium(req.SymposiumName) {
		respondWithError(c, http.StatusBadRequest, ErrInvalidSymposium)
		return
	}

	updates := map[string]interface{}{
		"event_name":                 req.EventName,
		"event_category":             req.EventCategory,
		"event_description":          req.EventDescription,
		"number_of_rounds":           req.NumberOfRounds,
		"team_or_individual":         req.TeamOrIndividual,
		"location":                   req.Location,
		"registration_fees":          req.RegistrationFees,
		"coordinator_name":           req.CoordinatorName,
		"coordinator_contact_no":     req.CoordinatorContactNo,
		"coordinator_mail":           req.CoordinatorMail,
		"last_date_for_registration": req.LastDateForRegistration,
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		switch req.SymposiumName {
		case models.SymposiumEnigma:
			result := tx.Model(&models.EnigmaEvent{}).Where("id = ?", eventID).Updates(updates)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
			if err := tx.Where("event_id = ?", eventID).Delete(&models.EnigmaRound{}).Error; err != nil {
				return err
			}
			for _, r := range req.Rounds {
				round := models.EnigmaRound{RoundCore: models.RoundCore{
					EventID: uint(eventID), RoundNumber: r.RoundNumber,
					RoundDetails: r.RoundDetails, RoundDateTime: r.RoundDateTime,
				}}
				if err := tx.Create(&round).Error; err != nil {
					return err
				}
			}
		case models.SymposiumCarteblanche:
			result := tx.Model(&models.CarteBlancheEvent{}).Where("id = ?", eventID).Updates(updates)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
			if err := tx.Where("event_id = ?", eventID).Delete(&models.CarteBlancheRound{}).Error; err != nil {
				return err
			}
			for _, r := range req.Rounds {
				round := models.CarteBlancheRound{RoundCore: models.RoundCore{
					EventID: uint(eventID), RoundNumber: r.RoundNumber,
					RoundDetails: r.RoundDetails, RoundDateTime: r.RoundDateTime,
				}}
				if err := tx.Create(&round).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err == gorm.ErrRecordNotFound {
		respondWithError(c, http.StatusNotFound, ErrEventNotFound)
		return
	}
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedUpdate)
		return
	}

	invalidateEventsCache()
	c.JSON(http.StatusOK, gin.H{"message": "Event updated successfully."})
}

// DeleteEvent removes an event and its rounds
// @Summary Delete an event (organizer only)
// @Tags Events
// @Produce json
// @Security Bearer
// @Param id path int true "Event ID"
// @Param symposium query string true "Symposium name"
// @Success 200 {object} map[string]string
// @Failure 400,404,500 {object} map[string]string
// @Router /events/{id} [delete]
func DeleteEvent(c *gin.Context) {
	eventID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidEventID)
		return
	}
	symposium := c.Query("symposium")
	if !models.ValidSymposium(symposium) {
		respondWithError(c, http.StatusBadRequest, ErrInvalidSymposium)
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		// Rounds are removed explicitly rather than relying on FK cascade
		switch symposium {
		case models.SymposiumEnigma:
			if err := tx.Where("event_id = ?", eventID).Delete(&models.EnigmaRound{}).Error; err != nil {
				return err
			}
			result := tx.Delete(&models.EnigmaEvent{}, eventID)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		case models.SymposiumCarteblanche:
			if err := tx.Where("event_id = ?", eventID).Delete(&models.CarteBlancheRound{}).Error; err != nil {
				return err
			}
			result := tx.Delete(&models.CarteBlancheEvent{}, eventID)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}
		return nil
	})
	if err == gorm.ErrRecordNotFound {
		respondWithError(c, http.StatusNotFound, ErrEventNotFound)
		return
	}
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedDelete)
		return
	}

	invalidateEventsCache()
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully."})
}

// posterDataURI encodes a poster blob as a base64 data URI, nil when unset
func posterDataURI(blob []byte) *string {
	if len(blob) == 0 {
		return nil
	}
	uri := fmt.Sprintf("data:%s;base64,%s", http.DetectContentType(blob), base64.StdEncoding.EncodeToString(blob))
	return &uri
}

// invalidateEventsCache drops the merged listing after any event mutation
func invalidateEventsCache() {
	if database.REDIS != nil {
		database.REDIS.Del(context.Background(), eventsCacheKey)
	}
}
