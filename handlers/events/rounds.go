package events

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"symposium-api/database"
	"symposium-api/models"
	"symposium-api/realtime"
	"symposium-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// resultMailer sends round outcome emails. Swapped out in tests.
type resultMailer interface {
	SendRoundResultEmail(to, eventName string, roundNumber int, eligible bool, message string) error
}

var newResultMailer = func() resultMailer { return services.NewEmailService() }

var errPreviousRoundPending = errors.New("previous round still pending")

// SetRoundEligibility records per-participant outcomes of a round
// @Summary Set round eligibility (organizer only)
// @Description Marks participants eligible (1) or not eligible (0) for the round. Accepts a single participant as {userId, status} or a batch as {results: [{userEmail, status}]}. Round N can only be decided for participants already eligible in round N-1. Idempotent per participant.
// @Tags Events
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Event ID"
// @Param roundNumber path int true "Round number (1-3)"
// @Param request body EligibilityRequest true "Per-participant outcomes"
// @Success 200 {object} map[string]interface{}
// @Failure 400,404,500 {object} map[string]string
// @Router /events/{id}/rounds/{roundNumber}/eligible [post]
func SetRoundEligibility(c *gin.Context) {
	eventID, roundNumber, ok := roundRef(c)
	if !ok {
		return
	}

	var req EligibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidPayload)
		return
	}
	if len(req.Results) == 0 {
		if req.UserID == 0 {
			respondWithError(c, http.StatusBadRequest, ErrInvalidPayload)
			return
		}
		email, err := services.UserEmailByID(database.DB, req.UserID)
		if err != nil {
			respondWithError(c, http.StatusNotFound, ErrUserNotFound)
			return
		}
		req.Results = []RoundResult{{UserEmail: email, Status: req.Status}}
	}
	for _, r := range req.Results {
		if !r.Status.Decided() {
			respondWithError(c, http.StatusBadRequest, ErrInvalidRoundStatus)
			return
		}
	}

	if !services.EventExists(database.DB, eventID) {
		respondWithError(c, http.StatusNotFound, ErrEventNotFound)
		return
	}

	column := fmt.Sprintf("round%d", roundNumber)
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		for _, r := range req.Results {
			var registration models.Registration
			if err := tx.First(&registration, "event_id = ? AND user_email = ?", eventID, r.UserEmail).Error; err != nil {
				return fmt.Errorf("no registration for %s: %w", r.UserEmail, err)
			}

			// Rounds are decided in order
			if roundNumber > 1 && registration.Round(roundNumber-1) != models.RoundEligible {
				return fmt.Errorf("%w for %s", errPreviousRoundPending, r.UserEmail)
			}

			if err := tx.Model(&registration).Update(column, r.Status).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, errPreviousRoundPending) {
			respondWithError(c, http.StatusBadRequest, ErrPreviousRoundOpen)
			return
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(c, http.StatusNotFound, ErrRegistrationMissing)
			return
		}
		respondWithError(c, http.StatusInternalServerError, ErrFailedEligibility)
		return
	}

	realtime.BroadcastUpdate(realtime.RegistrationUpdate{
		EventID:    eventID,
		UpdateType: realtime.UpdateEligibility,
		Payload:    gin.H{"roundNumber": roundNumber, "updated": len(req.Results)},
	})

	c.JSON(http.StatusOK, gin.H{"message": "Round eligibility updated.", "updated": len(req.Results)})
}

// NotifyRoundResults emails each decided participant their round outcome
// @Summary Notify round results (organizer only)
// @Description Sends one email per decided participant: eligibleMessage to the eligible, ineligibleMessage to the rest. Pending participants are skipped.
// @Tags Events
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Event ID"
// @Param roundNumber path int true "Round number (1-3)"
// @Param request body NotifyRequest false "Per-cohort messages"
// @Success 200 {object} map[string]interface{}
// @Failure 400,404,500 {object} map[string]string
// @Router /events/{id}/rounds/{roundNumber}/notify [post]
func NotifyRoundResults(c *gin.Context) {
	eventID, roundNumber, ok := roundRef(c)
	if !ok {
		return
	}

	var req NotifyRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, ErrInvalidPayload)
			return
		}
	}

	event, err := services.FindEventAcrossSymposia(database.DB, eventID)
	if err != nil {
		respondWithError(c, http.StatusNotFound, ErrEventNotFound)
		return
	}

	var registrations []models.Registration
	if err := database.DB.Where("event_id = ?", eventID).Find(&registrations).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedNotify)
		return
	}

	mailer := newResultMailer()
	notified, failed, skipped := 0, 0, 0
	for _, registration := range registrations {
		status := registration.Round(roundNumber)
		if !status.Decided() {
			skipped++
			continue
		}

		eligible := status == models.RoundEligible
		message := req.IneligibleMessage
		if eligible {
			message = req.EligibleMessage
		}
		if err := mailer.SendRoundResultEmail(registration.UserEmail, event.EventName, roundNumber, eligible, message); err != nil {
			log.Printf("round result email to %s failed: %v", registration.UserEmail, err)
			failed++
			continue
		}
		notified++
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Round result notifications dispatched.",
		"notified": notified,
		"failed":   failed,
		"skipped":  skipped,
	})
}

// roundRef parses the event id and round number path params
func roundRef(c *gin.Context) (uint, int, bool) {
	eventID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidEventID)
		return 0, 0, false
	}
	roundNumber, err := strconv.Atoi(c.Param("roundNumber"))
	if err != nil || roundNumber < 1 || roundNumber > 3 {
		respondWithError(c, http.StatusBadRequest, ErrInvalidRoundNumber)
		return 0, 0, false
	}
	return uint(eventID), roundNumber, true
}
