package events

import (
	"symposium-api/models"
	"symposium-api/utils/response"

	"github.com/gin-gonic/gin"
)

// Constants for error messages
const (
	ErrInvalidEventID      = "Invalid event ID."
	ErrInvalidSymposium    = "Invalid symposium name."
	ErrInvalidPayload      = "Invalid request payload."
	ErrInvalidRoundNumber  = "Round number must be between 1 and 3."
	ErrInvalidRoundStatus  = "Round status must be 0 (not eligible) or 1 (eligible)."
	ErrPreviousRoundOpen   = "Previous round is still pending for one or more participants."
	ErrEventNotFound       = "Event not found."
	ErrUserNotFound        = "User not found."
	ErrAccountNotFound     = "Account not found."
	ErrAccountAssigned     = "Account already assigned to this event."
	ErrRegistrationMissing = "No registration found for this event."
	ErrPosterRequired      = "Poster file is required."
	ErrPosterTooLarge      = "Poster must not exceed 5MB."
	ErrFailedCreate        = "Failed to create event."
	ErrFailedFetch         = "Failed to fetch events."
	ErrFailedUpdate        = "Failed to update event."
	ErrFailedDelete        = "Failed to delete event."
	ErrFailedEligibility   = "Failed to update round eligibility."
	ErrFailedNotify        = "Failed to send round result notifications."
)

// RoundRequest is one round stage in an event create/update payload
type RoundRequest struct {
	RoundNumber   int    `json:"roundNumber" binding:"required"`
	RoundDetails  string `json:"roundDetails" binding:"required"`
	RoundDateTime string `json:"roundDateTime" binding:"required"`
}

// EventRequest is the create/update payload of an event with its rounds
type EventRequest struct {
	SymposiumName           string         `json:"symposiumName" binding:"required"`
	EventName               string         `json:"eventName" binding:"required"`
	EventCategory           string         `json:"eventCategory" binding:"required"`
	EventDescription        string         `json:"eventDescription" binding:"required"`
	NumberOfRounds          int            `json:"numberOfRounds" binding:"required"`
	TeamOrIndividual        string         `json:"teamOrIndividual" binding:"required"`
	Location                string         `json:"location" binding:"required"`
	RegistrationFees        float64        `json:"registrationFees"`
	CoordinatorName         string         `json:"coordinatorName" binding:"required"`
	CoordinatorContactNo    string         `json:"coordinatorContactNo" binding:"required"`
	CoordinatorMail         string         `json:"coordinatorMail" binding:"required,email"`
	LastDateForRegistration string         `json:"lastDateForRegistration" binding:"required"`
	Rounds                  []RoundRequest `json:"rounds"`
}

// EventView is one event in the merged public listing. The poster is
// inlined as base64 so the client needs no second request per card.
type EventView struct {
	models.EventCore
	SymposiumName string             `json:"symposiumName"`
	Rounds        []models.RoundCore `json:"rounds"`
	PosterImage   *string            `json:"posterImage"`
}

// RoundResult is one participant's outcome in an eligibility update
type RoundResult struct {
	UserEmail string             `json:"userEmail" binding:"required,email"`
	Status    models.RoundStatus `json:"status"`
}

// EligibilityRequest carries round outcomes in one of two shapes: a
// single participant named by userId, or a batch of results keyed by
// email. When results is present the single form is ignored.
type EligibilityRequest struct {
	UserID  uint               `json:"userId"`
	Status  models.RoundStatus `json:"status"`
	Results []RoundResult      `json:"results"`
}

// NotifyRequest carries the custom line for each result cohort
type NotifyRequest struct {
	EligibleMessage   string `json:"eligibleMessage"`
	IneligibleMessage string `json:"ineligibleMessage"`
}

// AssignAccountRequest links a payment account to an event
type AssignAccountRequest struct {
	AccountID uint `json:"accountId" binding:"required"`
}

// registrationRow is the admin per-event registration view
type registrationRow struct {
	ID                  uint               `json:"id"`
	UserName            string             `json:"userName"`
	UserEmail           string             `json:"userEmail"`
	MobileNumber        string             `json:"mobileNumber"`
	TransactionID       string             `json:"transactionId"`
	TransactionUsername string             `json:"transactionUsername"`
	TransactionTime     string             `json:"transactionTime"`
	TransactionDate     string             `json:"transactionDate"`
	TransactionAmount   float64            `json:"transactionAmount"`
	Round1              models.RoundStatus `json:"round1"`
	Round2              models.RoundStatus `json:"round2"`
	Round3              models.RoundStatus `json:"round3"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, status int, message string) {
	response.Error(c, status, message)
}
