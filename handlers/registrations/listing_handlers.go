package registrations

import (
	"net/http"
	"strconv"

	"symposium-api/database"
	"symposium-api/services"

	"github.com/gin-gonic/gin"
)

// GetAllRegistrations lists every paid registration with verification state
// @Summary List all registrations (organizer only)
// @Description Every paid registration across both symposia, joined with the verification record when one exists
// @Tags Registrations
// @Produce json
// @Security Bearer
// @Success 200 {array} AdminRegistrationRow
// @Failure 500 {object} map[string]string
// @Router /registrations/all [get]
func GetAllRegistrations(c *gin.Context) {
	var rows []AdminRegistrationRow
	err := database.DB.Raw(`
		SELECT r.id, r.symposium, r.event_id, r.user_name, r.user_email,
		       r.mobile_number, r.transaction_id, r.transaction_username,
		       r.transaction_time, r.transaction_date, r.transaction_amount,
		       r.round1, r.round2, r.round3,
		       vr.user_id AS user_id, vr.verified AS verified
		FROM registrations r
		LEFT JOIN users u ON u.email = r.user_email
		LEFT JOIN verified_registrations vr
		       ON vr.user_id = u.id AND vr.event_id = r.event_id
		ORDER BY r.id`).Scan(&rows).Error
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedFetchAll)
		return
	}

	c.JSON(http.StatusOK, rows)
}

// GetEventRegistrations lists verified participants of one event
// @Summary List verified registrations of an event
// @Description Verified paid and free registrations of one event, merged. Payment fields are null for free rows; a blank email or college surfaces as "N/A".
// @Tags Registrations
// @Produce json
// @Param eventId path int true "Event ID"
// @Success 200 {array} VerifiedRegistrationRow
// @Failure 400,500 {object} map[string]string
// @Router /registrations/event/{eventId} [get]
func GetEventRegistrations(c *gin.Context) {
	eventID, err := strconv.ParseUint(c.Param("eventId"), 10, 64)
	if err != nil {
		respondWithError(c, http.StatusBadRequest, "Invalid event ID.")
		return
	}

	var paid []VerifiedRegistrationRow
	err = database.DB.Raw(`
		SELECT u.full_name AS user_name, u.email, u.college,
		       r.transaction_id, r.transaction_username, r.transaction_time,
		       r.transaction_date, r.transaction_amount
		FROM registrations r
		JOIN users u ON u.email = r.user_email
		JOIN verified_registrations vr
		     ON vr.user_id = u.id AND vr.event_id = r.event_id
		WHERE r.event_id = ? AND vr.verified = true`, eventID).Scan(&paid).Error
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedFetchEventRegs)
		return
	}

	var free []VerifiedRegistrationRow
	err = database.DB.Raw(`
		SELECT u.full_name AS user_name, u.email, u.college
		FROM enigma_non_workshop_registrations r
		JOIN users u ON u.email = r.user_email
		JOIN verified_registrations vr
		     ON vr.user_id = u.id AND vr.event_id = r.event_id
		WHERE r.event_id = ? AND vr.verified = true`, eventID).Scan(&free).Error
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedFetchEventRegs)
		return
	}

	rows := append(paid, free...)
	if rows == nil {
		rows = []VerifiedRegistrationRow{}
	}
	for i := range rows {
		if rows[i].Email == "" {
			rows[i].Email = "N/A"
		}
		if rows[i].College == "" {
			rows[i].College = "N/A"
		}
	}
	c.JSON(http.StatusOK, rows)
}

// GetUserRegistrations lists a user's registrations with event details
// @Summary List a user's registrations
// @Description Paid and free registrations of one user. Free rows carry -1 for every round. Each row embeds its event with rounds, or null if the event was deleted.
// @Tags Registrations
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {array} map[string]interface{}
// @Failure 400,404,500 {object} map[string]string
// @Router /registrations/user/{userId} [get]
func GetUserRegistrations(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidUserID)
		return
	}

	email, err := services.UserEmailByID(database.DB, uint(userID))
	if err != nil {
		respondWithError(c, http.StatusNotFound, ErrUserNotFound)
		return
	}

	rows, err := userRows(email)
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedFetchUserRegs)
		return
	}

	c.JSON(http.StatusOK, attachEvents(rows))
}

// GetRegistrationsByEmail lists a user's registrations looked up by email
// @Summary List registrations by email
// @Tags Registrations
// @Produce json
// @Param userEmail path string true "User email"
// @Success 200 {array} map[string]interface{}
// @Failure 500 {object} map[string]string
// @Router /registrations/by-email/{userEmail} [get]
func GetRegistrationsByEmail(c *gin.Context) {
	rows, err := userRows(c.Param("userEmail"))
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedFetchByEmail)
		return
	}

	c.JSON(http.StatusOK, attachEvents(rows))
}

// GetVerifiedEvents lists events a user is verified for
// @Summary List a user's verified events
// @Description Event summaries of every registration the organizers have verified for this user
// @Tags Registrations
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {array} services.EventSummary
// @Failure 400,500 {object} map[string]string
// @Router /registrations/verified/{userId} [get]
func GetVerifiedEvents(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidUserID)
		return
	}

	var events []services.EventSummary
	err = database.DB.Raw(`
		SELECT e.id, e.event_name, e.registration_fees, 'Enigma' AS symposium
		FROM enigma_events e
		JOIN verified_registrations vr ON vr.event_id = e.id
		WHERE vr.user_id = ? AND vr.verified = true
		UNION
		SELECT e.id, e.event_name, e.registration_fees, 'Carteblanche' AS symposium
		FROM carte_blanche_events e
		JOIN verified_registrations vr ON vr.event_id = e.id
		WHERE vr.user_id = ? AND vr.verified = true`, userID, userID).Scan(&events).Error
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedFetchVerified)
		return
	}

	if events == nil {
		events = []services.EventSummary{}
	}
	c.JSON(http.StatusOK, events)
}

// userRows merges a user's paid and free registration rows. Free rows
// have no elimination rounds, surfaced as -1 (pending/none) on the wire.
func userRows(email string) ([]userRegistrationRow, error) {
	var rows []userRegistrationRow
	err := database.DB.Raw(`
		SELECT id, event_id, user_email, round1, round2, round3, symposium
		FROM registrations WHERE user_email = ?
		UNION
		SELECT id, event_id, user_email,
		       -1 AS round1, -1 AS round2, -1 AS round3,
		       'Enigma' AS symposium
		FROM enigma_non_workshop_registrations WHERE user_email = ?`,
		email, email).Scan(&rows).Error
	return rows, err
}

// attachEvents decorates each row with its event and rounds. A deleted
// event yields a null event rather than dropping the registration row.
func attachEvents(rows []userRegistrationRow) []gin.H {
	out := make([]gin.H, 0, len(rows))
	for _, row := range rows {
		entry := gin.H{
			"id":        row.ID,
			"eventId":   row.EventID,
			"userEmail": row.UserEmail,
			"round1":    row.Round1,
			"round2":    row.Round2,
			"round3":    row.Round3,
			"symposium": row.Symposium,
		}
		event, err := services.LoadEventWithRounds(database.DB, row.Symposium, row.EventID)
		if err != nil {
			entry["event"] = nil
		} else {
			entry["event"] = event
		}
		out = append(out, entry)
	}
	return out
}
