package services

import (
	"fmt"
	"time"

	"symposium-api/metrics"
	"symposium-api/models"

	"gorm.io/gorm"
)

// EventSummary is the cross-symposium projection used when an event is
// referenced by bare id (registration ids are symposium-scoped, so the
// id resolves in exactly one of the two tables).
type EventSummary struct {
	ID               uint    `json:"id"`
	EventName        string  `json:"eventName"`
	RegistrationFees float64 `json:"registrationFees"`
	Symposium        string  `json:"symposium"`
}

// FindEventAcrossSymposia resolves an event id against both symposium
// tables with a UNION lookup
func FindEventAcrossSymposia(db *gorm.DB, eventID uint) (*EventSummary, error) {
	defer metrics.RecordDBOperation("select", "events", time.Now())

	var summary EventSummary
	err := db.Raw(`
        SELECT id, event_name, registration_fees, 'Enigma' AS symposium
        FROM enigma_events WHERE id = ?
        UNION
        SELECT id, event_name, registration_fees, 'Carteblanche' AS symposium
        FROM carte_blanche_events WHERE id = ?
    `, eventID, eventID).Scan(&summary).Error

	if err != nil {
		return nil, err
	}
	if summary.ID == 0 {
		return nil, fmt.Errorf("event with id %d not found", eventID)
	}
	return &summary, nil
}

// EventExists reports whether an event id resolves in either symposium table
func EventExists(db *gorm.DB, eventID uint) bool {
	_, err := FindEventAcrossSymposia(db, eventID)
	return err == nil
}

// EventWithRounds is the symposium-tagged event view with its rounds embedded
type EventWithRounds struct {
	models.EventCore
	SymposiumName string             `json:"symposiumName"`
	Rounds        []models.RoundCore `json:"rounds"`
}

// LoadEventWithRounds fetches one event and its rounds from the table
// belonging to the given symposium
func LoadEventWithRounds(db *gorm.DB, symposium string, eventID uint) (*EventWithRounds, error) {
	switch symposium {
	case models.SymposiumEnigma:
		var event models.EnigmaEvent
		if err := db.Preload("Rounds").First(&event, "id = ?", eventID).Error; err != nil {
			return nil, err
		}
		view := EventWithRounds{EventCore: event.EventCore, SymposiumName: symposium}
		for _, r := range event.Rounds {
			view.Rounds = append(view.Rounds, r.RoundCore)
		}
		return &view, nil
	case models.SymposiumCarteblanche:
		var event models.CarteBlancheEvent
		if err := db.Preload("Rounds").First(&event, "id = ?", eventID).Error; err != nil {
			return nil, err
		}
		view := EventWithRounds{EventCore: event.EventCore, SymposiumName: symposium}
		for _, r := range event.Rounds {
			view.Rounds = append(view.Rounds, r.RoundCore)
		}
		return &view, nil
	}
	return nil, fmt.Errorf("invalid symposium name: %s", symposium)
}
