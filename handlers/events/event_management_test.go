package events

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"symposium-api/database"
	"symposium-api/models"

	"github.com/gin-gonic/gin"
)

func setupEventsRouter() *gin.Engine {
	r := gin.New()
	r.POST("/events", CreateEvent)
	r.GET("/events", GetAllEvents)
	r.GET("/events/:id", GetEvent)
	r.PUT("/events/:id", UpdateEvent)
	r.DELETE("/events/:id", DeleteEvent)
	return r
}

const eventPayload = `{
	"symposiumName": "Enigma",
	"eventName": "Coding",
	"eventCategory": "technical",
	"eventDescription": "desc",
	"numberOfRounds": 2,
	"teamOrIndividual": "individual",
	"location": "Hall A",
	"registrationFees": 500,
	"coordinatorName": "C",
	"coordinatorContactNo": "1234567890",
	"coordinatorMail": "c@test.com",
	"lastDateForRegistration": "2026-09-01",
	"rounds": [
		{"roundNumber": 1, "roundDetails": "prelims", "roundDateTime": "2026-09-05 10:00"},
		{"roundNumber": 2, "roundDetails": "finals", "roundDateTime": "2026-09-05 14:00"}
	]
}`

func TestCreateEventPersistsRounds(t *testing.T) {
	setupTestDB(t)
	r := setupEventsRouter()

	req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(eventPayload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var event models.EnigmaEvent
	if err := database.DB.Preload("Rounds").First(&event, "event_name = ?", "Coding").Error; err != nil {
		t.Fatalf("failed to load created event: %v", err)
	}
	if len(event.Rounds) != 2 {
		t.Fatalf("expected 2 rounds, got %d", len(event.Rounds))
	}
}

func TestCreateEventRejectsUnknownSymposium(t *testing.T) {
	setupTestDB(t)
	r := setupEventsRouter()

	payload := strings.Replace(eventPayload, `"Enigma"`, `"Unknown"`, 1)
	req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestGetAllEventsMergesBothSymposia(t *testing.T) {
	setupTestDB(t)
	r := setupEventsRouter()
	seedEventWithRegistrations(t) // one Enigma event

	carte := models.CarteBlancheEvent{EventCore: models.EventCore{
		EventName: "Quiz", EventCategory: "cultural", EventDescription: "d",
		NumberOfRounds: 1, TeamOrIndividual: "team", Location: "Hall B",
		RegistrationFees: 300, CoordinatorName: "C", CoordinatorContactNo: "1",
		CoordinatorMail: "c@test.com", LastDateForRegistration: "2026-09-01",
	}}
	if err := database.DB.Create(&carte).Error; err != nil {
		t.Fatalf("failed to seed event: %v", err)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/events", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var views []EventView
	if err := json.Unmarshal(w.Body.Bytes(), &views); err != nil {
		t.Fatalf("failed to decode listing: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected 2 events across symposia, got %d", len(views))
	}
	names := map[string]string{}
	for _, v := range views {
		names[v.EventName] = v.SymposiumName
	}
	if names["Coding"] != models.SymposiumEnigma || names["Quiz"] != models.SymposiumCarteblanche {
		t.Errorf("unexpected symposium tags: %v", names)
	}
}

func TestUpdateEventReplacesRounds(t *testing.T) {
	setupTestDB(t)
	r := setupEventsRouter()
	event := seedEventWithRegistrations(t)

	payload := strings.Replace(eventPayload, `"rounds": [
		{"roundNumber": 1, "roundDetails": "prelims", "roundDateTime": "2026-09-05 10:00"},
		{"roundNumber": 2, "roundDetails": "finals", "roundDateTime": "2026-09-05 14:00"}
	]`, `"rounds": [{"roundNumber": 1, "roundDetails": "single final", "roundDateTime": "2026-09-06 10:00"}]`, 1)

	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/events/%d", event.ID), strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var rounds []models.EnigmaRound
	database.DB.Where("event_id = ?", event.ID).Find(&rounds)
	if len(rounds) != 1 || rounds[0].RoundDetails != "single final" {
		t.Fatalf("expected rounds replaced with the single final, got %+v", rounds)
	}
}

func TestDeleteEventRemovesRounds(t *testing.T) {
	setupTestDB(t)
	r := setupEventsRouter()
	event := seedEventWithRegistrations(t)
	database.DB.Create(&models.EnigmaRound{RoundCore: models.RoundCore{
		EventID: event.ID, RoundNumber: 1, RoundDetails: "prelims", RoundDateTime: "2026-09-05 10:00",
	}})

	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/events/%d?symposium=Enigma", event.ID), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var eventCount, roundCount int64
	database.DB.Model(&models.EnigmaEvent{}).Count(&eventCount)
	database.DB.Model(&models.EnigmaRound{}).Where("event_id = ?", event.ID).Count(&roundCount)
	if eventCount != 0 || roundCount != 0 {
		t.Errorf("expected event and rounds gone, got %d events %d rounds", eventCount, roundCount)
	}

	req = httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/events/%d?symposium=Enigma", event.ID), nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for a second delete, got %d", w.Code)
	}
}
