package verification

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"symposium-api/database"
	"symposium-api/models"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupTestDB(t *testing.T) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	database.DB = db
}

func setupRouter() *gin.Engine {
	r := gin.New()
	r.POST("/verification", SetVerification)
	r.GET("/verification/user/:userId", GetUserVerifications)
	return r
}

func seedUserAndEvent(t *testing.T) (models.User, models.EnigmaEvent) {
	t.Helper()
	user := models.User{FullName: "Test Student", Email: "alice@test.com", Password: "x"}
	if err := database.DB.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	event := models.EnigmaEvent{EventCore: models.EventCore{
		EventName: "Coding", EventCategory: "technical", EventDescription: "d",
		NumberOfRounds: 1, TeamOrIndividual: "individual", Location: "Hall A",
		RegistrationFees: 500, CoordinatorName: "C", CoordinatorContactNo: "1",
		CoordinatorMail: "c@test.com", LastDateForRegistration: "2026-09-01",
	}}
	if err := database.DB.Create(&event).Error; err != nil {
		t.Fatalf("failed to seed event: %v", err)
	}
	return user, event
}

func postVerification(r *gin.Engine, userID, eventID uint, verified bool) *httptest.ResponseRecorder {
	payload := fmt.Sprintf(`{"userId":%d,"eventId":%d,"verified":%t}`, userID, eventID, verified)
	req := httptest.NewRequest(http.MethodPost, "/verification", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSetVerificationUpsertsSingleRow(t *testing.T) {
	setupTestDB(t)
	r := setupRouter()
	user, event := seedUserAndEvent(t)

	if w := postVerification(r, user.ID, event.ID, true); w.Code != http.StatusCreated {
		t.Fatalf("first decision: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if w := postVerification(r, user.ID, event.ID, false); w.Code != http.StatusOK {
		t.Fatalf("second decision: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var rows []models.VerifiedRegistration
	database.DB.Find(&rows)
	if len(rows) != 1 {
		t.Fatalf("expected exactly one verification row, got %d", len(rows))
	}
	if rows[0].Verified {
		t.Errorf("expected latest decision (false) to win, got verified=true")
	}
}

func TestSetVerificationRejectsUnknownUser(t *testing.T) {
	setupTestDB(t)
	r := setupRouter()
	_, event := seedUserAndEvent(t)

	if w := postVerification(r, 999, event.ID, true); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown user, got %d", w.Code)
	}
}

func TestSetVerificationRejectsUnknownEvent(t *testing.T) {
	setupTestDB(t)
	r := setupRouter()
	user, _ := seedUserAndEvent(t)

	if w := postVerification(r, user.ID, 999, true); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown event, got %d", w.Code)
	}
}
