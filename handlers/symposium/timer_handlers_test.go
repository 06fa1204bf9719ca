package symposium

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
	r.POST("/timer", SetTimer)
	r.GET("/timer", GetTimer)
	r.DELETE("/timer", ClearTimer)
	r.POST("/symposium/start", StartSymposium)
	r.POST("/symposium/stop", StopSymposium)
	r.GET("/symposium/status", GetStatus)
	return r
}

func postJSON(r *gin.Engine, url, payload string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, url, strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSetTimerKeepsSingleActiveRow(t *testing.T) {
	setupTestDB(t)
	r := setupRouter()

	if w := postJSON(r, "/timer", `{"end_time":"2026-09-01 09:00"}`); w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if w := postJSON(r, "/timer", `{"end_time":"2026-09-02 09:00"}`); w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var active []models.RegistrationTimer
	database.DB.Where("is_active = ?", true).Find(&active)
	if len(active) != 1 {
		t.Fatalf("expected exactly one active timer, got %d", len(active))
	}
	if active[0].EndTime != "2026-09-02 09:00" {
		t.Errorf("expected latest timer to be active, got %s", active[0].EndTime)
	}
}

func TestGetTimerAfterClear(t *testing.T) {
	setupTestDB(t)
	r := setupRouter()
	postJSON(r, "/timer", `{"end_time":"2026-09-01 09:00"}`)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/timer", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for active timer, got %d", w.Code)
	}

	del := httptest.NewRequest(http.MethodDelete, "/timer", nil)
	r.ServeHTTP(httptest.NewRecorder(), del)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/timer", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after clear, got %d", w.Code)
	}
}

func TestSymposiumStartStop(t *testing.T) {
	setupTestDB(t)
	r := setupRouter()
	database.DB.Create(&models.SymposiumStatus{SymposiumName: models.SymposiumEnigma})

	if w := postJSON(r, "/symposium/start", `{"symposiumName":"Enigma"}`); w.Code != http.StatusOK {
		t.Fatalf("start: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var status models.SymposiumStatus
	database.DB.First(&status, "symposium_name = ?", models.SymposiumEnigma)
	if !status.IsOpen {
		t.Error("expected symposium open after start")
	}

	if w := postJSON(r, "/symposium/stop", `{"symposiumName":"Enigma"}`); w.Code != http.StatusOK {
		t.Fatalf("stop: expected 200, got %d", w.Code)
	}
	database.DB.First(&status, "symposium_name = ?", models.SymposiumEnigma)
	if status.IsOpen {
		t.Error("expected symposium closed after stop")
	}

	if w := postJSON(r, "/symposium/start", `{"symposiumName":"Nope"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown symposium, got %d", w.Code)
	}
}
