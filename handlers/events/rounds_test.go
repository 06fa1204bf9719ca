package events

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
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

func setupRoundsRouter() *gin.Engine {
	r := gin.New()
	r.POST("/events/:id/rounds/:roundNumber/eligible", SetRoundEligibility)
	r.POST("/events/:id/rounds/:roundNumber/notify", NotifyRoundResults)
	return r
}

func seedEventWithRegistrations(t *testing.T, emails ...string) models.EnigmaEvent {
	t.Helper()
	event := models.EnigmaEvent{EventCore: models.EventCore{
		EventName: "Coding", EventCategory: "technical", EventDescription: "d",
		NumberOfRounds: 3, TeamOrIndividual: "individual", Location: "Hall A",
		RegistrationFees: 500, CoordinatorName: "C", CoordinatorContactNo: "1",
		CoordinatorMail: "c@test.com", LastDateForRegistration: "2026-09-01",
	}}
	if err := database.DB.Create(&event).Error; err != nil {
		t.Fatalf("failed to seed event: %v", err)
	}
	for _, email := range emails {
		reg := models.Registration{
			Symposium: models.SymposiumEnigma, EventID: event.ID,
			UserName: email, UserEmail: email, TransactionID: "TXN-" + email,
			TransactionAmount: 500,
			Round1:            models.RoundPending, Round2: models.RoundPending, Round3: models.RoundPending,
		}
		if err := database.DB.Create(&reg).Error; err != nil {
			t.Fatalf("failed to seed registration: %v", err)
		}
	}
	return event
}

func postJSON(r *gin.Engine, url, payload string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, url, strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func roundState(t *testing.T, eventID uint, email string) models.Registration {
	t.Helper()
	var reg models.Registration
	if err := database.DB.First(&reg, "event_id = ? AND user_email = ?", eventID, email).Error; err != nil {
		t.Fatalf("failed to load registration: %v", err)
	}
	return reg
}

func TestSetRoundEligibilityIsIdempotent(t *testing.T) {
	setupTestDB(t)
	r := setupRoundsRouter()
	event := seedEventWithRegistrations(t, "a@test.com", "b@test.com")

	payload := `{"results":[{"userEmail":"a@test.com","status":1},{"userEmail":"b@test.com","status":0}]}`
	url := fmt.Sprintf("/events/%d/rounds/1/eligible", event.ID)

	for i := 0; i < 2; i++ {
		w := postJSON(r, url, payload)
		if w.Code != http.StatusOK {
			t.Fatalf("attempt %d: expected 200, got %d: %s", i+1, w.Code, w.Body.String())
		}
	}

	if got := roundState(t, event.ID, "a@test.com").Round1; got != models.RoundEligible {
		t.Errorf("expected a@test.com round1 eligible, got %d", got)
	}
	if got := roundState(t, event.ID, "b@test.com").Round1; got != models.RoundNotEligible {
		t.Errorf("expected b@test.com round1 not eligible, got %d", got)
	}
}

func TestSetRoundEligibilityRejectsPendingStatus(t *testing.T) {
	setupTestDB(t)
	r := setupRoundsRouter()
	event := seedEventWithRegistrations(t, "a@test.com")

	w := postJSON(r, fmt.Sprintf("/events/%d/rounds/1/eligible", event.ID),
		`{"results":[{"userEmail":"a@test.com","status":-1}]}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for status -1, got %d", w.Code)
	}
}

func TestSetRoundEligibilityEnforcesRoundOrder(t *testing.T) {
	setupTestDB(t)
	r := setupRoundsRouter()
	event := seedEventWithRegistrations(t, "a@test.com")

	// Round 2 before round 1 is decided
	w := postJSON(r, fmt.Sprintf("/events/%d/rounds/2/eligible", event.ID),
		`{"results":[{"userEmail":"a@test.com","status":1}]}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 while round 1 is pending, got %d: %s", w.Code, w.Body.String())
	}
	if got := roundState(t, event.ID, "a@test.com").Round2; got != models.RoundPending {
		t.Errorf("expected round2 unchanged, got %d", got)
	}

	// After round 1 eligibility, round 2 is allowed
	postJSON(r, fmt.Sprintf("/events/%d/rounds/1/eligible", event.ID),
		`{"results":[{"userEmail":"a@test.com","status":1}]}`)
	w = postJSON(r, fmt.Sprintf("/events/%d/rounds/2/eligible", event.ID),
		`{"results":[{"userEmail":"a@test.com","status":1}]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 after round 1 decided, got %d: %s", w.Code, w.Body.String())
	}
}

func TestSetRoundEligibilityAcceptsUserIDForm(t *testing.T) {
	setupTestDB(t)
	r := setupRoundsRouter()
	event := seedEventWithRegistrations(t, "a@test.com")
	user := models.User{FullName: "A", Email: "a@test.com", Password: "x"}
	if err := database.DB.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	url := fmt.Sprintf("/events/%d/rounds/1/eligible", event.ID)
	w := postJSON(r, url, fmt.Sprintf(`{"userId":%d,"status":1}`, user.ID))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for userId form, got %d: %s", w.Code, w.Body.String())
	}
	if got := roundState(t, event.ID, "a@test.com").Round1; got != models.RoundEligible {
		t.Errorf("expected round1 eligible via userId form, got %d", got)
	}

	if w := postJSON(r, url, `{"userId":9999,"status":1}`); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown userId, got %d", w.Code)
	}
}

type fakeMailer struct {
	mu    sync.Mutex
	sends []fakeSend
	fail  bool
}

type fakeSend struct {
	to       string
	round    int
	eligible bool
	message  string
}

func (f *fakeMailer) SendRoundResultEmail(to, eventName string, roundNumber int, eligible bool, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return fmt.Errorf("smtp unavailable")
	}
	f.sends = append(f.sends, fakeSend{to: to, round: roundNumber, eligible: eligible, message: message})
	return nil
}

func TestNotifyRoundResultsPartitionsByOutcome(t *testing.T) {
	setupTestDB(t)
	r := setupRoundsRouter()
	event := seedEventWithRegistrations(t, "a@test.com", "b@test.com", "c@test.com")

	postJSON(r, fmt.Sprintf("/events/%d/rounds/1/eligible", event.ID),
		`{"results":[{"userEmail":"a@test.com","status":1},{"userEmail":"b@test.com","status":0}]}`)

	mailer := &fakeMailer{}
	orig := newResultMailer
	newResultMailer = func() resultMailer { return mailer }
	defer func() { newResultMailer = orig }()

	w := postJSON(r, fmt.Sprintf("/events/%d/rounds/1/notify", event.ID),
		`{"eligibleMessage":"Congrats","ineligibleMessage":"Sorry"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	if len(mailer.sends) != 2 {
		t.Fatalf("expected 2 emails (pending participant skipped), got %d", len(mailer.sends))
	}
	outcomes := map[string]fakeSend{}
	for _, s := range mailer.sends {
		outcomes[s.to] = s
		if s.round != 1 {
			t.Errorf("expected round 1 in email, got %d", s.round)
		}
	}
	if got := outcomes["a@test.com"]; !got.eligible || got.message != "Congrats" {
		t.Errorf("expected eligible email with %q for a@test.com, got %+v", "Congrats", got)
	}
	if got, ok := outcomes["b@test.com"]; !ok || got.eligible || got.message != "Sorry" {
		t.Errorf("expected not-eligible email with %q for b@test.com, got %+v", "Sorry", got)
	}
	if _, ok := outcomes["c@test.com"]; ok {
		t.Errorf("pending participant c@test.com must not be emailed")
	}
}

func TestNotifyRoundResultsReportsFailures(t *testing.T) {
	setupTestDB(t)
	r := setupRoundsRouter()
	event := seedEventWithRegistrations(t, "a@test.com")

	postJSON(r, fmt.Sprintf("/events/%d/rounds/1/eligible", event.ID),
		`{"results":[{"userEmail":"a@test.com","status":1}]}`)

	mailer := &fakeMailer{fail: true}
	orig := newResultMailer
	newResultMailer = func() resultMailer { return mailer }
	defer func() { newResultMailer = orig }()

	w := postJSON(r, fmt.Sprintf("/events/%d/rounds/1/notify", event.ID), `{}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 even with send failures, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"failed":1`) {
		t.Errorf("expected failed count 1 in response, got %s", w.Body.String())
	}
}
