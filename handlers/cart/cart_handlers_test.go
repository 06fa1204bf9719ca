package cart

import (
	"bytes"
	"fmt"
	"mime/multipart"
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
	r.POST("/cart", AddToCart)
	r.GET("/cart/:userId", GetCart)
	r.DELETE("/cart/:userId/:eventId", RemoveFromCart)
	r.POST("/cart/:userId/checkout", Checkout)
	return r
}

func seedUser(t *testing.T) models.User {
	t.Helper()
	user := models.User{FullName: "Test Student", Email: "alice@test.com", Password: "x"}
	if err := database.DB.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func seedEnigmaEvent(t *testing.T, name string, fee float64) models.EnigmaEvent {
	t.Helper()
	event := models.EnigmaEvent{EventCore: models.EventCore{
		EventName: name, EventCategory: "technical", EventDescription: "d",
		NumberOfRounds: 1, TeamOrIndividual: "individual", Location: "Hall A",
		RegistrationFees: fee, CoordinatorName: "C", CoordinatorContactNo: "1",
		CoordinatorMail: "c@test.com", LastDateForRegistration: "2026-09-01",
	}}
	if err := database.DB.Create(&event).Error; err != nil {
		t.Fatalf("failed to seed event: %v", err)
	}
	return event
}

func addToCart(r *gin.Engine, userID, eventID uint) *httptest.ResponseRecorder {
	payload := fmt.Sprintf(`{"userId":%d,"eventId":%d,"symposiumName":"Enigma"}`, userID, eventID)
	req := httptest.NewRequest(http.MethodPost, "/cart", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddToCartRejectsDuplicate(t *testing.T) {
	setupTestDB(t)
	r := setupRouter()
	user := seedUser(t)
	event := seedEnigmaEvent(t, "Coding", 500)

	if w := addToCart(r, user.ID, event.ID); w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if w := addToCart(r, user.ID, event.ID); w.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate, got %d", w.Code)
	}
}

func TestRemoveFromCartIsOwnershipScoped(t *testing.T) {
	setupTestDB(t)
	r := setupRouter()
	user := seedUser(t)
	event := seedEnigmaEvent(t, "Coding", 500)
	addToCart(r, user.ID, event.ID)

	// Another user's id cannot remove the row
	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/cart/%d/%d", user.ID+1, event.ID), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for foreign user id, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/cart/%d/%d", user.ID, event.ID), nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for owner, got %d", w.Code)
	}

	var count int64
	database.DB.Model(&models.CartItem{}).Count(&count)
	if count != 0 {
		t.Errorf("expected empty cart, found %d rows", count)
	}
}

func TestCheckoutConvertsCartToRegistrations(t *testing.T) {
	setupTestDB(t)
	r := setupRouter()
	user := seedUser(t)
	paid := seedEnigmaEvent(t, "Coding", 500)
	free := seedEnigmaEvent(t, "Workshop", 0)
	addToCart(r, user.ID, paid.ID)
	addToCart(r, user.ID, free.ID)

	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)
	for k, v := range map[string]string{
		"transactionId":       "TXN1",
		"transactionUsername": "student@upi",
		"transactionTime":     "10:30",
		"transactionDate":     "2026-08-20",
		"mobileNumber":        "9999999999",
	} {
		form.WriteField(k, v)
	}
	part, _ := form.CreateFormFile("transactionScreenshot", "proof.png")
	part.Write([]byte("fake image bytes"))
	form.Close()

	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/cart/%d/checkout", user.ID), body)
	req.Header.Set("Content-Type", form.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var paidReg models.Registration
	if err := database.DB.First(&paidReg, "event_id = ? AND user_email = ?", paid.ID, user.Email).Error; err != nil {
		t.Fatalf("expected a paid registration: %v", err)
	}
	if paidReg.TransactionAmount != 500 {
		t.Errorf("expected paid registration amount 500, got %.0f", paidReg.TransactionAmount)
	}

	var simpleCount int64
	database.DB.Model(&models.SimpleRegistration{}).
		Where("event_id = ? AND user_email = ?", free.ID, user.Email).
		Count(&simpleCount)
	if simpleCount != 1 {
		t.Errorf("expected one simple registration for the free event, got %d", simpleCount)
	}

	var cartCount int64
	database.DB.Model(&models.CartItem{}).Count(&cartCount)
	if cartCount != 0 {
		t.Errorf("expected cart cleared after checkout, found %d rows", cartCount)
	}
}

func TestCheckoutPaidItemsRequireProof(t *testing.T) {
	setupTestDB(t)
	r := setupRouter()
	user := seedUser(t)
	paid := seedEnigmaEvent(t, "Coding", 500)
	addToCart(r, user.ID, paid.ID)

	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)
	form.Close()

	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/cart/%d/checkout", user.ID), body)
	req.Header.Set("Content-Type", form.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without payment proof, got %d", w.Code)
	}

	var cartCount int64
	database.DB.Model(&models.CartItem{}).Count(&cartCount)
	if cartCount != 1 {
		t.Errorf("expected cart untouched on failed checkout, found %d rows", cartCount)
	}
}
