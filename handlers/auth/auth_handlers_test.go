package auth

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"symposium-api/database"
	"symposium-api/models"
	"symposium-api/utils"

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
	RegisterRoutes(r.Group(""))
	return r
}

func postJSON(r *gin.Engine, url, payload string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, url, strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const signupPayload = `{
	"fullName": "Alice",
	"email": "alice@test.com",
	"password": "secret123",
	"college": "Test College",
	"yearOfPassing": 2027
}`

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	setupTestDB(t)
	r := setupRouter()

	if w := postJSON(r, "/auth/signup", signupPayload); w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if w := postJSON(r, "/auth/signup", signupPayload); w.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate email, got %d", w.Code)
	}

	var count int64
	database.DB.Model(&models.User{}).Count(&count)
	if count != 1 {
		t.Errorf("expected one user row, got %d", count)
	}
}

func TestLoginIssuesTokenAndCookie(t *testing.T) {
	setupTestDB(t)
	r := setupRouter()
	postJSON(r, "/auth/signup", signupPayload)

	w := postJSON(r, "/auth/login", `{"email":"alice@test.com","password":"secret123"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["token"] == nil || resp["token"] == "" {
		t.Errorf("expected a token in the response body")
	}
	if resp["role"] != "student" {
		t.Errorf("expected role student, got %v", resp["role"])
	}

	cookieSet := false
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "auth_token" && cookie.Value != "" && cookie.HttpOnly {
			cookieSet = true
		}
	}
	if !cookieSet {
		t.Errorf("expected an HTTP-only auth_token cookie")
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	setupTestDB(t)
	r := setupRouter()
	postJSON(r, "/auth/signup", signupPayload)

	if w := postJSON(r, "/auth/login", `{"email":"alice@test.com","password":"wrong"}`); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %d", w.Code)
	}
	if w := postJSON(r, "/auth/login", `{"email":"nobody@test.com","password":"secret123"}`); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown email, got %d", w.Code)
	}
}

func TestLoginPrefersOrganizerBranch(t *testing.T) {
	setupTestDB(t)
	r := setupRouter()

	hashed := mustHash(t, "orgsecret")
	organizer := models.Organizer{Name: "Org", Email: "org@test.com", Mobile: "1", Password: hashed}
	if err := database.DB.Create(&organizer).Error; err != nil {
		t.Fatalf("failed to seed organizer: %v", err)
	}

	w := postJSON(r, "/auth/login", `{"email":"org@test.com","password":"orgsecret"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["role"] != "organizer" {
		t.Errorf("expected role organizer, got %v", resp["role"])
	}
}

type fakeOtpMailer struct {
	lastTo   string
	lastCode string
}

func (f *fakeOtpMailer) SendOTPEmail(to, otp string) error {
	f.lastTo = to
	f.lastCode = otp
	return nil
}

func TestPasswordResetFlow(t *testing.T) {
	setupTestDB(t)
	r := setupRouter()
	postJSON(r, "/auth/signup", signupPayload)

	mailer := &fakeOtpMailer{}
	orig := newOtpMailer
	newOtpMailer = func() otpMailer { return mailer }
	defer func() { newOtpMailer = orig }()

	if w := postJSON(r, "/auth/send-otp", `{"email":"alice@test.com"}`); w.Code != http.StatusOK {
		t.Fatalf("send-otp: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if mailer.lastTo != "alice@test.com" || len(mailer.lastCode) != 6 {
		t.Fatalf("expected a six digit code mailed to the user, got %q to %q", mailer.lastCode, mailer.lastTo)
	}

	if w := postJSON(r, "/auth/verify-otp", `{"email":"alice@test.com","otp":"000000"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("wrong otp: expected 400, got %d", w.Code)
	}
	verify := fmt.Sprintf(`{"email":"alice@test.com","otp":"%s"}`, mailer.lastCode)
	if w := postJSON(r, "/auth/verify-otp", verify); w.Code != http.StatusOK {
		t.Fatalf("valid otp: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	mismatch := fmt.Sprintf(`{"email":"alice@test.com","otp":"%s","newPassword":"newsecret1","confirmPassword":"other"}`, mailer.lastCode)
	if w := postJSON(r, "/auth/reset-password", mismatch); w.Code != http.StatusBadRequest {
		t.Fatalf("mismatched confirmation: expected 400, got %d", w.Code)
	}

	reset := fmt.Sprintf(`{"email":"alice@test.com","otp":"%s","newPassword":"newsecret1","confirmPassword":"newsecret1"}`, mailer.lastCode)
	if w := postJSON(r, "/auth/reset-password", reset); w.Code != http.StatusOK {
		t.Fatalf("reset: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	// OTP is consumed and the new password works
	if w := postJSON(r, "/auth/reset-password", reset); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for consumed otp, got %d", w.Code)
	}
	if w := postJSON(r, "/auth/login", `{"email":"alice@test.com","password":"newsecret1"}`); w.Code != http.StatusOK {
		t.Fatalf("login with new password: expected 200, got %d", w.Code)
	}
	if w := postJSON(r, "/auth/login", `{"email":"alice@test.com","password":"secret123"}`); w.Code != http.StatusUnauthorized {
		t.Fatalf("login with old password: expected 401, got %d", w.Code)
	}
}

func TestSendOTPUnknownEmail(t *testing.T) {
	setupTestDB(t)
	r := setupRouter()

	mailer := &fakeOtpMailer{}
	orig := newOtpMailer
	newOtpMailer = func() otpMailer { return mailer }
	defer func() { newOtpMailer = orig }()

	if w := postJSON(r, "/auth/send-otp", `{"email":"nobody@test.com"}`); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if mailer.lastTo != "" {
		t.Errorf("expected no email sent for unknown account")
	}
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hashed, err := utils.HashPassword(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	return hashed
}
