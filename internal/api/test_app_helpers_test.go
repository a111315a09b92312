package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/harborview/leavedesk/internal/db"
	"github.com/harborview/leavedesk/internal/models"
	"golang.org/x/crypto/bcrypt"
)

const apiTestPassword = "StrongPass1"

func newAPITestApp(t *testing.T) (*fiber.App, *db.Repositories) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "leavedesk-api-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	handler := NewHandler(database, "api-test-secret", time.Hour)
	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, handler.repositories
}

func createAPITestUser(t *testing.T, repos *db.Repositories, email string, role string, managerID *uint) models.User {
	t.Helper()

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(apiTestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash test password: %v", err)
	}
	user := models.User{
		Email:        email,
		PasswordHash: string(passwordHash),
		FirstName:    "Api",
		LastName:     "Tester",
		Role:         role,
		ManagerID:    managerID,
		CreatedAt:    time.Now().UTC(),
	}
	if err := repos.Users.Create(&user); err != nil {
		t.Fatalf("create test user %s: %v", email, err)
	}
	return user
}

func performJSON(t *testing.T, app *fiber.App, method string, path string, body any, token string) *http.Response {
	t.Helper()

	var request *http.Request
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		request = httptest.NewRequest(method, path, bytes.NewReader(payload))
		request.Header.Set("Content-Type", "application/json")
	} else {
		request = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	t.Cleanup(func() {
		_ = response.Body.Close()
	})
	return response
}

func decodeResponse(t *testing.T, response *http.Response, target any) {
	t.Helper()

	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

func responseError(t *testing.T, response *http.Response) string {
	t.Helper()

	var body struct {
		Error string `json:"error"`
	}
	decodeResponse(t, response, &body)
	return body.Error
}

func uintToString(value uint) string {
	return strconv.FormatUint(uint64(value), 10)
}

func loginForToken(t *testing.T, app *fiber.App, email string, password string) string {
	t.Helper()

	response := performJSON(t, app, http.MethodPost, "/api/auth/login", fiber.Map{
		"email":    email,
		"password": password,
	}, "")
	if response.StatusCode != http.StatusOK {
		t.Fatalf("login %s: expected status 200, got %d", email, response.StatusCode)
	}
	var payload authPayload
	decodeResponse(t, response, &payload)
	if payload.Token == "" {
		t.Fatalf("login %s: expected a token", email)
	}
	return payload.Token
}
