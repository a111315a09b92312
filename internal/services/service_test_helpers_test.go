package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/harborview/leavedesk/internal/db"
	"github.com/harborview/leavedesk/internal/models"
	"golang.org/x/crypto/bcrypt"
)

func newServiceTestRepos(t *testing.T) *db.Repositories {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "leavedesk-services-test.db")
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

	return db.NewRepositories(database)
}

func createServiceTestUser(t *testing.T, repos *db.Repositories, email string, role string, managerID *uint) models.User {
	t.Helper()

	passwordHash, err := bcrypt.GenerateFromPassword([]byte("StrongPass1"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash test password: %v", err)
	}
	user := models.User{
		Email:        email,
		PasswordHash: string(passwordHash),
		FirstName:    "Test",
		LastName:     "User",
		Role:         role,
		ManagerID:    managerID,
		CreatedAt:    time.Now().UTC(),
	}
	if err := repos.Users.Create(&user); err != nil {
		t.Fatalf("create test user %s: %v", email, err)
	}
	return user
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()

	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("parse test date %q: %v", value, err)
	}
	return parsed
}
