package cli

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/harborview/leavedesk/internal/db"
	"github.com/harborview/leavedesk/internal/security"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RunResetPasswordCommand is the operator break-glass path when the admin-gated
// reset workflow itself is locked out (for example, the only admin account).
// It issues a temporary password directly against the store.
func RunResetPasswordCommand(dbPath string, email string) error {
	normalizedEmail := strings.ToLower(strings.TrimSpace(email))
	if normalizedEmail == "" {
		return errors.New("email is required")
	}
	if _, err := mail.ParseAddress(normalizedEmail); err != nil {
		return fmt.Errorf("invalid email address: %w", err)
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	users := db.NewUserRepository(database)
	user, err := users.FindByNormalizedEmail(normalizedEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("user %s not found", normalizedEmail)
		}
		return fmt.Errorf("load user: %w", err)
	}

	temporaryPassword, err := security.GenerateTemporaryPassword(12)
	if err != nil {
		return fmt.Errorf("generate temporary password: %w", err)
	}
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(temporaryPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash temporary password: %w", err)
	}

	user.PasswordHash = string(passwordHash)
	if err := users.Save(&user); err != nil {
		return fmt.Errorf("update user password: %w", err)
	}

	fmt.Printf("Password reset for %s\n", user.Email)
	fmt.Printf("Temporary password: %s\n", temporaryPassword)
	fmt.Println("Share it out of band and ask the user to change it after login.")

	return nil
}
