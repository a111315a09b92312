package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/harborview/leavedesk/internal/models"
	"github.com/harborview/leavedesk/internal/security"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type DirectoryUserStore interface {
	FindByID(userID uint) (models.User, error)
	ExistsByNormalizedEmail(email string) (bool, error)
	ExistsManager(userID uint) (bool, error)
	Create(user *models.User) error
	ListAll() ([]models.User, error)
	ListByRole(role string) ([]models.User, error)
	UpdateByID(userID uint, updates map[string]any) (bool, error)
	DeleteAccountAndRelatedData(userID uint) (bool, error)
}

// UserService is the admin-facing directory: list accounts, add them with a
// one-time temporary password, edit, and delete with the explicit cascade.
type UserService struct {
	users DirectoryUserStore
}

func NewUserService(users DirectoryUserStore) *UserService {
	return &UserService{users: users}
}

type DirectoryEntry struct {
	ID        uint   `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	ManagerID *uint  `json:"managerId"`
}

type ManagerOption struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type UpsertUserInput struct {
	Email     string
	FirstName string
	LastName  string
	Role      string
	ManagerID *uint
}

func (service *UserService) ListAll() ([]DirectoryEntry, error) {
	users, err := service.users.ListAll()
	if err != nil {
		return nil, err
	}
	entries := make([]DirectoryEntry, 0, len(users))
	for _, user := range users {
		entries = append(entries, buildDirectoryEntry(user))
	}
	return entries, nil
}

// ListManagers feeds the registration form, so it is reachable without a
// token and exposes only name and email.
func (service *UserService) ListManagers() ([]ManagerOption, error) {
	managers, err := service.users.ListByRole(models.RoleManager)
	if err != nil {
		return nil, err
	}
	options := make([]ManagerOption, 0, len(managers))
	for _, manager := range managers {
		options = append(options, ManagerOption{
			ID:    manager.ID,
			Name:  manager.DisplayName(),
			Email: manager.Email,
		})
	}
	return options, nil
}

// Add creates an account on behalf of an admin. The generated temporary
// password is returned exactly once for out-of-band delivery.
func (service *UserService) Add(input UpsertUserInput) (DirectoryEntry, string, error) {
	email, err := NormalizeEmail(input.Email)
	if err != nil {
		return DirectoryEntry{}, "", err
	}
	if strings.TrimSpace(input.FirstName) == "" {
		return DirectoryEntry{}, "", fmt.Errorf("%w: firstName", ErrMissingField)
	}
	if strings.TrimSpace(input.LastName) == "" {
		return DirectoryEntry{}, "", fmt.Errorf("%w: lastName", ErrMissingField)
	}

	role := input.Role
	if role == "" {
		role = models.RoleEmployee
	}
	if !models.IsValidRole(role) {
		return DirectoryEntry{}, "", ErrInvalidRole
	}
	managerID, err := service.validateManagerLink(role, input.ManagerID)
	if err != nil {
		return DirectoryEntry{}, "", err
	}

	exists, err := service.users.ExistsByNormalizedEmail(email)
	if err != nil {
		return DirectoryEntry{}, "", fmt.Errorf("check directory email: %w", err)
	}
	if exists {
		return DirectoryEntry{}, "", ErrEmailExists
	}

	temporaryPassword, err := security.GenerateTemporaryPassword(12)
	if err != nil {
		return DirectoryEntry{}, "", fmt.Errorf("generate temporary password: %w", err)
	}
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(temporaryPassword), bcrypt.DefaultCost)
	if err != nil {
		return DirectoryEntry{}, "", fmt.Errorf("hash temporary password: %w", err)
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(passwordHash),
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Role:         role,
		ManagerID:    managerID,
		CreatedAt:    time.Now().UTC(),
	}
	if err := service.users.Create(&user); err != nil {
		return DirectoryEntry{}, "", ErrEmailExists
	}
	return buildDirectoryEntry(user), temporaryPassword, nil
}

// Edit re-validates the manager-link invariant and returns false when the
// account does not exist.
func (service *UserService) Edit(userID uint, input UpsertUserInput) (DirectoryEntry, bool, error) {
	if _, err := service.users.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DirectoryEntry{}, false, nil
		}
		return DirectoryEntry{}, false, err
	}

	email, err := NormalizeEmail(input.Email)
	if err != nil {
		return DirectoryEntry{}, false, err
	}
	role := input.Role
	if !models.IsValidRole(role) {
		return DirectoryEntry{}, false, ErrInvalidRole
	}
	managerID, err := service.validateManagerLink(role, input.ManagerID)
	if err != nil {
		return DirectoryEntry{}, false, err
	}

	updates := map[string]any{
		"email":      email,
		"first_name": strings.TrimSpace(input.FirstName),
		"last_name":  strings.TrimSpace(input.LastName),
		"role":       role,
		"manager_id": managerID,
	}
	found, err := service.users.UpdateByID(userID, updates)
	if err != nil || !found {
		return DirectoryEntry{}, found, err
	}

	updated, err := service.users.FindByID(userID)
	if err != nil {
		return DirectoryEntry{}, false, err
	}
	return buildDirectoryEntry(updated), true, nil
}

func (service *UserService) Delete(userID uint) (bool, error) {
	return service.users.DeleteAccountAndRelatedData(userID)
}

func (service *UserService) validateManagerLink(role string, managerID *uint) (*uint, error) {
	if !models.RequiresManagerLink(role) {
		return nil, nil
	}
	if managerID == nil {
		return nil, nil
	}
	exists, err := service.users.ExistsManager(*managerID)
	if err != nil {
		return nil, fmt.Errorf("check manager reference: %w", err)
	}
	if !exists {
		return nil, ErrInvalidManager
	}
	return managerID, nil
}

func buildDirectoryEntry(user models.User) DirectoryEntry {
	return DirectoryEntry{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Role:      user.Role,
		ManagerID: user.ManagerID,
	}
}
