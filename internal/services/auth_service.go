package services

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/harborview/leavedesk/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidManager     = errors.New("manager reference must point to a manager")
	ErrMissingField       = errors.New("missing required field")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrInvalidRole        = errors.New("invalid role")
)

type AuthUserStore interface {
	ExistsByNormalizedEmail(email string) (bool, error)
	ExistsManager(userID uint) (bool, error)
	FindByNormalizedEmail(email string) (models.User, error)
	Create(user *models.User) error
}

type AuthService struct {
	users AuthUserStore
}

func NewAuthService(users AuthUserStore) *AuthService {
	return &AuthService{users: users}
}

type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      string
	ManagerID *uint
}

// AuthResult carries the identity fields the boundary needs to mint a token.
// The token itself is issued at the API layer.
type AuthResult struct {
	User models.User
}

func NormalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", fmt.Errorf("%w: email", ErrMissingField)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return "", ErrInvalidEmail
	}
	return email, nil
}

func (service *AuthService) Register(input RegisterInput) (AuthResult, error) {
	email, err := NormalizeEmail(input.Email)
	if err != nil {
		return AuthResult{}, err
	}
	if strings.TrimSpace(input.Password) == "" {
		return AuthResult{}, fmt.Errorf("%w: password", ErrMissingField)
	}
	if strings.TrimSpace(input.FirstName) == "" {
		return AuthResult{}, fmt.Errorf("%w: firstName", ErrMissingField)
	}
	if strings.TrimSpace(input.LastName) == "" {
		return AuthResult{}, fmt.Errorf("%w: lastName", ErrMissingField)
	}
	if err := ValidatePasswordStrength(input.Password); err != nil {
		return AuthResult{}, err
	}

	role := input.Role
	if role == "" {
		role = models.RoleEmployee
	}
	if !models.IsValidRole(role) {
		return AuthResult{}, ErrInvalidRole
	}

	managerID, err := service.validateManagerLink(role, input.ManagerID)
	if err != nil {
		return AuthResult{}, err
	}

	exists, err := service.users.ExistsByNormalizedEmail(email)
	if err != nil {
		return AuthResult{}, fmt.Errorf("check registration email: %w", err)
	}
	if exists {
		return AuthResult{}, ErrEmailExists
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResult{}, fmt.Errorf("hash password: %w", err)
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
		// The unique index is the last line of defense against a racing
		// registration with the same email.
		return AuthResult{}, ErrEmailExists
	}
	return AuthResult{User: user}, nil
}

// Login never reveals whether the email or the password was wrong.
func (service *AuthService) Login(email string, password string) (AuthResult, error) {
	normalizedEmail := strings.ToLower(strings.TrimSpace(email))
	if normalizedEmail == "" || password == "" {
		return AuthResult{}, ErrInvalidCredentials
	}

	user, err := service.users.FindByNormalizedEmail(normalizedEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AuthResult{}, ErrInvalidCredentials
		}
		return AuthResult{}, fmt.Errorf("load user for login: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return AuthResult{}, ErrInvalidCredentials
	}
	return AuthResult{User: user}, nil
}

func (service *AuthService) validateManagerLink(role string, managerID *uint) (*uint, error) {
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
