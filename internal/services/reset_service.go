package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/harborview/leavedesk/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type ResetStore interface {
	Create(request *models.PasswordResetRequest) error
	FindByID(requestID uint) (models.PasswordResetRequest, error)
	ListPending() ([]models.PasswordResetRequest, error)
	ListAll() ([]models.PasswordResetRequest, error)
	MarkApproved(requestID uint, comment *string, now time.Time) error
	MarkRejected(requestID uint, comment *string) error
	MarkCompleted(requestID uint, now time.Time) error
}

type ResetUserStore interface {
	FindByID(userID uint) (models.User, error)
	FindByNormalizedEmail(email string) (models.User, error)
	UpdatePasswordHash(userID uint, passwordHash string) error
}

// ResetService runs the admin-gated password-reset workflow:
// Requested -> Approved -> Completed, or Requested -> Rejected.
type ResetService struct {
	resets ResetStore
	users  ResetUserStore
}

func NewResetService(resets ResetStore, users ResetUserStore) *ResetService {
	return &ResetService{resets: resets, users: users}
}

type ResetView struct {
	ID          uint       `json:"id"`
	Email       string     `json:"email"`
	UserID      uint       `json:"userId"`
	RequestedAt time.Time  `json:"requestedAt"`
	IsApproved  bool       `json:"isApproved"`
	IsRejected  bool       `json:"isRejected"`
	IsCompleted bool       `json:"isCompleted"`
	ApprovedAt  *time.Time `json:"approvedAt"`
	CompletedAt *time.Time `json:"completedAt"`
	Comment     *string    `json:"comment"`
	Status      string     `json:"status"`
}

// Request declines silently for unknown emails so the endpoint never reveals
// which addresses are registered.
func (service *ResetService) Request(email string) (bool, error) {
	normalizedEmail := strings.ToLower(strings.TrimSpace(email))
	if normalizedEmail == "" {
		return false, nil
	}

	user, err := service.users.FindByNormalizedEmail(normalizedEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("look up reset target: %w", err)
	}

	request := models.PasswordResetRequest{
		Email:       normalizedEmail,
		UserID:      user.ID,
		RequestedAt: time.Now().UTC(),
	}
	if err := service.resets.Create(&request); err != nil {
		return false, fmt.Errorf("create reset request: %w", err)
	}
	return true, nil
}

func (service *ResetService) ListPending() ([]ResetView, error) {
	requests, err := service.resets.ListPending()
	if err != nil {
		return nil, err
	}
	return buildResetViews(requests), nil
}

func (service *ResetService) ListAll() ([]ResetView, error) {
	requests, err := service.resets.ListAll()
	if err != nil {
		return nil, err
	}
	return buildResetViews(requests), nil
}

func (service *ResetService) Approve(requestID uint, comment *string) (bool, error) {
	request, err := service.resets.FindByID(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	if request.IsCompleted {
		return false, nil
	}

	if err := service.resets.MarkApproved(requestID, comment, time.Now().UTC()); err != nil {
		return false, err
	}
	return true, nil
}

// Reject declines once the request is approved or completed; the workflow
// only moves forward.
func (service *ResetService) Reject(requestID uint, comment *string) (bool, error) {
	request, err := service.resets.FindByID(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	if request.IsCompleted || request.IsApproved {
		return false, nil
	}

	if err := service.resets.MarkRejected(requestID, comment); err != nil {
		return false, err
	}
	return true, nil
}

// Complete stores the re-hashed credential on the linked user and closes the
// request. It declines unless the request is approved, not yet completed, and
// the linked user still exists.
func (service *ResetService) Complete(requestID uint, newPassword string) (bool, error) {
	if err := ValidatePasswordStrength(newPassword); err != nil {
		return false, err
	}

	request, err := service.resets.FindByID(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	if !request.IsApproved || request.IsCompleted {
		return false, nil
	}

	user, err := service.users.FindByID(request.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("hash new password: %w", err)
	}
	if err := service.users.UpdatePasswordHash(user.ID, string(passwordHash)); err != nil {
		return false, fmt.Errorf("store new password: %w", err)
	}
	if err := service.resets.MarkCompleted(requestID, time.Now().UTC()); err != nil {
		return false, err
	}
	return true, nil
}

func buildResetViews(requests []models.PasswordResetRequest) []ResetView {
	views := make([]ResetView, 0, len(requests))
	for _, request := range requests {
		views = append(views, ResetView{
			ID:          request.ID,
			Email:       request.Email,
			UserID:      request.UserID,
			RequestedAt: request.RequestedAt,
			IsApproved:  request.IsApproved,
			IsRejected:  request.IsRejected,
			IsCompleted: request.IsCompleted,
			ApprovedAt:  request.ApprovedAt,
			CompletedAt: request.CompletedAt,
			Comment:     request.Comment,
			Status:      request.StatusLabel(),
		})
	}
	return views
}
