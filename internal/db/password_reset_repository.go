package db

import (
	"time"

	"github.com/harborview/leavedesk/internal/models"
	"gorm.io/gorm"
)

type PasswordResetRepository struct {
	database *gorm.DB
}

func NewPasswordResetRepository(database *gorm.DB) *PasswordResetRepository {
	return &PasswordResetRepository{database: database}
}

func (repo *PasswordResetRepository) Create(request *models.PasswordResetRequest) error {
	return repo.database.Create(request).Error
}

func (repo *PasswordResetRepository) FindByID(requestID uint) (models.PasswordResetRequest, error) {
	var request models.PasswordResetRequest
	if err := repo.database.First(&request, requestID).Error; err != nil {
		return models.PasswordResetRequest{}, err
	}
	return request, nil
}

func (repo *PasswordResetRepository) ListPending() ([]models.PasswordResetRequest, error) {
	requests := make([]models.PasswordResetRequest, 0)
	if err := repo.database.
		Where("is_approved = ? AND is_rejected = ? AND is_completed = ?", false, false, false).
		Order("requested_at DESC, id DESC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (repo *PasswordResetRepository) ListAll() ([]models.PasswordResetRequest, error) {
	requests := make([]models.PasswordResetRequest, 0)
	if err := repo.database.
		Order("requested_at DESC, id DESC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (repo *PasswordResetRepository) MarkApproved(requestID uint, comment *string, now time.Time) error {
	updates := map[string]any{
		"is_approved": true,
		"approved_at": now,
	}
	if comment != nil {
		updates["comment"] = comment
	}
	return repo.database.Model(&models.PasswordResetRequest{}).
		Where("id = ?", requestID).
		Updates(updates).Error
}

func (repo *PasswordResetRepository) MarkRejected(requestID uint, comment *string) error {
	updates := map[string]any{
		"is_rejected": true,
	}
	if comment != nil {
		updates["comment"] = comment
	}
	return repo.database.Model(&models.PasswordResetRequest{}).
		Where("id = ?", requestID).
		Updates(updates).Error
}

func (repo *PasswordResetRepository) MarkCompleted(requestID uint, now time.Time) error {
	return repo.database.Model(&models.PasswordResetRequest{}).
		Where("id = ?", requestID).
		Updates(map[string]any{
			"is_completed": true,
			"completed_at": now,
		}).Error
}
