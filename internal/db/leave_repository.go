package db

import (
	"time"

	"github.com/harborview/leavedesk/internal/models"
	"gorm.io/gorm"
)

type LeaveRepository struct {
	database *gorm.DB
}

func NewLeaveRepository(database *gorm.DB) *LeaveRepository {
	return &LeaveRepository{database: database}
}

func (repo *LeaveRepository) Create(request *models.LeaveRequest) error {
	return repo.database.Create(request).Error
}

func (repo *LeaveRepository) FindWithOwner(requestID uint) (models.LeaveRequest, error) {
	var request models.LeaveRequest
	if err := repo.database.Preload("User").First(&request, requestID).Error; err != nil {
		return models.LeaveRequest{}, err
	}
	return request, nil
}

func (repo *LeaveRepository) ListForUser(userID uint) ([]models.LeaveRequest, error) {
	requests := make([]models.LeaveRequest, 0)
	if err := repo.database.Preload("User").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (repo *LeaveRepository) ListPendingForManager(managerID uint) ([]models.LeaveRequest, error) {
	return repo.listForManager(managerID, true)
}

func (repo *LeaveRepository) ListAllForManager(managerID uint) ([]models.LeaveRequest, error) {
	return repo.listForManager(managerID, false)
}

func (repo *LeaveRepository) listForManager(managerID uint, pendingOnly bool) ([]models.LeaveRequest, error) {
	query := repo.database.Preload("User").
		Joins("JOIN users ON users.id = leave_requests.user_id").
		Where("users.manager_id = ?", managerID)
	if pendingOnly {
		query = query.Where("leave_requests.status = ?", models.LeaveStatusPending)
	}

	requests := make([]models.LeaveRequest, 0)
	if err := query.
		Order("leave_requests.created_at DESC, leave_requests.id DESC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (repo *LeaveRepository) ListAll() ([]models.LeaveRequest, error) {
	requests := make([]models.LeaveRequest, 0)
	if err := repo.database.Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (repo *LeaveRepository) ListAllForOwner(ownerID uint) ([]models.LeaveRequest, error) {
	requests := make([]models.LeaveRequest, 0)
	if err := repo.database.Where("user_id = ?", ownerID).Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// TransitionFromPending performs the status change as a compare-and-swap on
// status = Pending, so two concurrent reviews cannot both win and terminal
// states never transition again.
func (repo *LeaveRepository) TransitionFromPending(requestID uint, status string, comment *string, reviewerID uint, now time.Time) (bool, error) {
	result := repo.database.Model(&models.LeaveRequest{}).
		Where("id = ? AND status = ?", requestID, models.LeaveStatusPending).
		Updates(map[string]any{
			"status":           status,
			"manager_comments": comment,
			"reviewed_by_id":   reviewerID,
			"reviewed_at":      now,
			"updated_at":       now,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// DeletePendingOwnedBy removes the request only while it is still Pending and
// belongs to the caller; the row count tells the two apart from success.
func (repo *LeaveRepository) DeletePendingOwnedBy(requestID uint, ownerID uint) (bool, error) {
	result := repo.database.
		Where("id = ? AND user_id = ? AND status = ?", requestID, ownerID, models.LeaveStatusPending).
		Delete(&models.LeaveRequest{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
