package models

import "time"

const (
	LeaveStatusPending  = "Pending"
	LeaveStatusApproved = "Approved"
	LeaveStatusRejected = "Rejected"
)

// LeaveRequest rows are owned by their user; deleting a user removes them
// explicitly in the same transaction (see UserRepository.DeleteAccountAndRelatedData).
type LeaveRequest struct {
	ID              uint       `gorm:"primaryKey"`
	UserID          uint       `gorm:"not null;index"`
	User            User       `gorm:"foreignKey:UserID"`
	StartDate       time.Time  `gorm:"not null"`
	EndDate         time.Time  `gorm:"not null"`
	Reason          string     `gorm:"not null"`
	Status          string     `gorm:"not null;default:Pending;index"`
	ManagerComments *string    `gorm:""`
	ReviewedByID    *uint      `gorm:""`
	ReviewedAt      *time.Time `gorm:""`
	CreatedAt       time.Time  `gorm:"not null"`
	UpdatedAt       time.Time  `gorm:"not null"`
}

func IsReviewableStatus(status string) bool {
	return status == LeaveStatusApproved || status == LeaveStatusRejected
}
