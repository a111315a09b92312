package models

import "time"

// PasswordResetRequest walks Requested -> Approved -> Completed, or
// Requested -> Rejected. The flags are a progression, not independent bits:
// at most one of approved/rejected is set before completion, and completion
// implies a prior approval.
type PasswordResetRequest struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Email       string     `gorm:"not null" json:"email"`
	UserID      uint       `gorm:"not null;index" json:"userId"`
	RequestedAt time.Time  `gorm:"not null" json:"requestedAt"`
	IsApproved  bool       `gorm:"not null;default:false" json:"isApproved"`
	IsRejected  bool       `gorm:"not null;default:false" json:"isRejected"`
	IsCompleted bool       `gorm:"not null;default:false" json:"isCompleted"`
	ApprovedAt  *time.Time `json:"approvedAt"`
	CompletedAt *time.Time `json:"completedAt"`
	Comment     *string    `json:"comment"`
}

// StatusLabel derives the admin-facing state string from the flag progression.
func (request PasswordResetRequest) StatusLabel() string {
	switch {
	case request.IsCompleted:
		return "completed"
	case request.IsApproved:
		return "approved"
	case request.IsRejected:
		return "rejected"
	default:
		return "pending"
	}
}
