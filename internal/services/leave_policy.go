package services

import (
	"errors"
	"time"

	"github.com/harborview/leavedesk/internal/models"
)

var ErrInvalidDateRange = errors.New("invalid date range")

// NormalizeLeaveDate drops the time-of-day component and pins the date to UTC.
// All leave dates are stored in this canonical form.
func NormalizeLeaveDate(value time.Time) time.Time {
	year, month, day := value.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func ValidateLeaveRange(startDate time.Time, endDate time.Time) error {
	if NormalizeLeaveDate(startDate).After(NormalizeLeaveDate(endDate)) {
		return ErrInvalidDateRange
	}
	return nil
}

// LeaveDayCount counts calendar days inclusive of both endpoints, clamped at
// zero for inverted ranges that predate the creation-time validation.
func LeaveDayCount(startDate time.Time, endDate time.Time) int {
	start := NormalizeLeaveDate(startDate)
	end := NormalizeLeaveDate(endDate)
	days := int(end.Sub(start).Hours()/24) + 1
	if days < 0 {
		return 0
	}
	return days
}

// CanReviewLeave is the single authorization decision for moving a request out
// of Pending: the reviewer must hold the Manager role and the owner must be
// one of their direct reports.
func CanReviewLeave(reviewer *models.User, owner *models.User) bool {
	if reviewer == nil || owner == nil {
		return false
	}
	if reviewer.Role != models.RoleManager {
		return false
	}
	return owner.ManagerID != nil && *owner.ManagerID == reviewer.ID
}
