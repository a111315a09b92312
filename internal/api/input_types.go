package api

import (
	"errors"
	"strings"
	"time"
)

type registerInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
	ManagerID *uint  `json:"managerId"`
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type requestResetInput struct {
	Email string `json:"email"`
}

type resetDecisionInput struct {
	RequestID uint    `json:"requestId"`
	Comment   *string `json:"comment"`
}

type completeResetInput struct {
	RequestID   uint   `json:"requestId"`
	NewPassword string `json:"newPassword"`
}

type createLeaveInput struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Reason    string `json:"reason"`
}

type updateLeaveStatusInput struct {
	Status          string  `json:"status"`
	ManagerComments *string `json:"managerComments"`
}

type upsertUserInput struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
	ManagerID *uint  `json:"managerId"`
}

var errInvalidDate = errors.New("invalid date")

// parseLeaveDate accepts the SPA's plain calendar date and, for tolerance,
// a full RFC 3339 timestamp whose time-of-day is discarded downstream.
func parseLeaveDate(raw string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, errInvalidDate
	}
	if parsed, err := time.Parse("2006-01-02", value); err == nil {
		return parsed, nil
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}
	return time.Time{}, errInvalidDate
}
