package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/harborview/leavedesk/internal/models"
	"gorm.io/gorm"
)

var (
	ErrUnknownOwner       = errors.New("leave owner does not exist")
	ErrInvalidLeaveStatus = errors.New("invalid leave status")
)

type LeaveStore interface {
	Create(request *models.LeaveRequest) error
	FindWithOwner(requestID uint) (models.LeaveRequest, error)
	ListForUser(userID uint) ([]models.LeaveRequest, error)
	ListPendingForManager(managerID uint) ([]models.LeaveRequest, error)
	ListAllForManager(managerID uint) ([]models.LeaveRequest, error)
	ListAll() ([]models.LeaveRequest, error)
	ListAllForOwner(ownerID uint) ([]models.LeaveRequest, error)
	TransitionFromPending(requestID uint, status string, comment *string, reviewerID uint, now time.Time) (bool, error)
	DeletePendingOwnedBy(requestID uint, ownerID uint) (bool, error)
}

type LeaveUserReader interface {
	FindByID(userID uint) (models.User, error)
}

type LeaveService struct {
	leaves LeaveStore
	users  LeaveUserReader
}

func NewLeaveService(leaves LeaveStore, users LeaveUserReader) *LeaveService {
	return &LeaveService{leaves: leaves, users: users}
}

type LeaveView struct {
	ID              uint       `json:"id"`
	UserID          uint       `json:"userId"`
	UserName        string     `json:"userName"`
	StartDate       time.Time  `json:"startDate"`
	EndDate         time.Time  `json:"endDate"`
	DaysCount       int        `json:"daysCount"`
	Reason          string     `json:"reason"`
	Status          string     `json:"status"`
	ManagerComments *string    `json:"managerComments"`
	CreatedAt       time.Time  `json:"createdAt"`
	ReviewedAt      *time.Time `json:"reviewedAt"`
}

type LeaveSummary struct {
	TotalRequests      int `json:"totalRequests"`
	ApprovedRequests   int `json:"approvedRequests"`
	RejectedRequests   int `json:"rejectedRequests"`
	PendingRequests    int `json:"pendingRequests"`
	TotalDaysRequested int `json:"totalDaysRequested"`
	TotalDaysApproved  int `json:"totalDaysApproved"`
}

// Create validates the range, verifies the owner exists, and persists a
// Pending request. A bad range comes back as ErrInvalidDateRange for the
// caller to retry; a missing owner means the caller contract is broken and is
// wrapped into ErrUnknownOwner instead of a declined result.
func (service *LeaveService) Create(ownerID uint, startDate time.Time, endDate time.Time, reason string) (LeaveView, error) {
	start := NormalizeLeaveDate(startDate)
	end := NormalizeLeaveDate(endDate)
	if err := ValidateLeaveRange(start, end); err != nil {
		return LeaveView{}, err
	}

	owner, err := service.users.FindByID(ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveView{}, fmt.Errorf("%w: user %d", ErrUnknownOwner, ownerID)
		}
		return LeaveView{}, fmt.Errorf("load leave owner: %w", err)
	}

	now := time.Now().UTC()
	request := models.LeaveRequest{
		UserID:    ownerID,
		StartDate: start,
		EndDate:   end,
		Reason:    reason,
		Status:    models.LeaveStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := service.leaves.Create(&request); err != nil {
		return LeaveView{}, fmt.Errorf("create leave request: %w", err)
	}

	request.User = owner
	return buildLeaveView(request), nil
}

func (service *LeaveService) ListMine(ownerID uint) ([]LeaveView, error) {
	requests, err := service.leaves.ListForUser(ownerID)
	if err != nil {
		return nil, err
	}
	return buildLeaveViews(requests), nil
}

func (service *LeaveService) ListPendingForManager(managerID uint) ([]LeaveView, error) {
	requests, err := service.leaves.ListPendingForManager(managerID)
	if err != nil {
		return nil, err
	}
	return buildLeaveViews(requests), nil
}

func (service *LeaveService) ListAllForManager(managerID uint) ([]LeaveView, error) {
	requests, err := service.leaves.ListAllForManager(managerID)
	if err != nil {
		return nil, err
	}
	return buildLeaveViews(requests), nil
}

// UpdateStatus moves a request out of Pending. It declines (false, nil) when
// the row is missing, already reviewed, or outside the reviewer's scope.
func (service *LeaveService) UpdateStatus(requestID uint, status string, comment *string, reviewerID uint) (bool, error) {
	if !models.IsReviewableStatus(status) {
		return false, ErrInvalidLeaveStatus
	}

	request, err := service.leaves.FindWithOwner(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	reviewer, err := service.users.FindByID(reviewerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	if !CanReviewLeave(&reviewer, &request.User) {
		return false, nil
	}

	return service.leaves.TransitionFromPending(requestID, status, comment, reviewerID, time.Now().UTC())
}

func (service *LeaveService) Delete(requestID uint, callerID uint) (bool, error) {
	return service.leaves.DeletePendingOwnedBy(requestID, callerID)
}

// Summarize aggregates counts and inclusive day sums. Manager scope covers
// every request in the store; otherwise only the caller's own rows count.
func (service *LeaveService) Summarize(userID uint, managerScope bool) (LeaveSummary, error) {
	var requests []models.LeaveRequest
	var err error
	if managerScope {
		requests, err = service.leaves.ListAll()
	} else {
		requests, err = service.leaves.ListAllForOwner(userID)
	}
	if err != nil {
		return LeaveSummary{}, err
	}

	summary := LeaveSummary{TotalRequests: len(requests)}
	for _, request := range requests {
		days := LeaveDayCount(request.StartDate, request.EndDate)
		summary.TotalDaysRequested += days
		switch request.Status {
		case models.LeaveStatusApproved:
			summary.ApprovedRequests++
			summary.TotalDaysApproved += days
		case models.LeaveStatusRejected:
			summary.RejectedRequests++
		case models.LeaveStatusPending:
			summary.PendingRequests++
		}
	}
	return summary, nil
}

func buildLeaveViews(requests []models.LeaveRequest) []LeaveView {
	views := make([]LeaveView, 0, len(requests))
	for _, request := range requests {
		views = append(views, buildLeaveView(request))
	}
	return views
}

func buildLeaveView(request models.LeaveRequest) LeaveView {
	return LeaveView{
		ID:              request.ID,
		UserID:          request.UserID,
		UserName:        request.User.DisplayName(),
		StartDate:       request.StartDate,
		EndDate:         request.EndDate,
		DaysCount:       LeaveDayCount(request.StartDate, request.EndDate),
		Reason:          request.Reason,
		Status:          request.Status,
		ManagerComments: request.ManagerComments,
		CreatedAt:       request.CreatedAt,
		ReviewedAt:      request.ReviewedAt,
	}
}
