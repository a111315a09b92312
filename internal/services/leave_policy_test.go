package services

import (
	"errors"
	"testing"
	"time"

	"github.com/harborview/leavedesk/internal/models"
)

func TestLeaveDayCountInclusiveOfBothEndpoints(t *testing.T) {
	testCases := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{name: "single day", start: "2025-01-10", end: "2025-01-10", want: 1},
		{name: "three days", start: "2025-01-10", end: "2025-01-12", want: 3},
		{name: "across month boundary", start: "2025-01-30", end: "2025-02-02", want: 4},
		{name: "across year boundary", start: "2024-12-30", end: "2025-01-02", want: 4},
		{name: "inverted range clamps to zero", start: "2025-01-12", end: "2025-01-10", want: 0},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			got := LeaveDayCount(mustDate(t, testCase.start), mustDate(t, testCase.end))
			if got != testCase.want {
				t.Fatalf("LeaveDayCount(%s, %s) = %d, want %d", testCase.start, testCase.end, got, testCase.want)
			}
		})
	}
}

func TestLeaveDayCountIgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2025, 3, 10, 23, 30, 0, 0, time.UTC)
	end := time.Date(2025, 3, 11, 0, 15, 0, 0, time.UTC)
	if got := LeaveDayCount(start, end); got != 2 {
		t.Fatalf("LeaveDayCount across midnight = %d, want 2", got)
	}
}

func TestNormalizeLeaveDateDropsTimeAndZone(t *testing.T) {
	zone := time.FixedZone("UTC+5", 5*60*60)
	value := time.Date(2025, 6, 1, 3, 45, 12, 0, zone)

	normalized := NormalizeLeaveDate(value)
	if normalized.Location() != time.UTC {
		t.Fatalf("expected UTC location, got %v", normalized.Location())
	}
	// 03:45 at UTC+5 is the previous calendar day in UTC.
	if normalized.Year() != 2025 || normalized.Month() != time.May || normalized.Day() != 31 {
		t.Fatalf("normalized = %v, want 2025-05-31", normalized)
	}
	if normalized.Hour() != 0 || normalized.Minute() != 0 || normalized.Second() != 0 {
		t.Fatalf("expected midnight, got %v", normalized)
	}
}

func TestValidateLeaveRange(t *testing.T) {
	if err := ValidateLeaveRange(mustDate(t, "2025-01-10"), mustDate(t, "2025-01-10")); err != nil {
		t.Fatalf("same-day range should be valid, got %v", err)
	}
	if err := ValidateLeaveRange(mustDate(t, "2025-01-12"), mustDate(t, "2025-01-10")); !errors.Is(err, ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
}

func TestCanReviewLeave(t *testing.T) {
	managerID := uint(2)
	otherManagerID := uint(9)
	manager := models.User{ID: managerID, Role: models.RoleManager}
	employee := models.User{ID: 5, Role: models.RoleEmployee, ManagerID: &managerID}
	unlinkedEmployee := models.User{ID: 6, Role: models.RoleEmployee}
	otherTeamEmployee := models.User{ID: 7, Role: models.RoleEmployee, ManagerID: &otherManagerID}

	if !CanReviewLeave(&manager, &employee) {
		t.Fatalf("manager must be able to review a direct report")
	}
	if CanReviewLeave(&manager, &unlinkedEmployee) {
		t.Fatalf("manager must not review an employee without a manager link")
	}
	if CanReviewLeave(&manager, &otherTeamEmployee) {
		t.Fatalf("manager must not review another team's employee")
	}

	asEmployee := models.User{ID: managerID, Role: models.RoleEmployee}
	if CanReviewLeave(&asEmployee, &employee) {
		t.Fatalf("non-manager role must never review")
	}
	if CanReviewLeave(nil, &employee) || CanReviewLeave(&manager, nil) {
		t.Fatalf("nil participants must never pass the policy")
	}
}
