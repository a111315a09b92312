package services

import (
	"errors"
	"testing"

	"github.com/harborview/leavedesk/internal/db"
	"github.com/harborview/leavedesk/internal/models"
	"golang.org/x/crypto/bcrypt"
)

func newResetTestService(t *testing.T) (*ResetService, *db.Repositories, models.User) {
	t.Helper()

	repos := newServiceTestRepos(t)
	user := createServiceTestUser(t, repos, "reset-target@example.com", models.RoleEmployee, nil)
	return NewResetService(repos.PasswordResets, repos.Users), repos, user
}

func requestReset(t *testing.T, service *ResetService, email string) ResetView {
	t.Helper()

	submitted, err := service.Request(email)
	if err != nil {
		t.Fatalf("request reset: %v", err)
	}
	if !submitted {
		t.Fatalf("expected reset request for %s to be accepted", email)
	}

	pending, err := service.ListPending()
	if err != nil {
		t.Fatalf("list pending: %v", err)
	}
	if len(pending) == 0 {
		t.Fatalf("expected a pending reset request")
	}
	return pending[0]
}

func TestResetRequestHidesUnknownEmails(t *testing.T) {
	service, _, _ := newResetTestService(t)

	submitted, err := service.Request("notreal@x.com")
	if err != nil {
		t.Fatalf("request reset: %v", err)
	}
	if submitted {
		t.Fatalf("unknown email must decline")
	}

	all, err := service.ListAll()
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("declined request must not create a record, got %d", len(all))
	}
}

func TestResetRequestCreatesPendingRecord(t *testing.T) {
	service, _, user := newResetTestService(t)

	view := requestReset(t, service, "Reset-Target@Example.com")
	if view.UserID != user.ID {
		t.Fatalf("request linked to user %d, want %d", view.UserID, user.ID)
	}
	if view.Email != "reset-target@example.com" {
		t.Fatalf("stored email = %q, want normalized form", view.Email)
	}
	if view.Status != "pending" {
		t.Fatalf("status = %q, want pending", view.Status)
	}
	if view.RequestedAt.IsZero() {
		t.Fatalf("expected requested timestamp")
	}
}

func TestResetApprove(t *testing.T) {
	service, _, _ := newResetTestService(t)

	if ok, err := service.Approve(9999, nil); err != nil || ok {
		t.Fatalf("missing request must decline: ok=%v err=%v", ok, err)
	}

	view := requestReset(t, service, "reset-target@example.com")
	comment := "verified over the phone"
	ok, err := service.Approve(view.ID, &comment)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if !ok {
		t.Fatalf("expected approval to succeed")
	}

	all, err := service.ListAll()
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	approved := all[0]
	if !approved.IsApproved || approved.ApprovedAt == nil {
		t.Fatalf("expected approved flag and timestamp, got %+v", approved)
	}
	if approved.Comment == nil || *approved.Comment != comment {
		t.Fatalf("expected stored comment, got %v", approved.Comment)
	}
	if approved.Status != "approved" {
		t.Fatalf("status = %q, want approved", approved.Status)
	}
}

func TestResetRejectDeclinesOnceApproved(t *testing.T) {
	service, _, _ := newResetTestService(t)

	view := requestReset(t, service, "reset-target@example.com")
	if ok, err := service.Approve(view.ID, nil); err != nil || !ok {
		t.Fatalf("approve: ok=%v err=%v", ok, err)
	}

	if ok, err := service.Reject(view.ID, nil); err != nil || ok {
		t.Fatalf("reject after approve must decline: ok=%v err=%v", ok, err)
	}
}

func TestResetRejectPendingRequest(t *testing.T) {
	service, _, _ := newResetTestService(t)

	view := requestReset(t, service, "reset-target@example.com")
	comment := "could not verify identity"
	if ok, err := service.Reject(view.ID, &comment); err != nil || !ok {
		t.Fatalf("reject pending: ok=%v err=%v", ok, err)
	}

	all, err := service.ListAll()
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if all[0].Status != "rejected" {
		t.Fatalf("status = %q, want rejected", all[0].Status)
	}

	pending, err := service.ListPending()
	if err != nil {
		t.Fatalf("list pending: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("rejected request must leave the pending listing")
	}
}

func TestResetCompleteGuards(t *testing.T) {
	service, _, _ := newResetTestService(t)

	view := requestReset(t, service, "reset-target@example.com")

	if _, err := service.Complete(view.ID, "weak"); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword, got %v", err)
	}
	if ok, err := service.Complete(view.ID, "FreshSecret9"); err != nil || ok {
		t.Fatalf("complete before approval must decline: ok=%v err=%v", ok, err)
	}
	if ok, err := service.Complete(9999, "FreshSecret9"); err != nil || ok {
		t.Fatalf("complete on missing request must decline: ok=%v err=%v", ok, err)
	}
}

func TestResetCompleteReplacesCredential(t *testing.T) {
	service, repos, user := newResetTestService(t)

	view := requestReset(t, service, "reset-target@example.com")
	if ok, err := service.Approve(view.ID, nil); err != nil || !ok {
		t.Fatalf("approve: ok=%v err=%v", ok, err)
	}

	ok, err := service.Complete(view.ID, "FreshSecret9")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if !ok {
		t.Fatalf("expected completion to succeed")
	}

	updated, err := repos.Users.FindByID(user.ID)
	if err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("FreshSecret9")); err != nil {
		t.Fatalf("new password must verify: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("StrongPass1")); err == nil {
		t.Fatalf("old password must no longer verify")
	}

	// The workflow is closed; a second completion declines.
	if ok, err := service.Complete(view.ID, "AnotherSecret9"); err != nil || ok {
		t.Fatalf("repeat completion must decline: ok=%v err=%v", ok, err)
	}

	all, err := service.ListAll()
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if all[0].Status != "completed" || all[0].CompletedAt == nil {
		t.Fatalf("expected completed status with timestamp, got %+v", all[0])
	}
}
