package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/harborview/leavedesk/internal/models"
	"github.com/harborview/leavedesk/internal/services"
)

func (handler *Handler) CreateLeave(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input createLeaveInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	startDate, err := parseLeaveDate(input.StartDate)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid date range")
	}
	endDate, err := parseLeaveDate(input.EndDate)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid date range")
	}

	view, err := handler.leaveService.Create(user.ID, startDate, endDate, input.Reason)
	if err != nil {
		if errors.Is(err, services.ErrInvalidDateRange) {
			return apiError(c, fiber.StatusBadRequest, "Invalid date range")
		}
		// ErrUnknownOwner lands here too: an authenticated caller whose row
		// vanished is a broken contract, not bad user input.
		return apiError(c, fiber.StatusInternalServerError, "internal server error")
	}
	return c.JSON(view)
}

func (handler *Handler) MyLeaves(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	views, err := handler.leaveService.ListMine(user.ID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(views)
}

func (handler *Handler) PendingLeaves(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	views, err := handler.leaveService.ListPendingForManager(user.ID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(views)
}

func (handler *Handler) AllTeamLeaves(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	views, err := handler.leaveService.ListAllForManager(user.ID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(views)
}

func (handler *Handler) UpdateLeaveStatus(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	requestID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	var input updateLeaveStatusInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	updated, err := handler.leaveService.UpdateStatus(requestID, input.Status, input.ManagerComments, user.ID)
	if err != nil {
		return respondServiceError(c, err)
	}
	if !updated {
		return apiError(c, fiber.StatusNotFound, "Leave request not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) DeleteLeave(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	requestID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	deleted, err := handler.leaveService.Delete(requestID, user.ID)
	if err != nil {
		return respondServiceError(c, err)
	}
	if !deleted {
		return apiError(c, fiber.StatusNotFound, "Leave request not found or cannot be deleted")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) LeaveSummary(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	summary, err := handler.leaveService.Summarize(user.ID, user.Role == models.RoleManager)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(summary)
}
