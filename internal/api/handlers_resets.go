package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/harborview/leavedesk/internal/services"
)

func (handler *Handler) RequestPasswordReset(c *fiber.Ctx) error {
	var input requestResetInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	submitted, err := handler.resetService.Request(input.Email)
	if err != nil {
		return respondServiceError(c, err)
	}
	if !submitted {
		// Deliberately the same message for unknown emails: the endpoint
		// must not reveal which addresses are registered.
		return apiError(c, fiber.StatusBadRequest, "Could not submit password reset request.")
	}
	return c.JSON(fiber.Map{"message": "Password reset request submitted. Await admin approval."})
}

func (handler *Handler) PendingPasswordResets(c *fiber.Ctx) error {
	requests, err := handler.resetService.ListPending()
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(requests)
}

func (handler *Handler) AllPasswordResets(c *fiber.Ctx) error {
	requests, err := handler.resetService.ListAll()
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(requests)
}

func (handler *Handler) ApprovePasswordReset(c *fiber.Ctx) error {
	var input resetDecisionInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	approved, err := handler.resetService.Approve(input.RequestID, input.Comment)
	if err != nil {
		return respondServiceError(c, err)
	}
	if !approved {
		return apiError(c, fiber.StatusBadRequest, "Could not approve request.")
	}
	return c.JSON(fiber.Map{"message": "Request approved."})
}

func (handler *Handler) RejectPasswordReset(c *fiber.Ctx) error {
	var input resetDecisionInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	rejected, err := handler.resetService.Reject(input.RequestID, input.Comment)
	if err != nil {
		return respondServiceError(c, err)
	}
	if !rejected {
		return apiError(c, fiber.StatusBadRequest, "Could not reject request.")
	}
	return c.JSON(fiber.Map{"message": "Request rejected."})
}

func (handler *Handler) CompletePasswordReset(c *fiber.Ctx) error {
	var input completeResetInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	completed, err := handler.resetService.Complete(input.RequestID, input.NewPassword)
	if err != nil {
		if errors.Is(err, services.ErrWeakPassword) {
			return apiError(c, fiber.StatusBadRequest, "Password is too weak.")
		}
		return respondServiceError(c, err)
	}
	if !completed {
		return apiError(c, fiber.StatusBadRequest, "Could not complete password reset.")
	}
	return c.JSON(fiber.Map{"message": "Password reset completed."})
}
