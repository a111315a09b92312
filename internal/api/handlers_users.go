package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/harborview/leavedesk/internal/services"
)

func (handler *Handler) Managers(c *fiber.Ctx) error {
	managers, err := handler.userService.ListManagers()
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(managers)
}

func (handler *Handler) ListUsers(c *fiber.Ctx) error {
	users, err := handler.userService.ListAll()
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(users)
}

func (handler *Handler) AddUser(c *fiber.Ctx) error {
	var input upsertUserInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	entry, temporaryPassword, err := handler.userService.Add(services.UpsertUserInput{
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Role:      input.Role,
		ManagerID: input.ManagerID,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	// The temporary password is shown exactly once; only its hash is stored.
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user":              entry,
		"temporaryPassword": temporaryPassword,
	})
}

func (handler *Handler) EditUser(c *fiber.Ctx) error {
	userID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	var input upsertUserInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	entry, found, err := handler.userService.Edit(userID, services.UpsertUserInput{
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Role:      input.Role,
		ManagerID: input.ManagerID,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "User not found")
	}
	return c.JSON(entry)
}

func (handler *Handler) DeleteUser(c *fiber.Ctx) error {
	userID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	deleted, err := handler.userService.Delete(userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	if !deleted {
		return apiError(c, fiber.StatusNotFound, "User not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
