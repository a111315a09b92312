package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/harborview/leavedesk/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// respondServiceError maps the service-layer sentinel errors onto HTTP
// statuses. Anything unrecognized is an infrastructure failure and surfaces
// as an opaque 500.
func respondServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrMissingField),
		errors.Is(err, services.ErrInvalidEmail),
		errors.Is(err, services.ErrInvalidRole),
		errors.Is(err, services.ErrInvalidManager),
		errors.Is(err, services.ErrWeakPassword),
		errors.Is(err, services.ErrInvalidLeaveStatus):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrEmailExists):
		return apiError(c, fiber.StatusConflict, "User with this email already exists.")
	default:
		return apiError(c, fiber.StatusInternalServerError, "internal server error")
	}
}

func parseIDParam(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}
