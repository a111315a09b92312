package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/harborview/leavedesk/internal/models"
	"github.com/harborview/leavedesk/internal/services"
)

type authPayload struct {
	UserID    uint   `json:"userId"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
	Token     string `json:"token"`
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	var input registerInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	result, err := handler.authService.Register(services.RegisterInput{
		Email:     input.Email,
		Password:  input.Password,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Role:      input.Role,
		ManagerID: input.ManagerID,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return handler.respondAuthPayload(c, &result.User)
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	var input loginInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	result, err := handler.authService.Login(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return apiError(c, fiber.StatusUnauthorized, "Invalid email or password.")
		}
		return respondServiceError(c, err)
	}

	return handler.respondAuthPayload(c, &result.User)
}

func (handler *Handler) respondAuthPayload(c *fiber.Ctx, user *models.User) error {
	token, err := handler.buildAuthToken(user)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	return c.JSON(authPayload{
		UserID:    user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
		Token:     token,
	})
}
