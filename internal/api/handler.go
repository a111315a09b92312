package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/harborview/leavedesk/internal/db"
	"github.com/harborview/leavedesk/internal/models"
	"github.com/harborview/leavedesk/internal/services"
	"gorm.io/gorm"
)

const contextUserKey = "current_user"

type Handler struct {
	secretKey    []byte
	tokenTTL     time.Duration
	repositories *db.Repositories
	authService  *services.AuthService
	leaveService *services.LeaveService
	resetService *services.ResetService
	userService  *services.UserService
}

func NewHandler(database *gorm.DB, secretKey string, tokenTTL time.Duration) *Handler {
	repositories := db.NewRepositories(database)
	return &Handler{
		secretKey:    []byte(secretKey),
		tokenTTL:     tokenTTL,
		repositories: repositories,
		authService:  services.NewAuthService(repositories.Users),
		leaveService: services.NewLeaveService(repositories.Leaves, repositories.Users),
		resetService: services.NewResetService(repositories.PasswordResets, repositories.Users),
		userService:  services.NewUserService(repositories.Users),
	}
}

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
