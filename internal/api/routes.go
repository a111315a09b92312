package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/harborview/leavedesk/internal/models"
)

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/request-password-reset", handler.RequestPasswordReset)
	auth.Post("/complete-password-reset", handler.CompletePasswordReset)
	auth.Get("/pending-password-resets", handler.AuthRequired, handler.RequireRole(models.RoleAdmin), handler.PendingPasswordResets)
	auth.Get("/all-password-resets", handler.AuthRequired, handler.RequireRole(models.RoleAdmin), handler.AllPasswordResets)
	auth.Post("/approve-password-reset", handler.AuthRequired, handler.RequireRole(models.RoleAdmin), handler.ApprovePasswordReset)
	auth.Post("/reject-password-reset", handler.AuthRequired, handler.RequireRole(models.RoleAdmin), handler.RejectPasswordReset)

	leaves := api.Group("/leaves", handler.AuthRequired)
	leaves.Post("", handler.CreateLeave)
	leaves.Get("/mine", handler.MyLeaves)
	leaves.Get("/pending", handler.RequireRole(models.RoleManager), handler.PendingLeaves)
	leaves.Get("/all", handler.RequireRole(models.RoleManager), handler.AllTeamLeaves)
	leaves.Get("/summary", handler.LeaveSummary)
	leaves.Put("/:id/status", handler.RequireRole(models.RoleManager), handler.UpdateLeaveStatus)
	leaves.Delete("/:id", handler.DeleteLeave)

	users := api.Group("/users")
	users.Get("/managers", handler.Managers)
	users.Get("", handler.AuthRequired, handler.RequireRole(models.RoleAdmin), handler.ListUsers)
	users.Post("", handler.AuthRequired, handler.RequireRole(models.RoleAdmin), handler.AddUser)
	users.Put("/:id", handler.AuthRequired, handler.RequireRole(models.RoleAdmin), handler.EditUser)
	users.Delete("/:id", handler.AuthRequired, handler.RequireRole(models.RoleAdmin), handler.DeleteUser)
}
