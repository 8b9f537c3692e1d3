package userRoutes

import (
	controllers "biotrunk/controllers/user"
	"biotrunk/middleware"
	"biotrunk/models"
	validators "biotrunk/validators/user"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes sets up profile and user administration routes
func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user")

	userGroup.Get("/profile", middleware.JWTMiddleware, controllers.GetProfile)
	userGroup.Put("/profile", middleware.JWTMiddleware, validators.UpdateProfile(), controllers.UpdateProfile)

	userGroup.Get("/list", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), controllers.ListUsers)
	userGroup.Get("/search/:searchTerm", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), controllers.SearchUsers)
	userGroup.Get("/:id", middleware.JWTMiddleware, validators.UserID(), controllers.GetUser)
	userGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), validators.UserID(), controllers.DeleteUser)
}
