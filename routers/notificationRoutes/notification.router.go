package notificationRoutes

import (
	controllers "biotrunk/controllers/notification"
	"biotrunk/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupNotificationRoutes sets up in-app notification routes
func SetupNotificationRoutes(app *fiber.App) {
	notificationGroup := app.Group("/notification")

	notificationGroup.Get("/list", middleware.JWTMiddleware, controllers.GetNotifications)
	notificationGroup.Put("/:id/read", middleware.JWTMiddleware, controllers.MarkRead)
	notificationGroup.Put("/read-all", middleware.JWTMiddleware, controllers.MarkAllRead)
}
