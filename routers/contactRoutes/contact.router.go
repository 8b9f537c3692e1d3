package contactRoutes

import (
	controllers "biotrunk/controllers/contact"
	"biotrunk/middleware"
	"biotrunk/models"
	validators "biotrunk/validators/contact"

	"github.com/gofiber/fiber/v2"
)

// SetupContactRoutes sets up contact-form routes
func SetupContactRoutes(app *fiber.App) {
	contactGroup := app.Group("/contact")

	contactGroup.Post("/", validators.Contact(), controllers.SubmitContact)
	contactGroup.Get("/list", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), controllers.ListContacts)
}
