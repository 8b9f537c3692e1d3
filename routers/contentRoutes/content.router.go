package contentRoutes

import (
	controllers "biotrunk/controllers/content"
	"biotrunk/middleware"
	"biotrunk/models"
	validators "biotrunk/validators/content"

	"github.com/gofiber/fiber/v2"
)

// SetupContentRoutes sets up course-material metadata routes
func SetupContentRoutes(app *fiber.App) {
	contentGroup := app.Group("/content")

	contentGroup.Post("/create", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin, models.RoleFaculty), validators.CreateContent(), controllers.CreateContent)
	contentGroup.Get("/course/:course_id", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseContent)
	contentGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin, models.RoleFaculty), validators.ContentID(), controllers.DeleteContent)
}
