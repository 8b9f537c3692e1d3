package courseRoutes

import (
	controllers "biotrunk/controllers/course"
	"biotrunk/middleware"
	"biotrunk/models"
	validators "biotrunk/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up course CRUD, enrollment and progress routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Course listing and details
	courseGroup.Get("/list", middleware.JWTMiddleware, controllers.GetAllCourses)
	courseGroup.Get("/:id", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseDetails)
	courseGroup.Get("/:id/students", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin, models.RoleFaculty), validators.CourseID(), controllers.GetCourseStudents)

	// Course administration
	courseGroup.Post("/create", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin, models.RoleFaculty), validators.CreateCourse(), controllers.CreateCourse)
	courseGroup.Put("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin, models.RoleFaculty), validators.CourseID(), validators.UpdateCourse(), controllers.UpdateCourse)
	courseGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), validators.CourseID(), controllers.DeleteCourse)

	// Enrollment (free courses; paid courses go through /payments)
	courseGroup.Post("/:id/enroll", middleware.JWTMiddleware, validators.CourseID(), controllers.EnrollInCourse)

	// Progress tracking
	courseGroup.Post("/:id/content/:content_id/complete", middleware.JWTMiddleware, validators.CourseID(), validators.ContentID(), controllers.MarkContentComplete)
	courseGroup.Get("/:id/progress", middleware.JWTMiddleware, validators.CourseID(), controllers.GetUserProgress)

	// User enrollments
	enrollGroup := app.Group("/enrollment")
	enrollGroup.Get("/list", middleware.JWTMiddleware, validators.EnrollmentList(), controllers.GetEnrollments)
}
