package authRoutes

import (
	controllers "biotrunk/controllers/auth"
	validators "biotrunk/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up registration, login and password-reset routes
func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/register", validators.Register(), controllers.Register)
	authGroup.Post("/login", validators.Login(), controllers.Login)
	authGroup.Post("/forgot-password/send-otp", validators.ForgotPassword(), controllers.ForgotPasswordSendOTP)
	authGroup.Post("/reset-password", validators.ResetPassword(), controllers.ResetPassword)
}
