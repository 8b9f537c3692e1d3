package paymentRoutes

import (
	controllers "biotrunk/controllers/payment"
	validators "biotrunk/validators/payment"

	"github.com/gofiber/fiber/v2"
)

// SetupPaymentRoutes sets up the payment order and verification routes. The
// client completes the checkout at the gateway and calls back with the signed
// payment triple.
func SetupPaymentRoutes(app *fiber.App) {
	paymentGroup := app.Group("/payments")

	paymentGroup.Post("/create-order", validators.CreateOrder(), controllers.CreateOrder)
	paymentGroup.Post("/verify-payment", validators.VerifyPayment(), controllers.VerifyPayment)
	paymentGroup.Get("/config", controllers.GetPaymentConfig)
}
