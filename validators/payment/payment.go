package paymentValidator

import (
	"biotrunk/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CreateOrderRequest is the body of POST /payments/create-order
type CreateOrderRequest struct {
	CourseID  uint `json:"courseId" validate:"required"`
	StudentID uint `json:"studentId" validate:"required"`
}

// VerifyPaymentRequest is the body of POST /payments/verify-payment. Field
// names follow the gateway checkout callback payload.
type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id" validate:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" validate:"required"`
	RazorpaySignature string `json:"razorpay_signature" validate:"required"`
	CourseID          uint   `json:"courseId" validate:"required"`
	StudentID         uint   `json:"studentId" validate:"required"`
}

func CreateOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateOrderRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to parse request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID and Student ID are required!", validationErrors(err))
		}

		c.Locals("validatedCreateOrder", reqData)
		return c.Next()
	}
}

func VerifyPayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(VerifyPaymentRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to parse request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Missing required payment verification fields!", validationErrors(err))
		}

		c.Locals("validatedVerifyPayment", reqData)
		return c.Next()
	}
}

func validationErrors(err error) map[string]string {
	errors := make(map[string]string)
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			errors[fe.Field()] = "This field is " + fe.Tag() + "!"
		}
	}
	return errors
}
