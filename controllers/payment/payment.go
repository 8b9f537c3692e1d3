package paymentController

import (
	"biotrunk/config"
	"biotrunk/database"
	"biotrunk/middleware"
	"biotrunk/models"
	"biotrunk/utils"
	paymentValidator "biotrunk/validators/payment"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateOrder creates a gateway order for a (student, course) pair. Nothing is
// written to the store on this path, retrying it is always safe.
func CreateOrder(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCreateOrder").(*paymentValidator.CreateOrderRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check student and course exist
	var student models.User
	if err := db.Where("id = ? AND is_deleted = false", reqData.StudentID).First(&student).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
	}

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = false", reqData.CourseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// Reject a duplicate order for an already-completed enrollment
	var existing models.Enrollment
	err := db.Where("user_id = ? AND course_id = ? AND payment_status = ? AND is_deleted = false",
		reqData.StudentID, reqData.CourseID, models.PaymentStatusCompleted).First(&existing).Error
	if err == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Student already enrolled in this course!", nil)
	}

	client, err := utils.GetRazorpayClient()
	if err != nil {
		return gatewayErrorResponse(c, err)
	}

	// Order amount comes from the course price read right now; verification
	// re-reads the price when stamping the payment record (see VerifyPayment)
	order, err := client.CreateOrder(course.Price, "INR")
	if err != nil {
		return gatewayErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Order created successfully!", fiber.Map{
		"orderId":     order.ID,
		"amount":      order.Amount,
		"currency":    order.Currency,
		"courseId":    course.ID,
		"courseName":  course.Title,
		"coursePrice": course.Price,
	})
}

// gatewayErrorResponse maps gateway failures to responses that tell the
// operator what to fix without leaking secrets
func gatewayErrorResponse(c *fiber.Ctx, err error) error {
	log.Printf("[PAYMENT] Gateway error: %v", err)

	detail := fiber.Map{"keyPreview": utils.RazorpayKeyPreview(), "mode": utils.RazorpayMode()}

	switch {
	case errors.Is(err, utils.ErrConfiguration):
		detail["suggestion"] = "Check that RAZORPAY_KEY_ID and RAZORPAY_KEY_SECRET are set in environment variables"
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Payment gateway is not configured!", detail)
	case errors.Is(err, utils.ErrGatewayAuth):
		detail["suggestion"] = "Invalid Razorpay credentials. Check your API keys and ensure live keys are activated if using live mode"
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Payment gateway rejected the credentials!", detail)
	case errors.Is(err, utils.ErrGatewayRequest):
		detail["suggestion"] = "Invalid payment request. Check the amount and currency"
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Payment gateway rejected the request!", detail)
	default:
		detail["suggestion"] = "Check your Razorpay account and try again"
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create payment order!", detail)
	}
}

// VerifyPayment verifies the gateway callback signature and completes the
// enrollment exactly once. Signature verification strictly precedes any write,
// and the payment write strictly precedes the confirmation email.
func VerifyPayment(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedVerifyPayment").(*paymentValidator.VerifyPaymentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	log.Printf("[PAYMENT] Verification initiated: order=%s payment=%s course=%d student=%d",
		reqData.RazorpayOrderID, reqData.RazorpayPaymentID, reqData.CourseID, reqData.StudentID)

	// Verify the signature before touching anything else
	valid, err := utils.VerifyRazorpaySignature(
		reqData.RazorpayOrderID, reqData.RazorpayPaymentID, reqData.RazorpaySignature,
		config.AppConfig.RazorpayKeySecret)
	if err != nil {
		if errors.Is(err, utils.ErrValidation) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Order ID, Payment ID and Signature are required!", nil)
		}
		log.Printf("[PAYMENT] Verification unavailable: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Payment verification is not configured!", nil)
	}
	if !valid {
		// Elevated log, a mismatch can mean tampering or a live/test key mix-up
		log.Printf("[PAYMENT] SIGNATURE MISMATCH for order=%s payment=%s (mode=%s)",
			reqData.RazorpayOrderID, reqData.RazorpayPaymentID, utils.RazorpayMode())
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Payment verification failed!", fiber.Map{
			"details":    "Signature mismatch - this could mean the live/test keys don't match between frontend and backend",
			"suggestion": "Ensure both RAZORPAY_KEY_ID and RAZORPAY_KEY_SECRET are from the same environment (both live or both test)",
		})
	}

	db := database.Database.Db

	var student models.User
	if err := db.Where("id = ? AND is_deleted = false", reqData.StudentID).First(&student).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student or Course not found!", nil)
	}

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = false", reqData.CourseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student or Course not found!", nil)
	}

	// Idempotent short-circuit: a duplicate callback for an already-completed
	// enrollment is rejected before any new write
	var completed models.Enrollment
	err = db.Where("user_id = ? AND course_id = ? AND payment_status = ? AND is_deleted = false",
		student.ID, course.ID, models.PaymentStatusCompleted).First(&completed).Error
	if err == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Student already enrolled in this course!", nil)
	}

	receiptNumber := utils.GenerateReceiptNumber()

	enrollment, err := CompleteEnrollment(db, student.ID, course, CompletedPayment{
		OrderID:       reqData.RazorpayOrderID,
		PaymentID:     reqData.RazorpayPaymentID,
		Signature:     reqData.RazorpaySignature,
		ReceiptNumber: receiptNumber,
	})
	if err != nil {
		if errors.Is(err, utils.ErrAlreadyEnrolled) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Student already enrolled in this course!", nil)
		}
		log.Printf("[PAYMENT] Enrollment write failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Payment verification encountered an error!", nil)
	}

	// In-app notification, best effort
	notification := models.Notification{
		RecipientID:  student.ID,
		Type:         models.NotificationTypeEnrollment,
		Title:        "Enrollment Successful",
		Message:      fmt.Sprintf("You are now enrolled in %s", course.Title),
		CourseID:     course.ID,
		EnrollmentID: enrollment.ID,
	}
	if err := db.Create(&notification).Error; err != nil {
		log.Printf("[PAYMENT] Enrollment notification write failed (non-blocking): %v", err)
	}

	// Confirmation email with receipt, after the payment write and never
	// allowed to fail the enrollment
	go sendConfirmationEmail(student, course, enrollment)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment verified and enrollment completed!", fiber.Map{
		"success": true,
		"enrollment": fiber.Map{
			"id":            enrollment.ID,
			"studentId":     enrollment.UserID,
			"courseId":      enrollment.CourseID,
			"receiptNumber": enrollment.ReceiptNumber,
			"enrolledAt":    enrollment.EnrolledAt,
		},
		"receiptNumber": enrollment.ReceiptNumber,
	})
}

// CompletedPayment carries the verified gateway callback facts
type CompletedPayment struct {
	OrderID       string
	PaymentID     string
	Signature     string
	ReceiptNumber string
}

// CompleteEnrollment transitions the (student, course) pair to enrolled with a
// completed payment, exactly once. The update is a single conditional write,
// never a read-modify-write pair: concurrent verifications for the same pair
// collapse into one effective completion and the losers see
// utils.ErrAlreadyEnrolled via the zero-row update plus the unique-index
// guarded insert.
func CompleteEnrollment(db *gorm.DB, studentID uint, course models.Course, payment CompletedPayment) (*models.Enrollment, error) {
	now := time.Now()

	payload, _ := json.Marshal(fiber.Map{
		"razorpay_order_id":   payment.OrderID,
		"razorpay_payment_id": payment.PaymentID,
		"razorpay_signature":  payment.Signature,
	})

	updates := map[string]interface{}{
		"payment_order_id":  payment.OrderID,
		"payment_id":        payment.PaymentID,
		"payment_signature": payment.Signature,
		"payment_amount":    course.Price,
		"payment_currency":  "INR",
		"payment_status":    models.PaymentStatusCompleted,
		"paid_at":           now,
		"verified_at":       now,
		"receipt_number":    payment.ReceiptNumber,
		"gateway_payload":   payload,
	}

	// Upgrade an existing non-completed row in place. The status guard keeps
	// the pending -> completed transition one-way.
	result := db.Model(&models.Enrollment{}).
		Where("user_id = ? AND course_id = ? AND payment_status <> ? AND is_deleted = false",
			studentID, course.ID, models.PaymentStatusCompleted).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}

	var enrollment models.Enrollment
	if result.RowsAffected == 0 {
		// No row to upgrade: create one. The composite unique index turns the
		// lost race (a just-committed completion) into a duplicate-key error.
		paidAt := now
		enrollment = models.Enrollment{
			UserID:           studentID,
			CourseID:         course.ID,
			EnrolledAt:       now,
			Status:           models.EnrollmentStatusActive,
			PaymentOrderID:   payment.OrderID,
			PaymentID:        payment.PaymentID,
			PaymentSignature: payment.Signature,
			PaymentAmount:    course.Price,
			PaymentCurrency:  "INR",
			PaymentStatus:    models.PaymentStatusCompleted,
			PaidAt:           &paidAt,
			VerifiedAt:       &paidAt,
			ReceiptNumber:    payment.ReceiptNumber,
			GatewayPayload:   payload,
		}
		if err := db.Create(&enrollment).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, utils.ErrAlreadyEnrolled
			}
			return nil, err
		}
	} else {
		if err := db.Where("user_id = ? AND course_id = ?", studentID, course.ID).First(&enrollment).Error; err != nil {
			return nil, err
		}
	}

	// Idempotent roster set-add. A failure here does not undo the enrollment,
	// the payment record is the source of truth and the scheduler backfills.
	roster := models.CourseStudent{CourseID: course.ID, UserID: studentID}
	if err := db.Where("course_id = ? AND user_id = ?", course.ID, studentID).FirstOrCreate(&roster).Error; err != nil {
		log.Printf("[PAYMENT] Roster update failed for course %d student %d (non-blocking): %v", course.ID, studentID, err)
	}

	return &enrollment, nil
}

func sendConfirmationEmail(student models.User, course models.Course, enrollment *models.Enrollment) {
	receiptPDF, err := utils.GenerateReceiptPDF(utils.ReceiptData{
		ReceiptNumber: enrollment.ReceiptNumber,
		StudentName:   student.Name,
		StudentEmail:  student.Email,
		EnrollmentID:  fmt.Sprintf("%d", enrollment.ID),
		CourseName:    course.Title,
		CourseID:      fmt.Sprintf("%d", course.ID),
		Amount:        enrollment.PaymentAmount,
		TransactionID: enrollment.PaymentID,
		PaymentStatus: "Completed",
	})
	if err != nil {
		log.Printf("[PAYMENT] Receipt PDF generation failed (non-blocking): %v", err)
	}

	err = utils.SendEnrollmentEmail(utils.EnrollmentEmailData{
		StudentName:   student.Name,
		StudentEmail:  student.Email,
		CourseName:    course.Title,
		CourseID:      fmt.Sprintf("%d", course.ID),
		EnrollmentID:  fmt.Sprintf("%d", enrollment.ID),
		Amount:        enrollment.PaymentAmount,
		TransactionID: enrollment.PaymentID,
		ReceiptNumber: enrollment.ReceiptNumber,
	}, receiptPDF)
	if err != nil {
		log.Printf("[PAYMENT] Confirmation email failed (non-blocking): %v", err)
	}
}

// GetPaymentConfig reports the gateway mode and a masked key preview.
// Informational only, for operators diagnosing live/test mix-ups.
func GetPaymentConfig(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment gateway configuration", fiber.Map{
		"mode":       utils.RazorpayMode(),
		"keyPreview": utils.RazorpayKeyPreview(),
		"keySet":     config.AppConfig.RazorpayKeyID != "" && config.AppConfig.RazorpayKeySecret != "",
	})
}
