package courseController

import (
	"biotrunk/database"
	"biotrunk/middleware"
	"biotrunk/models"
	courseValidator "biotrunk/validators/course"
	"errors"
	"math"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// EnrollInCourse is the non-payment enrollment path for free courses. It
// applies the same idempotent roster rule as the payment flow.
func EnrollInCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// Paid courses enroll through the payment flow only
	if course.Price > 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "This is a paid course. Complete payment to enroll!", nil)
	}

	enrollment := models.Enrollment{
		UserID:     userID,
		CourseID:   courseID,
		EnrolledAt: time.Now(),
		Status:     models.EnrollmentStatusActive,
	}

	// The composite unique index makes a duplicate enroll a conflict, not a second row
	if err := database.Database.Db.Create(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "User already enrolled in this course!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	// Same idempotent set-add the payment flow uses
	roster := models.CourseStudent{CourseID: courseID, UserID: userID}
	database.Database.Db.Where("course_id = ? AND user_id = ?", courseID, userID).FirstOrCreate(&roster)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled in course successfully!", enrollment)
}

func GetEnrollments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedEnrollmentList").(*courseValidator.EnrollmentListRequest)

	db := database.Database.Db.Model(&models.Enrollment{}).Where("user_id = ? AND is_deleted = false", userID)

	if !ok {
		var enrollments []models.Enrollment
		if err := db.Order("created_at desc").Find(&enrollments).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
			"enrollments": enrollments,
			"pagination": fiber.Map{
				"total": len(enrollments),
				"page":  1,
				"limit": len(enrollments),
			},
		})
	}

	page := *reqData.Page
	limit := *reqData.Limit
	offset := (page - 1) * limit

	var total int64
	db.Count(&total)

	var enrollments []models.Enrollment
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": enrollments,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// MarkContentComplete records one content item as done for this enrollment
// and recomputes the derived progress percentage
func MarkContentComplete(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)
	contentID := c.Locals("contentID").(uint)

	db := database.Database.Db

	var enrollment models.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = false", userID, courseID).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	var content models.Content
	if err := db.Where("id = ? AND course_id = ? AND is_deleted = false", contentID, courseID).First(&content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content not found!", nil)
	}

	// Idempotent set-add, re-completing the same content is a no-op
	completion := models.CompletedContent{EnrollmentID: enrollment.ID, ContentID: contentID}
	if err := db.Where("enrollment_id = ? AND content_id = ?", enrollment.ID, contentID).FirstOrCreate(&completion).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to mark content complete!", nil)
	}

	var totalContents, completedContents int64
	db.Model(&models.Content{}).Where("course_id = ? AND is_deleted = false", courseID).Count(&totalContents)
	db.Model(&models.CompletedContent{}).Where("enrollment_id = ? AND is_deleted = false", enrollment.ID).Count(&completedContents)

	enrollment.Progress = ComputeProgress(int(completedContents), int(totalContents))
	if enrollment.Progress >= 100 {
		enrollment.Status = models.EnrollmentStatusCompleted
	}

	if err := db.Save(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content marked complete!", fiber.Map{
		"progress":          enrollment.Progress,
		"status":            enrollment.Status,
		"completedContents": completedContents,
		"totalContents":     totalContents,
	})
}

// ComputeProgress derives the completion percentage, clamped to 0-100
func ComputeProgress(completed, total int) float64 {
	if total <= 0 {
		return 0
	}
	progress := float64(completed) / float64(total) * 100
	return math.Min(math.Round(progress*100)/100, 100)
}

func GetUserProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	var enrollment models.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = false", userID, courseID).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	var completedIDs []uint
	database.Database.Db.Model(&models.CompletedContent{}).
		Where("enrollment_id = ? AND is_deleted = false", enrollment.ID).
		Pluck("content_id", &completedIDs)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"enrollmentId":     enrollment.ID,
		"status":           enrollment.Status,
		"progress":         enrollment.Progress,
		"completedContent": completedIDs,
	})
}
