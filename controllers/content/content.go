package contentController

import (
	"biotrunk/database"
	"biotrunk/middleware"
	"biotrunk/models"
	contentValidator "biotrunk/validators/content"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
)

// CreateContent registers new course material and fans out in-app
// notifications to every enrolled student
func CreateContent(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCreateContent").(*contentValidator.CreateContentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = false", reqData.CourseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	content := models.Content{
		CourseID:      reqData.CourseID,
		FacultyID:     userID,
		Type:          reqData.Type,
		Title:         reqData.Title,
		Description:   reqData.Description,
		PdfURL:        reqData.PdfURL,
		VideoURL:      reqData.VideoURL,
		LiveClassURL:  reqData.LiveClassURL,
		LiveClassDate: reqData.LiveClassDate,
		LiveClassTime: reqData.LiveClassTime,
	}

	if err := db.Create(&content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create content!", nil)
	}

	// Notify enrolled students (async, best effort)
	go notifyRoster(course, content)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Content created successfully!", content)
}

func notifyRoster(course models.Course, content models.Content) {
	db := database.Database.Db

	var studentIDs []uint
	if err := db.Model(&models.CourseStudent{}).
		Where("course_id = ? AND is_deleted = false", course.ID).
		Pluck("user_id", &studentIDs).Error; err != nil {
		log.Printf("[CONTENT] Roster fetch for notifications failed: %v", err)
		return
	}

	notificationType := models.NotificationTypeContentUpload
	title := "New Content Available"
	if content.Type == models.ContentTypeLiveClass {
		notificationType = models.NotificationTypeLiveClass
		title = "Live Class Scheduled"
	}

	for _, studentID := range studentIDs {
		notification := models.Notification{
			RecipientID: studentID,
			Type:        notificationType,
			Title:       title,
			Message:     fmt.Sprintf("%s: %s", course.Title, content.Title),
			CourseID:    course.ID,
		}
		if err := db.Create(&notification).Error; err != nil {
			log.Printf("[CONTENT] Notification write failed for student %d: %v", studentID, err)
		}
	}
}

func GetCourseContent(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var contents []models.Content
	if err := database.Database.Db.Where("course_id = ? AND is_deleted = false", courseID).
		Order("created_at asc").Find(&contents).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content fetched successfully!", contents)
}

func DeleteContent(c *fiber.Ctx) error {
	contentID := c.Locals("contentID").(uint)

	var content models.Content
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", contentID).First(&content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content not found!", nil)
	}

	content.IsDeleted = true
	if err := database.Database.Db.Save(&content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content deleted successfully!", nil)
}
