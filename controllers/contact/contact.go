package contactController

import (
	"biotrunk/database"
	"biotrunk/middleware"
	"biotrunk/models"
	contactValidator "biotrunk/validators/contact"

	"github.com/gofiber/fiber/v2"
)

// SubmitContact stores one contact-form message
func SubmitContact(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedContact").(*contactValidator.ContactRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	message := models.ContactMessage{
		Name:    reqData.Name,
		Email:   reqData.Email,
		Subject: reqData.Subject,
		Message: reqData.Message,
	}

	if err := database.Database.Db.Create(&message).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit message!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Message submitted successfully!", fiber.Map{
		"id": message.ID,
	})
}

// ListContacts returns contact messages for admins
func ListContacts(c *fiber.Ctx) error {
	var messages []models.ContactMessage
	err := database.Database.Db.
		Where("is_deleted = false").
		Order("created_at desc").
		Find(&messages).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch messages!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Messages fetched successfully!", messages)
}
