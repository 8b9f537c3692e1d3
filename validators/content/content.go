package contentValidator

import (
	"biotrunk/middleware"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type CreateContentRequest struct {
	CourseID      uint       `json:"courseId" validate:"required"`
	Type          string     `json:"type" validate:"required,oneof=pdf video live_class"`
	Title         string     `json:"title" validate:"required,min=2,max=200"`
	Description   string     `json:"description" validate:"omitempty,max=5000"`
	PdfURL        string     `json:"pdfUrl" validate:"omitempty,url"`
	VideoURL      string     `json:"videoUrl" validate:"omitempty,url"`
	LiveClassURL  string     `json:"liveClassUrl" validate:"omitempty,url"`
	LiveClassDate *time.Time `json:"liveClassDate"`
	LiveClassTime string     `json:"liveClassTime" validate:"omitempty,max=20"`
}

func CreateContent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateContentRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to parse request body!", nil)
		}
		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			if verrs, ok := err.(validator.ValidationErrors); ok {
				for _, fe := range verrs {
					errors[fe.Field()] = "Failed validation on " + fe.Tag() + "!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}
		c.Locals("validatedCreateContent", reqData)
		return c.Next()
	}
}

// ContentID validates the :id route param and stashes it as contentID
func ContentID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Content ID is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Content ID!", nil)
		}

		c.Locals("contentID", uint(id))
		return c.Next()
	}
}

// CourseID validates the :course_id route param and stashes it as courseID
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("course_id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", uint(id))
		return c.Next()
	}
}
