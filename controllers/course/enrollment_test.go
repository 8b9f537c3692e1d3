package courseController

import (
	"biotrunk/database"
	"biotrunk/models"
	courseValidator "biotrunk/validators/course"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.CourseStudent{},
		&models.Enrollment{},
		&models.CompletedContent{},
		&models.Content{},
	))

	database.Database = database.DbInstance{Db: db}
	return db
}

// fakeAuth stands in for the JWT middleware and injects the caller identity
func fakeAuth(userID uint) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("userId", userID)
		return c.Next()
	}
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doRequest(t *testing.T, app *fiber.App, method, path string) (*http.Response, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	return resp, env
}

func TestEnrollInFreeCourse(t *testing.T) {
	db := setupTestDB(t)

	student := models.User{Name: "Ravi", Email: "ravi@example.com", Role: models.RoleStudent, Password: "hashed"}
	require.NoError(t, db.Create(&student).Error)

	course := models.Course{Title: "Human Physiology Basics", Category: "Biology", Price: 0}
	require.NoError(t, db.Create(&course).Error)

	app := fiber.New()
	app.Post("/course/:id/enroll", fakeAuth(student.ID), courseValidator.CourseID(), EnrollInCourse)

	resp, env := doRequest(t, app, http.MethodPost, fmt.Sprintf("/course/%d/enroll", course.ID))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, env.Status)

	var enrollment models.Enrollment
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", student.ID, course.ID).First(&enrollment).Error)
	assert.Equal(t, models.EnrollmentStatusActive, enrollment.Status)
	assert.Equal(t, models.PaymentStatusPending, enrollment.PaymentStatus)

	var rosterCount int64
	require.NoError(t, db.Model(&models.CourseStudent{}).
		Where("course_id = ? AND user_id = ?", course.ID, student.ID).Count(&rosterCount).Error)
	assert.EqualValues(t, 1, rosterCount)

	// Enrolling again conflicts instead of creating a second row
	resp, env = doRequest(t, app, http.MethodPost, fmt.Sprintf("/course/%d/enroll", course.ID))
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "User already enrolled in this course!", env.Message)

	var count int64
	require.NoError(t, db.Model(&models.Enrollment{}).
		Where("user_id = ? AND course_id = ?", student.ID, course.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestEnrollInPaidCourseRejected(t *testing.T) {
	db := setupTestDB(t)

	student := models.User{Name: "Ravi", Email: "ravi2@example.com", Role: models.RoleStudent, Password: "hashed"}
	require.NoError(t, db.Create(&student).Error)

	course := models.Course{Title: "NEET Biology Crash Course", Category: "NEET", Price: 2999}
	require.NoError(t, db.Create(&course).Error)

	app := fiber.New()
	app.Post("/course/:id/enroll", fakeAuth(student.ID), courseValidator.CourseID(), EnrollInCourse)

	resp, env := doRequest(t, app, http.MethodPost, fmt.Sprintf("/course/%d/enroll", course.ID))
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "This is a paid course. Complete payment to enroll!", env.Message)

	var count int64
	require.NoError(t, db.Model(&models.Enrollment{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestMarkContentCompleteIdempotent(t *testing.T) {
	db := setupTestDB(t)

	student := models.User{Name: "Ravi", Email: "ravi3@example.com", Role: models.RoleStudent, Password: "hashed"}
	require.NoError(t, db.Create(&student).Error)

	course := models.Course{Title: "Class 12 Botany", Category: "Boards", Price: 0}
	require.NoError(t, db.Create(&course).Error)

	contents := []models.Content{
		{CourseID: course.ID, Title: "Photosynthesis", Type: models.ContentTypeVideo},
		{CourseID: course.ID, Title: "Plant Hormones", Type: models.ContentTypePDF},
	}
	require.NoError(t, db.Create(&contents).Error)

	enrollment := models.Enrollment{UserID: student.ID, CourseID: course.ID, Status: models.EnrollmentStatusActive}
	require.NoError(t, db.Create(&enrollment).Error)

	app := fiber.New()
	app.Post("/course/:id/content/:content_id/complete",
		fakeAuth(student.ID), courseValidator.CourseID(), courseValidator.ContentID(), MarkContentComplete)

	path := fmt.Sprintf("/course/%d/content/%d/complete", course.ID, contents[0].ID)

	resp, env := doRequest(t, app, http.MethodPost, path)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var data struct {
		Progress          float64 `json:"progress"`
		Status            string  `json:"status"`
		CompletedContents int64   `json:"completedContents"`
		TotalContents     int64   `json:"totalContents"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, 50.0, data.Progress)
	assert.Equal(t, models.EnrollmentStatusActive, data.Status)
	assert.EqualValues(t, 1, data.CompletedContents)

	// Re-completing the same content changes nothing
	resp, env = doRequest(t, app, http.MethodPost, path)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, 50.0, data.Progress)
	assert.EqualValues(t, 1, data.CompletedContents)

	// Completing the second item finishes the course
	resp, env = doRequest(t, app, http.MethodPost,
		fmt.Sprintf("/course/%d/content/%d/complete", course.ID, contents[1].ID))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, 100.0, data.Progress)
	assert.Equal(t, models.EnrollmentStatusCompleted, data.Status)
}

func TestComputeProgress(t *testing.T) {
	cases := []struct {
		completed int
		total     int
		want      float64
	}{
		{0, 0, 0},
		{0, 10, 0},
		{1, 3, 33.33},
		{2, 3, 66.67},
		{3, 3, 100},
		{5, 3, 100}, // stale counts never exceed the clamp
		{1, -1, 0},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ComputeProgress(tc.completed, tc.total),
			"completed=%d total=%d", tc.completed, tc.total)
	}
}
