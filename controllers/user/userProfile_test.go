package userController

import (
	"biotrunk/database"
	"biotrunk/models"
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

	require.NoError(t, db.AutoMigrate(&models.User{}))

	database.Database = database.DbInstance{Db: db}
	return db
}

func TestSearchUsersCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)

	users := []models.User{
		{Name: "Asha Verma", Email: "asha@example.com", Role: models.RoleStudent, Password: "hashed"},
		{Name: "Ravi Kumar", Email: "RAVI.K@example.com", Role: models.RoleStudent, Password: "hashed"},
		{Name: "Deleted Singh", Email: "gone@example.com", Role: models.RoleStudent, Password: "hashed", IsDeleted: true},
	}
	require.NoError(t, db.Create(&users).Error)

	app := fiber.New()
	app.Get("/user/search/:searchTerm", SearchUsers)

	search := func(term string) []models.User {
		req := httptest.NewRequest(http.MethodGet, "/user/search/"+term, nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		var env struct {
			Status bool          `json:"status"`
			Data   []models.User `json:"data"`
		}
		require.NoError(t, json.Unmarshal(raw, &env))
		assert.True(t, env.Status)
		return env.Data
	}

	// Name match ignores case in both the column and the term
	found := search("ASHA")
	require.Len(t, found, 1)
	assert.Equal(t, "Asha Verma", found[0].Name)

	// Email match the same way
	found = search("ravi.k")
	require.Len(t, found, 1)
	assert.Equal(t, "Ravi Kumar", found[0].Name)

	// Soft-deleted users never surface
	found = search("gone")
	assert.Empty(t, found)

	found = search("nomatch")
	assert.Empty(t, found)
}
