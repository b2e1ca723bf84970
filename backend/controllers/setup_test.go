package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"academy/backend/config"
	"academy/backend/models"
	"academy/backend/routes"
	"academy/backend/utils"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, utils.Migrate(db))

	cfg := &config.Config{JWTSecret: "test-secret"}
	app := fiber.New()
	routes.SetupRoutes(app, db, cfg)
	return app, db
}

// registerUser signs up through the API and optionally promotes the account.
func registerUser(t *testing.T, app *fiber.App, db *gorm.DB, name, email, role string) (token string, userID uint) {
	t.Helper()

	resp := doJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name":     name,
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Token string `json:"token"`
		User  struct {
			ID uint `json:"id"`
		} `json:"user"`
	}
	decode(t, resp, &body)

	if role != models.RoleStudent {
		require.NoError(t, db.Model(&models.User{}).Where("id = ?", body.User.ID).
			Update("role", role).Error)
	}
	return body.Token, body.User.ID
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, payload interface{}) *http.Response {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// seedCourse inserts a course with the given lesson counts per module and
// returns it with ids populated.
func seedCourse(t *testing.T, db *gorm.DB, title string, moduleLessonCounts ...int) models.Course {
	t.Helper()

	course := models.Course{Title: title, ShortDesc: "seeded"}
	for i, n := range moduleLessonCounts {
		m := models.Module{Title: title, SequenceOrder: i + 1}
		for j := 0; j < n; j++ {
			m.Lessons = append(m.Lessons, models.Lesson{
				Title:         "lesson",
				SequenceOrder: j + 1,
			})
		}
		course.Modules = append(course.Modules, m)
	}
	require.NoError(t, db.Create(&course).Error)
	return course
}

func assignCourses(t *testing.T, db *gorm.DB, userID uint, courseIDs []uint) {
	t.Helper()
	var user models.User
	require.NoError(t, db.First(&user, userID).Error)
	user.SetAssignedIDs(courseIDs)
	require.NoError(t, db.Save(&user).Error)
}
