package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateUserAssignmentKeepsOrderAndDedupes(t *testing.T) {
	app, db := setupApp(t)
	adminToken, _ := registerUser(t, app, db, "Root", "root@example.com", "admin")
	_, studentID := registerUser(t, app, db, "Ada", "ada@example.com", "student")

	resp := doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/admin/users/%d", studentID), adminToken,
		map[string]interface{}{"assigned_course_ids": []uint{5, 2, 5, 9, 2}})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			AssignedCourseIDs []uint `json:"assigned_course_ids"`
		} `json:"data"`
	}
	decode(t, resp, &body)
	assert.Equal(t, []uint{5, 2, 9}, body.Data.AssignedCourseIDs)
}

func TestUpdateUserClearAssignment(t *testing.T) {
	app, db := setupApp(t)
	adminToken, _ := registerUser(t, app, db, "Root", "root@example.com", "admin")
	_, studentID := registerUser(t, app, db, "Ada", "ada@example.com", "student")
	assignCourses(t, db, studentID, []uint{1, 2})

	resp := doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/admin/users/%d", studentID), adminToken,
		map[string]interface{}{"assigned_course_ids": []uint{}})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			AssignedCourseIDs []uint `json:"assigned_course_ids"`
		} `json:"data"`
	}
	decode(t, resp, &body)
	assert.Empty(t, body.Data.AssignedCourseIDs)
}

func TestListUsersAdminOnly(t *testing.T) {
	app, db := setupApp(t)
	studentToken, _ := registerUser(t, app, db, "Ada", "ada@example.com", "student")
	adminToken, _ := registerUser(t, app, db, "Root", "root@example.com", "admin")

	resp := doJSON(t, app, http.MethodGet, "/api/admin/users", studentToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/admin/users", adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data []struct {
			Email string `json:"email"`
		} `json:"data"`
	}
	decode(t, resp, &body)
	assert.Len(t, body.Data, 2)
}

func TestDeleteUserRemovesProgress(t *testing.T) {
	app, db := setupApp(t)
	adminToken, _ := registerUser(t, app, db, "Root", "root@example.com", "admin")
	studentToken, studentID := registerUser(t, app, db, "Ada", "ada@example.com", "student")
	course := seedCourse(t, db, "Go Basics", 2)

	resp := doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/progress/%d", course.ID), studentToken,
		map[string][]uint{"lesson_ids": course.LessonIDs()})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/admin/users/%d", studentID), adminToken, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	var count int64
	db.Table("course_progresses").Where("user_id = ?", studentID).Count(&count)
	assert.Zero(t, count)
}
