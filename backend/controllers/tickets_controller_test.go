package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndListTickets(t *testing.T) {
	app, db := setupApp(t)
	token, _ := registerUser(t, app, db, "Ada", "ada@example.com", "student")

	resp := doJSON(t, app, http.MethodPost, "/api/tickets", token, map[string]string{
		"subject": "Video won't play",
		"message": "Lesson 3 of Go Basics stalls at 0:42",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/tickets", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data []struct {
			Subject string `json:"subject"`
			Status  string `json:"status"`
		} `json:"data"`
	}
	decode(t, resp, &body)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Video won't play", body.Data[0].Subject)
	assert.Equal(t, "open", body.Data[0].Status)
}

func TestTicketsScopedToOwnerUnlessAdmin(t *testing.T) {
	app, db := setupApp(t)
	adaToken, _ := registerUser(t, app, db, "Ada", "ada@example.com", "student")
	graceToken, _ := registerUser(t, app, db, "Grace", "grace@example.com", "student")
	adminToken, _ := registerUser(t, app, db, "Root", "root@example.com", "admin")

	doJSON(t, app, http.MethodPost, "/api/tickets", adaToken, map[string]string{"subject": "A"})
	doJSON(t, app, http.MethodPost, "/api/tickets", graceToken, map[string]string{"subject": "B"})

	var body struct {
		Data []struct {
			Subject string `json:"subject"`
		} `json:"data"`
	}

	resp := doJSON(t, app, http.MethodGet, "/api/tickets", adaToken, nil)
	decode(t, resp, &body)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "A", body.Data[0].Subject)

	resp = doJSON(t, app, http.MethodGet, "/api/tickets", adminToken, nil)
	decode(t, resp, &body)
	assert.Len(t, body.Data, 2)
}

func TestCloseTicketAdminOnly(t *testing.T) {
	app, db := setupApp(t)
	token, _ := registerUser(t, app, db, "Ada", "ada@example.com", "student")
	adminToken, _ := registerUser(t, app, db, "Root", "root@example.com", "admin")

	resp := doJSON(t, app, http.MethodPost, "/api/tickets", token, map[string]string{"subject": "A"})
	var created struct {
		Data struct {
			ID uint `json:"ID"`
		} `json:"data"`
	}
	decode(t, resp, &created)

	resp = doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/admin/tickets/%d/close", created.Data.ID), token, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/admin/tickets/%d/close", created.Data.ID), adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var closed struct {
		Data struct {
			Status string `json:"status"`
		} `json:"data"`
	}
	decode(t, resp, &closed)
	assert.Equal(t, "closed", closed.Data.Status)
}
