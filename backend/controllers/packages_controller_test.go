package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackagesPublicListing(t *testing.T) {
	app, db := setupApp(t)
	adminToken, _ := registerUser(t, app, db, "Root", "root@example.com", "admin")

	resp := doJSON(t, app, http.MethodPost, "/api/admin/packages", adminToken, map[string]interface{}{
		"name":        "Pro",
		"price_cents": 4900,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// No token: the pricing page renders before login.
	resp = doJSON(t, app, http.MethodGet, "/api/packages", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data []struct {
			Name       string `json:"name"`
			PriceCents int    `json:"price_cents"`
		} `json:"data"`
	}
	decode(t, resp, &body)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Pro", body.Data[0].Name)
	assert.Equal(t, 4900, body.Data[0].PriceCents)
}

func TestDeletePackage(t *testing.T) {
	app, db := setupApp(t)
	adminToken, _ := registerUser(t, app, db, "Root", "root@example.com", "admin")

	resp := doJSON(t, app, http.MethodPost, "/api/admin/packages", adminToken, map[string]interface{}{
		"name": "Starter",
	})
	var created struct {
		Data struct {
			ID uint `json:"ID"`
		} `json:"data"`
	}
	decode(t, resp, &created)

	resp = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/admin/packages/%d", created.Data.ID), adminToken, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/packages", "", nil)
	var body struct {
		Data []interface{} `json:"data"`
	}
	decode(t, resp, &body)
	assert.Empty(t, body.Data)
}
