package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"marketplace/internal/repositories"
)

// TestAppWiring exercises the fully wired app against in-memory repositories.
func TestAppWiring(t *testing.T) {
	app := buildApp(nil, repositories.NewMockListingRepository(), repositories.NewMockOrderRepository(), nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var info map[string]any
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&info))
	assert.Equal(t, "AI Marketplace Backend Running", info["message"])
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))
	resp.Body.Close()

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/test", nil), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var diag map[string]any
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&diag))
	assert.Equal(t, "running", diag["backend"])
	assert.Equal(t, "not available", diag["database"])
	resp.Body.Close()

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/schema", nil), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var schemas map[string]any
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&schemas))
	assert.Len(t, schemas, 3)
	resp.Body.Close()

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/listings", nil), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}
