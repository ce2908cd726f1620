package app

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/popcornpalace/cinema-reservation-system/internal/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheckHandler(t *testing.T) {
	app := newTestApplication()

	w, r := executeRequest(t, http.MethodGet, "/health", nil)
	app.Routes().ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)

	var resp api.HealthCheckResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))

	assert.Equal(t, "UP", resp.Status)
	assert.Equal(t, "test", resp.SystemInfo.Environment)
}
