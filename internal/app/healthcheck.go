package app

import (
	"net/http"

	"github.com/popcornpalace/cinema-reservation-system/internal/api"
	"github.com/popcornpalace/cinema-reservation-system/internal/vcs"
)

func (app *Application) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	resp := api.HealthCheckResponse{
		Status: "UP",
		SystemInfo: api.SystemInfo{
			Version:     vcs.Version(),
			Environment: app.config.Env,
		},
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
