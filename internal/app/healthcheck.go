package app

import (
	"context"
	"net/http"
	"time"

	"github.com/ecopoints/movie-booking/api"
)

func (app *Application) GetHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status, code := "UP", http.StatusOK

	if err := app.pingDependencies(ctx); err != nil {
		app.contextGetLogger(r).Error("healthcheck dependency failure", "error", err)
		status, code = "DOWN", http.StatusServiceUnavailable
	}

	resp := api.HealthcheckResponse{
		Status: status,
		SystemInfo: api.SystemInfo{
			Version:     version,
			Environment: app.config.Env,
		},
	}

	err := app.writeJSON(w, code, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) pingDependencies(ctx context.Context) error {
	if app.db != nil {
		if err := app.db.Ping(ctx); err != nil {
			return err
		}
	}

	if app.redis != nil {
		if err := app.redis.Ping(ctx).Err(); err != nil {
			return err
		}
	}

	return nil
}
