package app

import (
	"net/http"

	"github.com/ecopoints/movie-booking/api"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"
)

const apiBaseURL = "/v1"

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)
	r.MethodNotAllowed(app.methodNotAllowedResponse)

	r.Use(middleware.RequestID)
	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))
	r.Use(app.logRequest)
	r.Use(middleware.Logger)
	r.Use(app.recoverPanic)
	r.Use(app.sessionManager.LoadAndSave)

	return api.HandlerWithOptions(app, api.ChiServerOptions{
		BaseURL:          apiBaseURL,
		BaseRouter:       r,
		Middlewares:      []api.MiddlewareFunc{app.requireBearerAuth},
		ErrorHandlerFunc: app.invalidParamResponse,
	})
}
