package main

import (
	"expvar"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func (app *application) routes() http.Handler {
	router := chi.NewRouter()

	// Router
	router.NotFound(app.notFoundResponse)
	router.MethodNotAllowed(app.methodNotAllowedRequest)

	// Middleware
	router.Use(app.metrics)
	router.Use(app.recoverPanic)
	router.Use(cors.Handler(cors.Options{
		// The charting frontend is served from another origin; every
		// endpoint is a public read, so any origin may call.
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         3600,
	}))
	router.Use(app.rateLimit)

	// Healthcheck
	router.Get("/v1/healthcheck", app.HealthCheck)
	router.Method(http.MethodGet, "/v1/metrics", expvar.Handler())

	// Game Endpoints
	router.Get("/v1/games", app.ListGames)
	router.Get("/v1/game/{id}/players", app.GetGamePlayers)
	router.Get("/v1/game/{id}/charts", app.GetGameCharts)

	return router
}
