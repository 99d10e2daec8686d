package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/mww/sports_scoreboard/controller"
	"github.com/unrolled/render"
)

func getRouter(ctrl controller.C, hub *Hub, render *render.Render) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.NotFound(notFoundHandler(render))

	// Websocket connections outlive any request timeout.
	r.Get("/ws/scores", scoresSocketHandler(hub))

	r.Group(func(r chi.Router) {
		// Set a timeout value on the request context (ctx), that will signal
		// through ctx.Done() that the request has timed out and further
		// processing should be stopped.
		r.Use(middleware.Timeout(10 * time.Second))

		r.Get("/", scoreboardHandler(ctrl, render))
		r.Post("/scoreboard/refresh", refreshScoreboardHandler(ctrl, render))
		r.Get("/teams", teamsHandler(ctrl, render))
		r.Get("/players", playersHandler(ctrl, render))

		r.Get("/health", healthHandler(hub, render))

		r.Route("/api", func(r chi.Router) {
			r.Use(cors.Handler(cors.Options{
				AllowedOrigins: []string{"https://*", "http://*"},
				AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
				AllowedHeaders: []string{"Accept", "Content-Type"},
				MaxAge:         300,
			}))

			r.NotFound(apiNotFoundHandler(render))

			r.Get("/scoreboard", apiScoreboardHandler(ctrl, render))
			r.Post("/scoreboard/refresh", apiRefreshScoreboardHandler(ctrl, render))
			r.Get("/teams", apiTeamsHandler(ctrl, render))
			r.Get("/teams/search", apiSearchTeamsHandler(ctrl, render))
			r.Get("/players", apiPlayersHandler(ctrl, render))
			r.Get("/leagues", apiLeaguesHandler(render))
			r.Get("/categories", apiCategoriesHandler(render))
		})
	})

	return r
}
