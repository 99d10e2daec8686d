package web

import (
	"errors"
	"net/http"

	"github.com/mww/sports_scoreboard/controller"
	"github.com/mww/sports_scoreboard/model"
	"github.com/mww/sports_scoreboard/sportsdb"
	"github.com/unrolled/render"
)

type apiError struct {
	Error string `json:"error"`
}

func apiScoreboardHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, http.StatusOK, ctrl.GetScoreboard())
	}
}

func apiRefreshScoreboardHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sb, err := ctrl.RefreshScoreboard(r.Context())
		if err != nil {
			render.JSON(w, http.StatusInternalServerError, apiError{Error: err.Error()})
			return
		}
		render.JSON(w, http.StatusOK, sb)
	}
}

func apiTeamsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view := model.ParseViewState(r.URL.Query())

		standings, err := ctrl.GetTeamStandings(r.Context(), view.League)
		if err != nil {
			render.JSON(w, http.StatusInternalServerError, apiError{Error: err.Error()})
			return
		}
		render.JSON(w, http.StatusOK, standings)
	}
}

func apiSearchTeamsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("t")
		if name == "" {
			render.JSON(w, http.StatusBadRequest, apiError{Error: "the t parameter is required"})
			return
		}

		teams, err := ctrl.SearchTeams(r.Context(), name)
		if err != nil {
			if errors.Is(err, sportsdb.ErrNoTeams) {
				render.JSON(w, http.StatusOK, []model.Team{})
			} else {
				render.JSON(w, http.StatusBadGateway, apiError{Error: err.Error()})
			}
			return
		}
		render.JSON(w, http.StatusOK, teams)
	}
}

func apiPlayersHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view := model.ParseViewState(r.URL.Query())

		players, err := ctrl.GetPlayerRankings(r.Context(), view.Sport, view.Category)
		if err != nil {
			render.JSON(w, http.StatusInternalServerError, apiError{Error: err.Error()})
			return
		}

		render.JSON(w, http.StatusOK, map[string]any{
			"sport":    view.Sport,
			"category": view.Category,
			"players":  players,
		})
	}
}

func apiLeaguesHandler(render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, http.StatusOK, model.Leagues())
	}
}

func apiCategoriesHandler(render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view := model.ParseViewState(r.URL.Query())
		render.JSON(w, http.StatusOK, map[string]any{
			"sport":      view.Sport,
			"categories": model.Categories(view.Sport),
		})
	}
}

func apiNotFoundHandler(render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, http.StatusNotFound, apiError{Error: "not found"})
	}
}

func healthHandler(hub *Hub, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, http.StatusOK, map[string]any{
			"status":  "ok",
			"clients": hub.ClientCount(),
		})
	}
}
