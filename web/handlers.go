package web

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/mww/sports_scoreboard/controller"
	"github.com/mww/sports_scoreboard/model"
	"github.com/unrolled/render"
)

func scoreboardHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view := model.ParseViewState(r.URL.Query()).With(model.TabScoreboard)

		data := map[string]any{
			"view":       view,
			"scoreboard": ctrl.GetScoreboard(),
		}
		render.HTML(w, http.StatusOK, "scoreboard", data)
	}
}

func refreshScoreboardHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		if _, err := ctrl.RefreshScoreboard(r.Context()); err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		view := model.ParseViewState(r.Form).With(model.TabScoreboard)
		http.Redirect(w, r, fmt.Sprintf("/?%s", view.Query().Encode()), http.StatusSeeOther)
	}
}

func teamsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view := model.ParseViewState(r.URL.Query()).With(model.TabTeams)

		standings, err := ctrl.GetTeamStandings(r.Context(), view.League)
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		data := map[string]any{
			"view":      view,
			"leagues":   model.Leagues(),
			"standings": standings,
		}
		render.HTML(w, http.StatusOK, "teams", data)
	}
}

func playersHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view := model.ParseViewState(r.URL.Query()).With(model.TabPlayers)

		players, err := ctrl.GetPlayerRankings(r.Context(), view.Sport, view.Category)
		if err != nil {
			if errors.Is(err, controller.ErrUnknownSport) {
				render.HTML(w, http.StatusBadRequest, "400", err.Error())
			} else {
				render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			}
			return
		}

		data := map[string]any{
			"view":       view,
			"sports":     model.Sports(),
			"categories": model.Categories(view.Sport),
			"stats":      model.DisplayStats(view.Sport),
			"players":    players,
		}
		render.HTML(w, http.StatusOK, "players", data)
	}
}

func notFoundHandler(render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Printf("no route for %s %s", r.Method, r.URL.Path)
		render.HTML(w, http.StatusNotFound, "404", fmt.Sprintf("%s was not found", r.URL.Path))
	}
}
