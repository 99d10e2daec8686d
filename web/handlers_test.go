package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/mww/sports_scoreboard/controller"
	"github.com/mww/sports_scoreboard/controller/mockcontroller"
	"github.com/mww/sports_scoreboard/model"
	"github.com/mww/sports_scoreboard/sportsdb"
	"github.com/stretchr/testify/mock"
)

var testScoreboard = &model.Scoreboard{
	Games: []model.Game{
		{ID: "1", Sport: "Soccer", League: "Premier League", HomeTeam: "Arsenal", AwayTeam: "Liverpool",
			HomeScore: 2, AwayScore: 1, Status: model.StatusLive, Clock: "67'", Date: "2024-10-12"},
		{ID: "2", Sport: "Basketball", League: "NBA", HomeTeam: "Lakers", AwayTeam: "Warriors",
			Status: model.StatusNotStarted},
	},
	Featured: []model.Team{{ID: "133604", Name: "Arsenal", Stadium: "Emirates Stadium"}},
	Updated:  time.Date(2024, time.October, 12, 15, 30, 0, 0, time.UTC),
}

func testStandings() *model.Standings {
	teams := []model.Team{
		{ID: "1", Name: "Barcelona", Position: 1, Badge: "https://example.com/barca.png",
			Stats: model.TeamRecord{Matches: 30, Wins: 20, Draws: 5, Losses: 5, GoalsFor: 52, GoalsAgainst: 21.5, Points: 65}},
		{ID: "2", Name: "Real Madrid", Position: 2,
			Stats: model.TeamRecord{Matches: 30, Wins: 15, Draws: 10, Losses: 5, GoalsFor: 40.5, GoalsAgainst: 18, Points: 55}},
	}
	return &model.Standings{
		League: *model.LEAGUE_LALIGA,
		Teams:  teams,
		Summary: model.LeagueSummary{
			TopPerformer: &teams[0],
			BestAttack:   &teams[0],
			BestDefense:  &teams[1],
		},
	}
}

func newTestRouter(ctrl controller.C) *chi.Mux {
	return getRouter(ctrl, NewHub(), newRender())
}

func serve(router http.Handler, method, target string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func checkContains(t *testing.T, body string, want ...string) {
	t.Helper()
	for _, s := range want {
		if !strings.Contains(body, s) {
			t.Errorf("expected body to contain '%s'", s)
		}
	}
}

func TestScoreboardHandler(t *testing.T) {
	ctrl := &mockcontroller.C{}
	ctrl.On("GetScoreboard").Return(testScoreboard)

	w := serve(newTestRouter(ctrl), http.MethodGet, "/", "")
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status code: %d", w.Code)
	}

	checkContains(t, w.Body.String(),
		"Arsenal", "Liverpool", "Lakers", "Warriors",
		`data-game-id="1"`,
		`class="game-status live"`,
		`class="game-status upcoming"`,
		"67&#39; - 2024-10-12", "TBD",
		"Emirates Stadium",
		"15:30:00",
		"/ws/scores")
	ctrl.AssertExpectations(t)
}

func TestRefreshScoreboardHandler(t *testing.T) {
	ctrl := &mockcontroller.C{}
	ctrl.On("RefreshScoreboard", mock.Anything).Return(testScoreboard, nil).Once()

	w := serve(newTestRouter(ctrl), http.MethodPost, "/scoreboard/refresh", "sport=basketball&league=NBA")
	if w.Code != http.StatusSeeOther {
		t.Fatalf("unexpected status code: %d", w.Code)
	}

	loc, err := url.Parse(w.Header().Get("Location"))
	if err != nil {
		t.Fatalf("error parsing location: %v", err)
	}
	if loc.Path != "/" {
		t.Errorf("unexpected redirect path: %s", loc.Path)
	}
	q := loc.Query()
	if q.Get("sport") != "basketball" || q.Get("league") != "NBA" || q.Get("category") != "pointsLeaders" {
		t.Errorf("view state was not kept in the redirect: %s", loc.RawQuery)
	}
	ctrl.AssertExpectations(t)
}

func TestRefreshScoreboardHandler_error(t *testing.T) {
	ctrl := &mockcontroller.C{}
	ctrl.On("RefreshScoreboard", mock.Anything).Return(nil, errors.New("context canceled"))

	w := serve(newTestRouter(ctrl), http.MethodPost, "/scoreboard/refresh", "")
	if w.Code != http.StatusInternalServerError {
		t.Errorf("unexpected status code: %d", w.Code)
	}
	checkContains(t, w.Body.String(), "context canceled")
}

func TestTeamsHandler(t *testing.T) {
	ctrl := &mockcontroller.C{}
	ctrl.On("GetTeamStandings", mock.Anything, "La Liga").Return(testStandings(), nil)

	w := serve(newTestRouter(ctrl), http.MethodGet, "/teams?league=la+liga", "")
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status code: %d", w.Code)
	}

	checkContains(t, w.Body.String(),
		"Barcelona", "Real Madrid",
		`<option value="La Liga" selected>`,
		`src="https://example.com/barca.png"`,
		`class="pos gold"`,
		"66.7%", "50.0%",
		"52 goals", "18 goals conceded", "40.5",
		"65 points")
	if strings.Contains(w.Body.String(), "Team data is unavailable") {
		t.Error("fallback notice should not be shown")
	}
	ctrl.AssertExpectations(t)
}

func TestTeamsHandler_fallbackAndErrors(t *testing.T) {
	s := testStandings()
	s.Fallback = true

	ctrl := &mockcontroller.C{}
	ctrl.On("GetTeamStandings", mock.Anything, "Premier League").Return(s, nil).Once()
	ctrl.On("GetTeamStandings", mock.Anything, "NBA").Return(nil, errors.New("boom")).Once()

	router := newTestRouter(ctrl)

	// Unknown leagues are shown as the Premier League
	w := serve(router, http.MethodGet, "/teams?league=Serie+A", "")
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status code: %d", w.Code)
	}
	checkContains(t, w.Body.String(), "Team data is unavailable")

	w = serve(router, http.MethodGet, "/teams?league=NBA", "")
	if w.Code != http.StatusInternalServerError {
		t.Errorf("unexpected status code: %d", w.Code)
	}
	ctrl.AssertExpectations(t)
}

func TestPlayersHandler(t *testing.T) {
	players := []model.Player{
		{ID: 3, Name: "Nikola Jokic", Team: "Denver Nuggets", Country: "Serbia", Rank: 1,
			Stats: model.StatLine{
				{Stat: model.StatPoints, Value: 34.2, Decimal: true},
				{Stat: model.StatRebounds, Value: 10.1, Decimal: true},
				{Stat: model.StatAssists, Value: 9.8, Decimal: true},
				{Stat: model.StatGames, Value: 61},
			}},
	}

	tests := map[string]struct {
		query    string
		sport    model.Sport
		category model.Category
	}{
		"defaults":                  {query: "", sport: model.SportSoccer, category: model.CatTopScorers},
		"basketball":                {query: "sport=basketball&category=reboundLeaders", sport: model.SportBasketball, category: model.CatReboundLeaders},
		"category from other sport": {query: "sport=basketball&category=topScorers", sport: model.SportBasketball, category: model.CatPointsLeaders},
		"unknown sport":             {query: "sport=cricket&category=assists", sport: model.SportSoccer, category: model.CatAssists},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl := &mockcontroller.C{}
			ctrl.On("GetPlayerRankings", mock.Anything, tc.sport, tc.category).Return(players, nil).Once()

			w := serve(newTestRouter(ctrl), http.MethodGet, "/players?"+tc.query, "")
			if w.Code != http.StatusOK {
				t.Fatalf("unexpected status code: %d", w.Code)
			}
			checkContains(t, w.Body.String(), "Nikola Jokic", "Denver Nuggets", `class="rank-badge gold"`)
			ctrl.AssertExpectations(t)
		})
	}
}

func TestPlayersHandler_statColumns(t *testing.T) {
	players := []model.Player{
		{ID: 1, Name: "LeBron James", Team: "Los Angeles Lakers", Country: "USA", Rank: 1,
			Stats: model.StatLine{
				{Stat: model.StatPoints, Value: 27.5, Decimal: true},
				{Stat: model.StatGames, Value: 55},
			}},
	}

	ctrl := &mockcontroller.C{}
	ctrl.On("GetPlayerRankings", mock.Anything, model.SportBasketball, model.CatPointsLeaders).Return(players, nil)

	w := serve(newTestRouter(ctrl), http.MethodGet, "/players?sport=basketball", "")
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status code: %d", w.Code)
	}
	checkContains(t, w.Body.String(), "27.5", "PPG", "RPG", "APG", "55", "-",
		`<option value="basketball" selected>`,
		`<option value="pointsLeaders" selected>`)
}

func TestPlayersHandler_errors(t *testing.T) {
	ctrl := &mockcontroller.C{}
	ctrl.On("GetPlayerRankings", mock.Anything, model.SportSoccer, model.CatTopScorers).Return(nil, controller.ErrUnknownSport).Once()
	ctrl.On("GetPlayerRankings", mock.Anything, model.SportBasketball, model.CatPointsLeaders).Return(nil, errors.New("boom")).Once()

	router := newTestRouter(ctrl)

	w := serve(router, http.MethodGet, "/players", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("unexpected status code: %d", w.Code)
	}

	w = serve(router, http.MethodGet, "/players?sport=nba", "")
	if w.Code != http.StatusInternalServerError {
		t.Errorf("unexpected status code: %d", w.Code)
	}
}

func TestNotFound(t *testing.T) {
	router := newTestRouter(&mockcontroller.C{})

	w := serve(router, http.MethodGet, "/leagues/123", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("unexpected status code: %d", w.Code)
	}
	checkContains(t, w.Body.String(), "/leagues/123 was not found")

	w = serve(router, http.MethodGet, "/api/unknown", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("unexpected status code: %d", w.Code)
	}
	checkContains(t, w.Body.String(), `{"error":"not found"}`)
}

func TestAPIScoreboard(t *testing.T) {
	ctrl := &mockcontroller.C{}
	ctrl.On("GetScoreboard").Return(testScoreboard)
	ctrl.On("RefreshScoreboard", mock.Anything).Return(testScoreboard, nil)

	router := newTestRouter(ctrl)

	for _, req := range []struct{ method, target string }{
		{http.MethodGet, "/api/scoreboard"},
		{http.MethodPost, "/api/scoreboard/refresh"},
	} {
		w := serve(router, req.method, req.target, "")
		if w.Code != http.StatusOK {
			t.Fatalf("%s: unexpected status code: %d", req.target, w.Code)
		}

		var sb model.Scoreboard
		if err := json.Unmarshal(w.Body.Bytes(), &sb); err != nil {
			t.Fatalf("%s: error decoding scoreboard: %v", req.target, err)
		}
		if len(sb.Games) != 2 || sb.Games[0].Clock != "67'" || !sb.Updated.Equal(testScoreboard.Updated) {
			t.Errorf("%s: unexpected scoreboard: %+v", req.target, sb)
		}
	}
	ctrl.AssertExpectations(t)
}

func TestAPITeams(t *testing.T) {
	ctrl := &mockcontroller.C{}
	ctrl.On("GetTeamStandings", mock.Anything, "La Liga").Return(testStandings(), nil)

	w := serve(newTestRouter(ctrl), http.MethodGet, "/api/teams?league=4331", "")
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status code: %d", w.Code)
	}

	var got struct {
		League  model.League `json:"league"`
		Teams   []model.Team `json:"teams"`
		Summary struct {
			BestDefense model.Team `json:"bestDefense"`
		} `json:"summary"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("error decoding standings: %v", err)
	}
	if got.League.ID != "4331" || len(got.Teams) != 2 || got.Summary.BestDefense.Name != "Real Madrid" {
		t.Errorf("unexpected standings: %+v", got)
	}
}

func TestAPISearchTeams(t *testing.T) {
	ctrl := &mockcontroller.C{}
	ctrl.On("SearchTeams", mock.Anything, "Arsenal").Return([]model.Team{{ID: "133604", Name: "Arsenal"}}, nil)
	ctrl.On("SearchTeams", mock.Anything, "Nobody").Return(nil, sportsdb.ErrNoTeams)
	ctrl.On("SearchTeams", mock.Anything, "Down").Return(nil, errors.New("unexpected status code from sportsdb: 500"))

	router := newTestRouter(ctrl)

	tests := map[string]struct {
		query    string
		wantCode int
		wantBody string
	}{
		"found":         {query: "?t=Arsenal", wantCode: http.StatusOK, wantBody: `"name":"Arsenal"`},
		"no teams":      {query: "?t=Nobody", wantCode: http.StatusOK, wantBody: `[]`},
		"remote error":  {query: "?t=Down", wantCode: http.StatusBadGateway, wantBody: `status code from sportsdb: 500`},
		"missing query": {query: "", wantCode: http.StatusBadRequest, wantBody: `the t parameter is required`},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			w := serve(router, http.MethodGet, "/api/teams/search"+tc.query, "")
			if w.Code != tc.wantCode {
				t.Errorf("unexpected status code: %d", w.Code)
			}
			checkContains(t, w.Body.String(), tc.wantBody)
		})
	}
}

func TestAPIPlayers(t *testing.T) {
	players := []model.Player{
		{ID: 1, Name: "Erling Haaland", Rank: 1, Stats: model.StatLine{{Stat: model.StatGoals, Value: 31}}},
	}

	ctrl := &mockcontroller.C{}
	ctrl.On("GetPlayerRankings", mock.Anything, model.SportSoccer, model.CatTopScorers).Return(players, nil)

	w := serve(newTestRouter(ctrl), http.MethodGet, "/api/players?sport=football", "")
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status code: %d", w.Code)
	}
	checkContains(t, w.Body.String(), `"sport":"soccer"`, `"category":"topScorers"`, `"stats":{"goals":31}`)
}

func TestAPIOptions(t *testing.T) {
	router := newTestRouter(&mockcontroller.C{})

	w := serve(router, http.MethodGet, "/api/leagues", "")
	var leagues []model.League
	if err := json.Unmarshal(w.Body.Bytes(), &leagues); err != nil {
		t.Fatalf("error decoding leagues: %v", err)
	}
	if len(leagues) != 4 || leagues[0].Name != "Premier League" || leagues[3].Sport != model.SportBasketball {
		t.Errorf("unexpected leagues: %+v", leagues)
	}

	w = serve(router, http.MethodGet, "/api/categories?sport=basketball", "")
	var cats struct {
		Sport      model.Sport            `json:"sport"`
		Categories []model.CategoryOption `json:"categories"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &cats); err != nil {
		t.Fatalf("error decoding categories: %v", err)
	}
	if cats.Sport != model.SportBasketball || len(cats.Categories) != 3 || cats.Categories[0].Key != model.CatPointsLeaders {
		t.Errorf("unexpected categories: %+v", cats)
	}
}

func TestAPICORS(t *testing.T) {
	ctrl := &mockcontroller.C{}
	ctrl.On("GetScoreboard").Return(testScoreboard)

	req := httptest.NewRequest(http.MethodGet, "/api/scoreboard", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	newTestRouter(ctrl).ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("unexpected allow origin header: '%s'", got)
	}
}

func TestHealthHandler(t *testing.T) {
	w := serve(newTestRouter(&mockcontroller.C{}), http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status code: %d", w.Code)
	}
	checkContains(t, w.Body.String(), `"status":"ok"`, `"clients":0`)
}
