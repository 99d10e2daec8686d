package model

import (
	"net/url"
	"strings"
)

type Tab string

const (
	TabScoreboard Tab = "scoreboard"
	TabTeams      Tab = "teams"
	TabPlayers    Tab = "players"
)

func ParseTab(s string) Tab {
	switch Tab(strings.ToLower(strings.TrimSpace(s))) {
	case TabTeams:
		return TabTeams
	case TabPlayers:
		return TabPlayers
	default:
		return TabScoreboard
	}
}

// ViewState is everything the dashboard needs to know about what the user has
// selected. It round trips through a URL query so it can live in links and
// forms instead of in the server.
type ViewState struct {
	Tab      Tab      `json:"tab"`
	Sport    Sport    `json:"sport"`
	Category Category `json:"category"`
	League   string   `json:"league"`
}

// DefaultViewState is the view shown when the query has no usable values.
func DefaultViewState() ViewState {
	return ViewState{
		Tab:      TabScoreboard,
		Sport:    SportSoccer,
		Category: DefaultCategory(SportSoccer),
		League:   LEAGUE_EPL.Name,
	}
}

// ParseViewState reads the view state out of a query. Missing or invalid values
// are replaced so the result is always usable: an unknown sport becomes soccer,
// a category that does not belong to the sport becomes the sport's first
// category and an unknown league becomes the Premier League.
func ParseViewState(q url.Values) ViewState {
	vs := ViewState{
		Tab:      ParseTab(q.Get("tab")),
		Sport:    ParseSport(q.Get("sport")),
		Category: Category(strings.TrimSpace(q.Get("category"))),
		League:   FindLeague(q.Get("league")).Name,
	}
	return vs.Normalize()
}

// Normalize replaces invalid values with the ones from DefaultViewState.
func (vs ViewState) Normalize() ViewState {
	def := DefaultViewState()
	vs.Tab = ParseTab(string(vs.Tab))
	if vs.Sport != SportSoccer && vs.Sport != SportBasketball {
		vs.Sport = def.Sport
	}
	if !vs.Category.BelongsTo(vs.Sport) {
		vs.Category = DefaultCategory(vs.Sport)
	}
	vs.League = FindLeague(vs.League).Name
	return vs
}

// Query encodes the view state so ParseViewState returns the same value.
func (vs ViewState) Query() url.Values {
	q := url.Values{}
	q.Set("tab", string(vs.Tab))
	q.Set("sport", string(vs.Sport))
	q.Set("category", string(vs.Category))
	q.Set("league", vs.League)
	return q
}

// With returns a copy of the view state with a different tab.
func (vs ViewState) With(tab Tab) ViewState {
	vs.Tab = tab
	return vs
}
