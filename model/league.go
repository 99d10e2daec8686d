package model

import (
	"strings"
)

type League struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Sport Sport  `json:"sport"`
}

var (
	LEAGUE_EPL        = &League{ID: "4328", Name: "Premier League", Sport: SportSoccer}
	LEAGUE_LALIGA     = &League{ID: "4331", Name: "La Liga", Sport: SportSoccer}
	LEAGUE_BUNDESLIGA = &League{ID: "4334", Name: "Bundesliga", Sport: SportSoccer}
	LEAGUE_NBA        = &League{ID: "4387", Name: "NBA", Sport: SportBasketball}

	leagues   = []*League{LEAGUE_EPL, LEAGUE_LALIGA, LEAGUE_BUNDESLIGA, LEAGUE_NBA}
	leagueMap = buildLeagueMap()

	// Team names used when TheSportsDB cannot give us the teams in a league.
	fallbackRosters = map[*League][]string{
		LEAGUE_EPL: {"Arsenal", "Liverpool", "Manchester City", "Chelsea", "Manchester United",
			"Tottenham", "Newcastle", "Brighton", "Aston Villa", "West Ham"},
		LEAGUE_LALIGA: {"Barcelona", "Real Madrid", "Atletico Madrid", "Sevilla", "Real Betis",
			"Villarreal", "Athletic Bilbao", "Valencia", "Real Sociedad", "Osasuna"},
		LEAGUE_BUNDESLIGA: {"Bayern Munich", "Borussia Dortmund", "RB Leipzig", "Bayer Leverkusen", "Union Berlin",
			"Freiburg", "Eintracht Frankfurt", "Wolfsburg", "Mainz", "Borussia Monchengladbach"},
		LEAGUE_NBA: {"Lakers", "Warriors", "Celtics", "Heat", "Nuggets",
			"Suns", "Bucks", "76ers", "Nets", "Clippers"},
	}
)

// Leagues returns all of the leagues that have a team table, in selector order.
func Leagues() []League {
	res := make([]League, 0, len(leagues))
	for _, l := range leagues {
		res = append(res, *l)
	}
	return res
}

// FindLeague looks up a league by name or TheSportsDB id, case insensitive.
// Unknown leagues return the Premier League.
func FindLeague(nameOrID string) *League {
	l := leagueMap[strings.ToLower(strings.TrimSpace(nameOrID))]
	if l == nil {
		return LEAGUE_EPL
	}
	return l
}

// IsKnownLeague reports whether FindLeague would find the league without
// falling back to the default.
func IsKnownLeague(nameOrID string) bool {
	_, found := leagueMap[strings.ToLower(strings.TrimSpace(nameOrID))]
	return found
}

// FallbackRoster returns the static team names for a league.
func FallbackRoster(l *League) []string {
	names, found := fallbackRosters[FindLeague(l.ID)]
	if !found {
		names = fallbackRosters[LEAGUE_EPL]
	}
	res := make([]string, len(names))
	copy(res, names)
	return res
}

func buildLeagueMap() map[string]*League {
	m := make(map[string]*League)
	for _, l := range leagues {
		m[strings.ToLower(l.Name)] = l
		m[l.ID] = l
	}
	return m
}
