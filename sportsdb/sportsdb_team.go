package sportsdb

import (
	"strconv"
	"strings"

	"github.com/mww/sports_scoreboard/model"
)

type teamsResponse struct {
	// Missing and null both decode to a nil slice.
	Teams []sportsDBTeam `json:"teams"`
}

type sportsDBTeam struct {
	ID        string `json:"idTeam"`
	Name      string `json:"strTeam"`
	TeamBadge string `json:"strTeamBadge"`
	Badge     string `json:"strBadge"` // newer responses renamed strTeamBadge
	Formed    any    `json:"intFormedYear"`
	Stadium   string `json:"strStadium"`
}

func (t *sportsDBTeam) toTeam() model.Team {
	badge := t.TeamBadge
	if badge == "" {
		badge = t.Badge
	}
	return model.Team{
		ID:      strings.TrimSpace(t.ID),
		Name:    strings.TrimSpace(t.Name),
		Badge:   strings.TrimSpace(badge),
		Founded: formatYear(t.Formed),
		Stadium: strings.TrimSpace(t.Stadium),
	}
}

// intFormedYear is documented as a number but is usually sent as a string,
// and "0" is used when the year is unknown.
func formatYear(v any) string {
	var s string
	switch y := v.(type) {
	case string:
		s = strings.TrimSpace(y)
	case float64:
		s = strconv.Itoa(int(y))
	}
	if s == "0" {
		return ""
	}
	return s
}
