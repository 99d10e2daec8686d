package stats

import (
	"math"
	"strconv"

	"github.com/mww/sports_scoreboard/model"
	"github.com/mww/sports_scoreboard/ranking"
)

// SynthesizeRecord creates a plausible season record. Values are drawn from r
// in this order: matches, wins, losses, goals for, goals against.
//
// Wins and losses are clamped so that draws can never go negative; the record
// always satisfies wins + losses + draws == matches.
func SynthesizeRecord(r Rand) model.TeamRecord {
	matches := intn(r, 25, 10)

	wins := int(math.Floor(draw(r)*float64(matches)*0.6)) + int(math.Floor(float64(matches)*0.2))
	wins = clamp(wins, 0, matches)

	losses := int(math.Floor(draw(r) * float64(matches-wins) * 0.7))
	losses = clamp(losses, 0, matches-wins)

	draws := matches - wins - losses

	return model.TeamRecord{
		Matches:      matches,
		Wins:         wins,
		Losses:       losses,
		Draws:        draws,
		Points:       wins*3 + draws,
		GoalsFor:     math.Floor(draw(r)*30) + float64(wins)*1.5,
		GoalsAgainst: math.Floor(draw(r)*20) + float64(losses)*1.2,
	}
}

// SynthesizeTeams gives every team a new record and returns them as a league
// table, highest points first. The input slice is not modified.
func SynthesizeTeams(r Rand, teams []model.Team) []model.Team {
	res := make([]model.Team, len(teams))
	for i, t := range teams {
		t.Stats = SynthesizeRecord(r)
		res[i] = t
	}
	return ranking.SortTeams(res)
}

// FallbackTeams builds teams from the league's static roster. They have no
// badge, founding year or stadium.
func FallbackTeams(l *model.League) []model.Team {
	names := model.FallbackRoster(l)
	teams := make([]model.Team, 0, len(names))
	for i, n := range names {
		teams = append(teams, model.Team{
			ID:   strconv.Itoa(i + 1),
			Name: n,
		})
	}
	return teams
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
