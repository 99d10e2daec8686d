package stats

import (
	"github.com/mww/sports_scoreboard/model"
)

// field is a single generated stat. Values are drawn from [min, min+span).
type field struct {
	stat    model.Stat
	min     float64
	span    float64
	decimal bool
}

var (
	soccerTopScorers = []field{
		{stat: model.StatGoals, min: 10, span: 25},
		{stat: model.StatAssists, min: 3, span: 15},
		{stat: model.StatMatches, min: 20, span: 10},
		{stat: model.StatRating, min: 7, span: 2, decimal: true},
	}
	soccerAssists = []field{
		{stat: model.StatAssists, min: 8, span: 20},
		{stat: model.StatGoals, min: 5, span: 15},
		{stat: model.StatMatches, min: 20, span: 10},
		{stat: model.StatRating, min: 7, span: 2, decimal: true},
	}
	soccerTopRated = []field{
		{stat: model.StatRating, min: 7, span: 2, decimal: true},
		{stat: model.StatGoals, min: 5, span: 20},
		{stat: model.StatAssists, min: 3, span: 15},
		{stat: model.StatMatches, min: 20, span: 10},
	}
	basketballPoints = []field{
		{stat: model.StatPoints, min: 25, span: 10, decimal: true},
		{stat: model.StatRebounds, min: 6, span: 5, decimal: true},
		{stat: model.StatAssists, min: 5, span: 5, decimal: true},
		{stat: model.StatGames, min: 50, span: 20},
	}
	basketballRebounds = []field{
		{stat: model.StatRebounds, min: 10, span: 5, decimal: true},
		{stat: model.StatPoints, min: 20, span: 10, decimal: true},
		{stat: model.StatAssists, min: 3, span: 5, decimal: true},
		{stat: model.StatGames, min: 50, span: 20},
	}
	basketballAssists = []field{
		{stat: model.StatAssists, min: 8, span: 5, decimal: true},
		{stat: model.StatPoints, min: 20, span: 10, decimal: true},
		{stat: model.StatRebounds, min: 5, span: 5, decimal: true},
		{stat: model.StatGames, min: 50, span: 20},
	}
)

// fieldsFor returns the generated fields for a sport and category. Categories
// that are not listed for the sport get the sport's last table, and any sport
// other than soccer is treated as basketball.
func fieldsFor(sport model.Sport, category model.Category) []field {
	if sport == model.SportSoccer {
		switch category {
		case model.CatTopScorers:
			return soccerTopScorers
		case model.CatAssists:
			return soccerAssists
		default:
			return soccerTopRated
		}
	}

	switch category {
	case model.CatPointsLeaders:
		return basketballPoints
	case model.CatReboundLeaders:
		return basketballRebounds
	default:
		return basketballAssists
	}
}

// GeneratePlayerStats creates a random stat line for a player. Each field takes
// exactly one value from r, in the order the fields are listed.
func GeneratePlayerStats(r Rand, sport model.Sport, category model.Category) model.StatLine {
	fields := fieldsFor(sport, category)
	line := make(model.StatLine, 0, len(fields))
	for _, f := range fields {
		v := model.StatValue{Stat: f.stat, Decimal: f.decimal}
		if f.decimal {
			v.Value = tenths(r, f.min, f.span)
		} else {
			v.Value = float64(intn(r, int(f.min), int(f.span)))
		}
		line = append(line, v)
	}
	return line
}

// GeneratePlayers attaches a new stat line to every player in the sport's
// roster. Players are returned in roster order with Rank set to their roster
// position; use ranking.RankPlayers to order them.
func GeneratePlayers(r Rand, sport model.Sport, category model.Category) []model.Player {
	roster := model.PlayerRoster(sport)
	players := make([]model.Player, 0, len(roster))
	for i, e := range roster {
		players = append(players, model.Player{
			ID:      i + 1,
			Name:    e.Name,
			Team:    e.Team,
			Country: e.Country,
			Rank:    i + 1,
			Stats:   GeneratePlayerStats(r, sport, category),
		})
	}
	return players
}
