package stats

import (
	"time"

	"github.com/mww/sports_scoreboard/model"
)

type sampleGame struct {
	id       string
	sport    string
	league   string
	home     string
	away     string
	status   model.GameStatus
	clock    string
	homeMin  int
	homeSpan int
	awayMin  int
	awaySpan int
}

// The scoreboard always shows these games, only the scores change.
var sampleGames = []sampleGame{
	{id: "1", sport: "Soccer", league: "Premier League", home: "Arsenal", away: "Liverpool",
		status: model.StatusLive, clock: "45'", homeSpan: 4, awaySpan: 4},
	{id: "2", sport: "Soccer", league: "La Liga", home: "Barcelona", away: "Real Madrid",
		status: model.StatusLive, clock: "67'", homeSpan: 3, awaySpan: 3},
	{id: "3", sport: "Basketball", league: "NBA", home: "Lakers", away: "Warriors",
		status: model.StatusLive, clock: "Q3 8:45", homeMin: 80, homeSpan: 40, awayMin: 80, awaySpan: 40},
	{id: "4", sport: "Soccer", league: "Premier League", home: "Manchester United", away: "Chelsea",
		status: model.StatusFinished, clock: "FT", homeSpan: 3, awaySpan: 3},
	{id: "5", sport: "Basketball", league: "NBA", home: "Celtics", away: "Heat",
		status: model.StatusFinished, clock: "Final", homeMin: 90, homeSpan: 30, awayMin: 90, awaySpan: 30},
}

// GenerateGames creates the sample games with new random scores, all dated on
// the day of now.
func GenerateGames(r Rand, now time.Time) []model.Game {
	date := now.Format(time.DateOnly)
	games := make([]model.Game, 0, len(sampleGames))
	for _, s := range sampleGames {
		games = append(games, model.Game{
			ID:        s.id,
			Sport:     s.sport,
			League:    s.league,
			HomeTeam:  s.home,
			AwayTeam:  s.away,
			HomeScore: intn(r, s.homeMin, s.homeSpan),
			AwayScore: intn(r, s.awayMin, s.awaySpan),
			Status:    s.status,
			Clock:     s.clock,
			Date:      date,
		})
	}
	return games
}
