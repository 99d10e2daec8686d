package controller

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/mww/sports_scoreboard/model"
	"github.com/mww/sports_scoreboard/ranking"
	"github.com/mww/sports_scoreboard/sportsdb"
	"github.com/mww/sports_scoreboard/stats"
)

func (c *controller) GetTeamStandings(ctx context.Context, league string) (*model.Standings, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if !model.IsKnownLeague(league) {
		log.Printf("unknown league '%s', showing %s", league, model.LEAGUE_EPL.Name)
	}
	l := model.FindLeague(league)
	teams, fallback := c.loadTeams(ctx, l)
	teams = stats.SynthesizeTeams(c.rand, teams)

	return &model.Standings{
		League:   *l,
		Teams:    teams,
		Summary:  ranking.Summarize(teams),
		Fallback: fallback,
	}, nil
}

// loadTeams gets the teams for a league from TheSportsDB, falling back to the
// static roster on any error. The bool is true when the fallback was used.
func (c *controller) loadTeams(ctx context.Context, l *model.League) ([]model.Team, bool) {
	teams, err := c.sportsDB.LookupAllTeams(ctx, l.ID)
	if err != nil {
		if errors.Is(err, sportsdb.ErrNoTeams) {
			log.Printf("no teams from sportsdb for %s (%s), using fallback roster", l.Name, l.ID)
		} else {
			log.Printf("error loading teams for %s (%s), using fallback roster: %v", l.Name, l.ID, err)
		}
		return stats.FallbackTeams(l), true
	}

	if len(teams) > maxLeagueTeams {
		teams = teams[:maxLeagueTeams]
	}
	return teams, false
}

func (c *controller) SearchTeams(ctx context.Context, name string) ([]model.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("a team name is required")
	}
	return c.sportsDB.SearchTeams(ctx, name)
}
