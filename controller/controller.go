package controller

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/mww/sports_scoreboard/model"
	"github.com/mww/sports_scoreboard/publisher"
	"github.com/mww/sports_scoreboard/sportsdb"
	"github.com/mww/sports_scoreboard/stats"
)

// Only the first teams of a league are shown in the table.
const maxLeagueTeams = 10

// Number of teams kept from the featured team search.
const maxFeaturedTeams = 5

var ErrUnknownSport = errors.New("unknown sport")

// C encapsulates business logic without worrying about any web layers
type C interface {
	// GetScoreboard returns the current scoreboard. The result is shared and must
	// not be modified.
	GetScoreboard() *model.Scoreboard
	// RefreshScoreboard generates a new scoreboard, stores it as the current one
	// and publishes it.
	RefreshScoreboard(ctx context.Context) (*model.Scoreboard, error)
	RunPeriodicScoreboardUpdates(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup)

	// GetTeamStandings builds a league table for a league name or id. Problems
	// talking to TheSportsDB are not returned, the league's fallback roster is
	// used instead and Standings.Fallback is set.
	GetTeamStandings(ctx context.Context, league string) (*model.Standings, error)
	SearchTeams(ctx context.Context, name string) ([]model.Team, error)

	GetPlayerRankings(ctx context.Context, sport model.Sport, category model.Category) ([]model.Player, error)
}

type controller struct {
	clock        clock.Clock
	rand         stats.Rand
	sportsDB     sportsdb.Client
	publisher    publisher.Publisher
	featuredTeam string

	mu         sync.RWMutex
	scoreboard *model.Scoreboard
}

// New creates a controller. A nil publisher discards scoreboard updates and an
// empty featuredTeam turns off the featured teams.
func New(clock clock.Clock, rand stats.Rand, sportsDB sportsdb.Client, pub publisher.Publisher, featuredTeam string) (C, error) {
	if clock == nil || rand == nil || sportsDB == nil {
		return nil, errors.New("clock, rand and sportsdb client are required")
	}
	if pub == nil {
		pub = publisher.Nop()
	}

	c := &controller{
		clock:        clock,
		rand:         rand,
		sportsDB:     sportsDB,
		publisher:    pub,
		featuredTeam: featuredTeam,
	}
	// Start with a scoreboard so there is always something to show, featured
	// teams are filled in by the first refresh.
	c.scoreboard = c.newScoreboard(nil)
	return c, nil
}
