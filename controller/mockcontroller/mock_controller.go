package mockcontroller

import (
	"context"
	"sync"
	"time"

	"github.com/mww/sports_scoreboard/model"
	"github.com/stretchr/testify/mock"
)

type C struct {
	mock.Mock
}

func (c *C) GetScoreboard() *model.Scoreboard {
	args := c.Called()

	var sb *model.Scoreboard
	if args.Get(0) != nil {
		sb = args.Get(0).(*model.Scoreboard)
	}

	return sb
}

func (c *C) RefreshScoreboard(ctx context.Context) (*model.Scoreboard, error) {
	args := c.Called(ctx)

	var sb *model.Scoreboard
	if args.Get(0) != nil {
		sb = args.Get(0).(*model.Scoreboard)
	}

	return sb, args.Error(1)
}

func (c *C) RunPeriodicScoreboardUpdates(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	c.Called(frequency, shutdown, wg)
}

func (c *C) GetTeamStandings(ctx context.Context, league string) (*model.Standings, error) {
	args := c.Called(ctx, league)

	var s *model.Standings
	if args.Get(0) != nil {
		s = args.Get(0).(*model.Standings)
	}

	return s, args.Error(1)
}

func (c *C) SearchTeams(ctx context.Context, name string) ([]model.Team, error) {
	args := c.Called(ctx, name)

	var res []model.Team
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Team)
	}

	return res, args.Error(1)
}

func (c *C) GetPlayerRankings(ctx context.Context, sport model.Sport, category model.Category) ([]model.Player, error) {
	args := c.Called(ctx, sport, category)

	var res []model.Player
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Player)
	}

	return res, args.Error(1)
}
