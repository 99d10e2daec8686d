package mocksportsdb

import (
	"context"

	"github.com/mww/sports_scoreboard/model"
	"github.com/stretchr/testify/mock"
)

type Client struct {
	mock.Mock
}

func (c *Client) SearchTeams(ctx context.Context, name string) ([]model.Team, error) {
	args := c.Called(ctx, name)

	var res []model.Team
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Team)
	}

	return res, args.Error(1)
}

func (c *Client) LookupAllTeams(ctx context.Context, leagueID string) ([]model.Team, error) {
	args := c.Called(ctx, leagueID)

	var res []model.Team
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Team)
	}

	return res, args.Error(1)
}
