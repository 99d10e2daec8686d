package controller

import (
	"context"
	"fmt"

	"github.com/mww/sports_scoreboard/model"
	"github.com/mww/sports_scoreboard/ranking"
	"github.com/mww/sports_scoreboard/stats"
)

// GetPlayerRankings generates new stats for the sport's roster and ranks the
// players by the category's primary stat. A category from another sport is
// replaced with the sport's default category.
func (c *controller) GetPlayerRankings(ctx context.Context, sport model.Sport, category model.Category) ([]model.Player, error) {
	if sport != model.SportSoccer && sport != model.SportBasketball {
		return nil, fmt.Errorf("%w: '%s'", ErrUnknownSport, sport)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if !category.BelongsTo(sport) {
		category = model.DefaultCategory(sport)
	}

	players := stats.GeneratePlayers(c.rand, sport, category)
	return ranking.RankPlayers(players, category), nil
}
