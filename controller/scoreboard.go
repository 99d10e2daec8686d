package controller

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/mww/sports_scoreboard/model"
	"github.com/mww/sports_scoreboard/stats"
)

// Upper bound on a single periodic refresh.
const refreshTimeout = 10 * time.Second

func (c *controller) GetScoreboard() *model.Scoreboard {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.scoreboard
}

func (c *controller) RefreshScoreboard(ctx context.Context) (*model.Scoreboard, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sb := c.newScoreboard(c.loadFeatured(ctx))

	c.mu.Lock()
	c.scoreboard = sb
	c.mu.Unlock()

	if err := c.publisher.PublishScoreboard(ctx, sb); err != nil {
		log.Printf("error publishing scoreboard: %v", err)
	}
	return sb, nil
}

func (c *controller) RunPeriodicScoreboardUpdates(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	ticker := time.NewTicker(frequency)
	defer ticker.Stop()
	defer wg.Done()

	for {
		select {
		case <-shutdown:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
			if _, err := c.RefreshScoreboard(ctx); err != nil {
				log.Printf("error refreshing scoreboard: %v", err)
			}
			cancel()
		}
	}
}

func (c *controller) newScoreboard(featured []model.Team) *model.Scoreboard {
	now := c.clock.Now()
	return &model.Scoreboard{
		Games:    stats.GenerateGames(c.rand, now),
		Featured: featured,
		Updated:  now,
	}
}

// loadFeatured searches for the featured team. When the search fails the
// previous featured teams are kept.
func (c *controller) loadFeatured(ctx context.Context) []model.Team {
	if c.featuredTeam == "" {
		return nil
	}

	teams, err := c.sportsDB.SearchTeams(ctx, c.featuredTeam)
	if err != nil {
		log.Printf("error loading featured teams for '%s', keeping previous: %v", c.featuredTeam, err)
		return c.GetScoreboard().Featured
	}

	if len(teams) > maxFeaturedTeams {
		teams = teams[:maxFeaturedTeams]
	}
	return teams
}
