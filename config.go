package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/mww/sports_scoreboard/sportsdb"
)

type config struct {
	port            int
	sportsDBURL     string
	sportsDBKey     string
	refreshInterval time.Duration
	redisURL        string // optional, no stream is published when empty
	featuredTeam    string
}

// configFromEnv reads the config using getenv, normally os.Getenv.
func configFromEnv(getenv func(string) string) (*config, error) {
	c := &config{
		port:            3000,
		sportsDBURL:     sportsdb.SportsDBURL,
		sportsDBKey:     sportsdb.DefaultKey,
		refreshInterval: 30 * time.Second,
		redisURL:        getenv("REDIS_URL"),
		featuredTeam:    "Arsenal",
	}

	if port := getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("error parsing port number: %w", err)
		}
		c.port = p
	}

	if u := getenv("SPORTSDB_URL"); u != "" {
		c.sportsDBURL = u
	}
	if k := getenv("SPORTSDB_KEY"); k != "" {
		c.sportsDBKey = k
	}

	if i := getenv("REFRESH_INTERVAL"); i != "" {
		d, err := time.ParseDuration(i)
		if err != nil {
			return nil, fmt.Errorf("error parsing refresh interval: %w", err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("refresh interval must be positive, got %v", d)
		}
		c.refreshInterval = d
	}

	// FEATURED_TEAM set to "-" turns off the featured teams.
	switch t := getenv("FEATURED_TEAM"); t {
	case "":
	case "-":
		c.featuredTeam = ""
	default:
		c.featuredTeam = t
	}

	return c, nil
}
