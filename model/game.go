package model

import (
	"fmt"
	"strings"
	"time"
)

type GameStatus string

const (
	StatusLive       GameStatus = "Live"
	StatusInProgress GameStatus = "In Progress"
	StatusNotStarted GameStatus = "Not Started"
	StatusFinished   GameStatus = "Match Finished"
)

// Class is the css class used to color the status.
func (s GameStatus) Class() string {
	switch strings.ToLower(string(s)) {
	case "match finished":
		return "finished"
	case "not started":
		return "upcoming"
	case "in progress", "live":
		return "live"
	default:
		return "unknown"
	}
}

type Game struct {
	ID        string     `json:"id"`
	Sport     string     `json:"sport"`
	League    string     `json:"league"`
	HomeTeam  string     `json:"homeTeam"`
	AwayTeam  string     `json:"awayTeam"`
	HomeScore int        `json:"homeScore"`
	AwayScore int        `json:"awayScore"`
	Status    GameStatus `json:"status"`
	Clock     string     `json:"time"`
	Date      string     `json:"date"`
}

// FormattedTime combines the game clock with the date, e.g. "45' - 2024-08-17".
func (g Game) FormattedTime() string {
	if g.Clock == "" || g.Date == "" {
		return "TBD"
	}
	return fmt.Sprintf("%s - %s", g.Clock, g.Date)
}

// Scoreboard is the set of games shown on the live scores page. A new
// scoreboard replaces the old one, it is never modified in place.
type Scoreboard struct {
	Games    []Game    `json:"games"`
	Featured []Team    `json:"featured"`
	Updated  time.Time `json:"updated"`
}
