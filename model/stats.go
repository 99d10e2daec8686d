package model

import (
	"bytes"
	"encoding/json"
	"strconv"
)

type Stat string

const (
	StatGoals    Stat = "goals"
	StatAssists  Stat = "assists"
	StatMatches  Stat = "matches"
	StatRating   Stat = "rating"
	StatPoints   Stat = "points"
	StatRebounds Stat = "rebounds"
	StatGames    Stat = "games"
)

var displayStats = map[Sport][]Stat{
	SportSoccer:     {StatGoals, StatAssists, StatMatches, StatRating},
	SportBasketball: {StatPoints, StatRebounds, StatAssists, StatGames},
}

// DisplayStats lists the stat columns shown on a player card for the sport.
func DisplayStats(sport Sport) []Stat {
	return append([]Stat(nil), displayStats[sport]...)
}

// Label is the short column heading used for a stat in a given sport. Basketball
// stats are per game averages.
func (s Stat) Label(sport Sport) string {
	if sport == SportBasketball {
		switch s {
		case StatPoints:
			return "PPG"
		case StatRebounds:
			return "RPG"
		case StatAssists:
			return "APG"
		case StatGames:
			return "Games"
		}
	}
	switch s {
	case StatGoals:
		return "Goals"
	case StatAssists:
		return "Assists"
	case StatMatches:
		return "Matches"
	case StatRating:
		return "Rating"
	case StatPoints:
		return "Points"
	case StatRebounds:
		return "Rebounds"
	case StatGames:
		return "Games"
	}
	return string(s)
}

type StatValue struct {
	Stat    Stat
	Value   float64
	Decimal bool // shown with one decimal place
}

// StatLine is the set of stats attached to a player. Order is the order the
// stats were generated in.
type StatLine []StatValue

func (l StatLine) Get(s Stat) (StatValue, bool) {
	for _, v := range l {
		if v.Stat == s {
			return v, true
		}
	}
	return StatValue{}, false
}

func (l StatLine) Has(s Stat) bool {
	_, found := l.Get(s)
	return found
}

// Value returns the value of the stat, or 0 if the line does not have it.
func (l StatLine) Value(s Stat) float64 {
	v, _ := l.Get(s)
	return v.Value
}

// Format returns the display value of the stat, "-" if it is missing.
func (l StatLine) Format(s Stat) string {
	v, found := l.Get(s)
	if !found {
		return "-"
	}
	return v.String()
}

func (v StatValue) String() string {
	if v.Decimal {
		return strconv.FormatFloat(v.Value, 'f', 1, 64)
	}
	return strconv.FormatInt(int64(v.Value), 10)
}

// MarshalJSON writes the line as a flat object, e.g. {"goals":21,"rating":7.9}.
func (l StatLine) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, v := range l {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(string(v.Stat))
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.WriteString(v.String())
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
