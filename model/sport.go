package model

import (
	"strings"
)

type Sport string

const (
	SportUnknown    Sport = "unknown"
	SportSoccer     Sport = "soccer"
	SportBasketball Sport = "basketball"
)

func ParseSport(s string) Sport {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "soccer", "football":
		return SportSoccer
	case "basketball", "nba":
		return SportBasketball
	default:
		return SportUnknown
	}
}

func (s Sport) String() string {
	return string(s)
}

// Label is the name shown in the sport selector.
func (s Sport) Label() string {
	switch s {
	case SportSoccer:
		return "Soccer"
	case SportBasketball:
		return "Basketball"
	default:
		return "Unknown"
	}
}

// Sports lists the sports that have player rankings, in selector order.
func Sports() []Sport {
	return []Sport{SportSoccer, SportBasketball}
}

type Category string

const (
	CatTopScorers     Category = "topScorers"
	CatAssists        Category = "assists"
	CatTopRated       Category = "topRated"
	CatPointsLeaders  Category = "pointsLeaders"
	CatReboundLeaders Category = "reboundLeaders"
	CatAssistLeaders  Category = "assistLeaders"
)

type CategoryOption struct {
	Key   Category `json:"key"`
	Label string   `json:"label"`
}

var categories = map[Sport][]CategoryOption{
	SportSoccer: {
		{Key: CatTopScorers, Label: "Top Scorers"},
		{Key: CatAssists, Label: "Most Assists"},
		{Key: CatTopRated, Label: "Top Rated"},
	},
	SportBasketball: {
		{Key: CatPointsLeaders, Label: "Points Leaders"},
		{Key: CatReboundLeaders, Label: "Rebound Leaders"},
		{Key: CatAssistLeaders, Label: "Assist Leaders"},
	},
}

// Categories returns the ranking categories for a sport in display order. The
// returned slice is a copy and is safe to modify.
func Categories(sport Sport) []CategoryOption {
	c := categories[sport]
	res := make([]CategoryOption, len(c))
	copy(res, c)
	return res
}

// DefaultCategory is the first category listed for the sport, or "" for an
// unknown sport.
func DefaultCategory(sport Sport) Category {
	c := categories[sport]
	if len(c) == 0 {
		return ""
	}
	return c[0].Key
}

// BelongsTo reports whether the category is one of the sport's categories.
// Category keys are matched exactly, they are never user facing.
func (c Category) BelongsTo(sport Sport) bool {
	for _, o := range categories[sport] {
		if o.Key == c {
			return true
		}
	}
	return false
}

func (c Category) Label() string {
	for _, opts := range categories {
		for _, o := range opts {
			if o.Key == c {
				return o.Label
			}
		}
	}
	return string(c)
}
