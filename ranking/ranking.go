package ranking

import (
	"cmp"
	"slices"

	"github.com/mww/sports_scoreboard/model"
)

var primaryStats = map[model.Category]model.Stat{
	model.CatTopScorers:     model.StatGoals,
	model.CatAssists:        model.StatAssists,
	model.CatTopRated:       model.StatRating,
	model.CatPointsLeaders:  model.StatPoints,
	model.CatReboundLeaders: model.StatRebounds,
	model.CatAssistLeaders:  model.StatAssists,
}

// PrimaryStat is the stat players are ranked by in a category. Unknown
// categories rank by rating.
func PrimaryStat(category model.Category) model.Stat {
	if s, found := primaryStats[category]; found {
		return s
	}
	return model.StatRating
}

// Rank returns a copy of items stable sorted by key, highest first, and calls
// assign on each item with its 1-based position. Equal keys keep their input
// order and still get distinct ranks.
func Rank[T any](items []T, key func(*T) float64, assign func(*T, int)) []T {
	res := slices.Clone(items)
	slices.SortStableFunc(res, func(a, b T) int {
		return cmp.Compare(key(&b), key(&a))
	})
	for i := range res {
		assign(&res[i], i+1)
	}
	return res
}

// RankPlayers orders players by the category's primary stat and sets Rank.
// The input slice is not modified, so ranking an already ranked list gives
// the same result.
func RankPlayers(players []model.Player, category model.Category) []model.Player {
	stat := PrimaryStat(category)
	return Rank(players,
		func(p *model.Player) float64 { return p.Stats.Value(stat) },
		func(p *model.Player, rank int) { p.Rank = rank })
}

// SortTeams orders a league table by points and sets Position.
func SortTeams(teams []model.Team) []model.Team {
	return Rank(teams,
		func(t *model.Team) float64 { return float64(t.Stats.Points) },
		func(t *model.Team, pos int) { t.Position = pos })
}

// Summarize picks out the summary cards for a league table without reordering
// it. The first team wins any tie.
func Summarize(teams []model.Team) model.LeagueSummary {
	var s model.LeagueSummary
	for i := range teams {
		t := &teams[i]
		if s.TopPerformer == nil || t.Stats.Points > s.TopPerformer.Stats.Points {
			s.TopPerformer = t
		}
		if s.BestAttack == nil || t.Stats.GoalsFor > s.BestAttack.Stats.GoalsFor {
			s.BestAttack = t
		}
		if s.BestDefense == nil || t.Stats.GoalsAgainst < s.BestDefense.Stats.GoalsAgainst {
			s.BestDefense = t
		}
	}

	// Copy so the summary does not alias the table.
	s.TopPerformer = clone(s.TopPerformer)
	s.BestAttack = clone(s.BestAttack)
	s.BestDefense = clone(s.BestDefense)
	return s
}

func clone(t *model.Team) *model.Team {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
