package model

// Team is one row of a league table. Badge, Founded and Stadium are only set
// when the team came from TheSportsDB.
type Team struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Badge    string     `json:"badge,omitempty"`
	Founded  string     `json:"founded,omitempty"`
	Stadium  string     `json:"stadium,omitempty"`
	Position int        `json:"position"`
	Stats    TeamRecord `json:"stats"`
}

// TeamRecord is a season record. Wins + Losses + Draws == Matches and
// Points == Wins*3 + Draws.
type TeamRecord struct {
	Matches      int     `json:"matches"`
	Wins         int     `json:"wins"`
	Losses       int     `json:"losses"`
	Draws        int     `json:"draws"`
	GoalsFor     float64 `json:"goalsFor"`
	GoalsAgainst float64 `json:"goalsAgainst"`
	Points       int     `json:"points"`
}

// WinPercentage is wins as a percentage of matches played.
func (r TeamRecord) WinPercentage() float64 {
	if r.Matches == 0 {
		return 0
	}
	return float64(r.Wins) / float64(r.Matches) * 100
}

// LeagueSummary holds the summary cards shown under a league table. Any field
// is nil when the table is empty.
type LeagueSummary struct {
	TopPerformer *Team `json:"topPerformer"`
	BestAttack   *Team `json:"bestAttack"`
	BestDefense  *Team `json:"bestDefense"`
}

// Standings is a league table along with its summary.
type Standings struct {
	League   League        `json:"league"`
	Teams    []Team        `json:"teams"`
	Summary  LeagueSummary `json:"summary"`
	Fallback bool          `json:"fallback"` // true when the static roster was used
}
