package model

// Player is a ranked player. Players only exist for a single rendering of the
// rankings; they are rebuilt with new stats on every request.
type Player struct {
	ID      int      `json:"id"`
	Name    string   `json:"name"`
	Team    string   `json:"team"`
	Country string   `json:"country"`
	Rank    int      `json:"rank"`
	Stats   StatLine `json:"stats"`
}

// RosterEntry is the identity of a player in a static roster.
type RosterEntry struct {
	Name    string
	Team    string
	Country string
}

var (
	soccerRoster = []RosterEntry{
		{Name: "Lionel Messi", Team: "Inter Miami", Country: "Argentina"},
		{Name: "Cristiano Ronaldo", Team: "Al Nassr", Country: "Portugal"},
		{Name: "Kylian Mbappe", Team: "PSG", Country: "France"},
		{Name: "Erling Haaland", Team: "Manchester City", Country: "Norway"},
		{Name: "Robert Lewandowski", Team: "Barcelona", Country: "Poland"},
		{Name: "Mohamed Salah", Team: "Liverpool", Country: "Egypt"},
		{Name: "Kevin De Bruyne", Team: "Manchester City", Country: "Belgium"},
		{Name: "Neymar Jr", Team: "Al Hilal", Country: "Brazil"},
		{Name: "Luka Modric", Team: "Real Madrid", Country: "Croatia"},
		{Name: "Sadio Mane", Team: "Al Nassr", Country: "Senegal"},
	}

	basketballRoster = []RosterEntry{
		{Name: "LeBron James", Team: "Los Angeles Lakers", Country: "USA"},
		{Name: "Stephen Curry", Team: "Golden State Warriors", Country: "USA"},
		{Name: "Kevin Durant", Team: "Phoenix Suns", Country: "USA"},
		{Name: "Giannis Antetokounmpo", Team: "Milwaukee Bucks", Country: "Greece"},
		{Name: "Luka Doncic", Team: "Dallas Mavericks", Country: "Slovenia"},
		{Name: "Jayson Tatum", Team: "Boston Celtics", Country: "USA"},
		{Name: "Joel Embiid", Team: "Philadelphia 76ers", Country: "Cameroon"},
		{Name: "Nikola Jokic", Team: "Denver Nuggets", Country: "Serbia"},
		{Name: "Jimmy Butler", Team: "Miami Heat", Country: "USA"},
		{Name: "Damian Lillard", Team: "Milwaukee Bucks", Country: "USA"},
	}
)

// PlayerRoster returns the static player list for a sport. Any sport other than
// basketball gets the soccer roster.
func PlayerRoster(sport Sport) []RosterEntry {
	r := soccerRoster
	if sport == SportBasketball {
		r = basketballRoster
	}
	res := make([]RosterEntry, len(r))
	copy(res, r)
	return res
}
