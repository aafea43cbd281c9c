package standing

import "github.com/riskibarqy/league-ledger/internal/domain/match"

// Encounter is the head-to-head record of Team against Opponent.
type Encounter struct {
	Team     string
	Opponent string
	Wins     int
	Losses   int
}

// Encounters counts wins and losses per ordered team pair. Draws count for
// neither side and pairs without a decided match are omitted. Rows are grouped
// by team, teams in the order they first appear in matches (draws included,
// team1 before team2), and within a team its opponents in the order the pair
// first met.
func Encounters(matches []match.Match) []Encounter {
	teams := make([]string, 0)
	opponents := make(map[string][]string)
	byPair := make(map[[2]string]*Encounter)
	get := func(team, opponent string) *Encounter {
		key := [2]string{team, opponent}
		if e, ok := byPair[key]; ok {
			return e
		}
		if _, seen := opponents[team]; !seen {
			teams = append(teams, team)
		}
		opponents[team] = append(opponents[team], opponent)
		e := &Encounter{Team: team, Opponent: opponent}
		byPair[key] = e
		return e
	}

	for _, m := range matches {
		if m.Team1 == m.Team2 {
			continue
		}
		home := get(m.Team1, m.Team2)
		away := get(m.Team2, m.Team1)
		switch m.Winner() {
		case m.Team1:
			home.Wins++
			away.Losses++
		case m.Team2:
			away.Wins++
			home.Losses++
		}
	}

	out := make([]Encounter, 0, len(byPair))
	for _, team := range teams {
		for _, opponent := range opponents[team] {
			e := byPair[[2]string{team, opponent}]
			if e.Wins == 0 && e.Losses == 0 {
				continue
			}
			out = append(out, *e)
		}
	}

	return out
}
