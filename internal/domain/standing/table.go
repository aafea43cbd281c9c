package standing

import (
	"sort"

	"github.com/riskibarqy/league-ledger/internal/domain/match"
)

// Row is one team line of the league table.
type Row struct {
	Rank         int
	Team         string
	Played       int
	Won          int
	Drawn        int
	Lost         int
	GoalsFor     int
	GoalsAgainst int
	Diff         int
	Points       int
}

// Compute folds matches into a table over the fixed team set. Matches that
// involve a team outside the set are skipped. Rows are ordered by points,
// goal difference and goals scored, keeping the configured team order on ties.
func Compute(teams []string, matches []match.Match) []Row {
	rows := make([]*Row, 0, len(teams))
	byTeam := make(map[string]*Row, len(teams))
	for _, team := range teams {
		if _, dup := byTeam[team]; dup {
			continue
		}
		row := &Row{Team: team}
		rows = append(rows, row)
		byTeam[team] = row
	}

	for _, m := range matches {
		home, okHome := byTeam[m.Team1]
		away, okAway := byTeam[m.Team2]
		if !okHome || !okAway || home == away {
			continue
		}

		home.Played++
		away.Played++
		home.GoalsFor += m.Score1
		home.GoalsAgainst += m.Score2
		away.GoalsFor += m.Score2
		away.GoalsAgainst += m.Score1

		switch {
		case m.Score1 > m.Score2:
			home.Won++
			away.Lost++
		case m.Score1 < m.Score2:
			away.Won++
			home.Lost++
		default:
			home.Drawn++
			away.Drawn++
		}
	}

	for _, row := range rows {
		row.Diff = row.GoalsFor - row.GoalsAgainst
		row.Points = 3*row.Won + row.Drawn
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.Diff != b.Diff {
			return a.Diff > b.Diff
		}
		return a.GoalsFor > b.GoalsFor
	})

	out := make([]Row, 0, len(rows))
	for i, row := range rows {
		row.Rank = i + 1
		out = append(out, *row)
	}

	return out
}
