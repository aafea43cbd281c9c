package leagueview

import (
	"github.com/riskibarqy/league-ledger/internal/domain/match"
	"github.com/riskibarqy/league-ledger/internal/domain/standing"
	"github.com/riskibarqy/league-ledger/internal/domain/suspension"
)

// CardRow is one line of the disciplinary table.
type CardRow struct {
	Record suspension.Record
	Status suspension.Status
}

// View is everything the league pages render, derived from the current
// match and suspension sets.
type View struct {
	Teams      []string
	Standings  []standing.Row
	History    []match.Match
	Encounters []standing.Encounter
	Cards      []CardRow
	TotalGames int
}

// Build derives the view. It performs no I/O and does not modify its inputs.
func Build(teams []string, matches []match.Match, records []suspension.Record) View {
	history := make([]match.Match, 0, len(matches))
	for i := len(matches) - 1; i >= 0; i-- {
		history = append(history, matches[i])
	}

	cards := make([]CardRow, 0, len(records))
	for _, r := range records {
		cards = append(cards, CardRow{Record: r, Status: suspension.Classify(r)})
	}

	return View{
		Teams:      append([]string(nil), teams...),
		Standings:  standing.Compute(teams, matches),
		History:    history,
		Encounters: standing.Encounters(matches),
		Cards:      cards,
		TotalGames: TotalGames(matches),
	}
}

// TotalGames is the highest game number seen, or the match count when no
// game numbers were stored.
func TotalGames(matches []match.Match) int {
	highest := 0
	for _, m := range matches {
		if m.GameNumber > highest {
			highest = m.GameNumber
		}
	}
	if highest == 0 {
		return len(matches)
	}
	return highest
}
