package standing

import (
	"testing"

	"github.com/riskibarqy/league-ledger/internal/domain/match"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var teams = []string{"MANCHESTER CITY", "REAL MADRID", "BAYER MUNICH"}

func TestCompute(t *testing.T) {
	t.Parallel()

	matches := []match.Match{
		{Team1: "MANCHESTER CITY", Team2: "REAL MADRID", Score1: 2, Score2: 1},
		{Team1: "REAL MADRID", Team2: "BAYER MUNICH", Score1: 3, Score2: 0},
		{Team1: "BAYER MUNICH", Team2: "MANCHESTER CITY", Score1: 1, Score2: 1},
		{Team1: "JUVENTUS", Team2: "REAL MADRID", Score1: 9, Score2: 0},
	}

	rows := Compute(teams, matches)
	require.Len(t, rows, 3)

	assert.Equal(t, Row{Rank: 1, Team: "MANCHESTER CITY", Played: 2, Won: 1, Drawn: 1, GoalsFor: 3, GoalsAgainst: 2, Diff: 1, Points: 4}, rows[0])
	assert.Equal(t, Row{Rank: 2, Team: "REAL MADRID", Played: 2, Won: 1, Lost: 1, GoalsFor: 4, GoalsAgainst: 2, Diff: 2, Points: 3}, rows[1])
	assert.Equal(t, Row{Rank: 3, Team: "BAYER MUNICH", Played: 2, Drawn: 1, Lost: 1, GoalsFor: 1, GoalsAgainst: 4, Diff: -3, Points: 1}, rows[2])
}

func TestCompute_TieBreakers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		matches []match.Match
		want    []string
	}{
		{
			name:    "no matches keeps configured order",
			matches: nil,
			want:    []string{"MANCHESTER CITY", "REAL MADRID", "BAYER MUNICH"},
		},
		{
			name: "goal difference breaks points tie",
			matches: []match.Match{
				{Team1: "BAYER MUNICH", Team2: "MANCHESTER CITY", Score1: 4, Score2: 0},
				{Team1: "REAL MADRID", Team2: "MANCHESTER CITY", Score1: 1, Score2: 0},
			},
			want: []string{"BAYER MUNICH", "REAL MADRID", "MANCHESTER CITY"},
		},
		{
			name: "goals for breaks diff tie",
			matches: []match.Match{
				{Team1: "REAL MADRID", Team2: "MANCHESTER CITY", Score1: 3, Score2: 2},
				{Team1: "BAYER MUNICH", Team2: "MANCHESTER CITY", Score1: 1, Score2: 0},
			},
			want: []string{"REAL MADRID", "BAYER MUNICH", "MANCHESTER CITY"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rows := Compute(teams, tt.matches)
			got := make([]string, 0, len(rows))
			for _, row := range rows {
				got = append(got, row.Team)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncounters(t *testing.T) {
	t.Parallel()

	matches := []match.Match{
		{Team1: "MANCHESTER CITY", Team2: "REAL MADRID", Score1: 2, Score2: 1},
		{Team1: "REAL MADRID", Team2: "MANCHESTER CITY", Score1: 0, Score2: 0},
		{Team1: "REAL MADRID", Team2: "MANCHESTER CITY", Score1: 2, Score2: 0},
		{Team1: "BAYER MUNICH", Team2: "MANCHESTER CITY", Score1: 0, Score2: 1},
	}

	got := Encounters(matches)
	assert.Equal(t, []Encounter{
		{Team: "MANCHESTER CITY", Opponent: "REAL MADRID", Wins: 1, Losses: 1},
		{Team: "MANCHESTER CITY", Opponent: "BAYER MUNICH", Wins: 1},
		{Team: "REAL MADRID", Opponent: "MANCHESTER CITY", Wins: 1, Losses: 1},
		{Team: "BAYER MUNICH", Opponent: "MANCHESTER CITY", Losses: 1},
	}, got)
}

func TestEncounters_GroupsByFirstAppearanceIncludingDraws(t *testing.T) {
	t.Parallel()

	matches := []match.Match{
		{Team1: "BAYER MUNICH", Team2: "REAL MADRID", Score1: 1, Score2: 1},
		{Team1: "MANCHESTER CITY", Team2: "REAL MADRID", Score1: 3, Score2: 0},
		{Team1: "REAL MADRID", Team2: "BAYER MUNICH", Score1: 2, Score2: 1},
	}

	got := Encounters(matches)
	assert.Equal(t, []Encounter{
		{Team: "BAYER MUNICH", Opponent: "REAL MADRID", Losses: 1},
		{Team: "REAL MADRID", Opponent: "BAYER MUNICH", Wins: 1},
		{Team: "REAL MADRID", Opponent: "MANCHESTER CITY", Losses: 1},
		{Team: "MANCHESTER CITY", Opponent: "REAL MADRID", Wins: 1},
	}, got)
}

func TestEncounters_OnlyDrawsYieldNothing(t *testing.T) {
	t.Parallel()

	got := Encounters([]match.Match{{Team1: "BAYER MUNICH", Team2: "REAL MADRID", Score1: 0, Score2: 0}})
	assert.Empty(t, got)
}
