package leagueview

import (
	"testing"

	"github.com/riskibarqy/league-ledger/internal/domain/match"
	"github.com/riskibarqy/league-ledger/internal/domain/suspension"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	t.Parallel()

	teams := []string{"MANCHESTER CITY", "REAL MADRID", "BAYER MUNICH"}
	matches := []match.Match{
		{ID: "m1", Team1: "MANCHESTER CITY", Team2: "REAL MADRID", Score1: 1, Score2: 0, GameNumber: 1},
		{ID: "m2", Team1: "REAL MADRID", Team2: "BAYER MUNICH", Score1: 2, Score2: 2, GameNumber: 2},
	}
	records := []suspension.Record{
		{ID: "s1", Team: "REAL MADRID", Player: "R", ActiveYellows: 2},
		{ID: "s2", Team: "BAYER MUNICH", Player: "B", RedBanLeft: 1},
	}

	view := Build(teams, matches, records)

	require.Len(t, view.History, 2)
	assert.Equal(t, "m2", view.History[0].ID)
	assert.Equal(t, "m1", view.History[1].ID)
	assert.Equal(t, "m1", matches[0].ID, "input must not be reordered")

	require.Len(t, view.Standings, 3)
	assert.Equal(t, "MANCHESTER CITY", view.Standings[0].Team)

	require.Len(t, view.Cards, 2)
	assert.Equal(t, suspension.StatusWarned, view.Cards[0].Status)
	assert.Equal(t, suspension.StatusSuspendedRed, view.Cards[1].Status)

	assert.Len(t, view.Encounters, 2)
	assert.Equal(t, 2, view.TotalGames)
}

func TestTotalGames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, TotalGames(nil))
	assert.Equal(t, 2, TotalGames([]match.Match{{}, {}}))
	assert.Equal(t, 7, TotalGames([]match.Match{{GameNumber: 3}, {GameNumber: 7}}))
}
