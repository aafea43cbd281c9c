package schema

import (
	"testing"
	"time"

	"github.com/riskibarqy/league-ledger/internal/domain/docstore"
	"github.com/riskibarqy/league-ledger/internal/domain/match"
	"github.com/riskibarqy/league-ledger/internal/domain/roster"
	"github.com/riskibarqy/league-ledger/internal/domain/suspension"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromSuspension(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		record  suspension.Record
		wantErr bool
	}{
		{name: "valid", record: suspension.Record{ID: "1", Team: "A", Player: "p", ActiveYellows: 5}},
		{name: "missing id", record: suspension.Record{Team: "A", Player: "p"}, wantErr: true},
		{name: "missing player", record: suspension.Record{ID: "1", Team: "A"}, wantErr: true},
		{name: "negative yellows", record: suspension.Record{ID: "1", Team: "A", Player: "p", ActiveYellows: -1}, wantErr: true},
		{name: "yellow ban too long", record: suspension.Record{ID: "1", Team: "A", Player: "p", YellowBanLeft: 2}, wantErr: true},
		{name: "red ban too long", record: suspension.Record{ID: "1", Team: "A", Player: "p", RedBanLeft: 4}, wantErr: true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			doc, err := FromSuspension(tc.record)
			if tc.wantErr {
				require.ErrorIs(t, err, docstore.ErrOperationFailed)
				return
			}
			require.NoError(t, err)
			back, err := doc.Record()
			require.NoError(t, err)
			assert.Equal(t, tc.record, back)
		})
	}
}

func TestFromMatch(t *testing.T) {
	t.Parallel()

	valid := match.Match{
		ID:         "m1",
		Team1:      "A",
		Team2:      "B",
		Score1:     1,
		Date:       "2024-02-29",
		GameNumber: 1,
		SavedAt:    time.Date(2024, 2, 29, 20, 0, 0, 0, time.UTC),
	}
	_, err := FromMatch(valid)
	require.NoError(t, err)

	same := valid
	same.Team2 = "A"
	_, err = FromMatch(same)
	require.ErrorIs(t, err, docstore.ErrOperationFailed)

	badDate := valid
	badDate.Date = "29-02-2024"
	_, err = FromMatch(badDate)
	require.ErrorIs(t, err, docstore.ErrOperationFailed)

	noGame := valid
	noGame.GameNumber = 0
	_, err = FromMatch(noGame)
	require.ErrorIs(t, err, docstore.ErrOperationFailed)
}

func TestPlayerDocument_RejectsLongNames(t *testing.T) {
	t.Parallel()

	name := make([]byte, 101)
	for i := range name {
		name[i] = 'x'
	}
	_, err := FromPlayer(roster.Player{ID: "p", Team: "A", Name: string(name)})
	require.ErrorIs(t, err, docstore.ErrOperationFailed)

	_, err = PlayerDocument{ID: "p", Team: "A"}.Player()
	require.ErrorIs(t, err, docstore.ErrOperationFailed)
}
