package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/league-ledger/internal/domain/docstore"
	"github.com/riskibarqy/league-ledger/internal/domain/roster"
	"github.com/riskibarqy/league-ledger/internal/domain/suspension"
	"github.com/riskibarqy/league-ledger/internal/infrastructure/repository/repotest"
	"github.com/riskibarqy/league-ledger/internal/platform/migration"
	qb "github.com/riskibarqy/league-ledger/internal/platform/querybuilder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openSQLite(t *testing.T) *Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "league.db")
	require.NoError(t, migration.Up(migration.SQLite, path))

	db, err := sqlx.Open("sqlite", "file:"+path+"?_pragma=busy_timeout(5000)&_time_format=sqlite")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	return New(db, SQLite)
}

func TestSQLiteStore_Contract(t *testing.T) {
	t.Parallel()

	repotest.Run(t, func(t *testing.T) repotest.Repositories {
		store := openSQLite(t)
		return repotest.Repositories{
			Suspensions: store.Suspensions(),
			Matches:     store.Matches(),
			Roster:      store.Roster(),
		}
	})
}

func TestSQLiteStore_Ping(t *testing.T) {
	t.Parallel()

	store := openSQLite(t)
	require.NoError(t, store.Ping(context.Background()))
}

func TestSQLiteStore_ListKeepsInsertionOrderWithinOneSecond(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := openSQLite(t)
	addedAt := time.Date(2024, 5, 4, 18, 0, 0, 0, time.UTC)

	// ids sort opposite to insertion and every row shares one timestamp
	ids := []string{"s-zulu", "s-mike", "s-alpha"}
	for i, id := range ids {
		_, err := store.Suspensions().Create(ctx, suspension.Record{ID: id, Team: "REAL MADRID", Player: fmt.Sprintf("player-%d", i), ActiveYellows: 1})
		require.NoError(t, err)
		_, err = store.Roster().Create(ctx, roster.Player{ID: "p" + id, Team: "REAL MADRID", Name: fmt.Sprintf("player-%d", i), AddedAt: addedAt})
		require.NoError(t, err)
	}

	listed, err := store.Suspensions().List(ctx)
	require.NoError(t, err)
	byTeams, err := store.Suspensions().ListByTeams(ctx, "REAL MADRID", "BAYER MUNICH")
	require.NoError(t, err)
	players, err := store.Roster().ListByTeam(ctx, "REAL MADRID")
	require.NoError(t, err)

	require.Len(t, listed, len(ids))
	require.Len(t, byTeams, len(ids))
	require.Len(t, players, len(ids))
	for i, id := range ids {
		assert.Equal(t, id, listed[i].ID)
		assert.Equal(t, id, byTeams[i].ID)
		assert.Equal(t, "p"+id, players[i].ID)
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		err         error
		unavailable bool
	}{
		{name: "connection refused", err: &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}, unavailable: true},
		{name: "deadline", err: fmt.Errorf("query: %w", context.DeadlineExceeded), unavailable: true},
		{name: "pq connection failure", err: &pq.Error{Code: "08006"}, unavailable: true},
		{name: "pq admin shutdown", err: &pq.Error{Code: "57P01"}, unavailable: true},
		{name: "pq unique violation", err: &pq.Error{Code: "23505"}},
		{name: "plain error", err: errors.New("syntax error")},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := classify(tc.err, "op")
			if tc.unavailable {
				assert.ErrorIs(t, got, docstore.ErrUnavailable)
				assert.NotErrorIs(t, got, docstore.ErrOperationFailed)
			} else {
				assert.ErrorIs(t, got, docstore.ErrOperationFailed)
			}
			assert.ErrorIs(t, got, tc.err)
		})
	}

	assert.NoError(t, classify(nil, "noop"))
}

func TestDecodeNotification(t *testing.T) {
	t.Parallel()

	change, err := decodeNotification(`{"collection":"matches","op":"insert","key":"m1"}`)
	require.NoError(t, err)
	assert.Equal(t, docstore.CollectionMatches, change.Collection)
	assert.Equal(t, "m1", change.Key)
	assert.Equal(t, docstore.OpCreate, change.Op)
	assert.False(t, change.At.IsZero())

	_, err = decodeNotification(`{"collection":"fixtures"}`)
	require.Error(t, err)
	_, err = decodeNotification(`not json`)
	require.Error(t, err)
}

func TestDialectPlaceholder(t *testing.T) {
	t.Parallel()

	assert.Equal(t, qb.Question, New(nil, SQLite).Suspensions().ph)
	assert.Equal(t, qb.Dollar, New(nil, Postgres).Matches().ph)
}
