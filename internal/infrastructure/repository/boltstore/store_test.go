package boltstore

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/riskibarqy/league-ledger/internal/domain/docstore"
	"github.com/riskibarqy/league-ledger/internal/domain/suspension"
	"github.com/riskibarqy/league-ledger/internal/infrastructure/repository/repotest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"
)

func openStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "league.bolt"), time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestBoltStore_Contract(t *testing.T) {
	t.Parallel()

	repotest.Run(t, func(t *testing.T) repotest.Repositories {
		store := openStore(t)
		return repotest.Repositories{
			Suspensions: store.Suspensions(),
			Matches:     store.Matches(),
			Roster:      store.Roster(),
		}
	})
}

func TestBoltStore_ReopenKeepsData(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "league.bolt")
	store, err := Open(path, time.Second)
	require.NoError(t, err)

	_, err = store.Suspensions().Create(context.Background(), suspension.Record{ID: "s1", Team: "A", Player: "p1", RedBanLeft: 3})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = Open(path, time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	got, found, err := store.Suspensions().GetByID(context.Background(), "s1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 3, got.RedBanLeft)
}

func TestBoltStore_ClosedIsUnavailable(t *testing.T) {
	t.Parallel()

	store, err := Open(filepath.Join(t.TempDir(), "league.bolt"), time.Second)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	_, err = store.Matches().List(context.Background())
	require.ErrorIs(t, err, docstore.ErrUnavailable)
}

func TestWrap(t *testing.T) {
	t.Parallel()

	assert.NoError(t, wrap(nil, "noop"))

	notFound := docstore.NotFound("x")
	assert.Equal(t, notFound, wrap(notFound, "op"))

	assert.ErrorIs(t, wrap(bolt.ErrTimeout, "open"), docstore.ErrUnavailable)
	assert.ErrorIs(t, wrap(errors.New("disk full"), "write"), docstore.ErrOperationFailed)
}
