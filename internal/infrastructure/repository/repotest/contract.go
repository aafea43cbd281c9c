// Package repotest holds behaviour checks shared by every store backend.
package repotest

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/league-ledger/internal/domain/docstore"
	"github.com/riskibarqy/league-ledger/internal/domain/match"
	"github.com/riskibarqy/league-ledger/internal/domain/roster"
	"github.com/riskibarqy/league-ledger/internal/domain/suspension"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Repositories struct {
	Suspensions suspension.Repository
	Matches     match.Repository
	Roster      roster.Repository
}

// Run exercises a fresh, empty set of repositories per subtest.
func Run(t *testing.T, open func(t *testing.T) Repositories) {
	t.Helper()

	t.Run("suspension lifecycle", func(t *testing.T) { suspensionLifecycle(t, open(t).Suspensions) })
	t.Run("suspension batch is all or nothing", func(t *testing.T) { suspensionBatchAtomic(t, open(t).Suspensions) })
	t.Run("suspension schema", func(t *testing.T) { suspensionSchema(t, open(t).Suspensions) })
	t.Run("match lifecycle", func(t *testing.T) { matchLifecycle(t, open(t).Matches) })
	t.Run("roster lifecycle", func(t *testing.T) { rosterLifecycle(t, open(t).Roster) })
}

func suspensionLifecycle(t *testing.T, repo suspension.Repository) {
	ctx := context.Background()

	_, found, err := repo.Find(ctx, "A", "p1")
	require.NoError(t, err)
	assert.False(t, found)

	for _, r := range []suspension.Record{
		{ID: "s1", Team: "A", Player: "p1", ActiveYellows: 2},
		{ID: "s2", Team: "B", Player: "p2", RedBanLeft: 3},
		{ID: "s3", Team: "C", Player: "p3", YellowBanLeft: 1, ActiveYellows: 3},
	} {
		_, err := repo.Create(ctx, r)
		require.NoError(t, err)
	}

	got, found, err := repo.Find(ctx, "A", "p1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "s1", got.ID)
	assert.Equal(t, 2, got.ActiveYellows)

	byTeams, err := repo.ListByTeams(ctx, "A", "B")
	require.NoError(t, err)
	require.Len(t, byTeams, 2)
	for _, r := range byTeams {
		assert.NotEqual(t, "C", r.Team)
	}

	got.ActiveYellows = 3
	got.YellowBanLeft = 1
	require.NoError(t, repo.Update(ctx, got))
	reloaded, found, err := repo.GetByID(ctx, "s1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, got, reloaded)

	err = repo.Update(ctx, suspension.Record{ID: "missing", Team: "A", Player: "x"})
	require.ErrorIs(t, err, docstore.ErrNotFound)

	require.NoError(t, repo.Delete(ctx, "s2"))
	require.ErrorIs(t, repo.Delete(ctx, "s2"), docstore.ErrNotFound)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func suspensionBatchAtomic(t *testing.T, repo suspension.Repository) {
	ctx := context.Background()

	_, err := repo.Create(ctx, suspension.Record{ID: "s1", Team: "A", Player: "p1", RedBanLeft: 2})
	require.NoError(t, err)
	_, err = repo.Create(ctx, suspension.Record{ID: "s2", Team: "A", Player: "p2", YellowBanLeft: 1, ActiveYellows: 3})
	require.NoError(t, err)

	err = repo.BatchUpdate(ctx, []suspension.Record{
		{ID: "s1", Team: "A", Player: "p1", RedBanLeft: 1},
		{ID: "ghost", Team: "A", Player: "ghost"},
	})
	require.Error(t, err)

	unchanged, _, err := repo.GetByID(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 2, unchanged.RedBanLeft)

	err = repo.BatchUpdate(ctx, []suspension.Record{
		{ID: "s1", Team: "A", Player: "p1", RedBanLeft: 1},
		{ID: "s2", Team: "A", Player: "p2"},
	})
	require.NoError(t, err)

	s1, _, err := repo.GetByID(ctx, "s1")
	require.NoError(t, err)
	s2, _, err := repo.GetByID(ctx, "s2")
	require.NoError(t, err)
	assert.Equal(t, 1, s1.RedBanLeft)
	assert.Zero(t, s2.YellowBanLeft)
	assert.Zero(t, s2.ActiveYellows)

	require.NoError(t, repo.BatchUpdate(ctx, nil))
}

func suspensionSchema(t *testing.T, repo suspension.Repository) {
	ctx := context.Background()

	_, err := repo.Create(ctx, suspension.Record{ID: "s1", Team: "A", Player: "p1", RedBanLeft: 7})
	require.ErrorIs(t, err, docstore.ErrOperationFailed)

	_, err = repo.Create(ctx, suspension.Record{ID: "s1", Team: "A", Player: "p1"})
	require.NoError(t, err)
	err = repo.Update(ctx, suspension.Record{ID: "s1", Team: "A", Player: "p1", YellowBanLeft: -1})
	require.ErrorIs(t, err, docstore.ErrOperationFailed)

	_, err = repo.Create(ctx, suspension.Record{ID: "s2", Team: "A", Player: "p1"})
	require.ErrorIs(t, err, docstore.ErrOperationFailed)
}

func matchLifecycle(t *testing.T, repo match.Repository) {
	ctx := context.Background()
	base := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	for i, id := range []string{"m1", "m2", "m3"} {
		_, err := repo.Create(ctx, match.Match{
			ID:         id,
			Team1:      "A",
			Team2:      "B",
			Score1:     i,
			Score2:     1,
			Date:       "2024-04-01",
			GameNumber: i + 1,
			SavedAt:    base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	n, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []string{"m1", "m2", "m3"}, []string{items[0].ID, items[1].ID, items[2].ID})
	assert.True(t, items[2].SavedAt.Equal(base.Add(2*time.Minute)))

	got, found, err := repo.GetByID(ctx, "m2")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 2, got.GameNumber)

	require.NoError(t, repo.Delete(ctx, "m2"))
	require.ErrorIs(t, repo.Delete(ctx, "m2"), docstore.ErrNotFound)
	_, found, err = repo.GetByID(ctx, "m2")
	require.NoError(t, err)
	assert.False(t, found)

	_, err = repo.Create(ctx, match.Match{ID: "bad", Team1: "A", Team2: "A", Date: "2024-04-01", GameNumber: 4, SavedAt: base})
	require.ErrorIs(t, err, docstore.ErrOperationFailed)
}

func rosterLifecycle(t *testing.T, repo roster.Repository) {
	ctx := context.Background()
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for _, p := range []roster.Player{
		{ID: "p1", Team: "A", Name: "One", AddedAt: at},
		{ID: "p2", Team: "B", Name: "Two", AddedAt: at},
		{ID: "p3", Team: "A", Name: "Three", AddedAt: at},
	} {
		_, err := repo.Create(ctx, p)
		require.NoError(t, err)
	}

	exists, err := repo.Exists(ctx, "A", "Three")
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = repo.Exists(ctx, "B", "Three")
	require.NoError(t, err)
	assert.False(t, exists)

	teamA, err := repo.ListByTeam(ctx, "A")
	require.NoError(t, err)
	assert.Len(t, teamA, 2)

	require.NoError(t, repo.Delete(ctx, "p1"))
	require.ErrorIs(t, repo.Delete(ctx, "p1"), docstore.ErrNotFound)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
