package memory

import (
	"testing"

	"github.com/riskibarqy/league-ledger/internal/domain/roster"
	"github.com/riskibarqy/league-ledger/internal/infrastructure/repository/repotest"
	"github.com/stretchr/testify/require"
)

func TestRepositories_Contract(t *testing.T) {
	t.Parallel()

	repotest.Run(t, func(t *testing.T) repotest.Repositories {
		suspensions, err := NewSuspensionRepository()
		require.NoError(t, err)
		rosterRepo, err := NewRosterRepository()
		require.NoError(t, err)

		return repotest.Repositories{
			Suspensions: suspensions,
			Matches:     NewMatchRepository(),
			Roster:      rosterRepo,
		}
	})
}

func TestNewRosterRepository_RejectsInvalidSeed(t *testing.T) {
	t.Parallel()

	_, err := NewRosterRepository(roster.Player{ID: "p1", Team: "A"})
	require.Error(t, err)
}
