package migration

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDriver(t *testing.T) {
	t.Parallel()

	cases := map[string]Driver{
		"postgres":   Postgres,
		"PostgreSQL": Postgres,
		" sqlite ":   SQLite,
		"sqlite3":    SQLite,
	}
	for in, want := range cases {
		got, err := ParseDriver(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := ParseDriver("mysql")
	require.Error(t, err)
}

func TestDatabaseURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "sqlite:///tmp/league.db", DatabaseURL(SQLite, "/tmp/league.db"))
	assert.Equal(t, "sqlite://league.db", DatabaseURL(SQLite, "file:league.db"))
	assert.Equal(t, "sqlite://x.db", DatabaseURL(SQLite, "sqlite://x.db"))
	assert.Equal(t, "postgres://u@h/db", DatabaseURL(Postgres, " postgres://u@h/db "))
}

func TestUp_SQLiteIsIdempotent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "league.db")
	require.NoError(t, Up(SQLite, path))
	require.NoError(t, Up(SQLite, path))

	m, err := New(SQLite, path)
	require.NoError(t, err)
	defer m.Close()

	version, dirty, err := m.Version()
	require.NoError(t, err)
	assert.False(t, dirty)
	assert.EqualValues(t, 1760000003, version)
}
