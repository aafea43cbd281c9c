package sqlstore

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"
	"syscall"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/league-ledger/internal/domain/docstore"
	qb "github.com/riskibarqy/league-ledger/internal/platform/querybuilder"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

func (d Dialect) placeholder() qb.Placeholder {
	if d == SQLite {
		return qb.Question
	}
	return qb.Dollar
}

const (
	suspensionsTable = "player_suspensions"
	matchesTable     = "matches"
	playersTable     = "players"
)

// Store hands out the repositories of one SQL database.
type Store struct {
	db      *sqlx.DB
	dialect Dialect
}

func New(db *sqlx.DB, dialect Dialect) *Store {
	return &Store{db: db, dialect: dialect}
}

func (s *Store) Suspensions() *SuspensionRepository {
	return &SuspensionRepository{db: s.db, ph: s.dialect.placeholder()}
}

func (s *Store) Matches() *MatchRepository {
	return &MatchRepository{db: s.db, ph: s.dialect.placeholder()}
}

func (s *Store) Roster() *RosterRepository {
	return &RosterRepository{db: s.db, ph: s.dialect.placeholder()}
}

// Ping reports whether the database answers.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return classify(err, "ping database")
	}
	return nil
}

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// classify tags a driver error with its store error kind: failures to reach
// the database become ErrUnavailable, everything else ErrOperationFailed.
func classify(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	if isUnavailable(err) {
		return docstore.Unavailable(err, format, args...)
	}
	return docstore.OperationFailed(err, format, args...)
}

func isUnavailable(err error) bool {
	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Class() {
		// connection exception, insufficient resources, operator intervention
		case "08", "53", "57":
			return true
		}
		return false
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() & 0xff {
		case sqlite3.SQLITE_BUSY, sqlite3.SQLITE_LOCKED, sqlite3.SQLITE_CANTOPEN, sqlite3.SQLITE_IOERR:
			return true
		}
	}

	return false
}
