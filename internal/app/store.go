package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/league-ledger/internal/config"
	"github.com/riskibarqy/league-ledger/internal/domain/match"
	"github.com/riskibarqy/league-ledger/internal/domain/roster"
	"github.com/riskibarqy/league-ledger/internal/domain/suspension"
	"github.com/riskibarqy/league-ledger/internal/infrastructure/repository/boltstore"
	"github.com/riskibarqy/league-ledger/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/league-ledger/internal/infrastructure/repository/sqlstore"
	"github.com/riskibarqy/league-ledger/internal/platform/logging"
	"github.com/riskibarqy/league-ledger/internal/platform/migration"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	_ "modernc.org/sqlite"
)

const storePingTimeout = 5 * time.Second

type repositories struct {
	suspensions suspension.Repository
	matches     match.Repository
	roster      roster.Repository
	close       func() error
}

func openRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, error) {
	switch cfg.StoreDriver {
	case config.StorePostgres:
		return openSQLRepositories(ctx, cfg, logger, sqlstore.Postgres)
	case config.StoreSQLite:
		return openSQLRepositories(ctx, cfg, logger, sqlstore.SQLite)
	case config.StoreBolt:
		store, err := boltstore.Open(cfg.BoltPath, cfg.BoltTimeout)
		if err != nil {
			return repositories{}, err
		}
		logger.Info("bolt store opened", "path", cfg.BoltPath)
		return repositories{
			suspensions: store.Suspensions(),
			matches:     store.Matches(),
			roster:      store.Roster(),
			close:       store.Close,
		}, nil
	default:
		suspensions, err := memory.NewSuspensionRepository()
		if err != nil {
			return repositories{}, err
		}
		players, err := memory.NewRosterRepository()
		if err != nil {
			return repositories{}, err
		}
		logger.Warn("using in-memory store, data is lost on restart")
		return repositories{
			suspensions: suspensions,
			matches:     memory.NewMatchRepository(),
			roster:      players,
			close:       func() error { return nil },
		}, nil
	}
}

func openSQLRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger, dialect sqlstore.Dialect) (repositories, error) {
	var (
		driverName string
		dsn        string
		dbName     string
		migrateTo  migration.Driver
		migrateURL string
	)
	switch dialect {
	case sqlstore.SQLite:
		driverName = "sqlite"
		dsn = sqliteDSN(cfg.SQLitePath)
		dbName = cfg.SQLitePath
		migrateTo = migration.SQLite
		migrateURL = cfg.SQLitePath
	default:
		driverName = "postgres"
		dsn = normalizeDBURL(cfg.DBURL, cfg.DBApplicationName)
		dbName = dbNameFromURL(cfg.DBURL)
		migrateTo = migration.Postgres
		migrateURL = dsn
	}

	if cfg.DBAutoMigrate {
		if err := migration.Up(migrateTo, migrateURL); err != nil {
			return repositories{}, fmt.Errorf("auto migrate %s: %w", dialect, err)
		}
		logger.Info("database migrations applied", "driver", string(dialect))
	}

	db, err := otelsqlx.Open(driverName, dsn,
		otelsql.WithDBName(dbName),
		otelsql.WithAttributes(ledgerStoreAttributes(dialect)...),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return repositories{}, fmt.Errorf("open %s database: %w", dialect, err)
	}
	if dialect == sqlstore.SQLite {
		// modernc sqlite serializes writers; one connection avoids SQLITE_BUSY.
		db.SetMaxOpenConns(1)
	}

	store := sqlstore.New(db, dialect)
	pingCtx, cancel := context.WithTimeout(ctx, storePingTimeout)
	defer cancel()
	if err := store.Ping(pingCtx); err != nil {
		_ = db.Close()
		return repositories{}, fmt.Errorf("ping %s database: %w", dialect, err)
	}
	logger.Info("sql store connected", "driver", string(dialect), "db", dbName)

	return repositories{
		suspensions: store.Suspensions(),
		matches:     store.Matches(),
		roster:      store.Roster(),
		close:       closeDB(db),
	}, nil
}

func sqliteDSN(path string) string {
	return "file:" + path + "?_pragma=busy_timeout(5000)&_time_format=sqlite"
}

func closeDB(db *sqlx.DB) func() error {
	return func() error {
		return db.Close()
	}
}
