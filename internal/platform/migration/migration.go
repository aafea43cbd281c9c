package migration

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/riskibarqy/league-ledger/db"
)

type Driver string

const (
	Postgres Driver = "postgres"
	SQLite   Driver = "sqlite"
)

func ParseDriver(v string) (Driver, error) {
	switch Driver(strings.ToLower(strings.TrimSpace(v))) {
	case Postgres, "postgresql":
		return Postgres, nil
	case SQLite, "sqlite3":
		return SQLite, nil
	default:
		return "", fmt.Errorf("unsupported migration driver %q", v)
	}
}

// DatabaseURL turns a DSN into the URL form golang-migrate expects. For
// sqlite the DSN is a file path.
func DatabaseURL(driver Driver, dsn string) string {
	dsn = strings.TrimSpace(dsn)
	if driver == SQLite && !strings.HasPrefix(dsn, "sqlite://") {
		return "sqlite://" + strings.TrimPrefix(dsn, "file:")
	}
	return dsn
}

// New builds a migrator over the embedded migrations of driver.
func New(driver Driver, databaseURL string) (*migrate.Migrate, error) {
	dir := db.PostgresDir
	if driver == SQLite {
		dir = db.SQLiteDir
	}

	src, err := iofs.New(db.Migrations, dir)
	if err != nil {
		return nil, fmt.Errorf("open embedded migrations %s: %w", dir, err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, DatabaseURL(driver, databaseURL))
	if err != nil {
		return nil, fmt.Errorf("create migrator: %w", err)
	}
	return m, nil
}

// Up applies every pending migration. An already current schema is not an error.
func Up(driver Driver, databaseURL string) (err error) {
	m, err := New(driver, databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if err == nil {
			err = errors.Join(srcErr, dbErr)
		}
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
