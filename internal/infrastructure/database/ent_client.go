package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/eslsoft/drillnet/internal/infrastructure/config"
	entdb "github.com/eslsoft/drillnet/internal/infrastructure/database/ent"
)

const connectTimeout = 5 * time.Second

// NewEntClient opens the configured database, verifies connectivity, and
// wraps the connection in the generated ent client.
//
// SQLite runs on a pool of one: the driver serializes writes anyway, and a
// single connection keeps the PRAGMA state applied below in effect for every
// statement.
func NewEntClient(cfg *config.Config) (*entdb.Client, func(), error) {
	driverName, err := cfg.DatabaseDriver()
	if err != nil {
		return nil, nil, fmt.Errorf("determine database driver: %w", err)
	}
	dsn, err := cfg.DatabaseURL()
	if err != nil {
		return nil, nil, fmt.Errorf("determine database dsn: %w", err)
	}

	var dialectName string
	switch driverName {
	case "postgres":
		dialectName = dialect.Postgres
	case "sqlite3":
		dialectName = dialect.SQLite
	default:
		return nil, nil, fmt.Errorf("unsupported database driver %q", driverName)
	}

	rawDB, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s database: %w", driverName, err)
	}
	if dialectName == dialect.SQLite {
		rawDB.SetMaxOpenConns(1)
		rawDB.SetMaxIdleConns(1)
	}

	if err := verifyConnection(rawDB, dialectName); err != nil {
		rawDB.Close()
		return nil, nil, err
	}

	client := entdb.NewClient(entdb.Driver(entsql.OpenDB(dialectName, rawDB)))
	if cfg.Database.LogSQL {
		client = client.Debug()
	}
	return client, func() { _ = client.Close() }, nil
}

// verifyConnection pings within a bounded window and applies the
// connection-level pragmas the dialect needs.
func verifyConnection(db *sql.DB, dialectName string) error {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	if dialectName == dialect.SQLite {
		if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON;"); err != nil {
			return fmt.Errorf("enable sqlite foreign keys: %w", err)
		}
	}
	return nil
}
