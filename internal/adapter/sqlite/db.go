// Package sqlite keeps the pronunciation corpus in a local SQLite file, for
// running the engine without a PostgreSQL server.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/hathaway2010/poetry-scansion/migrations"
)

// MemoryPath opens a private in-memory corpus.
const MemoryPath = ":memory:"

// Open opens (creating if needed) the corpus at path and applies pending
// migrations. The returned DB uses a single connection: SQLite serializes
// writers anyway, and one connection keeps an in-memory corpus alive.
func Open(ctx context.Context, path string, log *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	pragmas := []string{"PRAGMA busy_timeout = 5000"}
	if path != MemoryPath {
		pragmas = append(pragmas, "PRAGMA journal_mode = WAL")
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			db.Close()
			return nil, fmt.Errorf("%s: %w", p, err)
		}
	}

	if _, err := Migrate(ctx, db, log); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate applies pending corpus migrations and returns how many ran.
func Migrate(ctx context.Context, db *sql.DB, log *slog.Logger) (int, error) {
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations.SQLite())
	if err != nil {
		return 0, fmt.Errorf("goose new provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("goose up: %w", err)
	}

	for _, r := range results {
		log.DebugContext(ctx, "migration applied",
			slog.Int64("version", r.Source.Version),
			slog.Duration("duration", r.Duration),
		)
	}
	return len(results), nil
}
