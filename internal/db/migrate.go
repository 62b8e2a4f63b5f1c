package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration list re-runs in full on every open.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// Catalog records. position is the explicit catalog order; status has no
	// CHECK constraint so an unknown value degrades at render time instead
	// of poisoning the store.
	`CREATE TABLE IF NOT EXISTS records (
		id          INTEGER PRIMARY KEY CHECK(id > 0),
		position    INTEGER NOT NULL,
		week        INTEGER NOT NULL CHECK(week > 0),
		name        TEXT NOT NULL,
		description TEXT NOT NULL,
		tags        TEXT NOT NULL DEFAULT '[]',
		stack       TEXT NOT NULL DEFAULT '[]',
		status      TEXT NOT NULL DEFAULT 'completed',
		deploy_url  TEXT NOT NULL DEFAULT '#',
		github_url  TEXT NOT NULL DEFAULT '#',
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_records_week ON records(week)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_records_position ON records(position)`,

	// Import provenance: one row per `showcase import` run.
	`CREATE TABLE IF NOT EXISTS import_runs (
		id         TEXT PRIMARY KEY,
		source     TEXT NOT NULL,
		records    INTEGER NOT NULL,
		replaced   INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	)`,
}
