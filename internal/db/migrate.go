package db

import (
	"context"
	"database/sql"
	"fmt"
)

// SchemaVersion is the user_version written after the last migration step.
// It must equal len(migrations).
const SchemaVersion = 1

// migrations holds one step per schema version. Step i upgrades a database
// from user_version i to i+1 and runs inside its own transaction.
var migrations = [][]string{
	// v1: record collection keyed by an autoincrement id, with secondary
	// indexes on date and barcode.
	{
		`CREATE TABLE IF NOT EXISTS work_records (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			barcode    TEXT NOT NULL CHECK(barcode != ''),
			date       TEXT NOT NULL,
			time       TEXT NOT NULL,
			shift      TEXT NOT NULL CHECK(shift IN ('T1','T2')),
			count_t1   INTEGER NOT NULL DEFAULT 0 CHECK(count_t1 >= 0),
			count_t2   INTEGER NOT NULL DEFAULT 0 CHECK(count_t2 >= 0),
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_work_records_date ON work_records(date)`,
		`CREATE INDEX IF NOT EXISTS idx_work_records_barcode ON work_records(barcode)`,
	},
}

// Migrate brings the schema up to SchemaVersion. Already-applied steps are
// skipped based on PRAGMA user_version.
func Migrate(db *sql.DB) error {
	ctx := context.Background()

	current, err := userVersion(ctx, db)
	if err != nil {
		return err
	}
	if current > SchemaVersion {
		return fmt.Errorf("database schema version %d is newer than supported version %d", current, SchemaVersion)
	}

	for v := current; v < SchemaVersion; v++ {
		if err := applyStep(ctx, db, v); err != nil {
			return fmt.Errorf("migration %d: %w", v+1, err)
		}
	}
	return nil
}

func applyStep(ctx context.Context, db *sql.DB, v int) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting migration transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	for _, stmt := range migrations[v] {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	// PRAGMA does not accept bound parameters.
	if _, err := tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", v+1)); err != nil {
		return fmt.Errorf("setting user_version: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing migration: %w", err)
	}
	committed = true
	return nil
}

func userVersion(ctx context.Context, db *sql.DB) (int, error) {
	var v int
	if err := db.QueryRowContext(ctx, `PRAGMA user_version`).Scan(&v); err != nil {
		return 0, fmt.Errorf("reading user_version: %w", err)
	}
	return v, nil
}
