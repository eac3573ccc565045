package db

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))

	var v int
	require.NoError(t, db.QueryRow(`PRAGMA user_version`).Scan(&v))
	assert.Equal(t, SchemaVersion, v)
}

func TestSchemaVersion_MatchesMigrationSteps(t *testing.T) {
	assert.Len(t, migrations, SchemaVersion)
}

func TestMigrate_CreatesRecordTable(t *testing.T) {
	db := openTestDB(t)

	var name string
	err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='work_records'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "work_records", name)
}

func TestMigrate_CreatesSecondaryIndexes(t *testing.T) {
	db := openTestDB(t)

	for _, idx := range []string{"idx_work_records_date", "idx_work_records_barcode"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_RejectsNewerSchema(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`PRAGMA user_version = 99`)
	require.NoError(t, err)

	err = Migrate(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "newer than supported")
}

func TestMigrate_ShiftConstraint(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO work_records (barcode, date, time, shift, created_at)
		VALUES ('A', '2024-01-01', '08:00', 'T3', '2024-01-01T08:00:00Z')`)
	assert.Error(t, err, "shift outside T1/T2 should be rejected")

	_, err = db.Exec(`INSERT INTO work_records (barcode, date, time, shift, created_at)
		VALUES ('', '2024-01-01', '08:00', 'T1', '2024-01-01T08:00:00Z')`)
	assert.Error(t, err, "empty barcode should be rejected")
}

func TestOpenDB_FileDatabaseUsesWAL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "shiftlog.db")
	db, err := OpenDB(path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	var mode string
	require.NoError(t, db.QueryRow(`PRAGMA journal_mode`).Scan(&mode))
	assert.Equal(t, "wal", mode)
}

func TestOpenDB_UnusableDirectory(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("not a directory"), 0o644))

	_, err := OpenDB(filepath.Join(blocker, "shiftlog.db"))
	assert.Error(t, err)
}
