package db_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/alexanderramin/shiftlog/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestUoW(t *testing.T) (*db.SQLiteUnitOfWork, *sql.DB) {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return db.NewSQLiteUnitOfWork(database), database
}

func insertRecord(ctx context.Context, tx db.DBTX, barcode string) error {
	_, err := tx.ExecContext(ctx, `INSERT INTO work_records (barcode, date, time, shift, count_t1, created_at)
		VALUES (?, '2024-01-01', '08:00', 'T1', 1, '2024-01-01T08:00:00Z')`, barcode)
	return err
}

func countBarcode(t *testing.T, database *sql.DB, barcode string) int {
	t.Helper()
	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM work_records WHERE barcode = ?`, barcode).Scan(&n))
	return n
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	uow, database := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertRecord(ctx, tx, "K1")
	})
	require.NoError(t, err)
	assert.Equal(t, 1, countBarcode(t, database, "K1"))
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow, database := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertRecord(ctx, tx, "K2"); err != nil {
			return err
		}
		return fmt.Errorf("deliberate failure")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deliberate failure")
	assert.Equal(t, 0, countBarcode(t, database, "K2"), "row should not exist after rollback")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow, database := openTestUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertRecord(ctx, tx, "K3")
			panic("boom")
		})
	})
	assert.Equal(t, 0, countBarcode(t, database, "K3"), "row should not exist after panic rollback")
}
