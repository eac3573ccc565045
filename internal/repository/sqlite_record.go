package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/shiftlog/internal/db"
	"github.com/alexanderramin/shiftlog/internal/domain"
)

// SQLiteRecordStore implements IndexedRecordStore on the work_records table.
type SQLiteRecordStore struct {
	db    db.DBTX
	clock domain.Clock
}

// NewSQLiteRecordStore accepts either a *sql.DB or a *sql.Tx.
func NewSQLiteRecordStore(conn db.DBTX) *SQLiteRecordStore {
	return &SQLiteRecordStore{db: conn, clock: domain.SystemClock{}}
}

// WithClock overrides the clock used to stamp CreatedAt.
func (s *SQLiteRecordStore) WithClock(c domain.Clock) *SQLiteRecordStore {
	s.clock = clockOrSystem(c)
	return s
}

const recordColumns = `id, barcode, date, time, shift, count_t1, count_t2, created_at`

func (s *SQLiteRecordStore) Save(ctx context.Context, r *domain.WorkRecord) (int64, error) {
	stampCreatedAt(r, s.clock)

	var id any
	if r.ID != 0 {
		id = r.ID
	}
	query := `INSERT INTO work_records (` + recordColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := s.db.ExecContext(ctx, query,
		id,
		r.Barcode,
		r.Date,
		r.Time,
		string(r.Shift),
		r.CountT1,
		r.CountT2,
		formatCreatedAt(r.CreatedAt),
	)
	if err != nil {
		return 0, storageErr("save", BackendSQLite, fmt.Errorf("inserting work record: %w", err))
	}
	newID, err := res.LastInsertId()
	if err != nil {
		return 0, storageErr("save", BackendSQLite, fmt.Errorf("reading inserted id: %w", err))
	}
	r.ID = newID
	return newID, nil
}

func (s *SQLiteRecordStore) ListAll(ctx context.Context) ([]*domain.WorkRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM work_records ORDER BY id`
	return s.query(ctx, "list", query)
}

func (s *SQLiteRecordStore) ListByDate(ctx context.Context, date string) ([]*domain.WorkRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM work_records WHERE date = ? ORDER BY id`
	return s.query(ctx, "list by date", query, date)
}

func (s *SQLiteRecordStore) ListByBarcode(ctx context.Context, barcode string) ([]*domain.WorkRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM work_records WHERE barcode = ? ORDER BY id`
	return s.query(ctx, "list by barcode", query, barcode)
}

func (s *SQLiteRecordStore) Delete(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM work_records WHERE id = ?`, id)
	if err != nil {
		return storageErr("delete", BackendSQLite, fmt.Errorf("deleting work record: %w", err))
	}
	return nil
}

func (s *SQLiteRecordStore) query(ctx context.Context, op, query string, args ...any) ([]*domain.WorkRecord, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storageErr(op, BackendSQLite, fmt.Errorf("querying work records: %w", err))
	}
	defer rows.Close()

	records, err := scanRecords(rows)
	if err != nil {
		return nil, storageErr(op, BackendSQLite, err)
	}
	return records, nil
}

// scanRecords scans multiple records from *sql.Rows.
func scanRecords(rows *sql.Rows) ([]*domain.WorkRecord, error) {
	var records []*domain.WorkRecord
	for rows.Next() {
		var r domain.WorkRecord
		var shift, createdAtStr string
		err := rows.Scan(&r.ID, &r.Barcode, &r.Date, &r.Time, &shift, &r.CountT1, &r.CountT2, &createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("scanning work record row: %w", err)
		}
		r.Shift = domain.Shift(shift)
		r.CreatedAt, err = parseCreatedAt(createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at of record %d: %w", r.ID, err)
		}
		records = append(records, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating work records: %w", err)
	}
	return records, nil
}
