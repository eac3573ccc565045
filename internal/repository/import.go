package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/shiftlog/internal/db"
	"github.com/alexanderramin/shiftlog/internal/domain"
)

// ErrNoDatabase is returned by ImportRecords when the active backend has
// no database to import into.
var ErrNoDatabase = errors.New("no indexed database available")

// ImportRecords copies records into the SQLite database inside one
// transaction. Original ids are kept, so importing the same blob twice
// fails on the first duplicate and leaves the database unchanged.
func ImportRecords(ctx context.Context, uow db.UnitOfWork, records []*domain.WorkRecord) (int, error) {
	if uow == nil {
		return 0, ErrNoDatabase
	}
	imported := 0
	err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txStore := NewSQLiteRecordStore(tx)
		for _, r := range records {
			copied := *r
			if _, err := txStore.Save(ctx, &copied); err != nil {
				return fmt.Errorf("importing record %d: %w", r.ID, err)
			}
			imported++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return imported, nil
}
