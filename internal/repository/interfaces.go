package repository

import (
	"context"

	"github.com/alexanderramin/shiftlog/internal/domain"
)

// RecordStore persists work records. Implementations wrap every backend
// failure in a *StorageError.
type RecordStore interface {
	// Save assigns an id when r.ID is zero, persists r, writes the id back
	// onto r and returns it.
	Save(ctx context.Context, r *domain.WorkRecord) (int64, error)
	// ListAll returns every persisted record. Both backends return them in
	// insertion order, but callers must not rely on any ordering.
	ListAll(ctx context.Context) ([]*domain.WorkRecord, error)
	// Delete removes the record with the given id. Deleting an id that
	// does not exist is not an error.
	Delete(ctx context.Context, id int64) error
}

// IndexedRecordStore is implemented by backends that keep secondary
// indexes on date and barcode.
type IndexedRecordStore interface {
	RecordStore
	ListByDate(ctx context.Context, date string) ([]*domain.WorkRecord, error)
	ListByBarcode(ctx context.Context, barcode string) ([]*domain.WorkRecord, error)
}
