package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/alexanderramin/shiftlog/internal/db"
	"github.com/alexanderramin/shiftlog/internal/domain"
	"github.com/alexanderramin/shiftlog/internal/kvstore"
)

// OpenOptions controls backend selection.
type OpenOptions struct {
	DBPath        string
	FallbackDir   string
	ForceFallback bool
	Clock         domain.Clock
}

// Backend is the record store picked at startup. The choice is made once
// and held for the life of the process.
type Backend struct {
	Kind  BackendKind
	Store RecordStore
	// DB is the open database for the SQLite backend and nil otherwise.
	DB *sql.DB
	// OpenErr is why the database could not be used, when Kind is BackendBlob.
	OpenErr error
}

// OpenRecordStore tries the indexed SQLite database first and switches to
// the flat-blob store under opts.FallbackDir if it cannot be opened.
func OpenRecordStore(ctx context.Context, opts OpenOptions, logger *slog.Logger) (*Backend, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	clock := clockOrSystem(opts.Clock)

	var openErr error
	if opts.ForceFallback {
		openErr = errors.New("indexed database disabled by configuration")
	} else {
		database, err := db.OpenDB(opts.DBPath)
		if err == nil {
			logger.DebugContext(ctx, "record store selected", "backend", BackendSQLite, "path", opts.DBPath)
			return &Backend{
				Kind:  BackendSQLite,
				Store: NewSQLiteRecordStore(database).WithClock(clock),
				DB:    database,
			}, nil
		}
		openErr = err
	}

	logger.WarnContext(ctx, "indexed database unavailable, using flat-blob fallback",
		"error", openErr, "dir", opts.FallbackDir)

	kv, err := kvstore.NewFileStore(opts.FallbackDir)
	if err != nil {
		return nil, storageErr("open", BackendBlob, fmt.Errorf("opening fallback store: %w (database: %v)", err, openErr))
	}
	return &Backend{
		Kind:    BackendBlob,
		Store:   NewBlobRecordStore(kv, clock),
		OpenErr: openErr,
	}, nil
}

// Indexed returns the store as an IndexedRecordStore when the backend
// keeps secondary indexes.
func (b *Backend) Indexed() (IndexedRecordStore, bool) {
	s, ok := b.Store.(IndexedRecordStore)
	return s, ok
}

func (b *Backend) Close() error {
	if b.DB == nil {
		return nil
	}
	return b.DB.Close()
}
