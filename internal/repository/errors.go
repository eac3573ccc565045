package repository

import (
	"errors"
	"fmt"
)

type BackendKind string

const (
	BackendSQLite BackendKind = "sqlite"
	BackendBlob   BackendKind = "blob"
)

// ErrDuplicateID is returned when a caller-supplied id is already taken.
var ErrDuplicateID = errors.New("record id already exists")

// StorageError reports an open, read or write failure on either backend.
type StorageError struct {
	Op      string
	Backend BackendKind
	Err     error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s (%s): %v", e.Op, e.Backend, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// IsStorageError reports whether err wraps a *StorageError.
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}

func storageErr(op string, backend BackendKind, err error) error {
	return &StorageError{Op: op, Backend: backend, Err: err}
}
