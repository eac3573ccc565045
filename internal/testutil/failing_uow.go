package testutil

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/shiftlog/internal/db"
)

// FailOnNthExecUoW injects Err on the FailOn-th ExecContext call made
// inside its transaction (counting from 1). Reads pass through.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int
	Err    error
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	wrapped := &failOnNthExec{DBTX: tx, failOn: u.FailOn, err: u.Err}
	if err := fn(ctx, wrapped); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

type failOnNthExec struct {
	db.DBTX
	calls  int
	failOn int
	err    error
}

func (f *failOnNthExec) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	f.calls++
	if f.calls == f.failOn {
		return nil, f.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}

// FailingKV is a kvstore.KeyValue whose reads and writes fail on demand.
type FailingKV struct {
	Data     map[string]string
	GetErr   error
	SetErr   error
	SetCalls int
}

func NewFailingKV() *FailingKV {
	return &FailingKV{Data: make(map[string]string)}
}

func (f *FailingKV) Get(key string) (string, bool, error) {
	if f.GetErr != nil {
		return "", false, f.GetErr
	}
	v, ok := f.Data[key]
	return v, ok, nil
}

func (f *FailingKV) Set(key, value string) error {
	f.SetCalls++
	if f.SetErr != nil {
		return f.SetErr
	}
	f.Data[key] = value
	return nil
}
