package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/shiftlog/internal/domain"
	"github.com/alexanderramin/shiftlog/internal/kvstore"
	"github.com/alexanderramin/shiftlog/internal/repository"
	"github.com/alexanderramin/shiftlog/internal/testutil"
)

// testNow is a Monday morning, inside shift T1.
var testNow = time.Date(2024, 3, 4, 9, 30, 0, 0, time.UTC)

func testClock() domain.Clock {
	return domain.FixedClock{At: testNow}
}

func setupSQLiteStore(t *testing.T) repository.RecordStore {
	t.Helper()
	return repository.NewSQLiteRecordStore(testutil.NewTestDB(t)).WithClock(testClock())
}

func setupBlobStore(t *testing.T) repository.RecordStore {
	t.Helper()
	return repository.NewBlobRecordStore(kvstore.NewMemoryStore(), testClock())
}

type storeFactory struct {
	name string
	new  func(t *testing.T) repository.RecordStore
}

var storeFactories = []storeFactory{
	{name: "sqlite", new: setupSQLiteStore},
	{name: "blob", new: setupBlobStore},
}

func seed(t *testing.T, store repository.RecordStore, records ...*domain.WorkRecord) {
	t.Helper()
	for _, r := range records {
		if _, err := store.Save(context.Background(), r); err != nil {
			t.Fatalf("seeding %s: %v", r.Barcode, err)
		}
	}
}

type capturingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *capturingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *capturingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}
