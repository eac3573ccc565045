package station

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/shiftlog/internal/domain"
	"github.com/alexanderramin/shiftlog/internal/kvstore"
	"github.com/alexanderramin/shiftlog/internal/repository"
	"github.com/alexanderramin/shiftlog/internal/service"
	"github.com/alexanderramin/shiftlog/internal/teatest"
	"github.com/alexanderramin/shiftlog/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

// morning falls in T1.
var morning = time.Date(2024, 3, 4, 9, 30, 0, 0, time.UTC)

func newStation(t *testing.T, kv kvstore.KeyValue, now time.Time) (*teatest.Driver, repository.RecordStore) {
	t.Helper()
	clock := domain.FixedClock{At: now}
	store := repository.NewBlobRecordStore(kv, clock)
	svc := service.NewRecordService(store, clock)
	d := teatest.New(t, New(svc, clock, language.English), teatest.WithSize(100, 40))
	return d, store
}

func model(d *teatest.Driver) Model {
	return d.Model.(Model)
}

func TestStation_EnterSavesRecordAndBumpsCounter(t *testing.T) {
	d, store := newStation(t, kvstore.NewMemoryStore(), morning)

	d.Submit("PKG-1")
	d.Submit("PKG-2")

	m := model(d)
	assert.Equal(t, 2, m.Count(domain.ShiftT1))
	assert.Equal(t, 0, m.Count(domain.ShiftT2))
	assert.Equal(t, "Barcode saved - T1: 2", m.Message())
	require.Len(t, m.Recent(), 2)
	assert.Equal(t, "PKG-2", m.Recent()[0].Barcode, "newest record first")

	all, err := store.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, 1, all[0].CountT1)
	assert.Equal(t, "09:30", all[0].Time)

	assert.Contains(t, d.View(), "PKG-2")
}

func TestStation_AfternoonScansCountAsT2(t *testing.T) {
	d, _ := newStation(t, kvstore.NewMemoryStore(), time.Date(2024, 3, 4, 14, 0, 0, 0, time.UTC))

	d.Submit("X")

	assert.Equal(t, domain.ShiftT2, model(d).Session().Shift)
	assert.Equal(t, 1, model(d).Count(domain.ShiftT2))
}

func TestStation_EmptyEnterShowsErrorWithoutSaving(t *testing.T) {
	kv := testutil.NewFailingKV()
	d, _ := newStation(t, kv, morning)

	d.Key(tea.KeyEnter)

	assert.Equal(t, "Enter a barcode and shift", model(d).Message())
	assert.Equal(t, 0, kv.SetCalls)
	assert.Equal(t, 0, model(d).Count(domain.ShiftT1))
}

func TestStation_StorageFailureKeepsCounter(t *testing.T) {
	kv := testutil.NewFailingKV()
	kv.SetErr = errors.New("read-only file system")
	d, _ := newStation(t, kv, morning)

	d.Submit("A")

	m := model(d)
	assert.Equal(t, 0, m.Count(domain.ShiftT1))
	assert.Contains(t, m.Message(), "Error saving record")
	assert.Contains(t, m.Message(), "read-only file system")
}

func TestStation_TabPinsShiftManually(t *testing.T) {
	d, _ := newStation(t, kvstore.NewMemoryStore(), morning)

	d.Key(tea.KeyTab)
	require.Equal(t, domain.Session{Shift: domain.ShiftT2, Manual: true}, model(d).Session())

	d.Submit("A")
	assert.Equal(t, 1, model(d).Count(domain.ShiftT2), "manual shift survives a scan")

	d.Key(tea.KeyCtrlA)
	assert.Equal(t, domain.Session{Shift: domain.ShiftT1}, model(d).Session())
}

func TestStation_ResetCounterNeedsConfirmation(t *testing.T) {
	d, _ := newStation(t, kvstore.NewMemoryStore(), morning)
	d.Submit("A")
	d.Submit("B")

	d.Key(tea.KeyF1)
	assert.Contains(t, d.View(), "Reset the T1 counter?")
	d.Type("n")
	assert.Equal(t, 2, model(d).Count(domain.ShiftT1), "declined reset keeps the counter")

	d.Key(tea.KeyF1)
	d.Type("y")
	assert.Equal(t, 0, model(d).Count(domain.ShiftT1))
	assert.Equal(t, "T1 counter reset", model(d).Message())
}

func TestStation_InitLoadsRecentRecords(t *testing.T) {
	kv := kvstore.NewMemoryStore()
	store := repository.NewBlobRecordStore(kv, domain.FixedClock{At: morning})
	for _, code := range []string{"A", "B", "C", "D", "E", "F"} {
		_, err := store.Save(context.Background(), testutil.NewTestRecord(code))
		require.NoError(t, err)
	}

	d, _ := newStation(t, kv, morning)

	recent := model(d).Recent()
	require.Len(t, recent, RecentLimit)
	assert.Equal(t, "F", recent[0].Barcode)
}

func TestStation_StaleClearDoesNotWipeNewerMessage(t *testing.T) {
	d, _ := newStation(t, kvstore.NewMemoryStore(), morning)
	d.Submit("A")
	d.Submit("B")

	d.Send(clearMsg{seq: 1})
	assert.NotEmpty(t, model(d).Message())

	d.Send(clearMsg{seq: model(d).messageSeq})
	assert.Empty(t, model(d).Message())
}

func TestStation_EscQuits(t *testing.T) {
	d, _ := newStation(t, kvstore.NewMemoryStore(), morning)

	d.Key(tea.KeyEsc)

	assert.True(t, d.Quitting)
	assert.Empty(t, d.View())
}
