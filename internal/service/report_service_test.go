package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/shiftlog/internal/domain"
	"github.com/alexanderramin/shiftlog/internal/report"
	"github.com/alexanderramin/shiftlog/internal/repository"
	"github.com/alexanderramin/shiftlog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestDaily_GroupsByBarcodeAndShift(t *testing.T) {
	for _, f := range storeFactories {
		t.Run(f.name, func(t *testing.T) {
			store := f.new(t)
			seed(t, store,
				testutil.NewTestRecord("A", testutil.WithShift(domain.ShiftT1)),
				testutil.NewTestRecord("A", testutil.WithShift(domain.ShiftT1)),
				testutil.NewTestRecord("A", testutil.WithShift(domain.ShiftT2)),
				testutil.NewTestRecord("B", testutil.WithShift(domain.ShiftT2)),
				testutil.NewTestRecord("A", testutil.WithDate("2024-03-05")),
			)
			svc := NewReportService(store, testClock(), language.English)

			view, err := svc.Daily(context.Background(), "2024-03-04")
			require.NoError(t, err)
			require.False(t, view.Result.Empty())

			rep := view.Result.Report
			require.Len(t, rep.Groups, 2)
			assert.Equal(t, report.Group{Code: "A", RecordCount: 3, TotalT1: 2, TotalT2: 1, Total: 3}, rep.Groups[0])
			assert.Equal(t, report.Group{Code: "B", RecordCount: 1, TotalT1: 0, TotalT2: 1, Total: 1}, rep.Groups[1])
			assert.Equal(t, report.Totals{T1: 2, T2: 2, Total: 4}, rep.Grand)
			assert.Equal(t, "Daily Report", view.Title)
			assert.Equal(t, "Monday, March 4, 2024", view.Subtitle)
		})
	}
}

func TestGenerate_DefaultsToCurrentPeriod(t *testing.T) {
	store := setupBlobStore(t)
	seed(t, store, testutil.NewTestRecord("A"))
	svc := NewReportService(store, testClock(), language.English)
	ctx := context.Background()

	tests := []struct {
		kind       report.Kind
		wantPeriod string
	}{
		{report.KindDaily, "2024-03-04"},
		{report.KindWeekly, "2024-W10"},
		{report.KindMonthly, "2024-03"},
		{report.KindAnnual, "2024"},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			view, err := svc.Generate(ctx, tt.kind, "")
			require.NoError(t, err)
			assert.Equal(t, tt.wantPeriod, view.Period)
			require.False(t, view.Result.Empty())
			assert.Equal(t, 1, view.Result.Report.Grand.Total)
		})
	}
}

func TestWeekly_UsesRecordYear(t *testing.T) {
	store := setupBlobStore(t)
	seed(t, store,
		// 2024-01-01 is a Monday: week 1 of 2024.
		testutil.NewTestRecord("NEW", testutil.WithDate("2024-01-01")),
		// 2023-01-02 is also week 1, but of 2023.
		testutil.NewTestRecord("OLD", testutil.WithDate("2023-01-02")),
	)
	svc := NewReportService(store, testClock(), language.English)

	view, err := svc.Weekly(context.Background(), 2024, 1)
	require.NoError(t, err)
	require.False(t, view.Result.Empty())
	require.Len(t, view.Result.Report.Groups, 1)
	assert.Equal(t, "NEW", view.Result.Report.Groups[0].Code)
}

func TestMonthlyAndAnnual(t *testing.T) {
	store := setupBlobStore(t)
	seed(t, store,
		testutil.NewTestRecord("A", testutil.WithDate("2024-02-10"), testutil.WithCounts(2, 3)),
		testutil.NewTestRecord("A", testutil.WithDate("2024-03-10")),
		testutil.NewTestRecord("A", testutil.WithDate("2023-02-10")),
	)
	svc := NewReportService(store, testClock(), language.English)
	ctx := context.Background()

	feb, err := svc.Monthly(ctx, 2024, 2)
	require.NoError(t, err)
	assert.Equal(t, "2024-02", feb.Period)
	// Groups count records by shift; the stored counters are not summed.
	assert.Equal(t, report.Totals{T1: 1, T2: 0, Total: 1}, feb.Result.Report.Grand)

	year, err := svc.Annual(ctx, 2024)
	require.NoError(t, err)
	assert.Equal(t, 2, year.Result.Report.RecordCount())
	assert.Equal(t, 2, year.Result.Report.Grand.Total)
}

func TestGenerate_EmptyPeriodIsMarkedEmpty(t *testing.T) {
	svc := NewReportService(setupBlobStore(t), testClock(), language.English)

	view, err := svc.Annual(context.Background(), 1999)
	require.NoError(t, err)
	assert.True(t, view.Result.Empty())
	assert.Nil(t, view.Result.Report)
}

func TestGenerate_InvalidPeriod(t *testing.T) {
	svc := NewReportService(setupBlobStore(t), testClock(), language.English)

	_, err := svc.Generate(context.Background(), report.KindWeekly, "2024-10")
	require.Error(t, err)
	assert.True(t, errors.Is(err, report.ErrInvalidPeriod))
}

func TestMonthly_RejectsOutOfRangeMonth(t *testing.T) {
	svc := NewReportService(setupBlobStore(t), testClock(), language.English)

	for _, month := range []int{0, 13, -1} {
		view, err := svc.Monthly(context.Background(), 2024, month)
		require.Error(t, err, "month %d", month)
		assert.True(t, errors.Is(err, report.ErrInvalidPeriod))
		assert.Nil(t, view)
	}
}

func TestGenerate_StorageErrorSurfaces(t *testing.T) {
	kv := testutil.NewFailingKV()
	kv.GetErr = errors.New("permission denied")
	svc := NewReportService(repository.NewBlobRecordStore(kv, testClock()), testClock(), language.English)

	_, err := svc.Daily(context.Background(), "2024-03-04")
	require.Error(t, err)
	assert.True(t, repository.IsStorageError(err))
}

func TestGenerate_SpanishHeadings(t *testing.T) {
	store := setupBlobStore(t)
	seed(t, store, testutil.NewTestRecord("A"))
	svc := NewReportService(store, testClock(), language.Spanish)

	view, err := svc.Daily(context.Background(), "2024-03-04")
	require.NoError(t, err)
	assert.Equal(t, "Reporte Diario", view.Title)
	assert.Equal(t, "Lunes, 4 de marzo de 2024", view.Subtitle)
}

func TestReportService_ObserverSeesEmptyFlag(t *testing.T) {
	obs := &capturingObserver{}
	svc := NewReportService(setupBlobStore(t), testClock(), language.English, obs)

	_, err := svc.Daily(context.Background(), "2024-03-04")
	require.NoError(t, err)
	ev := obs.last()
	assert.Equal(t, "report", ev.Name)
	assert.Equal(t, true, ev.Fields["empty"])
	assert.Equal(t, "daily", ev.Fields["kind"])
}

func TestDaily_ShiftFollowsScanHour(t *testing.T) {
	store := setupSQLiteStore(t)
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	seed(t, store,
		testutil.ScanAt("A", day.Add(13*time.Hour+59*time.Minute)),
		testutil.ScanAt("A", day.Add(14*time.Hour)),
		testutil.ScanAt("A", day.Add(23*time.Hour+59*time.Minute)),
	)
	svc := NewReportService(store, testClock(), language.English)

	view, err := svc.Daily(context.Background(), "2024-03-04")
	require.NoError(t, err)
	require.Len(t, view.Result.Report.Groups, 1)
	g := view.Result.Report.Groups[0]
	assert.Equal(t, 1, g.TotalT1)
	assert.Equal(t, 2, g.TotalT2)
}
