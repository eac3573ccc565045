package testutil

import (
	"time"

	"github.com/alexanderramin/shiftlog/internal/domain"
)

// FixtureNow is the default creation time for fixture records.
var FixtureNow = time.Date(2024, 3, 4, 9, 15, 0, 0, time.UTC)

// RecordOption customizes a fixture record.
type RecordOption func(*domain.WorkRecord)

func WithID(id int64) RecordOption {
	return func(r *domain.WorkRecord) {
		r.ID = id
	}
}

func WithDate(date string) RecordOption {
	return func(r *domain.WorkRecord) {
		r.Date = date
	}
}

func WithTime(clock string) RecordOption {
	return func(r *domain.WorkRecord) {
		r.Time = clock
	}
}

// WithShift sets the shift and resets the counts to the scan pattern.
func WithShift(s domain.Shift) RecordOption {
	return func(r *domain.WorkRecord) {
		r.Shift = s
		r.CountT1, r.CountT2 = 0, 0
		if s == domain.ShiftT1 {
			r.CountT1 = 1
		} else {
			r.CountT2 = 1
		}
	}
}

// WithCounts overrides both counters, as a manual registration may.
func WithCounts(t1, t2 int) RecordOption {
	return func(r *domain.WorkRecord) {
		r.CountT1 = t1
		r.CountT2 = t2
	}
}

func WithCreatedAt(t time.Time) RecordOption {
	return func(r *domain.WorkRecord) {
		r.CreatedAt = t
	}
}

// NewTestRecord returns an unsaved T1 scan record for barcode on 2024-03-04.
func NewTestRecord(barcode string, opts ...RecordOption) *domain.WorkRecord {
	r := &domain.WorkRecord{
		Barcode:   barcode,
		Date:      "2024-03-04",
		Time:      "09:15",
		Shift:     domain.ShiftT1,
		CountT1:   1,
		CreatedAt: FixtureNow,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ScanAt builds a scan record the way a barcode scan at t would.
func ScanAt(barcode string, t time.Time) *domain.WorkRecord {
	return domain.NewScanRecord(barcode, domain.ShiftForTime(t), t)
}
