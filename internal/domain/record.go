package domain

import "time"

// WorkRecord is one scan or manual registration event.
// Records are never updated in place: they are created and deleted.
type WorkRecord struct {
	ID        int64
	Barcode   string
	Date      string // YYYY-MM-DD, local calendar date
	Time      string // HH:MM
	Shift     Shift
	CountT1   int
	CountT2   int
	CreatedAt time.Time
}

// Total is always derived from the per-shift counts.
func (r *WorkRecord) Total() int {
	return r.CountT1 + r.CountT2
}

// NewScanRecord builds the record produced by a single barcode scan:
// the counter of the active shift is 1 and the other is 0.
func NewScanRecord(barcode string, shift Shift, now time.Time) *WorkRecord {
	r := &WorkRecord{
		Barcode:   barcode,
		Date:      FormatDate(now),
		Time:      FormatClock(now),
		Shift:     shift,
		CreatedAt: now,
	}
	if shift == ShiftT1 {
		r.CountT1 = 1
	} else {
		r.CountT2 = 1
	}
	return r
}

// Year returns the YYYY prefix of the record date.
func (r *WorkRecord) Year() string {
	if len(r.Date) < 4 {
		return r.Date
	}
	return r.Date[:4]
}
