package repository

import (
	"time"

	"github.com/alexanderramin/shiftlog/internal/domain"
)

// formatCreatedAt renders a creation timestamp for storage. RFC3339Nano
// keeps sub-second precision so blob round-trips are exact.
func formatCreatedAt(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

func parseCreatedAt(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

// stampCreatedAt fills CreatedAt from the clock when the caller left it zero.
func stampCreatedAt(r *domain.WorkRecord, clock domain.Clock) {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = clock.Now()
	}
}

func clockOrSystem(c domain.Clock) domain.Clock {
	if c == nil {
		return domain.SystemClock{}
	}
	return c
}
