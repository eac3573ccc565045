package report

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/shiftlog/internal/domain"
)

// Predicate selects the records that belong to a report period.
type Predicate func(r *domain.WorkRecord) bool

// Daily matches records on exactly the given YYYY-MM-DD date.
func Daily(date string) Predicate {
	return func(r *domain.WorkRecord) bool {
		return r.Date == date
	}
}

// Weekly matches records whose own calendar year is year and whose
// WeekNumber is week. Records with unparseable dates never match.
func Weekly(year, week int) Predicate {
	return func(r *domain.WorkRecord) bool {
		y, w, err := WeekNumberOf(r.Date)
		if err != nil {
			return false
		}
		return y == year && w == week
	}
}

// Monthly matches records whose date starts with YYYY-MM.
func Monthly(year, month int) Predicate {
	return Prefix(fmt.Sprintf("%04d-%02d", year, month))
}

// Annual matches records whose date starts with YYYY.
func Annual(year int) Predicate {
	return Prefix(fmt.Sprintf("%04d", year))
}

// Prefix matches records whose date string starts with prefix.
func Prefix(prefix string) Predicate {
	return func(r *domain.WorkRecord) bool {
		return strings.HasPrefix(r.Date, prefix)
	}
}

// DateRange matches records with from <= date <= to. Either bound may be
// empty to leave that side open. YYYY-MM-DD strings order lexically.
func DateRange(from, to string) Predicate {
	return func(r *domain.WorkRecord) bool {
		if from != "" && r.Date < from {
			return false
		}
		if to != "" && r.Date > to {
			return false
		}
		return true
	}
}

// And matches records accepted by every non-nil predicate.
func And(preds ...Predicate) Predicate {
	return func(r *domain.WorkRecord) bool {
		for _, p := range preds {
			if p != nil && !p(r) {
				return false
			}
		}
		return true
	}
}

// Filter returns the records accepted by pred, preserving order.
func Filter(records []*domain.WorkRecord, pred Predicate) []*domain.WorkRecord {
	var out []*domain.WorkRecord
	for _, r := range records {
		if pred == nil || pred(r) {
			out = append(out, r)
		}
	}
	return out
}
