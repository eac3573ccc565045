// Package report groups work records by barcode and counts them per shift.
package report

import "github.com/alexanderramin/shiftlog/internal/domain"

// Group is the per-barcode aggregation unit of a report.
type Group struct {
	Code        string
	RecordCount int
	TotalT1     int
	TotalT2     int
	Total       int
}

// Totals are the grand totals over every group.
type Totals struct {
	T1    int
	T2    int
	Total int
}

// Report holds the groups of a non-empty period in first-seen order.
type Report struct {
	Groups []Group
	Grand  Totals
}

// RecordCount is the number of records across all groups.
func (r *Report) RecordCount() int {
	n := 0
	for _, g := range r.Groups {
		n += g.RecordCount
	}
	return n
}

// Result is the outcome of Aggregate. A period without records yields
// a Result whose Empty reports true and whose Report is nil, which callers
// must render as "no data for period" rather than as a zero table.
type Result struct {
	Report *Report
}

func (r Result) Empty() bool { return r.Report == nil }

// Aggregate filters records with pred and groups the survivors by barcode.
// Per-group shift totals count records by their Shift field; the CountT1
// and CountT2 fields of a record are not summed.
func Aggregate(records []*domain.WorkRecord, pred Predicate) Result {
	index := make(map[string]int)
	var groups []Group

	for _, r := range records {
		if pred != nil && !pred(r) {
			continue
		}
		i, ok := index[r.Barcode]
		if !ok {
			i = len(groups)
			index[r.Barcode] = i
			groups = append(groups, Group{Code: r.Barcode})
		}
		g := &groups[i]
		g.RecordCount++
		switch r.Shift {
		case domain.ShiftT1:
			g.TotalT1++
		case domain.ShiftT2:
			g.TotalT2++
		}
		g.Total++
	}

	if len(groups) == 0 {
		return Result{}
	}

	rep := &Report{Groups: groups}
	for _, g := range groups {
		rep.Grand.T1 += g.TotalT1
		rep.Grand.T2 += g.TotalT2
		rep.Grand.Total += g.Total
	}
	return Result{Report: rep}
}
