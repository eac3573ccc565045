package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/shiftlog/internal/domain"
)

var recordHeaders = []string{"ID", "DATE", "TIME", "BARCODE", "SHIFT", "T1", "T2", "TOTAL"}

// FormatRecordTable renders records in the order given.
func FormatRecordTable(records []*domain.WorkRecord) string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			Dim(strconv.FormatInt(r.ID, 10)),
			r.Date,
			r.Time,
			Bold(r.Barcode),
			ShiftBadge(r.Shift),
			strconv.Itoa(r.CountT1),
			strconv.Itoa(r.CountT2),
			strconv.Itoa(r.Total()),
		})
	}
	return Table{
		Headers:    recordHeaders,
		Rows:       rows,
		RightAlign: map[int]bool{0: true, 5: true, 6: true, 7: true},
	}.Render()
}

// FormatRecordList boxes a record table under title, or says there is
// nothing to show.
func FormatRecordList(title string, records []*domain.WorkRecord) string {
	if len(records) == 0 {
		return Dim("No records found.") + "\n"
	}
	body := FormatRecordTable(records) + "\n" + Dim(Plural(len(records), "record", "records"))
	return RenderBox(title, body) + "\n"
}

// FormatSaved is the confirmation line printed after a record is stored.
func FormatSaved(r *domain.WorkRecord) string {
	return Success(fmt.Sprintf("Saved %s %s %s %s (id %d)",
		r.Barcode, r.Date, r.Time, r.Shift, r.ID))
}

// FormatShiftInfo describes the shift in effect at clock time hhmm.
func FormatShiftInfo(s domain.Shift, hhmm string) string {
	start, end := s.Window()
	var b strings.Builder
	b.WriteString(Header("Current shift"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s  %s\n", ShiftBadge(s), Dim(fmt.Sprintf("%s-%s", start, end)))
	fmt.Fprintf(&b, "%s %s\n", Dim("now"), hhmm)
	return b.String()
}
