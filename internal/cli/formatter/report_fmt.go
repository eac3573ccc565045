package formatter

import (
	"strconv"
	"strings"

	"github.com/alexanderramin/shiftlog/internal/domain"
	"github.com/alexanderramin/shiftlog/internal/report"
	"github.com/alexanderramin/shiftlog/internal/service"
	"golang.org/x/text/language"
)

// NoDataMessage is shown instead of a table when a period has no records.
func NoDataMessage(lang language.Tag) string {
	base, _ := lang.Base()
	if base.String() == "es" {
		return "No hay datos para este período."
	}
	return "No data for this period."
}

// FormatReport renders a report view as a boxed table with a TOTAL row.
func FormatReport(view *service.ReportView, lang language.Tag) string {
	var b strings.Builder
	b.WriteString(Bold(view.Subtitle))
	b.WriteString("\n\n")

	if view.Result.Empty() {
		b.WriteString(Dim(NoDataMessage(lang)))
		return RenderBox(view.Title, b.String()) + "\n"
	}

	rep := view.Result.Report
	rows := make([][]string, 0, len(rep.Groups))
	for _, g := range rep.Groups {
		rows = append(rows, groupRow(g))
	}
	b.WriteString(Table{
		Headers: report.CSVHeader,
		Rows:    rows,
		Footer: []string{
			"TOTAL",
			strconv.Itoa(rep.RecordCount()),
			strconv.Itoa(rep.Grand.T1),
			strconv.Itoa(rep.Grand.T2),
			strconv.Itoa(rep.Grand.Total),
		},
		RightAlign: map[int]bool{1: true, 2: true, 3: true, 4: true},
	}.Render())
	return RenderBox(view.Title, b.String()) + "\n"
}

func groupRow(g report.Group) []string {
	return []string{
		g.Code,
		strconv.Itoa(g.RecordCount),
		ShiftStyle(domain.ShiftT1).Render(strconv.Itoa(g.TotalT1)),
		ShiftStyle(domain.ShiftT2).Render(strconv.Itoa(g.TotalT2)),
		Bold(strconv.Itoa(g.Total)),
	}
}
