package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// CSVHeader is the column header row of exported reports.
var CSVHeader = []string{"Barcode", "Records", "T1", "T2", "Total"}

// WriteCSV writes title, a blank line, CSVHeader and one row per group.
func WriteCSV(w io.Writer, title string, rep *Report) error {
	if rep == nil {
		return fmt.Errorf("writing csv: %w", ErrNoData)
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{title}); err != nil {
		return fmt.Errorf("writing csv title: %w", err)
	}
	cw.Flush()
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, g := range rep.Groups {
		row := []string{
			g.Code,
			strconv.Itoa(g.RecordCount),
			strconv.Itoa(g.TotalT1),
			strconv.Itoa(g.TotalT2),
			strconv.Itoa(g.Total),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row %s: %w", g.Code, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}

// XLSXSheet is the name of the sheet holding the report table.
const XLSXSheet = "Report"

// WriteXLSX writes the report as a workbook: title in A1, header on row 3,
// one row per group and a bold TOTAL row.
func WriteXLSX(w io.Writer, title string, rep *Report) error {
	if rep == nil {
		return fmt.Errorf("writing xlsx: %w", ErrNoData)
	}
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", XLSXSheet); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating bold style: %w", err)
	}

	if err := f.SetCellValue(XLSXSheet, "A1", title); err != nil {
		return fmt.Errorf("writing title: %w", err)
	}
	if err := f.SetCellStyle(XLSXSheet, "A1", "A1", bold); err != nil {
		return fmt.Errorf("styling title: %w", err)
	}

	header := make([]any, len(CSVHeader))
	for i, h := range CSVHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(XLSXSheet, "A3", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if err := f.SetCellStyle(XLSXSheet, "A3", "E3", bold); err != nil {
		return fmt.Errorf("styling header: %w", err)
	}

	row := 4
	for _, g := range rep.Groups {
		cell, _ := excelize.CoordinatesToCellName(1, row)
		values := []any{g.Code, g.RecordCount, g.TotalT1, g.TotalT2, g.Total}
		if err := f.SetSheetRow(XLSXSheet, cell, &values); err != nil {
			return fmt.Errorf("writing row %s: %w", g.Code, err)
		}
		row++
	}

	start, _ := excelize.CoordinatesToCellName(1, row)
	end, _ := excelize.CoordinatesToCellName(len(CSVHeader), row)
	totals := []any{"TOTAL", rep.RecordCount(), rep.Grand.T1, rep.Grand.T2, rep.Grand.Total}
	if err := f.SetSheetRow(XLSXSheet, start, &totals); err != nil {
		return fmt.Errorf("writing totals: %w", err)
	}
	if err := f.SetCellStyle(XLSXSheet, start, end, bold); err != nil {
		return fmt.Errorf("styling totals: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
