package ldtest

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	xlsxResultsSheet = "Results"
	xlsxLogSheet     = "Log"
	xlsxFailColor    = "FFC7CE"
	xlsxWarningColor = "FFEB9C"
	xlsxSkipColor    = "E7E6E6"
	xlsxHeaderColor  = "D9E1F2"
)

var xlsxResultsHeaders = []string{"Test", "Description", "Status", "Duration (ms)", "Checks", "Failures"} //nolint:gochecknoglobals
var xlsxLogHeaders = []string{"Test", "Time", "Status", "Message"}                                        //nolint:gochecknoglobals

// XLSXTestLogger writes a spreadsheet with one row per test on the first sheet, and every report
// entry on the second. Rows for failed tests are highlighted.
type XLSXTestLogger struct {
	reportCollector
	filePath string
}

func NewXLSXTestLogger(filePath string) *XLSXTestLogger {
	return &XLSXTestLogger{filePath: filePath}
}

func (x *XLSXTestLogger) EndLog(results Results) error {
	fmt.Printf("Writing spreadsheet report to %s\n", x.filePath)

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", xlsxResultsSheet); err != nil {
		return fmt.Errorf("failed to create spreadsheet: %w", err)
	}
	if _, err := f.NewSheet(xlsxLogSheet); err != nil {
		return fmt.Errorf("failed to create spreadsheet: %w", err)
	}

	styles, err := newXLSXStyles(f)
	if err != nil {
		return fmt.Errorf("failed to create spreadsheet styles: %w", err)
	}

	w := xlsxWriter{file: f, styles: styles}
	w.writeRow(xlsxResultsSheet, 1, EntryInfo, true, toCells(xlsxResultsHeaders)...)
	w.writeRow(xlsxLogSheet, 1, EntryInfo, true, toCells(xlsxLogHeaders)...)

	resultRow, logRow := 2, 2
	for _, r := range x.snapshot() {
		status := r.reportStatus(results)
		checks := 0
		for _, e := range r.result.Entries {
			if e.Status == EntryPass {
				checks++
			}
		}
		failures := make([]string, 0, len(r.result.Errors))
		for _, e := range r.result.Errors {
			failures = append(failures, e.Error())
		}
		if r.skipped.IsDefined() {
			failures = append(failures, r.skipped.StringValue())
		}
		w.writeRow(xlsxResultsSheet, resultRow, status, false,
			r.id.String(),
			r.result.Description,
			strings.ToUpper(string(status)),
			r.result.Duration.Milliseconds(),
			checks,
			strings.Join(failures, "\n"),
		)
		resultRow++

		for _, e := range r.result.Entries {
			w.writeRow(xlsxLogSheet, logRow, e.Status, false,
				r.id.String(),
				e.Time.Format("2006-01-02 15:04:05.000"),
				strings.ToUpper(string(e.Status)),
				e.Message,
			)
			logRow++
		}
	}

	summaryRow := resultRow + 1
	t := totals(x.snapshot(), results)
	w.writeRow(xlsxResultsSheet, summaryRow, EntryInfo, false, "Run ID", results.RunID)
	w.writeRow(xlsxResultsSheet, summaryRow+1, EntryInfo, false, "Tests", t.Total)
	w.writeRow(xlsxResultsSheet, summaryRow+2, EntryInfo, false, "Passed", t.Passed)
	w.writeRow(xlsxResultsSheet, summaryRow+3, EntryInfo, false, "Failed", t.Failed)
	w.writeRow(xlsxResultsSheet, summaryRow+4, EntryInfo, false, "Warnings", t.Warnings)
	w.writeRow(xlsxResultsSheet, summaryRow+5, EntryInfo, false, "Skipped", t.Skipped)

	w.setWidths(xlsxResultsSheet, map[string]float64{"A": 50, "B": 45, "C": 10, "D": 14, "E": 8, "F": 80})
	w.setWidths(xlsxLogSheet, map[string]float64{"A": 50, "B": 24, "C": 10, "D": 120})

	if w.err != nil {
		return fmt.Errorf("failed to fill spreadsheet: %w", w.err)
	}
	if err := f.SaveAs(x.filePath); err != nil {
		return fmt.Errorf("failed to write spreadsheet report: %w", err)
	}
	return nil
}

type xlsxStyles struct {
	header int
	byStat map[EntryStatus]int
}

func newXLSXStyles(f *excelize.File) (xlsxStyles, error) {
	fill := func(color string, bold bool) (int, error) {
		style := &excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}},
		}
		if bold {
			style.Font = &excelize.Font{Bold: true}
		}
		return f.NewStyle(style)
	}
	ret := xlsxStyles{byStat: make(map[EntryStatus]int)}
	var err error
	if ret.header, err = fill(xlsxHeaderColor, true); err != nil {
		return ret, err
	}
	for status, color := range map[EntryStatus]string{
		EntryFail:    xlsxFailColor,
		EntryWarning: xlsxWarningColor,
		EntrySkip:    xlsxSkipColor,
	} {
		id, err := fill(color, false)
		if err != nil {
			return ret, err
		}
		ret.byStat[status] = id
	}
	return ret, nil
}

// xlsxWriter keeps the first error so that the row-writing code doesn't need to check each call.
type xlsxWriter struct {
	file   *excelize.File
	styles xlsxStyles
	err    error
}

func (w *xlsxWriter) writeRow(sheet string, row int, status EntryStatus, header bool, cells ...interface{}) {
	if w.err != nil || len(cells) == 0 {
		return
	}
	for i, value := range cells {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			w.err = err
			return
		}
		if err := w.file.SetCellValue(sheet, cell, value); err != nil {
			w.err = err
			return
		}
	}
	style, ok := w.styles.byStat[status]
	if header {
		style, ok = w.styles.header, true
	}
	if !ok {
		return
	}
	first, _ := excelize.CoordinatesToCellName(1, row)
	last, _ := excelize.CoordinatesToCellName(len(cells), row)
	if err := w.file.SetCellStyle(sheet, first, last, style); err != nil {
		w.err = err
	}
}

func (w *xlsxWriter) setWidths(sheet string, widths map[string]float64) {
	for col, width := range widths {
		if w.err != nil {
			return
		}
		w.err = w.file.SetColWidth(sheet, col, col, width)
	}
}

func toCells(values []string) []interface{} {
	ret := make([]interface{}, 0, len(values))
	for _, v := range values {
		ret = append(ret, v)
	}
	return ret
}
