package ldtest

import (
	"bytes"
	_ "embed" // this is required in order for go:embed to work
	"fmt"
	"html/template"
	"os"
	"strings"
	"time"
)

//go:embed html_report.tmpl
var htmlReportTemplateText string

var htmlReportTemplate = template.Must( //nolint:gochecknoglobals
	template.New("report").Funcs(template.FuncMap{
		"upper":    func(s EntryStatus) string { return strings.ToUpper(string(s)) },
		"clock":    func(t time.Time) string { return t.Format("15:04:05.000") },
		"duration": func(d time.Duration) string { return d.Round(time.Millisecond).String() },
	}).Parse(htmlReportTemplateText))

// HTMLReportLogger accumulates a report entry for every test and renders them all into a single
// self-contained HTML file when EndLog is called.
type HTMLReportLogger struct {
	reportCollector
	filePath string
	title    string
	baseURL  string
}

// NewHTMLReportLogger creates an HTMLReportLogger that will write to filePath.
func NewHTMLReportLogger(filePath, title, baseURL string) *HTMLReportLogger {
	return &HTMLReportLogger{filePath: filePath, title: title, baseURL: baseURL}
}

type htmlReportData struct {
	Title     string
	BaseURL   string
	RunID     string
	StartTime string
	Duration  time.Duration
	Totals    reportTotals
	Tests     []htmlReportTest
}

type htmlReportTest struct {
	Name        string
	Depth       int
	Description string
	Status      EntryStatus
	SkipReason  string
	Explanation string
	Duration    time.Duration
	Entries     []ReportEntry
	Errors      []string
	DebugOutput string
}

func (h *HTMLReportLogger) EndLog(results Results) error {
	fmt.Printf("Writing HTML report to %s\n", h.filePath)
	data, err := h.render(results)
	if err != nil {
		return fmt.Errorf("failed to render HTML report: %w", err)
	}
	if err := os.WriteFile(h.filePath, data, 0644); err != nil { //nolint:gosec
		return fmt.Errorf("failed to write HTML report: %w", err)
	}
	return nil
}

func (h *HTMLReportLogger) render(results Results) ([]byte, error) {
	records := h.snapshot()
	data := htmlReportData{
		Title:     h.title,
		BaseURL:   h.baseURL,
		RunID:     results.RunID,
		StartTime: results.StartTime.Format(time.RFC1123),
		Duration:  results.Duration,
		Totals:    totals(records, results),
	}
	for _, r := range records {
		test := htmlReportTest{
			Name:        r.id.String(),
			Depth:       len(r.id) - 1,
			Description: r.result.Description,
			Status:      r.reportStatus(results),
			SkipReason:  r.skipped.StringValue(),
			Explanation: r.result.Explanation,
			Duration:    r.result.Duration,
			Entries:     r.result.Entries,
		}
		for _, e := range r.result.Errors {
			test.Errors = append(test.Errors, FormatError(e))
		}
		if r.result.Failed() {
			test.DebugOutput = r.output.ToString("")
		}
		data.Tests = append(data.Tests, test)
	}

	var buf bytes.Buffer
	if err := htmlReportTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
