package ldtest

import (
	"fmt"
	"os"
	"time"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
)

// JSONTestLogger writes a machine-readable summary of the run at the end.
type JSONTestLogger struct {
	reportCollector
	filePath string
	baseURL  string
}

func NewJSONTestLogger(filePath, baseURL string) *JSONTestLogger {
	return &JSONTestLogger{filePath: filePath, baseURL: baseURL}
}

func (j *JSONTestLogger) EndLog(results Results) error {
	fmt.Printf("Writing JSON results to %s\n", j.filePath)
	data, err := j.marshal(results)
	if err != nil {
		return fmt.Errorf("failed to serialize JSON results: %w", err)
	}
	if err := os.WriteFile(j.filePath, data, 0644); err != nil { //nolint:gosec
		return fmt.Errorf("failed to write JSON results: %w", err)
	}
	return nil
}

func (j *JSONTestLogger) marshal(results Results) ([]byte, error) {
	records := j.snapshot()
	t := totals(records, results)

	w := jwriter.NewWriter()
	obj := w.Object()
	obj.Name("runId").String(results.RunID)
	obj.Name("baseUrl").String(j.baseURL)
	obj.Name("startTime").String(results.StartTime.UTC().Format(time.RFC3339))
	obj.Name("durationMs").Int(int(results.Duration.Milliseconds()))
	obj.Name("ok").Bool(results.OK())

	totalsObj := obj.Name("totals").Object()
	totalsObj.Name("total").Int(t.Total)
	totalsObj.Name("passed").Int(t.Passed)
	totalsObj.Name("failed").Int(t.Failed)
	totalsObj.Name("warnings").Int(t.Warnings)
	totalsObj.Name("skipped").Int(t.Skipped)
	totalsObj.End()

	testsArr := obj.Name("tests").Array()
	for _, r := range records {
		testObj := testsArr.Object()
		testObj.Name("id").String(r.id.String())
		testObj.Maybe("description", r.result.Description != "").String(r.result.Description)
		testObj.Name("status").String(string(r.reportStatus(results)))
		testObj.Maybe("skipReason", r.skipped.IsDefined()).String(r.skipped.StringValue())
		testObj.Maybe("nonCriticalExplanation", r.result.NonCritical).String(r.result.Explanation)
		testObj.Name("durationMs").Int(int(r.result.Duration.Milliseconds()))

		entriesArr := testObj.Name("entries").Array()
		for _, e := range r.result.Entries {
			entryObj := entriesArr.Object()
			entryObj.Name("time").String(e.Time.UTC().Format(time.RFC3339Nano))
			entryObj.Name("status").String(string(e.Status))
			entryObj.Name("message").String(e.Message)
			entryObj.End()
		}
		entriesArr.End()

		if r.result.Failed() {
			errorsArr := testObj.Name("errors").Array()
			for _, e := range r.result.Errors {
				errorsArr.String(FormatError(e))
			}
			errorsArr.End()
		}
		testObj.End()
	}
	testsArr.End()
	obj.End()

	if err := w.Error(); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}
