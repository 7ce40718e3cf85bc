package ldtest

import (
	"sync"

	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"

	"github.com/qa-harness/reqres-contract-tests/framework"
)

// reportRecord is everything a file report needs to know about one test.
type reportRecord struct {
	id       TestID
	result   TestResult
	finished bool
	skipped  ldvalue.OptionalString
	output   framework.CapturedOutput
}

// Status is the test's own status. Parent tests are not affected by their subtests here; use
// Results.StatusOf for that.
func (r reportRecord) Status() EntryStatus {
	if r.skipped.IsDefined() {
		return EntrySkip
	}
	return r.result.Status()
}

// reportStatus is the status shown for the test in a report: a top-level test takes on the
// combined status of its subtests, unless it was skipped.
func (r reportRecord) reportStatus(results Results) EntryStatus {
	status := r.Status()
	if status != EntrySkip && len(r.id) == 1 {
		status = results.StatusOf(r.id)
	}
	return status
}

// reportCollector accumulates test outcomes in the order that the tests were started, so that
// a parent test always precedes its subtests. It is embedded by the loggers that write a file
// at the end of the run.
type reportCollector struct {
	records []*reportRecord
	byID    map[string]*reportRecord
	lock    sync.Mutex
}

func (c *reportCollector) record(id TestID) *reportRecord {
	if c.byID == nil {
		c.byID = make(map[string]*reportRecord)
	}
	r, ok := c.byID[id.String()]
	if !ok {
		r = &reportRecord{id: id}
		c.byID[id.String()] = r
		c.records = append(c.records, r)
	}
	return r
}

func (c *reportCollector) TestStarted(id TestID) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.record(id)
}

// TestError is a no-op because the errors are also delivered in the TestResult.
func (c *reportCollector) TestError(TestID, error) {}

func (c *reportCollector) TestFinished(id TestID, result TestResult, debugOutput framework.CapturedOutput) {
	c.lock.Lock()
	defer c.lock.Unlock()
	r := c.record(id)
	r.result = result
	r.finished = true
	r.output = debugOutput
}

func (c *reportCollector) TestSkipped(id TestID, reason string) {
	c.lock.Lock()
	defer c.lock.Unlock()
	r := c.record(id)
	r.skipped = ldvalue.NewOptionalString(reason)
	r.result.TestID = id
}

// snapshot returns copies of the records that have either finished or been skipped.
func (c *reportCollector) snapshot() []reportRecord {
	c.lock.Lock()
	defer c.lock.Unlock()
	ret := make([]reportRecord, 0, len(c.records))
	for _, r := range c.records {
		if r.finished || r.skipped.IsDefined() {
			ret = append(ret, *r)
		}
	}
	return ret
}

type reportTotals struct {
	Total, Passed, Failed, Warnings, Skipped int
}

// totals counts top-level tests only, using the combined status of each test and its subtests.
func totals(records []reportRecord, results Results) reportTotals {
	var t reportTotals
	for _, r := range records {
		if len(r.id) != 1 {
			continue
		}
		t.Total++
		switch r.reportStatus(results) {
		case EntryPass:
			t.Passed++
		case EntryFail:
			t.Failed++
		case EntryWarning:
			t.Warnings++
		case EntrySkip:
			t.Skipped++
		}
	}
	return t
}
