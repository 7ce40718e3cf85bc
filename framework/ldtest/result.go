package ldtest

import (
	"fmt"
	"strings"
	"time"
)

// Results is the outcome of an entire test run.
type Results struct {
	// RunID uniquely identifies this run in every report that is produced for it.
	RunID string

	StartTime time.Time
	Duration  time.Duration

	Tests               []TestResult
	Failures            []TestResult
	NonCriticalFailures []TestResult
}

// TestResult is the outcome of a single test scope.
type TestResult struct {
	TestID      TestID
	Description string
	Entries     []ReportEntry
	Errors      []error
	StartTime   time.Time
	Duration    time.Duration
	NonCritical bool
	Explanation string
}

// OK returns true if there were no critical failures.
func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// StatusOf returns the combined status of a test and all of its subtests: a critical failure
// anywhere beneath it makes it a failure, and a non-critical failure makes it a warning.
func (r Results) StatusOf(id TestID) EntryStatus {
	status := EntryPass
	for _, t := range r.Tests {
		if !t.TestID.HasPrefix(id) {
			continue
		}
		switch t.Status() {
		case EntryFail:
			return EntryFail
		case EntryWarning:
			status = EntryWarning
		}
	}
	return status
}

// Failed returns true if any error was reported for the test.
func (r TestResult) Failed() bool {
	return len(r.Errors) != 0
}

// Status is the report status of a finished test. A non-critical failure is reported as a warning.
func (r TestResult) Status() EntryStatus {
	switch {
	case r.Failed() && r.NonCritical:
		return EntryWarning
	case r.Failed():
		return EntryFail
	default:
		return EntryPass
	}
}

// EntryStatus is the kind of a ReportEntry, and also the overall status of a test in a report.
type EntryStatus string

const (
	EntryInfo    EntryStatus = "info"
	EntryPass    EntryStatus = "pass"
	EntryFail    EntryStatus = "fail"
	EntryWarning EntryStatus = "warning"
	EntrySkip    EntryStatus = "skip"
)

// ReportEntry is one line in a test's report: a log message, or a pass/fail marker.
type ReportEntry struct {
	Time    time.Time
	Status  EntryStatus
	Message string
}

type TestID []string

func (t TestID) String() string {
	return strings.Join(t, "/")
}

func (t TestID) Plus(name string) TestID {
	return append(append(TestID(nil), t...), name)
}

// HasPrefix returns true if the ID is equal to prefix or is a descendant of it.
func (t TestID) HasPrefix(prefix TestID) bool {
	if len(prefix) > len(t) {
		return false
	}
	for i, name := range prefix {
		if t[i] != name {
			return false
		}
	}
	return true
}

// Name is the last component of the ID, or "" for the root scope.
func (t TestID) Name() string {
	if len(t) == 0 {
		return ""
	}
	return t[len(t)-1]
}

type TestFailure struct {
	ID  TestID
	Err error
}

func (f TestFailure) Error() string {
	return fmt.Sprintf("[%s]: %s", f.ID, f.Err)
}
