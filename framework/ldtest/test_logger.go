package ldtest

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/qa-harness/reqres-contract-tests/framework"
)

var consoleTestErrorColor = color.New(color.FgYellow)              //nolint:gochecknoglobals
var consoleTestFailedColor = color.New(color.FgRed)                //nolint:gochecknoglobals
var consoleTestWarningColor = color.New(color.FgMagenta)           //nolint:gochecknoglobals
var consoleTestSkippedColor = color.New(color.Faint, color.FgBlue) //nolint:gochecknoglobals
var consoleDebugOutputColor = color.New(color.Faint)               //nolint:gochecknoglobals
var allTestsPassedColor = color.New(color.FgGreen)                 //nolint:gochecknoglobals

// TestLogger receives status information as the test run progresses. EndLog is called exactly
// once, after the last test has finished; loggers that produce files write them at that point.
type TestLogger interface {
	TestStarted(id TestID)
	TestError(id TestID, err error)
	TestFinished(id TestID, result TestResult, debugOutput framework.CapturedOutput)
	TestSkipped(id TestID, reason string)
	EndLog(results Results) error
}

type nullTestLogger struct{}

func (n nullTestLogger) TestStarted(TestID)                                        {}
func (n nullTestLogger) TestError(TestID, error)                                   {}
func (n nullTestLogger) TestFinished(TestID, TestResult, framework.CapturedOutput) {}
func (n nullTestLogger) TestSkipped(TestID, string)                                {}
func (n nullTestLogger) EndLog(Results) error                                      { return nil }

// ConsoleTestLogger prints progress to standard output as tests run.
type ConsoleTestLogger struct {
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
}

func (c ConsoleTestLogger) TestStarted(id TestID) {
	fmt.Printf("[%s]\n", id)
}

func (c ConsoleTestLogger) TestError(id TestID, err error) {
	for _, line := range strings.Split(err.Error(), "\n") {
		_, _ = consoleTestErrorColor.Printf("  %s\n", line)
	}
}

func (c ConsoleTestLogger) TestFinished(id TestID, result TestResult, debugOutput framework.CapturedOutput) {
	failed := result.Failed()
	if failed {
		if result.NonCritical {
			_, _ = consoleTestWarningColor.Printf("  FAILED (non-critical): %s\n", id)
		} else {
			_, _ = consoleTestFailedColor.Printf("  FAILED: %s\n", id)
		}
	}
	if len(debugOutput) > 0 &&
		((failed && c.DebugOutputOnFailure) || (!failed && c.DebugOutputOnSuccess)) {
		_, _ = consoleDebugOutputColor.Println(debugOutput.ToString("    DEBUG "))
	}
}

func (c ConsoleTestLogger) TestSkipped(id TestID, reason string) {
	if reason == "" {
		_, _ = consoleTestSkippedColor.Printf("  SKIPPED: %s\n", id)
	} else {
		_, _ = consoleTestSkippedColor.Printf("  SKIPPED: %s (%s)\n", id, reason)
	}
}

func (c ConsoleTestLogger) EndLog(results Results) error {
	fmt.Println()
	PrintResults(results)
	return nil
}

// MultiTestLogger sends every notification to each of its loggers in order.
type MultiTestLogger struct {
	Loggers []TestLogger
}

func (m *MultiTestLogger) TestStarted(id TestID) {
	for _, l := range m.Loggers {
		l.TestStarted(id)
	}
}

func (m *MultiTestLogger) TestError(id TestID, err error) {
	for _, l := range m.Loggers {
		l.TestError(id, err)
	}
}

func (m *MultiTestLogger) TestFinished(id TestID, result TestResult, debugOutput framework.CapturedOutput) {
	for _, l := range m.Loggers {
		l.TestFinished(id, result, debugOutput)
	}
}

func (m *MultiTestLogger) TestSkipped(id TestID, reason string) {
	for _, l := range m.Loggers {
		l.TestSkipped(id, reason)
	}
}

// EndLog calls EndLog on every logger, even if an earlier one fails, and returns all of the
// errors joined together.
func (m *MultiTestLogger) EndLog(results Results) error {
	var errs []error
	for _, l := range m.Loggers {
		if err := l.EndLog(results); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// PrintResults prints a summary table of every top-level test followed by the overall outcome.
func PrintResults(results Results) {
	WriteSummaryTable(os.Stdout, results)
	if results.OK() {
		_, _ = allTestsPassedColor.Println("All tests passed")
	} else {
		_, _ = consoleTestFailedColor.Fprintf(os.Stderr, "FAILED TESTS (%d):\n", len(results.Failures))
		for _, f := range results.Failures {
			_, _ = consoleTestFailedColor.Fprintf(os.Stderr, "  * %s\n", f.TestID)
		}
	}
	if len(results.NonCriticalFailures) != 0 {
		_, _ = consoleTestWarningColor.Printf("NON-CRITICAL FAILURES (%d):\n", len(results.NonCriticalFailures))
		for _, f := range results.NonCriticalFailures {
			_, _ = consoleTestWarningColor.Printf("  * %s (%s)\n", f.TestID, f.Explanation)
		}
	}
}

// WriteSummaryTable renders one row per finished top-level test.
func WriteSummaryTable(w io.Writer, results Results) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Test", "Status", "Checks", "Duration"})
	table.SetAutoWrapText(false)
	for _, r := range results.Tests {
		if len(r.TestID) != 1 {
			continue
		}
		checks := 0
		for _, e := range r.Entries {
			if e.Status == EntryPass {
				checks++
			}
		}
		table.Append([]string{
			r.TestID.String(),
			strings.ToUpper(string(results.StatusOf(r.TestID))),
			fmt.Sprintf("%d", checks),
			r.Duration.Round(time.Millisecond).String(),
		})
	}
	table.Render()
}
