package ldtest

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"testing"

	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"
	m "github.com/launchdarkly/go-test-helpers/v2/matchers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func runSampleSuite(logger TestLogger) Results {
	filters := RegexFilters{}
	_ = filters.MustNotMatch.Set("Filtered")
	return Run(TestConfiguration{TestLogger: logger, Filter: filters}, func(t *T) {
		t.Run("GET Users", func(t *T) {
			t.Describe("Test to get list of users")
			t.Info("Sending GET request to http://localhost/users")
			t.Pass("Status code is 200")
		})
		t.Run("DELETE User", func(t *T) {
			t.Describe("Test to delete a user")
			t.Errorf("Status code was 500, expected 204")
		})
		t.Run("Parameterized", func(t *T) {
			t.Run("row <1>", func(t *T) {
				t.Pass("Status code is 201")
			})
		})
		t.Run("Filtered", func(t *T) {})
	})
}

// runNestedSuite has one parent whose only failure is in a subtest, and one parent whose only
// problem is a non-critical failure in a subtest.
func runNestedSuite(logger TestLogger) Results {
	return Run(TestConfiguration{TestLogger: logger}, func(t *T) {
		t.Run("Create users", func(t *T) {
			t.Info("Running 2 data rows")
			t.Run("row 1", func(t *T) { t.Pass("Status code is 201") })
			t.Run("row 2", func(t *T) { t.Errorf("Status code was 400, expected 201") })
		})
		t.Run("Optional", func(t *T) {
			t.Run("header", func(t *T) {
				t.NonCritical("not enforced by every deployment")
				t.Errorf("missing header")
			})
		})
	})
}

func findRow(rows [][]string, label string) []string {
	for _, row := range rows {
		if len(row) > 0 && row[0] == label {
			return row
		}
	}
	return nil
}

func TestHTMLReportLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extent.html")
	logger := NewHTMLReportLogger(path, "User API Report", "http://localhost")
	results := runSampleSuite(logger)
	require.NoError(t, logger.EndLog(results))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	html := string(data)
	assert.Contains(t, html, "<title>User API Report</title>")
	assert.Contains(t, html, results.RunID)
	assert.Contains(t, html, "GET Users")
	assert.Contains(t, html, "Test to get list of users")
	assert.Contains(t, html, "Sending GET request to http://localhost/users")
	assert.Contains(t, html, "Status code is 200")
	assert.Contains(t, html, "Status code was 500, expected 204")
	assert.Contains(t, html, "row &lt;1&gt;")
	assert.Contains(t, html, "excluded by filter parameters")
}

func TestHTMLReportLoggerReturnsWriteError(t *testing.T) {
	logger := NewHTMLReportLogger(filepath.Join(t.TempDir(), "missing-dir", "extent.html"), "x", "")
	results := runSampleSuite(logger)
	assert.Error(t, logger.EndLog(results))
}

func TestJSONTestLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	logger := NewJSONTestLogger(path, "http://localhost")
	results := runSampleSuite(logger)
	require.NoError(t, logger.EndLog(results))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	value := ldvalue.Parse(data)

	m.In(t).Assert(value, m.AllOf(
		m.JSONProperty("runId").Should(m.Equal(results.RunID)),
		m.JSONProperty("baseUrl").Should(m.Equal("http://localhost")),
		m.JSONProperty("ok").Should(m.Equal(false)),
		m.JSONProperty("totals").Should(m.JSONStrEqual(
			`{"total":4,"passed":2,"failed":1,"warnings":0,"skipped":1}`)),
	))

	tests := value.GetByKey("tests")
	require.Equal(t, 5, tests.Count())
	first := tests.GetByIndex(0)
	assert.Equal(t, "GET Users", first.GetByKey("id").StringValue())
	assert.Equal(t, "pass", first.GetByKey("status").StringValue())
	assert.Equal(t, "Status code is 200", first.GetByKey("entries").GetByIndex(1).GetByKey("message").StringValue())
	second := tests.GetByIndex(1)
	assert.Equal(t, "fail", second.GetByKey("status").StringValue())
	assert.Equal(t, 1, second.GetByKey("errors").Count())
	assert.Equal(t, "Parameterized/row <1>", tests.GetByIndex(3).GetByKey("id").StringValue())
	assert.Equal(t, "skip", tests.GetByIndex(4).GetByKey("status").StringValue())
}

func TestJUnitTestLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junit.xml")
	logger := NewJUnitTestLogger(path, map[string]string{"tests.base.url": "http://localhost"}, RegexFilters{})
	results := runSampleSuite(logger)
	require.NoError(t, logger.EndLog(results))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc jUnitXMLDocument
	require.NoError(t, xml.Unmarshal(data, &doc))

	require.Len(t, doc.Suites, 4)
	assert.Equal(t, "API contract tests: GET Users", doc.Suites[0].Name)
	assert.Equal(t, 0, doc.Suites[0].Failures)
	assert.Equal(t, 1, doc.Suites[1].Failures)
	require.NotNil(t, doc.Suites[1].TestCases[0].Failure)
	assert.Contains(t, doc.Suites[1].TestCases[0].Failure.Message, "Status code was 500, expected 204")
	assert.Equal(t, 2, doc.Suites[2].Tests)
	require.NotNil(t, doc.Suites[3].TestCases[0].SkipMessage)
}

func TestXLSXTestLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	logger := NewXLSXTestLogger(path)
	results := runSampleSuite(logger)
	require.NoError(t, logger.EndLog(results))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(xlsxResultsSheet)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 6)
	assert.Equal(t, xlsxResultsHeaders, rows[0])
	assert.Equal(t, "GET Users", rows[1][0])
	assert.Equal(t, "PASS", rows[1][2])
	assert.Equal(t, "DELETE User", rows[2][0])
	assert.Equal(t, "FAIL", rows[2][2])

	logRows, err := f.GetRows(xlsxLogSheet)
	require.NoError(t, err)
	assert.Equal(t, xlsxLogHeaders, logRows[0])
	assert.Equal(t, "Sending GET request to http://localhost/users", logRows[1][3])
}

func TestMultiTestLoggerEndsAllLoggers(t *testing.T) {
	dir := t.TempDir()
	htmlPath := filepath.Join(dir, "extent.html")
	logger := &MultiTestLogger{Loggers: []TestLogger{
		NewJSONTestLogger(filepath.Join(dir, "missing", "results.json"), ""),
		NewHTMLReportLogger(htmlPath, "x", ""),
	}}
	results := runSampleSuite(logger)
	assert.Error(t, logger.EndLog(results))
	assert.FileExists(t, htmlPath)
}

func TestJSONTestLoggerParentStatusIncludesSubtests(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	logger := NewJSONTestLogger(path, "http://localhost")
	results := runNestedSuite(logger)
	require.NoError(t, logger.EndLog(results))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	tests := ldvalue.Parse(data).GetByKey("tests")
	require.Equal(t, 5, tests.Count())

	statuses := make(map[string]string)
	for i := 0; i < tests.Count(); i++ {
		test := tests.GetByIndex(i)
		statuses[test.GetByKey("id").StringValue()] = test.GetByKey("status").StringValue()
	}
	assert.Equal(t, map[string]string{
		"Create users":       "fail",
		"Create users/row 1": "pass",
		"Create users/row 2": "fail",
		"Optional":           "warning",
		"Optional/header":    "warning",
	}, statuses)
}

func TestXLSXTestLoggerParentStatusIncludesSubtests(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	logger := NewXLSXTestLogger(path)
	results := runNestedSuite(logger)
	require.NoError(t, logger.EndLog(results))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	rows, err := f.GetRows(xlsxResultsSheet)
	require.NoError(t, err)

	for label, status := range map[string]string{
		"Create users":       "FAIL",
		"Create users/row 1": "PASS",
		"Optional":           "WARNING",
	} {
		row := findRow(rows, label)
		if assert.NotNil(t, row, label) {
			assert.Equal(t, status, row[2], label)
		}
	}
}

func TestXLSXTestLoggerSummaryCountsWarnings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	logger := NewXLSXTestLogger(path)
	results := runNestedSuite(logger)
	require.NoError(t, logger.EndLog(results))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	rows, err := f.GetRows(xlsxResultsSheet)
	require.NoError(t, err)

	for label, count := range map[string]string{
		"Tests":    "2",
		"Passed":   "0",
		"Failed":   "1",
		"Warnings": "1",
		"Skipped":  "0",
	} {
		row := findRow(rows, label)
		if assert.Len(t, row, 2, label) {
			assert.Equal(t, count, row[1], label)
		}
	}
}
