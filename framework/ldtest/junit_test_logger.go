package ldtest

import (
	"encoding/xml"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"
)

// JUnitTestLogger writes a JUnit XML file at the end of the run, with one test suite per
// top-level test.
type JUnitTestLogger struct {
	reportCollector
	filePath   string
	properties map[string]string
	filters    RegexFilters
}

// Struct definitions for the JUnit XML schema - see https://github.com/jstemmer/go-junit-report

type jUnitXMLDocument struct {
	XMLName xml.Name            `xml:"testsuites"`
	Suites  []jUnitXMLTestSuite `xml:"testsuite"`
}

type jUnitXMLTestSuite struct {
	XMLName    xml.Name           `xml:"testsuite"`
	Tests      int                `xml:"tests,attr"`
	Failures   int                `xml:"failures,attr"`
	Time       string             `xml:"time,attr"`
	Name       string             `xml:"name,attr"`
	Properties []jUnitXMLProperty `xml:"properties>property,omitempty"`
	TestCases  []jUnitXMLTestCase `xml:"testcase"`
}

type jUnitXMLTestCase struct {
	XMLName     xml.Name             `xml:"testcase"`
	Classname   string               `xml:"classname,attr"`
	Name        string               `xml:"name,attr"`
	Time        string               `xml:"time,attr"`
	SkipMessage *jUnitXMLSkipMessage `xml:"skipped,omitempty"`
	Failure     *jUnitXMLFailure     `xml:"failure,omitempty"`
	SystemOut   string               `xml:"system-out,omitempty"`
}

type jUnitXMLSkipMessage struct {
	Message string `xml:"message,attr"`
}

type jUnitXMLProperty struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

type jUnitXMLFailure struct {
	Message  string `xml:"message,attr"`
	Type     string `xml:"type,attr"`
	Contents string `xml:",chardata"`
}

// NewJUnitTestLogger creates a JUnitTestLogger. The properties, such as the base URL of the API
// under test, are written into every test suite along with the filter settings.
func NewJUnitTestLogger(
	filePath string,
	properties map[string]string,
	filters RegexFilters,
) *JUnitTestLogger {
	return &JUnitTestLogger{
		filePath:   filePath,
		properties: properties,
		filters:    filters,
	}
}

func (j *JUnitTestLogger) EndLog(results Results) error {
	fmt.Printf("Writing JUnit data to %s\n", j.filePath)

	records := j.snapshot()

	properties := []jUnitXMLProperty{
		{Name: "tests.run.id", Value: results.RunID},
		{Name: "tests.filter.mustMatch", Value: j.filters.MustMatch.String()},
		{Name: "tests.filter.mustNotMatch", Value: j.filters.MustNotMatch.String()},
	}
	names := make([]string, 0, len(j.properties))
	for name := range j.properties {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		properties = append(properties, jUnitXMLProperty{Name: name, Value: j.properties[name]})
	}

	var doc jUnitXMLDocument
	for _, topLevelID := range getTopLevelIDs(records) {
		suite := jUnitXMLTestSuite{
			Name:       fmt.Sprintf("API contract tests: %s", topLevelID),
			Properties: properties,
		}
		suiteTotalDuration := time.Duration(0)
		for _, r := range records {
			if len(r.id) == 0 || r.id[0] != topLevelID {
				continue
			}
			suite.Tests++
			if r.result.Failed() {
				suite.Failures++
			}
			suiteTotalDuration += r.result.Duration

			testCase := jUnitXMLTestCase{
				Classname: topLevelID,
				Name:      r.id.String(),
				Time:      jUnitDurationString(r.result.Duration),
			}
			if r.result.NonCritical {
				testCase.Name += " (non-critical)"
			}
			if r.skipped.IsDefined() {
				testCase.SkipMessage = &jUnitXMLSkipMessage{Message: r.skipped.StringValue()}
			}
			if r.result.Failed() {
				messages := make([]string, 0, len(r.result.Errors))
				for _, e := range r.result.Errors {
					messages = append(messages, FormatError(e))
				}
				testCase.Failure = &jUnitXMLFailure{
					Message:  strings.Join(messages, "\n"),
					Contents: r.output.ToString(""),
				}
			} else {
				testCase.SystemOut = entriesAsText(r.result.Entries)
			}

			suite.TestCases = append(suite.TestCases, testCase)
		}
		suite.Time = jUnitDurationString(suiteTotalDuration)
		doc.Suites = append(doc.Suites, suite)
	}

	bytes, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	bytes = append(bytes, '\n')

	if err := os.WriteFile(j.filePath, bytes, 0644); err != nil { //nolint:gosec
		return fmt.Errorf("failed to write JUnit report: %w", err)
	}
	return nil
}

func entriesAsText(entries []ReportEntry) string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("%s: %s", strings.ToUpper(string(e.Status)), e.Message))
	}
	return strings.Join(lines, "\n")
}

func getTopLevelIDs(records []reportRecord) []string {
	var ret []string
	seen := make(map[string]bool)
	for _, r := range records {
		if len(r.id) != 0 && !seen[r.id[0]] {
			ret = append(ret, r.id[0])
			seen[r.id[0]] = true
		}
	}
	return ret
}

func jUnitDurationString(d time.Duration) string {
	return fmt.Sprintf("%.3f", d.Seconds())
}
