// Package ldtest contains a test runner framework that is similar to Go's testing package,
// but is run as regular Go application code rather than Go tests. On top of pass/fail results,
// each test scope accumulates an ordered list of report entries (log lines and pass/fail
// markers), which the test loggers in this package turn into console output, an HTML report,
// JUnit XML, JSON, or a spreadsheet.
package ldtest
