package main

import (
	"flag"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/qa-harness/reqres-contract-tests/framework/harness"
	"github.com/qa-harness/reqres-contract-tests/framework/ldtest"
)

const (
	defaultBaseURL    = "https://reqres.in/api"
	defaultReportFile = "extent.html"
)

type commandParams struct {
	baseURL        string
	timeout        time.Duration
	reportFile     string
	jUnitFile      string
	jsonFile       string
	xlsxFile       string
	filters        ldtest.RegexFilters
	skipFile       string
	recordFailures string
	dataFile       string
	baseline       string
	mock           bool
	debug          bool
	debugAll       bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.StringVar(&c.baseURL, "url", defaultBaseURL, "base URL of the API under test")
	fs.DurationVar(&c.timeout, "timeout", harness.DefaultTimeout, "timeout for each HTTP request")
	fs.StringVar(&c.reportFile, "report", defaultReportFile, "write the HTML report to the specified path")
	fs.StringVar(&c.jUnitFile, "junit", "", "write JUnit XML output to the specified path")
	fs.StringVar(&c.jsonFile, "json", "", "write JSON results to the specified path")
	fs.StringVar(&c.xlsxFile, "xlsx", "", "write a spreadsheet of results to the specified path")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.StringVar(&c.skipFile, "skip-from", "", "file containing test IDs to skip, one per line")
	fs.StringVar(&c.recordFailures, "record-failures", "", "write the IDs of failed tests to the specified path")
	fs.StringVar(&c.dataFile, "data", "", "JSON or YAML file of user rows for the parameterized test")
	fs.StringVar(&c.baseline, "baseline", "",
		"compare response shapes with an earlier run (file:<path>, redis://host:port, consul://host:port, dynamodb:<table>)")
	fs.BoolVar(&c.mock, "mock", false, "run against an in-process mock of the API instead of -url")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	if fs.NArg() != 0 {
		fmt.Fprintf(os.Stderr, "unexpected arguments: %v\n", fs.Args())
		fs.Usage()
		return false
	}
	if u, err := url.Parse(c.baseURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		fmt.Fprintln(os.Stderr, "-url must be an http or https URL")
		fs.Usage()
		return false
	}
	if c.timeout <= 0 {
		fmt.Fprintln(os.Stderr, "-timeout must be greater than zero")
		fs.Usage()
		return false
	}
	if c.reportFile == "" {
		fmt.Fprintln(os.Stderr, "-report cannot be empty")
		fs.Usage()
		return false
	}
	return true
}
