package main

import (
	"bufio"
	"context"
	_ "embed" // this is required in order for go:embed to work
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/qa-harness/reqres-contract-tests/baseline"
	"github.com/qa-harness/reqres-contract-tests/data"
	"github.com/qa-harness/reqres-contract-tests/framework"
	"github.com/qa-harness/reqres-contract-tests/framework/harness"
	"github.com/qa-harness/reqres-contract-tests/framework/ldtest"
	"github.com/qa-harness/reqres-contract-tests/mockapi"
	"github.com/qa-harness/reqres-contract-tests/usertests"
)

const (
	reportTitle        = "User API Test Report"
	storeOpenTimeout   = time.Second * 10
	serverCloseTimeout = time.Second * 5
)

//go:embed VERSION
var versionString string // comes from the VERSION file which we update for each release

func main() {
	fmt.Printf("reqres-contract-tests v%s\n", strings.TrimSpace(versionString))

	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}

	results, err := run(params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !results.OK() {
		os.Exit(1)
	}
}

func run(params commandParams) (_ *ldtest.Results, err error) {
	if params.skipFile != "" {
		if err := loadSuppressions(&params); err != nil {
			return nil, err
		}
	}

	mainDebugLogger := framework.NullLogger()
	if params.debugAll {
		mainDebugLogger = log.New(os.Stdout, "", log.LstdFlags)
	}

	userRows, err := loadUserRows(params.dataFile)
	if err != nil {
		return nil, err
	}

	var baselineStore baseline.Store
	if params.baseline != "" {
		ctx, cancel := context.WithTimeout(context.Background(), storeOpenTimeout)
		baselineStore, err = baseline.Open(ctx, params.baseline)
		cancel()
		if err != nil {
			return nil, err
		}
		defer func() { _ = baselineStore.Close() }()
	}

	baseURL := params.baseURL
	if params.mock {
		mock := mockapi.NewUsersService(framework.LoggerWithPrefix(mainDebugLogger, "[mockapi] "))
		server, err := harness.StartLocalServer(0, http.StripPrefix("/api", mock))
		if err != nil {
			return nil, err
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), serverCloseTimeout)
			defer cancel()
			_ = server.Close(ctx)
		}()
		baseURL = server.URL() + "/api"
		fmt.Printf("Started mock API at %s\n", baseURL)
	}

	harness, err := harness.NewTestHarness(
		baseURL,
		harness.WithTimeout(params.timeout),
		harness.WithLogger(mainDebugLogger),
	)
	if err != nil {
		return nil, err
	}

	testLogger := makeTestLogger(params, harness.BaseURL())

	// The reports are written even if something below fails.
	var results ldtest.Results
	defer func() {
		fmt.Println()
		if logErr := testLogger.EndLog(results); logErr != nil {
			err = errors.Join(err, fmt.Errorf("error writing log: %w", logErr))
		}
	}()

	ldtest.PrintFilterDescription(params.filters)

	results = usertests.RunUserAPITestSuite(harness, userRows, baselineStore, params.filters, testLogger)

	if params.recordFailures != "" {
		if err := recordFailures(params.recordFailures, results); err != nil {
			return nil, err
		}
	}

	return &results, nil
}

// makeTestLogger always includes the console output and the HTML report; the other report
// formats are added if their flags were set.
func makeTestLogger(params commandParams, baseURL string) ldtest.TestLogger {
	loggers := []ldtest.TestLogger{
		ldtest.ConsoleTestLogger{
			DebugOutputOnFailure: params.debug || params.debugAll,
			DebugOutputOnSuccess: params.debugAll,
		},
		ldtest.NewHTMLReportLogger(params.reportFile, reportTitle, baseURL),
	}
	if params.jUnitFile != "" {
		loggers = append(loggers, ldtest.NewJUnitTestLogger(
			params.jUnitFile,
			map[string]string{"baseUrl": baseURL, "version": strings.TrimSpace(versionString)},
			params.filters,
		))
	}
	if params.jsonFile != "" {
		loggers = append(loggers, ldtest.NewJSONTestLogger(params.jsonFile, baseURL))
	}
	if params.xlsxFile != "" {
		loggers = append(loggers, ldtest.NewXLSXTestLogger(params.xlsxFile))
	}
	return &ldtest.MultiTestLogger{Loggers: loggers}
}

func loadUserRows(dataFile string) ([]data.UserRow, error) {
	if dataFile == "" {
		return data.LoadUserRows()
	}
	return data.LoadUserRowsFromFile(dataFile)
}

func recordFailures(path string, results ldtest.Results) error {
	f, err := os.Create(path) //nolint:gosec // path comes from the command line
	if err != nil {
		return fmt.Errorf("cannot create suppression file: %w", err)
	}
	for _, test := range results.Failures {
		fmt.Fprintln(f, test.TestID)
	}
	return f.Close()
}

func loadSuppressions(params *commandParams) error {
	file, err := os.Open(params.skipFile)
	if err != nil {
		return fmt.Errorf("cannot open provided suppression file: %w", err)
	}
	defer func() { _ = file.Close() }()
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		// Ignore blank lines
		if strings.TrimSpace(line) == "" {
			continue
		}
		escaped := regexp.QuoteMeta(line)
		if err := params.filters.MustNotMatch.Set(escaped); err != nil {
			return fmt.Errorf("cannot parse suppression: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Join(errors.New("while processing suppression file"), err)
	}
	return nil
}
