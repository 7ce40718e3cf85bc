package harness

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-cleanhttp"

	"github.com/qa-harness/reqres-contract-tests/framework"
	"github.com/qa-harness/reqres-contract-tests/framework/helpers"
)

// DefaultTimeout bounds every API call unless WithTimeout says otherwise.
const DefaultTimeout = time.Second * 10

// TestHarness is the shared client configuration for an API test run: the base URL that every
// request path is resolved against, and the per-call timeout. It is created once before any
// test runs and is not modified afterward.
//
// It contains no knowledge of the API being tested; it only sends requests and returns the
// complete responses.
type TestHarness struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	logger     framework.Logger
}

type harnessConfig struct {
	timeout time.Duration
	logger  framework.Logger
}

// HarnessOption is an optional setting for NewTestHarness.
type HarnessOption func(*harnessConfig) error

func (o HarnessOption) Configure(c *harnessConfig) error { return o(c) }

// WithTimeout sets the maximum duration of each API call, including reading the response body.
func WithTimeout(timeout time.Duration) HarnessOption {
	return func(c *harnessConfig) error {
		if timeout <= 0 {
			return fmt.Errorf("timeout must be positive, got %s", timeout)
		}
		c.timeout = timeout
		return nil
	}
}

// WithLogger sets a logger that receives a line for every request, in addition to the logger
// of the test that made it.
func WithLogger(logger framework.Logger) HarnessOption {
	return func(c *harnessConfig) error {
		c.logger = logger
		return nil
	}
}

// NewTestHarness creates a TestHarness for an API rooted at baseURL, such as
// "https://reqres.in/api".
func NewTestHarness(baseURL string, options ...HarnessOption) (*TestHarness, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("invalid base URL %q: scheme must be http or https", baseURL)
	}

	config := harnessConfig{timeout: DefaultTimeout}
	if err := helpers.ApplyOptions(&config, options...); err != nil {
		return nil, err
	}
	httpClient := cleanhttp.DefaultPooledClient()
	httpClient.Timeout = config.timeout
	if config.logger == nil {
		config.logger = framework.NullLogger()
	}

	return &TestHarness{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		timeout:    config.timeout,
		httpClient: httpClient,
		logger:     config.logger,
	}, nil
}

// BaseURL returns the base URL without a trailing slash.
func (h *TestHarness) BaseURL() string {
	return h.baseURL
}

// Timeout returns the per-call timeout.
func (h *TestHarness) Timeout() time.Duration {
	return h.timeout
}

// URL resolves a request path against the base URL.
func (h *TestHarness) URL(path string) string {
	if path == "" {
		return h.baseURL
	}
	return h.baseURL + "/" + strings.TrimPrefix(path, "/")
}

// Do sends a request and reads the entire response. The call is bounded by the harness timeout
// as well as by ctx. A non-2xx status is not an error; only transport failures are. There are
// no retries.
//
// If logger is non-nil, the request (as a curl command) and the response are written to it.
func (h *TestHarness) Do(ctx context.Context, req Request, logger framework.Logger) (*Response, error) {
	if logger == nil {
		logger = framework.NullLogger()
	}
	logger = framework.MultiLogger(logger, h.logger)

	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	fullURL := h.URL(req.Path)
	var bodyReader io.Reader
	if req.Body != nil {
		bodyReader = bytes.NewReader(req.Body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request for %s: %w", req.Method, fullURL, err)
	}
	for name, values := range req.Header {
		for _, v := range values {
			httpReq.Header.Add(name, v)
		}
	}

	logger.Printf("Request: %s", req.CurlCommand(fullURL))

	startTime := time.Now()
	httpResp, err := h.httpClient.Do(httpReq)
	if err != nil {
		logger.Printf("Request failed: %s", err)
		return nil, fmt.Errorf("%s %s failed: %w", req.Method, fullURL, err)
	}
	defer func() { _ = httpResp.Body.Close() }()
	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body from %s %s: %w", req.Method, fullURL, err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header,
		Body:       body,
		Elapsed:    time.Since(startTime),
	}
	logger.Printf("Response: HTTP %d in %s: %s", resp.StatusCode, resp.Elapsed.Round(time.Millisecond), resp.BodyString())
	return resp, nil
}
