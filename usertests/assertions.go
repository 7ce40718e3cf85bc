package usertests

import (
	m "github.com/launchdarkly/go-test-helpers/v2/matchers"

	"github.com/qa-harness/reqres-contract-tests/framework/harness"
	"github.com/qa-harness/reqres-contract-tests/framework/ldtest"
)

// Each of these adds a pass marker to the report if the assertion succeeds. A failed assertion
// is recorded by t.Errorf and the test continues, so that one report entry can show every
// problem with a response.

func expectStatus(t *ldtest.T, resp *harness.Response, status int) {
	t.Helper()
	if m.In(t).Assert(resp, HasStatus(status)) {
		t.Pass("Status code is %d", status)
	}
}

func expectJSONContentType(t *ldtest.T, resp *harness.Response) {
	t.Helper()
	if m.In(t).Assert(resp, HasJSONContentType()) {
		t.Pass("Content-Type is application/json")
	}
}

func expectBody(t *ldtest.T, resp *harness.Response, passMessage string, matcher m.Matcher) {
	t.Helper()
	if m.In(t).Assert(resp, ResponseBody().Should(matcher)) {
		t.Pass("%s", passMessage)
	}
}
