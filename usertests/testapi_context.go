package usertests

import (
	"context"

	"github.com/stretchr/testify/require"

	"github.com/qa-harness/reqres-contract-tests/baseline"
	"github.com/qa-harness/reqres-contract-tests/data"
	"github.com/qa-harness/reqres-contract-tests/framework/harness"
	"github.com/qa-harness/reqres-contract-tests/framework/ldtest"
)

// UserAPITestContext is the configuration that every test in the suite shares. It is passed
// through ldtest.TestConfiguration.Context and retrieved with requireContext.
type UserAPITestContext struct {
	harness  *harness.TestHarness
	userRows []data.UserRow
	baseline baseline.Store
}

func requireContext(t *ldtest.T) UserAPITestContext {
	if c, ok := t.Context().(UserAPITestContext); ok {
		return c
	}
	panic("UserAPITestContext was not included in the global test configuration!" +
		" This is a basic mistake in the initialization logic.")
}

// send performs a request, adding the request description and the raw response body to the
// report. A transport error (connection refused, timeout) fails the test immediately.
func (c UserAPITestContext) send(t *ldtest.T, req harness.Request) *harness.Response {
	t.Helper()
	t.Info("%s", req.Description(c.harness.URL(req.Path)))
	resp, err := c.harness.Do(context.Background(), req, t.DebugLogger())
	require.NoError(t, err, "request failed")
	t.Info("Response: %s", resp.BodyString())
	return resp
}

// sendJSON is a shortcut for send with a JSON-encoded body.
func (c UserAPITestContext) sendJSON(t *ldtest.T, req harness.Request, body interface{}) *harness.Response {
	t.Helper()
	req, err := req.WithJSONBody(body)
	require.NoError(t, err)
	return c.send(t, req)
}

// checkBaseline compares the response shape with the one recorded for this test in an earlier
// run, if a baseline store was configured. The first run for a test only records the shape.
func (c UserAPITestContext) checkBaseline(t *ldtest.T, resp *harness.Response) {
	t.Helper()
	if c.baseline == nil {
		return
	}
	shape := baseline.ShapeOf(resp.StatusCode, resp.JSON())
	result, err := baseline.Check(context.Background(), c.baseline, t.ID().String(), shape)
	if err != nil {
		t.Errorf("%s", err)
		return
	}
	switch {
	case result.Recorded:
		t.Info("Recorded response shape in %s: %s", c.baseline.Location(), shape)
	case result.Difference != "":
		t.Errorf("Response shape differs from baseline in %s: %s", c.baseline.Location(), result.Difference)
	default:
		t.Pass("Response shape matches baseline")
	}
}
