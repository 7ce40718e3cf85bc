package usertests

import (
	"fmt"

	"github.com/qa-harness/reqres-contract-tests/baseline"
	"github.com/qa-harness/reqres-contract-tests/data"
	"github.com/qa-harness/reqres-contract-tests/framework/harness"
	"github.com/qa-harness/reqres-contract-tests/framework/ldtest"
)

// RunUserAPITestSuite runs every test against the API that the harness points to. Tests run
// one at a time in a fixed order; a failure ends only the test it happened in.
//
// userRows are the data-provider rows for the parameterized test. baselineStore may be nil, in
// which case response shapes are not compared with earlier runs.
func RunUserAPITestSuite(
	harness *harness.TestHarness,
	userRows []data.UserRow,
	baselineStore baseline.Store,
	filter ldtest.Filter,
	testLogger ldtest.TestLogger,
) ldtest.Results {
	fmt.Printf("Running user API test suite against %s\n", harness.BaseURL())
	if baselineStore != nil {
		fmt.Printf("Comparing response shapes with baseline in %s\n", baselineStore.Location())
	}
	fmt.Println()

	config := ldtest.TestConfiguration{
		Filter:     filter,
		TestLogger: testLogger,
		Context: UserAPITestContext{
			harness:  harness,
			userRows: userRows,
			baseline: baselineStore,
		},
	}

	return ldtest.Run(config, doAllUserTests)
}

func doAllUserTests(t *ldtest.T) {
	t.Run("GET Users", doGetUsersTest)
	t.Run("GET Single User", doGetSingleUserTest)
	t.Run("POST Create User", doCreateUserTest)
	t.Run("PUT Update User", doUpdateUserTest)
	t.Run("DELETE User", doDeleteUserTest)
	t.Run("POST Create User Parameterized", doCreateUserParameterizedTests)
}
