package usertests

import (
	m "github.com/launchdarkly/go-test-helpers/v2/matchers"

	"github.com/qa-harness/reqres-contract-tests/apimodel"
	"github.com/qa-harness/reqres-contract-tests/data"
	"github.com/qa-harness/reqres-contract-tests/framework/harness"
	"github.com/qa-harness/reqres-contract-tests/framework/ldtest"
)

func doCreateUserParameterizedTests(t *ldtest.T) {
	t.Describe("Test to create a new user with different data")
	c := requireContext(t)
	t.Info("Running %d data rows", len(c.userRows))

	for _, row := range c.userRows {
		t.Run(row.String(), func(t *ldtest.T) {
			doCreateUserWithRow(t, row)
		})
	}
}

// doCreateUserWithRow fetches an existing user, checks that its data has the properties that
// the row provides, then creates a user from the row. The property check is made on the
// fetched user rather than on the created one; the created user is checked separately, as a
// non-critical subtest.
func doCreateUserWithRow(t *ldtest.T, row data.UserRow) {
	t.Describe("Test to create a new user with different data: " + row.String())
	c := requireContext(t)

	existing := c.send(t, harness.Get(apimodel.UserPath(existingUserID)))
	for _, key := range apimodel.UserDetailKeys() {
		expectBody(t, existing, userDetailLabels[key]+" is present",
			m.JSONProperty(apimodel.PropData).Should(HasJSONKeys(key)))
	}

	created := c.sendJSON(t, harness.Post(apimodel.UsersPath), row.Fields())
	expectStatus(t, created, 201)

	t.Run("response echoes submitted data", func(t *ldtest.T) {
		t.NonCritical("the API is not required to echo request bodies")
		t.Describe("Created user has the submitted fields plus an ID and creation time")
		t.Info("Checking the response from the create request above")
		fields := row.Fields()
		expectBody(t, created, "Created user matches submitted data", m.AllOf(
			HasJSONKeys(apimodel.PropID, apimodel.PropCreatedAt),
			m.JSONProperty(apimodel.PropEmail).Should(m.Equal(fields.Email)),
			m.JSONProperty(apimodel.PropFirstName).Should(m.Equal(fields.FirstName)),
			m.JSONProperty(apimodel.PropLastName).Should(m.Equal(fields.LastName)),
		))
	})
}
