package usertests

import (
	m "github.com/launchdarkly/go-test-helpers/v2/matchers"

	"github.com/qa-harness/reqres-contract-tests/apimodel"
	"github.com/qa-harness/reqres-contract-tests/framework/harness"
	"github.com/qa-harness/reqres-contract-tests/framework/ldtest"
)

func doGetUsersTest(t *ldtest.T) {
	t.Describe("Test to get list of users")
	c := requireContext(t)

	resp := c.send(t, harness.Get(apimodel.UsersPath))

	expectStatus(t, resp, 200)
	expectJSONContentType(t, resp)
	expectBody(t, resp, "Response contains page, per_page, total, total_pages, and data",
		HasJSONKeys(apimodel.ListPageKeys()...))
	c.checkBaseline(t, resp)
}

func doGetSingleUserTest(t *ldtest.T) {
	t.Describe("Test to get details of a single user")
	c := requireContext(t)

	resp := c.send(t, harness.Get(apimodel.UserPath(existingUserID)))

	expectStatus(t, resp, 200)
	expectJSONContentType(t, resp)
	expectBody(t, resp, "User ID is 2",
		m.JSONProperty(apimodel.PropData).Should(m.JSONProperty(apimodel.PropID).Should(m.JSONEqual(existingUserID))))
	for _, key := range apimodel.UserDetailKeys() {
		expectBody(t, resp, userDetailLabels[key]+" is present",
			m.JSONProperty(apimodel.PropData).Should(m.JSONProperty(key).Should(NonEmptyString())))
	}
	c.checkBaseline(t, resp)
}
