package usertests

import (
	"github.com/qa-harness/reqres-contract-tests/apimodel"
	"github.com/qa-harness/reqres-contract-tests/framework/harness"
	"github.com/qa-harness/reqres-contract-tests/framework/ldtest"
)

// The public API accepts writes but does not persist them, so these tests check only the
// status code.

func doCreateUserTest(t *ldtest.T) {
	t.Describe("Test to create a new user")
	c := requireContext(t)

	resp := c.sendJSON(t, harness.Post(apimodel.UsersPath), createUserParams)

	expectStatus(t, resp, 201)
}

func doUpdateUserTest(t *ldtest.T) {
	t.Describe("Test to update an existing user")
	c := requireContext(t)

	resp := c.sendJSON(t, harness.Put(apimodel.UserPath(existingUserID)), updateUserParams)

	expectStatus(t, resp, 200)
}

func doDeleteUserTest(t *ldtest.T) {
	t.Describe("Test to delete a user")
	c := requireContext(t)

	resp := c.send(t, harness.Delete(apimodel.UserPath(existingUserID)))

	expectStatus(t, resp, 204)
}
