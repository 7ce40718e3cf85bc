package usertests

import "github.com/qa-harness/reqres-contract-tests/apimodel"

// existingUserID is the user that the single-user, update, and delete tests act on.
const existingUserID = 2

var (
	createUserParams = apimodel.JobParams{Name: "John", Job: "leader"}
	updateUserParams = apimodel.JobParams{Name: "John", Job: "developer"}
)

// userDetailLabels are the names used in pass markers for the properties of
// apimodel.UserDetailKeys, such as "Email is present".
var userDetailLabels = map[string]string{ //nolint:gochecknoglobals
	apimodel.PropEmail:     "Email",
	apimodel.PropFirstName: "First name",
	apimodel.PropLastName:  "Last name",
}
