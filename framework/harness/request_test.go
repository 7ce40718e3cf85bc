package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestDescription(t *testing.T) {
	assert.Equal(t, "Sending GET request to https://reqres.in/api/users",
		Get("/users").Description("https://reqres.in/api/users"))

	req, err := Put("/users/2").WithJSONBody(map[string]string{"job": "developer"})
	require.NoError(t, err)
	assert.Equal(t, `Sending PUT request to https://reqres.in/api/users/2 with body: {"job":"developer"}`,
		req.Description("https://reqres.in/api/users/2"))
}

func TestRequestWithHeaderDoesNotModifyOriginal(t *testing.T) {
	r1 := Get("/users")
	r2 := r1.WithHeader("Accept", "application/json")
	assert.Empty(t, r1.Header.Get("Accept"))
	assert.Equal(t, "application/json", r2.Header.Get("Accept"))

	var zero Request
	assert.Equal(t, "x", zero.WithHeader("A", "x").Header.Get("A"))
}

func TestCurlCommand(t *testing.T) {
	assert.Equal(t, "curl -X DELETE https://reqres.in/api/users/2",
		Delete("/users/2").CurlCommand("https://reqres.in/api/users/2"))

	req, err := Post("/users").WithJSONBody(map[string]string{"name": "O'Brien"})
	require.NoError(t, err)
	assert.Equal(t,
		`curl -X POST -H 'Content-Type: application/json' --data-raw '{"name":"O'"'"'Brien"}' https://reqres.in/api/users`,
		req.CurlCommand("https://reqres.in/api/users"))
}
