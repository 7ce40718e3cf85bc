// Package apimodel contains the JSON shapes of the reqres.in users API, as sent and received by
// the test suite and served by the mock API.
package apimodel
