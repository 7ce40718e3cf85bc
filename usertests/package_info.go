// Package usertests contains the user API contract tests.
//
// Tests in this package use other packages as follows:
//
// apimodel: paths, property names, and payload types of the users resource
//
// baseline: optional cross-run comparison of response shapes
//
// data: data-provider rows for the parameterized test
//
// harness: the HTTP client that talks to the API under test
//
// ldtest: the basic test scope framework
package usertests
