// Package harness sends HTTP requests to the API under test. A TestHarness holds the base URL and
// the per-call timeout that every test shares; Request and Response are the values that test
// code builds and inspects.
package harness
