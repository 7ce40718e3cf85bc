// Package framework contains the low-level implementation of the contract-test infrastructure,
// independent of which API is under test. The base package contains shared types such as
// Logger; other components are in the subpackages harness, helpers, and ldtest.
//
// The general model is:
//
// 1. The harness talks to a single HTTP API through a fixed base URL. It knows nothing about the
// API's semantics; it only sends requests and hands back complete responses.
//
// 2. There is a general notion of a test scope which is similar to Go's testing.T, allowing pieces
// of test logic to be associated with a test identifier and to accumulate report entries and
// success/failure results.
//
// 3. Test loggers receive those results as the run progresses and produce reports at the end.
//
// The domain-specific code that knows what is being tested is responsible for building the
// requests and for the assertions made on the responses.
package framework
