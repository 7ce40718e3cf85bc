// Package mockapi is an in-process stand-in for the reqres.in users API. It serves the same
// routes and payload shapes, so that the suite can be run, and unit-tested, without network
// access.
package mockapi
