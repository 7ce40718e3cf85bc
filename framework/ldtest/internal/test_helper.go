// Package internal contains test helpers for ldtest. They live in a separate package so that
// stacktrace tests can see a frame that is outside of ldtest.
package internal

// RunAction calls action.
func RunAction(action func()) {
	action()
}
