package helpers

import (
	"errors"
	"fmt"
	"strings"
)

// TestRecorder is an assertion target (like *testing.T) that only records failures. It lets a helper be run
// speculatively, to see whether its assertions would have passed, without failing the real test.
type TestRecorder struct {
	Errors           []string
	Terminated       bool
	PanicOnTerminate bool
}

func (r *TestRecorder) Errorf(msgFormat string, msgArgs ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(msgFormat, msgArgs...))
}

func (r *TestRecorder) FailNow() {
	r.Terminated = true
	if r.PanicOnTerminate {
		panic(r)
	}
}

// Err returns all recorded failures as a single error, or nil if there were none.
func (r *TestRecorder) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	return errors.New(strings.Join(r.Errors, ", "))
}
