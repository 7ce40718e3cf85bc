package baseline

import (
	"fmt"
	"strings"

	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/qa-harness/reqres-contract-tests/framework/helpers"
)

// Shape is the status code and the sorted JSON property paths of one response.
//
// Nested properties are joined with ".", and properties of array elements are written with
// "[]", so the list users response includes paths like "data" and "data[].email".
type Shape struct {
	Status int      `json:"status" yaml:"status"`
	Keys   []string `json:"keys" yaml:"keys"`
}

// ShapeOf computes the shape of a response body. A body that is not a JSON object or array
// has no paths.
func ShapeOf(status int, body ldvalue.Value) Shape {
	paths := make(map[string]struct{})
	collectPaths(body, "", paths)
	return Shape{Status: status, Keys: helpers.Sorted(maps.Keys(paths))}
}

func collectPaths(value ldvalue.Value, prefix string, into map[string]struct{}) {
	switch value.Type() {
	case ldvalue.ObjectType:
		for _, k := range helpers.SortedKeys(value) {
			path := k
			if prefix != "" {
				path = prefix + "." + k
			}
			into[path] = struct{}{}
			collectPaths(value.GetByKey(k), path, into)
		}
	case ldvalue.ArrayType:
		for i := 0; i < value.Count(); i++ {
			collectPaths(value.GetByIndex(i), prefix+"[]", into)
		}
	}
}

// Equal returns true if both shapes have the same status and paths.
func (s Shape) Equal(other Shape) bool {
	return s.Status == other.Status && slices.Equal(s.Keys, other.Keys)
}

// Diff describes how other differs from s, or returns "" if they are equal.
func (s Shape) Diff(other Shape) string {
	var parts []string
	if s.Status != other.Status {
		parts = append(parts, fmt.Sprintf("status was %d, now %d", s.Status, other.Status))
	}
	var missing, added []string
	for _, k := range s.Keys {
		if !slices.Contains(other.Keys, k) {
			missing = append(missing, k)
		}
	}
	for _, k := range other.Keys {
		if !slices.Contains(s.Keys, k) {
			added = append(added, k)
		}
	}
	if len(missing) != 0 {
		parts = append(parts, "missing "+strings.Join(missing, ", "))
	}
	if len(added) != 0 {
		parts = append(parts, "added "+strings.Join(added, ", "))
	}
	return strings.Join(parts, "; ")
}

func (s Shape) String() string {
	return fmt.Sprintf("HTTP %d {%s}", s.Status, strings.Join(s.Keys, ", "))
}
