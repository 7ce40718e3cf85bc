package helpers

import (
	"encoding/json"
	"strings"

	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// AsJSON is just a shortcut for calling json.Marshal and taking only the first result.
func AsJSON(value interface{}) []byte {
	ret, _ := json.Marshal(value)
	return ret
}

// AsJSONString calls json.Marshal and returns the result as a string.
func AsJSONString(value interface{}) string { return string(AsJSON(value)) }

// AsJSONValue calls json.Marshal and returns the result as an ldvalue.Value. The Value type
// is often convenient in test code to represent arbitrary JSON data.
func AsJSONValue(value interface{}) ldvalue.Value { return ldvalue.Parse(AsJSON(value)) }

// SortedKeys returns the property names of a JSON object in alphabetical order, or nil if the
// value is not an object.
func SortedKeys(value ldvalue.Value) []string {
	if value.Type() != ldvalue.ObjectType {
		return nil
	}
	m, _ := value.AsArbitraryValue().(map[string]interface{})
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}

// CanonicalizedJSONString reformats a JSON value so that object properties are alphabetized,
// making it easier for a human reader to find a property.
func CanonicalizedJSONString(value ldvalue.Value) string {
	switch value.Type() {
	case ldvalue.ArrayType:
		items := make([]string, 0, value.Count())
		for i := 0; i < value.Count(); i++ {
			items = append(items, CanonicalizedJSONString(value.GetByIndex(i)))
		}
		return "[" + strings.Join(items, ",") + "]"
	case ldvalue.ObjectType:
		keys := SortedKeys(value)
		items := make([]string, 0, len(keys))
		for _, k := range keys {
			items = append(items, ldvalue.String(k).JSONString()+":"+CanonicalizedJSONString(value.GetByKey(k)))
		}
		return "{" + strings.Join(items, ",") + "}"
	default:
		return value.JSONString()
	}
}
