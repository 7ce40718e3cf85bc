package usertests

import (
	"fmt"
	"strings"

	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"
	m "github.com/launchdarkly/go-test-helpers/v2/matchers"

	"github.com/qa-harness/reqres-contract-tests/framework/harness"
	h "github.com/qa-harness/reqres-contract-tests/framework/helpers"
)

// The functions in this file are for convenient use of the matchers API with responses. For
// more information, see matchers.Transform.

func StatusCode() m.MatcherTransform {
	return m.Transform(
		"status code",
		func(value interface{}) (interface{}, error) {
			return value.(*harness.Response).StatusCode, nil
		}).
		EnsureInputValueType(&harness.Response{})
}

func HasStatus(status int) m.Matcher {
	return StatusCode().Should(m.Equal(status))
}

// HasJSONContentType matches a response whose Content-Type is application/json, with or
// without parameters such as charset.
func HasJSONContentType() m.Matcher {
	return m.New(
		func(value interface{}) bool {
			resp, ok := value.(*harness.Response)
			return ok && resp.HasJSONContentType()
		},
		func() string {
			return "has a JSON content type"
		},
		func(value interface{}) string {
			if resp, ok := value.(*harness.Response); ok {
				return fmt.Sprintf("expected Content-Type application/json but got %q", resp.ContentType())
			}
			return fmt.Sprintf("expected an HTTP response but got %T", value)
		},
	)
}

// ResponseBody parses the response body as JSON. Malformed or empty bodies become a JSON null.
func ResponseBody() m.MatcherTransform {
	return m.Transform(
		"response body",
		func(value interface{}) (interface{}, error) {
			return value.(*harness.Response).JSON(), nil
		}).
		EnsureInputValueType(&harness.Response{})
}

// HasJSONKeys matches a JSON object that has every one of the given properties, whatever
// their values.
func HasJSONKeys(keys ...string) m.Matcher {
	missingKeys := func(value interface{}) []string {
		present := h.SortedKeys(ldvalue.Parse(h.AsJSON(value)))
		var missing []string
		for _, key := range keys {
			if !h.SliceContains(key, present) {
				missing = append(missing, key)
			}
		}
		return missing
	}
	return m.New(
		func(value interface{}) bool {
			return ldvalue.Parse(h.AsJSON(value)).Type() == ldvalue.ObjectType && len(missingKeys(value)) == 0
		},
		func() string {
			return fmt.Sprintf("JSON object with keys [%s]", strings.Join(keys, ", "))
		},
		func(value interface{}) string {
			v := ldvalue.Parse(h.AsJSON(value))
			if v.Type() != ldvalue.ObjectType {
				return fmt.Sprintf("expected a JSON object but got %s", v.JSONString())
			}
			return fmt.Sprintf("missing JSON key(s) [%s] in %s", strings.Join(missingKeys(value), ", "), v.JSONString())
		},
	)
}

// NonEmptyString matches a JSON string value that is not "".
func NonEmptyString() m.Matcher {
	return m.New(
		func(value interface{}) bool {
			v := ldvalue.Parse(h.AsJSON(value))
			return v.IsString() && v.StringValue() != ""
		},
		func() string {
			return "is a non-empty string"
		},
		func(value interface{}) string {
			return fmt.Sprintf("expected a non-empty string but got %s", h.AsJSONString(value))
		},
	)
}
