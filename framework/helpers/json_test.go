package helpers

import (
	"testing"

	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"
	"github.com/stretchr/testify/assert"
)

func TestSortedKeys(t *testing.T) {
	assert.Equal(t, []string{"data", "page", "total"},
		SortedKeys(ldvalue.Parse([]byte(`{"total":12,"page":1,"data":[]}`))))
	assert.Nil(t, SortedKeys(ldvalue.Parse([]byte(`[1,2]`))))
	assert.Nil(t, SortedKeys(ldvalue.Null()))
}

func TestCanonicalizedJSONString(t *testing.T) {
	value := ldvalue.Parse([]byte(`{"b":[{"y":1,"x":2}],"a":"s"}`))
	assert.Equal(t, `{"a":"s","b":[{"x":2,"y":1}]}`, CanonicalizedJSONString(value))
}

func TestAsJSONValue(t *testing.T) {
	value := AsJSONValue(map[string]string{"name": "John", "job": "leader"})
	assert.Equal(t, "John", value.GetByKey("name").StringValue())
	assert.Equal(t, `{"name":"John","job":"leader"}`, AsJSONString(struct {
		Name string `json:"name"`
		Job  string `json:"job"`
	}{"John", "leader"}))
}
