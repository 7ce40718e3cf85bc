package baseline

import (
	"testing"

	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"
	"github.com/stretchr/testify/assert"
)

func TestShapeOf(t *testing.T) {
	body := ldvalue.Parse([]byte(`{"page":1,"data":[{"id":1,"email":"a"},{"id":2,"avatar":"b"}],` +
		`"support":{"url":"u","text":"t"}}`))
	assert.Equal(t, Shape{
		Status: 200,
		Keys: []string{"data", "data[].avatar", "data[].email", "data[].id", "page",
			"support", "support.text", "support.url"},
	}, ShapeOf(200, body))

	assert.Equal(t, Shape{Status: 204}, ShapeOf(204, ldvalue.Null()))
}

func TestShapeIgnoresValues(t *testing.T) {
	a := ShapeOf(201, ldvalue.Parse([]byte(`{"id":"100","createdAt":"2024-05-01T12:00:00Z"}`)))
	b := ShapeOf(201, ldvalue.Parse([]byte(`{"createdAt":"2025-01-01T00:00:00Z","id":"731"}`)))
	assert.True(t, a.Equal(b))
	assert.Equal(t, "", a.Diff(b))
}

func TestShapeDiff(t *testing.T) {
	before := Shape{Status: 200, Keys: []string{"data", "data.email", "data.id"}}
	after := Shape{Status: 404, Keys: []string{"data", "data.id", "data.name"}}
	assert.False(t, before.Equal(after))
	assert.Equal(t, "status was 200, now 404; missing data.email; added data.name", before.Diff(after))
	assert.Equal(t, "HTTP 200 {data, data.email, data.id}", before.String())
}
