package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qa-harness/reqres-contract-tests/apimodel"
)

func TestLoadUserRows(t *testing.T) {
	rows, err := LoadUserRows()
	require.NoError(t, err)
	assert.Equal(t, []UserRow{
		{Email: "george.bluth@reqres.in", FirstName: "George", LastName: "Bluth"},
		{Email: "janet.weaver@reqres.in", FirstName: "Janet", LastName: "Weaver"},
		{Email: "emma.wong@reqres.in", FirstName: "Emma", LastName: "Wong"},
	}, rows)
	assert.Equal(t, "george.bluth@reqres.in", rows[0].String())
	assert.Equal(t, apimodel.UserFields{
		Email: "janet.weaver@reqres.in", FirstName: "Janet", LastName: "Weaver",
	}, rows[1].Fields())
}

func TestLoadUserRowsFromFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("JSON", func(t *testing.T) {
		path := filepath.Join(dir, "rows.json")
		require.NoError(t, os.WriteFile(path,
			[]byte(`{"users":[{"email":"a@b.c","first_name":"A","last_name":"B"}]}`), 0o600))
		rows, err := LoadUserRowsFromFile(path)
		require.NoError(t, err)
		assert.Equal(t, []UserRow{{Email: "a@b.c", FirstName: "A", LastName: "B"}}, rows)
	})

	t.Run("YAML", func(t *testing.T) {
		path := filepath.Join(dir, "rows.yaml")
		require.NoError(t, os.WriteFile(path, []byte("users:\n  - email: a@b.c\n    first_name: A\n    last_name: B\n"), 0o600))
		rows, err := LoadUserRowsFromFile(path)
		require.NoError(t, err)
		assert.Len(t, rows, 1)
	})

	t.Run("no rows", func(t *testing.T) {
		path := filepath.Join(dir, "empty.yaml")
		require.NoError(t, os.WriteFile(path, []byte("users: []\n"), 0o600))
		_, err := LoadUserRowsFromFile(path)
		assert.Error(t, err)
	})

	t.Run("incomplete row", func(t *testing.T) {
		path := filepath.Join(dir, "partial.yaml")
		require.NoError(t, os.WriteFile(path, []byte("users:\n  - email: a@b.c\n"), 0o600))
		_, err := LoadUserRowsFromFile(path)
		assert.ErrorContains(t, err, "row 1")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadUserRowsFromFile(filepath.Join(dir, "nope.yaml"))
		assert.Error(t, err)
	})
}
