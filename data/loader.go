package data

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/qa-harness/reqres-contract-tests/apimodel"
)

//go:embed data-files
var dataFilesRoot embed.FS

const (
	dataBasePath     = "data-files"
	userRowsFile     = "users.yaml"
	rowsPropertyName = "users"
)

// UserRow is one data-provider row for the parameterized user creation test.
type UserRow struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Fields returns the row as the request body that is sent to the API.
func (r UserRow) Fields() apimodel.UserFields {
	return apimodel.UserFields{
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
	}
}

// String returns a short label for the row, used as the subtest name.
func (r UserRow) String() string {
	return r.Email
}

type userRowsFileContent struct {
	Users []UserRow `json:"users"`
}

// LoadUserRows returns the built-in rows from data/data-files/users.yaml.
func LoadUserRows() ([]UserRow, error) {
	data, err := dataFilesRoot.ReadFile(dataBasePath + "/" + userRowsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", userRowsFile, err)
	}
	return parseUserRows(userRowsFile, data)
}

// LoadUserRowsFromFile reads rows from a JSON or YAML file on disk, in the same format as the
// built-in file: an object whose "users" property is a list of rows.
func LoadUserRowsFromFile(path string) ([]UserRow, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the command line
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	return parseUserRows(filepath.Base(path), data)
}

func parseUserRows(name string, data []byte) ([]UserRow, error) {
	var content userRowsFileContent
	if err := ParseJSONOrYAML(data, &content); err != nil {
		return nil, fmt.Errorf("error parsing %q: %w", name, err)
	}
	if len(content.Users) == 0 {
		return nil, fmt.Errorf("%q has no %q rows", name, rowsPropertyName)
	}
	var errs []error
	for i, row := range content.Users {
		if row.Email == "" || row.FirstName == "" || row.LastName == "" {
			errs = append(errs, fmt.Errorf("row %d of %q is missing email, first_name, or last_name", i+1, name))
		}
	}
	if len(errs) != 0 {
		return nil, errors.Join(errs...)
	}
	return content.Users, nil
}
