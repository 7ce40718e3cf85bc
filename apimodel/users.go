package apimodel

import (
	"strconv"
	"time"
)

const (
	UsersPath = "/users"

	PropPage       = "page"
	PropPerPage    = "per_page"
	PropTotal      = "total"
	PropTotalPages = "total_pages"
	PropData       = "data"

	PropID        = "id"
	PropEmail     = "email"
	PropFirstName = "first_name"
	PropLastName  = "last_name"

	PropCreatedAt = "createdAt"
)

// UserPath returns the path of a single user resource, such as "/users/2".
func UserPath(id int) string {
	return UsersPath + "/" + strconv.Itoa(id)
}

// ListPageKeys are the top-level properties that a page of the user list must have.
func ListPageKeys() []string {
	return []string{PropPage, PropPerPage, PropTotal, PropTotalPages, PropData}
}

// UserDetailKeys are the properties of a user record that the suite requires to be non-empty.
func UserDetailKeys() []string {
	return []string{PropEmail, PropFirstName, PropLastName}
}

// User is a stored user record.
type User struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Avatar    string `json:"avatar"`
}

// Support is the promotional block that the API appends to read responses.
type Support struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}

// UserListPage is the response to GET /users.
type UserListPage struct {
	Page       int     `json:"page"`
	PerPage    int     `json:"per_page"`
	Total      int     `json:"total"`
	TotalPages int     `json:"total_pages"`
	Data       []User  `json:"data"`
	Support    Support `json:"support"`
}

// SingleUser is the response to GET /users/{id}.
type SingleUser struct {
	Data    User    `json:"data"`
	Support Support `json:"support"`
}

// JobParams is the body of the create and update calls in the basic CRUD tests.
type JobParams struct {
	Name string `json:"name"`
	Job  string `json:"job"`
}

// UserFields is the body of the parameterized create call.
type UserFields struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// CreatedMeta is what the API adds to an echoed body on POST /users.
type CreatedMeta struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

// UpdatedMeta is what the API adds to an echoed body on PUT or PATCH /users/{id}.
type UpdatedMeta struct {
	UpdatedAt time.Time `json:"updatedAt"`
}
