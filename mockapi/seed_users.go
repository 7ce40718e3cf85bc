package mockapi

import (
	"fmt"
	"strings"

	"github.com/qa-harness/reqres-contract-tests/apimodel"
)

const (
	defaultPerPage  = 6
	avatarURLFormat = "https://reqres.in/img/faces/%d-image.jpg"
	supportURL      = "https://reqres.in/#support-heading"
	supportText     = "To keep ReqRes free, contributions towards server costs are appreciated!"
)

var seedNames = [][2]string{ //nolint:gochecknoglobals
	{"George", "Bluth"},
	{"Janet", "Weaver"},
	{"Emma", "Wong"},
	{"Eve", "Holt"},
	{"Charles", "Morris"},
	{"Tracey", "Ramos"},
	{"Michael", "Lawson"},
	{"Lindsay", "Ferguson"},
	{"Tobias", "Funke"},
	{"Byron", "Fields"},
	{"George", "Edwards"},
	{"Rachel", "Howell"},
}

// SeedUsers returns the twelve users that the public API serves.
func SeedUsers() []apimodel.User {
	ret := make([]apimodel.User, 0, len(seedNames))
	for i, name := range seedNames {
		id := i + 1
		ret = append(ret, apimodel.User{
			ID:        id,
			Email:     fmt.Sprintf("%s.%s@reqres.in", strings.ToLower(name[0]), strings.ToLower(name[1])),
			FirstName: name[0],
			LastName:  name[1],
			Avatar:    fmt.Sprintf(avatarURLFormat, id),
		})
	}
	return ret
}

func defaultSupport() apimodel.Support {
	return apimodel.Support{URL: supportURL, Text: supportText}
}
