package harness

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/alessio/shellescape"
	"golang.org/x/exp/maps"

	"github.com/qa-harness/reqres-contract-tests/framework/helpers"
)

// Request describes one API call. Path is relative to the harness base URL.
type Request struct {
	Method string
	Path   string
	Header http.Header
	Body   []byte
}

func NewRequest(method, path string) Request {
	return Request{Method: method, Path: path, Header: make(http.Header)}
}

func Get(path string) Request { return NewRequest(http.MethodGet, path) }

func Post(path string) Request { return NewRequest(http.MethodPost, path) }

func Put(path string) Request { return NewRequest(http.MethodPut, path) }

func Delete(path string) Request { return NewRequest(http.MethodDelete, path) }

// WithHeader returns a copy of the request with a header value added.
func (r Request) WithHeader(name, value string) Request {
	h := r.Header.Clone()
	if h == nil {
		h = make(http.Header)
	}
	h.Add(name, value)
	r.Header = h
	return r
}

// WithBody returns a copy of the request with a raw body and no content type.
func (r Request) WithBody(body []byte) Request {
	r.Body = body
	return r
}

// WithJSONBody returns a copy of the request whose body is the JSON encoding of value, with a
// Content-Type of application/json.
func (r Request) WithJSONBody(value interface{}) (Request, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return r, fmt.Errorf("failed to encode request body: %w", err)
	}
	return r.WithBody(data).WithHeader("Content-Type", "application/json"), nil
}

// Description is the report line for the request, such as
// "Sending POST request to https://host/api/users with body: {...}".
func (r Request) Description(fullURL string) string {
	bodyText := helpers.IfElse(len(r.Body) == 0, "", " with body: "+string(r.Body))
	return fmt.Sprintf("Sending %s request to %s%s", r.Method, fullURL, bodyText)
}

// CurlCommand renders a shell command that reproduces the request.
func (r Request) CurlCommand(fullURL string) string {
	parts := []string{"curl", "-X", r.Method}
	for _, name := range helpers.Sorted(maps.Keys(r.Header)) {
		for _, v := range r.Header[name] {
			parts = append(parts, "-H", shellescape.Quote(name+": "+v))
		}
	}
	if len(r.Body) != 0 {
		parts = append(parts, "--data-raw", shellescape.Quote(string(r.Body)))
	}
	parts = append(parts, shellescape.Quote(fullURL))
	return strings.Join(parts, " ")
}
