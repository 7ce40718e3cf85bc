package harness

import (
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"
)

// Response is a complete HTTP response. The body has already been read.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	Elapsed    time.Duration
}

// BodyString returns the raw body text.
func (r *Response) BodyString() string {
	return string(r.Body)
}

// ContentType returns the Content-Type header as sent by the server.
func (r *Response) ContentType() string {
	return r.Header.Get("Content-Type")
}

// HasJSONContentType returns true if the media type is application/json, ignoring parameters
// such as charset.
func (r *Response) HasJSONContentType() bool {
	mediaType, _, err := mime.ParseMediaType(r.ContentType())
	if err != nil {
		return strings.Contains(r.ContentType(), "application/json")
	}
	return mediaType == "application/json"
}

// JSON parses the body. If the body is empty or is not valid JSON, it returns ldvalue.Null().
func (r *Response) JSON() ldvalue.Value {
	if len(r.Body) == 0 {
		return ldvalue.Null()
	}
	return ldvalue.Parse(r.Body)
}
