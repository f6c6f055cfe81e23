package transport

import "fmt"

// Request describes an outbound wire request.
type Request struct {
	// Method is the HTTP method (GET, HEAD, POST, PUT, DELETE, etc).
	Method string
	// Path is appended to the client's BaseURL. Can be a full URL if BaseURL is empty.
	Path string
	// Headers are request-specific headers (merged with client defaults).
	Headers map[string]string
	// Query are URL query parameters.
	Query map[string]string
	// Body is the request body. Accepts io.Reader, []byte, string, or any value
	// that will be JSON-encoded.
	Body any
	// Auth overrides the client-level auth for this request.
	Auth *AuthConfig
}

// Entity is a response body together with its declared content type.
type Entity struct {
	// ContentType is the value of the Content-Type response header.
	ContentType string
	// Body is the raw response body.
	Body []byte
}

// Response is the wire result of a request. A Response is produced for every
// round trip that reached the server, including non-2xx outcomes (in which
// case it travels inside a *ResponseError).
type Response struct {
	// Method is the HTTP method of the originating request.
	Method string
	// Path is the request path of the originating request.
	Path string
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers are the response headers.
	Headers map[string]string
	// Entity is the response body, nil when the server returned none.
	Entity *Entity
}

// IsSuccess returns true if the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// String describes the response for log and error messages.
func (r *Response) String() string {
	return fmt.Sprintf("%s %s [status=%d]", r.Method, r.Path, r.StatusCode)
}

// ResponseListener receives the single outcome of an asynchronous round trip.
// Exactly one of OnSuccess or OnFailure is invoked, exactly once.
type ResponseListener interface {
	// OnSuccess is invoked with the wire response for 2xx outcomes.
	OnSuccess(*Response)
	// OnFailure is invoked with a *ResponseError for non-2xx outcomes, or with
	// the transport-level error for requests that never produced a response.
	OnFailure(error)
}

// ResponseListenerFuncs adapts plain functions to a ResponseListener.
type ResponseListenerFuncs struct {
	SuccessFn func(*Response)
	FailureFn func(error)
}

// OnSuccess invokes SuccessFn if set.
func (l ResponseListenerFuncs) OnSuccess(resp *Response) {
	if l.SuccessFn != nil {
		l.SuccessFn(resp)
	}
}

// OnFailure invokes FailureFn if set.
func (l ResponseListenerFuncs) OnFailure(err error) {
	if l.FailureFn != nil {
		l.FailureFn(err)
	}
}
