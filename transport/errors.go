package transport

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies transport-level errors.
type ErrorCode int

const (
	// ErrCodeTimeout indicates a request or connection timeout.
	ErrCodeTimeout ErrorCode = iota
	// ErrCodeConnection indicates a connection failure (refused, DNS, etc).
	ErrCodeConnection
	// ErrCodeRequest indicates the request could not be built or encoded.
	ErrCodeRequest
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeTimeout:
		return "timeout"
	case ErrCodeConnection:
		return "connection"
	case ErrCodeRequest:
		return "request"
	default:
		return "unknown"
	}
}

// Error is a transport-level failure: the request never produced a usable
// wire response. Non-2xx responses are not an Error; they are a *ResponseError.
type Error struct {
	// Code classifies the error.
	Code ErrorCode
	// Message describes the error.
	Message string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("transport: %s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewTimeoutError creates a timeout error.
func NewTimeoutError(err error) *Error {
	return &Error{Code: ErrCodeTimeout, Message: err.Error(), Err: err}
}

// NewConnectionError creates a connection error.
func NewConnectionError(err error) *Error {
	return &Error{Code: ErrCodeConnection, Message: err.Error(), Err: err}
}

// NewRequestError creates a request build/encode error.
func NewRequestError(msg string) *Error {
	return &Error{Code: ErrCodeRequest, Message: msg}
}

// ResponseError is returned when the server answered with a status code
// outside the 2xx range. It carries the complete captured response so that
// callers can still read the status, headers and body.
type ResponseError struct {
	// Response is the captured wire response. Never nil.
	Response *Response
}

// Error implements the error interface.
func (e *ResponseError) Error() string {
	r := e.Response
	return fmt.Sprintf("%s %s: HTTP %d %s", r.Method, r.Path, r.StatusCode, http.StatusText(r.StatusCode))
}

// IsTimeout checks if an error is a transport timeout error.
func IsTimeout(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeTimeout
}

// IsConnection checks if an error is a transport connection error.
func IsConnection(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeConnection
}

// AsResponseError extracts a *ResponseError if err carries one.
func AsResponseError(err error) (*ResponseError, bool) {
	var e *ResponseError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
