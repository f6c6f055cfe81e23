package docstore

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kbukum/docstore/transport"
)

// ValidationError reports that a domain request failed local validation.
// A request with a non-nil validation outcome is never sent to the transport.
type ValidationError struct {
	// Errors are the individual validation failures.
	Errors []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return "docstore: validation failed: " + strings.Join(e.Errors, "; ")
}

// StatusError is the terminal error surfaced for HTTP-level failures. It is
// produced exclusively by translating a wire failure, either from a
// structured error document returned by the server or from the status code
// alone when no such document could be read.
type StatusError struct {
	// Status is the resolved HTTP status code.
	Status int
	// Type is the machine-readable error type from the error document, if any.
	Type string
	// Reason is the human-readable error message.
	Reason string
	// Cause is the underlying error, if any.
	Cause error
	// Suppressed holds secondary errors retained for diagnostics: the original
	// wire failure when the error document parsed, or the parse failure when
	// it did not.
	Suppressed []error
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("docstore: [%s] %s (HTTP %d)", e.Type, e.Reason, e.Status)
	}
	return fmt.Sprintf("docstore: %s (HTTP %d)", e.Reason, e.Status)
}

// Unwrap returns the underlying cause.
func (e *StatusError) Unwrap() error {
	return e.Cause
}

// ParseError reports that the body of a successful response could not be
// converted. It is deliberately distinct from StatusError: the server
// answered with a 2xx status, only the local decode failed.
type ParseError struct {
	// Response is the successful wire response whose body failed to convert.
	Response *transport.Response
	// Err is the conversion failure.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("docstore: unable to parse response body for %s: %v", e.Response, e.Err)
}

// Unwrap returns the conversion failure.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsStatus checks whether err is a StatusError with the given status code.
func IsStatus(err error, status int) bool {
	var e *StatusError
	return errors.As(err, &e) && e.Status == status
}

// IsNotFound checks whether err is a 404 StatusError.
func IsNotFound(err error) bool {
	return IsStatus(err, 404)
}

// errorDocument is the structured error body shape returned by the server.
type errorDocument struct {
	Error struct {
		Type   string `json:"type"`
		Reason string `json:"reason"`
	} `json:"error"`
	Status int `json:"status"`
}

// decodeStatusError reads a structured error document. It rejects documents
// without an error object so that ordinary response bodies (a not-found
// document, for example) do not decode into an empty StatusError.
func decodeStatusError(dec Decoder) (*StatusError, error) {
	var doc errorDocument
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	if doc.Error.Type == "" && doc.Error.Reason == "" {
		return nil, errors.New("body is not an error document")
	}
	return &StatusError{
		Status: doc.Status,
		Type:   doc.Error.Type,
		Reason: doc.Error.Reason,
	}, nil
}

// translateResponseError converts a wire failure into a StatusError. If the
// captured response carries a body, it is first parsed as a structured error
// document; on any parse failure the result falls back to a status-only
// error. The parse failure is kept as a suppressed reference, never
// propagated. This function is total: it always returns a StatusError.
func translateResponseError(respErr *transport.ResponseError) *StatusError {
	resp := respErr.Response
	if resp.Entity == nil {
		return &StatusError{
			Status: resp.StatusCode,
			Reason: respErr.Error(),
			Cause:  respErr,
		}
	}

	statusErr, err := ParseEntity(resp.Entity, decodeStatusError)
	if err != nil {
		return &StatusError{
			Status:     resp.StatusCode,
			Reason:     "Unable to parse response body",
			Cause:      respErr,
			Suppressed: []error{err},
		}
	}
	if statusErr.Status == 0 {
		statusErr.Status = resp.StatusCode
	}
	statusErr.Suppressed = append(statusErr.Suppressed, respErr)
	return statusErr
}
