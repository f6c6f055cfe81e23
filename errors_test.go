package docstore

import (
	"errors"
	"strings"
	"testing"

	"github.com/kbukum/docstore/transport"
)

func wireFailure(status int, contentType, body string) *transport.ResponseError {
	resp := &transport.Response{
		Method:     "GET",
		Path:       "/movies/_doc/1",
		StatusCode: status,
	}
	if body != "" {
		resp.Entity = &transport.Entity{ContentType: contentType, Body: []byte(body)}
	}
	return &transport.ResponseError{Response: resp}
}

func TestTranslateResponseError_NoEntity(t *testing.T) {
	respErr := wireFailure(503, "", "")
	statusErr := translateResponseError(respErr)
	if statusErr.Status != 503 {
		t.Errorf("expected 503, got %d", statusErr.Status)
	}
	if statusErr.Reason != respErr.Error() {
		t.Errorf("expected the wire failure message, got %q", statusErr.Reason)
	}
	if !errors.Is(statusErr, respErr) {
		t.Error("expected the wire failure as cause")
	}
}

func TestTranslateResponseError_StructuredBody(t *testing.T) {
	respErr := wireFailure(429, "application/json",
		`{"error":{"type":"throttled","reason":"too many reads"},"status":429}`)
	statusErr := translateResponseError(respErr)
	if statusErr.Status != 429 || statusErr.Type != "throttled" || statusErr.Reason != "too many reads" {
		t.Errorf("unexpected translation: %+v", statusErr)
	}
	if len(statusErr.Suppressed) != 1 || statusErr.Suppressed[0] != respErr {
		t.Error("expected the wire failure retained as suppressed reference")
	}
}

func TestTranslateResponseError_StatusFromResponseWhenBodyOmitsIt(t *testing.T) {
	respErr := wireFailure(500, "application/json",
		`{"error":{"type":"internal","reason":"boom"}}`)
	statusErr := translateResponseError(respErr)
	if statusErr.Status != 500 {
		t.Errorf("expected fallback to the response status, got %d", statusErr.Status)
	}
}

func TestTranslateResponseError_MalformedBody(t *testing.T) {
	respErr := wireFailure(500, "application/json", `<html>boom</html>`)
	statusErr := translateResponseError(respErr)
	if statusErr.Status != 500 {
		t.Errorf("expected 500, got %d", statusErr.Status)
	}
	if statusErr.Reason != "Unable to parse response body" {
		t.Errorf("unexpected reason: %q", statusErr.Reason)
	}
	if len(statusErr.Suppressed) != 1 {
		t.Error("expected the parse failure retained as suppressed reference")
	}
	if !errors.Is(statusErr, respErr) {
		t.Error("expected the wire failure as cause")
	}
}

func TestTranslateResponseError_UnsupportedContentType(t *testing.T) {
	respErr := wireFailure(500, "text/html", `<html>boom</html>`)
	statusErr := translateResponseError(respErr)
	if statusErr.Status != 500 || statusErr.Reason != "Unable to parse response body" {
		t.Errorf("unexpected translation: %+v", statusErr)
	}
}

func TestTranslateResponseError_NonErrorDocument(t *testing.T) {
	// A well-formed body that is not an error document must not decode into
	// an empty StatusError.
	respErr := wireFailure(404, "application/json", `{"_id":"1","found":false}`)
	statusErr := translateResponseError(respErr)
	if statusErr.Status != 404 {
		t.Errorf("expected 404, got %d", statusErr.Status)
	}
	if statusErr.Type != "" {
		t.Errorf("expected no parsed type, got %q", statusErr.Type)
	}
}

func TestStatusError_Error(t *testing.T) {
	e := &StatusError{Status: 500, Type: "internal", Reason: "boom"}
	if got := e.Error(); got != "docstore: [internal] boom (HTTP 500)" {
		t.Errorf("unexpected message: %q", got)
	}
	e = &StatusError{Status: 404, Reason: "gone"}
	if got := e.Error(); got != "docstore: gone (HTTP 404)" {
		t.Errorf("unexpected message: %q", got)
	}
}

func TestIsStatusPredicates(t *testing.T) {
	err := error(&StatusError{Status: 404, Reason: "missing"})
	if !IsNotFound(err) {
		t.Error("expected IsNotFound=true")
	}
	if !IsStatus(err, 404) || IsStatus(err, 500) {
		t.Error("IsStatus mismatch")
	}
	if IsNotFound(errors.New("plain")) {
		t.Error("expected false for a plain error")
	}
}

func TestValidationError_Error(t *testing.T) {
	e := &ValidationError{Errors: []string{"collection is required", "id is required"}}
	msg := e.Error()
	if !strings.Contains(msg, "collection is required") || !strings.Contains(msg, "id is required") {
		t.Errorf("unexpected message: %q", msg)
	}
}

func TestParseError_Unwrap(t *testing.T) {
	inner := errors.New("bad json")
	e := &ParseError{Response: &transport.Response{Method: "GET", Path: "/", StatusCode: 200}, Err: inner}
	if !errors.Is(e, inner) {
		t.Error("expected errors.Is to find the inner error")
	}
	if !strings.Contains(e.Error(), "unable to parse response body") {
		t.Errorf("unexpected message: %q", e.Error())
	}
}
