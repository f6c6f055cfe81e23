package docstore

import (
	"context"
	"errors"

	"github.com/kbukum/docstore/transport"
)

// Validatable is a domain request that can check itself before dispatch.
// A non-nil result blocks the request from ever reaching the transport.
type Validatable interface {
	Validate() error
}

// RequestConverter maps a domain request to a wire request.
type RequestConverter[R Validatable] func(R) (*transport.Request, error)

// ResponseConverter maps a wire response to a domain response. It may fail on
// malformed bodies.
type ResponseConverter[T any] func(*transport.Response) (T, error)

// Perform executes one blocking call: validate, convert, run the round trip,
// and convert the outcome back.
//
// Statuses listed in ignores are tried as regular responses first: if the
// response converter succeeds on the captured response, that value is
// returned as a normal success. If it fails, the conversion error is
// discarded and the original wire failure is translated instead — a 404 can
// be a valid not-found document or a real error, and after a failed read of
// the first kind the second is the only safe interpretation.
//
// Failures that are not wire failures (connection errors, timeouts, context
// cancellation) pass through unchanged.
func Perform[R Validatable, T any](
	ctx context.Context,
	c *Client,
	req R,
	convertRequest RequestConverter[R],
	convertResponse ResponseConverter[T],
	ignores ...int,
) (T, error) {
	var zero T

	if err := req.Validate(); err != nil {
		return zero, err
	}

	wireReq, err := convertRequest(req)
	if err != nil {
		return zero, err
	}

	resp, err := c.transport.Perform(ctx, *wireReq)
	if err != nil {
		var respErr *transport.ResponseError
		if !errors.As(err, &respErr) {
			return zero, err
		}
		if containsStatus(ignores, respErr.Response.StatusCode) {
			if result, convErr := convertResponse(respErr.Response); convErr == nil {
				return result, nil
			}
		}
		return zero, translateResponseError(respErr)
	}

	result, err := convertResponse(resp)
	if err != nil {
		return zero, &ParseError{Response: resp, Err: err}
	}
	return result, nil
}

// PerformAndParseEntity is Perform with the response converter composed from
// an entity decode function.
func PerformAndParseEntity[R Validatable, T any](
	ctx context.Context,
	c *Client,
	req R,
	convertRequest RequestConverter[R],
	decode DecodeFunc[T],
	ignores ...int,
) (T, error) {
	return Perform(ctx, c, req, convertRequest, entityConverter(decode), ignores...)
}

// PerformAsync executes the same contract as Perform without blocking the
// caller. The listener receives exactly one of OnResponse/OnFailure.
// Validation and request-conversion failures are delivered synchronously on
// the caller's goroutine; everything after dispatch arrives on the
// transport's goroutine.
func PerformAsync[R Validatable, T any](
	ctx context.Context,
	c *Client,
	req R,
	convertRequest RequestConverter[R],
	convertResponse ResponseConverter[T],
	listener Listener[T],
	ignores ...int,
) {
	if err := req.Validate(); err != nil {
		listener.OnFailure(err)
		return
	}

	wireReq, err := convertRequest(req)
	if err != nil {
		listener.OnFailure(err)
		return
	}

	c.transport.PerformAsync(ctx, *wireReq, wrapResponseListener(convertResponse, listener, ignores))
}

// PerformAsyncAndParseEntity is PerformAsync with the response converter
// composed from an entity decode function.
func PerformAsyncAndParseEntity[R Validatable, T any](
	ctx context.Context,
	c *Client,
	req R,
	convertRequest RequestConverter[R],
	decode DecodeFunc[T],
	listener Listener[T],
	ignores ...int,
) {
	PerformAsync(ctx, c, req, convertRequest, entityConverter(decode), listener, ignores...)
}

// wrapResponseListener adapts a domain listener to the wire listener,
// applying the same ignore-set and translation policy as Perform.
func wrapResponseListener[T any](
	convertResponse ResponseConverter[T],
	listener Listener[T],
	ignores []int,
) transport.ResponseListener {
	return transport.ResponseListenerFuncs{
		SuccessFn: func(resp *transport.Response) {
			result, err := convertResponse(resp)
			if err != nil {
				listener.OnFailure(&ParseError{Response: resp, Err: err})
				return
			}
			listener.OnResponse(result)
		},
		FailureFn: func(err error) {
			var respErr *transport.ResponseError
			if !errors.As(err, &respErr) {
				listener.OnFailure(err)
				return
			}
			if containsStatus(ignores, respErr.Response.StatusCode) {
				if result, convErr := convertResponse(respErr.Response); convErr == nil {
					listener.OnResponse(result)
					return
				}
			}
			listener.OnFailure(translateResponseError(respErr))
		},
	}
}

// entityConverter lifts an entity decode function to a response converter.
func entityConverter[T any](decode DecodeFunc[T]) ResponseConverter[T] {
	return func(resp *transport.Response) (T, error) {
		return ParseEntity(resp.Entity, decode)
	}
}

// convertExistsResponse maps a wire response to an existence flag: a 200
// means the resource exists, anything else reaching this converter does not.
func convertExistsResponse(resp *transport.Response) (bool, error) {
	return resp.StatusCode == 200, nil
}

func containsStatus(statuses []int, status int) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}
