package docstore

// Listener receives the single outcome of an asynchronous call. Exactly one
// of OnResponse or OnFailure is invoked, exactly once per call, on the
// transport's goroutine (or on the caller's goroutine for failures detected
// before dispatch, such as validation errors).
type Listener[T any] interface {
	// OnResponse is invoked with the converted domain response.
	OnResponse(T)
	// OnFailure is invoked with the terminal error for the call.
	OnFailure(error)
}

// ListenerFuncs adapts plain functions to a Listener.
type ListenerFuncs[T any] struct {
	ResponseFn func(T)
	FailureFn  func(error)
}

// OnResponse invokes ResponseFn if set.
func (l ListenerFuncs[T]) OnResponse(v T) {
	if l.ResponseFn != nil {
		l.ResponseFn(v)
	}
}

// OnFailure invokes FailureFn if set.
func (l ListenerFuncs[T]) OnFailure(err error) {
	if l.FailureFn != nil {
		l.FailureFn(err)
	}
}
