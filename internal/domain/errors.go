package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Services classify failures into one of these exactly once;
// transport adapters translate the kind into a status code.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrUnavailable     = errors.New("unavailable")
	ErrInternal        = errors.New("internal")
	ErrStorage         = errors.New("storage failure")
)

// Upstream provider failures.
var (
	ErrUpstreamNotFound        = errors.New("upstream: city not found")
	ErrUpstreamInvalidResponse = errors.New("upstream: invalid response")
)

// UpstreamHTTPError is a non-success, non-404 response from the provider.
type UpstreamHTTPError struct {
	Status int
}

func (e *UpstreamHTTPError) Error() string {
	return fmt.Sprintf("upstream error %d", e.Status)
}

// UpstreamRequestError is a transport failure talking to the provider,
// timeouts included.
type UpstreamRequestError struct {
	Err error
}

func (e *UpstreamRequestError) Error() string {
	return fmt.Sprintf("HTTP error: %v", e.Err)
}

func (e *UpstreamRequestError) Unwrap() error { return e.Err }

// Error is a classified failure. Msg is the client-facing message; Kind is
// one of the Err* kinds above and Cause the underlying error, if any.
type Error struct {
	Kind  error
	Msg   string
	Cause error
}

// NewError classifies cause under kind with a client-facing message.
func NewError(kind error, msg string, cause error) *Error {
	return &Error{Kind: kind, Msg: msg, Cause: cause}
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Cause)
	}
	return e.Msg
}

func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

// Message returns the client-facing message of a classified error, or the
// error text for anything else.
func Message(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Msg
	}
	return err.Error()
}
