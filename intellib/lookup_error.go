package intellib

import (
	"context"
	"errors"
	"net"
)

// Reason tags attached to provider failures. They end up verbatim in
// the diagnostics section of the response.
const (
	ReasonStatus    = "status"
	ReasonTimeout   = "timeout"
	ReasonTransport = "transport"
	ReasonDecode    = "decode"
	ReasonInternal  = "internal"
)

// LookupError is an error of a single provider lookup, tagged with a
// machine-readable reason.
type LookupError struct {
	Reason string
	Err    error
}

func (e *LookupError) Error() string {
	if e.Err == nil {
		return e.Reason
	}

	return e.Reason + ": " + e.Err.Error()
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// NewLookupError wraps a low-level error with a failure reason.
func NewLookupError(reason string, err error) error {
	return &LookupError{
		Reason: reason,
		Err:    err,
	}
}

// FailureReason classifies an arbitrary lookup error into one of the
// reason tags. Deadline expiry wins over a wrapped reason: a transport
// error caused by the overall budget running out is still a timeout.
func FailureReason(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return ReasonTimeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ReasonTimeout
	}

	var lookupErr *LookupError
	if errors.As(err, &lookupErr) {
		return lookupErr.Reason
	}

	return ReasonTransport
}
