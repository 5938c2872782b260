package ladisales

import (
	"errors"
	"fmt"
)

// Kind classifies every error the gateway surfaces to MCP clients.
type Kind int

const (
	// KindValidation marks bad client input, rejected before any network
	// call. Never retried.
	KindValidation Kind = iota + 1

	// KindUnknownTool marks a call to a tool name that was never registered.
	KindUnknownTool

	// KindUpstreamRejected marks a definitive upstream 4xx. Never retried.
	KindUpstreamRejected

	// KindUpstreamUnavailable marks a transport failure or timeout. Retried
	// a bounded number of times with backoff before surfacing.
	KindUpstreamUnavailable

	// KindUpstreamFault marks an upstream 5xx or an unparseable success
	// body. Retried within the same bounded budget.
	KindUpstreamFault
)

// String returns the wire name of the kind, as embedded in error payloads.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "ValidationError"
	case KindUnknownTool:
		return "UnknownTool"
	case KindUpstreamRejected:
		return "UpstreamRejected"
	case KindUpstreamUnavailable:
		return "UpstreamUnavailable"
	case KindUpstreamFault:
		return "UpstreamFault"
	default:
		return "Unknown"
	}
}

// Error is the structured error carried through the dispatcher to the
// transport. Op names the upstream operation (or tool) involved, Status holds
// the HTTP status when one was received.
type Error struct {
	Kind   Kind
	Op     string
	Status int
	Err    error
}

func (e *Error) Error() string {
	switch {
	case e.Err != nil && e.Status != 0:
		return fmt.Sprintf("%s: %s: status %d: %v", e.Kind, e.Op, e.Status, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Op, e.Err)
	case e.Status != 0:
		return fmt.Sprintf("%s: %s: status %d", e.Kind, e.Op, e.Status)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Op)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewValidation builds a KindValidation error for the given operation.
func NewValidation(op, format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Op: op, Err: fmt.Errorf(format, args...)}
}

// KindOf extracts the Kind from an error chain, or zero when the error does
// not carry one.
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return 0
}

// retryable reports whether a failed call may be attempted again.
func retryable(err error) bool {
	switch KindOf(err) {
	case KindUpstreamUnavailable, KindUpstreamFault:
		return true
	default:
		return false
	}
}
