package core

import (
	"errors"
	"fmt"
)

// The error taxonomy separates recoverable parse failures (degrade to a
// default value) from unrecoverable provider failures (propagate to the
// caller). Provider failures carry their origin so the pipeline can report
// them in a single terminal error event.

var (
	// ErrPlanParse marks a provider response that could not be interpreted
	// as a plan. Callers degrade to an empty plan instead of failing.
	ErrPlanParse = errors.New("plan response could not be parsed")

	// ErrEmptyCompletion is returned when a provider answers successfully
	// but carries no usable text candidate.
	ErrEmptyCompletion = errors.New("provider returned no completion")
)

// MissingCredentialError indicates that a required API key is absent from
// the environment for the selected provider.
type MissingCredentialError struct {
	Provider string // Logical provider name (google, anthropic, brave, ...)
	EnvVar   string // Environment variable that was expected
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("%s: missing credential (%s not set)", e.Provider, e.EnvVar)
}

// UpstreamError indicates that a provider call failed: a non-success HTTP
// status, a timeout or a connection failure. Status is zero when the failure
// happened before a response arrived; the wrapped error retains the cause so
// errors.Is(err, context.DeadlineExceeded) still identifies timeouts.
type UpstreamError struct {
	Provider string
	Status   int
	Err      error
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: upstream status %d", e.Provider, e.Status)
	}
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

// Unwrap exposes the underlying cause for errors.Is / errors.As.
func (e *UpstreamError) Unwrap() error { return e.Err }

// ParseError indicates a malformed payload from a provider. Depending on the
// call site it is either degraded (plan parsing, per-chunk skips) or
// propagated.
type ParseError struct {
	Raw string // Offending payload, kept for diagnostics
	Err error
}

func (e *ParseError) Error() string { return fmt.Sprintf("parse error: %v", e.Err) }

// Unwrap exposes the underlying cause for errors.Is / errors.As.
func (e *ParseError) Unwrap() error { return e.Err }
