package models

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// ErrorKind classifies a failure for propagation policy decisions.
type ErrorKind string

// Error kinds. Only Transient recovers at the call site; everything else
// surfaces to the orchestrator and becomes a progress entry, an attempt
// record, and a phase transition.
const (
	KindUserInput       ErrorKind = "user_input"       // surfaced, not retried
	KindTransient       ErrorKind = "transient"        // retried with backoff
	KindBudgetExhausted ErrorKind = "budget_exhausted" // task fails with reason
	KindTerminal        ErrorKind = "terminal"         // no retry, task fails
	KindPolicyViolation ErrorKind = "policy_violation" // task waits for a human
	KindInternal        ErrorKind = "internal"         // programming error, task fails
)

// KindError attaches an ErrorKind and a stable reason code to an error.
type KindError struct {
	Kind   ErrorKind
	Reason string
	Err    error
}

// Error implements error.
func (e *KindError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
	}
	return fmt.Sprintf("%s (%s): %v", e.Kind, e.Reason, e.Err)
}

// Unwrap returns the wrapped cause.
func (e *KindError) Unwrap() error { return e.Err }

// NewKindError builds a classified error.
func NewKindError(kind ErrorKind, reason string, err error) *KindError {
	return &KindError{Kind: kind, Reason: reason, Err: err}
}

// Terminal reasons used across the pipeline.
const (
	ReasonInvalidDiffFormat        = "invalid_diff_format"
	ReasonTooManyTypeErrors        = "too_many_type_errors"
	ReasonDeniedCommand            = "denied_command"
	ReasonPersistenceUnrecoverable = "persistence_unrecoverable"
	ReasonCancelled                = "cancelled"
	ReasonMaxAttempts              = "max_attempts_exhausted"
	ReasonMaxIterations            = "max_iterations_exhausted"
	ReasonReflectionAbort          = "reflection_abort"
	ReasonPathOutsideAllowlist     = "path_outside_allowlist"
	ReasonDiffTooLarge             = "exceeds_max_diff_lines"
	ReasonTooManyFiles             = "exceeds_max_files_per_task"
)

// Classify maps an arbitrary error to an ErrorKind. KindErrors keep their
// kind; context and network failures are transient; the rest is internal.
func Classify(err error) ErrorKind {
	var ke *KindError
	if errors.As(err, &ke) {
		return ke.Kind
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTransient
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return KindTransient
	}
	return KindInternal
}

// Reason extracts the stable reason code, or empty when unclassified.
func Reason(err error) string {
	var ke *KindError
	if errors.As(err, &ke) {
		return ke.Reason
	}
	return ""
}
