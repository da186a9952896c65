package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for failures of the generative service. Callers match them
// with errors.Is; the concrete cause is carried by wrapping.
var (
	// ErrMissingCredentials means no API credential is configured at all.
	// No network call is made in this case.
	ErrMissingCredentials = errors.New("no API credential configured")

	// ErrAuth means the configured credential was rejected by the service.
	ErrAuth = errors.New("credential rejected by service")

	// ErrSafetyBlocked means the service refused the content on policy grounds.
	ErrSafetyBlocked = errors.New("request blocked by content policy")

	// ErrRateLimit means the service throttled the request.
	ErrRateLimit = errors.New("service rate limit exceeded")

	// ErrEmptyResponse means the service answered with no payload.
	ErrEmptyResponse = errors.New("service returned an empty response")

	// ErrUpstream covers every other service-side failure.
	ErrUpstream = errors.New("upstream service failure")
)

// ValidationError reports bad caller input. It maps to a 4xx response and is
// never retried.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewValidationError builds a ValidationError for a single bad field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// MalformedResponseError means the service payload did not match the declared
// output schema. It is distinct from network and auth failures so the caller
// can surface it as an upstream contract violation.
type MalformedResponseError struct {
	Reason string
	Err    error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed service response: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed service response: %s", e.Reason)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// InternalError wraps a storage-layer fault. The cause is logged server-side;
// only a generic message is shown to the caller.
type InternalError struct {
	Err error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error: %v", e.Err)
}

func (e *InternalError) Unwrap() error { return e.Err }
