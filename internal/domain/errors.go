package domain

import "errors"

var (
	// ErrNotFound is returned when the requested resource does not exist.
	// Keeping this sentinel in domain allows adapters to map it consistently.
	ErrNotFound = errors.New("resource not found")
	// ErrMissingCredential means no Authorization header reached the guard.
	ErrMissingCredential = errors.New("missing credential")
	// ErrTokenExpired covers now >= expires_at; the boundary counts as expired.
	ErrTokenExpired = errors.New("credential expired")
	// ErrTokenMalformed covers tokens that do not parse as a signed envelope.
	ErrTokenMalformed = errors.New("credential malformed")
	// ErrBadSignature covers signature verification failure under the
	// requested audience's secret, including cross-audience replay.
	ErrBadSignature = errors.New("credential signature invalid")
	// ErrSubjectGone means the token verified but the subject row is absent.
	ErrSubjectGone = errors.New("subject not found")
	// ErrSubjectSuspended means the subject exists but is not active.
	ErrSubjectSuspended = errors.New("subject suspended")
	// ErrInvalidCredentials hides whether email or password failed.
	// The reason is to prevent account-enumeration side channels.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailTaken is the clean loser outcome of registration races.
	ErrEmailTaken = errors.New("email already registered")
	// ErrUnavailable signals an abandoned store round-trip (deadline or
	// connectivity). Surfaces as 503 at the edge.
	ErrUnavailable = errors.New("identity store unavailable")
)

// CapabilityError is the deny outcome of a policy check. It carries the
// capability name so the edge can tell the caller what was required
// without revealing anything else.
type CapabilityError struct {
	Capability Capability
}

func (e *CapabilityError) Error() string {
	return string(e.Capability) + " required"
}

// FieldError reports a registration payload field that failed validation.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return e.Field + " invalid"
}
