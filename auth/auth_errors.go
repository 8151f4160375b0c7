package auth

import (
	"errors"
	"fmt"
)

// Reason classifies why a login failed.
type Reason string

const (
	// ReasonInvalidCredentials - the backend rejected the email/password.
	ReasonInvalidCredentials Reason = "invalid_credentials"
	// ReasonNetwork - the backend was unreachable.
	ReasonNetwork Reason = "network"
	// ReasonServer - the backend answered with an unexpected error status.
	ReasonServer Reason = "server"
)

// Error is a typed login failure. The session layer collapses all
// reasons into one user-facing message; the reason survives here for
// logging and tests.
type Error struct {
	Reason Reason
	Err    error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("auth: %s", e.Reason)
	}
	return fmt.Sprintf("auth: %s: %s", e.Reason, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ReasonOf extracts the Reason from an error chain, or "" when the error
// is not a login failure.
func ReasonOf(err error) Reason {
	var authErr *Error
	if errors.As(err, &authErr) {
		return authErr.Reason
	}
	return ""
}
