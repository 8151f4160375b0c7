package identity

import "strings"

// Role represents a user's role as issued by the backend.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleEmployee Role = "EMPLOYEE"

	// RoleUnknown is the sentinel for role claims this client does not
	// recognise. No guard ever treats it as a grant.
	RoleUnknown Role = "UNKNOWN"
)

// ParseRole maps a raw role claim onto a Role. The mapping is total and
// case-insensitive: anything unrecognised becomes RoleUnknown.
func ParseRole(raw string) Role {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "ADMIN":
		return RoleAdmin
	case "EMPLOYEE":
		return RoleEmployee
	default:
		return RoleUnknown
	}
}

// Admin reports whether the role grants access to the admin console.
func (r Role) Admin() bool {
	return r == RoleAdmin
}

// Identity is the client-side view of the signed-in user, reconstructed
// from the access token's claims. It is derived state, never authoritative:
// the backend re-checks authorization on every API call.
type Identity struct {
	ID         int64  `json:"id"`
	Email      string `json:"email"`
	Role       Role   `json:"role"`
	EmployeeID *int64 `json:"employee_id,omitempty"`
}
