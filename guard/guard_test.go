package guard_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/emstack/go-employee-console/guard"
	"github.com/emstack/go-employee-console/identity"
	"github.com/emstack/go-employee-console/session"
)

func stateFor(role identity.Role) session.State {
	return session.State{
		Authenticated: true,
		User:          &identity.Identity{ID: 1, Email: "u@example.com", Role: role},
	}
}

var signedOut = session.State{}

func TestAuthenticatedGuard(t *testing.T) {
	g := guard.Authenticated{LoginPath: "/login"}

	tests := []struct {
		name  string
		state session.State
		want  guard.Action
	}{
		{"loading holds the decision", session.State{Loading: true}, guard.ActionPending},
		{"signed out redirects", signedOut, guard.ActionRedirect},
		{"employee allowed", stateFor(identity.RoleEmployee), guard.ActionAllow},
		{"admin allowed", stateFor(identity.RoleAdmin), guard.ActionAllow},
		{"unknown role still allowed", stateFor(identity.RoleUnknown), guard.ActionAllow},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			decision := g.Check(tc.state, "/dashboard")
			require.Equal(t, tc.want, decision.Action)
			if decision.Action == guard.ActionRedirect {
				require.Equal(t, "/login", decision.Location)
				require.Equal(t, "/dashboard", decision.From)
			}
		})
	}
}

func TestAdminOnlyGuard(t *testing.T) {
	g := guard.AdminOnly{AdminLoginPath: "/admin", FallbackPath: "/employee"}

	tests := []struct {
		name         string
		state        session.State
		want         guard.Action
		wantLocation string
	}{
		{"loading holds the decision", session.State{Loading: true}, guard.ActionPending, ""},
		{"signed out goes to admin login", signedOut, guard.ActionRedirect, "/admin"},
		{"employee goes to employee area", stateFor(identity.RoleEmployee), guard.ActionRedirect, "/employee"},
		{"unknown role goes to employee area", stateFor(identity.RoleUnknown), guard.ActionRedirect, "/employee"},
		{"admin allowed", stateFor(identity.RoleAdmin), guard.ActionAllow, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			decision := g.Check(tc.state, "/dashboard")
			require.Equal(t, tc.want, decision.Action)
			if tc.wantLocation != "" {
				require.Equal(t, tc.wantLocation, decision.Location)
			}
		})
	}
}

// Authentication is checked before role: a signed-out request with no
// identity at all must land on the admin login page, never the
// wrong-role fallback.
func TestAdminGuardChecksAuthenticationFirst(t *testing.T) {
	g := guard.AdminOnly{AdminLoginPath: "/admin", FallbackPath: "/employee"}

	decision := g.Check(signedOut, "/dashboard")
	require.Equal(t, guard.ActionRedirect, decision.Action)
	require.Equal(t, "/admin", decision.Location)
}

func TestAdminGuardDeniedNotifier(t *testing.T) {
	var denied []identity.Identity
	g := guard.AdminOnly{
		Denied: func(id identity.Identity) {
			denied = append(denied, id)
		},
	}

	// Role mismatch fires the notifier once.
	decision := g.Check(stateFor(identity.RoleEmployee), "/dashboard")
	require.Equal(t, guard.ActionRedirect, decision.Action)
	require.Equal(t, guard.DefaultEmployeePath, decision.Location)
	require.Len(t, denied, 1)
	require.Equal(t, "u@example.com", denied[0].Email)

	// Signed-out and admin checks never fire it.
	g.Check(signedOut, "/dashboard")
	g.Check(stateFor(identity.RoleAdmin), "/dashboard")
	require.Len(t, denied, 1)
}

func TestGuardDefaultPaths(t *testing.T) {
	require.Equal(t, guard.DefaultLoginPath, guard.Authenticated{}.Check(signedOut, "/x").Location)
	require.Equal(t, guard.DefaultAdminLoginPath, guard.AdminOnly{}.Check(signedOut, "/x").Location)
}

func TestHomeRoute(t *testing.T) {
	require.Equal(t, "/dashboard", guard.HomeRoute(identity.RoleAdmin))
	require.Equal(t, "/employees/profile", guard.HomeRoute(identity.RoleEmployee))
	require.Equal(t, guard.DefaultLoginPath, guard.HomeRoute(identity.RoleUnknown))
}
