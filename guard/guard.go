// Package guard implements the routing policies that gate navigation on
// session state. Guards never fail: every outcome is allow, redirect,
// or "not decided yet" while the session is still settling.
package guard

import (
	"github.com/emstack/go-employee-console/identity"
	"github.com/emstack/go-employee-console/session"
)

// Default entry paths, matching the console's route surface.
const (
	DefaultLoginPath      = "/login"
	DefaultAdminLoginPath = "/admin"
	DefaultEmployeePath   = "/employee"
)

type Action int

const (
	// ActionPending - the session is still loading; render a placeholder
	// and ask again. Not a refusal.
	ActionPending Action = iota
	// ActionAllow - render the requested route.
	ActionAllow
	// ActionRedirect - navigate to Decision.Location instead.
	ActionRedirect
)

// Decision is the outcome of one guard check. From carries the
// originally requested location so the UI can return there after login.
type Decision struct {
	Action   Action
	Location string
	From     string
}

func allow() Decision {
	return Decision{Action: ActionAllow}
}

func pending() Decision {
	return Decision{Action: ActionPending}
}

func redirect(location, from string) Decision {
	return Decision{Action: ActionRedirect, Location: location, From: from}
}

// Guard decides whether navigation to a route may proceed given the
// session state. from is the location being navigated to.
type Guard interface {
	Check(state session.State, from string) Decision
}

// Authenticated admits any signed-in user and sends everyone else to
// the login page.
type Authenticated struct {
	LoginPath string
}

var _ Guard = Authenticated{}

func (g Authenticated) Check(state session.State, from string) Decision {
	if state.Loading {
		return pending()
	}
	if !state.Authenticated {
		return redirect(g.loginPath(), from)
	}
	return allow()
}

func (g Authenticated) loginPath() string {
	if g.LoginPath == "" {
		return DefaultLoginPath
	}
	return g.LoginPath
}

// AdminOnly admits admins. Authentication is always checked before
// role: a signed-out user goes to the admin login page, a signed-in
// non-admin is sent to the employee area - a silent authorization
// failure, surfaced only through the optional Denied notifier.
type AdminOnly struct {
	AdminLoginPath string
	FallbackPath   string

	// Denied is invoked with the rejected identity on a role mismatch,
	// e.g. to raise a transient notification. May be nil.
	Denied func(identity.Identity)
}

var _ Guard = AdminOnly{}

func (g AdminOnly) Check(state session.State, from string) Decision {
	if state.Loading {
		return pending()
	}
	if !state.Authenticated {
		return redirect(g.adminLoginPath(), from)
	}
	if !state.User.Role.Admin() {
		if g.Denied != nil {
			g.Denied(*state.User)
		}
		return redirect(g.fallbackPath(), from)
	}
	return allow()
}

func (g AdminOnly) adminLoginPath() string {
	if g.AdminLoginPath == "" {
		return DefaultAdminLoginPath
	}
	return g.AdminLoginPath
}

func (g AdminOnly) fallbackPath() string {
	if g.FallbackPath == "" {
		return DefaultEmployeePath
	}
	return g.FallbackPath
}

// HomeRoute maps a role to its landing path after login. Unknown roles
// land back on the login page rather than guessing.
func HomeRoute(role identity.Role) string {
	switch role {
	case identity.RoleAdmin:
		return "/dashboard"
	case identity.RoleEmployee:
		return "/employees/profile"
	default:
		return DefaultLoginPath
	}
}
