// Package session holds the in-memory session state the UI reacts to:
// who is signed in, whether a login is settling, and the last login
// error. It is the only writer of that state; guards and pages read it.
package session

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/emstack/go-employee-console/auth"
	"github.com/emstack/go-employee-console/identity"
)

// loginFailedMessage is the single user-facing message every login
// failure collapses into. The reason taxonomy stays inside the auth
// package; the UI never learns whether it was credentials, network or
// the server.
const loginFailedMessage = "invalid credentials"

// ErrLoginInFlight is returned when Login is called while an earlier
// call has not settled. The in-flight call keeps the state; the late
// caller is ignored.
var ErrLoginInFlight = errors.New("login already in flight")

// State is a snapshot of the session. Invariant: Authenticated is true
// exactly when User is non-nil.
type State struct {
	Authenticated bool
	User          *identity.Identity
	Loading       bool
	Err           string
}

// Listener is notified after every settled or loading transition.
type Listener func(State)

// Authenticator is the slice of the auth service the manager drives.
type Authenticator interface {
	Login(ctx context.Context, creds auth.Credentials) (*identity.Identity, error)
	Logout() error
	CurrentUser() *identity.Identity
}

// Manager owns the session state machine:
//
//	BOOTSTRAPPING -> READY(unauthenticated) | READY(authenticated)
//
// with a single authenticating sub-state during Login. It is explicitly
// constructed and passed to whoever needs it - no package-level
// singleton.
type Manager struct {
	svc Authenticator

	lock      sync.Mutex
	state     State
	inFlight  bool
	listeners []Listener
}

// NewManager bootstraps the session: it starts loading, restores any
// persisted session via CurrentUser, then settles. CurrentUser is
// synchronous so the manager is READY by the time NewManager returns.
func NewManager(svc Authenticator) (*Manager, error) {
	if svc == nil {
		return nil, errors.New("[NewManager] authenticator is required")
	}

	m := &Manager{
		svc:   svc,
		state: State{Loading: true},
	}

	user := svc.CurrentUser()
	m.state = State{
		Authenticated: user != nil,
		User:          user,
		Loading:       false,
	}
	return m, nil
}

// Snapshot returns a copy of the current state.
func (m *Manager) Snapshot() State {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.state
}

// Subscribe registers a listener for state changes. Listeners run on the
// flow that caused the transition, after the state has settled.
func (m *Manager) Subscribe(l Listener) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.listeners = append(m.listeners, l)
}

// Login runs one authentication attempt. While it is in flight the state
// is loading and any further Login call fails fast with ErrLoginInFlight
// without touching state. On success the session becomes authenticated;
// on any failure it becomes unauthenticated with the collapsed error
// message. The typed failure is returned for callers that log reasons.
func (m *Manager) Login(ctx context.Context, creds auth.Credentials) error {
	m.lock.Lock()
	if m.inFlight {
		m.lock.Unlock()
		return ErrLoginInFlight
	}
	m.inFlight = true
	m.state.Loading = true
	m.state.Err = ""
	st := m.state
	m.lock.Unlock()
	m.notify(st)

	user, err := m.svc.Login(ctx, creds)

	m.lock.Lock()
	m.inFlight = false
	if err != nil {
		m.state = State{Err: loginFailedMessage}
	} else {
		m.state = State{Authenticated: user != nil, User: user}
	}
	st = m.state
	m.lock.Unlock()
	m.notify(st)

	return err
}

// Logout signs out unconditionally. The token store clear is best
// effort: even if it fails the in-memory session is gone.
func (m *Manager) Logout() {
	_ = m.svc.Logout()

	m.lock.Lock()
	m.state = State{}
	st := m.state
	m.lock.Unlock()
	m.notify(st)
}

func (m *Manager) notify(st State) {
	m.lock.Lock()
	listeners := make([]Listener, len(m.listeners))
	copy(listeners, m.listeners)
	m.lock.Unlock()

	for _, l := range listeners {
		l(st)
	}
}
