// Package session tracks the caller's authentication state as an
// explicit finite-state machine, decoupled from the transport that
// delivers auth events. The transition function is pure; the Manager
// wires it to an AuthClient and a standing event subscription.
package session

import (
	"github.com/google/uuid"
)

// State is the authentication state of the current session.
type State int

const (
	// StateInitializing means the initial session check has not
	// resolved yet.
	StateInitializing State = iota
	// StateUnauthenticated means no identity is attached.
	StateUnauthenticated
	// StateAuthenticated means a signed-in identity is attached.
	StateAuthenticated
)

// String implements fmt.Stringer
func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Session is the identity attached to an authenticated state.
type Session struct {
	UserID uuid.UUID
	Email  string
}

// EventKind identifies the auth events the state machine consumes.
type EventKind int

const (
	// EventInitialSession carries the result of the one-time
	// current-session check performed at startup.
	EventInitialSession EventKind = iota
	// EventSignedIn is published after a successful sign-in.
	EventSignedIn
	// EventSignedOut is published after sign-out or revocation.
	EventSignedOut
	// EventTokenRefreshed is published when an existing session's
	// tokens rotate; the identity does not change.
	EventTokenRefreshed
)

// Event is a single auth state change. Session is nil for signed-out
// events and for an initial check that found no session.
type Event struct {
	Kind    EventKind
	Session *Session
}

// Transition applies an event to the current state and returns the
// next state and identity. It is pure and total: any event in any
// state yields a defined result, and duplicate delivery of the same
// event converges on the same state.
func Transition(state State, current *Session, ev Event) (State, *Session) {
	switch ev.Kind {
	case EventInitialSession:
		// The initial check only resolves Initializing. A signed-in
		// or signed-out event that raced ahead of it already
		// produced a fresher state; keep it.
		if state != StateInitializing {
			return state, current
		}
		if ev.Session == nil {
			return StateUnauthenticated, nil
		}
		return StateAuthenticated, ev.Session

	case EventSignedIn:
		if ev.Session == nil {
			return state, current
		}
		return StateAuthenticated, ev.Session

	case EventTokenRefreshed:
		// Rotation never establishes a session on its own.
		if state != StateAuthenticated {
			return state, current
		}
		if ev.Session != nil {
			return StateAuthenticated, ev.Session
		}
		return state, current

	case EventSignedOut:
		return StateUnauthenticated, nil

	default:
		return state, current
	}
}
