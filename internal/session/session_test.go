package session

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTransition(t *testing.T) {
	alice := &Session{UserID: uuid.New(), Email: "alice@example.edu"}
	bob := &Session{UserID: uuid.New(), Email: "bob@example.edu"}

	tests := []struct {
		name        string
		state       State
		current     *Session
		event       Event
		wantState   State
		wantSession *Session
	}{
		{
			name:        "initial check with no session",
			state:       StateInitializing,
			event:       Event{Kind: EventInitialSession},
			wantState:   StateUnauthenticated,
			wantSession: nil,
		},
		{
			name:        "initial check with existing session",
			state:       StateInitializing,
			event:       Event{Kind: EventInitialSession, Session: alice},
			wantState:   StateAuthenticated,
			wantSession: alice,
		},
		{
			name:        "late initial result never clobbers a sign-in",
			state:       StateAuthenticated,
			current:     alice,
			event:       Event{Kind: EventInitialSession},
			wantState:   StateAuthenticated,
			wantSession: alice,
		},
		{
			name:        "late initial result never clobbers a sign-out",
			state:       StateUnauthenticated,
			event:       Event{Kind: EventInitialSession, Session: alice},
			wantState:   StateUnauthenticated,
			wantSession: nil,
		},
		{
			name:        "sign-in from unauthenticated",
			state:       StateUnauthenticated,
			event:       Event{Kind: EventSignedIn, Session: alice},
			wantState:   StateAuthenticated,
			wantSession: alice,
		},
		{
			name:        "duplicate sign-in converges",
			state:       StateAuthenticated,
			current:     alice,
			event:       Event{Kind: EventSignedIn, Session: alice},
			wantState:   StateAuthenticated,
			wantSession: alice,
		},
		{
			name:        "sign-in replaces a different identity",
			state:       StateAuthenticated,
			current:     alice,
			event:       Event{Kind: EventSignedIn, Session: bob},
			wantState:   StateAuthenticated,
			wantSession: bob,
		},
		{
			name:        "sign-in without identity is ignored",
			state:       StateUnauthenticated,
			event:       Event{Kind: EventSignedIn},
			wantState:   StateUnauthenticated,
			wantSession: nil,
		},
		{
			name:        "sign-out from authenticated",
			state:       StateAuthenticated,
			current:     alice,
			event:       Event{Kind: EventSignedOut},
			wantState:   StateUnauthenticated,
			wantSession: nil,
		},
		{
			name:        "duplicate sign-out converges",
			state:       StateUnauthenticated,
			event:       Event{Kind: EventSignedOut},
			wantState:   StateUnauthenticated,
			wantSession: nil,
		},
		{
			name:        "sign-out while initializing resolves the machine",
			state:       StateInitializing,
			event:       Event{Kind: EventSignedOut},
			wantState:   StateUnauthenticated,
			wantSession: nil,
		},
		{
			name:        "refresh keeps the authenticated identity",
			state:       StateAuthenticated,
			current:     alice,
			event:       Event{Kind: EventTokenRefreshed, Session: alice},
			wantState:   StateAuthenticated,
			wantSession: alice,
		},
		{
			name:        "refresh never establishes a session",
			state:       StateUnauthenticated,
			event:       Event{Kind: EventTokenRefreshed, Session: alice},
			wantState:   StateUnauthenticated,
			wantSession: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotState, gotSession := Transition(tt.state, tt.current, tt.event)
			assert.Equal(t, tt.wantState, gotState)
			assert.Equal(t, tt.wantSession, gotSession)
		})
	}
}

func TestTransitionCommutesForIndependentEvents(t *testing.T) {
	alice := &Session{UserID: uuid.New(), Email: "alice@example.edu"}

	// A sign-in followed by a stale initial result must land in the
	// same place as the reverse order.
	signIn := Event{Kind: EventSignedIn, Session: alice}
	initial := Event{Kind: EventInitialSession}

	s1, c1 := Transition(StateInitializing, nil, signIn)
	s1, c1 = Transition(s1, c1, initial)

	s2, c2 := Transition(StateInitializing, nil, initial)
	s2, c2 = Transition(s2, c2, signIn)

	assert.Equal(t, s1, s2)
	assert.Equal(t, c1, c2)
	assert.Equal(t, StateAuthenticated, s1)
}
