package session

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/feims/feims/internal/app/models"
	"github.com/feims/feims/internal/pkg/apperrors"
	"github.com/feims/feims/internal/pkg/logger"
	"github.com/feims/feims/internal/pkg/validation"
)

// AuthClient is the remote auth surface the manager drives. The
// concrete implementation publishes sign-in, sign-out and refresh
// events on the channel returned by Subscribe.
type AuthClient interface {
	// SignUp registers a new identity. It does not imply a session:
	// the account may require confirmation before sign-in.
	SignUp(ctx context.Context, email, password string) error
	// SignIn exchanges credentials for a session. Success is also
	// announced through the subscription.
	SignIn(ctx context.Context, email, password string) (*Session, error)
	// SignOut invalidates the current session remotely.
	SignOut(ctx context.Context) error
	// CurrentSession returns the existing session, or nil when none.
	CurrentSession(ctx context.Context) (*Session, error)
	// Subscribe installs a standing auth-event subscription and
	// returns the release function that ends it.
	Subscribe() (<-chan Event, func())
}

// ProfileLookup resolves the profile attached to an identity. The
// manager calls it exactly once per sign-in, best effort.
type ProfileLookup func(ctx context.Context, userID uuid.UUID) (*models.Profile, error)

// Manager owns the session state machine. Start installs the event
// subscription and performs the one-time current-session check; Close
// releases the subscription. All accessors are safe for concurrent
// use.
type Manager struct {
	client AuthClient
	lookup ProfileLookup
	log    zerolog.Logger

	mu      sync.RWMutex
	state   State
	current *Session
	profile *models.Profile

	startOnce sync.Once
	closeOnce sync.Once
	release   func()
	done      chan struct{}
}

// NewManager creates a manager in the Initializing state. Call Start
// to begin processing events.
func NewManager(client AuthClient, lookup ProfileLookup) *Manager {
	return &Manager{
		client: client,
		lookup: lookup,
		log:    logger.With("session"),
		state:  StateInitializing,
		done:   make(chan struct{}),
	}
}

// Start subscribes to auth events and performs exactly one
// current-session check. Subsequent calls are no-ops.
func (m *Manager) Start(ctx context.Context) {
	m.startOnce.Do(func() {
		events, release := m.client.Subscribe()
		m.release = release

		go m.loop(events)

		current, err := m.client.CurrentSession(ctx)
		if err != nil {
			m.log.Warn().Err(err).Msg("initial session check failed")
			current = nil
		}
		m.apply(ctx, Event{Kind: EventInitialSession, Session: current})
	})
}

// Close releases the subscription and stops event processing. The
// session state itself is left as is.
func (m *Manager) Close() {
	m.closeOnce.Do(func() {
		close(m.done)
		if m.release != nil {
			m.release()
		}
	})
}

// State returns the current machine state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Current returns the authenticated identity, or nil.
func (m *Manager) Current() *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Profile returns the profile fetched for the authenticated identity,
// or nil when the lookup failed or has not run.
func (m *Manager) Profile() *models.Profile {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.profile
}

// SignUp validates credentials locally, then registers the identity
// remotely. A malformed email or short password never leaves the
// process.
func (m *Manager) SignUp(ctx context.Context, email, password string) error {
	if err := validateCredentials(email, password); err != nil {
		return err
	}
	return m.client.SignUp(ctx, strings.TrimSpace(email), password)
}

// SignIn validates credentials locally, then signs in remotely. The
// state transition arrives through the standing subscription; the
// returned session lets callers read the identity without waiting for
// event delivery.
func (m *Manager) SignIn(ctx context.Context, email, password string) (*Session, error) {
	if err := validateCredentials(email, password); err != nil {
		return nil, err
	}
	return m.client.SignIn(ctx, strings.TrimSpace(email), password)
}

// SignOut invalidates the session remotely and moves the machine to
// Unauthenticated once the call resolves, without waiting for the
// subscription to echo the event.
func (m *Manager) SignOut(ctx context.Context) error {
	if err := m.client.SignOut(ctx); err != nil {
		return err
	}
	m.apply(ctx, Event{Kind: EventSignedOut})
	return nil
}

func validateCredentials(email, password string) error {
	if !validation.ValidEmail(email) {
		return apperrors.ErrInvalidEmail
	}
	if !validation.ValidPassword(password) {
		return apperrors.ErrPasswordTooWeak
	}
	return nil
}

func (m *Manager) loop(events <-chan Event) {
	for {
		select {
		case <-m.done:
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			m.apply(context.Background(), ev)
		}
	}
}

// apply runs one event through the transition function and performs
// the entry action for Authenticated: a single best-effort profile
// lookup per identity. Duplicate events converge without a second
// lookup.
func (m *Manager) apply(ctx context.Context, ev Event) {
	m.mu.Lock()

	prevState, prevSession := m.state, m.current
	nextState, nextSession := Transition(m.state, m.current, ev)
	m.state, m.current = nextState, nextSession

	freshIdentity := nextState == StateAuthenticated &&
		(prevState != StateAuthenticated || prevSession == nil || prevSession.UserID != nextSession.UserID)
	if nextState != StateAuthenticated {
		m.profile = nil
	}
	m.mu.Unlock()

	if prevState != nextState {
		m.log.Debug().
			Stringer("from", prevState).
			Stringer("to", nextState).
			Msg("session state changed")
	}

	if freshIdentity && m.lookup != nil {
		profile, err := m.lookup(ctx, nextSession.UserID)
		if err != nil {
			m.log.Warn().
				Err(err).
				Str("user_id", nextSession.UserID.String()).
				Msg("profile lookup failed")
			return
		}
		m.mu.Lock()
		// The session may have ended while the lookup was in flight.
		if m.state == StateAuthenticated && m.current != nil && m.current.UserID == nextSession.UserID {
			m.profile = profile
		}
		m.mu.Unlock()
	}
}
