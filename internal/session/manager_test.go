package session

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feims/feims/internal/app/models"
	"github.com/feims/feims/internal/pkg/apperrors"
)

// fakeAuthClient drives the manager the way the real auth service
// does: mutations resolve directly and are echoed on the broadcaster.
type fakeAuthClient struct {
	bus *Broadcaster

	mu          sync.Mutex
	current     *Session
	currentErr  error
	signUpErr   error
	signInErr   error
	signOutErr  error
	signUpCalls []string
	signInCalls []string
}

func newFakeAuthClient() *fakeAuthClient {
	return &fakeAuthClient{bus: NewBroadcaster()}
}

func (f *fakeAuthClient) SignUp(_ context.Context, email, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.signUpCalls = append(f.signUpCalls, email)
	return f.signUpErr
}

func (f *fakeAuthClient) SignIn(_ context.Context, email, _ string) (*Session, error) {
	f.mu.Lock()
	f.signInCalls = append(f.signInCalls, email)
	err := f.signInErr
	f.mu.Unlock()
	if err != nil {
		return nil, err
	}
	s := &Session{UserID: uuid.New(), Email: email}
	f.bus.Publish(Event{Kind: EventSignedIn, Session: s})
	return s, nil
}

func (f *fakeAuthClient) SignOut(context.Context) error {
	f.mu.Lock()
	err := f.signOutErr
	f.mu.Unlock()
	if err != nil {
		return err
	}
	f.bus.Publish(Event{Kind: EventSignedOut})
	return nil
}

func (f *fakeAuthClient) CurrentSession(context.Context) (*Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current, f.currentErr
}

func (f *fakeAuthClient) Subscribe() (<-chan Event, func()) {
	return f.bus.Subscribe()
}

func (f *fakeAuthClient) signIns() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.signInCalls)
}

func (f *fakeAuthClient) signUps() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.signUpCalls)
}

func noLookup(context.Context, uuid.UUID) (*models.Profile, error) {
	return nil, nil
}

func TestManagerStartResolvesInitialState(t *testing.T) {
	client := newFakeAuthClient()
	m := NewManager(client, noLookup)
	defer m.Close()

	assert.Equal(t, StateInitializing, m.State())

	m.Start(context.Background())
	assert.Equal(t, StateUnauthenticated, m.State())
	assert.Nil(t, m.Current())
}

func TestManagerStartRestoresExistingSession(t *testing.T) {
	client := newFakeAuthClient()
	existing := &Session{UserID: uuid.New(), Email: "dr.engfield@example.edu"}
	client.current = existing

	m := NewManager(client, noLookup)
	defer m.Close()
	m.Start(context.Background())

	assert.Equal(t, StateAuthenticated, m.State())
	require.NotNil(t, m.Current())
	assert.Equal(t, existing.Email, m.Current().Email)
}

func TestManagerStartSurvivesFailedCheck(t *testing.T) {
	client := newFakeAuthClient()
	client.currentErr = apperrors.NewConnectionError("store unreachable")

	m := NewManager(client, noLookup)
	defer m.Close()
	m.Start(context.Background())

	assert.Equal(t, StateUnauthenticated, m.State())
}

func TestManagerLocalValidationBeforeRemoteCall(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "malformed email", email: "not-an-email", password: "abc123", wantErr: apperrors.ErrInvalidEmail},
		{name: "password below minimum", email: "a@b.edu", password: "abc12", wantErr: apperrors.ErrPasswordTooWeak},
		{name: "empty password", email: "a@b.edu", password: "", wantErr: apperrors.ErrPasswordTooWeak},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newFakeAuthClient()
			m := NewManager(client, noLookup)
			defer m.Close()
			m.Start(context.Background())

			err := m.SignUp(context.Background(), tt.email, tt.password)
			require.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, apperrors.ErrValidation)

			_, err = m.SignIn(context.Background(), tt.email, tt.password)
			require.ErrorIs(t, err, tt.wantErr)

			assert.Zero(t, client.signUps(), "invalid credentials must not reach the remote")
			assert.Zero(t, client.signIns(), "invalid credentials must not reach the remote")
		})
	}
}

func TestManagerForwardsMinimumLengthPassword(t *testing.T) {
	client := newFakeAuthClient()
	m := NewManager(client, noLookup)
	defer m.Close()
	m.Start(context.Background())

	_, err := m.SignIn(context.Background(), "a@b.edu", "abc123")
	require.NoError(t, err)
	assert.Equal(t, 1, client.signIns())
}

func TestManagerSignInFetchesProfileExactlyOnce(t *testing.T) {
	client := newFakeAuthClient()

	var lookups atomic.Int32
	lookup := func(_ context.Context, userID uuid.UUID) (*models.Profile, error) {
		lookups.Add(1)
		return &models.Profile{ID: userID, Name: "Dr. Engfield"}, nil
	}

	m := NewManager(client, lookup)
	defer m.Close()
	m.Start(context.Background())

	s, err := m.SignIn(context.Background(), "dr.engfield@example.edu", "abc123")
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return m.State() == StateAuthenticated && m.Profile() != nil
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, "Dr. Engfield", m.Profile().Name)

	// Duplicate delivery of the same sign-in converges without a
	// second lookup.
	client.bus.Publish(Event{Kind: EventSignedIn, Session: s})
	client.bus.Publish(Event{Kind: EventSignedIn, Session: s})

	require.Eventually(t, func() bool {
		return m.State() == StateAuthenticated
	}, time.Second, 5*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(1), lookups.Load())
}

func TestManagerAuthSurvivesProfileLookupFailure(t *testing.T) {
	client := newFakeAuthClient()
	lookup := func(context.Context, uuid.UUID) (*models.Profile, error) {
		return nil, apperrors.ErrProfileNotFound
	}

	m := NewManager(client, lookup)
	defer m.Close()
	m.Start(context.Background())

	_, err := m.SignIn(context.Background(), "a@b.edu", "abc123")
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return m.State() == StateAuthenticated
	}, time.Second, 5*time.Millisecond)
	assert.Nil(t, m.Profile(), "profile stays unset, auth state stays put")
}

func TestManagerSignOut(t *testing.T) {
	client := newFakeAuthClient()
	m := NewManager(client, noLookup)
	defer m.Close()
	m.Start(context.Background())

	_, err := m.SignIn(context.Background(), "a@b.edu", "abc123")
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		return m.State() == StateAuthenticated
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, m.SignOut(context.Background()))
	assert.Equal(t, StateUnauthenticated, m.State())
	assert.Nil(t, m.Current())
	assert.Nil(t, m.Profile())

	// The subscription echoes the sign-out; the duplicate converges.
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, StateUnauthenticated, m.State())
}

func TestManagerSignOutErrorKeepsState(t *testing.T) {
	client := newFakeAuthClient()
	m := NewManager(client, noLookup)
	defer m.Close()
	m.Start(context.Background())

	_, err := m.SignIn(context.Background(), "a@b.edu", "abc123")
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		return m.State() == StateAuthenticated
	}, time.Second, 5*time.Millisecond)

	client.mu.Lock()
	client.signOutErr = errors.New("network down")
	client.mu.Unlock()

	require.Error(t, m.SignOut(context.Background()))
	assert.Equal(t, StateAuthenticated, m.State())
}

func TestManagerCloseReleasesSubscription(t *testing.T) {
	client := newFakeAuthClient()
	m := NewManager(client, noLookup)
	m.Start(context.Background())

	m.Close()
	// Harmless to close twice.
	m.Close()

	// Events published after Close never move the machine.
	client.bus.Publish(Event{Kind: EventSignedIn, Session: &Session{UserID: uuid.New(), Email: "late@b.edu"}})
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, StateUnauthenticated, m.State())
}
