package services

import (
	"context"
	"sync"

	"github.com/feims/feims/internal/session"
)

// SessionClient adapts the auth service to the session.AuthClient
// surface. It keeps the caller's current identity and refresh token
// so the session manager can restore state across Start calls.
type SessionClient struct {
	svc *AuthService

	mu      sync.Mutex
	current *session.Session
	refresh string
}

// NewSessionClient creates a client bound to the auth service.
func NewSessionClient(svc *AuthService) *SessionClient {
	return &SessionClient{svc: svc}
}

// SignUp registers a new identity. No session is established.
func (c *SessionClient) SignUp(ctx context.Context, email, password string) error {
	_, err := c.svc.SignUp(ctx, email, password)
	return err
}

// SignIn exchanges credentials and remembers the resulting identity
// and refresh token.
func (c *SessionClient) SignIn(ctx context.Context, email, password string) (*session.Session, error) {
	user, pair, err := c.svc.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}

	s := &session.Session{UserID: user.ID, Email: user.Email}
	c.mu.Lock()
	c.current = s
	c.refresh = pair.RefreshToken
	c.mu.Unlock()
	return s, nil
}

// SignOut revokes the stored session. Calling it with no session is a
// no-op.
func (c *SessionClient) SignOut(ctx context.Context) error {
	c.mu.Lock()
	current := c.current
	c.mu.Unlock()
	if current == nil {
		return nil
	}

	if err := c.svc.SignOut(ctx, current.UserID); err != nil {
		return err
	}

	c.mu.Lock()
	c.current = nil
	c.refresh = ""
	c.mu.Unlock()
	return nil
}

// Refresh rotates the stored refresh token.
func (c *SessionClient) Refresh(ctx context.Context) error {
	c.mu.Lock()
	refresh := c.refresh
	c.mu.Unlock()
	if refresh == "" {
		return nil
	}

	pair, err := c.svc.RefreshToken(ctx, refresh)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.refresh = pair.RefreshToken
	c.mu.Unlock()
	return nil
}

// CurrentSession returns the stored identity, or nil when signed out.
func (c *SessionClient) CurrentSession(context.Context) (*session.Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current, nil
}

// Subscribe installs a subscription on the auth service's
// broadcaster.
func (c *SessionClient) Subscribe() (<-chan session.Event, func()) {
	return c.svc.Events().Subscribe()
}
