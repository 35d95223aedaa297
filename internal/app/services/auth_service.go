package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/feims/feims/internal/app/models"
	"github.com/feims/feims/internal/app/repositories"
	"github.com/feims/feims/internal/config"
	"github.com/feims/feims/internal/db"
	"github.com/feims/feims/internal/pkg/apperrors"
	"github.com/feims/feims/internal/pkg/auth"
	"github.com/feims/feims/internal/pkg/logger"
	"github.com/feims/feims/internal/pkg/validation"
	"github.com/feims/feims/internal/session"
)

// confirmationTokenTTL bounds how long a new account can stay
// unactivated before registration has to be redone.
const confirmationTokenTTL = 24 * time.Hour

// TokenPair is the result of a successful sign-in or refresh.
type TokenPair struct {
	AccessToken      string
	RefreshToken     string
	ExpiresIn        int64
	RefreshExpiresIn int64
}

// AuthService implements registration, credential exchange and token
// rotation. Every session change is announced on the broadcaster so
// session managers can follow along.
type AuthService struct {
	users    *repositories.UserRepository
	profiles *repositories.ProfileRepository
	tokens   *repositories.TokenRepository
	db       *db.PostgresDB
	jwt      *auth.JWTService
	cfg      *config.Config
	bus      *session.Broadcaster
	log      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(repos *repositories.Repositories, database *db.PostgresDB, jwtService *auth.JWTService, cfg *config.Config, bus *session.Broadcaster) *AuthService {
	return &AuthService{
		users:    repos.UserRepository,
		profiles: repos.ProfileRepository,
		tokens:   repos.TokenRepository,
		db:       database,
		jwt:      jwtService,
		cfg:      cfg,
		bus:      bus,
		log:      logger.With("auth"),
	}
}

// Events exposes the session-change broadcaster.
func (s *AuthService) Events() *session.Broadcaster {
	return s.bus
}

// SignUp registers a new account and creates its profile row, exactly
// once. Credentials are validated before any store access, and a
// taken email surfaces as a distinct auth error.
func (s *AuthService) SignUp(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.TrimSpace(email)
	if !validation.ValidEmail(email) {
		return nil, apperrors.ErrInvalidEmail
	}
	if !validation.ValidPassword(password) {
		return nil, apperrors.ErrPasswordTooWeak
	}

	taken, err := s.users.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.ErrEmailAlreadyRegistered
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:             uuid.New(),
		Email:          email,
		Password:       hashed,
		EmailConfirmed: !s.cfg.Auth.RequireConfirmation,
	}
	profile := &models.Profile{
		ID:   user.ID,
		Name: displayNameFromEmail(email),
	}

	// The account and its profile are provisioned in one transaction:
	// sign-up either fully issues the identity or leaves nothing.
	err = s.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.users.CreateInTx(ctx, tx, user); err != nil {
			return err
		}
		return s.profiles.CreateInTx(ctx, tx, profile)
	})
	if err != nil {
		return nil, err
	}

	if s.cfg.Auth.RequireConfirmation {
		if err := s.issueConfirmationToken(ctx, user); err != nil {
			return nil, err
		}
	}

	s.log.Info().Str("user_id", user.ID.String()).Msg("account registered")
	return user, nil
}

// issueConfirmationToken stores an opaque activation token for the
// account. Delivering it to the user happens out of process; the
// token is logged so an operator-run delivery hook can pick it up.
func (s *AuthService) issueConfirmationToken(ctx context.Context, user *models.User) error {
	token := uuid.NewString()
	expiresAt := time.Now().Add(confirmationTokenTTL)
	if err := s.tokens.Create(ctx, token, user.ID, repositories.TokenPurposeConfirm, expiresAt); err != nil {
		return err
	}

	s.log.Info().
		Str("user_id", user.ID.String()).
		Str("confirmation_token", token).
		Time("expires_at", expiresAt).
		Msg("confirmation token issued")
	return nil
}

// ConfirmEmail activates the account a confirmation token was issued
// for and consumes the token.
func (s *AuthService) ConfirmEmail(ctx context.Context, token string) error {
	userID, expiresAt, revoked, err := s.tokens.Get(ctx, token, repositories.TokenPurposeConfirm)
	if err != nil {
		return err
	}
	if revoked {
		return apperrors.ErrTokenRevoked
	}
	if time.Now().After(expiresAt) {
		return apperrors.ErrTokenExpired
	}

	if err := s.users.ConfirmEmail(ctx, userID); err != nil {
		return err
	}
	if err := s.tokens.Revoke(ctx, token); err != nil {
		return err
	}

	s.log.Info().Str("user_id", userID.String()).Msg("email confirmed")
	return nil
}

// SignIn exchanges credentials for a token pair. A wrong email and a
// wrong password produce the same error so the response does not leak
// which accounts exist.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*models.User, *TokenPair, error) {
	email = strings.TrimSpace(email)
	if !validation.ValidEmail(email) {
		return nil, nil, apperrors.ErrInvalidEmail
	}
	if !validation.ValidPassword(password) {
		return nil, nil, apperrors.ErrPasswordTooWeak
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, apperrors.ErrInvalidCredentials
		}
		return nil, nil, err
	}
	if !auth.CheckPassword(user.Password, password) {
		return nil, nil, apperrors.ErrInvalidCredentials
	}
	if s.cfg.Auth.RequireConfirmation && !user.EmailConfirmed {
		return nil, nil, apperrors.NewAuthError("email address not confirmed")
	}

	pair, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	s.bus.Publish(session.Event{
		Kind:    session.EventSignedIn,
		Session: &session.Session{UserID: user.ID, Email: user.Email},
	})
	return user, pair, nil
}

// RefreshToken rotates a refresh token: the presented token is
// revoked and a fresh pair is issued.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	userID, expiresAt, revoked, err := s.tokens.Get(ctx, refreshToken, repositories.TokenPurposeRefresh)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, apperrors.ErrTokenRevoked
	}
	if time.Now().After(expiresAt) {
		return nil, apperrors.ErrTokenExpired
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.tokens.Revoke(ctx, refreshToken); err != nil {
		return nil, err
	}

	pair, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	s.bus.Publish(session.Event{
		Kind:    session.EventTokenRefreshed,
		Session: &session.Session{UserID: user.ID, Email: user.Email},
	})
	return pair, nil
}

// SignOut revokes every refresh token the user holds and announces
// the end of the session. Signing out an already signed-out user is a
// no-op.
func (s *AuthService) SignOut(ctx context.Context, userID uuid.UUID) error {
	if err := s.tokens.RevokeAllForUser(ctx, userID); err != nil {
		return err
	}
	s.bus.Publish(session.Event{Kind: session.EventSignedOut})
	s.log.Info().Str("user_id", userID.String()).Msg("signed out")
	return nil
}

// GetProfile returns the profile for an identity.
func (s *AuthService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	return s.profiles.GetByID(ctx, userID)
}

// UpdateProfile renames the profile for an identity.
func (s *AuthService) UpdateProfile(ctx context.Context, userID uuid.UUID, name string) (*models.Profile, error) {
	if !validation.NonEmpty(name) {
		return nil, apperrors.NewValidationError("profile name is required")
	}
	return s.profiles.UpdateName(ctx, userID, name)
}

// ValidateAccessToken parses and validates an access token, mapping
// token errors into the application error taxonomy.
func (s *AuthService) ValidateAccessToken(tokenString string) (*auth.Claims, error) {
	claims, err := s.jwt.ValidateToken(tokenString)
	if err != nil {
		if errors.Is(err, auth.ErrExpiredToken) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrTokenInvalid
	}
	return claims, nil
}

func (s *AuthService) issueTokens(ctx context.Context, user *models.User) (*TokenPair, error) {
	access, refresh, expiresIn, refreshExpiresIn, err := s.jwt.GenerateTokenPair(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	if err := s.tokens.Create(ctx, refresh, user.ID, repositories.TokenPurposeRefresh, s.jwt.GetRefreshTokenExpiry()); err != nil {
		return nil, err
	}
	return &TokenPair{
		AccessToken:      access,
		RefreshToken:     refresh,
		ExpiresIn:        expiresIn,
		RefreshExpiresIn: refreshExpiresIn,
	}, nil
}

// displayNameFromEmail derives the initial profile name from the
// local part of the address, matching what sign-up shows before the
// user edits it.
func displayNameFromEmail(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
