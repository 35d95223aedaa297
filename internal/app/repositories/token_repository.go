package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/feims/feims/internal/db"
	"github.com/feims/feims/internal/pkg/apperrors"
)

// Purposes stored alongside an opaque token. A token only works for
// the purpose it was issued with.
const (
	TokenPurposeRefresh = "refresh"
	TokenPurposeConfirm = "confirm"
)

// TokenRepository persists opaque tokens: refresh tokens so sessions
// can be rotated and revoked server-side, and confirmation tokens for
// activating new accounts.
type TokenRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewTokenRepository creates a new TokenRepository
func NewTokenRepository(database *db.PostgresDB) *TokenRepository {
	return &TokenRepository{
		db: database,
		sb: statementBuilder(),
	}
}

// Create stores an opaque token for a user under the given purpose.
func (r *TokenRepository) Create(ctx context.Context, token string, userID uuid.UUID, purpose string, expiresAt time.Time) error {
	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	sql, args, err := r.sb.Insert("auth_tokens").
		Columns("token", "user_id", "purpose", "expires_at").
		Values(token, userID, purpose, expiresAt).
		ToSql()
	if err != nil {
		return wrapQueryError("create token", err)
	}

	if _, err := r.db.Pool.Exec(ctx, sql, args...); err != nil {
		return wrapQueryError("create token", err)
	}

	return nil
}

// Get looks up a token issued for the given purpose and returns its
// owner, expiry and revocation status. A token issued for a different
// purpose is invalid.
func (r *TokenRepository) Get(ctx context.Context, token, purpose string) (userID uuid.UUID, expiresAt time.Time, revoked bool, err error) {
	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	sql, args, err := r.sb.Select("user_id", "expires_at", "revoked").
		From("auth_tokens").
		Where(squirrel.Eq{"token": token, "purpose": purpose}).
		Limit(1).
		ToSql()
	if err != nil {
		return uuid.Nil, time.Time{}, false, wrapQueryError("get token", err)
	}

	err = r.db.Pool.QueryRow(ctx, sql, args...).Scan(&userID, &expiresAt, &revoked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, time.Time{}, false, apperrors.ErrTokenInvalid
		}
		return uuid.Nil, time.Time{}, false, wrapQueryError("get token", err)
	}

	return userID, expiresAt, revoked, nil
}

// Revoke marks a single refresh token as revoked.
func (r *TokenRepository) Revoke(ctx context.Context, token string) error {
	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	sql, args, err := r.sb.Update("auth_tokens").
		Set("revoked", true).
		Where(squirrel.Eq{"token": token}).
		ToSql()
	if err != nil {
		return wrapQueryError("revoke token", err)
	}

	if _, err := r.db.Pool.Exec(ctx, sql, args...); err != nil {
		return wrapQueryError("revoke token", err)
	}

	return nil
}

// RevokeAllForUser invalidates every refresh token a user holds,
// used at sign-out.
func (r *TokenRepository) RevokeAllForUser(ctx context.Context, userID uuid.UUID) error {
	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	sql, args, err := r.sb.Update("auth_tokens").
		Set("revoked", true).
		Where(squirrel.Eq{"user_id": userID, "purpose": TokenPurposeRefresh}).
		ToSql()
	if err != nil {
		return wrapQueryError("revoke user tokens", err)
	}

	if _, err := r.db.Pool.Exec(ctx, sql, args...); err != nil {
		return wrapQueryError("revoke user tokens", err)
	}

	return nil
}
