package repositories

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/feims/feims/internal/app/models"
	"github.com/feims/feims/internal/db"
	"github.com/feims/feims/internal/pkg/apperrors"
	"github.com/feims/feims/internal/pkg/dberrors"
)

// UserRepository handles auth-account database operations.
type UserRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(database *db.PostgresDB) *UserRepository {
	return &UserRepository{
		db: database,
		sb: statementBuilder(),
	}
}

// buildInsert assembles the account insert. The id is generated by
// the caller and bound explicitly; the users table has no column
// default for it.
func (r *UserRepository) buildInsert(user *models.User) (string, []interface{}, error) {
	return r.sb.Insert("users").
		Columns("id", "email", "password", "email_confirmed").
		Values(user.ID, user.Email, user.Password, user.EmailConfirmed).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
}

// CreateInTx inserts a new auth account inside the given transaction,
// so sign-up provisions the account and its profile atomically.
func (r *UserRepository) CreateInTx(ctx context.Context, tx pgx.Tx, user *models.User) error {
	sql, args, err := r.buildInsert(user)
	if err != nil {
		return wrapQueryError("create user", err)
	}

	err = tx.QueryRow(ctx, sql, args...).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrEmailAlreadyRegistered
		}
		return wrapQueryError("create user", err)
	}

	return nil
}

// GetByEmail retrieves an account by email, case-insensitively.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	sql, args, err := r.sb.Select("id", "email", "password", "email_confirmed", "created_at", "updated_at").
		From("users").
		Where(squirrel.Expr("lower(email) = lower(?)", email)).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, wrapQueryError("get user by email", err)
	}

	user := &models.User{}
	err = r.db.Pool.QueryRow(ctx, sql, args...).Scan(
		&user.ID,
		&user.Email,
		&user.Password,
		&user.EmailConfirmed,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, wrapQueryError("get user by email", err)
	}

	return user, nil
}

// GetByID retrieves an account by id.
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	sql, args, err := r.sb.Select("id", "email", "password", "email_confirmed", "created_at", "updated_at").
		From("users").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, wrapQueryError("get user", err)
	}

	user := &models.User{}
	err = r.db.Pool.QueryRow(ctx, sql, args...).Scan(
		&user.ID,
		&user.Email,
		&user.Password,
		&user.EmailConfirmed,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, wrapQueryError("get user", err)
	}

	return user, nil
}

// EmailExists reports whether an account with the email exists.
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	var exists bool
	err := r.db.Pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE lower(email) = lower($1))`,
		email).Scan(&exists)
	if err != nil {
		return false, wrapQueryError("check user email", err)
	}

	return exists, nil
}

// ConfirmEmail marks an account's email as confirmed.
func (r *UserRepository) ConfirmEmail(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	sql, args, err := r.sb.Update("users").
		Set("email_confirmed", true).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return wrapQueryError("confirm email", err)
	}

	cmdTag, err := r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return wrapQueryError("confirm email", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("user not found")
	}

	return nil
}
