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

// ProfileRepository handles profile database operations. A profile is
// keyed by the identity issued at sign-up and created exactly once.
type ProfileRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(database *db.PostgresDB) *ProfileRepository {
	return &ProfileRepository{
		db: database,
		sb: statementBuilder(),
	}
}

// buildInsert assembles the profile insert keyed by the issued
// identity id.
func (r *ProfileRepository) buildInsert(profile *models.Profile) (string, []interface{}, error) {
	return r.sb.Insert("profiles").
		Columns("id", "name").
		Values(profile.ID, profile.Name).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
}

// CreateInTx inserts the profile row for a newly issued identity,
// inside the sign-up transaction.
func (r *ProfileRepository) CreateInTx(ctx context.Context, tx pgx.Tx, profile *models.Profile) error {
	if err := profile.Validate(); err != nil {
		return err
	}

	sql, args, err := r.buildInsert(profile)
	if err != nil {
		return wrapQueryError("create profile", err)
	}

	err = tx.QueryRow(ctx, sql, args...).Scan(&profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError("profile already exists for this identity")
		}
		return wrapQueryError("create profile", err)
	}

	return nil
}

// GetByID retrieves the profile linked to an identity.
func (r *ProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	sql, args, err := r.sb.Select("id", "name", "created_at", "updated_at").
		From("profiles").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, wrapQueryError("get profile", err)
	}

	profile := &models.Profile{}
	err = r.db.Pool.QueryRow(ctx, sql, args...).Scan(
		&profile.ID,
		&profile.Name,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, wrapQueryError("get profile", err)
	}

	return profile, nil
}

// UpdateName renames the profile and returns the updated row.
func (r *ProfileRepository) UpdateName(ctx context.Context, id uuid.UUID, name string) (*models.Profile, error) {
	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	sql, args, err := r.sb.Update("profiles").
		Set("name", name).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, name, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, wrapQueryError("update profile", err)
	}

	profile := &models.Profile{}
	err = r.db.Pool.QueryRow(ctx, sql, args...).Scan(
		&profile.ID,
		&profile.Name,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, wrapQueryError("update profile", err)
	}

	return profile, nil
}
