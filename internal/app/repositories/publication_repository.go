package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/feims/feims/internal/app/models"
	"github.com/feims/feims/internal/db"
	"github.com/feims/feims/internal/pkg/apperrors"
	"github.com/feims/feims/internal/pkg/dberrors"
)

var publicationColumns = []string{
	"id", "faculty_id", "title", "venue", "year", "doi", "url",
	"publication_type", "created_at",
}

func scanPublication(row pgx.Row, p *models.Publication) error {
	return row.Scan(
		&p.ID,
		&p.FacultyID,
		&p.Title,
		&p.Venue,
		&p.Year,
		&p.DOI,
		&p.URL,
		&p.PublicationType,
		&p.CreatedAt,
	)
}

// PublicationRepository handles publication database operations.
type PublicationRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewPublicationRepository creates a new PublicationRepository
func NewPublicationRepository(database *db.PostgresDB) *PublicationRepository {
	return &PublicationRepository{
		db: database,
		sb: statementBuilder(),
	}
}

// Create inserts a new publication for a faculty member.
func (r *PublicationRepository) Create(ctx context.Context, publication *models.Publication) error {
	if err := publication.Validate(); err != nil {
		return err
	}

	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	sql, args, err := r.sb.Insert("publications").
		Columns("faculty_id", "title", "venue", "year", "doi", "url", "publication_type").
		Values(publication.FacultyID, publication.Title, publication.Venue, publication.Year,
			publication.DOI, publication.URL, publication.PublicationType).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return wrapQueryError("create publication", err)
	}

	err = r.db.Pool.QueryRow(ctx, sql, args...).Scan(&publication.ID, &publication.CreatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrFacultyNotFound
		}
		return wrapQueryError("create publication", err)
	}

	return nil
}

// ListByFaculty retrieves a member's publications, newest year first.
func (r *PublicationRepository) ListByFaculty(ctx context.Context, facultyID uuid.UUID) ([]*models.Publication, error) {
	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	sql, args, err := r.sb.Select(publicationColumns...).
		From("publications").
		Where(squirrel.Eq{"faculty_id": facultyID}).
		OrderBy("year DESC NULLS LAST").
		ToSql()
	if err != nil {
		return nil, wrapQueryError("list publications", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapQueryError("list publications", err)
	}
	defer rows.Close()

	publications := []*models.Publication{}
	for rows.Next() {
		publication := &models.Publication{}
		if err := scanPublication(rows, publication); err != nil {
			return nil, wrapQueryError("list publications", err)
		}
		publications = append(publications, publication)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryError("list publications", err)
	}

	return publications, nil
}

// Update applies the given partial fields and returns the updated row.
func (r *PublicationRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*models.Publication, error) {
	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	sql, args, err := r.sb.Update("publications").
		SetMap(fields).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(publicationColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, wrapQueryError("update publication", err)
	}

	publication := &models.Publication{}
	if err := scanPublication(r.db.Pool.QueryRow(ctx, sql, args...), publication); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPublicationNotFound
		}
		return nil, wrapQueryError("update publication", err)
	}

	return publication, nil
}

// Delete removes a publication by ID.
func (r *PublicationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	sql, args, err := r.sb.Delete("publications").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return wrapQueryError("delete publication", err)
	}

	cmdTag, err := r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return wrapQueryError("delete publication", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPublicationNotFound
	}

	return nil
}

// DeleteByFaculty removes all publications owned by a faculty member
// inside the given transaction.
func (r *PublicationRepository) DeleteByFaculty(ctx context.Context, tx pgx.Tx, facultyID uuid.UUID) error {
	sql, args, err := r.sb.Delete("publications").
		Where(squirrel.Eq{"faculty_id": facultyID}).
		ToSql()
	if err != nil {
		return wrapQueryError("delete publications", err)
	}

	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		return wrapQueryError("delete publications", err)
	}
	return nil
}
