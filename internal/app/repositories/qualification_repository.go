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

var qualificationColumns = []string{
	"id", "faculty_id", "degree_type", "institution", "field_of_study",
	"year", "remarks", "created_at",
}

func scanQualification(row pgx.Row, q *models.Qualification) error {
	return row.Scan(
		&q.ID,
		&q.FacultyID,
		&q.DegreeType,
		&q.Institution,
		&q.FieldOfStudy,
		&q.Year,
		&q.Remarks,
		&q.CreatedAt,
	)
}

// QualificationRepository handles qualification database operations.
type QualificationRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewQualificationRepository creates a new QualificationRepository
func NewQualificationRepository(database *db.PostgresDB) *QualificationRepository {
	return &QualificationRepository{
		db: database,
		sb: statementBuilder(),
	}
}

// Create inserts a new qualification for a faculty member.
func (r *QualificationRepository) Create(ctx context.Context, qualification *models.Qualification) error {
	if err := qualification.Validate(); err != nil {
		return err
	}

	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	sql, args, err := r.sb.Insert("qualifications").
		Columns("faculty_id", "degree_type", "institution", "field_of_study", "year", "remarks").
		Values(qualification.FacultyID, qualification.DegreeType, qualification.Institution,
			qualification.FieldOfStudy, qualification.Year, qualification.Remarks).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return wrapQueryError("create qualification", err)
	}

	err = r.db.Pool.QueryRow(ctx, sql, args...).Scan(&qualification.ID, &qualification.CreatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrFacultyNotFound
		}
		return wrapQueryError("create qualification", err)
	}

	return nil
}

// ListByFaculty retrieves a member's qualifications, newest year first.
func (r *QualificationRepository) ListByFaculty(ctx context.Context, facultyID uuid.UUID) ([]*models.Qualification, error) {
	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	sql, args, err := r.sb.Select(qualificationColumns...).
		From("qualifications").
		Where(squirrel.Eq{"faculty_id": facultyID}).
		OrderBy("year DESC NULLS LAST").
		ToSql()
	if err != nil {
		return nil, wrapQueryError("list qualifications", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapQueryError("list qualifications", err)
	}
	defer rows.Close()

	qualifications := []*models.Qualification{}
	for rows.Next() {
		qualification := &models.Qualification{}
		if err := scanQualification(rows, qualification); err != nil {
			return nil, wrapQueryError("list qualifications", err)
		}
		qualifications = append(qualifications, qualification)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryError("list qualifications", err)
	}

	return qualifications, nil
}

// Update applies the given partial fields and returns the updated row.
func (r *QualificationRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*models.Qualification, error) {
	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	sql, args, err := r.sb.Update("qualifications").
		SetMap(fields).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(qualificationColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, wrapQueryError("update qualification", err)
	}

	qualification := &models.Qualification{}
	if err := scanQualification(r.db.Pool.QueryRow(ctx, sql, args...), qualification); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrQualificationNotFound
		}
		return nil, wrapQueryError("update qualification", err)
	}

	return qualification, nil
}

// Delete removes a qualification by ID.
func (r *QualificationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	sql, args, err := r.sb.Delete("qualifications").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return wrapQueryError("delete qualification", err)
	}

	cmdTag, err := r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return wrapQueryError("delete qualification", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrQualificationNotFound
	}

	return nil
}

// DeleteByFaculty removes all qualifications owned by a faculty member
// inside the given transaction.
func (r *QualificationRepository) DeleteByFaculty(ctx context.Context, tx pgx.Tx, facultyID uuid.UUID) error {
	sql, args, err := r.sb.Delete("qualifications").
		Where(squirrel.Eq{"faculty_id": facultyID}).
		ToSql()
	if err != nil {
		return wrapQueryError("delete qualifications", err)
	}

	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		return wrapQueryError("delete qualifications", err)
	}
	return nil
}
