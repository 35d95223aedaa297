package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/feims/feims/internal/app/models"
	"github.com/feims/feims/internal/db"
	"github.com/feims/feims/internal/pkg/apperrors"
	"github.com/feims/feims/internal/pkg/dberrors"
)

// facultyColumns is the bare faculty projection, without relations.
var facultyColumns = []string{
	"id", "name", "email", "designation", "experience_years",
	"phone", "bio", "profile_photo_url", "department_id",
	"created_at", "updated_at",
}

// scanFaculty scans the bare faculty projection into f.
func scanFaculty(row pgx.Row, f *models.Faculty) error {
	return row.Scan(
		&f.ID,
		&f.Name,
		&f.Email,
		&f.Designation,
		&f.ExperienceYears,
		&f.Phone,
		&f.Bio,
		&f.ProfilePhotoURL,
		&f.DepartmentID,
		&f.CreatedAt,
		&f.UpdatedAt,
	)
}

// FacultyFilter narrows a faculty listing. Search matches when the
// query is a case-insensitive substring of name, email, or department
// name; the rule is pushed into SQL so it holds for any directory
// size, not just the fetched page.
type FacultyFilter struct {
	Search       string
	DepartmentID *uuid.UUID
}

// FacultyRepository handles faculty database operations
type FacultyRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewFacultyRepository creates a new FacultyRepository
func NewFacultyRepository(database *db.PostgresDB) *FacultyRepository {
	return &FacultyRepository{
		db: database,
		sb: statementBuilder(),
	}
}

// Create inserts a new faculty member. The department reference must
// be nil or resolve to an existing department; the store enforces it.
func (r *FacultyRepository) Create(ctx context.Context, faculty *models.Faculty) error {
	if err := faculty.Validate(); err != nil {
		return err
	}

	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	sql, args, err := r.sb.Insert("faculties").
		Columns("name", "email", "designation", "experience_years",
			"phone", "bio", "profile_photo_url", "department_id").
		Values(faculty.Name, faculty.Email, faculty.Designation, faculty.ExperienceYears,
			faculty.Phone, faculty.Bio, faculty.ProfilePhotoURL, faculty.DepartmentID).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return wrapQueryError("create faculty", err)
	}

	err = r.db.Pool.QueryRow(ctx, sql, args...).Scan(&faculty.ID, &faculty.CreatedAt, &faculty.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrEmailAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewValidationError("department id does not resolve")
		}
		return wrapQueryError("create faculty", err)
	}

	return nil
}

// GetByID is the many-to-one composite read: the faculty row with the
// nested department resolved in the same statement. Department is nil
// exactly when department_id is null.
func (r *FacultyRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Faculty, error) {
	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	sql, args, err := r.sb.Select(
		"f.id", "f.name", "f.email", "f.designation", "f.experience_years",
		"f.phone", "f.bio", "f.profile_photo_url", "f.department_id",
		"f.created_at", "f.updated_at",
		"d.id", "d.code", "d.name", "d.description", "d.created_at").
		From("faculties f").
		LeftJoin("departments d ON d.id = f.department_id").
		Where(squirrel.Eq{"f.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, wrapQueryError("get faculty", err)
	}

	faculty := &models.Faculty{}
	var dID *uuid.UUID
	var dCode, dName, dDescription *string
	var dCreatedAt *time.Time

	err = r.db.Pool.QueryRow(ctx, sql, args...).Scan(
		&faculty.ID,
		&faculty.Name,
		&faculty.Email,
		&faculty.Designation,
		&faculty.ExperienceYears,
		&faculty.Phone,
		&faculty.Bio,
		&faculty.ProfilePhotoURL,
		&faculty.DepartmentID,
		&faculty.CreatedAt,
		&faculty.UpdatedAt,
		&dID, &dCode, &dName, &dDescription, &dCreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFacultyNotFound
		}
		return nil, wrapQueryError("get faculty", err)
	}

	if dID != nil {
		var desc *string
		if dDescription != nil {
			desc = dDescription
		}
		faculty.Department = &models.Department{
			ID:          *dID,
			Code:        *dCode,
			Name:        *dName,
			Description: desc,
			CreatedAt:   *dCreatedAt,
		}
	}

	return faculty, nil
}

// buildListQuery assembles the faculty listing statement for a filter.
// Kept separate so the generated search predicate is testable without
// a live database.
func (r *FacultyRepository) buildListQuery(filter FacultyFilter) (string, []interface{}, error) {
	q := r.sb.Select(
		"f.id", "f.name", "f.email", "f.designation", "f.experience_years",
		"f.phone", "f.bio", "f.profile_photo_url", "f.department_id",
		"f.created_at", "f.updated_at",
		"d.id", "d.code", "d.name", "d.description", "d.created_at").
		From("faculties f").
		LeftJoin("departments d ON d.id = f.department_id").
		OrderBy("f.name ASC")

	if filter.Search != "" {
		// The query matches as a literal substring, so LIKE wildcards
		// in user input are escaped before wrapping.
		pattern := "%" + likeEscaper.Replace(filter.Search) + "%"
		q = q.Where(squirrel.Or{
			squirrel.ILike{"f.name": pattern},
			squirrel.ILike{"f.email": pattern},
			squirrel.ILike{"d.name": pattern},
		})
	}

	if filter.DepartmentID != nil {
		q = q.Where(squirrel.Eq{"f.department_id": *filter.DepartmentID})
	}

	return q.ToSql()
}

// List retrieves faculty members matching the filter, ordered by name
// ascending. An empty result is an empty slice, not an error.
func (r *FacultyRepository) List(ctx context.Context, filter FacultyFilter) ([]*models.Faculty, error) {
	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	sql, args, err := r.buildListQuery(filter)
	if err != nil {
		return nil, wrapQueryError("list faculty", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapQueryError("list faculty", err)
	}
	defer rows.Close()

	faculties := []*models.Faculty{}
	for rows.Next() {
		faculty := &models.Faculty{}
		var dID *uuid.UUID
		var dCode, dName, dDescription *string
		var dCreatedAt *time.Time

		if err := rows.Scan(
			&faculty.ID,
			&faculty.Name,
			&faculty.Email,
			&faculty.Designation,
			&faculty.ExperienceYears,
			&faculty.Phone,
			&faculty.Bio,
			&faculty.ProfilePhotoURL,
			&faculty.DepartmentID,
			&faculty.CreatedAt,
			&faculty.UpdatedAt,
			&dID, &dCode, &dName, &dDescription, &dCreatedAt,
		); err != nil {
			return nil, wrapQueryError("list faculty", err)
		}

		if dID != nil {
			faculty.Department = &models.Department{
				ID:          *dID,
				Code:        *dCode,
				Name:        *dName,
				Description: dDescription,
				CreatedAt:   *dCreatedAt,
			}
		}

		faculties = append(faculties, faculty)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryError("list faculty", err)
	}

	return faculties, nil
}

// Update applies the given partial fields and returns the updated row.
func (r *FacultyRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*models.Faculty, error) {
	if len(fields) == 0 {
		return r.GetByID(ctx, id)
	}

	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	fields["updated_at"] = squirrel.Expr("now()")

	sql, args, err := r.sb.Update("faculties").
		SetMap(fields).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(facultyColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, wrapQueryError("update faculty", err)
	}

	faculty := &models.Faculty{}
	err = scanFaculty(r.db.Pool.QueryRow(ctx, sql, args...), faculty)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFacultyNotFound
		}
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.NewValidationError("department id does not resolve")
		}
		return nil, wrapQueryError("update faculty", err)
	}

	return faculty, nil
}

// Delete removes the faculty row inside the given transaction. Owned
// records (qualifications, publications, documents, assignments) are
// deleted explicitly by the service before this call.
func (r *FacultyRepository) Delete(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	sql, args, err := r.sb.Delete("faculties").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return wrapQueryError("delete faculty", err)
	}

	cmdTag, err := tx.Exec(ctx, sql, args...)
	if err != nil {
		return wrapQueryError("delete faculty", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFacultyNotFound
	}

	return nil
}

// ExistsByEmail reports whether a faculty member with the email exists.
func (r *FacultyRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	var exists bool
	err := r.db.Pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM faculties WHERE lower(email) = lower($1))`,
		email).Scan(&exists)
	if err != nil {
		return false, wrapQueryError("check faculty email", err)
	}

	return exists, nil
}

// likeEscaper neutralizes LIKE wildcards and the escape character
// itself in user-supplied search terms.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
