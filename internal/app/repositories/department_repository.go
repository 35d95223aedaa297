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
	"github.com/feims/feims/internal/pkg/logger"
)

// DepartmentRepository handles database operations for departments
type DepartmentRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(database *db.PostgresDB) *DepartmentRepository {
	return &DepartmentRepository{
		db: database,
		sb: statementBuilder(),
	}
}

// Create inserts a new department and fills in the server-assigned id
// and created_at.
func (r *DepartmentRepository) Create(ctx context.Context, department *models.Department) error {
	if err := department.Validate(); err != nil {
		return err
	}

	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	sql, args, err := r.sb.Insert("departments").
		Columns("code", "name", "description").
		Values(department.Code, department.Name, department.Description).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return wrapQueryError("create department", err)
	}

	err = r.db.Pool.QueryRow(ctx, sql, args...).Scan(&department.ID, &department.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrDepartmentAlreadyExists
		}
		return wrapQueryError("create department", err)
	}

	return nil
}

// GetByID retrieves a department by ID.
func (r *DepartmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Department, error) {
	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	sql, args, err := r.sb.Select("id", "code", "name", "description", "created_at").
		From("departments").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, wrapQueryError("get department", err)
	}

	department := &models.Department{}
	err = r.db.Pool.QueryRow(ctx, sql, args...).Scan(
		&department.ID,
		&department.Code,
		&department.Name,
		&department.Description,
		&department.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, wrapQueryError("get department", err)
	}

	return department, nil
}

// GetAll retrieves all departments ordered by name.
func (r *DepartmentRepository) GetAll(ctx context.Context) ([]*models.Department, error) {
	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	sql, args, err := r.sb.Select("id", "code", "name", "description", "created_at").
		From("departments").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, wrapQueryError("list departments", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapQueryError("list departments", err)
	}
	defer rows.Close()

	departments := []*models.Department{}
	for rows.Next() {
		department := &models.Department{}
		if err := rows.Scan(
			&department.ID,
			&department.Code,
			&department.Name,
			&department.Description,
			&department.CreatedAt,
		); err != nil {
			return nil, wrapQueryError("list departments", err)
		}
		departments = append(departments, department)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryError("list departments", err)
	}

	return departments, nil
}

// GetWithFaculties is the one-to-many composite read: the department
// row plus the array of its faculty members. The array is present and
// empty when no member references the department. The two reads are
// not transactional; they may observe slightly different points in
// time.
func (r *DepartmentRepository) GetWithFaculties(ctx context.Context, id uuid.UUID) (*models.Department, error) {
	department, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	sql, args, err := r.sb.Select(facultyColumns...).
		From("faculties").
		Where(squirrel.Eq{"department_id": id}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, wrapQueryError("expand department faculties", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapQueryError("expand department faculties", err)
	}
	defer rows.Close()

	department.Faculties = []*models.Faculty{}
	for rows.Next() {
		faculty := &models.Faculty{}
		if err := scanFaculty(rows, faculty); err != nil {
			return nil, wrapQueryError("expand department faculties", err)
		}
		department.Faculties = append(department.Faculties, faculty)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryError("expand department faculties", err)
	}

	return department, nil
}

// Update applies the given partial fields to an existing department.
func (r *DepartmentRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*models.Department, error) {
	if len(fields) == 0 {
		return r.GetByID(ctx, id)
	}

	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	sql, args, err := r.sb.Update("departments").
		SetMap(fields).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, code, name, description, created_at").
		ToSql()
	if err != nil {
		return nil, wrapQueryError("update department", err)
	}

	department := &models.Department{}
	err = r.db.Pool.QueryRow(ctx, sql, args...).Scan(
		&department.ID,
		&department.Code,
		&department.Name,
		&department.Description,
		&department.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrDepartmentAlreadyExists
		}
		return nil, wrapQueryError("update department", err)
	}

	return department, nil
}

// ReleaseFaculties detaches faculty from a department inside the
// given transaction. Members survive with a null department reference.
func (r *DepartmentRepository) ReleaseFaculties(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	return r.releaseTable(ctx, tx, "faculties", id)
}

// ReleaseCourses detaches courses from a department inside the given
// transaction.
func (r *DepartmentRepository) ReleaseCourses(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	return r.releaseTable(ctx, tx, "courses", id)
}

// ReleaseDependents releases faculty and courses together, the usual
// prelude to DeleteInTx.
func (r *DepartmentRepository) ReleaseDependents(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	if err := r.ReleaseFaculties(ctx, tx, id); err != nil {
		return err
	}
	if err := r.ReleaseCourses(ctx, tx, id); err != nil {
		return err
	}

	logger.Debug().Str("departmentId", id.String()).Msg("Department dependents released")
	return nil
}

func (r *DepartmentRepository) releaseTable(ctx context.Context, tx pgx.Tx, table string, id uuid.UUID) error {
	sql, args, err := r.sb.Update(table).
		Set("department_id", nil).
		Where(squirrel.Eq{"department_id": id}).
		ToSql()
	if err != nil {
		return wrapQueryError("release department dependents", err)
	}
	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		return wrapQueryError("release department dependents", err)
	}
	return nil
}

// DeleteInTx removes the department row inside the given transaction.
func (r *DepartmentRepository) DeleteInTx(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	sql, args, err := r.sb.Delete("departments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return wrapQueryError("delete department", err)
	}

	cmdTag, err := tx.Exec(ctx, sql, args...)
	if err != nil {
		return wrapQueryError("delete department", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDepartmentNotFound
	}
	return nil
}
