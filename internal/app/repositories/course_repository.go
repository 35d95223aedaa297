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

var courseColumns = []string{
	"id", "code", "name", "description", "credits", "department_id", "created_at",
}

func scanCourse(row pgx.Row, c *models.Course) error {
	return row.Scan(
		&c.ID,
		&c.Code,
		&c.Name,
		&c.Description,
		&c.Credits,
		&c.DepartmentID,
		&c.CreatedAt,
	)
}

// CourseRepository handles course and teaching-assignment operations.
type CourseRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(database *db.PostgresDB) *CourseRepository {
	return &CourseRepository{
		db: database,
		sb: statementBuilder(),
	}
}

// Create inserts a new course.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	if err := course.Validate(); err != nil {
		return err
	}

	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	sql, args, err := r.sb.Insert("courses").
		Columns("code", "name", "description", "credits", "department_id").
		Values(course.Code, course.Name, course.Description, course.Credits, course.DepartmentID).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return wrapQueryError("create course", err)
	}

	err = r.db.Pool.QueryRow(ctx, sql, args...).Scan(&course.ID, &course.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrCourseAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewValidationError("department id does not resolve")
		}
		return wrapQueryError("create course", err)
	}

	return nil
}

// GetByID retrieves a course by ID.
func (r *CourseRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	sql, args, err := r.sb.Select(courseColumns...).
		From("courses").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, wrapQueryError("get course", err)
	}

	course := &models.Course{}
	if err := scanCourse(r.db.Pool.QueryRow(ctx, sql, args...), course); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, wrapQueryError("get course", err)
	}

	return course, nil
}

// List retrieves courses, optionally scoped to a department, ordered
// by code.
func (r *CourseRepository) List(ctx context.Context, departmentID *uuid.UUID) ([]*models.Course, error) {
	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	q := r.sb.Select(courseColumns...).
		From("courses").
		OrderBy("code ASC")
	if departmentID != nil {
		q = q.Where(squirrel.Eq{"department_id": *departmentID})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, wrapQueryError("list courses", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapQueryError("list courses", err)
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		course := &models.Course{}
		if err := scanCourse(rows, course); err != nil {
			return nil, wrapQueryError("list courses", err)
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryError("list courses", err)
	}

	return courses, nil
}

// Update applies the given partial fields and returns the updated row.
func (r *CourseRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*models.Course, error) {
	if len(fields) == 0 {
		return r.GetByID(ctx, id)
	}

	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	sql, args, err := r.sb.Update("courses").
		SetMap(fields).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(courseColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, wrapQueryError("update course", err)
	}

	course := &models.Course{}
	if err := scanCourse(r.db.Pool.QueryRow(ctx, sql, args...), course); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrCourseAlreadyExists
		}
		return nil, wrapQueryError("update course", err)
	}

	return course, nil
}

// Delete removes a course by ID.
func (r *CourseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	sql, args, err := r.sb.Delete("courses").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return wrapQueryError("delete course", err)
	}

	cmdTag, err := r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return wrapQueryError("delete course", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// AssignFaculty records a teaching assignment. A duplicate
// (faculty, course, semester, year) combination is a conflict.
func (r *CourseRepository) AssignFaculty(ctx context.Context, assignment *models.FacultyCourse) error {
	if err := assignment.Validate(); err != nil {
		return err
	}

	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	sql, args, err := r.sb.Insert("faculty_courses").
		Columns("faculty_id", "course_id", "semester", "year").
		Values(assignment.FacultyID, assignment.CourseID, assignment.Semester, assignment.Year).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return wrapQueryError("assign faculty", err)
	}

	err = r.db.Pool.QueryRow(ctx, sql, args...).Scan(&assignment.ID, &assignment.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolationOn(err, "faculty_courses_assignment_key") {
			return apperrors.ErrDuplicateAssignment
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewValidationError("faculty or course id does not resolve")
		}
		return wrapQueryError("assign faculty", err)
	}

	return nil
}

// UnassignFaculty removes a teaching assignment by its id.
func (r *CourseRepository) UnassignFaculty(ctx context.Context, assignmentID uuid.UUID) error {
	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	sql, args, err := r.sb.Delete("faculty_courses").
		Where(squirrel.Eq{"id": assignmentID}).
		ToSql()
	if err != nil {
		return wrapQueryError("unassign faculty", err)
	}

	cmdTag, err := r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return wrapQueryError("unassign faculty", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("teaching assignment not found")
	}

	return nil
}

// ListAssignmentsByFaculty retrieves a member's teaching assignments
// with the course expanded, newest year first.
func (r *CourseRepository) ListAssignmentsByFaculty(ctx context.Context, facultyID uuid.UUID) ([]*models.FacultyCourse, error) {
	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	sql, args, err := r.sb.Select(
		"fc.id", "fc.faculty_id", "fc.course_id", "fc.semester", "fc.year", "fc.created_at",
		"c.id", "c.code", "c.name", "c.description", "c.credits", "c.department_id", "c.created_at").
		From("faculty_courses fc").
		Join("courses c ON c.id = fc.course_id").
		Where(squirrel.Eq{"fc.faculty_id": facultyID}).
		OrderBy("fc.year DESC NULLS LAST", "c.code ASC").
		ToSql()
	if err != nil {
		return nil, wrapQueryError("list assignments", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapQueryError("list assignments", err)
	}
	defer rows.Close()

	assignments := []*models.FacultyCourse{}
	for rows.Next() {
		assignment := &models.FacultyCourse{Course: &models.Course{}}
		if err := rows.Scan(
			&assignment.ID,
			&assignment.FacultyID,
			&assignment.CourseID,
			&assignment.Semester,
			&assignment.Year,
			&assignment.CreatedAt,
			&assignment.Course.ID,
			&assignment.Course.Code,
			&assignment.Course.Name,
			&assignment.Course.Description,
			&assignment.Course.Credits,
			&assignment.Course.DepartmentID,
			&assignment.Course.CreatedAt,
		); err != nil {
			return nil, wrapQueryError("list assignments", err)
		}
		assignments = append(assignments, assignment)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryError("list assignments", err)
	}

	return assignments, nil
}

// DeleteAssignmentsByFaculty removes all assignments for a faculty
// member inside the given transaction.
func (r *CourseRepository) DeleteAssignmentsByFaculty(ctx context.Context, tx pgx.Tx, facultyID uuid.UUID) error {
	sql, args, err := r.sb.Delete("faculty_courses").
		Where(squirrel.Eq{"faculty_id": facultyID}).
		ToSql()
	if err != nil {
		return wrapQueryError("delete assignments", err)
	}

	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		return wrapQueryError("delete assignments", err)
	}
	return nil
}
