// Package repositories is the typed query layer over the relational
// store. Every operation validates its input against the schema model
// before writing, translates driver errors into the application error
// taxonomy at this boundary, and runs under a bounded request timeout.
// Composite reads resolve declared relationships into nested objects
// (many-to-one) or arrays (one-to-many). No operation cascades
// implicitly; owners decide what to delete.
package repositories

import (
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/feims/feims/internal/db"
	"github.com/feims/feims/internal/pkg/apperrors"
	"github.com/feims/feims/internal/pkg/dberrors"
)

// Repositories holds all the repository instances
type Repositories struct {
	DepartmentRepository    *DepartmentRepository
	FacultyRepository       *FacultyRepository
	CourseRepository        *CourseRepository
	QualificationRepository *QualificationRepository
	PublicationRepository   *PublicationRepository
	DocumentRepository      *DocumentRepository
	ProfileRepository       *ProfileRepository
	UserRepository          *UserRepository
	TokenRepository         *TokenRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		DepartmentRepository:    NewDepartmentRepository(database),
		FacultyRepository:       NewFacultyRepository(database),
		CourseRepository:        NewCourseRepository(database),
		QualificationRepository: NewQualificationRepository(database),
		PublicationRepository:   NewPublicationRepository(database),
		DocumentRepository:      NewDocumentRepository(database),
		ProfileRepository:       NewProfileRepository(database),
		UserRepository:          NewUserRepository(database),
		TokenRepository:         NewTokenRepository(database),
	}
}

// statementBuilder returns the postgres-flavored squirrel builder used
// by every repository.
func statementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// wrapQueryError translates transport failures into the taxonomy's
// connection error and CHECK violations into validation errors, and
// wraps everything else with the operation name. pgx.ErrNoRows and
// unique/FK violations are handled per call site, where the right
// domain error is known.
func wrapQueryError(op string, err error) error {
	if dberrors.IsConnectionError(err) {
		return apperrors.NewConnectionError(fmt.Sprintf("%s: remote store unreachable or timed out", op))
	}
	if dberrors.IsCheckViolation(err) {
		return apperrors.NewValidationError(fmt.Sprintf("%s: value rejected by a schema constraint", op))
	}
	return fmt.Errorf("%s: %w", op, err)
}
