package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/feims/feims/internal/app/models"
	"github.com/feims/feims/internal/app/repositories"
	"github.com/feims/feims/internal/db"
	"github.com/feims/feims/internal/pkg/logger"
)

// DepartmentService owns the department aggregate and its deletion
// policy: dependents are released, never deleted.
type DepartmentService struct {
	departments *repositories.DepartmentRepository
	db          *db.PostgresDB
	log         zerolog.Logger
}

// NewDepartmentService creates a new DepartmentService
func NewDepartmentService(repos *repositories.Repositories, database *db.PostgresDB) *DepartmentService {
	return &DepartmentService{
		departments: repos.DepartmentRepository,
		db:          database,
		log:         logger.With("departments"),
	}
}

// Create inserts a new department.
func (s *DepartmentService) Create(ctx context.Context, department *models.Department) error {
	return s.departments.Create(ctx, department)
}

// Get returns one department by id.
func (s *DepartmentService) Get(ctx context.Context, id uuid.UUID) (*models.Department, error) {
	return s.departments.GetByID(ctx, id)
}

// GetWithFaculties returns a department with its member list
// expanded. A department with no members carries an empty list.
func (s *DepartmentService) GetWithFaculties(ctx context.Context, id uuid.UUID) (*models.Department, error) {
	return s.departments.GetWithFaculties(ctx, id)
}

// List returns all departments ordered by name.
func (s *DepartmentService) List(ctx context.Context) ([]*models.Department, error) {
	return s.departments.GetAll(ctx)
}

// Update applies a partial update.
func (s *DepartmentService) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*models.Department, error) {
	if err := models.ValidateDepartmentUpdate(fields); err != nil {
		return nil, err
	}
	return s.departments.Update(ctx, id, fields)
}

// Delete removes a department. Faculty and courses that referenced it
// are kept and detached (department_id set NULL) in the same
// transaction, so a failed delete leaves every row untouched.
func (s *DepartmentService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.departments.ReleaseDependents(ctx, tx, id); err != nil {
			return err
		}
		return s.departments.DeleteInTx(ctx, tx, id)
	})
	if err != nil {
		return err
	}

	s.log.Info().Str("department_id", id.String()).Msg("department deleted, dependents released")
	return nil
}
