package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/feims/feims/internal/app/models"
	"github.com/feims/feims/internal/app/repositories"
)

// CourseService owns courses and teaching assignments.
type CourseService struct {
	courses *repositories.CourseRepository
}

// NewCourseService creates a new CourseService
func NewCourseService(repos *repositories.Repositories) *CourseService {
	return &CourseService{courses: repos.CourseRepository}
}

// Create inserts a new course.
func (s *CourseService) Create(ctx context.Context, course *models.Course) error {
	return s.courses.Create(ctx, course)
}

// Get returns one course by id.
func (s *CourseService) Get(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	return s.courses.GetByID(ctx, id)
}

// List returns courses, optionally narrowed to one department.
func (s *CourseService) List(ctx context.Context, departmentID *uuid.UUID) ([]*models.Course, error) {
	return s.courses.List(ctx, departmentID)
}

// Update applies a partial update.
func (s *CourseService) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*models.Course, error) {
	if err := models.ValidateCourseUpdate(fields); err != nil {
		return nil, err
	}
	return s.courses.Update(ctx, id, fields)
}

// Delete removes a course.
func (s *CourseService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.courses.Delete(ctx, id)
}

// Assign records that a faculty member teaches a course in a term.
// Repeating the same assignment is a conflict.
func (s *CourseService) Assign(ctx context.Context, assignment *models.FacultyCourse) error {
	return s.courses.AssignFaculty(ctx, assignment)
}

// Unassign removes a teaching assignment.
func (s *CourseService) Unassign(ctx context.Context, assignmentID uuid.UUID) error {
	return s.courses.UnassignFaculty(ctx, assignmentID)
}

// ListAssignments returns a faculty member's assignments with the
// course expanded, newest term first.
func (s *CourseService) ListAssignments(ctx context.Context, facultyID uuid.UUID) ([]*models.FacultyCourse, error) {
	return s.courses.ListAssignmentsByFaculty(ctx, facultyID)
}
