package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/feims/feims/internal/app/models"
	"github.com/feims/feims/internal/app/repositories"
	"github.com/feims/feims/internal/db"
	"github.com/feims/feims/internal/pkg/apperrors"
	"github.com/feims/feims/internal/pkg/logger"
)

// FacultyProfile is the composite read a faculty detail page needs:
// the member with their department, plus their qualifications,
// publications and course assignments.
type FacultyProfile struct {
	Faculty        *models.Faculty
	Qualifications []*models.Qualification
	Publications   []*models.Publication
	Assignments    []*models.FacultyCourse
}

// FacultyService owns the faculty aggregate. A faculty member is the
// aggregation root for qualifications, publications, documents and
// assignments; deleting one removes all of them in one transaction.
type FacultyService struct {
	faculties      *repositories.FacultyRepository
	qualifications *repositories.QualificationRepository
	publications   *repositories.PublicationRepository
	documents      *repositories.DocumentRepository
	courses        *repositories.CourseRepository
	db             *db.PostgresDB
	log            zerolog.Logger
}

// NewFacultyService creates a new FacultyService
func NewFacultyService(repos *repositories.Repositories, database *db.PostgresDB) *FacultyService {
	return &FacultyService{
		faculties:      repos.FacultyRepository,
		qualifications: repos.QualificationRepository,
		publications:   repos.PublicationRepository,
		documents:      repos.DocumentRepository,
		courses:        repos.CourseRepository,
		db:             database,
		log:            logger.With("faculty"),
	}
}

// Create inserts a new faculty member. A taken email is rejected
// before the insert so the caller gets the domain conflict rather
// than a raw constraint error.
func (s *FacultyService) Create(ctx context.Context, faculty *models.Faculty) error {
	taken, err := s.faculties.ExistsByEmail(ctx, faculty.Email)
	if err != nil {
		return err
	}
	if taken {
		return apperrors.NewConflictError("faculty member with this email already exists")
	}
	return s.faculties.Create(ctx, faculty)
}

// Get returns one faculty member with the department expanded when
// one is assigned.
func (s *FacultyService) Get(ctx context.Context, id uuid.UUID) (*models.Faculty, error) {
	return s.faculties.GetByID(ctx, id)
}

// GetProfile assembles the composite detail view. The one-to-many
// expansions run concurrently; any failure fails the whole read.
func (s *FacultyService) GetProfile(ctx context.Context, id uuid.UUID) (*FacultyProfile, error) {
	faculty, err := s.faculties.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	profile := &FacultyProfile{Faculty: faculty}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		profile.Qualifications, err = s.qualifications.ListByFaculty(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		profile.Publications, err = s.publications.ListByFaculty(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		profile.Assignments, err = s.courses.ListAssignmentsByFaculty(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return profile, nil
}

// List returns faculty matching the filter, ordered by name.
func (s *FacultyService) List(ctx context.Context, filter repositories.FacultyFilter) ([]*models.Faculty, error) {
	return s.faculties.List(ctx, filter)
}

// Update applies a partial update.
func (s *FacultyService) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*models.Faculty, error) {
	if err := models.ValidateFacultyUpdate(fields); err != nil {
		return nil, err
	}
	return s.faculties.Update(ctx, id, fields)
}

// Delete removes a faculty member together with their owned records.
// The cascade is explicit and transactional: qualifications,
// publications, extracted documents and course assignments go first,
// then the member row, or nothing changes at all.
func (s *FacultyService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.qualifications.DeleteByFaculty(ctx, tx, id); err != nil {
			return err
		}
		if err := s.publications.DeleteByFaculty(ctx, tx, id); err != nil {
			return err
		}
		if err := s.documents.DeleteByFaculty(ctx, tx, id); err != nil {
			return err
		}
		if err := s.courses.DeleteAssignmentsByFaculty(ctx, tx, id); err != nil {
			return err
		}
		return s.faculties.Delete(ctx, tx, id)
	})
	if err != nil {
		return err
	}

	s.log.Info().Str("faculty_id", id.String()).Msg("faculty member and owned records deleted")
	return nil
}

// AddQualification attaches a qualification to a faculty member.
func (s *FacultyService) AddQualification(ctx context.Context, qualification *models.Qualification) error {
	return s.qualifications.Create(ctx, qualification)
}

// UpdateQualification applies a partial update to a qualification.
func (s *FacultyService) UpdateQualification(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*models.Qualification, error) {
	if err := models.ValidateQualificationUpdate(fields); err != nil {
		return nil, err
	}
	return s.qualifications.Update(ctx, id, fields)
}

// DeleteQualification removes a single qualification.
func (s *FacultyService) DeleteQualification(ctx context.Context, id uuid.UUID) error {
	return s.qualifications.Delete(ctx, id)
}

// AddPublication attaches a publication to a faculty member.
func (s *FacultyService) AddPublication(ctx context.Context, publication *models.Publication) error {
	return s.publications.Create(ctx, publication)
}

// UpdatePublication applies a partial update to a publication.
func (s *FacultyService) UpdatePublication(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*models.Publication, error) {
	if err := models.ValidatePublicationUpdate(fields); err != nil {
		return nil, err
	}
	return s.publications.Update(ctx, id, fields)
}

// DeletePublication removes a single publication.
func (s *FacultyService) DeletePublication(ctx context.Context, id uuid.UUID) error {
	return s.publications.Delete(ctx, id)
}
