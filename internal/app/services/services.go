// Package services holds the business rules above the query layer:
// credential handling and token issuance, explicit cascade and
// orphaning policies, and composite profile assembly. Repositories
// never cascade on their own; every multi-row mutation here runs in a
// single transaction.
package services

import (
	"github.com/feims/feims/internal/app/repositories"
	"github.com/feims/feims/internal/config"
	"github.com/feims/feims/internal/db"
	"github.com/feims/feims/internal/pkg/auth"
	"github.com/feims/feims/internal/session"
)

// Services holds all the service instances
type Services struct {
	AuthService       *AuthService
	DepartmentService *DepartmentService
	FacultyService    *FacultyService
	CourseService     *CourseService
	DocumentService   *DocumentService
}

// NewServices initializes all services
func NewServices(
	repos *repositories.Repositories,
	database *db.PostgresDB,
	jwtService *auth.JWTService,
	cfg *config.Config,
	bus *session.Broadcaster,
) *Services {
	return &Services{
		AuthService:       NewAuthService(repos, database, jwtService, cfg, bus),
		DepartmentService: NewDepartmentService(repos, database),
		FacultyService:    NewFacultyService(repos, database),
		CourseService:     NewCourseService(repos),
		DocumentService:   NewDocumentService(repos),
	}
}
