package routes

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/feims/feims/internal/app/controllers"
	"github.com/feims/feims/internal/middleware"
)

func registeredRoutes(t *testing.T) map[string]bool {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()

	SetupRouter(router,
		controllers.NewAuthController(nil),
		controllers.NewDepartmentController(nil),
		controllers.NewFacultyController(nil),
		controllers.NewCourseController(nil),
		controllers.NewDocumentController(nil),
		middleware.NewAuthMiddleware(nil),
	)

	routes := map[string]bool{}
	for _, r := range router.Routes() {
		routes[r.Method+" "+r.Path] = true
	}
	return routes
}

func TestPublicAndAuthRoutesRegistered(t *testing.T) {
	routes := registeredRoutes(t)

	public := []string{
		"GET /health",
		"GET /api/v1/departments",
		"GET /api/v1/departments/:id",
		"GET /api/v1/faculty",
		"GET /api/v1/faculty/:id",
		"GET /api/v1/faculty/:id/assignments",
		"GET /api/v1/courses",
		"GET /api/v1/courses/:id",
	}
	auth := []string{
		"POST /api/v1/auth/signup",
		"POST /api/v1/auth/signin",
		"POST /api/v1/auth/refresh",
		"POST /api/v1/auth/confirm",
		"POST /api/v1/auth/signout",
		"GET /api/v1/auth/me",
		"PUT /api/v1/auth/me",
	}
	for _, route := range append(public, auth...) {
		assert.True(t, routes[route], "missing route %s", route)
	}
}

func TestMutationRoutesRegistered(t *testing.T) {
	routes := registeredRoutes(t)

	for _, route := range []string{
		"POST /api/v1/departments",
		"PUT /api/v1/departments/:id",
		"DELETE /api/v1/departments/:id",
		"POST /api/v1/faculty",
		"PUT /api/v1/faculty/:id",
		"DELETE /api/v1/faculty/:id",
		"POST /api/v1/faculty/:id/qualifications",
		"PUT /api/v1/qualifications/:qualificationId",
		"DELETE /api/v1/qualifications/:qualificationId",
		"POST /api/v1/faculty/:id/publications",
		"PUT /api/v1/publications/:publicationId",
		"DELETE /api/v1/publications/:publicationId",
		"POST /api/v1/courses",
		"PUT /api/v1/courses/:id",
		"DELETE /api/v1/courses/:id",
		"POST /api/v1/assignments",
		"DELETE /api/v1/assignments/:id",
		"POST /api/v1/documents",
		"GET /api/v1/documents",
		"GET /api/v1/documents/:id",
		"DELETE /api/v1/documents/:id",
	} {
		assert.True(t, routes[route], "missing route %s", route)
	}
}
