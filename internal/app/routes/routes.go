package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feims/feims/internal/app/controllers"
	"github.com/feims/feims/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	departmentController *controllers.DepartmentController,
	facultyController *controllers.FacultyController,
	courseController *controllers.CourseController,
	documentController *controllers.DocumentController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API version group
	v1 := router.Group("/api/v1")

	// --- Public directory routes ---
	departments := v1.Group("/departments")
	{
		departments.GET("", departmentController.GetAllDepartments)
		departments.GET("/:id", departmentController.GetDepartmentByID)
	}

	faculty := v1.Group("/faculty")
	{
		faculty.GET("", facultyController.ListFaculty)
		faculty.GET("/:id", facultyController.GetFacultyByID)
		faculty.GET("/:id/assignments", courseController.ListFacultyAssignments)
	}

	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.ListCourses)
		courses.GET("/:id", courseController.GetCourseByID)
	}

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/signup", authController.Register)
		auth.POST("/signin", authController.Login)
		auth.POST("/refresh", authController.Refresh)
		auth.POST("/confirm", authController.Confirm)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/signout", authController.Logout)
		authenticated.GET("/auth/me", authController.Me)
		authenticated.PUT("/auth/me", authController.UpdateMe)

		authenticated.POST("/departments", departmentController.CreateDepartment)
		authenticated.PUT("/departments/:id", departmentController.UpdateDepartment)
		authenticated.DELETE("/departments/:id", departmentController.DeleteDepartment)

		authenticated.POST("/faculty", facultyController.CreateFaculty)
		authenticated.PUT("/faculty/:id", facultyController.UpdateFaculty)
		authenticated.DELETE("/faculty/:id", facultyController.DeleteFaculty)
		authenticated.POST("/faculty/:id/qualifications", facultyController.AddQualification)
		authenticated.PUT("/qualifications/:qualificationId", facultyController.UpdateQualification)
		authenticated.DELETE("/qualifications/:qualificationId", facultyController.DeleteQualification)
		authenticated.POST("/faculty/:id/publications", facultyController.AddPublication)
		authenticated.PUT("/publications/:publicationId", facultyController.UpdatePublication)
		authenticated.DELETE("/publications/:publicationId", facultyController.DeletePublication)

		authenticated.POST("/courses", courseController.CreateCourse)
		authenticated.PUT("/courses/:id", courseController.UpdateCourse)
		authenticated.DELETE("/courses/:id", courseController.DeleteCourse)

		authenticated.POST("/assignments", courseController.AssignFaculty)
		authenticated.DELETE("/assignments/:id", courseController.UnassignFaculty)

		authenticated.POST("/documents", documentController.CreateDocument)
		authenticated.GET("/documents", documentController.ListDocuments)
		authenticated.GET("/documents/:id", documentController.GetDocumentByID)
		authenticated.DELETE("/documents/:id", documentController.DeleteDocument)
	}
}
