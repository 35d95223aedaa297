package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feims/feims/internal/app/models/dto"
	"github.com/feims/feims/internal/app/services"
	"github.com/feims/feims/internal/middleware"
)

// CourseController handles course and teaching-assignment operations
type CourseController struct {
	courseService *services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService *services.CourseService) *CourseController {
	return &CourseController{courseService: courseService}
}

// CreateCourse handles course creation
// @Summary Create a course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCourseRequest true "Course information"
// @Success 201 {object} dto.APIResponse{data=models.Course}
// @Failure 409 {object} dto.ErrorResponse "Course code already exists"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if !bindJSON(ctx, &req) {
		return
	}

	course := req.ToModel()
	if err := c.courseService.Create(ctx, course); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(course))
}

// GetCourseByID retrieves one course
// @Summary Get a course
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} dto.APIResponse{data=models.Course}
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	course, err := c.courseService.Get(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(course))
}

// ListCourses retrieves courses
// @Summary List courses
// @Tags courses
// @Produce json
// @Param departmentId query string false "Filter by department"
// @Success 200 {object} dto.APIResponse{data=[]models.Course}
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	departmentID, ok := parseOptionalIDQuery(ctx, "departmentId")
	if !ok {
		return
	}

	courses, err := c.courseService.List(ctx, departmentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(courses))
}

// UpdateCourse applies a partial update
// @Summary Update a course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Param request body dto.UpdateCourseRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Course}
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateCourseRequest
	if !bindJSON(ctx, &req) {
		return
	}

	course, err := c.courseService.Update(ctx, id, req.Fields())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(course))
}

// DeleteCourse removes a course
// @Summary Delete a course
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.courseService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.SuccessResponse{Message: "course deleted"}))
}

// AssignFaculty records a teaching assignment
// @Summary Assign a faculty member to a course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AssignFacultyRequest true "Assignment"
// @Success 201 {object} dto.APIResponse{data=models.FacultyCourse}
// @Failure 409 {object} dto.ErrorResponse "Assignment already exists for that term"
// @Router /assignments [post]
func (c *CourseController) AssignFaculty(ctx *gin.Context) {
	var req dto.AssignFacultyRequest
	if !bindJSON(ctx, &req) {
		return
	}

	assignment := req.ToModel()
	if err := c.courseService.Assign(ctx, assignment); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(assignment))
}

// UnassignFaculty removes a teaching assignment
// @Summary Remove a teaching assignment
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Assignment ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Assignment not found"
// @Router /assignments/{id} [delete]
func (c *CourseController) UnassignFaculty(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.courseService.Unassign(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.SuccessResponse{Message: "assignment removed"}))
}

// ListFacultyAssignments retrieves a member's assignments
// @Summary List a faculty member's assignments
// @Tags courses
// @Produce json
// @Param id path string true "Faculty ID"
// @Success 200 {object} dto.APIResponse{data=[]models.FacultyCourse}
// @Router /faculty/{id}/assignments [get]
func (c *CourseController) ListFacultyAssignments(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	assignments, err := c.courseService.ListAssignments(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(assignments))
}
