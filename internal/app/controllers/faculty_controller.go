package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feims/feims/internal/app/models/dto"
	"github.com/feims/feims/internal/app/repositories"
	"github.com/feims/feims/internal/app/services"
	"github.com/feims/feims/internal/middleware"
)

// FacultyController handles faculty-member operations
type FacultyController struct {
	facultyService *services.FacultyService
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(facultyService *services.FacultyService) *FacultyController {
	return &FacultyController{facultyService: facultyService}
}

// CreateFaculty handles faculty creation
// @Summary Create a faculty member
// @Tags faculty
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateFacultyRequest true "Faculty information"
// @Success 201 {object} dto.APIResponse{data=models.Faculty}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Email already in use"
// @Router /faculty [post]
func (c *FacultyController) CreateFaculty(ctx *gin.Context) {
	var req dto.CreateFacultyRequest
	if !bindJSON(ctx, &req) {
		return
	}

	faculty := req.ToModel()
	if err := c.facultyService.Create(ctx, faculty); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(faculty))
}

// GetFacultyByID retrieves the composite faculty profile
// @Summary Get a faculty member
// @Description Returns the member with department, qualifications, publications and assignments
// @Tags faculty
// @Produce json
// @Param id path string true "Faculty ID"
// @Success 200 {object} dto.APIResponse{data=services.FacultyProfile}
// @Failure 404 {object} dto.ErrorResponse "Faculty member not found"
// @Router /faculty/{id} [get]
func (c *FacultyController) GetFacultyByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	profile, err := c.facultyService.GetProfile(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(profile))
}

// ListFaculty retrieves faculty members
// @Summary List faculty members
// @Description Supports free-text search (q) over name, email and department name, and a department filter
// @Tags faculty
// @Produce json
// @Param q query string false "Free-text search"
// @Param departmentId query string false "Filter by department"
// @Success 200 {object} dto.APIResponse{data=[]models.Faculty}
// @Router /faculty [get]
func (c *FacultyController) ListFaculty(ctx *gin.Context) {
	departmentID, ok := parseOptionalIDQuery(ctx, "departmentId")
	if !ok {
		return
	}

	filter := repositories.FacultyFilter{
		Search:       ctx.Query("q"),
		DepartmentID: departmentID,
	}
	faculties, err := c.facultyService.List(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(faculties))
}

// UpdateFaculty applies a partial update
// @Summary Update a faculty member
// @Tags faculty
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Faculty ID"
// @Param request body dto.UpdateFacultyRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Faculty}
// @Failure 404 {object} dto.ErrorResponse "Faculty member not found"
// @Router /faculty/{id} [put]
func (c *FacultyController) UpdateFaculty(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateFacultyRequest
	if !bindJSON(ctx, &req) {
		return
	}

	faculty, err := c.facultyService.Update(ctx, id, req.Fields())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(faculty))
}

// DeleteFaculty removes a member and their owned records
// @Summary Delete a faculty member
// @Description Deletes the member together with qualifications, publications, documents and assignments
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Param id path string true "Faculty ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Faculty member not found"
// @Router /faculty/{id} [delete]
func (c *FacultyController) DeleteFaculty(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.facultyService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.SuccessResponse{Message: "faculty member deleted"}))
}

// AddQualification attaches a qualification
// @Summary Add a qualification
// @Tags faculty
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Faculty ID"
// @Param request body dto.CreateQualificationRequest true "Qualification"
// @Success 201 {object} dto.APIResponse{data=models.Qualification}
// @Failure 404 {object} dto.ErrorResponse "Faculty member not found"
// @Router /faculty/{id}/qualifications [post]
func (c *FacultyController) AddQualification(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreateQualificationRequest
	if !bindJSON(ctx, &req) {
		return
	}

	qualification := req.ToModel(id)
	if err := c.facultyService.AddQualification(ctx, qualification); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(qualification))
}

// UpdateQualification applies a partial update to a qualification
// @Summary Update a qualification
// @Tags faculty
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param qualificationId path string true "Qualification ID"
// @Param request body dto.UpdateQualificationRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Qualification}
// @Failure 404 {object} dto.ErrorResponse "Qualification not found"
// @Router /qualifications/{qualificationId} [put]
func (c *FacultyController) UpdateQualification(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "qualificationId")
	if !ok {
		return
	}

	var req dto.UpdateQualificationRequest
	if !bindJSON(ctx, &req) {
		return
	}

	qualification, err := c.facultyService.UpdateQualification(ctx, id, req.Fields())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(qualification))
}

// DeleteQualification removes a qualification
// @Summary Delete a qualification
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Param qualificationId path string true "Qualification ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /qualifications/{qualificationId} [delete]
func (c *FacultyController) DeleteQualification(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "qualificationId")
	if !ok {
		return
	}

	if err := c.facultyService.DeleteQualification(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.SuccessResponse{Message: "qualification deleted"}))
}

// AddPublication attaches a publication
// @Summary Add a publication
// @Tags faculty
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Faculty ID"
// @Param request body dto.CreatePublicationRequest true "Publication"
// @Success 201 {object} dto.APIResponse{data=models.Publication}
// @Failure 404 {object} dto.ErrorResponse "Faculty member not found"
// @Router /faculty/{id}/publications [post]
func (c *FacultyController) AddPublication(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreatePublicationRequest
	if !bindJSON(ctx, &req) {
		return
	}

	publication := req.ToModel(id)
	if err := c.facultyService.AddPublication(ctx, publication); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(publication))
}

// UpdatePublication applies a partial update to a publication
// @Summary Update a publication
// @Tags faculty
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param publicationId path string true "Publication ID"
// @Param request body dto.UpdatePublicationRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Publication}
// @Failure 404 {object} dto.ErrorResponse "Publication not found"
// @Router /publications/{publicationId} [put]
func (c *FacultyController) UpdatePublication(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "publicationId")
	if !ok {
		return
	}

	var req dto.UpdatePublicationRequest
	if !bindJSON(ctx, &req) {
		return
	}

	publication, err := c.facultyService.UpdatePublication(ctx, id, req.Fields())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(publication))
}

// DeletePublication removes a publication
// @Summary Delete a publication
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Param publicationId path string true "Publication ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /publications/{publicationId} [delete]
func (c *FacultyController) DeletePublication(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "publicationId")
	if !ok {
		return
	}

	if err := c.facultyService.DeletePublication(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.SuccessResponse{Message: "publication deleted"}))
}
