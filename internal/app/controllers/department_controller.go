package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feims/feims/internal/app/models/dto"
	"github.com/feims/feims/internal/app/services"
	"github.com/feims/feims/internal/middleware"
)

// DepartmentController handles department-related operations
type DepartmentController struct {
	departmentService *services.DepartmentService
}

// NewDepartmentController creates a new DepartmentController
func NewDepartmentController(departmentService *services.DepartmentService) *DepartmentController {
	return &DepartmentController{departmentService: departmentService}
}

// CreateDepartment handles department creation
// @Summary Create a new department
// @Tags departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateDepartmentRequest true "Department information"
// @Success 201 {object} dto.APIResponse{data=models.Department}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Department code already exists"
// @Router /departments [post]
func (c *DepartmentController) CreateDepartment(ctx *gin.Context) {
	var req dto.CreateDepartmentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	department := req.ToModel()
	if err := c.departmentService.Create(ctx, department); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(department))
}

// GetDepartmentByID retrieves a department by ID
// @Summary Get department by ID
// @Description Retrieves one department; pass expand=faculties to include the member list
// @Tags departments
// @Produce json
// @Param id path string true "Department ID"
// @Param expand query string false "Set to faculties to expand members"
// @Success 200 {object} dto.APIResponse{data=models.Department}
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Router /departments/{id} [get]
func (c *DepartmentController) GetDepartmentByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var err error
	var department interface{}
	if ctx.Query("expand") == "faculties" {
		department, err = c.departmentService.GetWithFaculties(ctx, id)
	} else {
		department, err = c.departmentService.Get(ctx, id)
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(department))
}

// GetAllDepartments retrieves all departments
// @Summary Get all departments
// @Tags departments
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Department}
// @Router /departments [get]
func (c *DepartmentController) GetAllDepartments(ctx *gin.Context) {
	departments, err := c.departmentService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(departments))
}

// UpdateDepartment applies a partial update
// @Summary Update a department
// @Tags departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Department ID"
// @Param request body dto.UpdateDepartmentRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Department}
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Router /departments/{id} [put]
func (c *DepartmentController) UpdateDepartment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateDepartmentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	department, err := c.departmentService.Update(ctx, id, req.Fields())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(department))
}

// DeleteDepartment removes a department, detaching its members
// @Summary Delete a department
// @Description Deletes the department; its faculty and courses are kept and detached
// @Tags departments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Department ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Router /departments/{id} [delete]
func (c *DepartmentController) DeleteDepartment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.departmentService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.SuccessResponse{Message: "department deleted"}))
}
