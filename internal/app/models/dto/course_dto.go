package dto

import (
	"github.com/google/uuid"

	"github.com/feims/feims/internal/app/models"
)

// CreateCourseRequest represents a course creation request
type CreateCourseRequest struct {
	Code         string     `json:"code" binding:"required" example:"CSE-301"`
	Name         string     `json:"name" binding:"required" example:"Operating Systems"`
	Description  *string    `json:"description,omitempty"`
	Credits      *int       `json:"credits,omitempty" example:"3"`
	DepartmentID *uuid.UUID `json:"departmentId,omitempty"`
}

// ToModel converts the request into a course model.
func (r *CreateCourseRequest) ToModel() *models.Course {
	return &models.Course{
		Code:         r.Code,
		Name:         r.Name,
		Description:  r.Description,
		Credits:      r.Credits,
		DepartmentID: r.DepartmentID,
	}
}

// UpdateCourseRequest represents a partial course update. Only the
// fields present in the request are written.
type UpdateCourseRequest struct {
	Code         *string    `json:"code,omitempty"`
	Name         *string    `json:"name,omitempty"`
	Description  *string    `json:"description,omitempty"`
	Credits      *int       `json:"credits,omitempty"`
	DepartmentID *uuid.UUID `json:"departmentId,omitempty"`
}

// Fields returns the set columns for a partial update.
func (r *UpdateCourseRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.Code != nil {
		fields["code"] = *r.Code
	}
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	if r.Credits != nil {
		fields["credits"] = *r.Credits
	}
	if r.DepartmentID != nil {
		fields["department_id"] = *r.DepartmentID
	}
	return fields
}

// AssignFacultyRequest records that a faculty member teaches a course
// in a term.
type AssignFacultyRequest struct {
	FacultyID uuid.UUID `json:"facultyId" binding:"required"`
	CourseID  uuid.UUID `json:"courseId" binding:"required"`
	Semester  *string   `json:"semester,omitempty" example:"Fall"`
	Year      *int      `json:"year,omitempty" example:"2026"`
}

// ToModel converts the request into an assignment model.
func (r *AssignFacultyRequest) ToModel() *models.FacultyCourse {
	return &models.FacultyCourse{
		FacultyID: r.FacultyID,
		CourseID:  r.CourseID,
		Semester:  r.Semester,
		Year:      r.Year,
	}
}
