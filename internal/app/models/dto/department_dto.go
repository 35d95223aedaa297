package dto

import (
	"github.com/feims/feims/internal/app/models"
)

// CreateDepartmentRequest represents a department creation request
type CreateDepartmentRequest struct {
	Code        string  `json:"code" binding:"required" example:"CSE"`
	Name        string  `json:"name" binding:"required" example:"Computer Science and Engineering"`
	Description *string `json:"description,omitempty"`
}

// ToModel converts the request into a department model.
func (r *CreateDepartmentRequest) ToModel() *models.Department {
	return &models.Department{
		Code:        r.Code,
		Name:        r.Name,
		Description: r.Description,
	}
}

// UpdateDepartmentRequest represents a partial department update.
// Only the fields present in the request are written.
type UpdateDepartmentRequest struct {
	Code        *string `json:"code,omitempty"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Fields returns the set columns for a partial update.
func (r *UpdateDepartmentRequest) Fields() map[string]interface{} {
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
	return fields
}
