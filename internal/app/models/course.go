package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/feims/feims/internal/pkg/apperrors"
	"github.com/feims/feims/internal/pkg/validation"
)

// Course represents a course offered by a department.
type Course struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	Code         string     `json:"code" db:"code"`
	Name         string     `json:"name" db:"name"`
	Description  *string    `json:"description,omitempty" db:"description"`
	Credits      *int       `json:"credits,omitempty" db:"credits"`
	DepartmentID *uuid.UUID `json:"departmentId,omitempty" db:"department_id"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`

	Department *Department `json:"department,omitempty"`
}

// Validate checks a course before insert.
func (c *Course) Validate() error {
	if !validation.NonEmpty(c.Code) {
		return apperrors.NewValidationError("course code is required")
	}
	if len(c.Code) > validation.CodeMaxLength {
		return apperrors.NewValidationError("course code is too long")
	}
	if !validation.NonEmpty(c.Name) {
		return apperrors.NewValidationError("course name is required")
	}
	if !validation.NonNegative(c.Credits) {
		return apperrors.NewValidationError("credits must be non-negative")
	}
	return nil
}

// FacultyCourse links a faculty member to a course they teach in a
// given semester and year.
type FacultyCourse struct {
	ID        uuid.UUID `json:"id" db:"id"`
	FacultyID uuid.UUID `json:"facultyId" db:"faculty_id"`
	CourseID  uuid.UUID `json:"courseId" db:"course_id"`
	Semester  *string   `json:"semester,omitempty" db:"semester"`
	Year      *int      `json:"year,omitempty" db:"year"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	Course  *Course  `json:"course,omitempty"`
	Faculty *Faculty `json:"faculty,omitempty"`
}

// Validate requires both sides of the link and a sane year.
func (fc *FacultyCourse) Validate() error {
	if fc.FacultyID == uuid.Nil {
		return apperrors.NewValidationError("faculty id is required")
	}
	if fc.CourseID == uuid.Nil {
		return apperrors.NewValidationError("course id is required")
	}
	if !validation.ValidYear(fc.Year) {
		return apperrors.NewValidationError("year is out of range")
	}
	return nil
}
