package models

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/feims/feims/internal/pkg/apperrors"
	"github.com/feims/feims/internal/pkg/validation"
)

// Faculty represents a faculty member. A member may be unassigned, in
// which case DepartmentID is nil.
type Faculty struct {
	ID              uuid.UUID  `json:"id" db:"id"`
	Name            string     `json:"name" db:"name"`
	Email           string     `json:"email" db:"email"`
	Designation     *string    `json:"designation,omitempty" db:"designation"`
	ExperienceYears *int       `json:"experienceYears,omitempty" db:"experience_years"`
	Phone           *string    `json:"phone,omitempty" db:"phone"`
	Bio             *string    `json:"bio,omitempty" db:"bio"`
	ProfilePhotoURL *string    `json:"profilePhotoUrl,omitempty" db:"profile_photo_url"`
	DepartmentID    *uuid.UUID `json:"departmentId,omitempty" db:"department_id"`
	CreatedAt       time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time  `json:"updatedAt" db:"updated_at"`

	// Department is populated by the many-to-one composite expansion.
	// It is nil exactly when DepartmentID is nil.
	Department *Department `json:"department,omitempty"`
}

// Validate checks a faculty member before insert or update.
func (f *Faculty) Validate() error {
	if !validation.NonEmpty(f.Name) {
		return apperrors.NewValidationError("faculty name is required")
	}
	if len(f.Name) > validation.NameMaxLength {
		return apperrors.NewValidationError("faculty name is too long")
	}
	if !validation.ValidEmail(f.Email) {
		return apperrors.ErrInvalidEmail
	}
	if !validation.NonNegative(f.ExperienceYears) {
		return apperrors.NewValidationError("experience years must be non-negative")
	}
	return nil
}

// MatchesSearch is the directory's free-text matching rule: the query
// matches when it is a case-insensitive substring of the member's
// name, email, or department name. The repository pushes the same rule
// into SQL; this form is the reference semantics.
func (f *Faculty) MatchesSearch(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(f.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(f.Email), q) {
		return true
	}
	if f.Department != nil && strings.Contains(strings.ToLower(f.Department.Name), q) {
		return true
	}
	return false
}
