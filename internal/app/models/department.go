package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/feims/feims/internal/pkg/apperrors"
	"github.com/feims/feims/internal/pkg/validation"
)

// Department represents an academic department.
type Department struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Code        string    `json:"code" db:"code"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description,omitempty" db:"description"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`

	// Faculties is populated by the one-to-many composite expansion.
	// It is never nil on an expanded read, even when empty.
	Faculties []*Faculty `json:"faculties,omitempty"`
}

// Validate rejects a department with a missing name or code.
func (d *Department) Validate() error {
	if !validation.NonEmpty(d.Code) {
		return apperrors.NewValidationError("department code is required")
	}
	if len(d.Code) > validation.CodeMaxLength {
		return apperrors.NewValidationError("department code is too long")
	}
	if !validation.NonEmpty(d.Name) {
		return apperrors.NewValidationError("department name is required")
	}
	if len(d.Name) > validation.NameMaxLength {
		return apperrors.NewValidationError("department name is too long")
	}
	return nil
}
