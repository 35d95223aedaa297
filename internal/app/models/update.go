package models

import (
	"github.com/feims/feims/internal/pkg/apperrors"
	"github.com/feims/feims/internal/pkg/validation"
)

// ValidateDepartmentUpdate checks the set columns of a partial
// department update. An empty set is a validation error, not a no-op.
func ValidateDepartmentUpdate(fields map[string]interface{}) error {
	if len(fields) == 0 {
		return apperrors.NewValidationError("no fields to update")
	}
	if name, ok := fields["name"].(string); ok {
		if !validation.NonEmpty(name) {
			return apperrors.NewValidationError("department name is required")
		}
		if len(name) > validation.NameMaxLength {
			return apperrors.NewValidationError("department name is too long")
		}
	}
	if code, ok := fields["code"].(string); ok {
		if !validation.NonEmpty(code) {
			return apperrors.NewValidationError("department code is required")
		}
		if len(code) > validation.CodeMaxLength {
			return apperrors.NewValidationError("department code is too long")
		}
	}
	return nil
}

// ValidateFacultyUpdate checks the set columns of a partial faculty
// update.
func ValidateFacultyUpdate(fields map[string]interface{}) error {
	if len(fields) == 0 {
		return apperrors.NewValidationError("no fields to update")
	}
	if name, ok := fields["name"].(string); ok {
		if !validation.NonEmpty(name) {
			return apperrors.NewValidationError("faculty name is required")
		}
		if len(name) > validation.NameMaxLength {
			return apperrors.NewValidationError("faculty name is too long")
		}
	}
	if email, ok := fields["email"].(string); ok && !validation.ValidEmail(email) {
		return apperrors.ErrInvalidEmail
	}
	if years, ok := fields["experience_years"].(int); ok && years < 0 {
		return apperrors.NewValidationError("experience years must be non-negative")
	}
	return nil
}

// ValidateCourseUpdate checks the set columns of a partial course
// update.
func ValidateCourseUpdate(fields map[string]interface{}) error {
	if len(fields) == 0 {
		return apperrors.NewValidationError("no fields to update")
	}
	if code, ok := fields["code"].(string); ok {
		if !validation.NonEmpty(code) {
			return apperrors.NewValidationError("course code is required")
		}
		if len(code) > validation.CodeMaxLength {
			return apperrors.NewValidationError("course code is too long")
		}
	}
	if name, ok := fields["name"].(string); ok && !validation.NonEmpty(name) {
		return apperrors.NewValidationError("course name is required")
	}
	if credits, ok := fields["credits"].(int); ok && credits < 0 {
		return apperrors.NewValidationError("credits must be non-negative")
	}
	return nil
}

// ValidateQualificationUpdate checks the set columns of a partial
// qualification update.
func ValidateQualificationUpdate(fields map[string]interface{}) error {
	if len(fields) == 0 {
		return apperrors.NewValidationError("no fields to update")
	}
	if degree, ok := fields["degree_type"].(string); ok && !validation.NonEmpty(degree) {
		return apperrors.NewValidationError("degree type is required")
	}
	if inst, ok := fields["institution"].(string); ok && !validation.NonEmpty(inst) {
		return apperrors.NewValidationError("institution is required")
	}
	if year, ok := fields["year"].(int); ok && !validation.ValidYear(&year) {
		return apperrors.NewValidationError("year is out of range")
	}
	return nil
}

// ValidatePublicationUpdate checks the set columns of a partial
// publication update.
func ValidatePublicationUpdate(fields map[string]interface{}) error {
	if len(fields) == 0 {
		return apperrors.NewValidationError("no fields to update")
	}
	if title, ok := fields["title"].(string); ok && !validation.NonEmpty(title) {
		return apperrors.NewValidationError("publication title is required")
	}
	if year, ok := fields["year"].(int); ok && !validation.ValidYear(&year) {
		return apperrors.NewValidationError("year is out of range")
	}
	return nil
}
