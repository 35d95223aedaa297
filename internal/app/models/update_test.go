package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/feims/feims/internal/pkg/apperrors"
)

func TestValidateDepartmentUpdate(t *testing.T) {
	assert.NoError(t, ValidateDepartmentUpdate(map[string]interface{}{"name": "Physics"}))
	assert.NoError(t, ValidateDepartmentUpdate(map[string]interface{}{"code": "PHY", "name": "Physics"}))

	assert.ErrorIs(t, ValidateDepartmentUpdate(map[string]interface{}{}), apperrors.ErrValidation)
	assert.ErrorIs(t, ValidateDepartmentUpdate(map[string]interface{}{"name": "  "}), apperrors.ErrValidation)
	assert.ErrorIs(t, ValidateDepartmentUpdate(map[string]interface{}{"code": strings.Repeat("X", 50)}), apperrors.ErrValidation)
}

func TestValidateFacultyUpdate(t *testing.T) {
	assert.NoError(t, ValidateFacultyUpdate(map[string]interface{}{
		"name":             "Dr. Engfield",
		"email":            "dr.engfield@example.edu",
		"experience_years": 12,
	}))

	assert.ErrorIs(t, ValidateFacultyUpdate(map[string]interface{}{}), apperrors.ErrValidation)
	assert.ErrorIs(t, ValidateFacultyUpdate(map[string]interface{}{"email": "not-an-email"}), apperrors.ErrValidation)
	assert.ErrorIs(t, ValidateFacultyUpdate(map[string]interface{}{"experience_years": -1}), apperrors.ErrValidation)
	assert.ErrorIs(t, ValidateFacultyUpdate(map[string]interface{}{"name": ""}), apperrors.ErrValidation)

	// Columns not subject to a rule pass through untouched.
	assert.NoError(t, ValidateFacultyUpdate(map[string]interface{}{"bio": ""}))
}

func TestValidateCourseUpdate(t *testing.T) {
	assert.NoError(t, ValidateCourseUpdate(map[string]interface{}{"name": "Operating Systems", "credits": 3}))

	assert.ErrorIs(t, ValidateCourseUpdate(map[string]interface{}{}), apperrors.ErrValidation)
	assert.ErrorIs(t, ValidateCourseUpdate(map[string]interface{}{"code": ""}), apperrors.ErrValidation)
	assert.ErrorIs(t, ValidateCourseUpdate(map[string]interface{}{"credits": -3}), apperrors.ErrValidation)
}

func TestValidateQualificationUpdate(t *testing.T) {
	assert.NoError(t, ValidateQualificationUpdate(map[string]interface{}{"institution": "MIT", "year": 2010}))

	assert.ErrorIs(t, ValidateQualificationUpdate(map[string]interface{}{}), apperrors.ErrValidation)
	assert.ErrorIs(t, ValidateQualificationUpdate(map[string]interface{}{"degree_type": ""}), apperrors.ErrValidation)
	assert.ErrorIs(t, ValidateQualificationUpdate(map[string]interface{}{"year": 1200}), apperrors.ErrValidation)
}

func TestValidatePublicationUpdate(t *testing.T) {
	assert.NoError(t, ValidatePublicationUpdate(map[string]interface{}{"title": "On Directories", "year": 2024}))

	assert.ErrorIs(t, ValidatePublicationUpdate(map[string]interface{}{}), apperrors.ErrValidation)
	assert.ErrorIs(t, ValidatePublicationUpdate(map[string]interface{}{"title": " "}), apperrors.ErrValidation)
	assert.ErrorIs(t, ValidatePublicationUpdate(map[string]interface{}{"year": 3001}), apperrors.ErrValidation)
}
