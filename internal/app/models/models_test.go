package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feims/feims/internal/pkg/apperrors"
)

func TestDepartmentValidate(t *testing.T) {
	valid := Department{Code: "CSE", Name: "Computer Science and Engineering"}
	assert.NoError(t, valid.Validate())

	noCode := Department{Name: "Computer Science and Engineering"}
	assert.ErrorIs(t, noCode.Validate(), apperrors.ErrValidation)

	noName := Department{Code: "CSE"}
	assert.ErrorIs(t, noName.Validate(), apperrors.ErrValidation)

	longCode := Department{Code: "THIS-CODE-IS-FAR-TOO-LONG", Name: "X"}
	assert.ErrorIs(t, longCode.Validate(), apperrors.ErrValidation)
}

func TestCourseValidate(t *testing.T) {
	valid := Course{Code: "CSE-301", Name: "Operating Systems", Credits: intPtr(3)}
	assert.NoError(t, valid.Validate())

	negative := Course{Code: "CSE-301", Name: "Operating Systems", Credits: intPtr(-3)}
	assert.ErrorIs(t, negative.Validate(), apperrors.ErrValidation)

	noName := Course{Code: "CSE-301"}
	assert.ErrorIs(t, noName.Validate(), apperrors.ErrValidation)
}

func TestFacultyCourseValidate(t *testing.T) {
	valid := FacultyCourse{FacultyID: uuid.New(), CourseID: uuid.New(), Year: intPtr(2026)}
	require.NoError(t, valid.Validate())

	noCourse := FacultyCourse{FacultyID: uuid.New()}
	assert.ErrorIs(t, noCourse.Validate(), apperrors.ErrValidation)

	badYear := FacultyCourse{FacultyID: uuid.New(), CourseID: uuid.New(), Year: intPtr(1234)}
	assert.ErrorIs(t, badYear.Validate(), apperrors.ErrValidation)
}

func TestQualificationValidate(t *testing.T) {
	valid := Qualification{FacultyID: uuid.New(), DegreeType: "PhD", Institution: "MIT", Year: intPtr(2010)}
	require.NoError(t, valid.Validate())

	noInstitution := Qualification{FacultyID: uuid.New(), DegreeType: "PhD"}
	assert.ErrorIs(t, noInstitution.Validate(), apperrors.ErrValidation)
}

func TestPublicationValidate(t *testing.T) {
	valid := Publication{FacultyID: uuid.New(), Title: "On Directory Consistency"}
	require.NoError(t, valid.Validate())

	noTitle := Publication{FacultyID: uuid.New()}
	assert.ErrorIs(t, noTitle.Validate(), apperrors.ErrValidation)
}

func TestExtractedDocumentValidate(t *testing.T) {
	valid := ExtractedDocument{FileName: "cv.pdf", FileHash: "9f86d081"}
	require.NoError(t, valid.Validate())

	noHash := ExtractedDocument{FileName: "cv.pdf"}
	assert.ErrorIs(t, noHash.Validate(), apperrors.ErrValidation)
}

func TestProfileValidate(t *testing.T) {
	valid := Profile{ID: uuid.New(), Name: "Dr. Engfield"}
	require.NoError(t, valid.Validate())

	noID := Profile{Name: "Dr. Engfield"}
	assert.ErrorIs(t, noID.Validate(), apperrors.ErrValidation)

	noName := Profile{ID: uuid.New()}
	assert.ErrorIs(t, noName.Validate(), apperrors.ErrValidation)
}
