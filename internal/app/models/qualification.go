package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/feims/feims/internal/pkg/apperrors"
	"github.com/feims/feims/internal/pkg/validation"
)

// Qualification is an academic degree held by a faculty member. It is
// owned by its faculty: it is deleted with the faculty row.
type Qualification struct {
	ID           uuid.UUID `json:"id" db:"id"`
	FacultyID    uuid.UUID `json:"facultyId" db:"faculty_id"`
	DegreeType   string    `json:"degreeType" db:"degree_type"`
	Institution  string    `json:"institution" db:"institution"`
	FieldOfStudy *string   `json:"fieldOfStudy,omitempty" db:"field_of_study"`
	Year         *int      `json:"year,omitempty" db:"year"`
	Remarks      *string   `json:"remarks,omitempty" db:"remarks"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// Validate checks a qualification before insert.
func (q *Qualification) Validate() error {
	if q.FacultyID == uuid.Nil {
		return apperrors.NewValidationError("faculty id is required")
	}
	if !validation.NonEmpty(q.DegreeType) {
		return apperrors.NewValidationError("degree type is required")
	}
	if !validation.NonEmpty(q.Institution) {
		return apperrors.NewValidationError("institution is required")
	}
	if !validation.ValidYear(q.Year) {
		return apperrors.NewValidationError("year is out of range")
	}
	return nil
}
