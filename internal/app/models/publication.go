package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/feims/feims/internal/pkg/apperrors"
	"github.com/feims/feims/internal/pkg/validation"
)

// Publication is a research output attributed to a faculty member.
// Like qualifications, it lives and dies with its faculty.
type Publication struct {
	ID              uuid.UUID `json:"id" db:"id"`
	FacultyID       uuid.UUID `json:"facultyId" db:"faculty_id"`
	Title           string    `json:"title" db:"title"`
	Venue           *string   `json:"venue,omitempty" db:"venue"`
	Year            *int      `json:"year,omitempty" db:"year"`
	DOI             *string   `json:"doi,omitempty" db:"doi"`
	URL             *string   `json:"url,omitempty" db:"url"`
	PublicationType *string   `json:"publicationType,omitempty" db:"publication_type"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
}

// Validate checks a publication before insert.
func (p *Publication) Validate() error {
	if p.FacultyID == uuid.Nil {
		return apperrors.NewValidationError("faculty id is required")
	}
	if !validation.NonEmpty(p.Title) {
		return apperrors.NewValidationError("publication title is required")
	}
	if !validation.ValidYear(p.Year) {
		return apperrors.NewValidationError("year is out of range")
	}
	return nil
}
