package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/feims/feims/internal/pkg/apperrors"
	"github.com/feims/feims/internal/pkg/validation"
)

// ExtractedDocument is the record shape produced by the external
// document-extraction collaborator. The directory only accepts and
// persists these rows; extraction itself happens elsewhere. FileHash
// is the intended dedup key, though uniqueness is not enforced by the
// schema.
type ExtractedDocument struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	FacultyID     *uuid.UUID `json:"facultyId,omitempty" db:"faculty_id"`
	FileName      string     `json:"fileName" db:"file_name"`
	FileHash      string     `json:"fileHash" db:"file_hash"`
	FileURL       *string    `json:"fileUrl,omitempty" db:"file_url"`
	DocumentType  *string    `json:"documentType,omitempty" db:"document_type"`
	ExtractedText *string    `json:"extractedText,omitempty" db:"extracted_text"`
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`
}

// Validate requires a file name and the hash used for deduplication.
func (d *ExtractedDocument) Validate() error {
	if !validation.NonEmpty(d.FileName) {
		return apperrors.NewValidationError("file name is required")
	}
	if !validation.NonEmpty(d.FileHash) {
		return apperrors.NewValidationError("file hash is required")
	}
	return nil
}
