package dto

import (
	"github.com/google/uuid"

	"github.com/feims/feims/internal/app/models"
)

// CreateDocumentRequest is what the extraction pipeline posts once it
// has processed an uploaded file.
type CreateDocumentRequest struct {
	FacultyID     *uuid.UUID `json:"facultyId,omitempty"`
	FileName      string     `json:"fileName" binding:"required" example:"cv_engfield.pdf"`
	FileHash      string     `json:"fileHash" binding:"required" example:"9f86d081884c7d65"`
	FileURL       *string    `json:"fileUrl,omitempty"`
	DocumentType  *string    `json:"documentType,omitempty" example:"cv"`
	ExtractedText *string    `json:"extractedText,omitempty"`
}

// ToModel converts the request into an extracted-document model.
func (r *CreateDocumentRequest) ToModel() *models.ExtractedDocument {
	return &models.ExtractedDocument{
		FacultyID:     r.FacultyID,
		FileName:      r.FileName,
		FileHash:      r.FileHash,
		FileURL:       r.FileURL,
		DocumentType:  r.DocumentType,
		ExtractedText: r.ExtractedText,
	}
}
