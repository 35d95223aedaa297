package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/feims/feims/internal/app/models"
	"github.com/feims/feims/internal/app/repositories"
)

// DocumentService is the drop-off point for records produced by the
// external extraction pipeline. The pipeline itself lives elsewhere;
// this service only stores and serves what it emits.
type DocumentService struct {
	documents *repositories.DocumentRepository
}

// NewDocumentService creates a new DocumentService
func NewDocumentService(repos *repositories.Repositories) *DocumentService {
	return &DocumentService{documents: repos.DocumentRepository}
}

// Store saves one extracted-document record. When a record with the
// same file hash already exists it is returned instead of creating a
// duplicate.
func (s *DocumentService) Store(ctx context.Context, document *models.ExtractedDocument) (*models.ExtractedDocument, bool, error) {
	existing, err := s.documents.GetByHash(ctx, document.FileHash)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	if err := s.documents.Create(ctx, document); err != nil {
		return nil, false, err
	}
	return document, true, nil
}

// Get returns one record by id.
func (s *DocumentService) Get(ctx context.Context, id uuid.UUID) (*models.ExtractedDocument, error) {
	return s.documents.GetByID(ctx, id)
}

// List returns records, optionally narrowed to one faculty member,
// newest first.
func (s *DocumentService) List(ctx context.Context, facultyID *uuid.UUID) ([]*models.ExtractedDocument, error) {
	return s.documents.List(ctx, facultyID)
}

// Delete removes one record.
func (s *DocumentService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.documents.Delete(ctx, id)
}
