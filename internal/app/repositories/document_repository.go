package repositories

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/feims/feims/internal/app/models"
	"github.com/feims/feims/internal/db"
	"github.com/feims/feims/internal/pkg/apperrors"
	"github.com/feims/feims/internal/pkg/dberrors"
)

var documentColumns = []string{
	"id", "faculty_id", "file_name", "file_hash", "file_url",
	"document_type", "extracted_text", "created_at",
}

func scanDocument(row pgx.Row, d *models.ExtractedDocument) error {
	return row.Scan(
		&d.ID,
		&d.FacultyID,
		&d.FileName,
		&d.FileHash,
		&d.FileURL,
		&d.DocumentType,
		&d.ExtractedText,
		&d.CreatedAt,
	)
}

// DocumentRepository persists rows handed over by the external
// document-extraction collaborator.
type DocumentRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewDocumentRepository creates a new DocumentRepository
func NewDocumentRepository(database *db.PostgresDB) *DocumentRepository {
	return &DocumentRepository{
		db: database,
		sb: statementBuilder(),
	}
}

// Create inserts an extracted-document row as produced by the
// collaborator. file_hash is not structurally unique; dedup is a
// lookup concern, see GetByHash.
func (r *DocumentRepository) Create(ctx context.Context, document *models.ExtractedDocument) error {
	if err := document.Validate(); err != nil {
		return err
	}

	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	sql, args, err := r.sb.Insert("extracted_documents").
		Columns("faculty_id", "file_name", "file_hash", "file_url", "document_type", "extracted_text").
		Values(document.FacultyID, document.FileName, document.FileHash, document.FileURL,
			document.DocumentType, document.ExtractedText).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return wrapQueryError("create document", err)
	}

	err = r.db.Pool.QueryRow(ctx, sql, args...).Scan(&document.ID, &document.CreatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrFacultyNotFound
		}
		return wrapQueryError("create document", err)
	}

	return nil
}

// GetByID retrieves an extracted document by ID.
func (r *DocumentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ExtractedDocument, error) {
	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	sql, args, err := r.sb.Select(documentColumns...).
		From("extracted_documents").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, wrapQueryError("get document", err)
	}

	document := &models.ExtractedDocument{}
	if err := scanDocument(r.db.Pool.QueryRow(ctx, sql, args...), document); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDocumentNotFound
		}
		return nil, wrapQueryError("get document", err)
	}

	return document, nil
}

// GetByHash looks up an existing document with the same file hash,
// the intended dedup key. A miss is (nil, nil), not an error.
func (r *DocumentRepository) GetByHash(ctx context.Context, fileHash string) (*models.ExtractedDocument, error) {
	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	sql, args, err := r.sb.Select(documentColumns...).
		From("extracted_documents").
		Where(squirrel.Eq{"file_hash": fileHash}).
		OrderBy("created_at ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, wrapQueryError("get document by hash", err)
	}

	document := &models.ExtractedDocument{}
	if err := scanDocument(r.db.Pool.QueryRow(ctx, sql, args...), document); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapQueryError("get document by hash", err)
	}

	return document, nil
}

// List retrieves extracted documents, optionally scoped to a faculty
// member, newest first.
func (r *DocumentRepository) List(ctx context.Context, facultyID *uuid.UUID) ([]*models.ExtractedDocument, error) {
	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	q := r.sb.Select(documentColumns...).
		From("extracted_documents").
		OrderBy("created_at DESC")
	if facultyID != nil {
		q = q.Where(squirrel.Eq{"faculty_id": *facultyID})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, wrapQueryError("list documents", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapQueryError("list documents", err)
	}
	defer rows.Close()

	documents := []*models.ExtractedDocument{}
	for rows.Next() {
		document := &models.ExtractedDocument{}
		if err := scanDocument(rows, document); err != nil {
			return nil, wrapQueryError("list documents", err)
		}
		documents = append(documents, document)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryError("list documents", err)
	}

	return documents, nil
}

// Delete removes an extracted document by ID.
func (r *DocumentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	sql, args, err := r.sb.Delete("extracted_documents").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return wrapQueryError("delete document", err)
	}

	cmdTag, err := r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return wrapQueryError("delete document", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDocumentNotFound
	}

	return nil
}

// DeleteByFaculty removes all documents owned by a faculty member
// inside the given transaction.
func (r *DocumentRepository) DeleteByFaculty(ctx context.Context, tx pgx.Tx, facultyID uuid.UUID) error {
	sql, args, err := r.sb.Delete("extracted_documents").
		Where(squirrel.Eq{"faculty_id": facultyID}).
		ToSql()
	if err != nil {
		return wrapQueryError("delete documents", err)
	}

	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		return wrapQueryError("delete documents", err)
	}
	return nil
}
