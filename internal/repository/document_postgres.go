package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Inkpot/inkpot/internal/domain"
	"github.com/Inkpot/inkpot/pkg/blob"
)

type documentRepository struct {
	db    *sql.DB
	files *blob.Store
}

// NewDocumentRepository creates a new PostgreSQL document repository backed
// by the given blob store for content.
func NewDocumentRepository(db *sql.DB, files *blob.Store) domain.DocumentRepository {
	return &documentRepository{db: db, files: files}
}

func (r *documentRepository) List(ctx context.Context, projectID int64) ([]*domain.Document, error) {
	query := `
		SELECT document_id, project_id, name
		FROM documents
		WHERE project_id = $1
		ORDER BY document_id
	`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var documents []*domain.Document
	for rows.Next() {
		var document domain.Document
		if err := rows.Scan(&document.ID, &document.ProjectID, &document.Name); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		documents = append(documents, &document)
	}
	return documents, rows.Err()
}

func (r *documentRepository) GetMeta(ctx context.Context, projectID, documentID int64) (*domain.Document, error) {
	var document domain.Document
	query := `
		SELECT document_id, project_id, name
		FROM documents
		WHERE project_id = $1 AND document_id = $2
	`
	err := r.db.QueryRowContext(ctx, query, projectID, documentID).Scan(
		&document.ID,
		&document.ProjectID,
		&document.Name,
	)
	if err == sql.ErrNoRows {
		return nil, &domain.ErrDocumentNotFound{DocumentID: documentID}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return &document, nil
}

// Insert creates the metadata row and an empty placeholder file, committing
// only after the file exists so the row never points at a missing blob.
func (r *documentRepository) Insert(ctx context.Context, projectID int64, name string) (*domain.Document, error) {
	path, err := r.files.FilePath(projectID, name)
	if err != nil {
		return nil, fmt.Errorf("failed to derive document path: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	document := &domain.Document{ProjectID: projectID, Name: name}
	query := `
		INSERT INTO documents (project_id, name)
		VALUES ($1, $2)
		RETURNING document_id
	`
	if err := tx.QueryRowContext(ctx, query, projectID, name).Scan(&document.ID); err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}

	if err := r.files.Write(path, []byte{}, true); err != nil {
		return nil, fmt.Errorf("failed to write placeholder file: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return document, nil
}

// UpdateName renames the metadata row and moves the blob to the path the
// new name derives to; committing only after the move keeps the row and
// the file pointing at each other.
func (r *documentRepository) UpdateName(ctx context.Context, document *domain.Document, name string) error {
	oldPath, err := r.files.FilePath(document.ProjectID, document.Name)
	if err != nil {
		return fmt.Errorf("failed to derive document path: %w", err)
	}
	newPath, err := r.files.FilePath(document.ProjectID, name)
	if err != nil {
		return fmt.Errorf("failed to derive document path: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`UPDATE documents SET name = $1 WHERE project_id = $2 AND document_id = $3`,
		name, document.ProjectID, document.ID)
	if err != nil {
		return fmt.Errorf("failed to update document: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return &domain.ErrDocumentNotFound{DocumentID: document.ID}
	}

	if err := r.files.Rename(oldPath, newPath); err != nil {
		if errors.Is(err, blob.ErrMissing) {
			return &domain.ErrDocumentNotFound{DocumentID: document.ID}
		}
		return fmt.Errorf("failed to move document content: %w", err)
	}

	if err := tx.Commit(); err != nil {
		// Put the blob back; the row keeps its old name.
		_ = r.files.Rename(newPath, oldPath)
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *documentRepository) ReadContent(ctx context.Context, document *domain.Document) ([]byte, error) {
	path, err := r.files.FilePath(document.ProjectID, document.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to derive document path: %w", err)
	}

	content, err := r.files.Read(path)
	if errors.Is(err, blob.ErrMissing) {
		return nil, &domain.ErrDocumentNotFound{DocumentID: document.ID}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read document content: %w", err)
	}
	return content, nil
}

func (r *documentRepository) WriteContent(ctx context.Context, document *domain.Document, content []byte) error {
	path, err := r.files.FilePath(document.ProjectID, document.Name)
	if err != nil {
		return fmt.Errorf("failed to derive document path: %w", err)
	}

	// createIfMissing=false: updating a document that was never
	// provisioned must fail loudly, not create the file.
	err = r.files.Write(path, content, false)
	if errors.Is(err, blob.ErrMissing) {
		return &domain.ErrDocumentNotFound{DocumentID: document.ID}
	}
	if err != nil {
		return fmt.Errorf("failed to write document content: %w", err)
	}
	return nil
}
