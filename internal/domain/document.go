package domain

import (
	"context"
	"fmt"
)

// MainDocumentName is the name given to the document provisioned with
// every new project.
const MainDocumentName = "main.tex"

// Document is relational metadata only; its content lives in the blob
// store at a path derived from (project_id, name).
type Document struct {
	ID        int64  `json:"document_id"`
	ProjectID int64  `json:"project_id"`
	Name      string `json:"name"`
}

// DocumentData is the creation/rename input.
type DocumentData struct {
	Name string `json:"name"`
}

type DocumentRepository interface {
	// List returns all documents of a project.
	List(ctx context.Context, projectID int64) ([]*Document, error)

	// GetMeta retrieves a document scoped to its project.
	// Returns ErrDocumentNotFound when no row matches.
	GetMeta(ctx context.Context, projectID, documentID int64) (*Document, error)

	// Insert creates a document row and an empty placeholder file.
	Insert(ctx context.Context, projectID int64, name string) (*Document, error)

	// UpdateName renames a document and moves its content to the path
	// derived from the new name, so content stays reachable afterwards.
	// Returns ErrDocumentNotFound when no row matches.
	UpdateName(ctx context.Context, document *Document, name string) error

	// ReadContent returns the document's on-disk content.
	// Returns ErrDocumentNotFound when the file is absent.
	ReadContent(ctx context.Context, document *Document) ([]byte, error)

	// WriteContent overwrites the document's on-disk content. Writing to
	// a document whose file was never provisioned fails with
	// ErrDocumentNotFound instead of silently creating it.
	WriteContent(ctx context.Context, document *Document, content []byte) error
}

// DocumentServiceInterface defines the interface for document operations
type DocumentServiceInterface interface {
	List(ctx context.Context, projectID int64) ([]*Document, error)
	Create(ctx context.Context, projectID int64, data DocumentData) (*Document, error)
	Rename(ctx context.Context, projectID, documentID int64, data DocumentData) error

	// ReadMain and WriteMain operate on the project's main document.
	ReadMain(ctx context.Context, projectID int64) ([]byte, error)
	WriteMain(ctx context.Context, projectID int64, content []byte) error
}

// ErrDocumentNotFound is returned when a document or its file is not found
type ErrDocumentNotFound struct {
	DocumentID int64
}

func (e *ErrDocumentNotFound) Error() string {
	return fmt.Sprintf("document not found: %d", e.DocumentID)
}
