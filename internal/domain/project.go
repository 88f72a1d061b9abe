package domain

import (
	"context"
	"fmt"
	"time"
)

// Project is the unit of collaboration: one owner, one main document,
// optional shared collaborators.
type Project struct {
	ID             int64     `json:"project_id"`
	MainDocumentID int64     `json:"main_document_id"`
	OwnerID        int64     `json:"owner_id"`
	OwnerEmail     string    `json:"owner_email,omitempty"`
	Name           string    `json:"name"`
	CreatedAt      time.Time `json:"created_at"`
	LastModified   time.Time `json:"last_modified"`
}

// ProjectData is the creation/rename input.
type ProjectData struct {
	Name string `json:"name"`
}

type ProjectRepository interface {
	// Create provisions a project: its row, its main document row and the
	// on-disk directory with an empty placeholder file. The relational
	// writes are atomic; the returned project carries the generated ids
	// and server-assigned timestamps.
	Create(ctx context.Context, name string, ownerID int64) (*Project, error)

	// List returns the projects a user owns or has been granted access
	// to via sharing, newest first.
	List(ctx context.Context, userID int64) ([]*Project, error)

	// GetMeta retrieves a project's metadata by id.
	// Returns ErrProjectNotFound when no row matches.
	GetMeta(ctx context.Context, projectID int64) (*Project, error)

	// UpdateName renames a project.
	// Returns ErrProjectNotFound when no row matches.
	UpdateName(ctx context.Context, projectID int64, name string) error
}

// ProjectServiceInterface defines the interface for project operations
type ProjectServiceInterface interface {
	Create(ctx context.Context, name string, ownerID int64) (*Project, error)
	List(ctx context.Context, userID int64) ([]*Project, error)
	GetMeta(ctx context.Context, projectID int64) (*Project, error)
	Rename(ctx context.Context, projectID int64, name string) error
}

// ErrProjectNotFound is returned when a project is not found
type ErrProjectNotFound struct {
	ProjectID int64
}

func (e *ErrProjectNotFound) Error() string {
	return fmt.Sprintf("project not found: %d", e.ProjectID)
}
