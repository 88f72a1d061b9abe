package domain

import (
	"context"
	"fmt"
)

// Resource is an auxiliary project file (image, attachment); like a
// Document it is relational metadata plus an on-disk blob.
type Resource struct {
	ID        int64  `json:"resource_id"`
	ProjectID int64  `json:"project_id"`
	Name      string `json:"name"`
}

// ResourceData is the creation/rename input.
type ResourceData struct {
	Name string `json:"name"`
}

type ResourceRepository interface {
	// List returns all resources of a project.
	List(ctx context.Context, projectID int64) ([]*Resource, error)

	// GetMeta retrieves a resource scoped to its project.
	// Returns ErrResourceNotFound when no row matches.
	GetMeta(ctx context.Context, projectID, resourceID int64) (*Resource, error)

	// Insert creates a resource row and an empty placeholder file.
	Insert(ctx context.Context, projectID int64, name string) (*Resource, error)

	// UpdateName renames a resource and moves its content to the path
	// derived from the new name, so content stays reachable afterwards.
	// Returns ErrResourceNotFound when no row matches.
	UpdateName(ctx context.Context, resource *Resource, name string) error

	// ReadContent returns the resource's on-disk content.
	// Returns ErrResourceNotFound when the file is absent.
	ReadContent(ctx context.Context, resource *Resource) ([]byte, error)

	// WriteContent overwrites the resource's on-disk content; fails with
	// ErrResourceNotFound when the file was never provisioned.
	WriteContent(ctx context.Context, resource *Resource, content []byte) error
}

// ResourceServiceInterface defines the interface for resource operations
type ResourceServiceInterface interface {
	List(ctx context.Context, projectID int64) ([]*Resource, error)
	Create(ctx context.Context, projectID int64, data ResourceData) (*Resource, error)
	Rename(ctx context.Context, projectID, resourceID int64, data ResourceData) error
	Read(ctx context.Context, projectID, resourceID int64) ([]byte, error)
	Write(ctx context.Context, projectID, resourceID int64, content []byte) error
}

// ErrResourceNotFound is returned when a resource or its file is not found
type ErrResourceNotFound struct {
	ResourceID int64
}

func (e *ErrResourceNotFound) Error() string {
	return fmt.Sprintf("resource not found: %d", e.ResourceID)
}
