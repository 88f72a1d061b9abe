package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Inkpot/inkpot/internal/domain"
	"github.com/Inkpot/inkpot/pkg/blob"
)

type resourceRepository struct {
	db    *sql.DB
	files *blob.Store
}

// NewResourceRepository creates a new PostgreSQL resource repository backed
// by the given blob store for content.
func NewResourceRepository(db *sql.DB, files *blob.Store) domain.ResourceRepository {
	return &resourceRepository{db: db, files: files}
}

func (r *resourceRepository) List(ctx context.Context, projectID int64) ([]*domain.Resource, error) {
	query := `
		SELECT resource_id, project_id, name
		FROM resources
		WHERE project_id = $1
		ORDER BY resource_id
	`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list resources: %w", err)
	}
	defer rows.Close()

	var resources []*domain.Resource
	for rows.Next() {
		var resource domain.Resource
		if err := rows.Scan(&resource.ID, &resource.ProjectID, &resource.Name); err != nil {
			return nil, fmt.Errorf("failed to scan resource: %w", err)
		}
		resources = append(resources, &resource)
	}
	return resources, rows.Err()
}

func (r *resourceRepository) GetMeta(ctx context.Context, projectID, resourceID int64) (*domain.Resource, error) {
	var resource domain.Resource
	query := `
		SELECT resource_id, project_id, name
		FROM resources
		WHERE project_id = $1 AND resource_id = $2
	`
	err := r.db.QueryRowContext(ctx, query, projectID, resourceID).Scan(
		&resource.ID,
		&resource.ProjectID,
		&resource.Name,
	)
	if err == sql.ErrNoRows {
		return nil, &domain.ErrResourceNotFound{ResourceID: resourceID}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get resource: %w", err)
	}
	return &resource, nil
}

func (r *resourceRepository) Insert(ctx context.Context, projectID int64, name string) (*domain.Resource, error) {
	path, err := r.files.FilePath(projectID, name)
	if err != nil {
		return nil, fmt.Errorf("failed to derive resource path: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	resource := &domain.Resource{ProjectID: projectID, Name: name}
	query := `
		INSERT INTO resources (project_id, name)
		VALUES ($1, $2)
		RETURNING resource_id
	`
	if err := tx.QueryRowContext(ctx, query, projectID, name).Scan(&resource.ID); err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	if err := r.files.Write(path, []byte{}, true); err != nil {
		return nil, fmt.Errorf("failed to write placeholder file: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return resource, nil
}

// UpdateName renames the metadata row and moves the blob to the path the
// new name derives to; committing only after the move keeps the row and
// the file pointing at each other.
func (r *resourceRepository) UpdateName(ctx context.Context, resource *domain.Resource, name string) error {
	oldPath, err := r.files.FilePath(resource.ProjectID, resource.Name)
	if err != nil {
		return fmt.Errorf("failed to derive resource path: %w", err)
	}
	newPath, err := r.files.FilePath(resource.ProjectID, name)
	if err != nil {
		return fmt.Errorf("failed to derive resource path: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`UPDATE resources SET name = $1 WHERE project_id = $2 AND resource_id = $3`,
		name, resource.ProjectID, resource.ID)
	if err != nil {
		return fmt.Errorf("failed to update resource: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return &domain.ErrResourceNotFound{ResourceID: resource.ID}
	}

	if err := r.files.Rename(oldPath, newPath); err != nil {
		if errors.Is(err, blob.ErrMissing) {
			return &domain.ErrResourceNotFound{ResourceID: resource.ID}
		}
		return fmt.Errorf("failed to move resource content: %w", err)
	}

	if err := tx.Commit(); err != nil {
		// Put the blob back; the row keeps its old name.
		_ = r.files.Rename(newPath, oldPath)
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *resourceRepository) ReadContent(ctx context.Context, resource *domain.Resource) ([]byte, error) {
	path, err := r.files.FilePath(resource.ProjectID, resource.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to derive resource path: %w", err)
	}

	content, err := r.files.Read(path)
	if errors.Is(err, blob.ErrMissing) {
		return nil, &domain.ErrResourceNotFound{ResourceID: resource.ID}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read resource content: %w", err)
	}
	return content, nil
}

func (r *resourceRepository) WriteContent(ctx context.Context, resource *domain.Resource, content []byte) error {
	path, err := r.files.FilePath(resource.ProjectID, resource.Name)
	if err != nil {
		return fmt.Errorf("failed to derive resource path: %w", err)
	}

	err = r.files.Write(path, content, false)
	if errors.Is(err, blob.ErrMissing) {
		return &domain.ErrResourceNotFound{ResourceID: resource.ID}
	}
	if err != nil {
		return fmt.Errorf("failed to write resource content: %w", err)
	}
	return nil
}
