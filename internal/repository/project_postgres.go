package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/Inkpot/inkpot/internal/domain"
	"github.com/Inkpot/inkpot/pkg/blob"
)

type projectRepository struct {
	db    *sql.DB
	files *blob.Store
}

// NewProjectRepository creates a new PostgreSQL project repository backed
// by the given blob store for on-disk artifacts.
func NewProjectRepository(db *sql.DB, files *blob.Store) domain.ProjectRepository {
	return &projectRepository{db: db, files: files}
}

// Create provisions a project inside one transaction. The ordering is
// load-bearing: the main document row must exist before the project row
// references it, the directory must exist before the placeholder file is
// written into it, and the transaction must not commit before the
// filesystem writes succeed, so a committed row never points at a missing
// file. Filesystem side effects are compensated by removing the project
// directory whenever a later step fails.
func (r *projectRepository) Create(ctx context.Context, name string, ownerID int64) (*domain.Project, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var documentID int64
	insertDocument := `
		INSERT INTO documents (name)
		VALUES ($1)
		RETURNING document_id
	`
	if err := tx.QueryRowContext(ctx, insertDocument, domain.MainDocumentName).Scan(&documentID); err != nil {
		return nil, fmt.Errorf("failed to create main document: %w", err)
	}

	project := &domain.Project{
		MainDocumentID: documentID,
		OwnerID:        ownerID,
		Name:           name,
	}
	insertProject := `
		INSERT INTO projects (main_document_id, owner_id, name)
		VALUES ($1, $2, $3)
		RETURNING project_id, created_at, last_modified
	`
	err = tx.QueryRowContext(ctx, insertProject, documentID, ownerID, name).Scan(
		&project.ID,
		&project.CreatedAt,
		&project.LastModified,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	if err := r.files.CreateProjectDir(project.ID); err != nil {
		return nil, fmt.Errorf("failed to create project directory: %w", err)
	}

	relinkDocument := `
		UPDATE documents
		SET project_id = $1
		WHERE document_id = $2
	`
	if _, err := tx.ExecContext(ctx, relinkDocument, project.ID, documentID); err != nil {
		r.compensateDir(project.ID)
		return nil, fmt.Errorf("failed to link main document: %w", err)
	}

	path, err := r.files.FilePath(project.ID, domain.MainDocumentName)
	if err != nil {
		r.compensateDir(project.ID)
		return nil, fmt.Errorf("failed to derive document path: %w", err)
	}
	if err := r.files.Write(path, []byte{}, true); err != nil {
		r.compensateDir(project.ID)
		return nil, fmt.Errorf("failed to write placeholder file: %w", err)
	}

	if err := tx.Commit(); err != nil {
		r.compensateDir(project.ID)
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return project, nil
}

// compensateDir rolls back the non-transactional filesystem side effect of
// a failed provisioning attempt. Best effort: the id is not yet visible to
// anyone, and an orphaned empty directory is harmless on the next attempt.
func (r *projectRepository) compensateDir(projectID int64) {
	_ = r.files.RemoveProjectDir(projectID)
}

func (r *projectRepository) List(ctx context.Context, userID int64) ([]*domain.Project, error) {
	query, args, err := sq.
		Select(
			"p.project_id", "p.main_document_id", "p.owner_id", "u.email",
			"p.name", "p.created_at", "p.last_modified",
		).
		Distinct().
		From("projects p").
		Join("users u ON u.user_id = p.owner_id").
		LeftJoin("sharing s ON s.project_id = p.project_id").
		Where(sq.Or{
			sq.Eq{"p.owner_id": userID},
			sq.Eq{"s.friend_id": userID},
		}).
		OrderBy("p.created_at DESC", "p.project_id DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		var project domain.Project
		err := rows.Scan(
			&project.ID,
			&project.MainDocumentID,
			&project.OwnerID,
			&project.OwnerEmail,
			&project.Name,
			&project.CreatedAt,
			&project.LastModified,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, &project)
	}
	return projects, rows.Err()
}

func (r *projectRepository) GetMeta(ctx context.Context, projectID int64) (*domain.Project, error) {
	var project domain.Project
	query := `
		SELECT p.project_id, p.main_document_id, p.owner_id, u.email,
			p.name, p.created_at, p.last_modified
		FROM projects p
		JOIN users u ON u.user_id = p.owner_id
		WHERE p.project_id = $1
	`
	err := r.db.QueryRowContext(ctx, query, projectID).Scan(
		&project.ID,
		&project.MainDocumentID,
		&project.OwnerID,
		&project.OwnerEmail,
		&project.Name,
		&project.CreatedAt,
		&project.LastModified,
	)
	if err == sql.ErrNoRows {
		return nil, &domain.ErrProjectNotFound{ProjectID: projectID}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return &project, nil
}

func (r *projectRepository) UpdateName(ctx context.Context, projectID int64, name string) error {
	query := `
		UPDATE projects
		SET name = $1, last_modified = CURRENT_TIMESTAMP
		WHERE project_id = $2
	`
	result, err := r.db.ExecContext(ctx, query, name, projectID)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return &domain.ErrProjectNotFound{ProjectID: projectID}
	}
	return nil
}
