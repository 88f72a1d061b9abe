package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Inkpot/inkpot/internal/domain"
)

type sharingRepository struct {
	db *sql.DB
}

// NewSharingRepository creates a new PostgreSQL sharing repository
func NewSharingRepository(db *sql.DB) domain.SharingRepository {
	return &sharingRepository{db: db}
}

// CreateToken inserts a share token for the project, but only when the
// requester owns it. The ownership check and the insert are one statement
// so a concurrent owner change cannot slip between them.
func (r *sharingRepository) CreateToken(ctx context.Context, projectID, requesterID int64, token string) error {
	query := `
		INSERT INTO tokens (token, project_id)
		SELECT $1, project_id
		FROM projects
		WHERE project_id = $2 AND owner_id = $3
	`
	result, err := r.db.ExecContext(ctx, query, token, projectID, requesterID)
	if err != nil {
		return fmt.Errorf("failed to create share token: %w", err)
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

// Redeem grants the redeemer access to the project behind the token. The
// token stays valid after redemption so it can be handed to several
// collaborators.
func (r *sharingRepository) Redeem(ctx context.Context, token string, redeemerID int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var projectID int64
	err = tx.QueryRowContext(ctx,
		`SELECT project_id FROM tokens WHERE token = $1`, token).Scan(&projectID)
	if err == sql.ErrNoRows {
		return &domain.ErrShareTokenNotFound{}
	}
	if err != nil {
		return fmt.Errorf("failed to look up share token: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO sharing (friend_id, project_id) VALUES ($1, $2)`,
		redeemerID, projectID)
	if err != nil {
		return fmt.Errorf("failed to record grant: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
