package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Inkpot/inkpot/internal/domain"
)

type sessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new PostgreSQL session repository
func NewSessionRepository(db *sql.DB) domain.SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Insert(ctx context.Context, session *domain.SessionData) error {
	// ON CONFLICT DO NOTHING instead of upsert: an existing session must
	// never be rebound to another user by a colliding token.
	query := `
		INSERT INTO sessions (session_id, user_id, expires)
		VALUES ($1, $2, $3)
		ON CONFLICT DO NOTHING
	`
	result, err := r.db.ExecContext(ctx, query,
		session.ID,
		session.UserID,
		session.Expires,
	)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return &domain.ErrSessionExists{}
	}
	return nil
}

func (r *sessionRepository) Get(ctx context.Context, id string) (*domain.Session, error) {
	var session domain.Session
	query := `
		SELECT sessions.session_id, sessions.expires,
			users.user_id, users.email, users.password_hash
		FROM sessions
		JOIN users ON sessions.user_id = users.user_id
		WHERE sessions.session_id = $1
	`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&session.ID,
		&session.Expires,
		&session.User.ID,
		&session.User.Email,
		&session.User.PasswordHash,
	)
	if err == sql.ErrNoRows {
		return nil, &domain.ErrSessionNotFound{}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return &session, nil
}

func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	// Absence of the row is not an error; delete is idempotent.
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE session_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
