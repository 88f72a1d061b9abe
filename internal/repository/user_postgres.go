package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Inkpot/inkpot/internal/database"
	"github.com/Inkpot/inkpot/internal/domain"
)

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db *sql.DB) domain.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (email, password_hash)
		VALUES ($1, $2)
		RETURNING user_id
	`
	err := r.db.QueryRowContext(ctx, query,
		user.Email,
		user.PasswordHash,
	).Scan(&user.ID)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return &domain.ErrUserExists{Email: user.Email}
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	query := `
		SELECT user_id, email, password_hash
		FROM users
		WHERE email = $1
	`
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
	)
	if err == sql.ErrNoRows {
		return nil, &domain.ErrUserNotFound{Email: email}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}
