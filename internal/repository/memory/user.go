package memory

import (
	"context"

	"github.com/Inkpot/inkpot/internal/domain"
)

type userRepository struct {
	store *Store
}

// NewUserRepository creates an in-memory user repository.
func NewUserRepository(store *Store) domain.UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == user.Email {
			return &domain.ErrUserExists{Email: user.Email}
		}
	}

	s.nextUserID++
	user.ID = s.nextUserID
	stored := *user
	s.users[user.ID] = &stored
	return nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Email == email {
			found := *user
			return &found, nil
		}
	}
	return nil, &domain.ErrUserNotFound{Email: email}
}
