package memory

import (
	"context"

	"github.com/Inkpot/inkpot/internal/domain"
)

type sessionRepository struct {
	store *Store
}

// NewSessionRepository creates an in-memory session repository.
func NewSessionRepository(store *Store) domain.SessionRepository {
	return &sessionRepository{store: store}
}

func (r *sessionRepository) Insert(ctx context.Context, session *domain.SessionData) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[session.ID]; ok {
		return &domain.ErrSessionExists{}
	}
	stored := *session
	s.sessions[session.ID] = &stored
	return nil
}

func (r *sessionRepository) Get(ctx context.Context, id string) (*domain.Session, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.sessions[id]
	if !ok {
		return nil, &domain.ErrSessionNotFound{}
	}
	user, ok := s.users[data.UserID]
	if !ok {
		return nil, &domain.ErrSessionNotFound{}
	}
	return &domain.Session{
		ID:      data.ID,
		User:    *user,
		Expires: data.Expires,
	}, nil
}

func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}
