package memory

import (
	"context"

	"github.com/Inkpot/inkpot/internal/domain"
)

type sharingRepository struct {
	store *Store
}

// NewSharingRepository creates an in-memory sharing repository.
func NewSharingRepository(store *Store) domain.SharingRepository {
	return &sharingRepository{store: store}
}

func (r *sharingRepository) CreateToken(ctx context.Context, projectID, requesterID int64, token string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	project, ok := s.projects[projectID]
	if !ok || project.OwnerID != requesterID {
		return &domain.ErrProjectNotFound{ProjectID: projectID}
	}
	s.tokens[token] = projectID
	return nil
}

func (r *sharingRepository) Redeem(ctx context.Context, token string, redeemerID int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	projectID, ok := s.tokens[token]
	if !ok {
		return &domain.ErrShareTokenNotFound{}
	}
	if s.grants[projectID] == nil {
		s.grants[projectID] = make(map[int64]bool)
	}
	s.grants[projectID][redeemerID] = true
	return nil
}
