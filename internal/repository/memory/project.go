package memory

import (
	"context"
	"sort"
	"time"

	"github.com/Inkpot/inkpot/internal/domain"
)

type projectRepository struct {
	store *Store
}

// NewProjectRepository creates an in-memory project repository.
func NewProjectRepository(store *Store) domain.ProjectRepository {
	return &projectRepository{store: store}
}

func (r *projectRepository) Create(ctx context.Context, name string, ownerID int64) (*domain.Project, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()

	s.nextDocumentID++
	document := &domain.Document{
		ID:   s.nextDocumentID,
		Name: domain.MainDocumentName,
	}

	s.nextProjectID++
	project := &domain.Project{
		ID:             s.nextProjectID,
		MainDocumentID: document.ID,
		OwnerID:        ownerID,
		Name:           name,
		CreatedAt:      now,
		LastModified:   now,
	}
	if owner, ok := s.users[ownerID]; ok {
		project.OwnerEmail = owner.Email
	}

	document.ProjectID = project.ID
	s.documents[document.ID] = document
	s.projects[project.ID] = project
	s.content[contentKey(project.ID, domain.MainDocumentName)] = []byte{}

	result := *project
	return &result, nil
}

func (r *projectRepository) List(ctx context.Context, userID int64) ([]*domain.Project, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	var projects []*domain.Project
	for _, project := range s.projects {
		if project.OwnerID == userID || s.grants[project.ID][userID] {
			result := *project
			r.fillOwnerEmail(&result)
			projects = append(projects, &result)
		}
	}
	sort.Slice(projects, func(i, j int) bool {
		if !projects[i].CreatedAt.Equal(projects[j].CreatedAt) {
			return projects[i].CreatedAt.After(projects[j].CreatedAt)
		}
		return projects[i].ID > projects[j].ID
	})
	return projects, nil
}

func (r *projectRepository) GetMeta(ctx context.Context, projectID int64) (*domain.Project, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	project, ok := s.projects[projectID]
	if !ok {
		return nil, &domain.ErrProjectNotFound{ProjectID: projectID}
	}
	result := *project
	r.fillOwnerEmail(&result)
	return &result, nil
}

func (r *projectRepository) UpdateName(ctx context.Context, projectID int64, name string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	project, ok := s.projects[projectID]
	if !ok {
		return &domain.ErrProjectNotFound{ProjectID: projectID}
	}
	project.Name = name
	project.LastModified = time.Now().UTC()
	return nil
}

// caller holds the lock
func (r *projectRepository) fillOwnerEmail(project *domain.Project) {
	if owner, ok := r.store.users[project.OwnerID]; ok {
		project.OwnerEmail = owner.Email
	}
}
