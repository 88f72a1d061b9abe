package memory

import (
	"context"
	"sort"

	"github.com/Inkpot/inkpot/internal/domain"
	"github.com/Inkpot/inkpot/pkg/blob"
)

type resourceRepository struct {
	store *Store
}

// NewResourceRepository creates an in-memory resource repository.
func NewResourceRepository(store *Store) domain.ResourceRepository {
	return &resourceRepository{store: store}
}

func (r *resourceRepository) List(ctx context.Context, projectID int64) ([]*domain.Resource, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	var resources []*domain.Resource
	for _, resource := range s.resources {
		if resource.ProjectID == projectID {
			result := *resource
			resources = append(resources, &result)
		}
	}
	sort.Slice(resources, func(i, j int) bool { return resources[i].ID < resources[j].ID })
	return resources, nil
}

func (r *resourceRepository) GetMeta(ctx context.Context, projectID, resourceID int64) (*domain.Resource, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	resource, ok := s.resources[resourceID]
	if !ok || resource.ProjectID != projectID {
		return nil, &domain.ErrResourceNotFound{ResourceID: resourceID}
	}
	result := *resource
	return &result, nil
}

func (r *resourceRepository) Insert(ctx context.Context, projectID int64, name string) (*domain.Resource, error) {
	if err := blob.ValidateName(name); err != nil {
		return nil, err
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextResourceID++
	resource := &domain.Resource{
		ID:        s.nextResourceID,
		ProjectID: projectID,
		Name:      name,
	}
	s.resources[resource.ID] = resource
	s.content[contentKey(projectID, name)] = []byte{}

	result := *resource
	return &result, nil
}

func (r *resourceRepository) UpdateName(ctx context.Context, resource *domain.Resource, name string) error {
	if err := blob.ValidateName(name); err != nil {
		return err
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.resources[resource.ID]
	if !ok || stored.ProjectID != resource.ProjectID {
		return &domain.ErrResourceNotFound{ResourceID: resource.ID}
	}
	oldKey := contentKey(stored.ProjectID, stored.Name)
	if content, exists := s.content[oldKey]; exists {
		delete(s.content, oldKey)
		s.content[contentKey(stored.ProjectID, name)] = content
	}
	stored.Name = name
	return nil
}

func (r *resourceRepository) ReadContent(ctx context.Context, resource *domain.Resource) ([]byte, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	content, ok := s.content[contentKey(resource.ProjectID, resource.Name)]
	if !ok {
		return nil, &domain.ErrResourceNotFound{ResourceID: resource.ID}
	}
	return append([]byte(nil), content...), nil
}

func (r *resourceRepository) WriteContent(ctx context.Context, resource *domain.Resource, content []byte) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	key := contentKey(resource.ProjectID, resource.Name)
	if _, ok := s.content[key]; !ok {
		return &domain.ErrResourceNotFound{ResourceID: resource.ID}
	}
	s.content[key] = append([]byte(nil), content...)
	return nil
}
