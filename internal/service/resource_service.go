package service

import (
	"context"

	"github.com/Inkpot/inkpot/internal/domain"
	"github.com/Inkpot/inkpot/pkg/logger"
)

type ResourceService struct {
	repo        domain.ResourceRepository
	projectRepo domain.ProjectRepository
	logger      logger.Logger
}

func NewResourceService(repo domain.ResourceRepository, projectRepo domain.ProjectRepository, logger logger.Logger) *ResourceService {
	return &ResourceService{
		repo:        repo,
		projectRepo: projectRepo,
		logger:      logger,
	}
}

// Ensure ResourceService implements ResourceServiceInterface
var _ domain.ResourceServiceInterface = (*ResourceService)(nil)

func (s *ResourceService) List(ctx context.Context, projectID int64) ([]*domain.Resource, error) {
	return s.repo.List(ctx, projectID)
}

func (s *ResourceService) Create(ctx context.Context, projectID int64, data domain.ResourceData) (*domain.Resource, error) {
	if data.Name == "" {
		return nil, &domain.ErrInvalidUserData{Message: "resource name is required"}
	}

	if _, err := s.projectRepo.GetMeta(ctx, projectID); err != nil {
		return nil, err
	}

	resource, err := s.repo.Insert(ctx, projectID, data.Name)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"project_id":  projectID,
		"resource_id": resource.ID,
	}).Info("Resource created")
	return resource, nil
}

func (s *ResourceService) Rename(ctx context.Context, projectID, resourceID int64, data domain.ResourceData) error {
	if data.Name == "" {
		return &domain.ErrInvalidUserData{Message: "resource name is required"}
	}

	resource, err := s.repo.GetMeta(ctx, projectID, resourceID)
	if err != nil {
		return err
	}
	return s.repo.UpdateName(ctx, resource, data.Name)
}

func (s *ResourceService) Read(ctx context.Context, projectID, resourceID int64) ([]byte, error) {
	resource, err := s.repo.GetMeta(ctx, projectID, resourceID)
	if err != nil {
		return nil, err
	}
	return s.repo.ReadContent(ctx, resource)
}

func (s *ResourceService) Write(ctx context.Context, projectID, resourceID int64, content []byte) error {
	resource, err := s.repo.GetMeta(ctx, projectID, resourceID)
	if err != nil {
		return err
	}
	return s.repo.WriteContent(ctx, resource, content)
}
