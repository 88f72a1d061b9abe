package service

import (
	"context"

	"github.com/Inkpot/inkpot/internal/domain"
	"github.com/Inkpot/inkpot/pkg/logger"
)

type ProjectService struct {
	repo   domain.ProjectRepository
	logger logger.Logger
}

func NewProjectService(repo domain.ProjectRepository, logger logger.Logger) *ProjectService {
	return &ProjectService{
		repo:   repo,
		logger: logger,
	}
}

// Ensure ProjectService implements ProjectServiceInterface
var _ domain.ProjectServiceInterface = (*ProjectService)(nil)

// Create provisions a new project for the owner, including its main
// document and on-disk directory.
func (s *ProjectService) Create(ctx context.Context, name string, ownerID int64) (*domain.Project, error) {
	if name == "" {
		return nil, &domain.ErrInvalidUserData{Message: "project name is required"}
	}

	project, err := s.repo.Create(ctx, name, ownerID)
	if err != nil {
		s.logger.WithField("owner_id", ownerID).Error("Failed to provision project: " + err.Error())
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"project_id": project.ID,
		"owner_id":   ownerID,
	}).Info("Project provisioned")
	return project, nil
}

func (s *ProjectService) List(ctx context.Context, userID int64) ([]*domain.Project, error) {
	return s.repo.List(ctx, userID)
}

func (s *ProjectService) GetMeta(ctx context.Context, projectID int64) (*domain.Project, error) {
	return s.repo.GetMeta(ctx, projectID)
}

func (s *ProjectService) Rename(ctx context.Context, projectID int64, name string) error {
	if name == "" {
		return &domain.ErrInvalidUserData{Message: "project name is required"}
	}
	return s.repo.UpdateName(ctx, projectID, name)
}
