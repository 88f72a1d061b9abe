package service

import (
	"context"

	"github.com/Inkpot/inkpot/internal/domain"
	"github.com/Inkpot/inkpot/pkg/logger"
)

type DocumentService struct {
	repo        domain.DocumentRepository
	projectRepo domain.ProjectRepository
	logger      logger.Logger
}

func NewDocumentService(repo domain.DocumentRepository, projectRepo domain.ProjectRepository, logger logger.Logger) *DocumentService {
	return &DocumentService{
		repo:        repo,
		projectRepo: projectRepo,
		logger:      logger,
	}
}

// Ensure DocumentService implements DocumentServiceInterface
var _ domain.DocumentServiceInterface = (*DocumentService)(nil)

func (s *DocumentService) List(ctx context.Context, projectID int64) ([]*domain.Document, error) {
	return s.repo.List(ctx, projectID)
}

func (s *DocumentService) Create(ctx context.Context, projectID int64, data domain.DocumentData) (*domain.Document, error) {
	if data.Name == "" {
		return nil, &domain.ErrInvalidUserData{Message: "document name is required"}
	}

	// The project must exist before a document can be attached to it,
	// otherwise the blob write would land in a directory nobody owns.
	if _, err := s.projectRepo.GetMeta(ctx, projectID); err != nil {
		return nil, err
	}

	document, err := s.repo.Insert(ctx, projectID, data.Name)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"project_id":  projectID,
		"document_id": document.ID,
	}).Info("Document created")
	return document, nil
}

func (s *DocumentService) Rename(ctx context.Context, projectID, documentID int64, data domain.DocumentData) error {
	if data.Name == "" {
		return &domain.ErrInvalidUserData{Message: "document name is required"}
	}

	// Scoped lookup first: renaming a document through the wrong project
	// is a not-found, not a cross-project write.
	document, err := s.repo.GetMeta(ctx, projectID, documentID)
	if err != nil {
		return err
	}
	return s.repo.UpdateName(ctx, document, data.Name)
}

// ReadMain returns the content of the project's main document.
func (s *DocumentService) ReadMain(ctx context.Context, projectID int64) ([]byte, error) {
	document, err := s.mainDocument(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return s.repo.ReadContent(ctx, document)
}

// WriteMain overwrites the content of the project's main document.
func (s *DocumentService) WriteMain(ctx context.Context, projectID int64, content []byte) error {
	document, err := s.mainDocument(ctx, projectID)
	if err != nil {
		return err
	}
	return s.repo.WriteContent(ctx, document, content)
}

func (s *DocumentService) mainDocument(ctx context.Context, projectID int64) (*domain.Document, error) {
	project, err := s.projectRepo.GetMeta(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return s.repo.GetMeta(ctx, projectID, project.MainDocumentID)
}
