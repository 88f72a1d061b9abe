package service

import (
	"context"
	"fmt"

	"github.com/Inkpot/inkpot/internal/domain"
	"github.com/Inkpot/inkpot/pkg/crypto"
	"github.com/Inkpot/inkpot/pkg/logger"
)

type SharingService struct {
	repo   domain.SharingRepository
	logger logger.Logger
}

func NewSharingService(repo domain.SharingRepository, logger logger.Logger) *SharingService {
	return &SharingService{
		repo:   repo,
		logger: logger,
	}
}

// Ensure SharingService implements SharingServiceInterface
var _ domain.SharingServiceInterface = (*SharingService)(nil)

// MintToken generates a random share token for a project the requester
// owns. The token is the only thing a collaborator needs to join.
func (s *SharingService) MintToken(ctx context.Context, projectID, requesterID int64) (string, error) {
	token, err := crypto.GenerateToken(crypto.TokenLength)
	if err != nil {
		return "", fmt.Errorf("failed to generate share token: %w", err)
	}

	if err := s.repo.CreateToken(ctx, projectID, requesterID, token); err != nil {
		return "", err
	}

	s.logger.WithField("project_id", projectID).Info("Share token minted")
	return token, nil
}

func (s *SharingService) Redeem(ctx context.Context, token string, redeemerID int64) error {
	if err := s.repo.Redeem(ctx, token, redeemerID); err != nil {
		return err
	}

	s.logger.WithField("user_id", redeemerID).Info("Share token redeemed")
	return nil
}
