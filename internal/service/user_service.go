package service

import (
	"context"

	"github.com/asaskevich/govalidator"

	"github.com/Inkpot/inkpot/internal/domain"
	"github.com/Inkpot/inkpot/pkg/logger"
)

type UserService struct {
	repo   domain.UserRepository
	logger logger.Logger
}

func NewUserService(repo domain.UserRepository, logger logger.Logger) *UserService {
	return &UserService{
		repo:   repo,
		logger: logger,
	}
}

// Ensure UserService implements UserServiceInterface
var _ domain.UserServiceInterface = (*UserService)(nil)

// Register creates an account from an email and a client-side password
// hash. The hash is treated as an opaque credential and stored as-is.
func (s *UserService) Register(ctx context.Context, data domain.UserData) (*domain.User, error) {
	if !govalidator.IsEmail(data.Email) {
		return nil, &domain.ErrInvalidUserData{Message: "invalid email address"}
	}
	if data.PasswordHash == "" {
		return nil, &domain.ErrInvalidUserData{Message: "password hash is required"}
	}

	user := &domain.User{
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.WithField("email", user.Email).Info("User registered")
	return user, nil
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.repo.GetByEmail(ctx, email)
}
