package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Inkpot/inkpot/internal/domain"
	"github.com/Inkpot/inkpot/pkg/crypto"
	"github.com/Inkpot/inkpot/pkg/logger"
)

type AuthService struct {
	repo            domain.SessionRepository
	userRepo        domain.UserRepository
	sessionDuration time.Duration
	logger          logger.Logger
}

func NewAuthService(repo domain.SessionRepository, userRepo domain.UserRepository, sessionDuration time.Duration, logger logger.Logger) *AuthService {
	return &AuthService{
		repo:            repo,
		userRepo:        userRepo,
		sessionDuration: sessionDuration,
		logger:          logger,
	}
}

// Ensure AuthService implements AuthServiceInterface
var _ domain.AuthServiceInterface = (*AuthService)(nil)

// CreateSession stores a client-supplied token verbatim. The token must
// already be bound to an existing user id; a colliding token is rejected,
// never rebound.
func (s *AuthService) CreateSession(ctx context.Context, data domain.SessionData) error {
	if data.ID == "" {
		return &domain.ErrInvalidUserData{Message: "session token is required"}
	}
	return s.repo.Insert(ctx, &data)
}

// Login verifies the password against the stored bcrypt hash and mints a
// fresh random session. An unknown email and a wrong password are
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, input domain.LoginInput) (*domain.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if _, ok := err.(*domain.ErrUserNotFound); ok {
			return nil, &domain.ErrInvalidCredentials{}
		}
		return nil, err
	}

	if !crypto.CheckPasswordHash(input.Password, user.PasswordHash) {
		s.logger.WithField("email", input.Email).Warn("Login failed: wrong password")
		return nil, &domain.ErrInvalidCredentials{}
	}

	token, err := crypto.GenerateToken(crypto.TokenLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	session := &domain.SessionData{
		ID:      token,
		UserID:  user.ID,
		Expires: time.Now().Add(s.sessionDuration).Unix(),
	}
	if err := s.repo.Insert(ctx, session); err != nil {
		return nil, err
	}

	s.logger.WithField("email", user.Email).Info("User logged in")
	return &domain.AuthResponse{
		Token:   token,
		Expires: session.Expires,
		User:    *user,
	}, nil
}

// Authenticate resolves a bearer token and enforces its expiry. Expired
// sessions are deleted on sight so the table does not accumulate them.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.Session, error) {
	session, err := s.repo.Get(ctx, token)
	if err != nil {
		return nil, err
	}

	if session.Expires < time.Now().Unix() {
		if err := s.repo.Delete(ctx, token); err != nil {
			s.logger.WithField("error", err.Error()).Warn("Failed to delete expired session")
		}
		return nil, &domain.ErrSessionExpired{}
	}
	return session, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.repo.Delete(ctx, token)
}
