package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Inkpot/inkpot/internal/domain"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type mockSessionRepository struct {
	mock.Mock
}

func (m *mockSessionRepository) Insert(ctx context.Context, session *domain.SessionData) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *mockSessionRepository) Get(ctx context.Context, id string) (*domain.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *mockSessionRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockProjectRepository struct {
	mock.Mock
}

func (m *mockProjectRepository) Create(ctx context.Context, name string, ownerID int64) (*domain.Project, error) {
	args := m.Called(ctx, name, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *mockProjectRepository) List(ctx context.Context, userID int64) ([]*domain.Project, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Project), args.Error(1)
}

func (m *mockProjectRepository) GetMeta(ctx context.Context, projectID int64) (*domain.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *mockProjectRepository) UpdateName(ctx context.Context, projectID int64, name string) error {
	args := m.Called(ctx, projectID, name)
	return args.Error(0)
}

type mockDocumentRepository struct {
	mock.Mock
}

func (m *mockDocumentRepository) List(ctx context.Context, projectID int64) ([]*domain.Document, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Document), args.Error(1)
}

func (m *mockDocumentRepository) GetMeta(ctx context.Context, projectID, documentID int64) (*domain.Document, error) {
	args := m.Called(ctx, projectID, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *mockDocumentRepository) Insert(ctx context.Context, projectID int64, name string) (*domain.Document, error) {
	args := m.Called(ctx, projectID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *mockDocumentRepository) UpdateName(ctx context.Context, document *domain.Document, name string) error {
	args := m.Called(ctx, document, name)
	return args.Error(0)
}

func (m *mockDocumentRepository) ReadContent(ctx context.Context, document *domain.Document) ([]byte, error) {
	args := m.Called(ctx, document)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *mockDocumentRepository) WriteContent(ctx context.Context, document *domain.Document, content []byte) error {
	args := m.Called(ctx, document, content)
	return args.Error(0)
}

type mockResourceRepository struct {
	mock.Mock
}

func (m *mockResourceRepository) List(ctx context.Context, projectID int64) ([]*domain.Resource, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Resource), args.Error(1)
}

func (m *mockResourceRepository) GetMeta(ctx context.Context, projectID, resourceID int64) (*domain.Resource, error) {
	args := m.Called(ctx, projectID, resourceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resource), args.Error(1)
}

func (m *mockResourceRepository) Insert(ctx context.Context, projectID int64, name string) (*domain.Resource, error) {
	args := m.Called(ctx, projectID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resource), args.Error(1)
}

func (m *mockResourceRepository) UpdateName(ctx context.Context, resource *domain.Resource, name string) error {
	args := m.Called(ctx, resource, name)
	return args.Error(0)
}

func (m *mockResourceRepository) ReadContent(ctx context.Context, resource *domain.Resource) ([]byte, error) {
	args := m.Called(ctx, resource)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *mockResourceRepository) WriteContent(ctx context.Context, resource *domain.Resource, content []byte) error {
	args := m.Called(ctx, resource, content)
	return args.Error(0)
}

type mockSharingRepository struct {
	mock.Mock
}

func (m *mockSharingRepository) CreateToken(ctx context.Context, projectID, requesterID int64, token string) error {
	args := m.Called(ctx, projectID, requesterID, token)
	return args.Error(0)
}

func (m *mockSharingRepository) Redeem(ctx context.Context, token string, redeemerID int64) error {
	args := m.Called(ctx, token, redeemerID)
	return args.Error(0)
}
