package http

import (
	"context"
	"net/http"

	"github.com/stretchr/testify/mock"

	"github.com/Inkpot/inkpot/internal/domain"
)

// authAs is a stand-in for the auth middleware that injects a fixed user.
func authAs(user *domain.AuthenticatedUser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(domain.WithAuthUser(r.Context(), user)))
		})
	}
}

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) Register(ctx context.Context, data domain.UserData) (*domain.User, error) {
	args := m.Called(ctx, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) CreateSession(ctx context.Context, data domain.SessionData) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}

func (m *mockAuthService) Login(ctx context.Context, input domain.LoginInput) (*domain.AuthResponse, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuthResponse), args.Error(1)
}

func (m *mockAuthService) Authenticate(ctx context.Context, token string) (*domain.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *mockAuthService) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

type mockProjectService struct {
	mock.Mock
}

func (m *mockProjectService) Create(ctx context.Context, name string, ownerID int64) (*domain.Project, error) {
	args := m.Called(ctx, name, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *mockProjectService) List(ctx context.Context, userID int64) ([]*domain.Project, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Project), args.Error(1)
}

func (m *mockProjectService) GetMeta(ctx context.Context, projectID int64) (*domain.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *mockProjectService) Rename(ctx context.Context, projectID int64, name string) error {
	args := m.Called(ctx, projectID, name)
	return args.Error(0)
}

type mockSharingService struct {
	mock.Mock
}

func (m *mockSharingService) MintToken(ctx context.Context, projectID, requesterID int64) (string, error) {
	args := m.Called(ctx, projectID, requesterID)
	return args.String(0), args.Error(1)
}

func (m *mockSharingService) Redeem(ctx context.Context, token string, redeemerID int64) error {
	args := m.Called(ctx, token, redeemerID)
	return args.Error(0)
}

type mockDocumentService struct {
	mock.Mock
}

func (m *mockDocumentService) List(ctx context.Context, projectID int64) ([]*domain.Document, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Document), args.Error(1)
}

func (m *mockDocumentService) Create(ctx context.Context, projectID int64, data domain.DocumentData) (*domain.Document, error) {
	args := m.Called(ctx, projectID, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *mockDocumentService) Rename(ctx context.Context, projectID, documentID int64, data domain.DocumentData) error {
	args := m.Called(ctx, projectID, documentID, data)
	return args.Error(0)
}

func (m *mockDocumentService) ReadMain(ctx context.Context, projectID int64) ([]byte, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *mockDocumentService) WriteMain(ctx context.Context, projectID int64, content []byte) error {
	args := m.Called(ctx, projectID, content)
	return args.Error(0)
}

type mockResourceService struct {
	mock.Mock
}

func (m *mockResourceService) List(ctx context.Context, projectID int64) ([]*domain.Resource, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Resource), args.Error(1)
}

func (m *mockResourceService) Create(ctx context.Context, projectID int64, data domain.ResourceData) (*domain.Resource, error) {
	args := m.Called(ctx, projectID, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resource), args.Error(1)
}

func (m *mockResourceService) Rename(ctx context.Context, projectID, resourceID int64, data domain.ResourceData) error {
	args := m.Called(ctx, projectID, resourceID, data)
	return args.Error(0)
}

func (m *mockResourceService) Read(ctx context.Context, projectID, resourceID int64) ([]byte, error) {
	args := m.Called(ctx, projectID, resourceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *mockResourceService) Write(ctx context.Context, projectID, resourceID int64, content []byte) error {
	args := m.Called(ctx, projectID, resourceID, content)
	return args.Error(0)
}
