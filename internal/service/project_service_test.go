package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Inkpot/inkpot/internal/domain"
	"github.com/Inkpot/inkpot/pkg/logger"
)

func TestProjectService_Create(t *testing.T) {
	repo := new(mockProjectRepository)
	service := NewProjectService(repo, logger.NewMockLogger(t))
	ctx := context.Background()

	// Test successful provisioning
	expected := &domain.Project{
		ID:             3,
		MainDocumentID: 11,
		OwnerID:        7,
		Name:           "thesis",
		CreatedAt:      time.Now(),
		LastModified:   time.Now(),
	}
	repo.On("Create", ctx, "thesis", int64(7)).Return(expected, nil)

	project, err := service.Create(ctx, "thesis", 7)
	require.NoError(t, err)
	assert.Equal(t, expected, project)
	repo.AssertExpectations(t)

	// Test empty name rejected before the repository runs
	project, err = service.Create(ctx, "", 7)
	require.Error(t, err)
	assert.Nil(t, project)
	var invalid *domain.ErrInvalidUserData
	assert.ErrorAs(t, err, &invalid)
}

func TestProjectService_Rename(t *testing.T) {
	repo := new(mockProjectRepository)
	service := NewProjectService(repo, logger.NewMockLogger(t))
	ctx := context.Background()

	// Test successful rename
	repo.On("UpdateName", ctx, int64(3), "renamed").Return(nil)
	require.NoError(t, service.Rename(ctx, 3, "renamed"))

	// Test unknown project
	repo.On("UpdateName", ctx, int64(99), "renamed").
		Return(&domain.ErrProjectNotFound{ProjectID: 99})
	err := service.Rename(ctx, 99, "renamed")
	var notFound *domain.ErrProjectNotFound
	assert.ErrorAs(t, err, &notFound)

	// Test empty name rejected
	err = service.Rename(ctx, 3, "")
	var invalid *domain.ErrInvalidUserData
	assert.ErrorAs(t, err, &invalid)
	repo.AssertExpectations(t)
}

func TestProjectService_List(t *testing.T) {
	repo := new(mockProjectRepository)
	service := NewProjectService(repo, logger.NewMockLogger(t))
	ctx := context.Background()

	expected := []*domain.Project{{ID: 3, Name: "thesis"}}
	repo.On("List", ctx, int64(7)).Return(expected, nil)

	projects, err := service.List(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, expected, projects)
	repo.AssertExpectations(t)
}
