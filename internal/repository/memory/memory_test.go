package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Inkpot/inkpot/internal/domain"
	"github.com/Inkpot/inkpot/pkg/blob"
)

func TestProjectProvisioning(t *testing.T) {
	store := NewStore()
	users := NewUserRepository(store)
	projects := NewProjectRepository(store)
	documents := NewDocumentRepository(store)
	ctx := context.Background()

	owner := &domain.User{Email: "ada@example.com", PasswordHash: "hash"}
	require.NoError(t, users.Create(ctx, owner))

	project, err := projects.Create(ctx, "thesis", owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", project.OwnerEmail)

	// The main document exists, is linked and readable as an empty file.
	listed, err := documents.List(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, domain.MainDocumentName, listed[0].Name)
	assert.Equal(t, project.MainDocumentID, listed[0].ID)

	content, err := documents.ReadContent(ctx, listed[0])
	require.NoError(t, err)
	assert.Empty(t, content)
}

func TestSharingGrantsListAccess(t *testing.T) {
	store := NewStore()
	users := NewUserRepository(store)
	projects := NewProjectRepository(store)
	sharing := NewSharingRepository(store)
	ctx := context.Background()

	owner := &domain.User{Email: "ada@example.com"}
	friend := &domain.User{Email: "grace@example.com"}
	require.NoError(t, users.Create(ctx, owner))
	require.NoError(t, users.Create(ctx, friend))

	project, err := projects.Create(ctx, "thesis", owner.ID)
	require.NoError(t, err)

	// Only the owner can mint a token.
	err = sharing.CreateToken(ctx, project.ID, friend.ID, "tok")
	var notFound *domain.ErrProjectNotFound
	assert.ErrorAs(t, err, &notFound)

	require.NoError(t, sharing.CreateToken(ctx, project.ID, owner.ID, "tok"))

	// Before redeeming, the friend sees nothing.
	listed, err := projects.List(ctx, friend.ID)
	require.NoError(t, err)
	assert.Empty(t, listed)

	require.NoError(t, sharing.Redeem(ctx, "tok", friend.ID))

	listed, err = projects.List(ctx, friend.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, project.ID, listed[0].ID)

	// Tokens survive redemption.
	require.NoError(t, sharing.Redeem(ctx, "tok", friend.ID))

	var tokenMissing *domain.ErrShareTokenNotFound
	err = sharing.Redeem(ctx, "bogus", friend.ID)
	assert.ErrorAs(t, err, &tokenMissing)
}

func TestDocumentRenameKeepsContent(t *testing.T) {
	store := NewStore()
	documents := NewDocumentRepository(store)
	ctx := context.Background()

	document, err := documents.Insert(ctx, 1, "draft.tex")
	require.NoError(t, err)
	require.NoError(t, documents.WriteContent(ctx, document, []byte("abc")))

	require.NoError(t, documents.UpdateName(ctx, document, "final.tex"))

	renamed, err := documents.GetMeta(ctx, 1, document.ID)
	require.NoError(t, err)
	content, err := documents.ReadContent(ctx, renamed)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), content)

	// Unsafe new names never reach the store.
	err = documents.UpdateName(ctx, renamed, "../escape.tex")
	assert.ErrorIs(t, err, blob.ErrInvalidName)
}
