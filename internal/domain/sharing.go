package domain

import "context"

// SharingGrant links a collaborator to a project they were invited to.
type SharingGrant struct {
	FriendID  int64 `json:"friend_id"`
	ProjectID int64 `json:"project_id"`
}

type SharingRepository interface {
	// CreateToken binds token to projectID, provided requesterID owns the
	// project; ownership is enforced by the insert's SQL predicate, so a
	// non-owner gets ErrProjectNotFound and no token row.
	CreateToken(ctx context.Context, projectID, requesterID int64, token string) error

	// Redeem resolves token to its project and inserts a sharing grant
	// for redeemerID. Returns ErrShareTokenNotFound for unknown tokens.
	// Tokens are not invalidated by redemption.
	Redeem(ctx context.Context, token string, redeemerID int64) error
}

// SharingServiceInterface defines the interface for share-token operations
type SharingServiceInterface interface {
	// MintToken generates an opaque token granting access to projectID,
	// on behalf of its owner.
	MintToken(ctx context.Context, projectID, requesterID int64) (string, error)

	// Redeem grants the redeemer access to the token's project.
	Redeem(ctx context.Context, token string, redeemerID int64) error
}

// ErrShareTokenNotFound is returned when redeeming a token that does not
// exist
type ErrShareTokenNotFound struct{}

func (e *ErrShareTokenNotFound) Error() string {
	return "share token not found"
}
