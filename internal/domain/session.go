package domain

import "context"

// Key for storing the authenticated user in the request context
type contextKey string

const AuthUserKey contextKey = "auth_user"

// AuthenticatedUser is the principal resolved from a bearer session token.
type AuthenticatedUser struct {
	ID    int64
	Email string
}

// AuthUserFromContext returns the authenticated user stored by the auth
// middleware, or nil.
func AuthUserFromContext(ctx context.Context) *AuthenticatedUser {
	user, _ := ctx.Value(AuthUserKey).(*AuthenticatedUser)
	return user
}

// WithAuthUser stores the authenticated user in the context.
func WithAuthUser(ctx context.Context, user *AuthenticatedUser) context.Context {
	return context.WithValue(ctx, AuthUserKey, user)
}

// Session is a stored session joined to its user.
type Session struct {
	ID      string `json:"id"`
	User    User   `json:"user"`
	Expires int64  `json:"expires"`
}

// SessionData is the persisted session row: an opaque token bound to a
// user and an advisory unix-timestamp expiry.
type SessionData struct {
	ID      string `json:"id"`
	UserID  int64  `json:"user_id"`
	Expires int64  `json:"expires"`
}

type SessionRepository interface {
	// Insert stores a new session. A token that is already present is
	// reported as ErrSessionExists, never overwritten.
	Insert(ctx context.Context, session *SessionData) error

	// Get resolves a token to its session and user.
	// Returns ErrSessionNotFound when no row matches; expiry is not
	// checked here, callers decide what an expired session means.
	Get(ctx context.Context, id string) (*Session, error)

	// Delete removes a session. Deleting an absent session is not an
	// error.
	Delete(ctx context.Context, id string) error
}

// LoginInput is the credential pair for the login endpoint.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by a successful login.
type AuthResponse struct {
	Token   string `json:"token"`
	Expires int64  `json:"expires"`
	User    User   `json:"user"`
}

// AuthServiceInterface defines the interface for session operations
type AuthServiceInterface interface {
	// CreateSession stores a client-supplied session token.
	CreateSession(ctx context.Context, data SessionData) error

	// Login verifies credentials and mints a server-generated session.
	Login(ctx context.Context, input LoginInput) (*AuthResponse, error)

	// Authenticate resolves a bearer token to its session, enforcing
	// expiry: an expired session yields ErrSessionExpired.
	Authenticate(ctx context.Context, token string) (*Session, error)

	// Logout deletes the session bound to the token; idempotent.
	Logout(ctx context.Context, token string) error
}

// ErrSessionNotFound is returned when a session is not found
type ErrSessionNotFound struct{}

func (e *ErrSessionNotFound) Error() string {
	return "session not found"
}

// ErrSessionExists is returned when inserting a session token that is
// already present
type ErrSessionExists struct{}

func (e *ErrSessionExists) Error() string {
	return "session already exists"
}

// ErrSessionExpired is returned when a session's expiry has passed
type ErrSessionExpired struct{}

func (e *ErrSessionExpired) Error() string {
	return "session expired"
}

// ErrInvalidCredentials is returned when login credentials do not match
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid credentials"
}
