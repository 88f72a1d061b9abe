package middleware

import (
	"net/http"
	"strings"

	"github.com/Inkpot/inkpot/internal/domain"
)

// BearerToken extracts the bearer token from the Authorization header.
func BearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

// RequireAuth resolves the bearer session token and stores the
// authenticated user in the request context. Requests without a valid,
// unexpired session are rejected with 401.
func RequireAuth(authService domain.AuthServiceInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := BearerToken(r)
			if !ok {
				http.Error(w, "Authorization header is required", http.StatusUnauthorized)
				return
			}

			session, err := authService.Authenticate(r.Context(), token)
			if err != nil {
				http.Error(w, "Invalid or expired session", http.StatusUnauthorized)
				return
			}

			ctx := domain.WithAuthUser(r.Context(), &domain.AuthenticatedUser{
				ID:    session.User.ID,
				Email: session.User.Email,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
