package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/Inkpot/inkpot/internal/domain"
	"github.com/Inkpot/inkpot/pkg/blob"
)

// WriteJSONError writes a JSON error response with the given message and status code.
// It sets the Content-Type header to application/json and automatically formats
// the response as {"error": "message"}.
func WriteJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}

// writeJSON writes a JSON response with the given status code and data.
// It sets the Content-Type header to application/json.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// handleServiceError maps domain errors onto HTTP status codes. Anything
// not recognized is an internal error and its detail is not leaked.
func handleServiceError(w http.ResponseWriter, err error) {
	var (
		userNotFound     *domain.ErrUserNotFound
		projectNotFound  *domain.ErrProjectNotFound
		documentNotFound *domain.ErrDocumentNotFound
		resourceNotFound *domain.ErrResourceNotFound
		sessionNotFound  *domain.ErrSessionNotFound
		tokenNotFound    *domain.ErrShareTokenNotFound
		userExists       *domain.ErrUserExists
		sessionExists    *domain.ErrSessionExists
		invalidData      *domain.ErrInvalidUserData
		badCredentials   *domain.ErrInvalidCredentials
		sessionExpired   *domain.ErrSessionExpired
	)
	switch {
	case errors.As(err, &userNotFound),
		errors.As(err, &projectNotFound),
		errors.As(err, &documentNotFound),
		errors.As(err, &resourceNotFound),
		errors.As(err, &sessionNotFound),
		errors.As(err, &tokenNotFound):
		WriteJSONError(w, err.Error(), http.StatusNotFound)
	case errors.As(err, &userExists), errors.As(err, &sessionExists):
		WriteJSONError(w, err.Error(), http.StatusConflict)
	case errors.As(err, &badCredentials), errors.As(err, &sessionExpired):
		WriteJSONError(w, err.Error(), http.StatusUnauthorized)
	case errors.As(err, &invalidData), errors.Is(err, blob.ErrInvalidName):
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
	default:
		WriteJSONError(w, "Internal server error", http.StatusInternalServerError)
	}
}

// pathID parses a numeric path value; ok is false after an error response
// has already been written.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		WriteJSONError(w, "Invalid "+name, http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
