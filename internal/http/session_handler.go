package http

import (
	"encoding/json"
	"net/http"

	"github.com/Inkpot/inkpot/internal/domain"
	"github.com/Inkpot/inkpot/internal/http/middleware"
)

// SessionHandler serves the session lifecycle. Get and Delete resolve the
// bearer token themselves instead of going through the auth middleware,
// because they need the token, not just the user behind it.
type SessionHandler struct {
	authService domain.AuthServiceInterface
}

func NewSessionHandler(authService domain.AuthServiceInterface) *SessionHandler {
	return &SessionHandler{
		authService: authService,
	}
}

// Create stores a client-supplied session token.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.SessionData
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.authService.CreateSession(r.Context(), input); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// Login verifies credentials and mints a fresh session token.
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input domain.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	response, err := h.authService.Login(r.Context(), input)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// Get returns the session behind the bearer token.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.BearerToken(r)
	if !ok {
		WriteJSONError(w, "Authorization header is required", http.StatusUnauthorized)
		return
	}

	session, err := h.authService.Authenticate(r.Context(), token)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, session)
}

// Delete logs the session out; deleting an absent session succeeds.
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.BearerToken(r)
	if !ok {
		WriteJSONError(w, "Authorization header is required", http.StatusUnauthorized)
		return
	}

	if err := h.authService.Logout(r.Context(), token); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *SessionHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /sessions", h.Create)
	mux.HandleFunc("POST /sessions/login", h.Login)
	mux.HandleFunc("GET /sessions", h.Get)
	mux.HandleFunc("DELETE /sessions", h.Delete)
}
