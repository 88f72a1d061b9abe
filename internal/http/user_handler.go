package http

import (
	"encoding/json"
	"net/http"

	"github.com/Inkpot/inkpot/internal/domain"
)

type UserHandler struct {
	userService domain.UserServiceInterface
}

func NewUserHandler(userService domain.UserServiceInterface) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input domain.UserData
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.userService.Register(r.Context(), input)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

func (h *UserHandler) GetByEmail(w http.ResponseWriter, r *http.Request) {
	email := r.PathValue("email")
	if email == "" {
		WriteJSONError(w, "Invalid email", http.StatusBadRequest)
		return
	}

	user, err := h.userService.GetByEmail(r.Context(), email)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) RegisterRoutes(mux *http.ServeMux, requireAuth func(http.Handler) http.Handler) {
	mux.HandleFunc("POST /users", h.Register)
	mux.Handle("GET /users/{email}", requireAuth(http.HandlerFunc(h.GetByEmail)))
}
