package http

import (
	"encoding/json"
	"net/http"

	"github.com/Inkpot/inkpot/internal/domain"
)

type ProjectHandler struct {
	projectService domain.ProjectServiceInterface
	sharingService domain.SharingServiceInterface
}

func NewProjectHandler(projectService domain.ProjectServiceInterface, sharingService domain.SharingServiceInterface) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		sharingService: sharingService,
	}
}

func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	user := domain.AuthUserFromContext(r.Context())

	projects, err := h.projectService.List(r.Context(), user.ID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, projects)
}

func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := domain.AuthUserFromContext(r.Context())

	var input domain.ProjectData
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	project, err := h.projectService.Create(r.Context(), input.Name, user.ID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, project)
}

func (h *ProjectHandler) GetMeta(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	project, err := h.projectService.GetMeta(r.Context(), projectID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) Rename(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var input domain.ProjectData
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.projectService.Rename(r.Context(), projectID, input.Name); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Share mints a token that grants access to the project. Only the owner
// can mint; for anyone else the project does not exist.
func (h *ProjectHandler) Share(w http.ResponseWriter, r *http.Request) {
	user := domain.AuthUserFromContext(r.Context())

	projectID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	token, err := h.sharingService.MintToken(r.Context(), projectID, user.ID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"token": token})
}

// Redeem joins the caller to the project behind a share token.
func (h *ProjectHandler) Redeem(w http.ResponseWriter, r *http.Request) {
	user := domain.AuthUserFromContext(r.Context())

	token := r.PathValue("token")
	if token == "" {
		WriteJSONError(w, "Invalid token", http.StatusBadRequest)
		return
	}

	if err := h.sharingService.Redeem(r.Context(), token, user.ID); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *ProjectHandler) RegisterRoutes(mux *http.ServeMux, requireAuth func(http.Handler) http.Handler) {
	mux.Handle("GET /projects", requireAuth(http.HandlerFunc(h.List)))
	mux.Handle("POST /projects", requireAuth(http.HandlerFunc(h.Create)))
	mux.Handle("GET /projects/{id}/metadata", requireAuth(http.HandlerFunc(h.GetMeta)))
	mux.Handle("PUT /projects/{id}/metadata", requireAuth(http.HandlerFunc(h.Rename)))
	mux.Handle("PUT /projects/{id}/sharing", requireAuth(http.HandlerFunc(h.Share)))
	mux.Handle("POST /projects/sharing/{token}", requireAuth(http.HandlerFunc(h.Redeem)))
}
