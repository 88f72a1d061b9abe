package http

import (
	"encoding/json"
	"net/http"

	"github.com/Inkpot/inkpot/internal/domain"
)

type ResourceHandler struct {
	resourceService domain.ResourceServiceInterface
	maxContentSize  int64
}

func NewResourceHandler(resourceService domain.ResourceServiceInterface, maxContentSize int64) *ResourceHandler {
	return &ResourceHandler{
		resourceService: resourceService,
		maxContentSize:  maxContentSize,
	}
}

func (h *ResourceHandler) List(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	resources, err := h.resourceService.List(r.Context(), projectID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resources)
}

func (h *ResourceHandler) Create(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var input domain.ResourceData
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	resource, err := h.resourceService.Create(r.Context(), projectID, input)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, resource)
}

// Read streams the resource bytes as-is; the server does not track content
// types per resource.
func (h *ResourceHandler) Read(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	resourceID, ok := pathID(w, r, "resource_id")
	if !ok {
		return
	}

	content, err := h.resourceService.Read(r.Context(), projectID, resourceID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(content)
}

// Write replaces the resource bytes with the raw request body, capped at
// the configured size limit.
func (h *ResourceHandler) Write(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	resourceID, ok := pathID(w, r, "resource_id")
	if !ok {
		return
	}

	content, err := readContent(w, r, h.maxContentSize)
	if err != nil {
		return
	}

	if err := h.resourceService.Write(r.Context(), projectID, resourceID, content); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ResourceHandler) Rename(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	resourceID, ok := pathID(w, r, "resource_id")
	if !ok {
		return
	}

	var input domain.ResourceData
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.resourceService.Rename(r.Context(), projectID, resourceID, input); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UploadContent is reserved for multipart uploads, which are not available
// yet; raw writes go through PUT on the resource itself.
func (h *ResourceHandler) UploadContent(w http.ResponseWriter, r *http.Request) {
	WriteJSONError(w, "Not implemented", http.StatusNotImplemented)
}

func (h *ResourceHandler) RegisterRoutes(mux *http.ServeMux, requireAuth func(http.Handler) http.Handler) {
	mux.Handle("GET /projects/{id}/resources", requireAuth(http.HandlerFunc(h.List)))
	mux.Handle("POST /projects/{id}/resources", requireAuth(http.HandlerFunc(h.Create)))
	mux.Handle("GET /projects/{id}/resources/{resource_id}", requireAuth(http.HandlerFunc(h.Read)))
	mux.Handle("PUT /projects/{id}/resources/{resource_id}", requireAuth(http.HandlerFunc(h.Write)))
	mux.Handle("PUT /projects/{id}/resources/{resource_id}/metadata", requireAuth(http.HandlerFunc(h.Rename)))
	mux.Handle("POST /projects/{id}/resources/{resource_id}/content", requireAuth(http.HandlerFunc(h.UploadContent)))
}
