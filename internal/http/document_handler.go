package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/Inkpot/inkpot/internal/domain"
)

type DocumentHandler struct {
	documentService domain.DocumentServiceInterface
	maxContentSize  int64
}

func NewDocumentHandler(documentService domain.DocumentServiceInterface, maxContentSize int64) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
		maxContentSize:  maxContentSize,
	}
}

func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	documents, err := h.documentService.List(r.Context(), projectID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, documents)
}

func (h *DocumentHandler) Create(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var input domain.DocumentData
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	document, err := h.documentService.Create(r.Context(), projectID, input)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, document)
}

// ReadMain streams the content of the project's main document.
func (h *DocumentHandler) ReadMain(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	content, err := h.documentService.ReadMain(r.Context(), projectID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(content)
}

// WriteMain replaces the content of the project's main document with the
// raw request body.
func (h *DocumentHandler) WriteMain(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	content, err := readContent(w, r, h.maxContentSize)
	if err != nil {
		return
	}

	if err := h.documentService.WriteMain(r.Context(), projectID, content); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *DocumentHandler) Rename(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	documentID, ok := pathID(w, r, "document_id")
	if !ok {
		return
	}

	var input domain.DocumentData
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.documentService.Rename(r.Context(), projectID, documentID, input); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UploadContent is reserved for multipart uploads, which are not available
// yet; per-document writes go through the main-document endpoint.
func (h *DocumentHandler) UploadContent(w http.ResponseWriter, r *http.Request) {
	WriteJSONError(w, "Not implemented", http.StatusNotImplemented)
}

// readContent reads a size-capped raw body; on failure the error response
// has already been written.
func readContent(w http.ResponseWriter, r *http.Request, limit int64) ([]byte, error) {
	content, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			WriteJSONError(w, "Request body too large", http.StatusRequestEntityTooLarge)
			return nil, err
		}
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return nil, err
	}
	return content, nil
}

func (h *DocumentHandler) RegisterRoutes(mux *http.ServeMux, requireAuth func(http.Handler) http.Handler) {
	mux.Handle("GET /projects/{id}/documents", requireAuth(http.HandlerFunc(h.List)))
	mux.Handle("POST /projects/{id}/documents", requireAuth(http.HandlerFunc(h.Create)))
	mux.Handle("GET /projects/{id}/documents/main", requireAuth(http.HandlerFunc(h.ReadMain)))
	mux.Handle("PUT /projects/{id}/documents", requireAuth(http.HandlerFunc(h.WriteMain)))
	mux.Handle("PUT /projects/{id}/documents/{document_id}/metadata", requireAuth(http.HandlerFunc(h.Rename)))
	mux.Handle("POST /projects/{id}/documents/{document_id}/content", requireAuth(http.HandlerFunc(h.UploadContent)))
}
