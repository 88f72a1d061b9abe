package http

import (
	"net/http"
)

type RootHandler struct {
	version string
}

func NewRootHandler(version string) *RootHandler {
	return &RootHandler{version: version}
}

func (h *RootHandler) Handle(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "api running",
		"version": h.version,
	})
}

func (h *RootHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.Handle)
}
