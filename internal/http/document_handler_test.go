package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Inkpot/inkpot/internal/domain"
)

const testMaxContentSize = 1 << 20

func setupDocumentMux(documents *mockDocumentService) *http.ServeMux {
	authUser := &domain.AuthenticatedUser{ID: 7, Email: "ada@example.com"}
	mux := http.NewServeMux()
	NewDocumentHandler(documents, testMaxContentSize).RegisterRoutes(mux, authAs(authUser))
	return mux
}

func TestDocumentHandler_ListAndCreate(t *testing.T) {
	documents := new(mockDocumentService)
	mux := setupDocumentMux(documents)

	// Test list
	documents.On("List", mock.Anything, int64(3)).
		Return([]*domain.Document{{ID: 11, ProjectID: 3, Name: "main.tex"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/projects/3/documents", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var listed []*domain.Document
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "main.tex", listed[0].Name)

	// Test create
	documents.On("Create", mock.Anything, int64(3), domain.DocumentData{Name: "chapter1.tex"}).
		Return(&domain.Document{ID: 12, ProjectID: 3, Name: "chapter1.tex"}, nil)

	req = httptest.NewRequest(http.MethodPost, "/projects/3/documents",
		bytes.NewBufferString(`{"name":"chapter1.tex"}`))
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)

	// Test create in unknown project
	documents.On("Create", mock.Anything, int64(99), mock.Anything).
		Return(nil, &domain.ErrProjectNotFound{ProjectID: 99})

	req = httptest.NewRequest(http.MethodPost, "/projects/99/documents",
		bytes.NewBufferString(`{"name":"chapter1.tex"}`))
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	documents.AssertExpectations(t)
}

func TestDocumentHandler_MainContent(t *testing.T) {
	documents := new(mockDocumentService)
	mux := setupDocumentMux(documents)

	// Test read main
	documents.On("ReadMain", mock.Anything, int64(3)).
		Return([]byte(`\documentclass{article}`), nil)

	req := httptest.NewRequest(http.MethodGet, "/projects/3/documents/main", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `\documentclass{article}`, rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")

	// Test write main
	documents.On("WriteMain", mock.Anything, int64(3), []byte("updated")).Return(nil)

	req = httptest.NewRequest(http.MethodPut, "/projects/3/documents",
		bytes.NewBufferString("updated"))
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// Test oversized write is rejected before the service runs
	req = httptest.NewRequest(http.MethodPut, "/projects/3/documents",
		strings.NewReader(strings.Repeat("a", testMaxContentSize+1)))
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	documents.AssertExpectations(t)
}

func TestDocumentHandler_Rename(t *testing.T) {
	documents := new(mockDocumentService)
	mux := setupDocumentMux(documents)

	documents.On("Rename", mock.Anything, int64(3), int64(12), domain.DocumentData{Name: "intro.tex"}).
		Return(nil)

	req := httptest.NewRequest(http.MethodPut, "/projects/3/documents/12/metadata",
		bytes.NewBufferString(`{"name":"intro.tex"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	documents.AssertExpectations(t)
}

func TestDocumentHandler_UploadContentNotImplemented(t *testing.T) {
	documents := new(mockDocumentService)
	mux := setupDocumentMux(documents)

	req := httptest.NewRequest(http.MethodPost, "/projects/3/documents/12/content", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotImplemented, rec.Code)
}
