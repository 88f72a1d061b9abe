package memory

import (
	"context"
	"sort"

	"github.com/Inkpot/inkpot/internal/domain"
	"github.com/Inkpot/inkpot/pkg/blob"
)

type documentRepository struct {
	store *Store
}

// NewDocumentRepository creates an in-memory document repository.
func NewDocumentRepository(store *Store) domain.DocumentRepository {
	return &documentRepository{store: store}
}

func (r *documentRepository) List(ctx context.Context, projectID int64) ([]*domain.Document, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	var documents []*domain.Document
	for _, document := range s.documents {
		if document.ProjectID == projectID {
			result := *document
			documents = append(documents, &result)
		}
	}
	sort.Slice(documents, func(i, j int) bool { return documents[i].ID < documents[j].ID })
	return documents, nil
}

func (r *documentRepository) GetMeta(ctx context.Context, projectID, documentID int64) (*domain.Document, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	document, ok := s.documents[documentID]
	if !ok || document.ProjectID != projectID {
		return nil, &domain.ErrDocumentNotFound{DocumentID: documentID}
	}
	result := *document
	return &result, nil
}

func (r *documentRepository) Insert(ctx context.Context, projectID int64, name string) (*domain.Document, error) {
	if err := blob.ValidateName(name); err != nil {
		return nil, err
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextDocumentID++
	document := &domain.Document{
		ID:        s.nextDocumentID,
		ProjectID: projectID,
		Name:      name,
	}
	s.documents[document.ID] = document
	s.content[contentKey(projectID, name)] = []byte{}

	result := *document
	return &result, nil
}

func (r *documentRepository) UpdateName(ctx context.Context, document *domain.Document, name string) error {
	if err := blob.ValidateName(name); err != nil {
		return err
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.documents[document.ID]
	if !ok || stored.ProjectID != document.ProjectID {
		return &domain.ErrDocumentNotFound{DocumentID: document.ID}
	}
	oldKey := contentKey(stored.ProjectID, stored.Name)
	if content, exists := s.content[oldKey]; exists {
		delete(s.content, oldKey)
		s.content[contentKey(stored.ProjectID, name)] = content
	}
	stored.Name = name
	return nil
}

func (r *documentRepository) ReadContent(ctx context.Context, document *domain.Document) ([]byte, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	content, ok := s.content[contentKey(document.ProjectID, document.Name)]
	if !ok {
		return nil, &domain.ErrDocumentNotFound{DocumentID: document.ID}
	}
	return append([]byte(nil), content...), nil
}

func (r *documentRepository) WriteContent(ctx context.Context, document *domain.Document, content []byte) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	key := contentKey(document.ProjectID, document.Name)
	if _, ok := s.content[key]; !ok {
		return &domain.ErrDocumentNotFound{DocumentID: document.ID}
	}
	s.content[key] = append([]byte(nil), content...)
	return nil
}
