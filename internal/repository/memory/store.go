// Package memory provides in-memory repository implementations. They honor
// the same error contracts as their PostgreSQL counterparts and are meant
// for tests and local development without a database.
package memory

import (
	"fmt"
	"sync"

	"github.com/Inkpot/inkpot/internal/domain"
)

// Store holds all in-memory state. Repositories created from the same
// Store share it, so cross-entity operations (project provisioning,
// sharing) behave like they do against one database.
type Store struct {
	mu sync.Mutex

	users    map[int64]*domain.User
	sessions map[string]*domain.SessionData

	projects  map[int64]*domain.Project
	documents map[int64]*domain.Document
	resources map[int64]*domain.Resource

	tokens map[string]int64         // token -> project id
	grants map[int64]map[int64]bool // project id -> friend ids

	content map[string][]byte // "projectID/name" -> bytes

	nextUserID     int64
	nextProjectID  int64
	nextDocumentID int64
	nextResourceID int64
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		users:     make(map[int64]*domain.User),
		sessions:  make(map[string]*domain.SessionData),
		projects:  make(map[int64]*domain.Project),
		documents: make(map[int64]*domain.Document),
		resources: make(map[int64]*domain.Resource),
		tokens:    make(map[string]int64),
		grants:    make(map[int64]map[int64]bool),
		content:   make(map[string][]byte),
	}
}

func contentKey(projectID int64, name string) string {
	return fmt.Sprintf("%d/%s", projectID, name)
}
