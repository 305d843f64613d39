package store

import (
	"sync"

	"github.com/gradpoint/gms-api/internal/models"
)

// DocumentStore keeps document requests in memory, insertion ordered.
type DocumentStore struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]*models.DocumentRequest
}

// NewDocumentStore constructs an empty store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{byID: make(map[string]*models.DocumentRequest)}
}

// Add appends a request.
func (s *DocumentStore) Add(r models.DocumentRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, dup := s.byID[r.ID]; dup {
		return
	}
	s.order = append(s.order, r.ID)
	s.byID[r.ID] = &r
}

// Get returns a request by ID.
func (s *DocumentStore) Get(id string) (models.DocumentRequest, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.byID[id]
	if !ok {
		return models.DocumentRequest{}, false
	}
	return *r, true
}

// Update applies mutate to the named request under the write lock.
func (s *DocumentStore) Update(id string, mutate func(*models.DocumentRequest)) (models.DocumentRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.byID[id]
	if !ok {
		return models.DocumentRequest{}, false
	}
	mutate(r)
	return *r, true
}

// All returns requests in insertion order.
func (s *DocumentStore) All() []models.DocumentRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.DocumentRequest, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.byID[id])
	}
	return out
}

// Filter returns requests matching the predicate in insertion order.
func (s *DocumentStore) Filter(pred func(models.DocumentRequest) bool) []models.DocumentRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.DocumentRequest
	for _, id := range s.order {
		if pred(*s.byID[id]) {
			out = append(out, *s.byID[id])
		}
	}
	return out
}

// CountByStatus tallies requests per lifecycle state.
func (s *DocumentStore) CountByStatus(status models.DocumentRequestStatus) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, id := range s.order {
		if s.byID[id].Status == status {
			count++
		}
	}
	return count
}
