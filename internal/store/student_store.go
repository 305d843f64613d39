package store

import (
	"sync"
	"time"

	"github.com/gradpoint/gms-api/internal/models"
)

// StudentStore is the single source of truth for the student collection.
// It keeps insertion order and hands out copies; every mutation goes
// through Update so callers can never scribble on shared state through a
// stale list response.
type StudentStore struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]*models.Student
}

// NewStudentStore constructs an empty store.
func NewStudentStore() *StudentStore {
	return &StudentStore{byID: make(map[string]*models.Student)}
}

// Seed replaces the collection with the given students, preserving their
// order. Intended for startup and tests.
func (s *StudentStore) Seed(students []models.Student) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order = make([]string, 0, len(students))
	s.byID = make(map[string]*models.Student, len(students))
	for i := range students {
		st := students[i]
		if _, dup := s.byID[st.ID]; dup {
			continue
		}
		s.order = append(s.order, st.ID)
		s.byID[st.ID] = &st
	}
}

// All returns the full collection in insertion order.
func (s *StudentStore) All() []models.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Student, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.byID[id])
	}
	return out
}

// Get returns the student with the given ID.
func (s *StudentStore) Get(id string) (models.Student, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.byID[id]
	if !ok {
		return models.Student{}, false
	}
	return *st, true
}

// GetByStudentID looks up a student by the human-facing registration code.
func (s *StudentStore) GetByStudentID(code string) (models.Student, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.order {
		if s.byID[id].StudentID == code {
			return *s.byID[id], true
		}
	}
	return models.Student{}, false
}

// Update applies mutate to the named student under the write lock and
// returns the updated copy. The registration code is immutable; any change
// mutate makes to it is discarded. Returns false when the ID is unknown.
func (s *StudentStore) Update(id string, mutate func(*models.Student)) (models.Student, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.byID[id]
	if !ok {
		return models.Student{}, false
	}
	code := st.StudentID
	mutate(st)
	st.StudentID = code
	st.UpdatedAt = time.Now().UTC()
	return *st, true
}

// Filter returns students matching the predicate, original order preserved.
func (s *StudentStore) Filter(pred func(models.Student) bool) []models.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Student
	for _, id := range s.order {
		if pred(*s.byID[id]) {
			out = append(out, *s.byID[id])
		}
	}
	return out
}

// Count returns the collection size.
func (s *StudentStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}
