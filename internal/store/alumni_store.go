package store

import (
	"sync"

	"github.com/gradpoint/gms-api/internal/models"
)

// AlumniStore keeps the alumni register in memory. Rollover is idempotent
// per student, enforced by the student-ID index.
type AlumniStore struct {
	mu        sync.RWMutex
	order     []string
	byID      map[string]*models.AlumniRecord
	byStudent map[string]string
}

// NewAlumniStore constructs an empty register.
func NewAlumniStore() *AlumniStore {
	return &AlumniStore{byID: make(map[string]*models.AlumniRecord), byStudent: make(map[string]string)}
}

// Add appends a record unless the student is already registered. Returns
// false when the student was present.
func (s *AlumniStore) Add(r models.AlumniRecord) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, dup := s.byStudent[r.StudentID]; dup {
		return false
	}
	s.order = append(s.order, r.ID)
	s.byID[r.ID] = &r
	s.byStudent[r.StudentID] = r.ID
	return true
}

// HasStudent reports whether a student is already on the register.
func (s *AlumniStore) HasStudent(studentID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.byStudent[studentID]
	return ok
}

// All returns the register in insertion order.
func (s *AlumniStore) All() []models.AlumniRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.AlumniRecord, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.byID[id])
	}
	return out
}

// Filter returns records matching the predicate in insertion order.
func (s *AlumniStore) Filter(pred func(models.AlumniRecord) bool) []models.AlumniRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.AlumniRecord
	for _, id := range s.order {
		if pred(*s.byID[id]) {
			out = append(out, *s.byID[id])
		}
	}
	return out
}
