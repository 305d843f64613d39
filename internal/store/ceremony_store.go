package store

import (
	"sync"

	"github.com/gradpoint/gms-api/internal/models"
)

// CeremonyStore keeps ceremony attendee state keyed by student ID.
type CeremonyStore struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]*models.CeremonyAttendee
}

// NewCeremonyStore constructs an empty store.
func NewCeremonyStore() *CeremonyStore {
	return &CeremonyStore{byID: make(map[string]*models.CeremonyAttendee)}
}

// Seed replaces the attendee list.
func (s *CeremonyStore) Seed(attendees []models.CeremonyAttendee) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order = make([]string, 0, len(attendees))
	s.byID = make(map[string]*models.CeremonyAttendee, len(attendees))
	for i := range attendees {
		a := attendees[i]
		s.order = append(s.order, a.StudentID)
		s.byID[a.StudentID] = &a
	}
}

// Upsert adds or replaces an attendee entry.
func (s *CeremonyStore) Upsert(a models.CeremonyAttendee) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[a.StudentID]; !ok {
		s.order = append(s.order, a.StudentID)
	}
	s.byID[a.StudentID] = &a
}

// Get returns an attendee by student ID.
func (s *CeremonyStore) Get(studentID string) (models.CeremonyAttendee, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.byID[studentID]
	if !ok {
		return models.CeremonyAttendee{}, false
	}
	return *a, true
}

// Update applies mutate to the named attendee under the write lock.
func (s *CeremonyStore) Update(studentID string, mutate func(*models.CeremonyAttendee)) (models.CeremonyAttendee, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.byID[studentID]
	if !ok {
		return models.CeremonyAttendee{}, false
	}
	mutate(a)
	return *a, true
}

// All returns attendees in insertion order.
func (s *CeremonyStore) All() []models.CeremonyAttendee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.CeremonyAttendee, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.byID[id])
	}
	return out
}

// Filter returns attendees matching the predicate in insertion order.
func (s *CeremonyStore) Filter(pred func(models.CeremonyAttendee) bool) []models.CeremonyAttendee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.CeremonyAttendee
	for _, id := range s.order {
		if pred(*s.byID[id]) {
			out = append(out, *s.byID[id])
		}
	}
	return out
}
