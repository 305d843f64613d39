package store

import (
	"strings"
	"sync"
	"time"

	"github.com/gradpoint/gms-api/internal/models"
)

// UserStore keeps operator accounts in memory, insertion ordered.
type UserStore struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]*models.User
}

// NewUserStore constructs an empty user store.
func NewUserStore() *UserStore {
	return &UserStore{byID: make(map[string]*models.User)}
}

// Seed replaces the collection.
func (s *UserStore) Seed(users []models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order = make([]string, 0, len(users))
	s.byID = make(map[string]*models.User, len(users))
	for i := range users {
		u := users[i]
		s.order = append(s.order, u.ID)
		s.byID[u.ID] = &u
	}
}

// All returns every user in insertion order.
func (s *UserStore) All() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.byID[id])
	}
	return out
}

// Get returns a user by ID.
func (s *UserStore) Get(id string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.byID[id]
	if !ok {
		return models.User{}, false
	}
	return *u, true
}

// GetByEmail performs a case-insensitive email lookup.
func (s *UserStore) GetByEmail(email string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.order {
		if strings.EqualFold(s.byID[id].Email, email) {
			return *s.byID[id], true
		}
	}
	return models.User{}, false
}

// Add appends a new user.
func (s *UserStore) Add(u models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, dup := s.byID[u.ID]; dup {
		return
	}
	s.order = append(s.order, u.ID)
	s.byID[u.ID] = &u
}

// Update applies mutate to the named user under the write lock.
func (s *UserStore) Update(id string, mutate func(*models.User)) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.byID[id]
	if !ok {
		return models.User{}, false
	}
	mutate(u)
	u.UpdatedAt = time.Now().UTC()
	return *u, true
}

// Filter returns users matching the predicate in insertion order.
func (s *UserStore) Filter(pred func(models.User) bool) []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.User
	for _, id := range s.order {
		if pred(*s.byID[id]) {
			out = append(out, *s.byID[id])
		}
	}
	return out
}
