package store

import (
	"sync"
	"time"

	"github.com/gradpoint/gms-api/internal/models"
)

// TaskStore tracks background task records and the per-target in-flight
// guard that stops a second identical action starting while the first is
// still running.
type TaskStore struct {
	mu       sync.RWMutex
	byID     map[string]*models.Task
	inFlight map[string]string
}

// NewTaskStore constructs an empty store.
func NewTaskStore() *TaskStore {
	return &TaskStore{byID: make(map[string]*models.Task), inFlight: make(map[string]string)}
}

// Put registers a task. When the task names a TargetKey already in flight
// it is refused and the running task's ID is returned.
func (s *TaskStore) Put(t models.Task) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t.TargetKey != "" {
		if runningID, busy := s.inFlight[t.TargetKey]; busy {
			return runningID, false
		}
		s.inFlight[t.TargetKey] = t.ID
	}
	s.byID[t.ID] = &t
	return t.ID, true
}

// Get returns a task by ID.
func (s *TaskStore) Get(id string) (models.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.byID[id]
	if !ok {
		return models.Task{}, false
	}
	return *t, true
}

// MarkRunning flips a task to Running.
func (s *TaskStore) MarkRunning(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.byID[id]
	if !ok {
		return
	}
	now := time.Now().UTC()
	t.Status = models.TaskRunning
	t.StartedAt = &now
}

// MarkCompleted records the result, flips the task to Completed and frees
// the in-flight slot for its target.
func (s *TaskStore) MarkCompleted(id string, result interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.byID[id]
	if !ok {
		return
	}
	now := time.Now().UTC()
	t.Status = models.TaskCompleted
	t.Result = result
	t.FinishedAt = &now
	if t.TargetKey != "" && s.inFlight[t.TargetKey] == id {
		delete(s.inFlight, t.TargetKey)
	}
}

// Busy reports whether the target currently has a task in flight.
func (s *TaskStore) Busy(targetKey string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, busy := s.inFlight[targetKey]
	return busy
}
