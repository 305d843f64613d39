package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gradpoint/gms-api/internal/models"
	appErrors "github.com/gradpoint/gms-api/pkg/errors"
	"github.com/gradpoint/gms-api/pkg/jobs"
)

type taskStore interface {
	Put(t models.Task) (string, bool)
	Get(id string) (models.Task, bool)
	MarkRunning(id string)
	MarkCompleted(id string, result interface{})
	Busy(targetKey string) bool
}

type taskDispatcher interface {
	Enqueue(job jobs.Job) error
}

// TaskFunc performs the actual work of a background action and returns the
// result recorded on the task.
type TaskFunc func(ctx context.Context) interface{}

// TaskService replaces the dashboard's fixed-delay timers with a real
// fire-and-forget task abstraction. Tasks always run to completion: no
// retry, no cancellation, no failure path. The simulated latency keeps the
// original pacing in development and is zero in tests so completion is
// deterministic.
type TaskService struct {
	store   taskStore
	queue   taskDispatcher
	latency time.Duration
	logger  *zap.Logger
	metrics *MetricsService

	mu       sync.Mutex
	handlers map[string]TaskFunc
}

// NewTaskService constructs the task service.
func NewTaskService(store taskStore, queue taskDispatcher, latency time.Duration, logger *zap.Logger) *TaskService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TaskService{
		store:    store,
		queue:    queue,
		latency:  latency,
		logger:   logger,
		handlers: make(map[string]TaskFunc),
	}
}

// AttachMetrics hooks submission counting into the metrics registry. Call
// during wiring, before the server starts serving.
func (s *TaskService) AttachMetrics(m *MetricsService) {
	s.metrics = m
}

// SetQueue installs the dispatcher. The queue's handler is this service's
// Execute, so construction is two-step: build the service, build the queue
// around Execute, then hand the queue back here.
func (s *TaskService) SetQueue(queue taskDispatcher) {
	s.queue = queue
}

// Submit registers a task and enqueues it. While a task with the same
// targetKey is still in flight, an identical action is refused with
// ErrActionInFlight; the handler surfaces that as a disabled control.
func (s *TaskService) Submit(ctx context.Context, kind, targetKey string, fn TaskFunc) (*models.Task, error) {
	task := models.Task{
		ID:         uuid.NewString(),
		Kind:       kind,
		TargetKey:  targetKey,
		Status:     models.TaskQueued,
		EnqueuedAt: time.Now().UTC(),
	}
	if _, ok := s.store.Put(task); !ok {
		return nil, appErrors.ErrActionInFlight
	}
	s.registerHandler(task.ID, fn)
	s.metrics.RecordTaskSubmitted()

	if s.queue == nil {
		s.Execute(ctx, jobs.Job{ID: task.ID, Type: kind})
		return s.taskCopy(task.ID), nil
	}
	if err := s.queue.Enqueue(jobs.Job{ID: task.ID, Type: kind}); err != nil {
		// Queue not running (startup/shutdown window). Complete inline so
		// the action still always succeeds.
		s.Execute(ctx, jobs.Job{ID: task.ID, Type: kind})
		return s.taskCopy(task.ID), nil
	}
	return s.taskCopy(task.ID), nil
}

// Get returns the current task record.
func (s *TaskService) Get(ctx context.Context, id string) (*models.Task, error) {
	t, ok := s.store.Get(id)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "task not found")
	}
	return &t, nil
}

// Busy reports whether the target currently has a task in flight.
func (s *TaskService) Busy(targetKey string) bool {
	return s.store.Busy(targetKey)
}

// Execute is the jobs.Queue handler. It sleeps the simulated latency, runs
// the registered work function and records completion.
func (s *TaskService) Execute(ctx context.Context, job jobs.Job) error {
	s.store.MarkRunning(job.ID)

	if s.latency > 0 {
		timer := time.NewTimer(s.latency)
		select {
		case <-ctx.Done():
			timer.Stop()
		case <-timer.C:
		}
	}

	fn := s.takeHandler(job.ID)
	var result interface{}
	if fn != nil {
		result = fn(ctx)
	}
	s.store.MarkCompleted(job.ID, result)
	s.logger.Info("task completed", zap.String("task_id", job.ID), zap.String("kind", job.Type))
	return nil
}

func (s *TaskService) registerHandler(id string, fn TaskFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[id] = fn
}

func (s *TaskService) takeHandler(id string) TaskFunc {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn := s.handlers[id]
	delete(s.handlers, id)
	return fn
}

func (s *TaskService) taskCopy(id string) *models.Task {
	t, _ := s.store.Get(id)
	return &t
}
