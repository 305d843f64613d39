package models

import "time"

// TaskStatus is the lifecycle of a simulated long-running action. Tasks
// never fail and are never retried or cancelled; once queued they always
// reach Completed.
type TaskStatus string

const (
	TaskQueued    TaskStatus = "QUEUED"
	TaskRunning   TaskStatus = "RUNNING"
	TaskCompleted TaskStatus = "COMPLETED"
)

// Task records one fire-and-forget background action (bulk approve, record
// payment, generate report, backup). TargetKey identifies the dialog/target
// the action belongs to; while a task for a TargetKey is still in flight an
// identical action is refused.
type Task struct {
	ID         string      `json:"id"`
	Kind       string      `json:"kind"`
	TargetKey  string      `json:"target_key,omitempty"`
	Status     TaskStatus  `json:"status"`
	Result     interface{} `json:"result,omitempty"`
	EnqueuedAt time.Time   `json:"enqueued_at"`
	StartedAt  *time.Time  `json:"started_at,omitempty"`
	FinishedAt *time.Time  `json:"finished_at,omitempty"`
}
