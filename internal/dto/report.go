package dto

import "github.com/gradpoint/gms-api/internal/models"

// ReportRequest captures the POST /reports/generate payload. Exactly one
// options block is consulted, selected by Kind; the others are ignored.
type ReportRequest struct {
	Kind      models.ReportKind                `json:"kind"`
	Format    models.ReportFormat              `json:"format"`
	Clearance models.ClearanceSummaryOptions   `json:"clearance,omitempty"`
	List      models.GraduationListOptions     `json:"list,omitempty"`
	Finance   models.FinanceCollectionOptions  `json:"finance,omitempty"`
	Ceremony  models.CeremonyAttendanceOptions `json:"ceremony,omitempty"`
}

// ReportTaskResponse is returned after enqueueing a report.
type ReportTaskResponse struct {
	TaskID string            `json:"task_id"`
	Status models.TaskStatus `json:"status"`
}
